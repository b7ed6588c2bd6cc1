package motion

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// Report describes what happened during one Engine.Tick.
type Report struct {
	Contact         Contact
	AirMode         AirMode
	RotationDelta   float64 // heading change applied this tick
	Landed          bool    // airborne -> grounded transition
	Landing         LandingResult
	Launched        bool // jump released this tick
	LaunchForce     float64
	ChargeForfeited bool // charge cleared by the end of the coyote window
}

// Engine advances a State by one tick against a terrain probe and a trick tracker.
type Engine struct {
	params Params
	probe  TerrainProbe
	tricks TrickTracker
	logger *log.Logger
}

// NewEngine creates an engine. A nil tracker is replaced with NopTricks.
func NewEngine(params Params, probe TerrainProbe, tricks TrickTracker) *Engine {
	if tricks == nil {
		tricks = NopTricks{}
	}
	return &Engine{
		params: params,
		probe:  probe,
		tricks: tricks,
		logger: log.New(io.Discard),
	}
}

// SetLogger routes takeoff, landing and charge events to l.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	e.logger = l
}

// Params returns the engine's tuning.
func (e *Engine) Params() Params {
	return e.params
}

// Tick advances s by dt seconds.
//
// Phases run in a fixed order: contact sampling, classification, landing,
// rotation input, regime physics, jump charge/release, integration, lean.
func (e *Engine) Tick(s *State, in Input, dt float64) (Report, error) {
	if !finite(dt) || dt < 0 {
		return Report{}, ErrNonFiniteStep
	}
	p := e.params

	var r Report
	r.AirMode = in.AirMode()
	r.Contact = SampleContact(e.probe, s.Position, s.Heading, p)

	if e.classify(s, r.Contact) == Grounded {
		if s.Regime == Airborne {
			r.Landed = true
			r.Landing = e.land(s)
		}
		s.Regime = Grounded
	} else {
		s.Regime = Airborne
	}

	r.RotationDelta = e.rotate(s, in, r.AirMode, dt)

	if s.Grounded() {
		e.groundPhysics(s, in, r.Contact, dt)
	} else {
		e.airPhysics(s, in, r.AirMode, dt)
		e.tricks.OnTick(dt, r.RotationDelta)
	}

	e.jump(s, in, dt, &r)

	s.Position = s.Position.Add(s.Velocity.Mul(dt))
	if s.Grounded() {
		s.Position[1] += (r.Contact.Elevation - s.Position[1]) * math.Min(1, p.GroundFollow*dt)
	}

	if !r.Landed {
		s.Roll = blendRoll(s.Roll, s.Grounded(), in, dt, p)
	}
	return r, nil
}

// classify applies the contact rule: close enough to the averaged ground and
// not moving up faster than the landing threshold.
func (e *Engine) classify(s *State, c Contact) Regime {
	dist := s.Position.Y() - c.Elevation
	if dist <= e.params.groundedThreshold() && s.Velocity.Y() <= e.params.LandVerticalSpeed {
		return Grounded
	}
	return Airborne
}

// land handles the airborne -> grounded transition.
func (e *Engine) land(s *State) LandingResult {
	res := e.tricks.OnLand()
	if res.Points > 0 {
		s.Score += res.Points
		s.LastTrickName = res.Name
	}
	s.Pitch = 0
	s.Roll = 0
	airTime := s.AirTime
	s.AirTime = 0

	e.logger.Debug("landed", "air", airTime, "points", res.Points, "trick", res.Name)
	return res
}

// rotate integrates heading and pitch from input and returns the heading delta.
func (e *Engine) rotate(s *State, in Input, mode AirMode, dt float64) float64 {
	p := e.params
	var delta float64

	if s.Grounded() {
		delta = in.lateral() * p.TurnRate * dt
		s.Pitch -= s.Pitch * math.Min(1, p.PitchDecay*dt)
		if math.Abs(s.Pitch) < p.PitchEpsilon {
			s.Pitch = 0
		}
	} else {
		switch mode {
		case AirFlip:
			s.Pitch += in.flip() * p.FlipRate * dt
		case AirSpin:
			turn := (in.lateral() + in.spinBoost(p.SpinBoost)) * p.SpinMultiplier
			delta = turn * p.TurnRate * dt
		}
	}

	s.Heading = wrapAngle(s.Heading + delta)
	return delta
}

// groundPhysics slides the rider along the slope: tangential gravity,
// friction, grip toward the board's facing, speed cap, and removal of any
// velocity along the ground normal.
func (e *Engine) groundPhysics(s *State, in Input, c Contact, dt float64) {
	p := e.params
	n := c.Normal

	gravity := Vec3{0, -p.Gravity, 0}
	tangential := gravity.Sub(n.Mul(gravity.Dot(n)))
	s.Velocity = s.Velocity.Add(tangential.Mul(dt))

	friction := p.BaseFriction
	if in.Carve {
		friction = p.CarveFriction
	}
	s.Velocity = s.Velocity.Mul(math.Max(0, 1-friction*dt))

	if speed := s.Velocity.Len(); speed > p.SteerMinSpeed {
		facing := Forward(s.Heading)
		if s.Velocity.Dot(facing) < 0 {
			facing = facing.Mul(-1) // riding fakie
		}
		target := facing.Sub(n.Mul(facing.Dot(n)))
		if tl := target.Len(); tl > 1e-9 {
			target = target.Mul(1 / tl)
			dir := s.Velocity.Mul(1 / speed)
			blended := dir.Add(target.Sub(dir).Mul(math.Min(1, p.Grip*dt)))
			if bl := blended.Len(); bl > 1e-9 {
				s.Velocity = blended.Mul(speed / bl)
			}
		}
	}

	if speed := s.Velocity.Len(); speed > p.MaxSpeed {
		s.Velocity = s.Velocity.Mul(p.MaxSpeed / speed)
	}

	s.Velocity = s.Velocity.Sub(n.Mul(s.Velocity.Dot(n)))
}

// airPhysics applies ballistic gravity, drag and mid-flip lateral steering.
func (e *Engine) airPhysics(s *State, in Input, mode AirMode, dt float64) {
	p := e.params

	s.AirTime += dt
	s.Velocity[1] -= p.Gravity * dt
	s.Velocity = s.Velocity.Mul(1 - p.AirDrag*dt)

	if mode == AirFlip {
		if lat := in.lateral(); lat != 0 {
			s.Velocity = s.Velocity.Add(LeftAxis(s.Heading).Mul(lat * p.AirSteer * dt))
		}
	}
}

// jump charges while the jump action is held inside the grounded or coyote
// window and launches on release. Charge cannot be banked past the window.
func (e *Engine) jump(s *State, in Input, dt float64, r *Report) {
	p := e.params
	inWindow := s.Grounded() || s.AirTime < p.CoyoteTime

	if !inWindow {
		if s.JumpCharge > 0 {
			e.logger.Debug("jump charge forfeited", "charge", s.JumpCharge, "air", s.AirTime)
			r.ChargeForfeited = true
		}
		s.JumpCharge = 0
		return
	}

	if in.Jump {
		s.JumpCharge = math.Min(s.JumpCharge+p.ChargeRate*dt, p.MaxJumpCharge)
		return
	}
	if s.JumpCharge <= 0 {
		return
	}

	force := p.JumpForce * (0.8 + s.JumpCharge*1.5)
	s.Regime = Airborne
	s.AirTime = p.JumpAirTime
	if s.Velocity[1] < 0 {
		s.Velocity[1] = 0
	}
	s.Velocity[1] += force
	charge := s.JumpCharge
	s.JumpCharge = 0
	e.tricks.OnJumpStart()

	r.Launched = true
	r.LaunchForce = force
	e.logger.Debug("launched", "charge", charge, "force", force)
}
