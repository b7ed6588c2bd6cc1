package snowboard

// Snapshot captures the run state for determinism testing and replay.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Mode       string
	State      string
	Score      int
	Segment    int
	PosX       float64
	PosY       float64
	PosZ       float64
	VelX       float64
	VelY       float64
	VelZ       float64
	Heading    float64
	Pitch      float64
	Grounded   bool
	AirTime    float64
	JumpCharge float64
	LastTrick  string
	CourseSeed uint64
}

// Snapshot returns the current run snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Mode:    g.ID(),
		State:   g.state,
		Score:   g.score(),
		Segment: g.segment,
	}
	if r := g.rider; r != nil {
		s.PosX, s.PosY, s.PosZ = r.Position.Elem()
		s.VelX, s.VelY, s.VelZ = r.Velocity.Elem()
		s.Heading = r.Heading
		s.Pitch = r.Pitch
		s.Grounded = r.Grounded()
		s.AirTime = r.AirTime
		s.JumpCharge = r.JumpCharge
		s.LastTrick = r.LastTrickName
	}
	if g.course != nil {
		s.CourseSeed = g.course.Seed()
	}
	return s
}
