package motion

// Input is the per-tick snapshot of named rider actions.
type Input struct {
	Forward   bool // frontflip while airborne
	Backward  bool // backflip while airborne
	Left      bool
	Right     bool
	SpinLeft  bool
	SpinRight bool
	Jump      bool // hold to charge, release to launch
	Carve     bool // hard edge: raises ground friction
}

// AirMode is the rotation choice derived once per tick from an Input.
// Flip and spin input are mutually exclusive while airborne.
type AirMode int

const (
	AirNeutral AirMode = iota
	AirFlip
	AirSpin
)

// String returns a human-readable name for the air mode.
func (m AirMode) String() string {
	switch m {
	case AirNeutral:
		return "neutral"
	case AirFlip:
		return "flip"
	case AirSpin:
		return "spin"
	default:
		return "unknown"
	}
}

// AirMode classifies the snapshot. Forward/backward take priority, so any
// lateral input held alongside them only steers.
func (in Input) AirMode() AirMode {
	switch {
	case in.Forward || in.Backward:
		return AirFlip
	case in.Left || in.Right || in.SpinLeft || in.SpinRight:
		return AirSpin
	default:
		return AirNeutral
	}
}

// lateral returns +1 for left, -1 for right, 0 for neither or both.
func (in Input) lateral() float64 {
	var v float64
	if in.Left {
		v++
	}
	if in.Right {
		v--
	}
	return v
}

// spinBoost returns the extra turn magnitude from the dedicated spin actions.
func (in Input) spinBoost(boost float64) float64 {
	var v float64
	if in.SpinLeft {
		v += boost
	}
	if in.SpinRight {
		v -= boost
	}
	return v
}

// flip returns +1 for a backflip, -1 for a frontflip.
func (in Input) flip() float64 {
	var v float64
	if in.Backward {
		v++
	}
	if in.Forward {
		v--
	}
	return v
}
