package motion

// Hit is a successful downward terrain intersection.
type Hit struct {
	Elevation float64
	Normal    Vec3 // world space, expected to face outward
}

// TerrainProbe answers vertical ground queries.
//
// ProbeVertical casts straight down from origin and returns the nearest
// intersection. A miss is reported with ok == false and is not an error.
type TerrainProbe interface {
	ProbeVertical(origin Vec3) (hit Hit, ok bool)
}

// LandingResult is the trick outcome reported when the rider touches down.
// Points == 0 means nothing scorable happened and Name is ignored.
type LandingResult struct {
	Points int
	Name   string
}

// TrickTracker integrates airborne rotation and scores it on landing.
//
// The engine calls OnJumpStart once per launch, OnTick once per airborne tick
// with that tick's heading change, and OnLand once per touchdown.
type TrickTracker interface {
	OnJumpStart()
	OnTick(dt, rotationDelta float64)
	OnLand() LandingResult
}

// NopTricks is a TrickTracker that never scores.
type NopTricks struct{}

func (NopTricks) OnJumpStart()          {}
func (NopTricks) OnTick(_, _ float64)   {}
func (NopTricks) OnLand() LandingResult { return LandingResult{} }
