package snowboard

import (
	"math"

	"github.com/vovakirdan/tui-snowboard/internal/motion"
	"github.com/vovakirdan/tui-snowboard/internal/tricks"
)

// judge sits between the engine and the scorer. It voids landings taken
// with too much pitch and credits completed flips. The engine calls OnLand
// before it levels the rider, so the pitch read here is the touchdown pitch.
type judge struct {
	scorer     *tricks.Scorer
	rider      *motion.State
	crashPitch float64

	bailed bool // set by the most recent OnLand
}

func (j *judge) OnJumpStart() {
	j.scorer.OnJumpStart()
}

func (j *judge) OnTick(dt, rotationDelta float64) {
	j.scorer.OnTick(dt, rotationDelta)
}

func (j *judge) OnLand() motion.LandingResult {
	j.bailed = math.Abs(math.Remainder(j.rider.Pitch, 2*math.Pi)) >= j.crashPitch
	if j.bailed {
		j.scorer.OnJumpStart() // discard the air
		return motion.LandingResult{}
	}
	flips := int(math.Round(j.rider.Pitch / (2 * math.Pi)))
	return j.scorer.OnLandFlips(flips)
}
