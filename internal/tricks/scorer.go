// Package tricks scores airborne rotation. Scorer implements
// motion.TrickTracker.
package tricks

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/vovakirdan/tui-snowboard/internal/motion"
)

// Tier is a named spin amount.
type Tier struct {
	Degrees int
	Points  int
}

// Config tunes scoring.
type Config struct {
	Tolerance     float64 // degrees short of a tier that still count as the tier
	MinAir        float64 // seconds before the air bonus starts
	AirBonus      float64 // points per second above MinAir
	BigAirTime    float64 // straight airs at least this long score as Big Air
	BigAirPoints  int
	FlipPoints    int     // per completed flip
	RepeatDecay   float64 // points multiplier per previous landing of the same trick
	FrontsideName string
	BacksideName  string
	Tiers         []Tier // ascending by degrees
}

// DefaultConfig returns the tier table the game ships with.
func DefaultConfig() Config {
	return Config{
		Tolerance:     30,
		MinAir:        0.5,
		AirBonus:      100,
		BigAirTime:    1.2,
		BigAirPoints:  150,
		FlipPoints:    300,
		RepeatDecay:   0.75,
		FrontsideName: "Frontside",
		BacksideName:  "Backside",
		Tiers: []Tier{
			{180, 100},
			{360, 250},
			{540, 400},
			{720, 600},
			{900, 850},
			{1080, 1200},
		},
	}
}

// Landing is one scored landing.
type Landing struct {
	Name    string
	Degrees int // signed; positive is frontside
	Flips   int // signed; positive is backflip
	Air     float64
	Points  int
}

// Stat summarizes every landing of one trick name.
type Stat struct {
	Name   string
	Count  int
	Best   int
	Total  int
	MaxAir float64
}

// Scorer accumulates rotation and air time between takeoff and landing.
type Scorer struct {
	cfg   Config
	tiers *orderedmap.OrderedMap[int, int] // degrees -> points

	rotation float64 // signed radians since takeoff
	air      float64

	log     *orderedmap.OrderedMap[string, *Stat]
	last    Landing
	maxAir  float64
	landing int
}

// NewScorer creates a scorer from cfg. Tiers are sorted into ascending order.
func NewScorer(cfg Config) *Scorer {
	tiers := orderedmap.NewOrderedMap[int, int]()
	for _, t := range sortedTiers(cfg.Tiers) {
		tiers.Set(t.Degrees, t.Points)
	}
	if cfg.FrontsideName == "" {
		cfg.FrontsideName = "Frontside"
	}
	if cfg.BacksideName == "" {
		cfg.BacksideName = "Backside"
	}
	return &Scorer{
		cfg:   cfg,
		tiers: tiers,
		log:   orderedmap.NewOrderedMap[string, *Stat](),
	}
}

// OnJumpStart begins tracking a new air.
func (s *Scorer) OnJumpStart() {
	s.rotation = 0
	s.air = 0
}

// OnTick integrates heading change and air time.
func (s *Scorer) OnTick(dt, rotationDelta float64) {
	s.rotation += rotationDelta
	s.air += dt
}

// OnLand scores the air that just ended and clears the accumulators.
func (s *Scorer) OnLand() motion.LandingResult {
	return s.OnLandFlips(0)
}

// OnLandFlips is OnLand for an air that also completed flips full
// rotations in pitch, positive for backflips.
func (s *Scorer) OnLandFlips(flips int) motion.LandingResult {
	defer s.OnJumpStart()

	l := s.evaluate(s.rotation, s.air, flips)
	if s.air > s.maxAir {
		s.maxAir = s.air
	}
	if l.Points <= 0 {
		return motion.LandingResult{}
	}

	stat, ok := s.log.Get(l.Name)
	if !ok {
		stat = &Stat{Name: l.Name}
		s.log.Set(l.Name, stat)
	}
	l.Points = int(math.Round(float64(l.Points) * math.Pow(s.cfg.RepeatDecay, float64(stat.Count))))
	if l.Points < 1 {
		l.Points = 1
	}

	stat.Count++
	stat.Total += l.Points
	stat.Best = max(stat.Best, l.Points)
	stat.MaxAir = math.Max(stat.MaxAir, l.Air)

	s.last = l
	s.landing++
	return motion.LandingResult{Points: l.Points, Name: l.Name}
}

// Pending reports the rotation in degrees and air time since takeoff.
func (s *Scorer) Pending() (degrees, air float64) {
	return s.rotation * 180 / math.Pi, s.air
}

// evaluate names and prices an air without touching the log.
func (s *Scorer) evaluate(rotation, air float64, flips int) Landing {
	deg := math.Abs(rotation * 180 / math.Pi)
	steps := int(math.Floor((deg + s.cfg.Tolerance) / 180))
	l := Landing{Air: air}

	bonus := 0
	if air > s.cfg.MinAir {
		bonus = int(math.Round((air - s.cfg.MinAir) * s.cfg.AirBonus))
	}

	var parts []string
	points := 0
	if flips != 0 && s.cfg.FlipPoints > 0 {
		l.Flips = flips
		parts = append(parts, flipName(flips))
		points += abs(flips) * s.cfg.FlipPoints
	}
	if steps > 0 {
		if tier, ok := s.tierPoints(steps * 180); ok {
			side := s.cfg.FrontsideName
			l.Degrees = steps * 180
			if rotation < 0 {
				side = s.cfg.BacksideName
				l.Degrees = -l.Degrees
			}
			parts = append(parts, fmt.Sprintf("%s %d", side, steps*180))
			points += tier
		}
	}
	if len(parts) > 0 {
		l.Name = strings.Join(parts, " ")
		l.Points = points + bonus
		return l
	}

	if air >= s.cfg.BigAirTime && s.cfg.BigAirPoints > 0 {
		l.Name = "Big Air"
		l.Points = s.cfg.BigAirPoints + bonus
	}
	return l
}

// tierPoints returns the points of the largest tier not above degrees.
func (s *Scorer) tierPoints(degrees int) (int, bool) {
	points, found := 0, false
	for el := s.tiers.Front(); el != nil; el = el.Next() {
		if el.Key > degrees {
			break
		}
		points, found = el.Value, true
	}
	return points, found
}

// Last returns the most recent scoring landing.
func (s *Scorer) Last() Landing {
	return s.last
}

// Landings returns how many scoring landings the run has had.
func (s *Scorer) Landings() int {
	return s.landing
}

// MaxAir returns the longest air of the run, scored or not.
func (s *Scorer) MaxAir() float64 {
	return s.maxAir
}

// History returns per-trick stats in the order tricks were first landed.
func (s *Scorer) History() []Stat {
	out := make([]Stat, 0, s.log.Len())
	for el := s.log.Front(); el != nil; el = el.Next() {
		out = append(out, *el.Value)
	}
	return out
}

// BestTrick returns the trick with the highest single landing.
func (s *Scorer) BestTrick() (Stat, bool) {
	var best Stat
	found := false
	for el := s.log.Front(); el != nil; el = el.Next() {
		if !found || el.Value.Best > best.Best {
			best, found = *el.Value, true
		}
	}
	return best, found
}

// Reset clears the run's history.
func (s *Scorer) Reset() {
	s.OnJumpStart()
	s.log = orderedmap.NewOrderedMap[string, *Stat]()
	s.last = Landing{}
	s.maxAir = 0
	s.landing = 0
}

// flipName names a flip count: "Backflip", "Double Frontflip", "4x Backflip".
func flipName(flips int) string {
	name := "Backflip"
	if flips < 0 {
		name = "Frontflip"
	}
	switch n := abs(flips); n {
	case 1:
		return name
	case 2:
		return "Double " + name
	case 3:
		return "Triple " + name
	default:
		return fmt.Sprintf("%dx %s", n, name)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sortedTiers(in []Tier) []Tier {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b Tier) int { return cmp.Compare(a.Degrees, b.Degrees) })
	return out
}

var _ motion.TrickTracker = (*Scorer)(nil)
