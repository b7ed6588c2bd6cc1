// Package snowboard implements the snowboard run modes on top of the
// motion core: a generated course, trick scoring and run rules.
package snowboard

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snowboard/internal/config"
	"github.com/vovakirdan/tui-snowboard/internal/core"
	"github.com/vovakirdan/tui-snowboard/internal/motion"
	"github.com/vovakirdan/tui-snowboard/internal/registry"
	"github.com/vovakirdan/tui-snowboard/internal/terrain"
	"github.com/vovakirdan/tui-snowboard/internal/tricks"
)

// Mode selects the run rules.
type Mode int

const (
	ModeSlopestyle Mode = iota // timed run to a finish line
	ModeFreeride               // endless segments until a wipeout
)

// Run states
const (
	StateRiding   = "riding"
	StateFinished = "finished"
	StateTimeUp   = "time_up"
	StateWipeout  = "wipeout"
)

// Wipeout reasons
const (
	ReasonBailed = "bailed"
	ReasonFell   = "fell"
)

// segmentSeedStep spaces freeride segment seeds apart.
const segmentSeedStep = 0x9e3779b97f4a7c15

// flashSeconds is how long trick and event messages stay in the HUD.
const flashSeconds = 2.0

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives run and engine events; silent unless set via CLI
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes run events to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the snowboard run logic.
type Game struct {
	mode Mode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.SnowboardConfig
	difficulty *config.DifficultyManager
	dt         float64

	// Simulation
	course    *terrain.Course
	engine    *motion.Engine
	presenter motion.Presenter
	scorer    *tricks.Scorer
	judge     *judge
	rider     *motion.State
	report    motion.Report

	// Run state
	state      string
	reason     string
	paused     bool
	tick       uint64
	segment    int
	bonus      int     // finish and time bonus, on top of trick points
	lastGround float64 // elevation under the rider at the last contact
	distance   float64 // downhill distance over all segments

	flash      string
	flashTicks int
}

// New creates a slopestyle game.
func New() *Game {
	return &Game{mode: ModeSlopestyle}
}

// NewFreeride creates a freeride game.
func NewFreeride() *Game {
	return &Game{mode: ModeFreeride}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeFreeride {
		return "freeride"
	}
	return "slopestyle"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeFreeride {
		return "Freeride"
	}
	return "Slopestyle"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeFreeride {
		return "Endless backcountry, ride until you wipe out"
	}
	return "Timed run through the kicker line to the finish"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadSnowboard(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultSnowboardConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplySnowboardPreset(&cfg, difficultyPreset)
	}

	if err := errors.Join(cfg.Validate(), ParamsFromConfig(cfg).Validate()); err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultSnowboardConfig()
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	rate := runtime.TickRate
	if rate <= 0 {
		rate = cfg.Run.TickRate
	}
	g.dt = 1 / float64(rate)

	g.scorer = tricks.NewScorer(TricksConfig(cfg.Tricks))
	g.rider = motion.NewState(motion.Vec3{}, 0)
	g.judge = &judge{scorer: g.scorer, rider: g.rider, crashPitch: cfg.Run.CrashPitch}

	g.state = StateRiding
	g.reason = ""
	g.paused = false
	g.tick = 0
	g.segment = 0
	g.bonus = 0
	g.distance = 0
	g.flash = ""
	g.flashTicks = 0
	g.report = motion.Report{}

	if err := g.buildSegment(); err != nil {
		// Validate rules this out for the default options.
		logger.Error("course generation failed", "err", err)
		g.state = StateWipeout
		g.reason = err.Error()
		return
	}
	spawn := g.course.Spawn()
	g.rider.Reset(spawn, cfg.Rider.StartHeight)
	g.lastGround = spawn.Y()
}

// buildSegment generates the course for the current segment and an engine
// bound to it, scaled by the current difficulty level.
func (g *Game) buildSegment() error {
	score, ticks := g.score(), int(g.tick)

	opts := TerrainOptions(g.cfg.Terrain, g.mode)
	opts.KickerSpacing = g.difficulty.KickerSpacing(opts.KickerSpacing, score, ticks)
	roughness := g.difficulty.Roughness(score, ticks)

	seed := uint64(g.runtime.Seed) + uint64(g.segment)*segmentSeedStep
	course, err := terrain.Generate(seed, opts, roughness)
	if err != nil {
		return fmt.Errorf("segment %d: %w", g.segment, err)
	}

	params := ParamsFromConfig(g.cfg)
	params.MaxSpeed = g.difficulty.Speed(params.MaxSpeed, score, ticks)

	g.course = course
	g.engine = motion.NewEngine(params, course, g.judge)
	g.engine.SetLogger(logger)
	g.presenter = motion.NewPresenter(params)

	logger.Debug("segment ready", "mode", g.ID(), "segment", g.segment,
		"kickers", len(course.Kickers()), "crevasses", len(course.Crevasses()),
		"roughness", roughness, "max_speed", params.MaxSpeed)
	return nil
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state != StateRiding {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	prevZ := g.rider.Position.Z()
	report, err := g.engine.Tick(g.rider, InputFromFrame(in), g.dt)
	if err != nil {
		logger.Error("tick rejected", "err", err)
		return core.StepResult{State: g.State()}
	}
	g.report = report
	g.distance += g.rider.Position.Z() - prevZ

	var events []core.Event
	if report.Launched {
		events = append(events, core.Event{Kind: "launch"})
	}
	if report.Landed {
		events = append(events, g.onLanded(report.Landing)...)
	}
	if report.Contact.HasGround() {
		g.lastGround = report.Contact.Elevation
	}

	switch {
	case g.state != StateRiding:
	case g.rider.Position.Y() < g.lastGround-g.cfg.Run.WipeoutDepth:
		g.end(StateWipeout, ReasonFell)
		events = append(events, core.Event{Kind: "wipeout", Name: ReasonFell})
	case g.rider.Position.Z() >= g.course.Finish():
		events = append(events, g.onFinishLine())
	case g.mode == ModeSlopestyle && g.elapsed() >= g.cfg.Run.TimeLimit:
		g.end(StateTimeUp, "")
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) onLanded(res motion.LandingResult) []core.Event {
	if g.judge.bailed {
		g.end(StateWipeout, ReasonBailed)
		return []core.Event{{Kind: "bail"}, {Kind: "wipeout", Name: ReasonBailed}}
	}
	if res.Points > 0 {
		g.setFlash(fmt.Sprintf("%s +%d", res.Name, res.Points))
		return []core.Event{{Kind: "land"}, {Kind: "trick", Name: res.Name, Points: res.Points}}
	}
	return []core.Event{{Kind: "land"}}
}

// onFinishLine closes a slopestyle run or rolls freeride into a new segment.
func (g *Game) onFinishLine() core.Event {
	if g.mode == ModeSlopestyle {
		left := math.Max(0, g.cfg.Run.TimeLimit-g.elapsed())
		bonus := g.cfg.Run.FinishBonus + int(left)*g.cfg.Run.TimeBonus
		g.bonus += bonus
		g.end(StateFinished, "")
		return core.Event{Kind: "finish", Points: bonus}
	}

	heightAbove := g.rider.Position.Y() - g.lastGround
	x := g.rider.Position.X()

	g.segment++
	if err := g.buildSegment(); err != nil {
		logger.Error("course generation failed", "err", err)
		g.end(StateWipeout, err.Error())
		return core.Event{Kind: "wipeout", Name: err.Error()}
	}

	spawn := g.course.Spawn()
	if ground, ok := g.course.ElevationAt(x, spawn.Z()); ok {
		spawn = motion.Vec3{x, ground, spawn.Z()}
	}
	g.rider.Relocate(spawn.Add(motion.Vec3{0, math.Max(0, heightAbove), 0}))
	g.lastGround = spawn.Y()
	g.setFlash(fmt.Sprintf("Segment %d", g.segment+1))
	return core.Event{Kind: "segment", Points: g.segment}
}

func (g *Game) end(state, reason string) {
	g.state = state
	g.reason = reason
	logger.Info("run ended", "mode", g.ID(), "state", state, "reason", reason,
		"score", g.score(), "time", fmt.Sprintf("%.1fs", g.elapsed()), "max_air", g.scorer.MaxAir())
}

func (g *Game) setFlash(msg string) {
	g.flash = msg
	g.flashTicks = int(flashSeconds / g.dt)
}

func (g *Game) score() int {
	if g.rider == nil {
		return g.bonus
	}
	return g.rider.Score + g.bonus
}

func (g *Game) elapsed() float64 {
	return float64(g.tick) * g.dt
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.state != StateRiding,
		Paused:   g.paused,
		Reason:   g.endMessage(),
	}
}

func (g *Game) endMessage() string {
	switch g.state {
	case StateFinished:
		return "finished"
	case StateTimeUp:
		return "time up"
	case StateWipeout:
		return "wipeout: " + g.reason
	default:
		return ""
	}
}

// Summary describes the run for the scoreboard.
func (g *Game) Summary() core.RunSummary {
	s := core.RunSummary{
		Mode:     g.ID(),
		Score:    g.score(),
		Duration: g.elapsed(),
	}
	if g.scorer != nil {
		s.MaxAir = g.scorer.MaxAir()
		if best, ok := g.scorer.BestTrick(); ok {
			s.BestTrick = best.Name
		}
	}
	return s
}

// Rider exposes the motion record for read-only inspection by hosts.
func (g *Game) Rider() motion.State {
	if g.rider == nil {
		return motion.State{}
	}
	return *g.rider
}

// Tricks returns the per-trick log of the run.
func (g *Game) Tricks() []tricks.Stat {
	if g.scorer == nil {
		return nil
	}
	return g.scorer.History()
}

// Register the modes with the registry
func init() {
	registry.Register("slopestyle", func() registry.Game {
		return New()
	})
	registry.Register("freeride", func() registry.Game {
		return NewFreeride()
	})
}
