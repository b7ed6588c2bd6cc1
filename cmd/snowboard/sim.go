package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snowboard/internal/core"
	"github.com/vovakirdan/tui-snowboard/internal/games/snowboard"
	"github.com/vovakirdan/tui-snowboard/internal/registry"
)

var (
	flagSimMode   string
	flagSimTicks  int
	flagSimScript string
	flagSimRender bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted headless simulation",
	Long: `Run a mode without a terminal UI, feeding a scripted input sequence.

The script is a comma-separated list of steps "actions:seconds". Actions are
joined with "+"; use "wait" for no input. The run idles after the script until
--ticks is reached or the run ends.

Actions: forward, backward, left, right, spinleft, spinright, jump, carve, wait

One line is logged per simulated second, plus launches, landings and tricks.

Examples:
  snowboard sim
  snowboard sim --script "wait:1,jump:0.5,left+spinleft:0.6"
  snowboard sim --mode freeride --ticks 3600 --seed 7 --log-level debug
  snowboard sim --render`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimMode, "mode", "slopestyle", "Mode to simulate")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 1800, "Maximum ticks to simulate")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", `Input script, e.g. "jump:0.5,left:0.3"`)
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame")
}

// scriptStep holds a set of actions for a number of ticks.
type scriptStep struct {
	actions []core.Action
	ticks   int
}

// parseScript turns "jump:0.5,left+carve:0.3" into steps at the given tick rate.
func parseScript(script string, tickRate int) ([]scriptStep, error) {
	var steps []scriptStep
	for part := range strings.SplitSeq(script, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		names, dur, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("step %q: missing duration", part)
		}
		secs, err := strconv.ParseFloat(strings.TrimSpace(dur), 64)
		if err != nil || secs < 0 || math.IsInf(secs, 0) {
			return nil, fmt.Errorf("step %q: bad duration", part)
		}

		var step scriptStep
		step.ticks = int(math.Round(secs * float64(tickRate)))
		for name := range strings.SplitSeq(names, "+") {
			name = strings.TrimSpace(name)
			if strings.EqualFold(name, "wait") {
				continue
			}
			a, ok := scriptAction(name)
			if !ok {
				return nil, fmt.Errorf("step %q: unknown action %q", part, name)
			}
			step.actions = append(step.actions, a)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func scriptAction(name string) (core.Action, bool) {
	for a := core.ActionForward; a <= core.ActionCarve; a++ {
		if strings.EqualFold(a.String(), name) {
			return a, true
		}
	}
	return core.ActionNone, false
}

// frameAt returns the scripted input for a tick.
func frameAt(steps []scriptStep, tick int) core.InputFrame {
	frame := core.NewInputFrame()
	for _, s := range steps {
		if tick < s.ticks {
			for _, a := range s.actions {
				frame.Set(a)
			}
			break
		}
		tick -= s.ticks
	}
	return frame
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive")
	}
	steps, err := parseScript(flagSimScript, flagFPS)
	if err != nil {
		return fmt.Errorf("invalid --script: %w", err)
	}

	game, err := registry.Create(flagSimMode)
	if err != nil {
		return err
	}
	sb, ok := game.(*snowboard.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot be simulated", flagSimMode)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = 1
	}
	sb.Reset(rt)

	logger.Info("simulation started", "mode", flagSimMode, "seed", rt.Seed,
		"fps", rt.TickRate, "steps", len(steps))

	for tick := range flagSimTicks {
		result := sb.Step(frameAt(steps, tick))

		for _, ev := range result.Events {
			s := sb.Snapshot()
			switch ev.Kind {
			case "launch":
				logger.Info("launch", "tick", s.Tick, "z", fmt.Sprintf("%.1f", s.PosZ), "vy", fmt.Sprintf("%.2f", s.VelY))
			case "land":
				logger.Info("land", "tick", s.Tick, "z", fmt.Sprintf("%.1f", s.PosZ))
			case "trick":
				logger.Info("trick", "tick", s.Tick, "name", ev.Name, "points", ev.Points)
			default:
				logger.Info(ev.Kind, "tick", s.Tick, "name", ev.Name, "points", ev.Points)
			}
		}

		if (tick+1)%rt.TickRate == 0 {
			s := sb.Snapshot()
			logger.Info("t", "sec", (tick+1)/rt.TickRate,
				"pos", fmt.Sprintf("%.1f,%.1f,%.1f", s.PosX, s.PosY, s.PosZ),
				"speed", fmt.Sprintf("%.1f", math.Sqrt(s.VelX*s.VelX+s.VelY*s.VelY+s.VelZ*s.VelZ)),
				"grounded", s.Grounded, "score", s.Score)
		}

		if result.State.GameOver {
			break
		}
	}

	summary := sb.Summary()
	state := sb.State()
	logger.Info("simulation finished", "ticks", sb.Snapshot().Tick, "score", summary.Score,
		"best_trick", summary.BestTrick, "max_air", fmt.Sprintf("%.2fs", summary.MaxAir),
		"ended", state.Reason)

	for _, stat := range sb.Tricks() {
		logger.Debug("trick log", "name", stat.Name, "count", stat.Count, "best", stat.Best, "total", stat.Total)
	}

	if flagSimRender {
		screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
		sb.Render(screen)
		fmt.Fprintln(os.Stdout, screen.String())
	}
	return nil
}
