package snowboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-snowboard/internal/core"
	"github.com/vovakirdan/tui-snowboard/internal/motion"
	"github.com/vovakirdan/tui-snowboard/internal/terrain"
)

// Visual characters for rendering
const (
	SnowFlat    = '.'
	SnowBump    = ':'
	SnowDip     = ','
	TreeChar    = '♣'
	CrevasseChr = '▓'
	KickerChar  = '^'
	LipChar     = '▀'
	FinishChar  = '▒'
	ShadowChar  = '°'
	ChargeFull  = '█'
	ChargeEmpty = '░'
)

// riderGlyphs are indexed by heading octant, starting downhill and turning left.
var riderGlyphs = [8]rune{'^', '\\', '<', '/', 'v', '\\', '>', '/'}

// View scale: meters per column and per row, and rows per meter of height.
const (
	metersPerCol  = 0.5
	metersPerRow  = 1.5
	rowsPerHeight = 0.5

	minScreenW = 40
	minScreenH = 12
	hudRows    = 1
	footerRows = 1
)

// Render draws the chase view: downhill is up the screen and the rider sits
// near the bottom looking ahead.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}
	if g.course == nil || g.rider == nil {
		return
	}

	pose := g.presenter.Pose(g.rider)
	v := g.viewport(dst, pose)

	g.drawTerrain(dst, v)
	g.drawRider(dst, v, pose)
	g.drawHUD(dst)
	g.drawFooter(dst, pose)

	switch {
	case g.state != StateRiding:
		g.drawCenteredMessage(dst, g.endTitle(), fmt.Sprintf("Score: %d  |  Press R to restart", g.score()))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// viewport maps world XZ to screen cells.
type viewport struct {
	camX, camZ float64
	centerCol  int
	riderRow   int
	top        int
	bottom     int // exclusive
}

func (g *Game) viewport(dst *core.Screen, pose motion.Pose) viewport {
	v := viewport{
		camZ:      pose.Position.Z(),
		centerCol: dst.Width() / 2,
		top:       hudRows,
		bottom:    dst.Height() - footerRows,
	}
	v.riderRow = v.bottom - 3

	// Keep the whole course width in view when it fits.
	opts := g.course.Options()
	if (opts.Width+2*opts.Margin)/metersPerCol > float64(dst.Width()) {
		v.camX = pose.Position.X()
	}
	return v
}

func (v viewport) world(col, row int) (x, z float64) {
	x = v.camX - float64(col-v.centerCol)*metersPerCol
	z = v.camZ + float64(v.riderRow-row)*metersPerRow
	return x, z
}

func (v viewport) screen(x, z float64) (col, row int) {
	col = v.centerCol - int(math.Round((x-v.camX)/metersPerCol))
	row = v.riderRow - int(math.Round((z-v.camZ)/metersPerRow))
	return col, row
}

func (g *Game) drawTerrain(dst *core.Screen, v viewport) {
	opts := g.course.Options()
	finish := g.course.Finish()
	kickers := g.course.Kickers()

	for row := v.top; row < v.bottom; row++ {
		for col := 0; col < dst.Width(); col++ {
			x, z := v.world(col, row)

			switch {
			case math.Abs(x) > opts.Width/2:
				if z >= 0 && z <= opts.Length {
					dst.SetColored(col, row, TreeChar, core.ColorGreen)
				}
				continue
			case g.course.IsHole(x, z):
				if z >= 0 && z <= opts.Length {
					dst.SetColored(col, row, CrevasseChr, core.ColorBlue)
				}
				continue
			case math.Abs(z-finish) < metersPerRow/2:
				dst.SetColored(col, row, FinishChar, core.ColorBrightRed)
				continue
			}

			if k, ok := kickerAt(kickers, x, z); ok {
				glyph := KickerChar
				if k.ZEnd-z < metersPerRow {
					glyph = LipChar
				}
				dst.SetColored(col, row, glyph, core.ColorBrightCyan)
				continue
			}

			elev, _ := g.course.ElevationAt(x, z)
			relief := elev + z*opts.Incline
			switch {
			case relief > opts.NoiseAmplitude*0.4:
				dst.SetColored(col, row, SnowBump, core.ColorIce)
			case relief < -opts.NoiseAmplitude*0.4:
				dst.SetColored(col, row, SnowDip, core.ColorGray)
			default:
				dst.SetColored(col, row, SnowFlat, core.ColorWhite)
			}
		}
	}
}

func kickerAt(kickers []terrain.Kicker, x, z float64) (terrain.Kicker, bool) {
	for _, k := range kickers {
		if z >= k.ZStart && z <= k.ZEnd && math.Abs(x-k.X) <= k.Width/2 {
			return k, true
		}
	}
	return terrain.Kicker{}, false
}

// drawRider lifts the rider glyph above its shadow in proportion to height.
func (g *Game) drawRider(dst *core.Screen, v viewport, pose motion.Pose) {
	col, row := v.screen(pose.Position.X(), pose.Position.Z())

	if !pose.Grounded && g.report.Contact.HasGround() {
		dst.SetColored(col, row, ShadowChar, core.ColorGray)
		height := pose.Position.Y() - g.report.Contact.Elevation
		row -= int(math.Round(math.Max(0, height) * rowsPerHeight))
		row = max(row, v.top)
	}

	color := core.ColorBrightYellow
	switch {
	case g.state == StateWipeout:
		color = core.ColorBrightRed
		dst.SetColored(col, row, 'X', color)
		return
	case !pose.Grounded:
		color = core.ColorBrightMagenta
	}
	dst.SetColored(col, row, headingGlyph(pose.Heading), color)

	// Lean marker on the side the rider is leaning toward.
	if pose.Grounded && math.Abs(pose.Roll) > 0.15 {
		side := -1
		if pose.Roll < 0 {
			side = 1
		}
		dst.SetColored(col+side, row, '\'', color)
	}
}

// headingGlyph picks an arrow for a heading in the chase view.
func headingGlyph(h float64) rune {
	octant := int(math.Round(h/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return riderGlyphs[octant]
}

func (g *Game) drawHUD(dst *core.Screen) {
	r := g.rider
	parts := []string{
		fmt.Sprintf("Score %d", g.score()),
		fmt.Sprintf("%4.1f m/s", r.Speed()),
	}
	if g.mode == ModeSlopestyle {
		left := math.Max(0, g.cfg.Run.TimeLimit-g.elapsed())
		parts = append(parts, fmt.Sprintf("Time %4.1f", left))
	} else {
		parts = append(parts, fmt.Sprintf("Seg %d  %4.0fm", g.segment+1, g.distance))
	}
	if !r.Grounded() {
		deg, air := g.scorer.Pending()
		parts = append(parts, fmt.Sprintf("Air %.1fs %+.0f°", air, deg))
		if math.Abs(r.Pitch) > 0.2 {
			parts = append(parts, fmt.Sprintf("Flip %+.0f°", r.Pitch*180/math.Pi))
		}
	}

	dst.DrawTextColored(1, 0, " "+strings.Join(parts, "  ")+" ", core.ColorBrightWhite)

	msg := r.LastTrickName
	color := core.ColorGray
	if g.flashTicks > 0 {
		msg, color = g.flash, core.ColorBrightGreen
	}
	if msg != "" {
		dst.DrawTextColored(dst.Width()-len([]rune(msg))-2, 0, msg, color)
	}
}

// drawFooter shows the jump charge, read back from the body squash.
func (g *Game) drawFooter(dst *core.Screen, pose motion.Pose) {
	y := dst.Height() - 1
	charge := 0.0
	if f := g.engine.Params().SquashFactor; f > 0 {
		charge = (1 - pose.ScaleY) / f / g.engine.Params().MaxJumpCharge
	}

	const barW = 20
	filled := int(math.Round(core.ClampF(charge, 0, 1) * barW))

	dst.DrawText(1, y, "Jump ")
	for i := range barW {
		if i < filled {
			dst.SetColored(6+i, y, ChargeFull, core.ColorOrange)
		} else {
			dst.SetColored(6+i, y, ChargeEmpty, core.ColorGray)
		}
	}

	help := "←→ turn  ↑↓ flip  Q/E spin  C carve  SPACE jump  P pause"
	if x := 6 + barW + 2; x+len([]rune(help)) < dst.Width() {
		dst.DrawTextColored(x, y, help, core.ColorGray)
	}
}

func (g *Game) endTitle() string {
	switch g.state {
	case StateFinished:
		return "FINISHED"
	case StateTimeUp:
		return "TIME UP"
	default:
		if g.reason == ReasonBailed {
			return "BAILED"
		}
		return "WIPEOUT"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	box := core.CenteredRect(dst.Width(), dst.Height(), max(len(title), len(subtitle))+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(box.W-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(box.W-len(subtitle))/2, box.Y+3, subtitle)
}
