// Package terrain provides heightfield ground for the motion core.
// A Heightfield answers vertical probes with bilinear elevation and a
// finite-difference surface normal.
package terrain

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-snowboard/internal/motion"
)

// Heightfield is a regular grid of elevations in the XZ plane.
// Sample (i, j) sits at (OriginX + i*Cell, OriginZ + j*Cell).
type Heightfield struct {
	cols, rows int
	cell       float64
	originX    float64
	originZ    float64
	heights    []float64
	holes      []bool // per grid cell, (cols-1)*(rows-1)
}

// NewHeightfield creates a flat field of cols x rows samples.
func NewHeightfield(cols, rows int, cell, originX, originZ float64) (*Heightfield, error) {
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("terrain: heightfield needs at least 2x2 samples, got %dx%d", cols, rows)
	}
	if cell <= 0 {
		return nil, fmt.Errorf("terrain: cell size must be positive, got %v", cell)
	}
	return &Heightfield{
		cols:    cols,
		rows:    rows,
		cell:    cell,
		originX: originX,
		originZ: originZ,
		heights: make([]float64, cols*rows),
		holes:   make([]bool, (cols-1)*(rows-1)),
	}, nil
}

// Cols returns the number of samples along X.
func (h *Heightfield) Cols() int { return h.cols }

// Rows returns the number of samples along Z.
func (h *Heightfield) Rows() int { return h.rows }

// Cell returns the sample spacing.
func (h *Heightfield) Cell() float64 { return h.cell }

// Bounds returns the world-space XZ extent of the field.
func (h *Heightfield) Bounds() (minX, minZ, maxX, maxZ float64) {
	return h.originX, h.originZ,
		h.originX + float64(h.cols-1)*h.cell,
		h.originZ + float64(h.rows-1)*h.cell
}

// Set assigns the elevation of sample (i, j). Out-of-range indices are ignored.
func (h *Heightfield) Set(i, j int, elevation float64) {
	if i < 0 || i >= h.cols || j < 0 || j >= h.rows {
		return
	}
	h.heights[j*h.cols+i] = elevation
}

// At returns the elevation of sample (i, j), clamped to the grid.
func (h *Heightfield) At(i, j int) float64 {
	i = clampInt(i, 0, h.cols-1)
	j = clampInt(j, 0, h.rows-1)
	return h.heights[j*h.cols+i]
}

// SetHole marks the cell whose lower corner is sample (i, j) as open air.
func (h *Heightfield) SetHole(i, j int, hole bool) {
	if i < 0 || i >= h.cols-1 || j < 0 || j >= h.rows-1 {
		return
	}
	h.holes[j*(h.cols-1)+i] = hole
}

// cellAt maps a world position to its cell and the fractional offset inside it.
func (h *Heightfield) cellAt(x, z float64) (i, j int, fx, fz float64, ok bool) {
	gx := (x - h.originX) / h.cell
	gz := (z - h.originZ) / h.cell
	if gx < 0 || gz < 0 || gx > float64(h.cols-1) || gz > float64(h.rows-1) {
		return 0, 0, 0, 0, false
	}
	i = min(int(gx), h.cols-2)
	j = min(int(gz), h.rows-2)
	return i, j, gx - float64(i), gz - float64(j), true
}

// IsHole reports whether (x, z) lies in a hole cell or off the field.
func (h *Heightfield) IsHole(x, z float64) bool {
	i, j, _, _, ok := h.cellAt(x, z)
	return !ok || h.holes[j*(h.cols-1)+i]
}

// ElevationAt returns the bilinear elevation at (x, z).
// ok is false off the field or over a hole.
func (h *Heightfield) ElevationAt(x, z float64) (float64, bool) {
	i, j, fx, fz, ok := h.cellAt(x, z)
	if !ok || h.holes[j*(h.cols-1)+i] {
		return 0, false
	}
	h00 := h.At(i, j)
	h10 := h.At(i+1, j)
	h01 := h.At(i, j+1)
	h11 := h.At(i+1, j+1)
	top := h00 + (h10-h00)*fx
	bottom := h01 + (h11-h01)*fx
	return top + (bottom-top)*fz, true
}

// NormalAt returns the upward surface normal at (x, z) using central
// differences, falling back to one-sided differences near holes and edges.
func (h *Heightfield) NormalAt(x, z float64) motion.Vec3 {
	center, ok := h.ElevationAt(x, z)
	if !ok {
		return motion.Vec3{0, 1, 0}
	}
	d := h.cell * 0.5
	slope := func(dx, dz float64) float64 {
		hp, okp := h.ElevationAt(x+dx, z+dz)
		hm, okm := h.ElevationAt(x-dx, z-dz)
		switch {
		case okp && okm:
			return (hp - hm) / (2 * d)
		case okp:
			return (hp - center) / d
		case okm:
			return (center - hm) / d
		default:
			return 0
		}
	}
	return motion.Vec3{-slope(d, 0), 1, -slope(0, d)}.Normalize()
}

// ProbeVertical implements motion.TerrainProbe. A probe starting below the
// surface or over a hole misses.
func (h *Heightfield) ProbeVertical(origin motion.Vec3) (motion.Hit, bool) {
	elev, ok := h.ElevationAt(origin.X(), origin.Z())
	if !ok || origin.Y() < elev || math.IsNaN(elev) {
		return motion.Hit{}, false
	}
	return motion.Hit{Elevation: elev, Normal: h.NormalAt(origin.X(), origin.Z())}, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var _ motion.TerrainProbe = (*Heightfield)(nil)
