package terrain

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/zeebo/xxh3"

	"github.com/vovakirdan/tui-snowboard/internal/motion"
)

// Options shape a generated course.
type Options struct {
	Length  float64 // along +Z, meters
	Width   float64 // rideable width, centered on X = 0
	Margin  float64 // open air beyond each side of the rideable width
	Cell    float64 // heightfield spacing
	Incline float64 // elevation drop per meter of Z

	NoiseAmplitude float64 // peak bump height at roughness 1
	NoiseScale     float64 // distance between noise lattice points

	KickerSpacing float64 // Z distance between kickers; 0 disables them
	KickerLength  float64
	KickerHeight  float64
	KickerWidth   float64

	CrevasseChance float64 // probability per kicker gap of a crevasse
	CrevasseLength float64

	RunIn float64 // flat, feature-free distance after the spawn
}

// DefaultOptions returns the course the game ships with.
func DefaultOptions() Options {
	return Options{
		Length:         600,
		Width:          24,
		Margin:         4,
		Cell:           1,
		Incline:        0.25,
		NoiseAmplitude: 0.6,
		NoiseScale:     6,
		KickerSpacing:  60,
		KickerLength:   6,
		KickerHeight:   2.5,
		KickerWidth:    8,
		CrevasseChance: 0.3,
		CrevasseLength: 3,
		RunIn:          30,
	}
}

// Validate reports options that cannot produce a heightfield.
func (o Options) Validate() error {
	switch {
	case o.Length <= 0:
		return fmt.Errorf("terrain: length must be positive, got %v", o.Length)
	case o.Width <= 0:
		return fmt.Errorf("terrain: width must be positive, got %v", o.Width)
	case o.Cell <= 0:
		return fmt.Errorf("terrain: cell must be positive, got %v", o.Cell)
	case o.NoiseScale <= 0:
		return fmt.Errorf("terrain: noise scale must be positive, got %v", o.NoiseScale)
	case o.Margin < 0 || o.KickerSpacing < 0 || o.CrevasseChance < 0 || o.CrevasseChance > 1:
		return fmt.Errorf("terrain: margin, kicker spacing and crevasse chance must be in range")
	}
	return nil
}

// Kicker is a jump ramp across the fall line. The lip is at ZEnd.
type Kicker struct {
	X, ZStart, ZEnd float64
	Width, Height   float64
}

// Crevasse is a band of open air across the course.
type Crevasse struct {
	ZStart, ZEnd float64
	XMin, XMax   float64
}

// Course is a generated run: the heightfield plus its features.
type Course struct {
	*Heightfield
	seed      uint64
	opts      Options
	kickers   []Kicker
	crevasses []Crevasse
}

// Generate builds a deterministic course from seed. roughness scales the
// noise amplitude; 1 is the nominal surface.
func Generate(seed uint64, opts Options, roughness float64) (*Course, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if roughness < 0 || !isFinite(roughness) {
		roughness = 0
	}

	half := opts.Width/2 + opts.Margin
	cols := int(math.Ceil(2*half/opts.Cell)) + 1
	rows := int(math.Ceil(opts.Length/opts.Cell)) + 1
	hf, err := NewHeightfield(cols, rows, opts.Cell, -half, 0)
	if err != nil {
		return nil, fmt.Errorf("terrain: generate: %w", err)
	}

	c := &Course{Heightfield: hf, seed: seed, opts: opts}
	c.placeFeatures()

	amp := opts.NoiseAmplitude * roughness
	for j := 0; j < rows; j++ {
		z := float64(j) * opts.Cell
		// Bumps fade in after the run-in so the spawn is predictable.
		fade := smoothstep(clamp((z-opts.RunIn*0.5)/(opts.RunIn*0.5+1e-9), 0, 1))
		for i := 0; i < cols; i++ {
			x := -half + float64(i)*opts.Cell
			h := -z*opts.Incline + amp*fade*(c.noise(x, z)-0.5)*2
			h += c.kickerHeight(x, z)
			hf.Set(i, j, h)
		}
	}

	for j := 0; j < rows-1; j++ {
		zc := (float64(j) + 0.5) * opts.Cell
		for i := 0; i < cols-1; i++ {
			xc := -half + (float64(i)+0.5)*opts.Cell
			if math.Abs(xc) > opts.Width/2 || c.inCrevasse(xc, zc) {
				hf.SetHole(i, j, true)
			}
		}
	}
	return c, nil
}

// placeFeatures lays kickers at fixed spacing with a hashed lateral offset,
// and crevasses in some of the gaps between them.
func (c *Course) placeFeatures() {
	o := c.opts
	if o.KickerSpacing <= 0 {
		return
	}
	lateral := math.Max(0, o.Width/2-o.KickerWidth/2-1)
	for n, z := 0, o.RunIn+o.KickerSpacing*0.5; z+o.KickerLength < o.Length-o.RunIn; n, z = n+1, z+o.KickerSpacing {
		x := (c.unit(uint64(n), 1)*2 - 1) * lateral
		c.kickers = append(c.kickers, Kicker{
			X:      x,
			ZStart: z,
			ZEnd:   z + o.KickerLength,
			Width:  o.KickerWidth,
			Height: o.KickerHeight,
		})

		if o.CrevasseLength <= 0 || c.unit(uint64(n), 2) >= o.CrevasseChance {
			continue
		}
		// Crevasses sit in the landing gap but leave one side rideable.
		cz := z + o.KickerLength + o.KickerSpacing*0.4
		if cz+o.CrevasseLength >= o.Length-o.RunIn {
			continue
		}
		cv := Crevasse{ZStart: cz, ZEnd: cz + o.CrevasseLength, XMin: -o.Width / 2, XMax: o.Width / 2}
		if c.unit(uint64(n), 3) < 0.5 {
			cv.XMax = -o.Width / 6
		} else {
			cv.XMin = o.Width / 6
		}
		c.crevasses = append(c.crevasses, cv)
	}
}

func (c *Course) kickerHeight(x, z float64) float64 {
	for _, k := range c.kickers {
		if z < k.ZStart || z > k.ZEnd || math.Abs(x-k.X) > k.Width/2 {
			continue
		}
		t := (z - k.ZStart) / (k.ZEnd - k.ZStart)
		// Concave ramp so the lip kicks the rider up.
		return k.Height * t * t
	}
	return 0
}

func (c *Course) inCrevasse(x, z float64) bool {
	for _, cv := range c.crevasses {
		if z >= cv.ZStart && z <= cv.ZEnd && x >= cv.XMin && x <= cv.XMax {
			return true
		}
	}
	return false
}

// noise is smooth value noise in [0, 1] over a hashed lattice.
func (c *Course) noise(x, z float64) float64 {
	gx := x / c.opts.NoiseScale
	gz := z / c.opts.NoiseScale
	x0, z0 := math.Floor(gx), math.Floor(gz)
	tx, tz := smoothstep(gx-x0), smoothstep(gz-z0)

	ix, iz := int64(x0), int64(z0)
	v00 := c.lattice(ix, iz)
	v10 := c.lattice(ix+1, iz)
	v01 := c.lattice(ix, iz+1)
	v11 := c.lattice(ix+1, iz+1)

	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*tz
}

func (c *Course) lattice(ix, iz int64) float64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(ix))
	binary.LittleEndian.PutUint64(buf[8:], uint64(iz))
	return toUnit(xxh3.HashSeed(buf[:], c.seed))
}

// unit returns a deterministic value in [0, 1) for feature n and a salt.
func (c *Course) unit(n, salt uint64) float64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], n)
	binary.LittleEndian.PutUint64(buf[8:], salt)
	return toUnit(xxh3.HashSeed(buf[:], c.seed^0x9e3779b97f4a7c15))
}

// Seed returns the seed the course was generated from.
func (c *Course) Seed() uint64 { return c.seed }

// Options returns the generation options.
func (c *Course) Options() Options { return c.opts }

// Spawn returns the start point on the surface at the top of the course.
func (c *Course) Spawn() motion.Vec3 {
	z := c.opts.Cell
	h, ok := c.ElevationAt(0, z)
	if !ok {
		h = -z * c.opts.Incline
	}
	return motion.Vec3{0, h, z}
}

// Finish returns the Z of the finish line.
func (c *Course) Finish() float64 {
	return c.opts.Length - c.opts.RunIn*0.5
}

// Kickers returns the course's ramps in downhill order.
func (c *Course) Kickers() []Kicker {
	return append([]Kicker(nil), c.kickers...)
}

// Crevasses returns the course's open-air bands in downhill order.
func (c *Course) Crevasses() []Crevasse {
	return append([]Crevasse(nil), c.crevasses...)
}

func toUnit(h uint64) float64 {
	return float64(h>>11) / (1 << 53)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
