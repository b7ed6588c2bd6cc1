package terrain

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-snowboard/internal/motion"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newPlane(t *testing.T, slope float64) *Heightfield {
	t.Helper()
	hf, err := NewHeightfield(5, 5, 1, 0, 0)
	if err != nil {
		t.Fatalf("NewHeightfield: %v", err)
	}
	for j := 0; j < 5; j++ {
		for i := 0; i < 5; i++ {
			hf.Set(i, j, -slope*float64(j))
		}
	}
	return hf
}

func TestNewHeightfieldRejectsBadShape(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		cell       float64
	}{
		{"single column", 1, 4, 1},
		{"single row", 4, 1, 1},
		{"zero cell", 4, 4, 0},
		{"negative cell", 4, 4, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewHeightfield(tc.cols, tc.rows, tc.cell, 0, 0); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestElevationIsBilinear(t *testing.T) {
	hf, _ := NewHeightfield(2, 2, 2, 0, 0)
	hf.Set(0, 0, 0)
	hf.Set(1, 0, 2)
	hf.Set(0, 1, 4)
	hf.Set(1, 1, 6)

	tests := []struct {
		x, z     float64
		expected float64
	}{
		{0, 0, 0},
		{2, 0, 2},
		{0, 2, 4},
		{2, 2, 6},
		{1, 1, 3},
		{0.5, 1.5, 3.5},
	}
	for _, tc := range tests {
		got, ok := hf.ElevationAt(tc.x, tc.z)
		if !ok {
			t.Errorf("ElevationAt(%v, %v) missed", tc.x, tc.z)
			continue
		}
		if !approx(got, tc.expected) {
			t.Errorf("ElevationAt(%v, %v) = %v, expected %v", tc.x, tc.z, got, tc.expected)
		}
	}
}

func TestNormalFollowsSlope(t *testing.T) {
	hf := newPlane(t, 0.5)
	n := hf.NormalAt(2, 2)

	expected := motion.Vec3{0, 1, 0.5}.Normalize()
	if !n.ApproxEqualThreshold(expected, 1e-9) {
		t.Errorf("NormalAt = %v, expected %v", n, expected)
	}

	// One-sided difference at the edge gives the same answer on a plane.
	edge := hf.NormalAt(0, 0)
	if !edge.ApproxEqualThreshold(expected, 1e-9) {
		t.Errorf("edge NormalAt = %v, expected %v", edge, expected)
	}
}

func TestProbeVertical(t *testing.T) {
	hf := newPlane(t, 0)
	hf.Set(2, 2, 1)
	hf.SetHole(3, 3, true)

	tests := []struct {
		name   string
		origin motion.Vec3
		hit    bool
		elev   float64
	}{
		{"above surface", motion.Vec3{1, 10, 1}, true, 0},
		{"on a sample", motion.Vec3{2, 10, 2}, true, 1},
		{"below surface", motion.Vec3{2, 0.5, 2}, false, 0},
		{"off the grid", motion.Vec3{-1, 10, 1}, false, 0},
		{"past the far edge", motion.Vec3{1, 10, 4.5}, false, 0},
		{"in a hole", motion.Vec3{3.5, 10, 3.5}, false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, ok := hf.ProbeVertical(tc.origin)
			if ok != tc.hit {
				t.Fatalf("hit = %v, expected %v", ok, tc.hit)
			}
			if ok && !approx(h.Elevation, tc.elev) {
				t.Errorf("Elevation = %v, expected %v", h.Elevation, tc.elev)
			}
		})
	}
}

func TestFarEdgeIsInside(t *testing.T) {
	hf := newPlane(t, 1)
	got, ok := hf.ElevationAt(4, 4)
	if !ok || !approx(got, -4) {
		t.Errorf("ElevationAt(4, 4) = %v, %v; expected -4, true", got, ok)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	opts := DefaultOptions()
	a, err := Generate(42, opts, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _ := Generate(42, opts, 1)
	c, _ := Generate(43, opts, 1)

	same, differs := true, false
	for j := 0; j < a.Rows(); j += 7 {
		for i := 0; i < a.Cols(); i += 3 {
			if a.At(i, j) != b.At(i, j) {
				same = false
			}
			if a.At(i, j) != c.At(i, j) {
				differs = true
			}
		}
	}
	if !same {
		t.Error("same seed produced different courses")
	}
	if !differs {
		t.Error("different seeds produced identical courses")
	}
}

func TestGenerateDescendsAlongZ(t *testing.T) {
	course, err := Generate(7, DefaultOptions(), 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	top, ok := course.ElevationAt(0, 5)
	if !ok {
		t.Fatal("no ground near the top")
	}
	bottom, ok := course.ElevationAt(0, course.Finish())
	if !ok {
		t.Fatal("no ground at the finish")
	}
	if bottom >= top {
		t.Errorf("finish elevation %v should be below top %v", bottom, top)
	}
}

func TestGenerateEdgesAreHoles(t *testing.T) {
	opts := DefaultOptions()
	course, _ := Generate(1, opts, 1)

	if course.IsHole(0, opts.RunIn*0.5) {
		t.Error("center of the run-in should be rideable")
	}
	if !course.IsHole(opts.Width/2+opts.Margin/2, opts.RunIn*0.5) {
		t.Error("beyond the course width should be open air")
	}
}

func TestSpawnIsOnTheSurface(t *testing.T) {
	course, _ := Generate(99, DefaultOptions(), 2)
	spawn := course.Spawn()

	h, ok := course.ProbeVertical(spawn.Add(motion.Vec3{0, 50, 0}))
	if !ok {
		t.Fatal("spawn has no ground")
	}
	if !approx(h.Elevation, spawn.Y()) {
		t.Errorf("spawn y = %v, ground = %v", spawn.Y(), h.Elevation)
	}
}

func TestKickersRaiseTheSurface(t *testing.T) {
	opts := DefaultOptions()
	opts.NoiseAmplitude = 0
	opts.CrevasseChance = 0
	course, _ := Generate(5, opts, 1)

	kickers := course.Kickers()
	if len(kickers) == 0 {
		t.Fatal("expected kickers on the default course")
	}
	k := kickers[0]
	lip, ok := course.ElevationAt(k.X, k.ZEnd)
	if !ok {
		t.Fatal("no ground at the kicker lip")
	}
	base := -k.ZEnd * opts.Incline
	if lip-base < k.Height*0.9 {
		t.Errorf("lip rises %v above the slope, expected about %v", lip-base, k.Height)
	}
}

func TestCrevassesAreHoles(t *testing.T) {
	opts := DefaultOptions()
	opts.CrevasseChance = 1
	course, _ := Generate(3, opts, 1)

	crevasses := course.Crevasses()
	if len(crevasses) == 0 {
		t.Fatal("expected crevasses with chance 1")
	}
	cv := crevasses[0]
	x := (cv.XMin + cv.XMax) / 2
	z := (cv.ZStart + cv.ZEnd) / 2
	if !course.IsHole(x, z) {
		t.Errorf("crevasse center (%v, %v) should be a hole", x, z)
	}
	if cv.XMax-cv.XMin >= opts.Width {
		t.Error("a crevasse should leave part of the course rideable")
	}
}

func TestZeroRoughnessIsSmooth(t *testing.T) {
	opts := DefaultOptions()
	opts.KickerSpacing = 0
	course, _ := Generate(11, opts, 0)

	for _, z := range []float64{40, 120.5, 333} {
		got, ok := course.ElevationAt(3, z)
		if !ok {
			t.Fatalf("no ground at z=%v", z)
		}
		if !approx(got, -z*opts.Incline) {
			t.Errorf("z=%v: elevation %v, expected plain incline %v", z, got, -z*opts.Incline)
		}
	}
}

func TestGenerateRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Cell = 0
	if _, err := Generate(1, opts, 1); err == nil {
		t.Error("expected error for zero cell")
	}
}
