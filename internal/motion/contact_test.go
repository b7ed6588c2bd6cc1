package motion

import (
	"math"
	"testing"
)

// patchProbe answers from a callback so tests can shape the ground per sample.
type patchProbe func(origin Vec3) (Hit, bool)

func (f patchProbe) ProbeVertical(origin Vec3) (Hit, bool) { return f(origin) }

func TestSampleContactAveragesHitsOnly(t *testing.T) {
	p := DefaultParams()
	// Ground only exists for x >= 0: the center and the two +X corners hit.
	probe := patchProbe(func(o Vec3) (Hit, bool) {
		if o.X() < 0 {
			return Hit{}, false
		}
		if o.X() == 0 {
			return Hit{Elevation: 1, Normal: Vec3{0, 1, 0}}, true
		}
		return Hit{Elevation: 4, Normal: Vec3{1, 1, 0}.Normalize()}, true
	})

	c := SampleContact(probe, Vec3{0, 5, 0}, 0, p)
	if c.Hits != 3 {
		t.Fatalf("Hits = %d, expected 3", c.Hits)
	}
	if !approx(c.Elevation, 3) {
		t.Errorf("Elevation = %v, expected 3", c.Elevation)
	}
	if !approx(c.Normal.Len(), 1) {
		t.Errorf("Normal should be normalized, length = %v", c.Normal.Len())
	}
	if c.Normal.X() <= 0 {
		t.Errorf("Normal should lean toward +X, got %v", c.Normal)
	}
}

func TestSampleContactKeepsInvertedNormals(t *testing.T) {
	// The center and +X corners report a downward normal, the -X corners up.
	probe := patchProbe(func(o Vec3) (Hit, bool) {
		if o.X() >= 0 {
			return Hit{Elevation: 1, Normal: Vec3{0, -1, 0}}, true
		}
		return Hit{Elevation: 1, Normal: Vec3{0, 1, 0}}, true
	})

	c := SampleContact(probe, Vec3{0, 5, 0}, 0, DefaultParams())
	if c.Hits != 5 {
		t.Fatalf("Hits = %d, expected 5", c.Hits)
	}
	if c.Normal != (Vec3{0, -1, 0}) {
		t.Errorf("Normal = %v, expected the downward majority to win", c.Normal)
	}
}

func TestSampleContactCancellingNormals(t *testing.T) {
	// The center misses; +X corners face up and -X corners face down.
	probe := patchProbe(func(o Vec3) (Hit, bool) {
		switch {
		case o.X() == 0:
			return Hit{}, false
		case o.X() > 0:
			return Hit{Elevation: 2, Normal: Vec3{0, 1, 0}}, true
		default:
			return Hit{Elevation: 2, Normal: Vec3{0, -1, 0}}, true
		}
	})

	c := SampleContact(probe, Vec3{0, 5, 0}, 0, DefaultParams())
	if c.Hits != 4 {
		t.Fatalf("Hits = %d, expected 4", c.Hits)
	}
	if !approx(c.Elevation, 2) {
		t.Errorf("Elevation = %v, expected 2", c.Elevation)
	}
	if c.Normal != (Vec3{0, 1, 0}) {
		t.Errorf("Normal = %v, expected world up when normals cancel", c.Normal)
	}
}

func TestSampleContactNoHits(t *testing.T) {
	c := SampleContact(voidProbe{}, Vec3{0, 0, 0}, 1.2, DefaultParams())
	if c.HasGround() {
		t.Error("expected no ground")
	}
	if c.Elevation != NoGround {
		t.Errorf("Elevation = %v, expected NoGround", c.Elevation)
	}
	if c.Normal != (Vec3{0, 1, 0}) {
		t.Errorf("Normal = %v, expected world up", c.Normal)
	}
}

func TestSampleContactNilProbe(t *testing.T) {
	c := SampleContact(nil, Vec3{}, 0, DefaultParams())
	if c.HasGround() {
		t.Error("nil probe should report no ground")
	}
}

func TestSampleContactRotatesFootprint(t *testing.T) {
	p := DefaultParams()
	var origins []Vec3
	probe := patchProbe(func(o Vec3) (Hit, bool) {
		origins = append(origins, o)
		return Hit{Elevation: 0, Normal: Vec3{0, 1, 0}}, true
	})

	SampleContact(probe, Vec3{10, 2, 10}, math.Pi/2, p)
	if len(origins) != 5 {
		t.Fatalf("probed %d points, expected 5", len(origins))
	}

	// Facing +X: the nose corners sit at x = 10 + half length.
	var nose int
	for _, o := range origins {
		if o.Y() != 2+p.ProbeHeight {
			t.Errorf("probe origin height = %v, expected %v", o.Y(), 2+p.ProbeHeight)
		}
		if approx(o.X(), 10+p.FootprintHalfLength) {
			nose++
		}
	}
	if nose != 2 {
		t.Errorf("found %d nose probes at heading pi/2, expected 2", nose)
	}
}

func TestAirMode(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		expected AirMode
	}{
		{"nothing held", Input{}, AirNeutral},
		{"jump only", Input{Jump: true}, AirNeutral},
		{"left", Input{Left: true}, AirSpin},
		{"spin right only", Input{SpinRight: true}, AirSpin},
		{"forward", Input{Forward: true}, AirFlip},
		{"backward with lateral", Input{Backward: true, Right: true}, AirFlip},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.AirMode(); got != tc.expected {
				t.Errorf("AirMode() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
