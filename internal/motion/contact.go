package motion

import "github.com/go-gl/mathgl/mgl64"

// worldUp is the fallback normal when nothing is under the rider.
var worldUp = Vec3{0, 1, 0}

// Contact is the averaged ground estimate under the rider for one tick.
type Contact struct {
	Elevation float64 // NoGround when Hits == 0
	Normal    Vec3    // normalized average, world up when Hits == 0
	Hits      int
}

// HasGround reports whether any probe hit terrain.
func (c Contact) HasGround() bool {
	return c.Hits > 0
}

// footprintOffsets returns the five rider-local probe offsets: center plus
// the four corners of the board rectangle.
func footprintOffsets(p Params) [5]Vec3 {
	l, w := p.FootprintHalfLength, p.FootprintHalfWidth
	return [5]Vec3{
		{0, 0, 0},
		{w, 0, l},
		{-w, 0, l},
		{w, 0, -l},
		{-w, 0, -l},
	}
}

// SampleContact probes the terrain under pos with the footprint rotated by
// heading and averages elevation and normal over successful hits only.
// Inverted normals are averaged as given.
func SampleContact(probe TerrainProbe, pos Vec3, heading float64, p Params) Contact {
	c := Contact{Elevation: NoGround, Normal: worldUp}
	if probe == nil {
		return c
	}

	rot := mgl64.Rotate3DY(heading)
	var elevSum float64
	var normalSum Vec3
	for _, off := range footprintOffsets(p) {
		origin := pos.Add(rot.Mul3x1(off))
		origin[1] = pos.Y() + p.ProbeHeight

		hit, ok := probe.ProbeVertical(origin)
		if !ok {
			continue
		}
		elevSum += hit.Elevation
		normalSum = normalSum.Add(hit.Normal)
		c.Hits++
	}

	if c.Hits == 0 {
		return c
	}
	c.Elevation = elevSum / float64(c.Hits)
	if n := normalSum.Len(); n > 1e-9 {
		c.Normal = normalSum.Mul(1 / n)
	}
	return c
}
