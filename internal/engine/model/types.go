// Package model builds the textured-quad geometry of the player model.
package model

import "github.com/Faultbox/skinrender/pkg/math"

// UVRect is a rectangle in skin-texture pixels. U0/V0 is the texel edge at
// the face's first corner, U1/V1 the opposite edge. U0 may exceed U1 when a
// face is mirrored.
type UVRect struct {
	U0, V0, U1, V1 float64
}

// Width returns the absolute texel width of the rectangle.
func (r UVRect) Width() float64 {
	if r.U1 < r.U0 {
		return r.U0 - r.U1
	}
	return r.U1 - r.U0
}

// Height returns the absolute texel height of the rectangle.
func (r UVRect) Height() float64 {
	if r.V1 < r.V0 {
		return r.V0 - r.V1
	}
	return r.V1 - r.V0
}

// Empty reports whether the rectangle covers no texels.
func (r UVRect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Face is one textured quad. V0 is the top-left corner, V1 top-right and V2
// bottom-left as seen from outside the box; V3 = V1 + V2 - V0. UV maps V0 to
// (U0, V0), V1 to (U1, V0) and V2 to (U0, V1).
type Face struct {
	V0, V1, V2, V3 math.Vec3
	UV             UVRect
	Normal         math.Vec3
}

// Center returns the mean of the four corners.
func (f Face) Center() math.Vec3 {
	return f.V0.Add(f.V1).Add(f.V2).Add(f.V3).Scale(0.25)
}

// Box is an axis-aligned cuboid in model space, sized in skin pixels.
type Box struct {
	Min, Max math.Vec3
}

// Size returns the box extent along each axis.
func (b Box) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Inflate grows the box by d on every side.
func (b Box) Inflate(d float64) Box {
	o := math.Vec3{X: d, Y: d, Z: d}
	return Box{Min: b.Min.Sub(o), Max: b.Max.Add(o)}
}

// Key selects a model variant.
type Key struct {
	Slim     bool // 3px arms instead of 4px
	Overlay  bool // emit the second skin layer
	HeadOnly bool // head box only
}

// Bounds holds the axis-aligned bounding box of a face list.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// FaceBounds returns the bounds of all face corners. An empty list yields a
// zero Bounds.
func FaceBounds(faces []Face) Bounds {
	if len(faces) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: faces[0].V0, Max: faces[0].V0}
	for i := range faces {
		f := &faces[i]
		for _, p := range [4]math.Vec3{f.V0, f.V1, f.V2, f.V3} {
			updateBounds(&b, p)
		}
	}
	return b
}

func updateBounds(b *Bounds, p math.Vec3) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
}
