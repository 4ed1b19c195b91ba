package model

import "github.com/Faultbox/skinrender/pkg/math"

// Overlay outsets keep the second layer clear of the base layer without a
// depth buffer.
const (
	HeadOverlayOutset = 0.5
	BodyOverlayOutset = 0.25
)

// Part identifies a body part box.
type Part int

// Parts in emission order.
const (
	PartHead Part = iota
	PartBody
	PartRightArm
	PartLeftArm
	PartRightLeg
	PartLeftLeg
)

// partDef is the static geometry for one body part.
type partDef struct {
	box      Box
	slimBox  Box
	base     [2]float64 // unwrap origin of the base layer
	overlay  [2]float64 // unwrap origin of the second layer
	outset   float64
	slimArms bool
}

func vec(x, y, z float64) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }

// Y-up, front at -Z, the player's right side at +X.
var parts = [...]partDef{
	PartHead: {
		box:     Box{Min: vec(-4, 24, -4), Max: vec(4, 32, 4)},
		base:    [2]float64{0, 0},
		overlay: [2]float64{32, 0},
		outset:  HeadOverlayOutset,
	},
	PartBody: {
		box:     Box{Min: vec(-4, 12, -2), Max: vec(4, 24, 2)},
		base:    [2]float64{16, 16},
		overlay: [2]float64{16, 32},
		outset:  BodyOverlayOutset,
	},
	PartRightArm: {
		box:      Box{Min: vec(4, 12, -2), Max: vec(8, 24, 2)},
		slimBox:  Box{Min: vec(4, 12, -2), Max: vec(7, 24, 2)},
		base:     [2]float64{40, 16},
		overlay:  [2]float64{40, 32},
		outset:   BodyOverlayOutset,
		slimArms: true,
	},
	PartLeftArm: {
		box:      Box{Min: vec(-8, 12, -2), Max: vec(-4, 24, 2)},
		slimBox:  Box{Min: vec(-7, 12, -2), Max: vec(-4, 24, 2)},
		base:     [2]float64{32, 48},
		overlay:  [2]float64{48, 48},
		outset:   BodyOverlayOutset,
		slimArms: true,
	},
	PartRightLeg: {
		box:     Box{Min: vec(0, 0, -2), Max: vec(4, 12, 2)},
		base:    [2]float64{0, 16},
		overlay: [2]float64{0, 32},
		outset:  BodyOverlayOutset,
	},
	PartLeftLeg: {
		box:     Box{Min: vec(-4, 0, -2), Max: vec(0, 12, 2)},
		base:    [2]float64{16, 48},
		overlay: [2]float64{0, 48},
		outset:  BodyOverlayOutset,
	},
}

// PartBox returns the base-layer box of p.
func PartBox(p Part, slim bool) Box {
	def := parts[p]
	if slim && def.slimArms {
		return def.slimBox
	}
	return def.box
}

// BoxFaces emits the six faces of b in the order north, south, east, west,
// up, down, textured from uv.
func BoxFaces(b Box, uv BoxUV) []Face {
	x0, y0, z0 := b.Min.X, b.Min.Y, b.Min.Z
	x1, y1, z1 := b.Max.X, b.Max.Y, b.Max.Z

	return []Face{
		quad(vec(x1, y1, z0), vec(x0, y1, z0), vec(x1, y0, z0), uv.North, vec(0, 0, -1)),
		quad(vec(x0, y1, z1), vec(x1, y1, z1), vec(x0, y0, z1), uv.South, vec(0, 0, 1)),
		quad(vec(x1, y1, z1), vec(x1, y1, z0), vec(x1, y0, z1), uv.East, vec(1, 0, 0)),
		quad(vec(x0, y1, z0), vec(x0, y1, z1), vec(x0, y0, z0), uv.West, vec(-1, 0, 0)),
		quad(vec(x1, y1, z1), vec(x0, y1, z1), vec(x1, y1, z0), uv.Up, vec(0, 1, 0)),
		quad(vec(x1, y0, z0), vec(x0, y0, z0), vec(x1, y0, z1), uv.Down, vec(0, -1, 0)),
	}
}

func quad(v0, v1, v2 math.Vec3, uv UVRect, normal math.Vec3) Face {
	return Face{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		V3:     v1.Add(v2).Sub(v0),
		UV:     uv,
		Normal: normal,
	}
}

// partFaces emits the faces of one part. The unwrap always uses the base
// box size so an inflated overlay box samples the same texel area.
func partFaces(p Part, slim, overlay bool) []Face {
	def := parts[p]
	box := PartBox(p, slim)
	size := box.Size()
	origin := def.base
	if overlay {
		origin = def.overlay
		box = box.Inflate(def.outset)
	}
	return BoxFaces(box, UnwrapBox(origin[0], origin[1], size.X, size.Y, size.Z))
}

// BuildFaces returns the full player model: all six base boxes, followed by
// their second-layer copies when overlay is set.
func BuildFaces(slim, overlay bool) []Face {
	return build([]Part{PartHead, PartBody, PartRightArm, PartLeftArm, PartRightLeg, PartLeftLeg}, slim, overlay)
}

// BuildHeadFaces returns the head box, followed by the hat layer when overlay
// is set.
func BuildHeadFaces(overlay bool) []Face {
	return build([]Part{PartHead}, false, overlay)
}

// Build returns the faces for k.
func Build(k Key) []Face {
	if k.HeadOnly {
		return BuildHeadFaces(k.Overlay)
	}
	return BuildFaces(k.Slim, k.Overlay)
}

func build(list []Part, slim, overlay bool) []Face {
	n := len(list) * 6
	if overlay {
		n *= 2
	}
	faces := make([]Face, 0, n)
	for _, p := range list {
		faces = append(faces, partFaces(p, slim, false)...)
	}
	if overlay {
		for _, p := range list {
			faces = append(faces, partFaces(p, slim, true)...)
		}
	}
	return faces
}
