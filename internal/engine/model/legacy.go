package model

import "image"

// CopyRegion copies the W x H block at (X, Y) by (DX, DY), mirrored as
// flagged.
type CopyRegion struct {
	X, Y, W, H int
	DX, DY     int
	FlipX      bool
	FlipY      bool
}

// LegacyMirrorCopies rebuilds the left leg and left arm of a 64x32 skin from
// the right-side unwraps. Each side strip lands on the opposite side.
var LegacyMirrorCopies = []CopyRegion{
	// right leg -> left leg
	{X: 4, Y: 16, W: 4, H: 4, DX: 16, DY: 32, FlipX: true},
	{X: 8, Y: 16, W: 4, H: 4, DX: 16, DY: 32, FlipX: true},
	{X: 0, Y: 20, W: 4, H: 12, DX: 24, DY: 32, FlipX: true},
	{X: 4, Y: 20, W: 4, H: 12, DX: 16, DY: 32, FlipX: true},
	{X: 8, Y: 20, W: 4, H: 12, DX: 8, DY: 32, FlipX: true},
	{X: 12, Y: 20, W: 4, H: 12, DX: 16, DY: 32, FlipX: true},
	// right arm -> left arm
	{X: 44, Y: 16, W: 4, H: 4, DX: -8, DY: 32, FlipX: true},
	{X: 48, Y: 16, W: 4, H: 4, DX: -8, DY: 32, FlipX: true},
	{X: 40, Y: 20, W: 4, H: 12, DX: 0, DY: 32, FlipX: true},
	{X: 44, Y: 20, W: 4, H: 12, DX: -8, DY: 32, FlipX: true},
	{X: 48, Y: 20, W: 4, H: 12, DX: -16, DY: 32, FlipX: true},
	{X: 52, Y: 20, W: 4, H: 12, DX: -8, DY: 32, FlipX: true},
}

// LegacyClearRegions are second-layer areas that a 64x32 skin does not have.
var LegacyClearRegions = []image.Rectangle{
	image.Rect(0, 32, 64, 48),
	image.Rect(0, 48, 16, 64),
	image.Rect(48, 48, 64, 64),
}
