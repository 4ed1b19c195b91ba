package model

// BoxUV holds the six face rectangles of a box unwrapped in the standard
// skin layout.
type BoxUV struct {
	North, South, East, West, Up, Down UVRect
}

// UnwrapBox lays out the faces of a w x h x d box whose unwrap starts at
// texel (u, v):
//
//	      [up ][down]
//	[east][north][west][south]
//
// East is the player's right side, north the front.
func UnwrapBox(u, v, w, h, d float64) BoxUV {
	return BoxUV{
		Up:    UVRect{U0: u + d, V0: v, U1: u + d + w, V1: v + d},
		Down:  UVRect{U0: u + d + w, V0: v, U1: u + d + 2*w, V1: v + d},
		East:  UVRect{U0: u, V0: v + d, U1: u + d, V1: v + d + h},
		North: UVRect{U0: u + d, V0: v + d, U1: u + d + w, V1: v + d + h},
		West:  UVRect{U0: u + d + w, V0: v + d, U1: u + 2*d + w, V1: v + d + h},
		South: UVRect{U0: u + 2*d + w, V0: v + d, U1: u + 2*d + 2*w, V1: v + d + h},
	}
}
