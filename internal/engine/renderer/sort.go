package renderer

import (
	"cmp"
	"slices"
)

// SortFaces orders faces back to front: depth descending, then by original
// index ascending so coplanar faces always draw in the same order.
func SortFaces(faces []ProjectedFace) {
	slices.SortFunc(faces, func(a, b ProjectedFace) int {
		if c := cmp.Compare(b.Depth, a.Depth); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
}
