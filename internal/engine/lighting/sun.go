// Package lighting provides the directional shading ramp used by the
// software renderer.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/skinrender/pkg/math"
)

// DefaultMinBrightness keeps faces turned away from the sun visible.
const DefaultMinBrightness = 0.65

// DefaultSun is the camera-relative light direction: above, slightly to the
// right and in front of the model.
var DefaultSun = math.Vec3{X: 0.4, Y: 1.0, Z: -0.6}.Normalize()

// SunDirection converts longitude/latitude angles in degrees to a unit
// direction vector pointing towards the sun. Longitude rotates around the Y
// axis with 0 pointing at +Z, latitude is the elevation above the horizon.
func SunDirection(longitude, latitude float64) math.Vec3 {
	lon := math.Radians(longitude)
	lat := math.Radians(latitude)

	return math.Vec3{
		X: gomath.Cos(lat) * gomath.Sin(lon),
		Y: gomath.Sin(lat),
		Z: gomath.Cos(lat) * gomath.Cos(lon),
	}
}

// Brightness maps the angle between a unit face normal and the sun direction
// onto [floor, 1]: a face pointing straight at the sun gets 1, a face
// pointing directly away gets floor.
func Brightness(normal, sun math.Vec3, floor float64) float64 {
	b := floor + (1-floor)*(1+normal.Dot(sun))*0.5
	switch {
	case b < 0:
		return 0
	case b > 1:
		return 1
	default:
		return b
	}
}
