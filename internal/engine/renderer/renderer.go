// Package renderer rasterizes textured quads into an RGBA buffer entirely
// in software: rotate, project, shade, depth-sort, scanline fill.
package renderer

import (
	"image"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/skinrender/internal/engine/camera"
	"github.com/Faultbox/skinrender/internal/engine/canvas"
	"github.com/Faultbox/skinrender/internal/engine/lighting"
	"github.com/Faultbox/skinrender/internal/engine/model"
	"github.com/Faultbox/skinrender/internal/logger"
	"github.com/Faultbox/skinrender/pkg/math"
)

// Batch is a list of faces sampling the same texture.
type Batch struct {
	Texture *image.NRGBA
	Faces   []model.Face
}

// Options tunes shading and culling.
type Options struct {
	// MinBrightness is the shading floor for faces turned away from the sun.
	MinBrightness float64
	// Sun is the light direction in view-aligned world space. The zero
	// vector selects lighting.DefaultSun.
	Sun math.Vec3
	// TwoSided disables back-face culling.
	TwoSided bool
}

// DefaultOptions returns the standard shading setup.
func DefaultOptions() Options {
	return Options{
		MinBrightness: lighting.DefaultMinBrightness,
		Sun:           lighting.DefaultSun,
	}
}

// Render draws all batches as seen from view into a new buffer height
// pixels tall. The width follows view.Aspect, or the model's projected
// extent when Aspect is zero.
func Render(batches []Batch, view camera.View, height int, opts Options) *image.NRGBA {
	if height < 1 {
		height = 1
	}

	faces := Project(batches, view, opts)
	frame := fit(faces, view.Aspect, height)
	dst := canvas.New(frame.width, height)

	visible := faces[:0]
	for _, pf := range faces {
		if pf.Culled && !opts.TwoSided {
			continue
		}
		visible = append(visible, frame.toScreen(pf))
	}
	SortFaces(visible)

	for i := range visible {
		pf := &visible[i]
		DrawQuad(dst, batches[pf.Batch].Texture, pf)
	}

	logger.Debug("rendered faces",
		zap.Int("faces", len(faces)),
		zap.Int("drawn", len(visible)),
		zap.Int("width", frame.width),
		zap.Int("height", height))
	return dst
}

// frame maps view-space x/y onto output pixels.
type frame struct {
	minX, maxY float64
	scale      float64
	offX, offY float64
	width      int
}

// fit computes a uniform scale that fits the projected extent of all faces
// into the output, centred. Extents below one unit are clamped to one.
func fit(faces []ProjectedFace, aspect float64, height int) frame {
	minX, minY := gomath.Inf(1), gomath.Inf(1)
	maxX, maxY := gomath.Inf(-1), gomath.Inf(-1)
	for i := range faces {
		for _, p := range faces[i].P {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	if len(faces) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	mw := max(maxX-minX, 1)
	mh := max(maxY-minY, 1)
	if aspect <= 0 {
		aspect = mw / mh
	}
	width := max(int(gomath.Round(float64(height)*aspect)), 1)

	scale := min(float64(width)/mw, float64(height)/mh)
	return frame{
		minX:  minX,
		maxY:  maxY,
		scale: scale,
		offX:  (float64(width) - (maxX-minX)*scale) / 2,
		offY:  (float64(height) - (maxY-minY)*scale) / 2,
		width: width,
	}
}

// toScreen converts a face's view-space corners to pixel space; screen y
// grows downwards.
func (f frame) toScreen(pf ProjectedFace) ProjectedFace {
	for i, p := range pf.P {
		pf.P[i] = Point{
			X: f.offX + (p.X-f.minX)*f.scale,
			Y: f.offY + (f.maxY-p.Y)*f.scale,
		}
	}
	return pf
}
