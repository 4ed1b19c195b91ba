package skin

import (
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/skinrender/internal/assets"
	"github.com/Faultbox/skinrender/internal/config"
	"github.com/Faultbox/skinrender/internal/engine/camera"
	"github.com/Faultbox/skinrender/internal/engine/canvas"
	"github.com/Faultbox/skinrender/internal/engine/lighting"
	"github.com/Faultbox/skinrender/internal/engine/model"
	"github.com/Faultbox/skinrender/internal/engine/renderer"
	"github.com/Faultbox/skinrender/internal/logger"
)

// Options controls a part render.
type Options struct {
	Size    int                 // output height in pixels; clamped by Config
	Overlay bool                // draw the second skin layer
	Slim    bool                // 3px arms
	Config  config.RenderConfig // zero value means config.Default().Render
}

// DefaultOptions returns options for size using the default render config.
func DefaultOptions(size int) Options {
	cfg := config.Default().Render
	return Options{Size: size, Overlay: cfg.Overlay, Config: cfg}
}

// renderConfig substitutes the default render config for a zero one and
// the default size bounds for unset ones.
func renderConfig(c config.RenderConfig) config.RenderConfig {
	def := config.Default().Render
	if c == (config.RenderConfig{}) {
		return def
	}
	if c.MaxSize <= 0 {
		c.MaxSize = def.MaxSize
	}
	if c.DefaultSize <= 0 {
		c.DefaultSize = def.DefaultSize
	}
	return c
}

type renderFunc func(tex *image.NRGBA, p Part, size int, opts Options) *image.NRGBA

var renderers = map[Kind]renderFunc{
	Flat:      renderFlat,
	Isometric: renderIsometric,
}

// Render draws part from tex. Legacy 64x32 skins are upgraded first; a nil
// texture renders the bundled default skin.
func Render(tex *image.NRGBA, part Part, opts Options) *image.NRGBA {
	if tex == nil {
		tex = DefaultSkin()
	}
	opts.Config = renderConfig(opts.Config)
	size := opts.Config.ClampSize(opts.Size)
	tex = UpgradeLegacy(assets.ToNRGBA(tex))

	fn, ok := renderers[part.Kind]
	if !ok {
		logger.Warn("no renderer for part", zap.String("part", part.Name), zap.Int("kind", int(part.Kind)))
		return canvas.New(size, size)
	}
	return fn(tex, part, size, opts)
}

// renderFlat composes the part's layers at texel scale and upscales the
// result with nearest-neighbour sampling so the output is size pixels tall.
func renderFlat(tex *image.NRGBA, p Part, size int, opts Options) *image.NRGBA {
	s := max(tex.Bounds().Dx()/64, 1)
	base := canvas.New(p.Width*s, p.Height*s)

	compose := func(layers []Layer) {
		for _, l := range layers {
			src := image.Rect(l.Src.Min.X*s, l.Src.Min.Y*s, l.Src.Max.X*s, l.Src.Max.Y*s)
			canvas.Composite(base, canvas.Crop(tex, src), l.Dst.Mul(s))
		}
	}
	compose(p.layers(opts.Slim))
	if opts.Overlay {
		compose(p.overlays(opts.Slim))
	}

	width := max(size*p.Width/p.Height, 1)
	return canvas.ScaleNearest(base, width, size)
}

// renderIsometric renders the head or the whole player at the configured
// isometric angles.
func renderIsometric(tex *image.NRGBA, p Part, size int, opts Options) *image.NRGBA {
	key := model.Key{Slim: opts.Slim, Overlay: opts.Overlay, HeadOnly: p.HeadOnly}
	faces := model.Faces(key)
	if tex.Bounds().Dx() != 64 {
		faces = scaleUV(faces, float64(tex.Bounds().Dx())/64)
	}

	b := model.FaceBounds(faces)
	view := camera.Isometric(camera.FitCenter(b.Min, b.Max), opts.Config.IsoYaw, opts.Config.IsoPitch)
	if p.HeadOnly {
		view.Aspect = 1
	}

	ropts := renderer.DefaultOptions()
	ropts.MinBrightness = opts.Config.MinBrightness
	if sun := opts.Config.Sun; sun != nil {
		ropts.Sun = lighting.SunDirection(sun.Longitude, sun.Latitude)
	}
	return renderer.Render([]renderer.Batch{{Texture: tex, Faces: faces}}, view, size, ropts)
}

// scaleUV returns a copy of faces with UVs scaled for a high-resolution skin.
func scaleUV(faces []model.Face, k float64) []model.Face {
	out := make([]model.Face, len(faces))
	for i, f := range faces {
		f.UV = model.UVRect{U0: f.UV.U0 * k, V0: f.UV.V0 * k, U1: f.UV.U1 * k, V1: f.UV.V1 * k}
		out[i] = f
	}
	return out
}
