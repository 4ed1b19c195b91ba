// Package preview composes a server-list entry: icon, hostname, MOTD and
// player count.
package preview

import (
	"image"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/skinrender/internal/assets"
	"github.com/Faultbox/skinrender/internal/config"
	"github.com/Faultbox/skinrender/internal/engine/canvas"
	"github.com/Faultbox/skinrender/internal/engine/font"
	"github.com/Faultbox/skinrender/internal/logger"
	"github.com/Faultbox/skinrender/internal/resources"
	"github.com/Faultbox/skinrender/pkg/colorcode"
	"github.com/Faultbox/skinrender/pkg/encoding"
)

// Layout of one entry in font pixels, before upscaling.
const (
	Width     = 305
	Height    = 36
	IconSize  = 32
	IconX     = 2
	IconY     = 2
	TextX     = IconX + IconSize + 3
	TitleLine = 3 + 7 // baselines
	MOTDLine  = 14 + 7
	LineStep  = 9
	MaxLines  = 2
	Margin    = 3
)

// Status is the server data shown in the entry.
type Status struct {
	Hostname string
	MOTD     string // may contain § codes and newlines
	Online   int
	Max      int
	Icon     image.Image // used when set
	Favicon  string      // data URI, used when Icon is nil
}

// Options controls composition.
type Options struct {
	Font     *font.Font
	Upscale  int // integer factor the entry is composed at; 0 means 1
	MaxWidth int // upper bound for the output width; 0 means the configured default
}

var defaultFonts = sync.OnceValue(func() *font.Cache {
	m := assets.NewManager()
	m.AddSource(resources.FS)
	return font.NewCache(font.NewLoader(m, false))
})

// DefaultOptions returns options using the bundled default font and the
// default upscale.
func DefaultOptions() Options {
	cfg := config.Default()
	return Options{
		Font:     defaultFonts().GetOrEmpty(cfg.Resources.Font),
		Upscale:  cfg.Preview.Upscale,
		MaxWidth: cfg.Preview.MaxWidth,
	}
}

// Render composes the entry at opts.Upscale and downsamples it to width
// pixels, keeping the entry's aspect ratio. Non-positive widths use the
// default width and larger ones are capped at opts.MaxWidth.
func Render(st Status, width int, opts Options) *image.NRGBA {
	up := max(opts.Upscale, 1)
	f := opts.Font
	if f == nil {
		f = font.Empty("fallback")
	}
	limits := config.Default().Preview
	if opts.MaxWidth > 0 {
		limits.MaxWidth = opts.MaxWidth
	}
	width = limits.ClampWidth(width)

	dst := canvas.New(Width*up, Height*up)
	drawBackground(dst, up)
	drawIcon(dst, resolveIcon(st), up)

	title := encoding.Lines(st.Hostname, 1)[0]
	f.DrawStyled(dst, title, TextX*up, TitleLine*up, font.Style{
		Color:  colorcode.White.NRGBA(),
		Bold:   true,
		Shadow: true,
		Scale:  up,
	})
	drawMOTD(dst, f, st.MOTD, up)
	drawPlayers(dst, f, st.Online, st.Max, up)

	height := max(width*Height/Width, 1)
	if width == dst.Rect.Dx() {
		return dst
	}
	return canvas.ScaleSmooth(dst, width, height)
}

// drawMOTD renders up to MaxLines lines. Styles carry across line breaks.
func drawMOTD(dst *image.NRGBA, f *font.Font, motd string, up int) {
	line := 0
	x := TextX * up
	for _, run := range colorcode.Parse(encoding.NormalizeText(motd)) {
		parts := strings.Split(run.Text, "\n")
		for i, text := range parts {
			if i > 0 {
				line++
				x = TextX * up
			}
			if line >= MaxLines {
				return
			}
			if text == "" {
				continue
			}
			x = f.DrawStyled(dst, text, x, (MOTDLine+line*LineStep)*up, runStyle(run.Style, up))
		}
	}
}

func runStyle(s colorcode.Style, up int) font.Style {
	return font.Style{
		Color:         s.ColorOr(colorcode.Gray).NRGBA(),
		Bold:          s.Format.Has(colorcode.Bold),
		Italic:        s.Format.Has(colorcode.Italic),
		Underline:     s.Format.Has(colorcode.Underline),
		Strikethrough: s.Format.Has(colorcode.Strikethrough),
		Shadow:        true,
		Scale:         up,
	}
}

// drawPlayers right-aligns "online/max" on the title line.
func drawPlayers(dst *image.NRGBA, f *font.Font, online, maxPlayers int, up int) {
	segments := []struct {
		text string
		c    colorcode.Color
	}{
		{strconv.Itoa(online), colorcode.Gray},
		{"/", colorcode.DarkGray},
		{strconv.Itoa(maxPlayers), colorcode.Gray},
	}
	total := 0
	for _, s := range segments {
		total += f.Measure(s.text, false)
	}

	x := (Width - Margin - total) * up
	for _, s := range segments {
		x = f.DrawStyled(dst, s.text, x, TitleLine*up, font.Style{
			Color:  s.c.NRGBA(),
			Shadow: true,
			Scale:  up,
		})
	}
}

func drawIcon(dst *image.NRGBA, icon image.Image, up int) {
	if icon == nil {
		return
	}
	r := image.Rect(IconX*up, IconY*up, (IconX+IconSize)*up, (IconY+IconSize)*up)
	canvas.FitInto(dst, r, icon)
}

// resolveIcon picks the explicit icon, then the favicon, then the bundled
// placeholder.
func resolveIcon(st Status) image.Image {
	if st.Icon != nil {
		return st.Icon
	}
	if st.Favicon != "" {
		data, _, err := encoding.DecodeDataURI(st.Favicon)
		if err == nil {
			var img *image.NRGBA
			if img, err = assets.DecodeImage(data); err == nil {
				return img
			}
		}
		logger.Warn("unusable server favicon", zap.Error(err))
	}
	return defaultIcon()
}

var defaultIcon = sync.OnceValue(func() image.Image {
	data, err := resources.FS.ReadFile(resources.DefaultServerIcon)
	if err != nil {
		logger.Error("bundled server icon unavailable", zap.Error(err))
		return nil
	}
	img, err := assets.DecodeImage(data)
	if err != nil {
		logger.Error("bundled server icon unreadable", zap.Error(err))
		return nil
	}
	return img
})

// backgroundTile is a 16x16 dark stone pattern.
var backgroundTile = sync.OnceValue(func() *image.NRGBA {
	tile := canvas.New(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			// integer hash, stable across runs
			h := uint32(x*73856093) ^ uint32(y*19349663)
			h ^= h >> 13
			h *= 0x5bd1e995
			h ^= h >> 15
			v := uint8(32 + h%14)
			tile.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v + 2, A: 255})
		}
	}
	return tile
})

func drawBackground(dst *image.NRGBA, up int) {
	tile := backgroundTile()
	canvas.Tile(dst, canvas.ScaleNearest(tile, tile.Rect.Dx()*up, tile.Rect.Dy()*up))
}
