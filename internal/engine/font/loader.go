package font

import (
	"errors"
	"fmt"
	"image"
	gomath "math"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/skinrender/internal/logger"
)

var (
	// ErrFontNotFound is returned when the top-level descriptor is missing.
	ErrFontNotFound = errors.New("font not found")
	// ErrCycle marks a reference provider that points back into its own
	// chain. The reference is skipped.
	ErrCycle = errors.New("font reference cycle")
)

// Source supplies raw resources by slash-separated path.
type Source interface {
	Load(path string) ([]byte, error)
	LoadImage(path string) (*image.NRGBA, error)
}

// Loader builds fonts from descriptors.
type Loader struct {
	src     Source
	uniform bool
	log     *zap.Logger
}

// NewLoader creates a loader reading from src. uniform selects which
// filtered providers are active.
func NewLoader(src Source, uniform bool) *Loader {
	return &Loader{
		src:     src,
		uniform: uniform,
		log:     logger.Named("font"),
	}
}

// Load builds the font with the given id. A missing top-level descriptor is
// an error; problems with individual providers, atlases or the width table
// are logged and the font is built from whatever loaded.
func (l *Loader) Load(id string) (*Font, error) {
	data, err := l.src.Load(DescriptorPath(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontNotFound, id, err)
	}
	desc, err := parseDescriptor(data)
	if err != nil {
		return nil, fmt.Errorf("loading font %s: %w", id, err)
	}

	f := Empty(id)
	widths := l.loadWidths(id)
	if widths != nil && widths.MissingChar != nil {
		mc := widths.MissingChar
		f.DefaultWidth = int(gomath.Round(mc.Width))
		if mc.BoldOffset != nil {
			f.DefaultBoldOffset = *mc.BoldOffset
		}
		if mc.ShadowOffset != nil {
			f.DefaultShadowOffset = *mc.ShadowOffset
		}
	}

	b := &builder{loader: l, font: f, widths: widths, visited: map[string]bool{DescriptorPath(id): true}}
	b.addProviders(desc.Providers)
	if b.errs != nil {
		l.log.Warn("font loaded with errors",
			zap.String("font", id),
			zap.Errors("errors", multierr.Errors(b.errs)))
	}
	// width-table entries for characters no provider defines
	if widths != nil {
		for s, e := range widths.Chars {
			r, ok := singleRune(s)
			if !ok {
				continue
			}
			if _, ok := f.glyphs[r]; ok {
				continue
			}
			if _, ok := f.advances[r]; !ok {
				f.advances[r] = int(gomath.Round(e.Width))
			}
			if e.BoldOffset != nil {
				f.boldOffsets[r] = *e.BoldOffset
			}
		}
	}

	l.log.Debug("font loaded",
		zap.String("font", id),
		zap.Int("glyphs", len(f.glyphs)),
		zap.Int("advances", len(f.advances)))
	return f, nil
}

func (l *Loader) loadWidths(id string) *WidthTable {
	p := WidthsPath(id)
	data, err := l.src.Load(p)
	if err != nil {
		l.log.Debug("no width table", zap.String("font", id), zap.String("path", p))
		return nil
	}
	w, err := parseWidthTable(data)
	if err != nil {
		l.log.Warn("bad width table", zap.String("path", p), zap.Error(err))
		return nil
	}
	return w
}

// builder accumulates one font across nested reference providers.
type builder struct {
	loader  *Loader
	font    *Font
	widths  *WidthTable
	visited map[string]bool
	errs    error
}

func (b *builder) addProviders(providers []Provider) {
	for i := range providers {
		p := &providers[i]
		if !p.Filter.Accepts(b.loader.uniform) {
			continue
		}
		switch p.Type {
		case ProviderBitmap:
			b.errs = multierr.Append(b.errs, b.addBitmap(p))
		case ProviderSpace:
			b.addSpace(p)
		case ProviderReference:
			b.errs = multierr.Append(b.errs, b.addReference(p.ID))
		default:
			b.errs = multierr.Append(b.errs, fmt.Errorf("unsupported provider type %q", p.Type))
		}
	}
}

func (b *builder) addReference(id string) error {
	key := DescriptorPath(id)
	if b.visited[key] {
		b.loader.log.Warn("skipping font reference cycle", zap.String("id", id))
		return fmt.Errorf("%w: %s", ErrCycle, id)
	}
	b.visited[key] = true

	data, err := b.loader.src.Load(key)
	if err != nil {
		return fmt.Errorf("reference %s: %w", id, err)
	}
	desc, err := parseDescriptor(data)
	if err != nil {
		return fmt.Errorf("reference %s: %w", id, err)
	}
	b.addProviders(desc.Providers)
	return nil
}

func (b *builder) addSpace(p *Provider) {
	for s, adv := range p.Advances {
		r, ok := singleRune(s)
		if !ok {
			continue
		}
		if _, ok := b.font.glyphs[r]; ok {
			continue
		}
		if _, ok := b.font.advances[r]; ok {
			continue
		}
		b.font.advances[r] = int(gomath.Round(adv))
	}
}

func (b *builder) addBitmap(p *Provider) error {
	if len(p.Chars) == 0 {
		return fmt.Errorf("bitmap %s: no chars", p.File)
	}
	atlas, err := b.loader.src.LoadImage(TexturePath(p.File))
	if err != nil {
		return fmt.Errorf("bitmap %s: %w", p.File, err)
	}

	rows := len(p.Chars)
	cols := 0
	grid := make([][]rune, rows)
	for i, row := range p.Chars {
		grid[i] = []rune(row)
		cols = max(cols, len(grid[i]))
	}
	if cols == 0 {
		return fmt.Errorf("bitmap %s: empty chars grid", p.File)
	}
	cellW := atlas.Rect.Dx() / cols
	cellH := atlas.Rect.Dy() / rows
	if cellW == 0 || cellH == 0 {
		return fmt.Errorf("bitmap %s: atlas %v too small for %dx%d grid", p.File, atlas.Rect.Size(), cols, rows)
	}

	height := p.Height
	if height == 0 {
		height = 8
	}
	scale := float64(height) / float64(cellH)
	if b.font.LineHeight < height+1 {
		b.font.LineHeight = height + 1
	}
	b.font.Ascent = max(b.font.Ascent, p.Ascent)

	for y, row := range grid {
		for x, r := range row {
			if r == 0 {
				continue
			}
			if _, ok := b.font.glyphs[r]; ok {
				continue
			}
			if _, ok := b.font.advances[r]; ok {
				continue
			}
			cell := image.Rect(x*cellW, y*cellH, (x+1)*cellW, (y+1)*cellH)
			b.font.glyphs[r] = b.glyph(r, atlas, cell, p.Ascent, scale)
		}
	}
	return nil
}

func (b *builder) glyph(r rune, atlas *image.NRGBA, cell image.Rectangle, ascent int, scale float64) *Glyph {
	g := &Glyph{
		Atlas:        atlas,
		Rect:         cell,
		Ascent:       ascent,
		Scale:        scale,
		BoldOffset:   b.font.DefaultBoldOffset,
		ShadowOffset: b.font.DefaultShadowOffset,
	}
	if e, ok := b.widthEntry(r); ok {
		g.Advance = int(gomath.Round(e.Width))
		if e.BoldOffset != nil {
			g.BoldOffset = *e.BoldOffset
		}
		if e.ShadowOffset != nil {
			g.ShadowOffset = *e.ShadowOffset
		}
		return g
	}
	g.Advance = int(gomath.Round(float64(ScanWidth(atlas, cell)) * scale))
	return g
}

func (b *builder) widthEntry(r rune) (WidthEntry, bool) {
	if b.widths == nil {
		return WidthEntry{}, false
	}
	e, ok := b.widths.Chars[string(r)]
	return e, ok
}

// ScanWidth returns the right-most column of cell holding a visible texel,
// plus one. A blank cell scans as zero.
func ScanWidth(atlas *image.NRGBA, cell image.Rectangle) int {
	cell = cell.Intersect(atlas.Rect)
	for x := cell.Max.X - 1; x >= cell.Min.X; x-- {
		for y := cell.Min.Y; y < cell.Max.Y; y++ {
			if atlas.Pix[atlas.PixOffset(x, y)+3] != 0 {
				return x - cell.Min.X + 1
			}
		}
	}
	return 0
}

func singleRune(s string) (rune, bool) {
	rs := []rune(s)
	if len(rs) != 1 {
		return 0, false
	}
	return rs[0], true
}
