package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedImage is returned for data no decoder recognises.
var ErrUnsupportedImage = errors.New("unsupported image format")

// MaxImageSize bounds both dimensions of any decoded image. Skins, icons
// and glyph atlases are far smaller; anything larger is rejected before
// pixels are allocated.
const MaxImageSize = 4096

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// checkSize rejects dimensions outside [1, MaxImageSize].
func checkSize(format string, w, h int) error {
	if w < 1 || h < 1 || w > MaxImageSize || h > MaxImageSize {
		return fmt.Errorf("%w: %s %dx%d exceeds %d", ErrUnsupportedImage, format, w, h, MaxImageSize)
	}
	return nil
}

// DecodeImage decodes PNG, BMP or true-color TGA data into a straight-alpha
// RGBA image anchored at the origin.
func DecodeImage(data []byte) (*image.NRGBA, error) {
	var (
		img image.Image
		err error
	)
	switch {
	case bytes.HasPrefix(data, pngSignature):
		var cfg image.Config
		if cfg, err = png.DecodeConfig(bytes.NewReader(data)); err != nil {
			return nil, err
		}
		if err = checkSize("PNG", cfg.Width, cfg.Height); err != nil {
			return nil, err
		}
		img, err = png.Decode(bytes.NewReader(data))
	case bytes.HasPrefix(data, []byte("BM")):
		var cfg image.Config
		if cfg, err = bmp.DecodeConfig(bytes.NewReader(data)); err != nil {
			return nil, err
		}
		if err = checkSize("BMP", cfg.Width, cfg.Height); err != nil {
			return nil, err
		}
		img, err = bmp.Decode(bytes.NewReader(data))
	default:
		// TGA carries no signature
		return DecodeTGA(data)
	}
	if err != nil {
		return nil, err
	}
	return ToNRGBA(img), nil
}

var errTGATruncated = fmt.Errorf("%w: TGA data truncated", ErrUnsupportedImage)

// TGA image types.
const (
	tgaTrueColor    = 2
	tgaTrueColorRLE = 10
)

// DecodeTGA decodes an uncompressed or RLE true-color TGA with 24 or 32 bits
// per pixel.
func DecodeTGA(data []byte) (*image.NRGBA, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("%w: TGA header truncated", ErrUnsupportedImage)
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topDown := data[17]&0x20 != 0

	if colorMapType != 0 || (imageType != tgaTrueColor && imageType != tgaTrueColorRLE) {
		return nil, fmt.Errorf("%w: TGA type %d", ErrUnsupportedImage, imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: TGA depth %d", ErrUnsupportedImage, bpp)
	}
	if err := checkSize("TGA", width, height); err != nil {
		return nil, err
	}
	if 18+idLength > len(data) {
		return nil, errTGATruncated
	}

	src := data[18+idLength:]
	stride := bpp / 8
	pixels := width * height
	// raw data holds every pixel; an RLE packet covers at most 128
	need := pixels * stride
	if imageType == tgaTrueColorRLE {
		need = (pixels + 127) / 128 * (1 + stride)
	}
	if len(src) < need {
		return nil, errTGATruncated
	}

	r := &tgaReader{
		src:     src,
		img:     image.NewNRGBA(image.Rect(0, 0, width, height)),
		stride:  stride,
		topDown: topDown,
	}
	var err error
	if imageType == tgaTrueColor {
		err = r.readRaw()
	} else {
		err = r.readRLE()
	}
	if err != nil {
		return nil, err
	}
	return r.img, nil
}

type tgaReader struct {
	src     []byte
	pos     int
	img     *image.NRGBA
	stride  int
	topDown bool
	n       int // pixels written
}

// pixel reads one BGR(A) value.
func (r *tgaReader) pixel() ([4]uint8, bool) {
	if r.pos+r.stride > len(r.src) {
		return [4]uint8{}, false
	}
	p := r.src[r.pos : r.pos+r.stride]
	r.pos += r.stride
	c := [4]uint8{p[2], p[1], p[0], 255}
	if r.stride == 4 {
		c[3] = p[3]
	}
	return c, true
}

// put stores c at the next pixel in file order.
func (r *tgaReader) put(c [4]uint8) {
	w := r.img.Rect.Dx()
	x, y := r.n%w, r.n/w
	if !r.topDown {
		y = r.img.Rect.Dy() - 1 - y
	}
	copy(r.img.Pix[r.img.PixOffset(x, y):], c[:])
	r.n++
}

func (r *tgaReader) total() int {
	return r.img.Rect.Dx() * r.img.Rect.Dy()
}

func (r *tgaReader) readRaw() error {
	for r.n < r.total() {
		c, ok := r.pixel()
		if !ok {
			return errTGATruncated
		}
		r.put(c)
	}
	return nil
}

// readRLE decodes run packets (high bit set) and raw packets.
func (r *tgaReader) readRLE() error {
	for r.n < r.total() {
		if r.pos >= len(r.src) {
			return errTGATruncated
		}
		header := r.src[r.pos]
		r.pos++
		count := int(header&0x7F) + 1

		if header&0x80 != 0 {
			c, ok := r.pixel()
			if !ok {
				return errTGATruncated
			}
			for i := 0; i < count && r.n < r.total(); i++ {
				r.put(c)
			}
			continue
		}
		for i := 0; i < count && r.n < r.total(); i++ {
			c, ok := r.pixel()
			if !ok {
				return errTGATruncated
			}
			r.put(c)
		}
	}
	return nil
}
