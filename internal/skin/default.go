package skin

import (
	"image"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/skinrender/internal/assets"
	"github.com/Faultbox/skinrender/internal/engine/canvas"
	"github.com/Faultbox/skinrender/internal/logger"
	"github.com/Faultbox/skinrender/internal/resources"
)

var defaultSkin = sync.OnceValue(func() *image.NRGBA {
	data, err := resources.FS.ReadFile(resources.DefaultSkinPath)
	if err == nil {
		var img *image.NRGBA
		if img, err = assets.DecodeImage(data); err == nil {
			return img
		}
	}
	logger.Error("bundled default skin unavailable", zap.Error(err))
	return canvas.New(64, 64)
})

// DefaultSkin returns the bundled default skin. Callers must not modify it.
func DefaultSkin() *image.NRGBA {
	return defaultSkin()
}

// Decode reads a PNG skin into a straight-alpha buffer.
func Decode(data []byte) (*image.NRGBA, error) {
	return assets.DecodeImage(data)
}
