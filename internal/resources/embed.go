// Package resources bundles the font descriptors, glyph atlases and fallback
// textures the renderer ships with.
package resources

import "embed"

// FS holds the bundled resource tree:
//
//	font/meta/*.json        font descriptors (provider lists)
//	font/meta/width/*.json  per-font advance tables
//	font/textures/*.png     glyph atlases
//	textures/*.png          default skin and server icon
//
//go:embed font textures
var FS embed.FS

// Paths of the bundled fallback textures.
const (
	DefaultSkinPath   = "textures/default_skin.png"
	DefaultServerIcon = "textures/unknown_server.png"
)
