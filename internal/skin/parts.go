// Package skin renders named outputs (face, head, body, full body) from a
// player skin texture.
package skin

import (
	"fmt"
	"image"
	"sort"
	"strings"
)

// Kind selects how a part is rendered.
type Kind int

// Part kinds.
const (
	Flat Kind = iota
	Isometric
)

// Layer copies Src from the skin to Dst on a flat part's canvas.
type Layer struct {
	Src image.Rectangle
	Dst image.Point
}

// Part describes one named output. It carries data only; rendering is
// chosen by Kind.
type Part struct {
	Name string
	Kind Kind

	// flat parts: canvas size in skin texels and the layers drawn on it
	Width, Height int
	Layers        []Layer
	Overlays      []Layer
	SlimLayers    []Layer // replaces Layers for slim skins when set
	SlimOverlays  []Layer // replaces Overlays for slim skins when set

	// isometric parts
	HeadOnly bool
}

func layer(x, y, w, h, dx, dy int) Layer {
	return Layer{Src: image.Rect(x, y, x+w, y+h), Dst: image.Pt(dx, dy)}
}

// Face is the front of the head with the hat layer.
var Face = Part{
	Name:     "face",
	Kind:     Flat,
	Width:    8,
	Height:   8,
	Layers:   []Layer{layer(8, 8, 8, 8, 0, 0)},
	Overlays: []Layer{layer(40, 8, 8, 8, 0, 0)},
}

// Body is the flat front view of the whole player.
var Body = Part{
	Name:   "body",
	Kind:   Flat,
	Width:  16,
	Height: 32,
	Layers: []Layer{
		layer(8, 8, 8, 8, 4, 0),     // head
		layer(20, 20, 8, 12, 4, 8),  // body
		layer(44, 20, 4, 12, 0, 8),  // right arm
		layer(36, 52, 4, 12, 12, 8), // left arm
		layer(4, 20, 4, 12, 4, 20),  // right leg
		layer(20, 52, 4, 12, 8, 20), // left leg
	},
	Overlays: []Layer{
		layer(40, 8, 8, 8, 4, 0),
		layer(20, 36, 8, 12, 4, 8),
		layer(44, 36, 4, 12, 0, 8),
		layer(52, 52, 4, 12, 12, 8),
		layer(4, 36, 4, 12, 4, 20),
		layer(4, 52, 4, 12, 8, 20),
	},
	SlimLayers: []Layer{
		layer(8, 8, 8, 8, 4, 0),
		layer(20, 20, 8, 12, 4, 8),
		layer(44, 20, 3, 12, 1, 8),
		layer(36, 52, 3, 12, 12, 8),
		layer(4, 20, 4, 12, 4, 20),
		layer(20, 52, 4, 12, 8, 20),
	},
	SlimOverlays: []Layer{
		layer(40, 8, 8, 8, 4, 0),
		layer(20, 36, 8, 12, 4, 8),
		layer(44, 36, 3, 12, 1, 8),
		layer(52, 52, 3, 12, 12, 8),
		layer(4, 36, 4, 12, 4, 20),
		layer(4, 52, 4, 12, 8, 20),
	},
}

// Head is the isometric head.
var Head = Part{
	Name:     "head",
	Kind:     Isometric,
	HeadOnly: true,
}

// FullBody is the isometric player.
var FullBody = Part{
	Name: "fullbody",
	Kind: Isometric,
}

var parts = map[string]Part{
	Face.Name:     Face,
	Body.Name:     Body,
	Head.Name:     Head,
	FullBody.Name: FullBody,
}

// ParsePart looks up a part by name, case-insensitively.
func ParsePart(name string) (Part, error) {
	p, ok := parts[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Part{}, fmt.Errorf("unknown part %q (want one of %s)", name, strings.Join(PartNames(), ", "))
	}
	return p, nil
}

// PartNames returns the known part names, sorted.
func PartNames() []string {
	names := make([]string, 0, len(parts))
	for n := range parts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (p Part) layers(slim bool) []Layer {
	if slim && p.SlimLayers != nil {
		return p.SlimLayers
	}
	return p.Layers
}

func (p Part) overlays(slim bool) []Layer {
	if slim && p.SlimOverlays != nil {
		return p.SlimOverlays
	}
	return p.Overlays
}
