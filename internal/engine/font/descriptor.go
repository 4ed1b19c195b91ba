package font

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"
)

// Provider types.
const (
	ProviderBitmap    = "bitmap"
	ProviderSpace     = "space"
	ProviderReference = "reference"
)

// Descriptor is a font definition: an ordered provider list. Earlier
// providers win when two define the same character.
type Descriptor struct {
	Providers []Provider `json:"providers"`
}

// Provider is one entry of a descriptor. Which fields apply depends on Type.
type Provider struct {
	Type string `json:"type"`

	// bitmap
	File   string   `json:"file,omitempty"`
	Ascent int      `json:"ascent,omitempty"`
	Height int      `json:"height,omitempty"`
	Chars  []string `json:"chars,omitempty"`

	// space
	Advances map[string]float64 `json:"advances,omitempty"`

	// reference
	ID string `json:"id,omitempty"`

	Filter *Filter `json:"filter,omitempty"`
}

// Filter restricts a provider to one state of the font options.
type Filter struct {
	Uniform *bool `json:"uniform,omitempty"`
}

// Accepts reports whether a provider with this filter is active.
func (f *Filter) Accepts(uniform bool) bool {
	if f == nil || f.Uniform == nil {
		return true
	}
	return *f.Uniform == uniform
}

// WidthEntry holds advance metrics for one character.
type WidthEntry struct {
	Width        float64  `json:"width"`
	BoldOffset   *float64 `json:"bold_offset,omitempty"`
	ShadowOffset *float64 `json:"shadow_offset,omitempty"`
}

// WidthTable is the companion advance table of a font.
type WidthTable struct {
	MissingChar *WidthEntry           `json:"missing_char,omitempty"`
	Chars       map[string]WidthEntry `json:"chars"`
}

func parseDescriptor(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing font descriptor: %w", err)
	}
	return &d, nil
}

func parseWidthTable(data []byte) (*WidthTable, error) {
	var w WidthTable
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parsing width table: %w", err)
	}
	return &w, nil
}

// splitID splits "namespace:path" into its parts. A bare path gets the
// minecraft namespace.
func splitID(id string) (namespace, p string) {
	if ns, rest, ok := strings.Cut(id, ":"); ok {
		return ns, rest
	}
	return "minecraft", id
}

// DescriptorPath maps a font id such as "minecraft:include/default" to its
// resource path.
func DescriptorPath(id string) string {
	_, p := splitID(id)
	return path.Join("font/meta", p+".json")
}

// TexturePath maps an atlas reference such as "minecraft:font/ascii.png" to
// its resource path.
func TexturePath(file string) string {
	_, p := splitID(file)
	p = strings.TrimPrefix(p, "font/")
	return path.Join("font/textures", p)
}

// WidthsPath returns the resource path of the width table for a font id.
func WidthsPath(id string) string {
	_, p := splitID(id)
	return path.Join("font/meta/width", path.Base(p)+".json")
}
