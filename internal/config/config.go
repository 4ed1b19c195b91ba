// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Render    RenderConfig    `yaml:"render"`
	Resources ResourcesConfig `yaml:"resources"`
	Preview   PreviewConfig   `yaml:"preview"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// RenderConfig holds skin rendering settings.
type RenderConfig struct {
	MaxSize       int        `yaml:"max_size"`       // Upper bound for any requested output size
	DefaultSize   int        `yaml:"default_size"`   // Size used when a request gives none
	MinBrightness float64    `yaml:"min_brightness"` // Shading floor for the brightness ramp
	Overlay       bool       `yaml:"overlay"`        // Render the second skin layer by default
	IsoYaw        float64    `yaml:"iso_yaw"`        // Degrees
	IsoPitch      float64    `yaml:"iso_pitch"`      // Degrees
	Sun           *SunConfig `yaml:"sun,omitempty"`  // Nil keeps the built-in light direction
}

// SunConfig places the light by angle, in degrees.
type SunConfig struct {
	Longitude float64 `yaml:"longitude"` // Around Y, 0 towards +Z
	Latitude  float64 `yaml:"latitude"`  // Elevation above the horizon
}

// ResourcesConfig holds font and texture resource settings.
type ResourcesConfig struct {
	Dir     string `yaml:"dir"`     // Optional directory layered over the bundled resources
	Font    string `yaml:"font"`    // Font used for server previews
	Uniform bool   `yaml:"uniform"` // Select providers filtered for the uniform font
}

// PreviewConfig holds server preview settings.
type PreviewConfig struct {
	Upscale  int `yaml:"upscale"`   // Integer factor the preview is composed at
	Width    int `yaml:"width"`     // Default output width
	MaxWidth int `yaml:"max_width"` // Upper bound for any requested output width
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			MaxSize:       512,
			DefaultSize:   128,
			MinBrightness: 0.65,
			Overlay:       true,
			IsoYaw:        45,
			IsoPitch:      35,
		},
		Resources: ResourcesConfig{
			Dir:     "",
			Font:    "minecraft:default",
			Uniform: false,
		},
		Preview: PreviewConfig{
			Upscale:  4,
			Width:    768,
			MaxWidth: 2048,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ClampSize limits a requested size to [1, MaxSize], substituting the
// default size for non-positive requests.
func (r RenderConfig) ClampSize(size int) int {
	if size <= 0 {
		size = r.DefaultSize
	}
	if r.MaxSize > 0 && size > r.MaxSize {
		size = r.MaxSize
	}
	if size < 1 {
		size = 1
	}
	return size
}

// ClampWidth limits a requested preview width to [1, MaxWidth], substituting
// the default width for non-positive requests.
func (p PreviewConfig) ClampWidth(width int) int {
	if width <= 0 {
		width = p.Width
	}
	if p.MaxWidth > 0 && width > p.MaxWidth {
		width = p.MaxWidth
	}
	return max(width, 1)
}
