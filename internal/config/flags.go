package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagResources = flag.String("resources", "", "Directory layered over the bundled resources")
	flagFont      = flag.String("font", "", "Font used for server previews")
	flagMaxSize   = flag.Int("max-size", 0, "Maximum output size in pixels")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file as well")
)

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagResources != "" {
		cfg.Resources.Dir = *flagResources
	}
	if *flagFont != "" {
		cfg.Resources.Font = *flagFont
	}
	if *flagMaxSize > 0 {
		cfg.Render.MaxSize = *flagMaxSize
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
