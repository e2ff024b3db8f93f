package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
	flagCabinet   = flag.Int("cabinet", -1, "Catalog index of the cabinet to show")
	flagCatalog   = flag.String("catalog", "", "Path to a cabinet catalog YAML file")
	flagExploded  = flag.Bool("exploded", false, "Start in exploded view")
	flagWireframe = flag.Bool("wireframe", false, "Start in wireframe mode")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagCabinet >= 0 {
		cfg.Viewer.Cabinet = *flagCabinet
	}
	if *flagCatalog != "" {
		cfg.Catalog.Path = *flagCatalog
	}
	if *flagExploded {
		cfg.Viewer.Exploded = true
	}
	if *flagWireframe {
		cfg.Viewer.Wireframe = true
	}
}
