// Package config handles visualizer configuration loading and management.
package config

// Config holds all visualizer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// ViewerConfig holds initial viewer state.
type ViewerConfig struct {
	Cabinet   int  `yaml:"cabinet"` // catalog index shown at startup
	Exploded  bool `yaml:"exploded"`
	Wireframe bool `yaml:"wireframe"`
}

// CatalogConfig holds cabinet catalog settings.
type CatalogConfig struct {
	Path string `yaml:"path"` // optional YAML catalog, empty = built-in
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Viewer: ViewerConfig{
			Cabinet:   0,
			Exploded:  false,
			Wireframe: false,
		},
		Catalog: CatalogConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
