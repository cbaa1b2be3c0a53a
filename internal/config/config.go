package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxConfigFileBytes caps how large a config file Load accepts.
const MaxConfigFileBytes = 1 << 20

// ValidateConfigPath rejects paths outside a configs/ directory, with
// the wrong extension, or empty. Call it before Load when the path
// comes from an untrusted source (CLI, HTTP form).
func ValidateConfigPath(path string) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}
	if filepath.Ext(path) != ".yaml" {
		return fmt.Errorf("config file must have a .yaml extension, got %q", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if filepath.Base(filepath.Dir(abs)) != "configs" {
		return fmt.Errorf("config file must live in a configs/ directory, got %q", path)
	}
	return nil
}

// CameraConfig selects which attached camera to use. Serial wins over
// Index when both are set; an empty serial with Index 0 picks the
// first enumerated camera.
type CameraConfig struct {
	Serial string `yaml:"serial"` // unit serial number, "" = use index
	Index  int    `yaml:"index"`  // position in the enumeration snapshot
}

// ExposureConfig holds the sensor exposure parameters.
type ExposureConfig struct {
	ExposureUs   int64 `yaml:"exposure_us"`   // exposure time in microseconds
	AutoExposure bool  `yaml:"auto_exposure"` // let the camera drive exposure
	Gain         int64 `yaml:"gain"`
	AutoGain     bool  `yaml:"auto_gain"`
	Offset       int64 `yaml:"offset"` // 0 = keep the camera default
}

// ImageConfig holds geometry and pixel format. Zero width/height means
// "full sensor at the configured bin".
type ImageConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Bin    int    `yaml:"bin"`    // 1, 2, 4... as supported by the unit
	Format string `yaml:"format"` // raw8, raw16, rgb24, mono8
}

// OutputConfig describes where captured frames go.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// DefaultsConfig contains generic parameters.
type DefaultsConfig struct {
	Frames     int  `yaml:"frames"`      // frames to capture per run
	TimeoutMs  int  `yaml:"timeout_ms"`  // per-frame fetch timeout, 0 = block
	DebugLevel int  `yaml:"debug_level"` // debug level 0-4 (0=off, 1=info, 2=live, 3=verbose, 4=trace)
	MockSDK    bool `yaml:"mock_sdk"`    // use the mock driver (true=dev/test, false=real camera)
}

// Config aggregates all application configuration.
type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Exposure ExposureConfig `yaml:"exposure"`
	Image    ImageConfig    `yaml:"image"`
	Output   OutputConfig   `yaml:"output"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// Load reads a YAML file and returns the configuration.
func Load(path string) (*Config, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if st.Size() > MaxConfigFileBytes {
		return nil, fmt.Errorf("config file %s is %d bytes, limit is %d", path, st.Size(), MaxConfigFileBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	// Basic validation
	if cfg.Camera.Index < 0 {
		return nil, fmt.Errorf("camera.index must be >= 0, got %d", cfg.Camera.Index)
	}
	if cfg.Exposure.ExposureUs < 0 {
		return nil, fmt.Errorf("exposure_us must be >= 0, got %d", cfg.Exposure.ExposureUs)
	}
	if cfg.Exposure.ExposureUs == 0 && !cfg.Exposure.AutoExposure {
		cfg.Exposure.ExposureUs = 10_000 // reasonable default (10ms)
	}
	if cfg.Exposure.Gain < 0 {
		return nil, fmt.Errorf("gain must be >= 0, got %d", cfg.Exposure.Gain)
	}
	if cfg.Image.Width < 0 || cfg.Image.Height < 0 {
		return nil, fmt.Errorf("image width/height must be >= 0")
	}
	if cfg.Image.Bin <= 0 {
		cfg.Image.Bin = 1
	}
	if cfg.Image.Format == "" {
		cfg.Image.Format = "raw8"
	}
	if cfg.Defaults.Frames <= 0 {
		cfg.Defaults.Frames = 1
	}
	if cfg.Defaults.TimeoutMs < 0 {
		return nil, fmt.Errorf("timeout_ms must be >= 0, got %d", cfg.Defaults.TimeoutMs)
	}
	if cfg.Defaults.DebugLevel < 0 || cfg.Defaults.DebugLevel > 4 {
		return nil, fmt.Errorf("debug_level must be between 0 and 4, got %d", cfg.Defaults.DebugLevel)
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	if cfg.Output.Prefix == "" {
		cfg.Output.Prefix = "frame"
	}

	return &cfg, nil
}

// Timeout returns the per-frame fetch timeout. Zero means block until
// the frame arrives.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Defaults.TimeoutMs) * time.Millisecond
}
