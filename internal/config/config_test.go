package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------- ValidateConfigPath ----------

func TestValidateConfigPath_Valid(t *testing.T) {
	// Create a real configs/ directory so filepath.Abs resolves correctly.
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "configs")
	if err := os.Mkdir(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(cfgDir, "default.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ValidateConfigPath(path); err != nil {
		t.Errorf("expected valid path, got error: %v", err)
	}
}

func TestValidateConfigPath_PathTraversal(t *testing.T) {
	cases := []string{
		"../../etc/passwd",
		"configs/../../../etc/shadow",
	}
	for _, path := range cases {
		if err := ValidateConfigPath(path); err == nil {
			t.Errorf("expected error for traversal path %q, got nil", path)
		}
	}
}

func TestValidateConfigPath_WrongExtension(t *testing.T) {
	cases := []string{
		"configs/default.json",
		"configs/default.yml",
		"configs/default.txt",
		"configs/default",
	}
	for _, path := range cases {
		if err := ValidateConfigPath(path); err == nil {
			t.Errorf("expected error for extension in %q, got nil", path)
		}
	}
}

func TestValidateConfigPath_NotInConfigsDir(t *testing.T) {
	cases := []string{
		"other/default.yaml",
		"/tmp/default.yaml",
	}
	for _, path := range cases {
		if err := ValidateConfigPath(path); err == nil {
			t.Errorf("expected error for path outside configs/ %q, got nil", path)
		}
	}
}

func TestValidateConfigPath_EmptyPath(t *testing.T) {
	if err := ValidateConfigPath(""); err == nil {
		t.Error("expected error for empty path, got nil")
	}
}

func TestValidateConfigPath_VeryLongPath(t *testing.T) {
	long := "configs/" + strings.Repeat("a", 1000) + ".yaml"
	// Should not panic; error or success is OS-dependent, but must not crash.
	_ = ValidateConfigPath(long)
}

// ---------- Load ----------

// writeConfig creates a temporary configs/ dir with the given YAML content and returns the path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "configs")
	if err := os.Mkdir(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(cfgDir, "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validYAML = `
camera:
  serial: "SN000001"
  index: 0
exposure:
  exposure_us: 50000
  auto_exposure: false
  gain: 120
  auto_gain: false
  offset: 10
image:
  width: 1280
  height: 720
  bin: 2
  format: "raw16"
output:
  dir: "/tmp/frames"
  prefix: "m42"
defaults:
  frames: 10
  timeout_ms: 2000
  debug_level: 0
  mock_sdk: true
`

func TestLoad_ValidFullConfig(t *testing.T) {
	path := writeConfig(t, validYAML)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Camera.Serial != "SN000001" {
		t.Errorf("camera.serial = %q, want %q", cfg.Camera.Serial, "SN000001")
	}
	if cfg.Exposure.ExposureUs != 50000 {
		t.Errorf("exposure_us = %d, want 50000", cfg.Exposure.ExposureUs)
	}
	if cfg.Exposure.Gain != 120 {
		t.Errorf("gain = %d, want 120", cfg.Exposure.Gain)
	}
	if cfg.Image.Width != 1280 || cfg.Image.Height != 720 {
		t.Errorf("image size = %dx%d, want 1280x720", cfg.Image.Width, cfg.Image.Height)
	}
	if cfg.Image.Bin != 2 {
		t.Errorf("bin = %d, want 2", cfg.Image.Bin)
	}
	if cfg.Image.Format != "raw16" {
		t.Errorf("format = %q, want %q", cfg.Image.Format, "raw16")
	}
	if cfg.Output.Dir != "/tmp/frames" {
		t.Errorf("output.dir = %q, want %q", cfg.Output.Dir, "/tmp/frames")
	}
	if cfg.Defaults.Frames != 10 {
		t.Errorf("frames = %d, want 10", cfg.Defaults.Frames)
	}
	if !cfg.Defaults.MockSDK {
		t.Error("mock_sdk should be true")
	}
}

func TestLoad_NegativeCameraIndex(t *testing.T) {
	path := writeConfig(t, "camera:\n  index: -1\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative camera.index, got nil")
	}
}

func TestLoad_NegativeExposure(t *testing.T) {
	path := writeConfig(t, "exposure:\n  exposure_us: -5\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative exposure_us, got nil")
	}
}

func TestLoad_NegativeGain(t *testing.T) {
	path := writeConfig(t, "exposure:\n  gain: -1\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative gain, got nil")
	}
}

func TestLoad_DebugLevelOutOfRange(t *testing.T) {
	path := writeConfig(t, "defaults:\n  debug_level: 5\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for debug_level > 4, got nil")
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	path := writeConfig(t, "{}")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Exposure.ExposureUs != 10_000 {
		t.Errorf("exposure_us default = %d, want 10000", cfg.Exposure.ExposureUs)
	}
	if cfg.Image.Bin != 1 {
		t.Errorf("bin default = %d, want 1", cfg.Image.Bin)
	}
	if cfg.Image.Format != "raw8" {
		t.Errorf("format default = %q, want %q", cfg.Image.Format, "raw8")
	}
	if cfg.Defaults.Frames != 1 {
		t.Errorf("frames default = %d, want 1", cfg.Defaults.Frames)
	}
	if cfg.Output.Dir != "." {
		t.Errorf("output.dir default = %q, want %q", cfg.Output.Dir, ".")
	}
	if cfg.Output.Prefix != "frame" {
		t.Errorf("output.prefix default = %q, want %q", cfg.Output.Prefix, "frame")
	}
}

func TestLoad_AutoExposureSkipsDefault(t *testing.T) {
	path := writeConfig(t, "exposure:\n  auto_exposure: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// With auto exposure on, a zero exposure_us stays zero: the camera
	// decides, the tool does not push a manual value.
	if cfg.Exposure.ExposureUs != 0 {
		t.Errorf("exposure_us = %d, want 0 with auto_exposure", cfg.Exposure.ExposureUs)
	}
}

func TestLoad_FileTooLarge(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "configs")
	if err := os.Mkdir(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(cfgDir, "big.yaml")
	data := make([]byte, MaxConfigFileBytes+1)
	for i := range data {
		data[i] = '#'
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for oversized config file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "{{{{invalid yaml!!!!")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoad_UnknownFields(t *testing.T) {
	yaml := `
camera:
  index: 0
unknown_section:
  foo: bar
`
	path := writeConfig(t, yaml)
	if _, err := Load(path); err != nil {
		t.Errorf("unknown fields should be ignored, got error: %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "configs")
	if err := os.Mkdir(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(cfgDir, "nonexistent.yaml")
	if _, err := Load(path); err == nil {
		t.Error("expected error for nonexistent file, got nil")
	}
}

// ---------- Helper methods ----------

func TestConfig_Timeout(t *testing.T) {
	cfg := &Config{Defaults: DefaultsConfig{TimeoutMs: 2000}}
	if got, want := cfg.Timeout(), 2*time.Second; got != want {
		t.Errorf("Timeout() = %v, want %v", got, want)
	}
}

func TestConfig_TimeoutZeroBlocks(t *testing.T) {
	cfg := &Config{}
	if got := cfg.Timeout(); got != 0 {
		t.Errorf("Timeout() = %v, want 0 (block)", got)
	}
}
