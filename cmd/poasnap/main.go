package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	poago "github.com/cjeanneret/PoaGo"
	"github.com/cjeanneret/PoaGo/internal/config"
	"github.com/cjeanneret/PoaGo/internal/debug"
	"github.com/cjeanneret/PoaGo/internal/sdk"
)

func main() {
	// CLI flags
	cfgPath := flag.String("config", filepath.Join("configs", "default.yaml"), "path to config file")
	list := flag.Bool("list", false, "list attached cameras and exit")
	frames := flag.Int("frames", 0, "override number of frames to capture")
	exposureUs := flag.Int64("exposure_us", 0, "override exposure time in microseconds")
	gain := flag.Int64("gain", -1, "override gain")
	mock := flag.Bool("mock", false, "use the mock driver instead of real hardware")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	// Apply CLI overrides (only meaningful values; zero means "use config")
	if *frames > 0 {
		cfg.Defaults.Frames = *frames
	}
	if *exposureUs > 0 {
		cfg.Exposure.ExposureUs = *exposureUs
		cfg.Exposure.AutoExposure = false
	}
	if *gain >= 0 {
		cfg.Exposure.Gain = *gain
		cfg.Exposure.AutoGain = false
	}
	if *mock {
		cfg.Defaults.MockSDK = true
	}

	// Initialize debug system
	debug.Init(cfg.Defaults.DebugLevel)
	debug.Section("Initialization")
	debug.Value("Config path", *cfgPath)
	debug.Value("Debug level", cfg.Defaults.DebugLevel)
	debug.Value("Mock SDK", cfg.Defaults.MockSDK)

	// Enumerate cameras
	debug.Step(1, "Enumerating cameras")
	cams, err := listCameras(cfg)
	if err != nil {
		log.Fatalf("enumerate cameras failed: %v", err)
	}
	if *list {
		printCameras(cams)
		return
	}
	if len(cams) == 0 {
		log.Fatal("no camera attached")
	}

	desc, err := selectCamera(cams, cfg)
	if err != nil {
		log.Fatalf("select camera failed: %v", err)
	}
	debug.Value("Camera", desc.Model())
	debug.Value("Serial", desc.SerialNumber())

	// Open and configure
	debug.Step(2, "Opening camera")
	cam, err := desc.Open()
	if err != nil {
		log.Fatalf("open camera failed: %v", err)
	}
	defer func() {
		if err := cam.Close(); err != nil {
			log.Printf("closing camera failed: %v", err)
		}
	}()

	debug.Step(3, "Configuring camera")
	if err := configureCamera(cam, cfg); err != nil {
		log.Fatalf("configure camera failed: %v", err)
	}
	w, h := cam.ImageSize()
	debug.Value("Image size", fmt.Sprintf("%dx%d", w, h))
	debug.Value("Format", cam.Format())

	// Capture
	debug.Step(4, "Capturing")
	if err := captureFrames(ctx, cam, cfg); err != nil {
		log.Fatalf("capture failed: %v", err)
	}

	debug.Section("Done")
}

// listCameras enumerates through the mock or the real driver depending
// on configuration.
func listCameras(cfg *config.Config) ([]poago.Descriptor, error) {
	if cfg.Defaults.MockSDK {
		return poago.ListCamerasWith(sdk.NewMock(
			sdk.NewMockDevice(0, "Mock Mars-C", "SN000000"),
		))
	}
	return poago.ListCameras()
}

func printCameras(cams []poago.Descriptor) {
	if len(cams) == 0 {
		fmt.Println("no camera attached")
		return
	}
	for _, c := range cams {
		p := c.Properties()
		fmt.Printf("[%d] %s  serial=%s  sensor=%dx%d  %d-bit\n",
			c.ID(), c.Model(), c.SerialNumber(), p.MaxWidth, p.MaxHeight, p.BitDepth)
	}
}

// selectCamera picks a camera by serial when one is configured,
// otherwise by index into the enumeration snapshot.
func selectCamera(cams []poago.Descriptor, cfg *config.Config) (poago.Descriptor, error) {
	if cfg.Camera.Serial != "" {
		for _, c := range cams {
			if c.SerialNumber() == cfg.Camera.Serial {
				return c, nil
			}
		}
		return poago.Descriptor{}, fmt.Errorf("no camera with serial %q", cfg.Camera.Serial)
	}
	if cfg.Camera.Index >= len(cams) {
		return poago.Descriptor{}, fmt.Errorf("camera index %d out of range, %d camera(s) attached",
			cfg.Camera.Index, len(cams))
	}
	return cams[cfg.Camera.Index], nil
}

// configureCamera pushes the configured bin, geometry, format and
// exposure settings onto an opened camera.
func configureCamera(cam *poago.Camera, cfg *config.Config) error {
	if cfg.Image.Bin > 1 {
		if err := cam.SetBin(cfg.Image.Bin); err != nil {
			return fmt.Errorf("set bin: %w", err)
		}
	}
	if cfg.Image.Width > 0 && cfg.Image.Height > 0 {
		if err := cam.SetImageSize(cfg.Image.Width, cfg.Image.Height); err != nil {
			return fmt.Errorf("set image size: %w", err)
		}
	}
	format, ok := poago.ParseImageFormat(cfg.Image.Format)
	if !ok {
		return fmt.Errorf("unknown image format %q", cfg.Image.Format)
	}
	if err := cam.SetImageFormat(format); err != nil {
		return fmt.Errorf("set image format: %w", err)
	}
	micros := cfg.Exposure.ExposureUs
	if cfg.Exposure.AutoExposure && micros <= 0 {
		// Keep the camera's current value, only flip the auto flag.
		cur, _, err := cam.Exposure()
		if err != nil {
			return fmt.Errorf("read exposure: %w", err)
		}
		micros = cur
	}
	if err := cam.SetExposure(micros, cfg.Exposure.AutoExposure); err != nil {
		return fmt.Errorf("set exposure: %w", err)
	}
	if err := cam.SetGain(cfg.Exposure.Gain, cfg.Exposure.AutoGain); err != nil {
		return fmt.Errorf("set gain: %w", err)
	}
	if cfg.Exposure.Offset > 0 {
		if err := cam.SetOffset(cfg.Exposure.Offset); err != nil {
			return fmt.Errorf("set offset: %w", err)
		}
	}
	return nil
}

// captureFrames grabs the configured number of frames and writes each
// one as a PNG file.
func captureFrames(ctx context.Context, cam *poago.Camera, cfg *config.Config) error {
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	buf := cam.CreateImageBuffer()
	for n := 1; n <= cfg.Defaults.Frames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		if err := cam.Capture(buf, cfg.Timeout()); err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}
		debug.Live("frame %d/%d captured in %v", n, cfg.Defaults.Frames, time.Since(start).Round(time.Millisecond))

		path := filepath.Join(cfg.Output.Dir, fmt.Sprintf("%s_%04d.png", cfg.Output.Prefix, n))
		if err := savePNG(path, cam, buf); err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}
		debug.Info("wrote %s", path)
	}
	return nil
}

// savePNG encodes a raw frame using the camera's current geometry and
// format.
func savePNG(path string, cam *poago.Camera, frame []byte) error {
	w, h := cam.ImageSize()

	var img image.Image
	switch cam.Format() {
	case poago.RAW16:
		// Frames arrive little-endian, Gray16 wants big-endian.
		g := image.NewGray16(image.Rect(0, 0, w, h))
		for i := 0; i+1 < len(frame); i += 2 {
			g.Pix[i] = frame[i+1]
			g.Pix[i+1] = frame[i]
		}
		img = g
	case poago.RGB24:
		rgba := image.NewRGBA(image.Rect(0, 0, w, h))
		for p := 0; p < w*h; p++ {
			rgba.Pix[4*p+0] = frame[3*p+0]
			rgba.Pix[4*p+1] = frame[3*p+1]
			rgba.Pix[4*p+2] = frame[3*p+2]
			rgba.Pix[4*p+3] = 0xFF
		}
		img = rgba
	default: // RAW8, MONO8
		g := image.NewGray(image.Rect(0, 0, w, h))
		copy(g.Pix, frame)
		img = g
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
