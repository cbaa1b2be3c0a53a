package poago

import (
	"fmt"

	"github.com/cjeanneret/PoaGo/internal/debug"
	"github.com/cjeanneret/PoaGo/internal/sdk"
)

// ROI is the configured capture region within the sensor's full
// frame: width/height plus the start position of the window.
type ROI struct {
	StartX int
	StartY int
	Width  int
	Height int
}

// Camera is an exclusive session on one opened device. It caches the
// static Properties and the geometry/format fields that determine
// frame buffer sizing; every successful geometry or format change
// updates that cache before returning.
//
// A Camera is not internally synchronized. Concurrent calls from
// multiple goroutines require external serialization. Closing the
// session while a Capture is blocked has driver-defined behavior and
// must be avoided by the caller.
type Camera struct {
	drv   sdk.Driver
	id    int
	props Properties

	closed    bool
	streaming bool

	width  int
	height int
	format ImageFormat
}

// Open acquires exclusive access to the camera. On success the
// returned session carries the cached properties and the device's
// current geometry and format, so later reads are allocation-free.
//
// Failure modes: *OpenError with Kind OpenBusy (held elsewhere),
// OpenNotFound (device vanished since enumeration) or OpenDriver.
// The native handle is released on every failure path of the setup
// sequence.
func (d Descriptor) Open() (*Camera, error) {
	if err := d.drv.Open(d.id); err != nil {
		return nil, openError(err)
	}
	if err := d.drv.Init(d.id); err != nil {
		_ = d.drv.Close(d.id)
		return nil, openError(err)
	}

	c := &Camera{drv: d.drv, id: d.id, props: d.props}
	if err := c.refreshGeometry(); err != nil {
		_ = d.drv.Close(d.id)
		return nil, openError(err)
	}
	debug.Info("opened camera %d (%s, %dx%d %s)", c.id, c.props.Model, c.width, c.height, c.format)
	return c, nil
}

// refreshGeometry re-reads the fields that drive buffer sizing from
// the device. Used at open and after operations where the native
// layer rescales geometry (binning).
func (c *Camera) refreshGeometry() error {
	w, h, err := c.drv.GetImageSize(c.id)
	if err != nil {
		return err
	}
	f, err := c.drv.GetImageFormat(c.id)
	if err != nil {
		return err
	}
	c.width, c.height, c.format = w, h, formatFromSDK(f)
	return nil
}

// ID returns the native camera ID of the session.
func (c *Camera) ID() int { return c.id }

// Properties returns the cached static capabilities. No device I/O.
func (c *Camera) Properties() Properties { return c.props }

// Close releases the hardware handle. It is idempotent: repeated
// calls are no-ops, not errors.
func (c *Camera) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.streaming = false
	if err := c.drv.Close(c.id); err != nil {
		return fmt.Errorf("close camera %d: %w", c.id, err)
	}
	debug.Info("closed camera %d", c.id)
	return nil
}

// ConfigBounds queries the declared control ranges. Bounds can depend
// on the currently selected image format, so this is a live query,
// not a cache read.
func (c *Camera) ConfigBounds() (AllBounds, error) {
	count, err := c.drv.ConfigsCount(c.id)
	if err != nil {
		return AllBounds{}, configError("config bounds", err)
	}
	attrs := make([]sdk.ConfigAttribute, 0, count)
	for i := 0; i < count; i++ {
		a, err := c.drv.ConfigAttributes(c.id, i)
		if err != nil {
			return AllBounds{}, configError("config bounds", err)
		}
		attrs = append(attrs, a)
	}
	return boundsFromAttributes(attrs), nil
}

// SetImageFormat selects the pixel format of captured frames. It
// fails with ConfigUnsupported for formats the model does not
// declare. A successful change updates the cached buffer-sizing
// fields before returning; buffers created earlier no longer fit.
func (c *Camera) SetImageFormat(f ImageFormat) error {
	if !c.props.SupportsFormat(f) {
		return &ConfigError{Kind: ConfigUnsupported, Op: "set image format",
			Err: fmt.Errorf("format %s not supported by %s", f, c.props.Model)}
	}
	if err := c.drv.SetImageFormat(c.id, formatToSDK(f)); err != nil {
		return configError("set image format", err)
	}
	c.format = f
	debug.Live("camera %d: format %s", c.id, f)
	return nil
}

// Format returns the current image format. Pure cache read.
func (c *Camera) Format() ImageFormat { return c.format }

// SetImageSize sets the capture width and height. It fails with
// ConfigOutOfRange when the size exceeds the sensor maximum or
// violates the alignment the native layer requires (width multiple
// of 4, height multiple of 2). A successful change updates the
// cached geometry before returning.
func (c *Camera) SetImageSize(width, height int) error {
	if width < 1 || height < 1 || width > c.props.MaxWidth || height > c.props.MaxHeight {
		return &ConfigError{Kind: ConfigOutOfRange, Op: "set image size",
			Err: fmt.Errorf("%dx%d outside sensor limits %dx%d",
				width, height, c.props.MaxWidth, c.props.MaxHeight)}
	}
	if err := c.drv.SetImageSize(c.id, width, height); err != nil {
		return configError("set image size", err)
	}
	c.width, c.height = width, height
	debug.Live("camera %d: size %dx%d", c.id, width, height)
	return nil
}

// ImageSize returns the current capture width and height. Pure cache
// read, no device I/O.
func (c *Camera) ImageSize() (width, height int) {
	return c.width, c.height
}

// SetImageStartPos sets the top-left corner of the capture window.
func (c *Camera) SetImageStartPos(x, y int) error {
	if err := c.drv.SetImageStartPos(c.id, x, y); err != nil {
		return configError("set image start position", err)
	}
	return nil
}

// ImageStartPos returns the current top-left corner of the capture
// window.
func (c *Camera) ImageStartPos() (x, y int, err error) {
	x, y, err = c.drv.GetImageStartPos(c.id)
	if err != nil {
		return 0, 0, configError("image start position", err)
	}
	return x, y, nil
}

// SetROI sets size and start position in one call.
func (c *Camera) SetROI(roi ROI) error {
	if err := c.SetImageSize(roi.Width, roi.Height); err != nil {
		return err
	}
	return c.SetImageStartPos(roi.StartX, roi.StartY)
}

// ROI returns the current capture region.
func (c *Camera) ROI() (ROI, error) {
	x, y, err := c.ImageStartPos()
	if err != nil {
		return ROI{}, err
	}
	return ROI{StartX: x, StartY: y, Width: c.width, Height: c.height}, nil
}

// SetBin sets the binning factor. It fails with ConfigOutOfRange for
// factors the model does not declare. The native layer rescales
// width, height and start position on success, so the cached
// geometry is refreshed before returning.
func (c *Camera) SetBin(bin int) error {
	if !c.props.SupportsBin(bin) {
		return &ConfigError{Kind: ConfigOutOfRange, Op: "set bin",
			Err: fmt.Errorf("bin %d not in supported set %v", bin, c.props.Bins)}
	}
	if err := c.drv.SetImageBin(c.id, bin); err != nil {
		return configError("set bin", err)
	}
	if err := c.refreshGeometry(); err != nil {
		return configError("set bin", err)
	}
	debug.Live("camera %d: bin %d, geometry now %dx%d", c.id, bin, c.width, c.height)
	return nil
}

// Bin returns the current binning factor.
func (c *Camera) Bin() (int, error) {
	bin, err := c.drv.GetImageBin(c.id)
	if err != nil {
		return 0, configError("bin", err)
	}
	return bin, nil
}
