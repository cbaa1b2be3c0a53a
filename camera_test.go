package poago

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CachesPropertiesAndGeometry(t *testing.T) {
	cam := openTestCamera(t, newTestDriver())

	// Properties come from the enumeration cache, geometry from the
	// device at open time (full sensor after init).
	assert.Equal(t, "Mars-C", cam.Properties().Model)
	w, h := cam.ImageSize()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
	assert.Equal(t, RAW8, cam.Format())
}

func TestOpen_BusyWhenAlreadyOpen(t *testing.T) {
	drv := newTestDriver()
	cams, err := listCameras(drv)
	require.NoError(t, err)

	first, err := cams[0].Open()
	require.NoError(t, err)
	defer first.Close()

	_, err = cams[0].Open()
	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, OpenBusy, openErr.Kind)

	// The first session must still be usable.
	w, h := first.ImageSize()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
	require.NoError(t, first.Capture(first.CreateImageBuffer(), 0))
}

func TestOpen_NotFoundWhenDeviceVanished(t *testing.T) {
	drv := newTestDriver()
	// A descriptor whose device was unplugged after enumeration.
	stale := Descriptor{drv: drv, id: 42}

	_, err := stale.Open()
	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, OpenNotFound, openErr.Kind)
}

func TestClose_Idempotent(t *testing.T) {
	drv := newTestDriver()
	cams, err := listCameras(drv)
	require.NoError(t, err)
	cam, err := cams[0].Open()
	require.NoError(t, err)

	require.NoError(t, cam.Close())
	require.NoError(t, cam.Close())
}

func TestCloseThenReopen(t *testing.T) {
	drv := newTestDriver()
	cams, err := listCameras(drv)
	require.NoError(t, err)

	cam, err := cams[0].Open()
	require.NoError(t, err)
	require.NoError(t, cam.Close())

	// The device must be enumerable and openable again.
	cams, err = listCameras(drv)
	require.NoError(t, err)
	require.Len(t, cams, 1)

	cam, err = cams[0].Open()
	require.NoError(t, err)
	require.NoError(t, cam.Close())
}

func TestConfigBounds_ReportsDeclaredRanges(t *testing.T) {
	cam := openTestCamera(t, newTestDriver())

	bounds, err := cam.ConfigBounds()
	require.NoError(t, err)

	assert.Equal(t, int64(10), bounds.Exposure.Min)
	assert.Equal(t, int64(2_000_000_000), bounds.Exposure.Max)
	assert.True(t, bounds.Exposure.SupportsAuto)
	assert.Equal(t, int64(0), bounds.Gain.Min)
	assert.Equal(t, int64(400), bounds.Gain.Max)
	assert.True(t, bounds.Temperature.Readable)
	assert.False(t, bounds.Temperature.Writable)
	assert.Equal(t, int64(35), bounds.USBBandwidthLimit.Min)
}

func TestSetBin_RefreshesGeometry(t *testing.T) {
	cam := openTestCamera(t, newTestDriver())

	require.NoError(t, cam.SetBin(2))
	w, h := cam.ImageSize()
	assert.Equal(t, 960, w)
	assert.Equal(t, 540, h)

	bin, err := cam.Bin()
	require.NoError(t, err)
	assert.Equal(t, 2, bin)

	// Buffers must follow the rescaled geometry.
	assert.Len(t, cam.CreateImageBuffer(), 960*540)
}

func TestSetBin_UnsupportedFactor(t *testing.T) {
	cam := openTestCamera(t, newTestDriver())

	err := cam.SetBin(3)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ConfigOutOfRange, cfgErr.Kind)
}

func TestROI_RoundTrip(t *testing.T) {
	cam := openTestCamera(t, newTestDriver())

	require.NoError(t, cam.SetROI(ROI{StartX: 100, StartY: 50, Width: 640, Height: 480}))

	roi, err := cam.ROI()
	require.NoError(t, err)
	assert.Equal(t, ROI{StartX: 100, StartY: 50, Width: 640, Height: 480}, roi)
}
