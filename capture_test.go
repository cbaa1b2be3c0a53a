package poago

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjeanneret/PoaGo/internal/sdk"
)

func TestCapture_SingleFrame(t *testing.T) {
	cam := openTestCamera(t, newTestDriver())

	buf := cam.CreateImageBuffer()
	require.NoError(t, cam.Capture(buf, time.Second))

	// The mock fills frames with a ramp pattern.
	assert.Equal(t, byte(0), buf[0])
	assert.Equal(t, byte(1), buf[1])

	// Single-frame capture must leave the session idle: a second
	// capture starts a fresh exposure and succeeds too.
	require.NoError(t, cam.Capture(buf, time.Second))
}

func TestCapture_BufferSizeMismatch(t *testing.T) {
	cam := openTestCamera(t, newTestDriver())

	var capErr *CaptureError

	short := make([]byte, cam.FrameSize()-1)
	err := cam.Capture(short, time.Second)
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, CaptureBufferSizeMismatch, capErr.Kind)

	long := make([]byte, cam.FrameSize()+1)
	err = cam.Capture(long, time.Second)
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, CaptureBufferSizeMismatch, capErr.Kind)
}

func TestCapture_TimeoutIsBounded(t *testing.T) {
	dev := sdk.NewMockDevice(0, "Mars-C", "SN000001")
	dev.FrameDelay = 200 * time.Millisecond
	cam := openTestCamera(t, sdk.NewMock(dev))

	buf := cam.CreateImageBuffer()
	start := time.Now()
	err := cam.Capture(buf, time.Millisecond)
	elapsed := time.Since(start)

	var capErr *CaptureError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, CaptureTimeout, capErr.Kind)
	assert.Less(t, elapsed, 100*time.Millisecond,
		"a 1ms timeout must not wait for the full frame delay")
}

func TestCapture_TimeoutPreservesStreamingState(t *testing.T) {
	dev := sdk.NewMockDevice(0, "Mars-C", "SN000001")
	dev.FrameDelay = 200 * time.Millisecond
	cam := openTestCamera(t, sdk.NewMock(dev))

	require.NoError(t, cam.Start())

	buf := cam.CreateImageBuffer()
	var capErr *CaptureError
	err := cam.Capture(buf, time.Millisecond)
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, CaptureTimeout, capErr.Kind)

	// Still streaming: a patient retry gets the frame.
	require.NoError(t, cam.Capture(buf, time.Second))
	require.NoError(t, cam.Stop())
}

func TestStart_Twice(t *testing.T) {
	cam := openTestCamera(t, newTestDriver())

	require.NoError(t, cam.Start())
	defer cam.Stop()

	err := cam.Start()
	var capErr *CaptureError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, CaptureAlreadyStreaming, capErr.Kind)
}

func TestStop_Idempotent(t *testing.T) {
	cam := openTestCamera(t, newTestDriver())

	require.NoError(t, cam.Start())
	require.NoError(t, cam.Stop())
	require.NoError(t, cam.Stop())
}

func TestCapture_WhileStreaming(t *testing.T) {
	cam := openTestCamera(t, newTestDriver())

	require.NoError(t, cam.Start())
	defer cam.Stop()

	buf := cam.CreateImageBuffer()
	require.NoError(t, cam.Capture(buf, time.Second))
	require.NoError(t, cam.Capture(buf, time.Second))
}

func TestStream_CallbackStops(t *testing.T) {
	cam := openTestCamera(t, newTestDriver())

	frames := 0
	err := cam.Stream(time.Second, func(_ *Camera, frame []byte) bool {
		assert.Len(t, frame, cam.FrameSize())
		frames++
		return frames < 3
	})
	require.NoError(t, err)
	assert.Equal(t, 3, frames)

	// Stream must leave the session idle: single-frame capture works.
	require.NoError(t, cam.Capture(cam.CreateImageBuffer(), time.Second))
}

func TestImageReady_AfterStart(t *testing.T) {
	cam := openTestCamera(t, newTestDriver())

	require.NoError(t, cam.Start())
	defer cam.Stop()

	ready, err := cam.ImageReady()
	require.NoError(t, err)
	assert.True(t, ready)
}
