package poago

import (
	"fmt"
	"time"

	"github.com/cjeanneret/PoaGo/internal/debug"
)

// Capture pipeline. Each session moves Idle -> Streaming -> Idle;
// Start and Stop drive the transition, Capture fetches one frame per
// call. Capture blocks the calling goroutine; the only cancellation
// mechanism is the timeout parameter. The binding never retries on
// its own.

// FrameSize returns the byte length a frame buffer must have for the
// current geometry and format.
func (c *Camera) FrameSize() int {
	return c.width * c.height * c.format.BytesPerPixel()
}

// CreateImageBuffer allocates a zeroed buffer sized exactly for the
// current geometry and format. No device I/O. Buffers must be
// recreated after any successful geometry, format or bin change.
func (c *Camera) CreateImageBuffer() []byte {
	return make([]byte, c.FrameSize())
}

// Start begins continuous acquisition (Idle -> Streaming). It fails
// with CaptureAlreadyStreaming when the session is already streaming.
func (c *Camera) Start() error {
	if c.streaming {
		return &CaptureError{Kind: CaptureAlreadyStreaming,
			Err: fmt.Errorf("camera %d is already streaming", c.id)}
	}
	if err := c.drv.StartExposure(c.id, false); err != nil {
		return captureError(err)
	}
	c.streaming = true
	debug.Live("camera %d: streaming started", c.id)
	return nil
}

// Stop ends acquisition (Streaming -> Idle). It is idempotent:
// stopping an idle session is a no-op, not an error.
func (c *Camera) Stop() error {
	if !c.streaming {
		return nil
	}
	if err := c.drv.StopExposure(c.id); err != nil {
		return captureError(err)
	}
	c.streaming = false
	debug.Live("camera %d: streaming stopped", c.id)
	return nil
}

// ImageReady reports whether a frame is waiting to be fetched.
// Useful with Start for callers that poll instead of blocking.
func (c *Camera) ImageReady() (bool, error) {
	ready, err := c.drv.ImageReady(c.id)
	if err != nil {
		return false, captureError(err)
	}
	return ready, nil
}

// timeoutMs converts the public timeout convention (<= 0 blocks
// indefinitely) to the native one (-1 blocks indefinitely).
func timeoutMs(timeout time.Duration) int {
	if timeout <= 0 {
		return -1
	}
	ms := int(timeout.Milliseconds())
	if ms < 1 {
		ms = 1
	}
	return ms
}

// Capture blocks until one frame is copied into buf or the timeout
// elapses. timeout <= 0 blocks indefinitely.
//
// buf length must equal FrameSize for the current configuration;
// otherwise Capture fails with CaptureBufferSizeMismatch before
// touching hardware. On CaptureTimeout the streaming state is left
// unchanged and the caller may simply call Capture again.
//
// On an idle session Capture performs a single-frame exposure and
// returns the session to Idle. On a streaming session it fetches the
// next frame.
func (c *Camera) Capture(buf []byte, timeout time.Duration) error {
	if need := c.FrameSize(); len(buf) != need {
		return &CaptureError{Kind: CaptureBufferSizeMismatch,
			Err: fmt.Errorf("buffer is %d bytes, frame needs %d (%dx%d %s)",
				len(buf), need, c.width, c.height, c.format)}
	}

	if c.streaming {
		if err := c.drv.GetImageData(c.id, buf, timeoutMs(timeout)); err != nil {
			return captureError(err)
		}
		return nil
	}

	// Idle session: single-frame exposure, back to Idle afterwards.
	if err := c.drv.StartExposure(c.id, true); err != nil {
		return captureError(err)
	}
	if err := c.drv.GetImageData(c.id, buf, timeoutMs(timeout)); err != nil {
		_ = c.drv.StopExposure(c.id)
		return captureError(err)
	}
	if err := c.drv.StopExposure(c.id); err != nil {
		return captureError(err)
	}
	return nil
}

// Stream starts acquisition and calls fn with every frame until fn
// returns false or an error occurs. The buffer passed to fn is reused
// between calls; copy it to keep a frame. Acquisition is stopped
// before Stream returns.
func (c *Camera) Stream(timeout time.Duration, fn func(c *Camera, frame []byte) bool) error {
	buf := c.CreateImageBuffer()

	if err := c.Start(); err != nil {
		return err
	}
	seq := 0
	for {
		if err := c.Capture(buf, timeout); err != nil {
			_ = c.Stop()
			return err
		}
		seq++
		debug.Frame(seq, len(buf))
		if !fn(c, buf) {
			break
		}
	}
	return c.Stop()
}
