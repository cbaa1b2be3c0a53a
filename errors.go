package poago

import (
	"errors"
	"fmt"

	"github.com/cjeanneret/PoaGo/internal/sdk"
)

// The binding surfaces every vendor-layer failure as one of four typed
// error categories. Native status codes are translated here and never
// leak past this package. The binding performs no retry and no
// recovery; retry policy belongs to the caller.

// EnumerationError reports that the vendor driver layer itself is
// unreachable. An empty camera list is not an error.
type EnumerationError struct {
	Err error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("camera enumeration failed: %v", e.Err)
}

func (e *EnumerationError) Unwrap() error { return e.Err }

// OpenErrorKind discriminates why a session could not be opened.
type OpenErrorKind int

const (
	// OpenBusy: the device is already held by another session or process.
	OpenBusy OpenErrorKind = iota
	// OpenNotFound: the device vanished between enumeration and open.
	OpenNotFound
	// OpenDriver: any other vendor-layer failure.
	OpenDriver
)

func (k OpenErrorKind) String() string {
	switch k {
	case OpenBusy:
		return "device busy"
	case OpenNotFound:
		return "device not found"
	default:
		return "driver error"
	}
}

// OpenError reports a failed session open.
type OpenError struct {
	Kind OpenErrorKind
	Err  error
}

func (e *OpenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("open camera: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("open camera: %s", e.Kind)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ConfigErrorKind discriminates configuration failures.
type ConfigErrorKind int

const (
	// ConfigUnsupported: the control or format does not exist on this model.
	ConfigUnsupported ConfigErrorKind = iota
	// ConfigOutOfRange: the value violates the declared bounds or
	// geometry/alignment constraints.
	ConfigOutOfRange
	// ConfigDriver: any other vendor-layer failure.
	ConfigDriver
)

func (k ConfigErrorKind) String() string {
	switch k {
	case ConfigUnsupported:
		return "unsupported"
	case ConfigOutOfRange:
		return "out of range"
	default:
		return "driver error"
	}
}

// ConfigError reports a failed configuration change or query.
type ConfigError struct {
	Kind ConfigErrorKind
	Op   string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// CaptureErrorKind discriminates capture failures.
type CaptureErrorKind int

const (
	// CaptureAlreadyStreaming: Start was called on a streaming session.
	CaptureAlreadyStreaming CaptureErrorKind = iota
	// CaptureTimeout: the requested timeout elapsed before a frame
	// arrived. The streaming state is unchanged; the caller may retry.
	CaptureTimeout
	// CaptureBufferSizeMismatch: the supplied buffer length does not
	// match width * height * bytes-per-pixel for the current config.
	// Detected before any hardware is touched.
	CaptureBufferSizeMismatch
	// CaptureDriver: any other vendor-layer failure.
	CaptureDriver
)

func (k CaptureErrorKind) String() string {
	switch k {
	case CaptureAlreadyStreaming:
		return "already streaming"
	case CaptureTimeout:
		return "timeout"
	case CaptureBufferSizeMismatch:
		return "buffer size mismatch"
	default:
		return "driver error"
	}
}

// CaptureError reports a failed capture operation.
type CaptureError struct {
	Kind CaptureErrorKind
	Err  error
}

func (e *CaptureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("capture: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("capture: %s", e.Kind)
}

func (e *CaptureError) Unwrap() error { return e.Err }

// asErrno extracts a native status code, if the error carries one.
func asErrno(err error) (sdk.Errno, bool) {
	var e sdk.Errno
	if errors.As(err, &e) {
		return e, true
	}
	return 0, false
}

// openError translates a native failure from the open sequence.
func openError(err error) *OpenError {
	kind := OpenDriver
	if e, ok := asErrno(err); ok {
		switch e {
		case sdk.ErrAccessDenied, sdk.ErrExposing:
			kind = OpenBusy
		case sdk.ErrDeviceNotFound, sdk.ErrInvalidID, sdk.ErrInvalidIndex:
			kind = OpenNotFound
		}
	}
	return &OpenError{Kind: kind, Err: err}
}

// configError translates a native failure from a config operation.
func configError(op string, err error) *ConfigError {
	kind := ConfigDriver
	if e, ok := asErrno(err); ok {
		switch e {
		case sdk.ErrOutOfLimit, sdk.ErrInvalidArg:
			kind = ConfigOutOfRange
		case sdk.ErrInvalidConfig, sdk.ErrConfNotWritable, sdk.ErrConfNotReadable:
			kind = ConfigUnsupported
		}
	}
	return &ConfigError{Kind: kind, Op: op, Err: err}
}

// captureError translates a native failure from the capture pipeline.
func captureError(err error) *CaptureError {
	kind := CaptureDriver
	if e, ok := asErrno(err); ok {
		switch e {
		case sdk.ErrTimeout:
			kind = CaptureTimeout
		case sdk.ErrSizeLess:
			kind = CaptureBufferSizeMismatch
		case sdk.ErrExposing:
			kind = CaptureAlreadyStreaming
		}
	}
	return &CaptureError{Kind: kind, Err: err}
}
