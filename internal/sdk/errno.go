package sdk

import "errors"

// Errno is a native POAErrors status code. The binding's public
// package translates these into its typed error categories; raw codes
// never travel further than that.
type Errno int32

const (
	OK Errno = iota
	ErrInvalidIndex
	ErrInvalidID
	ErrInvalidConfig
	ErrInvalidArg
	ErrNotOpened
	ErrDeviceNotFound
	ErrOutOfLimit
	ErrExposureFailed
	ErrTimeout
	ErrSizeLess
	ErrExposing
	ErrNullPointer
	ErrConfNotWritable
	ErrConfNotReadable
	ErrAccessDenied
	ErrOperationFailed
	ErrMemoryAllocFailed
)

// ErrUnavailable reports that the vendor library cannot be reached at
// all, e.g. a binary built without cgo support.
var ErrUnavailable = errors.New("playerone sdk unavailable (binary built without cgo support)")

var errnoStrings = map[Errno]string{
	OK:                   "operation successful",
	ErrInvalidIndex:      "invalid index",
	ErrInvalidID:         "invalid camera ID",
	ErrInvalidConfig:     "invalid config",
	ErrInvalidArg:        "invalid argument",
	ErrNotOpened:         "camera not opened",
	ErrDeviceNotFound:    "device not found or removed",
	ErrOutOfLimit:        "value out of limits",
	ErrExposureFailed:    "exposure failed",
	ErrTimeout:           "image data timed out",
	ErrSizeLess:          "buffer size too small",
	ErrExposing:          "camera is exposing",
	ErrNullPointer:       "null pointer",
	ErrConfNotWritable:   "config is not writable",
	ErrConfNotReadable:   "config is not readable",
	ErrAccessDenied:      "access denied",
	ErrOperationFailed:   "operation failed",
	ErrMemoryAllocFailed: "memory allocation failed",
}

func (e Errno) Error() string {
	if s, ok := errnoStrings[e]; ok {
		return s
	}
	return "unknown POA error"
}
