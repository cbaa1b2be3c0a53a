// Package poago is a Go binding for the PlayerOne astronomy camera
// SDK. It wraps the vendor's native interface behind a small, typed
// API: enumerate attached cameras, open one into an exclusive
// session, configure exposure/gain/geometry/format, and capture raw
// frames into caller-supplied buffers.
//
// The heavy lifting (USB transport, sensor timing, DMA) lives in the
// closed vendor library; this package only maps its operations 1:1
// and translates native status codes into typed errors. A session is
// not internally synchronized: use it from one goroutine, or
// serialize access externally.
package poago

import (
	"github.com/cjeanneret/PoaGo/internal/debug"
	"github.com/cjeanneret/PoaGo/internal/sdk"
)

// Descriptor identifies an enumerated, not-yet-opened camera. It owns
// no hardware handle and becomes stale if the device is unplugged
// before Open.
type Descriptor struct {
	drv   sdk.Driver
	id    int
	props Properties
}

// ID returns the native camera ID.
func (d Descriptor) ID() int { return d.id }

// Model returns the camera model name.
func (d Descriptor) Model() string { return d.props.Model }

// SerialNumber returns the unique serial of the unit.
func (d Descriptor) SerialNumber() string { return d.props.SerialNumber }

// Properties returns the static capabilities fetched at enumeration.
func (d Descriptor) Properties() Properties { return d.props }

// ListCameras returns a snapshot of the currently attached cameras.
// An empty slice is not an error; an *EnumerationError means the
// vendor driver layer itself is unreachable.
func ListCameras() ([]Descriptor, error) {
	return listCameras(sdk.Default())
}

// ListCamerasWith enumerates through an explicit driver instead of the
// process-wide native one. Tools use it to run against sdk.NewMock
// without hardware attached.
func ListCamerasWith(drv sdk.Driver) ([]Descriptor, error) {
	return listCameras(drv)
}

func listCameras(drv sdk.Driver) ([]Descriptor, error) {
	count, err := drv.CameraCount()
	if err != nil {
		return nil, &EnumerationError{Err: err}
	}

	cameras := make([]Descriptor, 0, count)
	for i := 0; i < count; i++ {
		info, err := drv.CameraProperties(i)
		if err != nil {
			// A device that vanished mid-enumeration is skipped, the
			// way the vendor examples do.
			debug.Verbose("skipping camera index %d: %v", i, err)
			continue
		}
		cameras = append(cameras, Descriptor{
			drv:   drv,
			id:    info.CameraID,
			props: propertiesFromSDK(info),
		})
	}
	debug.Info("enumerated %d camera(s)", len(cameras))
	return cameras, nil
}
