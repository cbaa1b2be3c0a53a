//go:build !cgo

package sdk

// Without cgo the vendor library cannot be linked; every driver call
// reports ErrUnavailable so enumeration surfaces a clean error
// instead of a link failure at runtime.

type stubDriver struct{}

// Default returns the process-wide driver. In a non-cgo build that is
// a stub that can never reach the vendor library.
func Default() Driver {
	return stubDriver{}
}

func (stubDriver) CameraCount() (int, error)                      { return 0, ErrUnavailable }
func (stubDriver) CameraProperties(int) (DeviceInfo, error)       { return DeviceInfo{}, ErrUnavailable }
func (stubDriver) Open(int) error                                 { return ErrUnavailable }
func (stubDriver) Init(int) error                                 { return ErrUnavailable }
func (stubDriver) Close(int) error                                { return ErrUnavailable }
func (stubDriver) CameraState(int) (CameraState, error)           { return StateClosed, ErrUnavailable }
func (stubDriver) ConfigsCount(int) (int, error)                  { return 0, ErrUnavailable }
func (stubDriver) ConfigAttributes(int, int) (ConfigAttribute, error) {
	return ConfigAttribute{}, ErrUnavailable
}
func (stubDriver) GetConfig(int, Config) (Value, bool, error) { return Value{}, false, ErrUnavailable }
func (stubDriver) SetConfig(int, Config, Value, bool) error   { return ErrUnavailable }
func (stubDriver) GetImageSize(int) (int, int, error)         { return 0, 0, ErrUnavailable }
func (stubDriver) SetImageSize(int, int, int) error           { return ErrUnavailable }
func (stubDriver) GetImageStartPos(int) (int, int, error)     { return 0, 0, ErrUnavailable }
func (stubDriver) SetImageStartPos(int, int, int) error       { return ErrUnavailable }
func (stubDriver) GetImageFormat(int) (ImgFormat, error)      { return FormatEnd, ErrUnavailable }
func (stubDriver) SetImageFormat(int, ImgFormat) error        { return ErrUnavailable }
func (stubDriver) GetImageBin(int) (int, error)               { return 0, ErrUnavailable }
func (stubDriver) SetImageBin(int, int) error                 { return ErrUnavailable }
func (stubDriver) StartExposure(int, bool) error              { return ErrUnavailable }
func (stubDriver) StopExposure(int) error                     { return ErrUnavailable }
func (stubDriver) ImageReady(int) (bool, error)               { return false, ErrUnavailable }
func (stubDriver) GetImageData(int, []byte, int) error        { return ErrUnavailable }
