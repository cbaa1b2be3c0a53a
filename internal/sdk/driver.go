// Package sdk is the boundary to the vendor PlayerOne camera library.
// It exposes the native POA C API as a Driver interface so the rest of
// the binding can run against the real library (cgo), a no-op stub
// (non-cgo builds), or an in-memory mock for development and tests.
package sdk

// Config identifies a camera control, mirroring the native POAConfig enum.
type Config int32

const (
	CfgExposure Config = iota
	CfgGain
	CfgHardwareBin
	CfgTemperature
	CfgWBR
	CfgWBG
	CfgWBB
	CfgOffset
	CfgAutoMaxGain
	CfgAutoMaxExposure
	CfgAutoTargetBrightness
	CfgGuideNorth
	CfgGuideSouth
	CfgGuideEast
	CfgGuideWest
	CfgEGain
	CfgCoolerPower
	CfgTargetTemp
	CfgCooler
	CfgHeater
	CfgHeaterPower
	CfgFanPower
	CfgFlipNone
	CfgFlipHori
	CfgFlipVert
	CfgFlipBoth
	CfgFrameLimit
	CfgHQI
	CfgUSBBandwidthLimit
	CfgPixelBinSum
	CfgMonoBin
)

// ValueType tells which field of a Value is meaningful for a control.
type ValueType int32

const (
	ValInt ValueType = iota
	ValFloat
	ValBool
)

// Value carries a control value across the boundary. The native side
// uses a union; only the field matching the control's ValueType is set.
type Value struct {
	Int   int64
	Float float64
	Bool  bool
}

// ImgFormat mirrors the native POAImgFormat enum.
type ImgFormat int32

const (
	FormatRAW8  ImgFormat = 0
	FormatRAW16 ImgFormat = 1
	FormatRGB24 ImgFormat = 2
	FormatMONO8 ImgFormat = 3

	// FormatEnd terminates the supported-format list in the native
	// camera properties struct.
	FormatEnd ImgFormat = -1
)

// BayerPattern mirrors the native POABayerPattern enum.
type BayerPattern int32

const (
	BayerRG   BayerPattern = 0
	BayerBG   BayerPattern = 1
	BayerGR   BayerPattern = 2
	BayerGB   BayerPattern = 3
	BayerMono BayerPattern = -1
)

// CameraState mirrors the native POACameraState enum.
type CameraState int32

const (
	StateClosed CameraState = iota
	StateOpened
	StateExposing
)

// DeviceInfo is the decoded native camera properties struct. All C
// strings are converted at the boundary so nothing above this package
// handles raw byte arrays.
type DeviceInfo struct {
	CameraID        int
	Model           string
	CustomID        string
	MaxWidth        int
	MaxHeight       int
	BitDepth        int
	IsColorCamera   bool
	HasST4Port      bool
	HasCooler       bool
	IsUSB3Speed     bool
	BayerPattern    BayerPattern
	PixelSizeUm     float64
	SerialNumber    string
	SensorModel     string
	LocalPath       string
	Bins            []int
	ImgFormats      []ImgFormat
	SupportsHardBin bool
	ProductID       int
}

// ConfigAttribute is the decoded native config attribute struct: the
// declared range and capability flags of one control.
type ConfigAttribute struct {
	ID           Config
	Type         ValueType
	SupportsAuto bool
	Writable     bool
	Readable     bool
	Min          Value
	Max          Value
	Default      Value
	Name         string
	Description  string
}

// Driver maps 1:1 onto the native POA function set. Implementations:
// the cgo driver (real hardware), the stub (non-cgo builds) and the
// Mock (tests, development without a camera).
//
// All methods that address a camera take the native camera ID. Errors
// are Errno values from the native layer, except where an
// implementation cannot reach the vendor library at all.
type Driver interface {
	CameraCount() (int, error)
	CameraProperties(index int) (DeviceInfo, error)

	Open(id int) error
	Init(id int) error
	Close(id int) error
	CameraState(id int) (CameraState, error)

	ConfigsCount(id int) (int, error)
	ConfigAttributes(id, index int) (ConfigAttribute, error)
	GetConfig(id int, conf Config) (Value, bool, error)
	SetConfig(id int, conf Config, value Value, auto bool) error

	GetImageSize(id int) (width, height int, err error)
	SetImageSize(id, width, height int) error
	GetImageStartPos(id int) (x, y int, err error)
	SetImageStartPos(id, x, y int) error
	GetImageFormat(id int) (ImgFormat, error)
	SetImageFormat(id int, format ImgFormat) error
	GetImageBin(id int) (int, error)
	SetImageBin(id, bin int) error

	// StartExposure begins acquisition. With singleFrame the camera
	// stops by itself after one frame (snap mode), otherwise it keeps
	// exposing until StopExposure (video mode).
	StartExposure(id int, singleFrame bool) error
	StopExposure(id int) error
	ImageReady(id int) (bool, error)

	// GetImageData blocks until one frame is copied into buf or the
	// timeout elapses. timeoutMs < 0 blocks indefinitely.
	GetImageData(id int, buf []byte, timeoutMs int) error
}
