package sdk

import (
	"sync"
	"time"

	"github.com/cjeanneret/PoaGo/internal/debug"
)

// MockDevice is one simulated camera attached to a Mock driver. The
// zero value is not usable; build one with NewMockDevice.
type MockDevice struct {
	Info MockInfo

	// FrameDelay is how long an exposure runs before a frame becomes
	// available. Used to exercise timeout behavior without hardware.
	FrameDelay time.Duration

	attrs []ConfigAttribute

	open          bool
	exposing      bool
	single        bool
	width, height int
	startX        int
	startY        int
	bin           int
	format        ImgFormat
	values        map[Config]Value
	autos         map[Config]bool
	exposureStart time.Time
}

// MockInfo is the subset of DeviceInfo a mock device is built from.
type MockInfo struct {
	CameraID      int
	Model         string
	SerialNumber  string
	MaxWidth      int
	MaxHeight     int
	BitDepth      int
	IsColorCamera bool
	BayerPattern  BayerPattern
	Bins          []int
	ImgFormats    []ImgFormat
}

// NewMockDevice builds a simulated camera with sensible defaults:
// 1920x1080 mono sensor, 12 bit, bins 1/2/4, all four image formats,
// and the standard POA control ranges.
func NewMockDevice(id int, model, serial string) *MockDevice {
	return &MockDevice{
		Info: MockInfo{
			CameraID:      id,
			Model:         model,
			SerialNumber:  serial,
			MaxWidth:      1920,
			MaxHeight:     1080,
			BitDepth:      12,
			IsColorCamera: false,
			BayerPattern:  BayerMono,
			Bins:          []int{1, 2, 4},
			ImgFormats:    []ImgFormat{FormatRAW8, FormatRAW16, FormatRGB24, FormatMONO8},
		},
		FrameDelay: 0,
		attrs:      defaultAttributes(),
	}
}

// deviceInfo expands the MockInfo into a full DeviceInfo the way the
// native layer would report it.
func (d *MockDevice) deviceInfo() DeviceInfo {
	return DeviceInfo{
		CameraID:        d.Info.CameraID,
		Model:           d.Info.Model,
		MaxWidth:        d.Info.MaxWidth,
		MaxHeight:       d.Info.MaxHeight,
		BitDepth:        d.Info.BitDepth,
		IsColorCamera:   d.Info.IsColorCamera,
		BayerPattern:    d.Info.BayerPattern,
		PixelSizeUm:     2.9,
		SerialNumber:    d.Info.SerialNumber,
		SensorModel:     "MOCK-SENSOR",
		LocalPath:       "mock://" + d.Info.SerialNumber,
		Bins:            append([]int(nil), d.Info.Bins...),
		ImgFormats:      append([]ImgFormat(nil), d.Info.ImgFormats...),
		SupportsHardBin: false,
		ProductID:       0xA0A0,
	}
}

func intAttr(id Config, min, max, def int64, auto bool) ConfigAttribute {
	return ConfigAttribute{
		ID: id, Type: ValInt, SupportsAuto: auto, Writable: true, Readable: true,
		Min: Value{Int: min}, Max: Value{Int: max}, Default: Value{Int: def},
	}
}

func boolAttr(id Config, def bool) ConfigAttribute {
	return ConfigAttribute{
		ID: id, Type: ValBool, Writable: true, Readable: true,
		Min: Value{Bool: false}, Max: Value{Bool: true}, Default: Value{Bool: def},
	}
}

func roFloatAttr(id Config, min, max, def float64) ConfigAttribute {
	return ConfigAttribute{
		ID: id, Type: ValFloat, Readable: true,
		Min: Value{Float: min}, Max: Value{Float: max}, Default: Value{Float: def},
	}
}

// defaultAttributes mirrors the ranges a typical POA camera reports.
func defaultAttributes() []ConfigAttribute {
	return []ConfigAttribute{
		intAttr(CfgExposure, 10, 2_000_000_000, 10_000, true),
		intAttr(CfgGain, 0, 400, 0, true),
		boolAttr(CfgHardwareBin, false),
		roFloatAttr(CfgTemperature, -50, 100, 20),
		intAttr(CfgWBR, -1200, 1200, 0, true),
		intAttr(CfgWBG, -1200, 1200, 0, true),
		intAttr(CfgWBB, -1200, 1200, 0, true),
		intAttr(CfgOffset, 0, 200, 10, false),
		intAttr(CfgAutoMaxGain, 0, 400, 200, false),
		intAttr(CfgAutoMaxExposure, 1, 5000, 100, false),
		intAttr(CfgAutoTargetBrightness, 50, 200, 100, false),
		boolAttr(CfgGuideNorth, false),
		boolAttr(CfgGuideSouth, false),
		boolAttr(CfgGuideEast, false),
		boolAttr(CfgGuideWest, false),
		roFloatAttr(CfgEGain, 0, 10, 1),
		intAttr(CfgCoolerPower, 0, 100, 0, false),
		intAttr(CfgTargetTemp, -40, 30, 0, false),
		boolAttr(CfgCooler, false),
		boolAttr(CfgHeater, false),
		intAttr(CfgHeaterPower, 0, 100, 10, false),
		intAttr(CfgFanPower, 0, 100, 70, false),
		boolAttr(CfgFlipNone, true),
		boolAttr(CfgFlipHori, false),
		boolAttr(CfgFlipVert, false),
		boolAttr(CfgFlipBoth, false),
		intAttr(CfgFrameLimit, 0, 2000, 0, false),
		boolAttr(CfgHQI, false),
		intAttr(CfgUSBBandwidthLimit, 35, 100, 100, false),
		boolAttr(CfgPixelBinSum, false),
		boolAttr(CfgMonoBin, false),
	}
}

// Mock is an in-memory Driver for development and tests. It enforces
// the same rules the native layer does: exclusive open, control
// bounds, geometry alignment, the exposure state machine and frame
// timeouts.
type Mock struct {
	mu      sync.Mutex
	devices []*MockDevice
}

// NewMock creates a mock driver with the given simulated cameras.
func NewMock(devices ...*MockDevice) *Mock {
	return &Mock{devices: devices}
}

func (m *Mock) find(id int) *MockDevice {
	for _, d := range m.devices {
		if d.Info.CameraID == id {
			return d
		}
	}
	return nil
}

func (m *Mock) CameraCount() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.devices), nil
}

func (m *Mock) CameraProperties(index int) (DeviceInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.devices) {
		return DeviceInfo{}, ErrInvalidIndex
	}
	return m.devices[index].deviceInfo(), nil
}

func (m *Mock) Open(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	debug.SDK("Open", id, nil)
	d := m.find(id)
	if d == nil {
		return ErrDeviceNotFound
	}
	if d.open {
		return ErrAccessDenied
	}
	d.open = true
	return nil
}

func (m *Mock) Init(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	debug.SDK("Init", id, nil)
	d := m.find(id)
	if d == nil {
		return ErrInvalidID
	}
	if !d.open {
		return ErrNotOpened
	}
	d.width = d.Info.MaxWidth
	d.height = d.Info.MaxHeight
	d.startX, d.startY = 0, 0
	d.bin = 1
	d.format = d.Info.ImgFormats[0]
	d.values = make(map[Config]Value)
	d.autos = make(map[Config]bool)
	for _, a := range d.attrs {
		d.values[a.ID] = a.Default
	}
	return nil
}

func (m *Mock) Close(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	debug.SDK("Close", id, nil)
	d := m.find(id)
	if d == nil {
		return ErrInvalidID
	}
	if !d.open {
		return ErrNotOpened
	}
	d.open = false
	d.exposing = false
	return nil
}

func (m *Mock) CameraState(id int) (CameraState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := m.find(id)
	if d == nil {
		return StateClosed, ErrInvalidID
	}
	switch {
	case d.exposing:
		return StateExposing, nil
	case d.open:
		return StateOpened, nil
	default:
		return StateClosed, nil
	}
}

// openDevice is the common lookup for operations that need an opened
// camera.
func (m *Mock) openDevice(id int) (*MockDevice, error) {
	d := m.find(id)
	if d == nil {
		return nil, ErrInvalidID
	}
	if !d.open {
		return nil, ErrNotOpened
	}
	return d, nil
}

func (m *Mock) ConfigsCount(id int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.openDevice(id)
	if err != nil {
		return 0, err
	}
	return len(d.attrs), nil
}

func (m *Mock) ConfigAttributes(id, index int) (ConfigAttribute, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.openDevice(id)
	if err != nil {
		return ConfigAttribute{}, err
	}
	if index < 0 || index >= len(d.attrs) {
		return ConfigAttribute{}, ErrInvalidIndex
	}
	return d.attrs[index], nil
}

func (d *MockDevice) attr(conf Config) *ConfigAttribute {
	for i := range d.attrs {
		if d.attrs[i].ID == conf {
			return &d.attrs[i]
		}
	}
	return nil
}

func (m *Mock) GetConfig(id int, conf Config) (Value, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.openDevice(id)
	if err != nil {
		return Value{}, false, err
	}
	a := d.attr(conf)
	if a == nil {
		return Value{}, false, ErrInvalidConfig
	}
	if !a.Readable {
		return Value{}, false, ErrConfNotReadable
	}
	return d.values[conf], d.autos[conf], nil
}

func (m *Mock) SetConfig(id int, conf Config, value Value, auto bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	debug.SDK("SetConfig", id, conf)
	d, err := m.openDevice(id)
	if err != nil {
		return err
	}
	a := d.attr(conf)
	if a == nil {
		return ErrInvalidConfig
	}
	if !a.Writable {
		return ErrConfNotWritable
	}
	switch a.Type {
	case ValInt:
		if value.Int < a.Min.Int || value.Int > a.Max.Int {
			return ErrOutOfLimit
		}
	case ValFloat:
		if value.Float < a.Min.Float || value.Float > a.Max.Float {
			return ErrOutOfLimit
		}
	}
	d.values[conf] = value
	d.autos[conf] = auto
	// The flip configs form a radio group in the native layer.
	if value.Bool && isFlipConfig(conf) {
		for _, other := range []Config{CfgFlipNone, CfgFlipHori, CfgFlipVert, CfgFlipBoth} {
			if other != conf {
				d.values[other] = Value{Bool: false}
			}
		}
	}
	return nil
}

func isFlipConfig(conf Config) bool {
	switch conf {
	case CfgFlipNone, CfgFlipHori, CfgFlipVert, CfgFlipBoth:
		return true
	}
	return false
}

func (m *Mock) GetImageSize(id int) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.openDevice(id)
	if err != nil {
		return 0, 0, err
	}
	return d.width, d.height, nil
}

func (m *Mock) SetImageSize(id, width, height int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	debug.SDK("SetImageSize", id, [2]int{width, height})
	d, err := m.openDevice(id)
	if err != nil {
		return err
	}
	if d.exposing {
		return ErrExposing
	}
	if width < 1 || height < 1 ||
		width > d.Info.MaxWidth/d.bin || height > d.Info.MaxHeight/d.bin {
		return ErrOutOfLimit
	}
	// POA geometry alignment rules.
	if width%4 != 0 || height%2 != 0 {
		return ErrInvalidArg
	}
	d.width = width
	d.height = height
	return nil
}

func (m *Mock) GetImageStartPos(id int) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.openDevice(id)
	if err != nil {
		return 0, 0, err
	}
	return d.startX, d.startY, nil
}

func (m *Mock) SetImageStartPos(id, x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.openDevice(id)
	if err != nil {
		return err
	}
	if x < 0 || y < 0 ||
		x+d.width > d.Info.MaxWidth/d.bin || y+d.height > d.Info.MaxHeight/d.bin {
		return ErrOutOfLimit
	}
	d.startX, d.startY = x, y
	return nil
}

func (m *Mock) GetImageFormat(id int) (ImgFormat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.openDevice(id)
	if err != nil {
		return FormatEnd, err
	}
	return d.format, nil
}

func (m *Mock) SetImageFormat(id int, format ImgFormat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	debug.SDK("SetImageFormat", id, format)
	d, err := m.openDevice(id)
	if err != nil {
		return err
	}
	supported := false
	for _, f := range d.Info.ImgFormats {
		if f == format {
			supported = true
			break
		}
	}
	if !supported {
		return ErrInvalidArg
	}
	d.format = format
	return nil
}

func (m *Mock) GetImageBin(id int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.openDevice(id)
	if err != nil {
		return 0, err
	}
	return d.bin, nil
}

func (m *Mock) SetImageBin(id, bin int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	debug.SDK("SetImageBin", id, bin)
	d, err := m.openDevice(id)
	if err != nil {
		return err
	}
	if d.exposing {
		return ErrExposing
	}
	ok := false
	for _, b := range d.Info.Bins {
		if b == bin {
			ok = true
			break
		}
	}
	if !ok {
		return ErrOutOfLimit
	}
	d.bin = bin
	// The native layer rescales geometry when binning changes.
	d.width = align(d.Info.MaxWidth/bin, 4)
	d.height = align(d.Info.MaxHeight/bin, 2)
	d.startX, d.startY = 0, 0
	return nil
}

func align(v, n int) int { return v - v%n }

func (m *Mock) StartExposure(id int, singleFrame bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	debug.SDK("StartExposure", id, singleFrame)
	d, err := m.openDevice(id)
	if err != nil {
		return err
	}
	if d.exposing {
		return ErrExposing
	}
	d.exposing = true
	d.single = singleFrame
	d.exposureStart = time.Now()
	return nil
}

func (m *Mock) StopExposure(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	debug.SDK("StopExposure", id, nil)
	d, err := m.openDevice(id)
	if err != nil {
		return err
	}
	d.exposing = false
	return nil
}

func (m *Mock) ImageReady(id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.openDevice(id)
	if err != nil {
		return false, err
	}
	if !d.exposing {
		return false, nil
	}
	return time.Since(d.exposureStart) >= d.FrameDelay, nil
}

// bytesPerPixel mirrors the native frame layout: RAW8/MONO8 one byte,
// RAW16 two, RGB24 three.
func bytesPerPixel(f ImgFormat) int {
	switch f {
	case FormatRAW16:
		return 2
	case FormatRGB24:
		return 3
	default:
		return 1
	}
}

func (m *Mock) GetImageData(id int, buf []byte, timeoutMs int) error {
	m.mu.Lock()
	d, err := m.openDevice(id)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	if !d.exposing {
		m.mu.Unlock()
		return ErrOperationFailed
	}
	need := d.width * d.height * bytesPerPixel(d.format)
	if len(buf) < need {
		m.mu.Unlock()
		return ErrSizeLess
	}
	remaining := d.FrameDelay - time.Since(d.exposureStart)
	m.mu.Unlock()

	if remaining > 0 {
		if timeoutMs >= 0 && time.Duration(timeoutMs)*time.Millisecond < remaining {
			time.Sleep(time.Duration(timeoutMs) * time.Millisecond)
			return ErrTimeout
		}
		time.Sleep(remaining)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !d.exposing {
		// Exposure was stopped while we were waiting.
		return ErrOperationFailed
	}
	for i := 0; i < need; i++ {
		buf[i] = byte(i)
	}
	if d.single {
		// Snap mode: the camera stops by itself after one frame.
		d.exposing = false
	} else {
		d.exposureStart = time.Now()
	}
	return nil
}
