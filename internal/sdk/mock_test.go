package sdk

import (
	"errors"
	"testing"
	"time"
)

func openDevice(t *testing.T) (*Mock, *MockDevice) {
	t.Helper()
	dev := NewMockDevice(0, "Mars-C", "SN000001")
	m := NewMock(dev)
	if err := m.Open(0); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := m.Init(0); err != nil {
		t.Fatalf("init: %v", err)
	}
	return m, dev
}

func TestMock_OpenIsExclusive(t *testing.T) {
	m, _ := openDevice(t)
	if err := m.Open(0); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("second open = %v, want ErrAccessDenied", err)
	}
}

func TestMock_OpenUnknownID(t *testing.T) {
	m := NewMock()
	if err := m.Open(7); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("open = %v, want ErrDeviceNotFound", err)
	}
}

func TestMock_OperationsRequireOpen(t *testing.T) {
	m := NewMock(NewMockDevice(0, "Mars-C", "SN000001"))
	if err := m.StartExposure(0, false); !errors.Is(err, ErrNotOpened) {
		t.Errorf("start exposure = %v, want ErrNotOpened", err)
	}
	if _, _, err := m.GetConfig(0, CfgGain); !errors.Is(err, ErrNotOpened) {
		t.Errorf("get config = %v, want ErrNotOpened", err)
	}
}

func TestMock_InitResetsGeometry(t *testing.T) {
	m, dev := openDevice(t)
	w, h, err := m.GetImageSize(0)
	if err != nil {
		t.Fatalf("get image size: %v", err)
	}
	if w != dev.Info.MaxWidth || h != dev.Info.MaxHeight {
		t.Errorf("geometry after init = %dx%d, want %dx%d", w, h, dev.Info.MaxWidth, dev.Info.MaxHeight)
	}
}

func TestMock_SetConfigBounds(t *testing.T) {
	m, _ := openDevice(t)
	if err := m.SetConfig(0, CfgGain, Value{Int: 401}, false); !errors.Is(err, ErrOutOfLimit) {
		t.Errorf("gain 401 = %v, want ErrOutOfLimit", err)
	}
	if err := m.SetConfig(0, CfgGain, Value{Int: 400}, false); err != nil {
		t.Errorf("gain 400 = %v, want nil", err)
	}
	if err := m.SetConfig(0, CfgTemperature, Value{Float: 0}, false); !errors.Is(err, ErrConfNotWritable) {
		t.Errorf("temperature write = %v, want ErrConfNotWritable", err)
	}
}

func TestMock_GeometryRules(t *testing.T) {
	m, _ := openDevice(t)
	if err := m.SetImageSize(0, 1001, 720); !errors.Is(err, ErrInvalidArg) {
		t.Errorf("width%%4 = %v, want ErrInvalidArg", err)
	}
	if err := m.SetImageSize(0, 2000, 1080); !errors.Is(err, ErrOutOfLimit) {
		t.Errorf("oversize = %v, want ErrOutOfLimit", err)
	}
	if err := m.SetImageBin(0, 2); err != nil {
		t.Fatalf("bin 2: %v", err)
	}
	// At bin 2 the full-sensor geometry is no longer legal.
	if err := m.SetImageSize(0, 1920, 1080); !errors.Is(err, ErrOutOfLimit) {
		t.Errorf("full size at bin 2 = %v, want ErrOutOfLimit", err)
	}
}

func TestMock_ExposureStateMachine(t *testing.T) {
	m, _ := openDevice(t)
	if err := m.StartExposure(0, false); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := m.StartExposure(0, false); !errors.Is(err, ErrExposing) {
		t.Errorf("double start = %v, want ErrExposing", err)
	}
	state, err := m.CameraState(0)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state != StateExposing {
		t.Errorf("state = %v, want StateExposing", state)
	}
	if err := m.StopExposure(0); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := m.SetImageSize(0, 1280, 720); err != nil {
		t.Errorf("resize after stop = %v, want nil", err)
	}
}

func TestMock_SingleFrameStopsItself(t *testing.T) {
	m, _ := openDevice(t)
	if err := m.StartExposure(0, true); err != nil {
		t.Fatalf("start: %v", err)
	}
	buf := make([]byte, 1920*1080)
	if err := m.GetImageData(0, buf, -1); err != nil {
		t.Fatalf("get image data: %v", err)
	}
	state, err := m.CameraState(0)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state != StateOpened {
		t.Errorf("state after snap = %v, want StateOpened", state)
	}
}

func TestMock_GetImageDataTimeout(t *testing.T) {
	dev := NewMockDevice(0, "Mars-C", "SN000001")
	dev.FrameDelay = 150 * time.Millisecond
	m := NewMock(dev)
	if err := m.Open(0); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := m.Init(0); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := m.StartExposure(0, false); err != nil {
		t.Fatalf("start: %v", err)
	}
	buf := make([]byte, 1920*1080)
	if err := m.GetImageData(0, buf, 1); !errors.Is(err, ErrTimeout) {
		t.Errorf("get image data = %v, want ErrTimeout", err)
	}
}

func TestMock_GetImageDataShortBuffer(t *testing.T) {
	m, _ := openDevice(t)
	if err := m.StartExposure(0, false); err != nil {
		t.Fatalf("start: %v", err)
	}
	buf := make([]byte, 16)
	if err := m.GetImageData(0, buf, -1); !errors.Is(err, ErrSizeLess) {
		t.Errorf("get image data = %v, want ErrSizeLess", err)
	}
}
