//go:build cgo

package sdk

/*
#cgo CFLAGS: -I${SRCDIR}/../../libs
#cgo linux,amd64 LDFLAGS: -L${SRCDIR}/../../libs/linux/x64 -lPlayerOneCamera_Static -lusb-1.0 -lstdc++
#cgo linux,arm64 LDFLAGS: -L${SRCDIR}/../../libs/linux/arm64 -lPlayerOneCamera_Static -lusb-1.0 -lstdc++
#cgo darwin LDFLAGS: -L${SRCDIR}/../../libs/mac -lPlayerOneCamera_Static -framework IOKit -framework CoreFoundation -lc++

#include <stdlib.h>
#include <PlayerOneCamera.h>

// The config value is a union; these helpers keep the union access on
// the C side so the Go code only ever sees plain scalars.

static long poago_value_int(POAConfigValue v) { return v.intValue; }
static double poago_value_float(POAConfigValue v) { return v.floatValue; }
static int poago_value_bool(POAConfigValue v) { return v.boolValue == POA_TRUE; }

static POAErrors poago_get_config(int id, POAConfig conf, long *iv, double *fv, int *bv, int *isAuto) {
	POAConfigValue v;
	POABool auto_ = POA_FALSE;
	POAErrors e = POAGetConfig(id, conf, &v, &auto_);
	if (e != POA_OK) {
		return e;
	}
	*iv = v.intValue;
	*fv = v.floatValue;
	*bv = v.boolValue == POA_TRUE;
	*isAuto = auto_ == POA_TRUE;
	return POA_OK;
}

static POAErrors poago_set_config(int id, POAConfig conf, int valueType, long iv, double fv, int bv, int isAuto) {
	POAConfigValue v;
	if (valueType == VAL_FLOAT) {
		v.floatValue = fv;
	} else if (valueType == VAL_BOOL) {
		v.boolValue = bv ? POA_TRUE : POA_FALSE;
	} else {
		v.intValue = iv;
	}
	return POASetConfig(id, conf, v, isAuto ? POA_TRUE : POA_FALSE);
}
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/cjeanneret/PoaGo/internal/debug"
)

// poaDriver is the real Driver backed by the vendor library. It is
// stateless: every call forwards to the native layer, which owns all
// per-camera state.
type poaDriver struct{}

var (
	defaultOnce sync.Once
	defaultDrv  Driver
)

// Default returns the process-wide driver for the vendor library.
func Default() Driver {
	defaultOnce.Do(func() {
		defaultDrv = &poaDriver{}
	})
	return defaultDrv
}

// errno converts a native status into a Go error (nil for POA_OK).
func errno(e C.POAErrors) error {
	if e == C.POA_OK {
		return nil
	}
	return Errno(e)
}

func (p *poaDriver) CameraCount() (int, error) {
	n := int(C.POAGetCameraCount())
	debug.SDK("POAGetCameraCount", -1, n)
	return n, nil
}

func (p *poaDriver) CameraProperties(index int) (DeviceInfo, error) {
	var prop C.POACameraProperties
	if err := errno(C.POAGetCameraProperties(C.int(index), &prop)); err != nil {
		return DeviceInfo{}, err
	}

	info := DeviceInfo{
		CameraID:        int(prop.cameraID),
		Model:           C.GoString(&prop.cameraModelName[0]),
		CustomID:        C.GoString(&prop.userCustomID[0]),
		MaxWidth:        int(prop.maxWidth),
		MaxHeight:       int(prop.maxHeight),
		BitDepth:        int(prop.bitDepth),
		IsColorCamera:   prop.isColorCamera == C.POA_TRUE,
		HasST4Port:      prop.isHasST4Port == C.POA_TRUE,
		HasCooler:       prop.isHasCooler == C.POA_TRUE,
		IsUSB3Speed:     prop.isUSB3Speed == C.POA_TRUE,
		BayerPattern:    BayerPattern(prop.bayerPattern),
		PixelSizeUm:     float64(prop.pixelSize),
		SerialNumber:    C.GoString(&prop.SN[0]),
		SensorModel:     C.GoString(&prop.sensorModelName[0]),
		LocalPath:       C.GoString(&prop.localPath[0]),
		SupportsHardBin: prop.isSupportHardBin == C.POA_TRUE,
		ProductID:       int(prop.pID),
	}
	// Both lists are terminated in-band by the native layer.
	for _, b := range prop.bins {
		if b == -1 {
			break
		}
		info.Bins = append(info.Bins, int(b))
	}
	for _, f := range prop.imgFormats {
		if ImgFormat(f) == FormatEnd {
			break
		}
		info.ImgFormats = append(info.ImgFormats, ImgFormat(f))
	}
	return info, nil
}

func (p *poaDriver) Open(id int) error {
	debug.SDK("POAOpenCamera", id, nil)
	return errno(C.POAOpenCamera(C.int(id)))
}

func (p *poaDriver) Init(id int) error {
	debug.SDK("POAInitCamera", id, nil)
	return errno(C.POAInitCamera(C.int(id)))
}

func (p *poaDriver) Close(id int) error {
	debug.SDK("POACloseCamera", id, nil)
	return errno(C.POACloseCamera(C.int(id)))
}

func (p *poaDriver) CameraState(id int) (CameraState, error) {
	var state C.POACameraState
	if err := errno(C.POAGetCameraState(C.int(id), &state)); err != nil {
		return StateClosed, err
	}
	return CameraState(state), nil
}

func (p *poaDriver) ConfigsCount(id int) (int, error) {
	var n C.int
	if err := errno(C.POAGetConfigsCount(C.int(id), &n)); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (p *poaDriver) ConfigAttributes(id, index int) (ConfigAttribute, error) {
	var attr C.POAConfigAttributes
	if err := errno(C.POAGetConfigAttributes(C.int(id), C.int(index), &attr)); err != nil {
		return ConfigAttribute{}, err
	}

	a := ConfigAttribute{
		ID:           Config(attr.configID),
		Type:         ValueType(attr.valueType),
		SupportsAuto: attr.isSupportAuto == C.POA_TRUE,
		Writable:     attr.isWritable == C.POA_TRUE,
		Readable:     attr.isReadable == C.POA_TRUE,
		Name:         C.GoString(&attr.szConfName[0]),
		Description:  C.GoString(&attr.szDescription[0]),
	}
	switch a.Type {
	case ValFloat:
		a.Min = Value{Float: float64(C.poago_value_float(attr.minValue))}
		a.Max = Value{Float: float64(C.poago_value_float(attr.maxValue))}
		a.Default = Value{Float: float64(C.poago_value_float(attr.defaultValue))}
	case ValBool:
		a.Min = Value{Bool: C.poago_value_bool(attr.minValue) != 0}
		a.Max = Value{Bool: C.poago_value_bool(attr.maxValue) != 0}
		a.Default = Value{Bool: C.poago_value_bool(attr.defaultValue) != 0}
	default:
		a.Min = Value{Int: int64(C.poago_value_int(attr.minValue))}
		a.Max = Value{Int: int64(C.poago_value_int(attr.maxValue))}
		a.Default = Value{Int: int64(C.poago_value_int(attr.defaultValue))}
	}
	return a, nil
}

func (p *poaDriver) GetConfig(id int, conf Config) (Value, bool, error) {
	var (
		iv     C.long
		fv     C.double
		bv     C.int
		isAuto C.int
	)
	if err := errno(C.poago_get_config(C.int(id), C.POAConfig(conf), &iv, &fv, &bv, &isAuto)); err != nil {
		return Value{}, false, err
	}
	return Value{Int: int64(iv), Float: float64(fv), Bool: bv != 0}, isAuto != 0, nil
}

func (p *poaDriver) SetConfig(id int, conf Config, value Value, auto bool) error {
	debug.SDK("POASetConfig", id, conf)
	valueType := C.int(ValInt)
	switch conf {
	case CfgTemperature, CfgEGain:
		valueType = C.int(ValFloat)
	case CfgHardwareBin, CfgCooler, CfgHeater, CfgGuideNorth, CfgGuideSouth,
		CfgGuideEast, CfgGuideWest, CfgFlipNone, CfgFlipHori, CfgFlipVert,
		CfgFlipBoth, CfgHQI, CfgPixelBinSum, CfgMonoBin:
		valueType = C.int(ValBool)
	}
	cAuto := C.int(0)
	if auto {
		cAuto = 1
	}
	cBool := C.int(0)
	if value.Bool {
		cBool = 1
	}
	return errno(C.poago_set_config(C.int(id), C.POAConfig(conf), valueType,
		C.long(value.Int), C.double(value.Float), cBool, cAuto))
}

func (p *poaDriver) GetImageSize(id int) (int, int, error) {
	var w, h C.int
	if err := errno(C.POAGetImageSize(C.int(id), &w, &h)); err != nil {
		return 0, 0, err
	}
	return int(w), int(h), nil
}

func (p *poaDriver) SetImageSize(id, width, height int) error {
	debug.SDK("POASetImageSize", id, [2]int{width, height})
	return errno(C.POASetImageSize(C.int(id), C.int(width), C.int(height)))
}

func (p *poaDriver) GetImageStartPos(id int) (int, int, error) {
	var x, y C.int
	if err := errno(C.POAGetImageStartPos(C.int(id), &x, &y)); err != nil {
		return 0, 0, err
	}
	return int(x), int(y), nil
}

func (p *poaDriver) SetImageStartPos(id, x, y int) error {
	debug.SDK("POASetImageStartPos", id, [2]int{x, y})
	return errno(C.POASetImageStartPos(C.int(id), C.int(x), C.int(y)))
}

func (p *poaDriver) GetImageFormat(id int) (ImgFormat, error) {
	var f C.POAImgFormat
	if err := errno(C.POAGetImageFormat(C.int(id), &f)); err != nil {
		return FormatEnd, err
	}
	return ImgFormat(f), nil
}

func (p *poaDriver) SetImageFormat(id int, format ImgFormat) error {
	debug.SDK("POASetImageFormat", id, format)
	return errno(C.POASetImageFormat(C.int(id), C.POAImgFormat(format)))
}

func (p *poaDriver) GetImageBin(id int) (int, error) {
	var bin C.int
	if err := errno(C.POAGetImageBin(C.int(id), &bin)); err != nil {
		return 0, err
	}
	return int(bin), nil
}

func (p *poaDriver) SetImageBin(id, bin int) error {
	debug.SDK("POASetImageBin", id, bin)
	return errno(C.POASetImageBin(C.int(id), C.int(bin)))
}

func (p *poaDriver) StartExposure(id int, singleFrame bool) error {
	debug.SDK("POAStartExposure", id, singleFrame)
	single := C.POABool(C.POA_FALSE)
	if singleFrame {
		single = C.POA_TRUE
	}
	return errno(C.POAStartExposure(C.int(id), single))
}

func (p *poaDriver) StopExposure(id int) error {
	debug.SDK("POAStopExposure", id, nil)
	return errno(C.POAStopExposure(C.int(id)))
}

func (p *poaDriver) ImageReady(id int) (bool, error) {
	ready := C.POABool(C.POA_FALSE)
	if err := errno(C.POAImageReady(C.int(id), &ready)); err != nil {
		return false, err
	}
	return ready == C.POA_TRUE, nil
}

func (p *poaDriver) GetImageData(id int, buf []byte, timeoutMs int) error {
	if len(buf) == 0 {
		return ErrInvalidArg
	}
	return errno(C.POAGetImageData(C.int(id),
		(*C.uchar)(unsafe.Pointer(&buf[0])), C.long(len(buf)), C.int(timeoutMs)))
}
