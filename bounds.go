package poago

import "github.com/cjeanneret/PoaGo/internal/sdk"

// IntBounds is the declared legal range of an integer control.
type IntBounds struct {
	Min, Max, Default int64
	SupportsAuto      bool
	Writable          bool
	Readable          bool
}

// FloatBounds is the declared legal range of a float control.
type FloatBounds struct {
	Min, Max, Default float64
	SupportsAuto      bool
	Writable          bool
	Readable          bool
}

// BoolBounds describes an on/off control.
type BoolBounds struct {
	Default  bool
	Writable bool
	Readable bool
}

// AllBounds collects the declared ranges of every control the camera
// reports. Bounds may depend on the currently selected image format,
// so they are queried live rather than cached.
type AllBounds struct {
	Exposure             IntBounds
	Gain                 IntBounds
	HardwareBin          BoolBounds
	Temperature          FloatBounds
	WBRed                IntBounds
	WBGreen              IntBounds
	WBBlue               IntBounds
	Offset               IntBounds
	AutoMaxGain          IntBounds
	AutoMaxExposureMs    IntBounds
	AutoTargetBrightness IntBounds
	GuideNorth           BoolBounds
	GuideSouth           BoolBounds
	GuideEast            BoolBounds
	GuideWest            BoolBounds
	EGain                FloatBounds
	CoolerPower          IntBounds
	TargetTemp           IntBounds
	Cooler               BoolBounds
	Heater               BoolBounds
	HeaterPower          IntBounds
	FanPower             IntBounds
	FlipNone             BoolBounds
	FlipHorizontal       BoolBounds
	FlipVertical         BoolBounds
	FlipBoth             BoolBounds
	FrameLimit           IntBounds
	HQI                  BoolBounds
	USBBandwidthLimit    IntBounds
	PixelBinSum          BoolBounds
	MonoBin              BoolBounds
}

func intBoundsFromAttr(a sdk.ConfigAttribute) IntBounds {
	return IntBounds{
		Min: a.Min.Int, Max: a.Max.Int, Default: a.Default.Int,
		SupportsAuto: a.SupportsAuto, Writable: a.Writable, Readable: a.Readable,
	}
}

func floatBoundsFromAttr(a sdk.ConfigAttribute) FloatBounds {
	return FloatBounds{
		Min: a.Min.Float, Max: a.Max.Float, Default: a.Default.Float,
		SupportsAuto: a.SupportsAuto, Writable: a.Writable, Readable: a.Readable,
	}
}

func boolBoundsFromAttr(a sdk.ConfigAttribute) BoolBounds {
	return BoolBounds{Default: a.Default.Bool, Writable: a.Writable, Readable: a.Readable}
}

// boundsFromAttributes assembles AllBounds from the native attribute
// enumeration. Controls the camera does not report keep their zero
// value.
func boundsFromAttributes(attrs []sdk.ConfigAttribute) AllBounds {
	var b AllBounds
	for _, a := range attrs {
		switch a.ID {
		case sdk.CfgExposure:
			b.Exposure = intBoundsFromAttr(a)
		case sdk.CfgGain:
			b.Gain = intBoundsFromAttr(a)
		case sdk.CfgHardwareBin:
			b.HardwareBin = boolBoundsFromAttr(a)
		case sdk.CfgTemperature:
			b.Temperature = floatBoundsFromAttr(a)
		case sdk.CfgWBR:
			b.WBRed = intBoundsFromAttr(a)
		case sdk.CfgWBG:
			b.WBGreen = intBoundsFromAttr(a)
		case sdk.CfgWBB:
			b.WBBlue = intBoundsFromAttr(a)
		case sdk.CfgOffset:
			b.Offset = intBoundsFromAttr(a)
		case sdk.CfgAutoMaxGain:
			b.AutoMaxGain = intBoundsFromAttr(a)
		case sdk.CfgAutoMaxExposure:
			b.AutoMaxExposureMs = intBoundsFromAttr(a)
		case sdk.CfgAutoTargetBrightness:
			b.AutoTargetBrightness = intBoundsFromAttr(a)
		case sdk.CfgGuideNorth:
			b.GuideNorth = boolBoundsFromAttr(a)
		case sdk.CfgGuideSouth:
			b.GuideSouth = boolBoundsFromAttr(a)
		case sdk.CfgGuideEast:
			b.GuideEast = boolBoundsFromAttr(a)
		case sdk.CfgGuideWest:
			b.GuideWest = boolBoundsFromAttr(a)
		case sdk.CfgEGain:
			b.EGain = floatBoundsFromAttr(a)
		case sdk.CfgCoolerPower:
			b.CoolerPower = intBoundsFromAttr(a)
		case sdk.CfgTargetTemp:
			b.TargetTemp = intBoundsFromAttr(a)
		case sdk.CfgCooler:
			b.Cooler = boolBoundsFromAttr(a)
		case sdk.CfgHeater:
			b.Heater = boolBoundsFromAttr(a)
		case sdk.CfgHeaterPower:
			b.HeaterPower = intBoundsFromAttr(a)
		case sdk.CfgFanPower:
			b.FanPower = intBoundsFromAttr(a)
		case sdk.CfgFlipNone:
			b.FlipNone = boolBoundsFromAttr(a)
		case sdk.CfgFlipHori:
			b.FlipHorizontal = boolBoundsFromAttr(a)
		case sdk.CfgFlipVert:
			b.FlipVertical = boolBoundsFromAttr(a)
		case sdk.CfgFlipBoth:
			b.FlipBoth = boolBoundsFromAttr(a)
		case sdk.CfgFrameLimit:
			b.FrameLimit = intBoundsFromAttr(a)
		case sdk.CfgHQI:
			b.HQI = boolBoundsFromAttr(a)
		case sdk.CfgUSBBandwidthLimit:
			b.USBBandwidthLimit = intBoundsFromAttr(a)
		case sdk.CfgPixelBinSum:
			b.PixelBinSum = boolBoundsFromAttr(a)
		case sdk.CfgMonoBin:
			b.MonoBin = boolBoundsFromAttr(a)
		}
	}
	return b
}
