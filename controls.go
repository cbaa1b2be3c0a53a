package poago

import "github.com/cjeanneret/PoaGo/internal/sdk"

// Control getters and setters. Each maps onto one native config ID;
// the native layer validates values against the ranges reported by
// ConfigBounds, and rejections surface as ConfigOutOfRange. Values at
// the exact boundary are legal.

func (c *Camera) setIntConfig(conf sdk.Config, op string, value int64, auto bool) error {
	if err := c.drv.SetConfig(c.id, conf, sdk.Value{Int: value}, auto); err != nil {
		return configError(op, err)
	}
	return nil
}

func (c *Camera) setBoolConfig(conf sdk.Config, op string, value bool) error {
	if err := c.drv.SetConfig(c.id, conf, sdk.Value{Bool: value}, false); err != nil {
		return configError(op, err)
	}
	return nil
}

func (c *Camera) intConfig(conf sdk.Config, op string) (int64, bool, error) {
	v, auto, err := c.drv.GetConfig(c.id, conf)
	if err != nil {
		return 0, false, configError(op, err)
	}
	return v.Int, auto, nil
}

func (c *Camera) floatConfig(conf sdk.Config, op string) (float64, error) {
	v, _, err := c.drv.GetConfig(c.id, conf)
	if err != nil {
		return 0, configError(op, err)
	}
	return v.Float, nil
}

func (c *Camera) boolConfig(conf sdk.Config, op string) (bool, error) {
	v, _, err := c.drv.GetConfig(c.id, conf)
	if err != nil {
		return false, configError(op, err)
	}
	return v.Bool, nil
}

// SetExposure sets the exposure time in microseconds. With auto, the
// value seeds the auto-exposure loop instead of fixing the exposure.
func (c *Camera) SetExposure(micros int64, auto bool) error {
	return c.setIntConfig(sdk.CfgExposure, "set exposure", micros, auto)
}

// Exposure returns the exposure time in microseconds and whether
// auto-exposure is active.
func (c *Camera) Exposure() (micros int64, auto bool, err error) {
	return c.intConfig(sdk.CfgExposure, "exposure")
}

// SetGain sets the analog gain.
func (c *Camera) SetGain(gain int64, auto bool) error {
	return c.setIntConfig(sdk.CfgGain, "set gain", gain, auto)
}

// Gain returns the analog gain and whether auto-gain is active.
func (c *Camera) Gain() (gain int64, auto bool, err error) {
	return c.intConfig(sdk.CfgGain, "gain")
}

// Temperature returns the current sensor temperature in Celsius.
func (c *Camera) Temperature() (float64, error) {
	return c.floatConfig(sdk.CfgTemperature, "temperature")
}

// EGain returns the e/ADU conversion factor; it changes with gain.
func (c *Camera) EGain() (float64, error) {
	return c.floatConfig(sdk.CfgEGain, "egain")
}

// SetWBRed sets the red white-balance coefficient (color cameras).
func (c *Camera) SetWBRed(value int64) error {
	return c.setIntConfig(sdk.CfgWBR, "set wb red", value, false)
}

// WBRed returns the red white-balance coefficient.
func (c *Camera) WBRed() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgWBR, "wb red")
	return v, err
}

// SetWBGreen sets the green white-balance coefficient.
func (c *Camera) SetWBGreen(value int64) error {
	return c.setIntConfig(sdk.CfgWBG, "set wb green", value, false)
}

// WBGreen returns the green white-balance coefficient.
func (c *Camera) WBGreen() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgWBG, "wb green")
	return v, err
}

// SetWBBlue sets the blue white-balance coefficient.
func (c *Camera) SetWBBlue(value int64) error {
	return c.setIntConfig(sdk.CfgWBB, "set wb blue", value, false)
}

// WBBlue returns the blue white-balance coefficient.
func (c *Camera) WBBlue() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgWBB, "wb blue")
	return v, err
}

// SetOffset sets the sensor black-level offset.
func (c *Camera) SetOffset(value int64) error {
	return c.setIntConfig(sdk.CfgOffset, "set offset", value, false)
}

// Offset returns the sensor black-level offset.
func (c *Camera) Offset() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgOffset, "offset")
	return v, err
}

// SetAutoMaxGain caps the gain the auto-exposure loop may reach.
func (c *Camera) SetAutoMaxGain(value int64) error {
	return c.setIntConfig(sdk.CfgAutoMaxGain, "set auto max gain", value, false)
}

// AutoMaxGain returns the auto-exposure gain cap.
func (c *Camera) AutoMaxGain() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgAutoMaxGain, "auto max gain")
	return v, err
}

// SetAutoMaxExposureMs caps the exposure (in ms) the auto-exposure
// loop may reach.
func (c *Camera) SetAutoMaxExposureMs(value int64) error {
	return c.setIntConfig(sdk.CfgAutoMaxExposure, "set auto max exposure", value, false)
}

// AutoMaxExposureMs returns the auto-exposure time cap in ms.
func (c *Camera) AutoMaxExposureMs() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgAutoMaxExposure, "auto max exposure")
	return v, err
}

// SetAutoTargetBrightness sets the brightness the auto-exposure loop
// aims for.
func (c *Camera) SetAutoTargetBrightness(value int64) error {
	return c.setIntConfig(sdk.CfgAutoTargetBrightness, "set auto target brightness", value, false)
}

// AutoTargetBrightness returns the auto-exposure brightness target.
func (c *Camera) AutoTargetBrightness() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgAutoTargetBrightness, "auto target brightness")
	return v, err
}

// SetGuideNorth drives the ST4 DEC+ line (guiding cameras).
func (c *Camera) SetGuideNorth(on bool) error {
	return c.setBoolConfig(sdk.CfgGuideNorth, "set guide north", on)
}

// SetGuideSouth drives the ST4 DEC- line.
func (c *Camera) SetGuideSouth(on bool) error {
	return c.setBoolConfig(sdk.CfgGuideSouth, "set guide south", on)
}

// SetGuideEast drives the ST4 RA+ line.
func (c *Camera) SetGuideEast(on bool) error {
	return c.setBoolConfig(sdk.CfgGuideEast, "set guide east", on)
}

// SetGuideWest drives the ST4 RA- line.
func (c *Camera) SetGuideWest(on bool) error {
	return c.setBoolConfig(sdk.CfgGuideWest, "set guide west", on)
}

// SetCooler switches the cooler (and fan) on or off (cooled cameras).
func (c *Camera) SetCooler(on bool) error {
	return c.setBoolConfig(sdk.CfgCooler, "set cooler", on)
}

// Cooler reports whether the cooler is on.
func (c *Camera) Cooler() (bool, error) {
	return c.boolConfig(sdk.CfgCooler, "cooler")
}

// CoolerPower returns the cooler power percentage (0-100).
func (c *Camera) CoolerPower() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgCoolerPower, "cooler power")
	return v, err
}

// SetTargetTemp sets the cooling target temperature in Celsius.
func (c *Camera) SetTargetTemp(celsius int64) error {
	return c.setIntConfig(sdk.CfgTargetTemp, "set target temperature", celsius, false)
}

// TargetTemp returns the cooling target temperature in Celsius.
func (c *Camera) TargetTemp() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgTargetTemp, "target temperature")
	return v, err
}

// SetHeater switches the anti-dew lens heater on or off.
func (c *Camera) SetHeater(on bool) error {
	return c.setBoolConfig(sdk.CfgHeater, "set heater", on)
}

// Heater reports whether the lens heater is on.
func (c *Camera) Heater() (bool, error) {
	return c.boolConfig(sdk.CfgHeater, "heater")
}

// SetHeaterPower sets the lens heater power percentage (0-100).
func (c *Camera) SetHeaterPower(value int64) error {
	return c.setIntConfig(sdk.CfgHeaterPower, "set heater power", value, false)
}

// HeaterPower returns the lens heater power percentage.
func (c *Camera) HeaterPower() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgHeaterPower, "heater power")
	return v, err
}

// SetFanPower sets the radiator fan power percentage (0-100).
func (c *Camera) SetFanPower(value int64) error {
	return c.setIntConfig(sdk.CfgFanPower, "set fan power", value, false)
}

// FanPower returns the radiator fan power percentage.
func (c *Camera) FanPower() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgFanPower, "fan power")
	return v, err
}

// SetFrameLimit caps the frame rate; 0 means no limit, range 0-2000.
func (c *Camera) SetFrameLimit(value int64) error {
	return c.setIntConfig(sdk.CfgFrameLimit, "set frame limit", value, false)
}

// FrameLimit returns the frame rate cap.
func (c *Camera) FrameLimit() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgFrameLimit, "frame limit")
	return v, err
}

// SetHQI enables High Quality Image mode on cameras without DDR; it
// reduces waviness at the cost of frame rate.
func (c *Camera) SetHQI(on bool) error {
	return c.setBoolConfig(sdk.CfgHQI, "set hqi", on)
}

// HQI reports whether High Quality Image mode is on.
func (c *Camera) HQI() (bool, error) {
	return c.boolConfig(sdk.CfgHQI, "hqi")
}

// SetUSBBandwidthLimit caps USB bandwidth usage as a percentage.
func (c *Camera) SetUSBBandwidthLimit(percent int64) error {
	return c.setIntConfig(sdk.CfgUSBBandwidthLimit, "set usb bandwidth limit", percent, false)
}

// USBBandwidthLimit returns the USB bandwidth cap percentage.
func (c *Camera) USBBandwidthLimit() (int64, error) {
	v, _, err := c.intConfig(sdk.CfgUSBBandwidthLimit, "usb bandwidth limit")
	return v, err
}

// SetHardwareBin selects hardware binning instead of software binning
// on sensors that support it.
func (c *Camera) SetHardwareBin(on bool) error {
	return c.setBoolConfig(sdk.CfgHardwareBin, "set hardware bin", on)
}

// HardwareBin reports whether hardware binning is active.
func (c *Camera) HardwareBin() (bool, error) {
	return c.boolConfig(sdk.CfgHardwareBin, "hardware bin")
}

// SetPixelBinSum selects sum instead of average when binning.
func (c *Camera) SetPixelBinSum(on bool) error {
	return c.setBoolConfig(sdk.CfgPixelBinSum, "set pixel bin sum", on)
}

// PixelBinSum reports whether binning sums pixels instead of
// averaging them.
func (c *Camera) PixelBinSum() (bool, error) {
	return c.boolConfig(sdk.CfgPixelBinSum, "pixel bin sum")
}

// SetMonoBin makes binning on color cameras use neighbour pixels; the
// binned image loses its bayer pattern.
func (c *Camera) SetMonoBin(on bool) error {
	return c.setBoolConfig(sdk.CfgMonoBin, "set mono bin", on)
}

// MonoBin reports whether mono binning is active.
func (c *Camera) MonoBin() (bool, error) {
	return c.boolConfig(sdk.CfgMonoBin, "mono bin")
}

// FlipMode selects how frames are mirrored by the camera.
type FlipMode int

const (
	FlipNone FlipMode = iota
	FlipHorizontal
	FlipVertical
	FlipBoth
)

func (f FlipMode) String() string {
	switch f {
	case FlipHorizontal:
		return "horizontal"
	case FlipVertical:
		return "vertical"
	case FlipBoth:
		return "both"
	default:
		return "none"
	}
}

func flipConfig(mode FlipMode) sdk.Config {
	switch mode {
	case FlipHorizontal:
		return sdk.CfgFlipHori
	case FlipVertical:
		return sdk.CfgFlipVert
	case FlipBoth:
		return sdk.CfgFlipBoth
	default:
		return sdk.CfgFlipNone
	}
}

// SetFlip selects the flip mode. The native layer treats the four
// flip configs as a radio group; the written value is ignored.
func (c *Camera) SetFlip(mode FlipMode) error {
	return c.setBoolConfig(flipConfig(mode), "set flip", true)
}

// Flip returns the active flip mode.
func (c *Camera) Flip() (FlipMode, error) {
	for _, mode := range []FlipMode{FlipHorizontal, FlipVertical, FlipBoth} {
		on, err := c.boolConfig(flipConfig(mode), "flip")
		if err != nil {
			return FlipNone, err
		}
		if on {
			return mode, nil
		}
	}
	return FlipNone, nil
}
