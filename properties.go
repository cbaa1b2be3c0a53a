package poago

import "github.com/cjeanneret/PoaGo/internal/sdk"

// Properties are the static per-model capabilities of a camera. They
// are fetched once at enumeration time and cached for the lifetime of
// descriptor and session; reading them never touches the device.
type Properties struct {
	// Model is the camera model name, e.g. "Mars-C".
	Model string
	// CustomID is the user-assigned name appended to the model, if any.
	CustomID string
	// MaxWidth and MaxHeight are the full sensor geometry at bin 1.
	MaxWidth  int
	MaxHeight int
	// BitDepth is the ADC depth of the sensor.
	BitDepth int
	IsColorCamera bool
	HasST4Port    bool
	HasCooler     bool
	IsUSB3Speed   bool
	BayerPattern  BayerPattern
	// PixelSizeUm is the physical pixel size in micrometers.
	PixelSizeUm float64
	// SerialNumber is unique per unit.
	SerialNumber string
	// SensorModel is the sensor name, e.g. "IMX462".
	SensorModel string
	// LocalPath is the USB path of the device on this host.
	LocalPath string
	// Bins lists the supported binning factors (1, 2, ...).
	Bins []int
	// ImageFormats lists the pixel formats this model supports.
	ImageFormats []ImageFormat
	SupportsHardwareBin bool
	ProductID           int
}

// SupportsFormat reports whether the model supports the given format.
func (p Properties) SupportsFormat(f ImageFormat) bool {
	for _, sf := range p.ImageFormats {
		if sf == f {
			return true
		}
	}
	return false
}

// SupportsBin reports whether the model supports the given binning
// factor.
func (p Properties) SupportsBin(bin int) bool {
	for _, b := range p.Bins {
		if b == bin {
			return true
		}
	}
	return false
}

func propertiesFromSDK(info sdk.DeviceInfo) Properties {
	formats := make([]ImageFormat, 0, len(info.ImgFormats))
	for _, f := range info.ImgFormats {
		formats = append(formats, formatFromSDK(f))
	}
	return Properties{
		Model:               info.Model,
		CustomID:            info.CustomID,
		MaxWidth:            info.MaxWidth,
		MaxHeight:           info.MaxHeight,
		BitDepth:            info.BitDepth,
		IsColorCamera:       info.IsColorCamera,
		HasST4Port:          info.HasST4Port,
		HasCooler:           info.HasCooler,
		IsUSB3Speed:         info.IsUSB3Speed,
		BayerPattern:        bayerFromSDK(info.BayerPattern),
		PixelSizeUm:         info.PixelSizeUm,
		SerialNumber:        info.SerialNumber,
		SensorModel:         info.SensorModel,
		LocalPath:           info.LocalPath,
		Bins:                append([]int(nil), info.Bins...),
		ImageFormats:        formats,
		SupportsHardwareBin: info.SupportsHardBin,
		ProductID:           info.ProductID,
	}
}
