package poago

import (
	"strings"

	"github.com/cjeanneret/PoaGo/internal/sdk"
)

// ImageFormat selects the pixel layout of captured frames. Changing
// the format changes the frame buffer size and may change control
// bounds.
type ImageFormat int

const (
	// RAW8: 8 bit raw sensor data, 1 byte per pixel.
	RAW8 ImageFormat = iota
	// RAW16: 16 bit raw sensor data, 2 bytes per pixel.
	RAW16
	// RGB24: debayered RGB888, 3 bytes per pixel (color cameras only).
	RGB24
	// MONO8: 8 bit monochrome converted from the bayer array, 1 byte
	// per pixel (color cameras only).
	MONO8
)

// BytesPerPixel returns the storage size of one pixel in this format.
func (f ImageFormat) BytesPerPixel() int {
	switch f {
	case RAW16:
		return 2
	case RGB24:
		return 3
	default:
		return 1
	}
}

func (f ImageFormat) String() string {
	switch f {
	case RAW8:
		return "RAW8"
	case RAW16:
		return "RAW16"
	case RGB24:
		return "RGB24"
	case MONO8:
		return "MONO8"
	default:
		return "unknown"
	}
}

// ParseImageFormat converts a format name ("RAW8", "RAW16", "RGB24",
// "MONO8", any case) to an ImageFormat. The second result is false for
// unknown names.
func ParseImageFormat(s string) (ImageFormat, bool) {
	switch strings.ToUpper(s) {
	case "RAW8":
		return RAW8, true
	case "RAW16":
		return RAW16, true
	case "RGB24":
		return RGB24, true
	case "MONO8":
		return MONO8, true
	default:
		return RAW8, false
	}
}

func formatToSDK(f ImageFormat) sdk.ImgFormat {
	switch f {
	case RAW16:
		return sdk.FormatRAW16
	case RGB24:
		return sdk.FormatRGB24
	case MONO8:
		return sdk.FormatMONO8
	default:
		return sdk.FormatRAW8
	}
}

func formatFromSDK(f sdk.ImgFormat) ImageFormat {
	switch f {
	case sdk.FormatRAW16:
		return RAW16
	case sdk.FormatRGB24:
		return RGB24
	case sdk.FormatMONO8:
		return MONO8
	default:
		return RAW8
	}
}

// BayerPattern is the color filter layout of the sensor.
type BayerPattern int

const (
	BayerMono BayerPattern = iota
	BayerRG
	BayerBG
	BayerGR
	BayerGB
)

func (b BayerPattern) String() string {
	switch b {
	case BayerRG:
		return "RGGB"
	case BayerBG:
		return "BGGR"
	case BayerGR:
		return "GRBG"
	case BayerGB:
		return "GBRG"
	default:
		return "MONO"
	}
}

func bayerFromSDK(b sdk.BayerPattern) BayerPattern {
	switch b {
	case sdk.BayerRG:
		return BayerRG
	case sdk.BayerBG:
		return BayerBG
	case sdk.BayerGR:
		return BayerGR
	case sdk.BayerGB:
		return BayerGB
	default:
		return BayerMono
	}
}
