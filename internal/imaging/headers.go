package imaging

import (
	"bytes"
	"encoding/binary"
)

// The stdlib decoders report one color model for several on-disk layouts.
// These readers look at the few header bytes that tell them apart.

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pngMode reads the IHDR bit depth and color type.
func pngMode(data []byte) (string, bool) {
	// signature(8) + length(4) + "IHDR"(4) + width(4) + height(4) + depth(1) + color type(1)
	if len(data) < 26 || !bytes.HasPrefix(data, pngSignature) || string(data[12:16]) != "IHDR" {
		return "", false
	}
	if binary.BigEndian.Uint32(data[8:12]) != 13 {
		return "", false
	}
	depth, colorType := data[24], data[25]
	switch colorType {
	case 0:
		switch depth {
		case 1:
			return "1", true
		case 16:
			return "I;16", true
		}
		return "L", true
	case 2:
		return "RGB", true
	case 3:
		return "P", true
	case 4:
		return "LA", true
	case 6:
		return "RGBA", true
	}
	return "", false
}

const (
	tiffTagExtraSamples = 338
	tiffTypeShort       = 3
)

// tiffHasAlpha reports whether the first IFD declares an associated or
// unassociated alpha sample.
func tiffHasAlpha(data []byte) bool {
	if len(data) < 8 {
		return false
	}
	var order binary.ByteOrder
	switch string(data[:2]) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		return false
	}
	ifd := int64(order.Uint32(data[4:8]))
	if ifd < 8 || ifd+2 > int64(len(data)) {
		return false
	}
	entries := int64(order.Uint16(data[ifd:]))
	for i := int64(0); i < entries; i++ {
		entry := ifd + 2 + 12*i
		if entry+12 > int64(len(data)) {
			return false
		}
		if order.Uint16(data[entry:]) != tiffTagExtraSamples {
			continue
		}
		if order.Uint16(data[entry+2:]) != tiffTypeShort {
			return false
		}
		count := order.Uint32(data[entry+4:])
		if count == 0 {
			return false
		}
		value := entry + 8
		// Up to two SHORTs fit in the value field, more live at an offset.
		if count > 2 {
			value = int64(order.Uint32(data[entry+8:]))
			if value+2 > int64(len(data)) {
				return false
			}
		}
		kind := order.Uint16(data[value:])
		return kind == 1 || kind == 2
	}
	return false
}

// webpLosslessMode reads the alpha_is_used bit of a simple-format VP8L
// bitstream. Extended (VP8X) files already carry alpha in their config.
func webpLosslessMode(data []byte) (string, bool) {
	// "RIFF"(4) + size(4) + "WEBP"(4) + "VP8L"(4) + length(4) + 0x2f(1) + 32 header bits
	if len(data) < 25 || string(data[0:4]) != "RIFF" || string(data[8:16]) != "WEBPVP8L" || data[20] != 0x2f {
		return "", false
	}
	// 14 bits width-1, 14 bits height-1, then the alpha hint.
	if binary.LittleEndian.Uint32(data[21:25])&(1<<28) != 0 {
		return "RGBA", true
	}
	return "RGB", true
}
