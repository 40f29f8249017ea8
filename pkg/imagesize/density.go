package imagesize

import (
	"bytes"
	"encoding/binary"
)

const (
	metersPerInch = 0.0254
	cmPerInch     = 2.54
)

var (
	pngSignature = []byte("\x89PNG\r\n\x1a\n")
	jfifIdent    = []byte("JFIF\x00")
)

// density returns the horizontal and vertical resolution recorded in the
// image, in dots per inch, or zeros if the format carries none.
func density(format string, data []byte) (float64, float64) {
	switch format {
	case "png":
		return pngDensity(data)
	case "jpeg":
		return jpegDensity(data)
	}
	return 0, 0
}

// pngDensity reads the pHYs chunk. Only the metre unit yields a resolution;
// unit 0 records an aspect ratio.
func pngDensity(data []byte) (float64, float64) {
	if !bytes.HasPrefix(data, pngSignature) {
		return 0, 0
	}

	pos := len(pngSignature)
	for pos+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[pos:]))
		typ := string(data[pos+4 : pos+8])
		body := pos + 8
		if length < 0 || body+length > len(data) {
			return 0, 0
		}

		switch typ {
		case "pHYs":
			if length < 9 || data[body+8] != 1 {
				return 0, 0
			}
			x := float64(binary.BigEndian.Uint32(data[body:]))
			y := float64(binary.BigEndian.Uint32(data[body+4:]))
			return x * metersPerInch, y * metersPerInch
		case "IDAT", "IEND":
			return 0, 0
		}
		pos = body + length + 4
	}
	return 0, 0
}

// jpegDensity reads the JFIF APP0 segment.
func jpegDensity(data []byte) (float64, float64) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return 0, 0
	}

	pos := 2
	for pos+4 <= len(data) {
		if data[pos] != 0xFF {
			return 0, 0
		}
		marker := data[pos+1]
		if marker == 0xFF {
			pos++
			continue
		}
		if marker == 0xDA || marker == 0xD9 {
			return 0, 0
		}

		length := int(binary.BigEndian.Uint16(data[pos+2:]))
		seg := pos + 4
		if length < 2 || pos+2+length > len(data) {
			return 0, 0
		}

		if marker == 0xE0 && length >= 16 && bytes.Equal(data[seg:seg+5], jfifIdent) {
			unit := data[seg+7]
			x := float64(binary.BigEndian.Uint16(data[seg+8:]))
			y := float64(binary.BigEndian.Uint16(data[seg+10:]))
			switch unit {
			case 1:
				return x, y
			case 2:
				return x * cmPerInch, y * cmPerInch
			}
			return 0, 0
		}
		pos += 2 + length
	}
	return 0, 0
}
