package image

import (
	"bytes"
	"strings"
)

// Format represents image format
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// DefaultFormat is the lossy codec captchas are served in.
const DefaultFormat = FormatJPEG

// MIMEType returns the media type used in data URIs and Content-Type headers.
func (f Format) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatGIF:
		return "image/gif"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return "image/jpeg"
	}
}

// Extension returns the canonical file extension including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatGIF:
		return ".gif"
	case FormatBMP:
		return ".bmp"
	case FormatTIFF:
		return ".tiff"
	default:
		return ".jpg"
	}
}

// ParseFormat parses a user supplied format name ("jpg", "PNG", ...).
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "jpg", "jpeg":
		return FormatJPEG, true
	case "png":
		return FormatPNG, true
	case "gif":
		return FormatGIF, true
	case "bmp":
		return FormatBMP, true
	case "tiff", "tif":
		return FormatTIFF, true
	default:
		return "", false
	}
}

// FormatFromExtension gets format from file extension
func FormatFromExtension(ext string) Format {
	if f, ok := ParseFormat(ext); ok {
		return f
	}
	return DefaultFormat
}

// FormatFromFilename gets format from filename
func FormatFromFilename(filename string) Format {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return DefaultFormat
	}
	return FormatFromExtension(filename[idx:])
}

// IsValidFormat checks if format is valid
func IsValidFormat(format Format) bool {
	switch format {
	case FormatJPEG, FormatPNG, FormatGIF, FormatBMP, FormatTIFF:
		return true
	default:
		return false
	}
}

// DetectFormat sniffs encoded bytes by their magic number.
func DetectFormat(data []byte) (Format, bool) {
	switch {
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return FormatJPEG, true
	case bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}):
		return FormatPNG, true
	case bytes.HasPrefix(data, []byte("GIF8")):
		return FormatGIF, true
	case bytes.HasPrefix(data, []byte("BM")):
		return FormatBMP, true
	case bytes.HasPrefix(data, []byte{'I', 'I', 0x2A, 0x00}), bytes.HasPrefix(data, []byte{'M', 'M', 0x00, 0x2A}):
		return FormatTIFF, true
	default:
		return "", false
	}
}
