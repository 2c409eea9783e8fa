package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const (
	MinQuality     = 1
	MaxQuality     = 99
	DefaultQuality = 40
)

// ClampQuality forces quality into [MinQuality, MaxQuality].
func ClampQuality(quality int) int {
	if quality < MinQuality {
		return MinQuality
	}
	if quality > MaxQuality {
		return MaxQuality
	}
	return quality
}

// EncodeTo writes img to w in the given format. quality only affects JPEG.
func EncodeTo(w io.Writer, img image.Image, format Format, quality int) error {
	switch format {
	case FormatPNG:
		encoder := &png.Encoder{CompressionLevel: png.BestCompression}
		return encoder.Encode(w, img)
	case FormatGIF:
		return gif.Encode(w, img, nil)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: ClampQuality(quality)})
	}
}

// Encode returns the encoded bytes of img.
func Encode(img image.Image, format Format, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, img, format, quality); err != nil {
		return nil, fmt.Errorf("failed to encode %s image: %w", format, err)
	}
	return buf.Bytes(), nil
}

// DataURIPrefix returns "data:<mime>;base64,".
func DataURIPrefix(format Format) string {
	return "data:" + format.MIMEType() + ";base64,"
}

// DataURI wraps encoded bytes into a base64 data URI.
func DataURI(format Format, data []byte) string {
	return DataURIPrefix(format) + base64.StdEncoding.EncodeToString(data)
}

// SaveImage saves an image to file with specified format and quality
func SaveImage(img image.Image, path string, format Format, quality int) error {
	// Create directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := EncodeTo(file, img, format, quality); err != nil {
		return fmt.Errorf("failed to encode %s image: %w", format, err)
	}
	return nil
}
