package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"jpg": FormatJPEG, "JPEG": FormatJPEG, ".jpg": FormatJPEG,
		"png": FormatPNG, " PNG ": FormatPNG,
		"gif": FormatGIF,
		"bmp": FormatBMP,
		"tif": FormatTIFF, "tiff": FormatTIFF,
	}
	for in, want := range cases {
		got, ok := ParseFormat(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "webp", "svg"} {
		_, ok := ParseFormat(in)
		assert.False(t, ok, in)
	}
}

func TestFormat_MIMETypeAndExtension(t *testing.T) {
	assert.Equal(t, "image/jpeg", FormatJPEG.MIMEType())
	assert.Equal(t, "image/png", FormatPNG.MIMEType())
	assert.Equal(t, "image/gif", FormatGIF.MIMEType())
	assert.Equal(t, "image/bmp", FormatBMP.MIMEType())
	assert.Equal(t, "image/tiff", FormatTIFF.MIMEType())
	assert.Equal(t, "image/jpeg", Format("webp").MIMEType())

	assert.Equal(t, ".jpg", FormatJPEG.Extension())
	assert.Equal(t, ".tiff", FormatTIFF.Extension())

	// 扩展名与解析互为往返
	for _, f := range []Format{FormatJPEG, FormatPNG, FormatGIF, FormatBMP, FormatTIFF} {
		assert.Equal(t, f, FormatFromExtension(f.Extension()))
	}
}

func TestFormatFromFilename(t *testing.T) {
	assert.Equal(t, FormatPNG, FormatFromFilename("images/img-light-1.png"))
	assert.Equal(t, FormatJPEG, FormatFromFilename("a.JPG"))
	assert.Equal(t, FormatTIFF, FormatFromFilename("scan.tif"))
	assert.Equal(t, DefaultFormat, FormatFromFilename("noext"))
	assert.Equal(t, DefaultFormat, FormatFromFilename("file.webp"))
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat(FormatGIF))
	assert.False(t, IsValidFormat(""))
	assert.False(t, IsValidFormat("JPEG"))
}

func TestDetectFormat(t *testing.T) {
	img := createTestImage(10, 10)
	for _, f := range []Format{FormatJPEG, FormatPNG, FormatGIF, FormatBMP, FormatTIFF} {
		data, err := Encode(img, f, DefaultQuality)
		assert.NoError(t, err)
		got, ok := DetectFormat(data)
		assert.True(t, ok, f)
		assert.Equal(t, f, got)
	}

	_, ok := DetectFormat([]byte{0x00, 0x01})
	assert.False(t, ok)
	_, ok = DetectFormat(nil)
	assert.False(t, ok)
}
