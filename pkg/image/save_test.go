package image

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampQuality(t *testing.T) {
	assert.Equal(t, MinQuality, ClampQuality(0))
	assert.Equal(t, MinQuality, ClampQuality(-10))
	assert.Equal(t, MaxQuality, ClampQuality(100))
	assert.Equal(t, 40, ClampQuality(40))
}

func TestEncode_JPEGQualityAffectsSize(t *testing.T) {
	img := createTestImage(120, 60)

	low, err := Encode(img, FormatJPEG, 5)
	require.NoError(t, err)
	high, err := Encode(img, FormatJPEG, 95)
	require.NoError(t, err)
	assert.Less(t, len(low), len(high))

	decoded, err := jpeg.Decode(bytes.NewReader(high))
	require.NoError(t, err)
	assert.Equal(t, 120, decoded.Bounds().Dx())
	assert.Equal(t, 60, decoded.Bounds().Dy())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeTo_WriterError(t *testing.T) {
	err := EncodeTo(failingWriter{}, createTestImage(10, 10), FormatPNG, DefaultQuality)
	assert.Error(t, err)
}

func TestDataURI(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,", DataURIPrefix(FormatPNG))

	uri := DataURI(FormatJPEG, []byte("abc"))
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, DataURIPrefix(FormatJPEG)))
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), payload)
}

func TestSaveImage(t *testing.T) {
	img := createTestImage(100, 100)
	dir := t.TempDir()

	for _, f := range []Format{FormatJPEG, FormatPNG, FormatGIF, FormatBMP, FormatTIFF} {
		path := filepath.Join(dir, "out", "test"+f.Extension())
		require.NoError(t, SaveImage(img, path, f, 80))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		got, ok := DetectFormat(data)
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
}

func TestSaveImage_InvalidPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := SaveImage(createTestImage(4, 4), filepath.Join(blocker, "sub", "a.png"), FormatPNG, 80)
	assert.ErrorContains(t, err, "failed to create directory")
}
