package captcha

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	imagex "github.com/code-100-precent/LingCaptcha/pkg/image"
	"github.com/code-100-precent/LingCaptcha/pkg/logger"
	"github.com/code-100-precent/LingCaptcha/pkg/stateless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	c := New(5, 130, 40, false)
	assert.Len(t, c.Text, 5)
	assert.False(t, c.DarkMode)
	assert.Equal(t, 130, c.Width())
	assert.Equal(t, 40, c.Height())
	assert.True(t, strings.HasPrefix(c.ToBase64(), "data:image/jpeg;base64,"))
}

func TestBuild_FixedText(t *testing.T) {
	c := NewBuilder().Text("based").Width(200).Height(70).Build()

	assert.Equal(t, "based", c.Text)
	assert.Equal(t, 200, c.Width())
	assert.Equal(t, 70, c.Height())

	uri := c.ToBase64()
	require.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	format, ok := imagex.DetectFormat(data)
	assert.True(t, ok)
	assert.Equal(t, imagex.FormatJPEG, format)
}

func TestBuild_CustomCharacters(t *testing.T) {
	c := NewBuilder().Length(10).Characters([]rune{'A', 'B'}).Build()

	assert.Len(t, c.Text, 10)
	for _, r := range c.Text {
		assert.Contains(t, []rune{'A', 'B'}, r)
	}
}

func TestBuild_EmptyTextIsRandom(t *testing.T) {
	c := NewBuilder().Text("").Length(6).Build()
	assert.Len(t, c.Text, 6)
}

func TestBuild_AllFormats(t *testing.T) {
	for _, format := range []imagex.Format{imagex.FormatJPEG, imagex.FormatPNG, imagex.FormatGIF, imagex.FormatBMP, imagex.FormatTIFF} {
		c := NewBuilder().Format(format).Build()
		assert.Equal(t, format, c.Format())
		assert.Equal(t, format.MIMEType(), c.MIMEType())

		data, err := c.ToBytes()
		require.NoError(t, err, format)
		detected, ok := imagex.DetectFormat(data)
		assert.True(t, ok, format)
		assert.Equal(t, format, detected)
		assert.True(t, strings.HasPrefix(c.ToBase64(), imagex.DataURIPrefix(format)))
	}
}

func TestBuild_EveryOption(t *testing.T) {
	c := NewBuilder().
		Length(8).Width(300).Height(100).DarkMode(true).
		Complexity(10).Compression(90).DropShadow(true).
		InterferenceLines(10).InterferenceEllipses(10).Distortion(20).
		Build()

	assert.Len(t, c.Text, 8)
	assert.True(t, c.DarkMode)
	_, err := c.ToBytes()
	assert.NoError(t, err)
}

func TestBuild_HugeText(t *testing.T) {
	c := NewBuilder().Text(strings.Repeat("A", 1_000_000)).Build()
	assert.Len(t, c.Text, 1_000_000)
	assert.Equal(t, DefaultWidth, c.Width())
}

func TestBuild_BadFontFallsBack(t *testing.T) {
	core, recorded := observer.New(zapcore.WarnLevel)
	logger.SetLogger(zap.New(core))
	t.Cleanup(func() { logger.SetLogger(nil) })

	c := NewBuilder().Font([]byte("definitely not ttf")).Build()
	assert.Len(t, c.Text, DefaultLength)
	assert.Equal(t, 1, recorded.FilterMessage("custom captcha font rejected, using default").Len())
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	c := NewBuilder().Build()

	for _, name := range []string{"a.png", "b.jpg", "nested/c.gif"} {
		path := filepath.Join(dir, name)
		require.NoError(t, c.Save(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		format, ok := imagex.DetectFormat(data)
		assert.True(t, ok)
		assert.Equal(t, imagex.FormatFromFilename(name), format)
	}
}

func TestAsTuple(t *testing.T) {
	c := NewBuilder().Text("XyZ12").Build()

	uri, token, err := c.AsTuple("tuple-secret", time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))

	ok, err := stateless.Verify(token, "xyz12", "tuple-secret")
	require.NoError(t, err)
	assert.True(t, ok)

	_, _, err = c.AsTuple("", time.Minute)
	assert.ErrorIs(t, err, stateless.ErrEmptySecret)
}

func TestBuild_Concurrent(t *testing.T) {
	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- NewBuilder().Complexity(3).Distortion(2).Build().Text
		}()
	}
	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		text := <-done
		assert.Len(t, text, DefaultLength)
		seen[text] = true
	}
	assert.Greater(t, len(seen), 1)
}

func BenchmarkBuild_Default(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewBuilder().Length(5).Width(130).Height(40).Build()
	}
}

func BenchmarkBuild_HighComplexity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewBuilder().Width(200).Height(70).Complexity(10).Build()
	}
}

func BenchmarkBuild_HighDistortion(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewBuilder().Width(200).Height(70).Distortion(15).Build()
	}
}

func BenchmarkBuild_ExtremeAll(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewBuilder().
			Length(8).Width(300).Height(100).
			Complexity(10).Distortion(20).DropShadow(true).
			InterferenceLines(10).InterferenceEllipses(10).
			Build()
	}
}
