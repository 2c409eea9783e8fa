// Package captcha synthesizes distorted verification images: a short text
// laid out on a coloured background, crossed by decoy curves and circles,
// warped and speckled, then encoded to bytes or a data URI.
package captcha

import (
	"fmt"
	"image"
	"time"

	imagex "github.com/code-100-precent/LingCaptcha/pkg/image"
	"github.com/code-100-precent/LingCaptcha/pkg/logger"
	"github.com/code-100-precent/LingCaptcha/pkg/stateless"
	"go.uber.org/zap"
)

// Captcha 生成的验证码
type Captcha struct {
	Text     string
	DarkMode bool

	img     *image.RGBA
	format  imagex.Format
	quality int
}

// New renders a captcha with a random solution of length symbols.
func New(length, width, height int, dark bool) *Captcha {
	return NewBuilder().Length(length).Width(width).Height(height).DarkMode(dark).Build()
}

// Render runs the full pipeline for cfg: text, canvas, layout, interference,
// distortion, noise. Encoding is deferred until the output is requested.
func Render(cfg Config) *Captcha {
	rng := newRand()

	text := cfg.Text
	if text == "" {
		text = Generate(rng, cfg.Characters, cfg.Length)
	}

	face := cfg.Face
	if face == nil {
		face = resolveFont(cfg.Font)
	}

	canvas := NewCanvas(cfg.Width, cfg.Height, cfg.DarkMode)
	PlaceText(rng, canvas, text, cfg.DarkMode, cfg.DropShadow, face)

	for i := 0; i < cfg.InterferenceLines; i++ {
		DrawInterferenceLine(rng, canvas, cfg.DarkMode)
	}
	DrawInterferenceEllipses(rng, canvas, cfg.InterferenceEllipses, cfg.DarkMode)

	ApplyWavyDistortion(newRand(), canvas, cfg.Distortion)
	ApplyNoise(canvas, cfg.Complexity)

	return &Captcha{
		Text:     text,
		DarkMode: cfg.DarkMode,
		img:      canvas.Image(),
		format:   cfg.Format,
		quality:  cfg.Compression,
	}
}

// Format returns the codec ToBytes and ToBase64 use.
func (c *Captcha) Format() imagex.Format { return c.format }

// MIMEType returns the media type of the encoded output.
func (c *Captcha) MIMEType() string { return c.format.MIMEType() }

func (c *Captcha) Width() int  { return c.img.Bounds().Dx() }
func (c *Captcha) Height() int { return c.img.Bounds().Dy() }

// ToBytes encodes the image.
func (c *Captcha) ToBytes() ([]byte, error) {
	return imagex.Encode(c.img, c.format, c.quality)
}

// ToBase64 returns a data URI. On encoder failure the payload is empty.
func (c *Captcha) ToBase64() string {
	data, err := c.ToBytes()
	if err != nil {
		logger.Warn("captcha encode failed", zap.String("format", string(c.format)), zap.Error(err))
		return imagex.DataURIPrefix(c.format)
	}
	return imagex.DataURI(c.format, data)
}

// Save writes the image to path; the format is taken from the extension.
func (c *Captcha) Save(path string) error {
	return imagex.SaveImage(c.img, path, imagex.FormatFromFilename(path), c.quality)
}

// AsTuple returns the data URI together with a stateless token for the solution.
func (c *Captcha) AsTuple(secret string, ttl time.Duration) (string, string, error) {
	token, err := stateless.Sign(c.Text, ttl, secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign captcha: %w", err)
	}
	return c.ToBase64(), token, nil
}
