package captcha

import (
	"math/rand/v2"

	"github.com/code-100-precent/LingCaptcha/pkg/logger"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
)

// 字体大小，根据文字长度选择
const (
	ScaleSmall  = 35.0
	ScaleMedium = 42.0
	ScaleLarge  = 50.0
)

const (
	layoutMargin = 10
	layoutLeft   = 5
	layoutRaise  = 15
	shadowOffset = 2
)

// ScaleFor returns the font size tier for a text of n runes.
func ScaleFor(n int) float64 {
	switch {
	case n <= 3:
		return ScaleLarge
	case n <= 5:
		return ScaleMedium
	default:
		return ScaleSmall
	}
}

// PlaceText writes each rune of text into its own slot, left to right, with a
// random palette colour and an optional dark shadow underneath.
func PlaceText(rng *rand.Rand, canvas *Canvas, text string, dark, dropShadow bool, f *truetype.Font) {
	runes := []rune(text)
	if len(runes) == 0 || f == nil {
		return
	}

	usable := canvas.Width() - layoutMargin
	if usable < 0 {
		usable = 0
	}
	slot := usable / len(runes)
	if slot == 0 {
		slot = 1
	}
	y := canvas.Height()/2 - layoutRaise
	if y < 0 {
		y = 0
	}

	scale := ScaleFor(len(runes))
	palette := PaletteFor(dark)

	for i, r := range runes {
		x := layoutLeft + i*slot
		if x >= canvas.Width() {
			break
		}
		glyph := string(r)
		col := palette.Pick(rng)

		if dropShadow {
			if err := canvas.DrawText(glyph, x+shadowOffset, y+shadowOffset, f, scale, ShadowColor); err != nil {
				logger.Debug("draw shadow glyph failed", zap.String("glyph", glyph), zap.Error(err))
			}
		}
		if err := canvas.DrawText(glyph, x, y, f, scale, col); err != nil {
			logger.Debug("draw glyph failed", zap.String("glyph", glyph), zap.Error(err))
		}
	}
}
