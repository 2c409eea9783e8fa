package captcha

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/code-100-precent/LingCaptcha/pkg/cache"
	"github.com/code-100-precent/LingCaptcha/pkg/logger"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

// customFontCacheSize bounds how many parsed caller fonts are kept.
const customFontCacheSize = 32

var (
	defaultFont     *truetype.Font
	defaultFontErr  error
	defaultFontOnce sync.Once

	customFonts = cache.NewLRUCache[string, *truetype.Font](cache.LRUCacheConfig{MaxSize: customFontCacheSize})
)

// LoadDefaultFont parses the embedded font at most once and returns it.
// A non-nil error means the bundled asset is broken; servers treat that as fatal.
func LoadDefaultFont() (*truetype.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = truetype.Parse(goregular.TTF)
		if defaultFontErr != nil {
			defaultFontErr = fmt.Errorf("failed to parse font: %w", defaultFontErr)
		}
	})
	return defaultFont, defaultFontErr
}

// ParseFont parses caller supplied TTF bytes, reusing earlier parses of the same bytes.
func ParseFont(data []byte) (*truetype.Font, error) {
	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:])
	if f, ok := customFonts.Get(key); ok {
		return f, nil
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	customFonts.Set(key, f)
	return f, nil
}

// resolveFont picks the custom font when one is given and parses, the default otherwise.
// It returns nil only if the embedded font itself cannot be loaded.
func resolveFont(data []byte) *truetype.Font {
	if len(data) > 0 {
		f, err := ParseFont(data)
		if err == nil {
			return f
		}
		logger.Warn("custom captcha font rejected, using default", zap.Error(err))
	}

	f, err := LoadDefaultFont()
	if err != nil {
		logger.Error("captcha font unavailable", zap.Error(err))
		return nil
	}
	return f
}

func fontAscent(f *truetype.Font, size float64) int {
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72})
	return face.Metrics().Ascent.Ceil()
}
