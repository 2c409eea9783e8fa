package captcha

import (
	"image/color"
	"math/rand/v2"
)

// Palette is a fixed set of foreground colours picked uniformly at random
// for glyphs and interference elements.
type Palette [5]color.RGBA

var (
	// LightPalette 浅色模式文字颜色
	LightPalette = Palette{
		{214, 14, 50, 255},
		{240, 181, 41, 255},
		{176, 203, 40, 255},
		{105, 137, 194, 255},
		{242, 140, 71, 255},
	}

	// DarkPalette 深色模式文字颜色
	DarkPalette = Palette{
		{251, 188, 5, 255},
		{116, 192, 255, 255},
		{255, 224, 133, 255},
		{198, 215, 97, 255},
		{247, 185, 168, 255},
	}

	LightBackground = color.RGBA{224, 238, 253, 255}
	DarkBackground  = color.RGBA{18, 18, 18, 255}

	// ShadowColor is used for drop shadows in both modes.
	ShadowColor = color.RGBA{20, 20, 20, 255}
)

// PaletteFor returns the foreground palette of the given colour mode.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// BackgroundFor returns the background colour of the given colour mode.
func BackgroundFor(dark bool) color.RGBA {
	if dark {
		return DarkBackground
	}
	return LightBackground
}

// Pick returns a uniformly random palette entry.
func (p Palette) Pick(rng *rand.Rand) color.RGBA {
	return p[rng.IntN(len(p))]
}

// Contains reports whether c is one of the palette entries.
func (p Palette) Contains(c color.RGBA) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}
