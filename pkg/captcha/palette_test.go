package captcha

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, LightPalette, PaletteFor(false))
	assert.Equal(t, DarkPalette, PaletteFor(true))
	assert.Equal(t, LightBackground, BackgroundFor(false))
	assert.Equal(t, DarkBackground, BackgroundFor(true))
}

func TestPalette_Pick(t *testing.T) {
	rng := testRand()
	seen := map[[4]uint8]bool{}
	for i := 0; i < 500; i++ {
		c := DarkPalette.Pick(rng)
		assert.True(t, DarkPalette.Contains(c))
		seen[[4]uint8{c.R, c.G, c.B, c.A}] = true
	}
	assert.Len(t, seen, len(DarkPalette))
	assert.False(t, LightPalette.Contains(DarkBackground))
}
