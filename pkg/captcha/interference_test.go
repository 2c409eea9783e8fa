package captcha

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawInterferenceLine(t *testing.T) {
	c := NewCanvas(130, 40, false)
	before := c.Clone()
	DrawInterferenceLine(testRand(), c, false)
	assert.Greater(t, changedPixels(before, c), 50)
}

func TestDrawInterferenceEllipses(t *testing.T) {
	c := NewCanvas(130, 40, true)
	before := c.Clone()
	DrawInterferenceEllipses(testRand(), c, 3, true)
	assert.Greater(t, changedPixels(before, c), 50)

	untouched := NewCanvas(130, 40, true)
	DrawInterferenceEllipses(testRand(), untouched, 0, true)
	assertUniform(t, untouched, DarkBackground)
}

func TestInterference_TinyCanvasSkipped(t *testing.T) {
	c := NewCanvas(5, 5, false)
	DrawInterferenceLine(testRand(), c, false)
	DrawInterferenceEllipses(testRand(), c, 4, false)
	assertUniform(t, c, LightBackground)
}

func TestDrawInterferenceEllipses_SmallCanvasRadiusCapped(t *testing.T) {
	c := NewCanvas(12, 8, false)
	assert.NotPanics(t, func() {
		DrawInterferenceEllipses(testRand(), c, 10, false)
	})
}
