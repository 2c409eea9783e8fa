package captcha

import (
	"math"
	"math/rand/v2"
)

const (
	distortionAmplitude     = 1.5
	distortionBaseFrequency = 0.05
	distortionFrequencySpan = 0.05
)

// ApplyWavyDistortion remaps every pixel along a sine/cosine wave whose
// amplitude grows with level. Level 0 leaves the canvas untouched.
func ApplyWavyDistortion(rng *rand.Rand, canvas *Canvas, level int) {
	if level <= 0 {
		return
	}
	w, h := canvas.Width(), canvas.Height()
	if w == 0 || h == 0 {
		return
	}

	phase := rng.Float64() * 2 * math.Pi
	amplitude := float64(level) * distortionAmplitude
	frequency := distortionBaseFrequency + rng.Float64()*distortionFrequencySpan*float64(level)

	src := canvas.Clone()
	for y := 0; y < h; y++ {
		offsetX := int(amplitude * math.Sin(float64(y)*frequency+phase))
		for x := 0; x < w; x++ {
			offsetY := int(amplitude * math.Cos(float64(x)*frequency+phase))
			sx := clamp(x+offsetX, 0, w-1)
			sy := clamp(y+offsetY, 0, h-1)
			canvas.Set(x, y, src.At(sx, sy))
		}
	}
}
