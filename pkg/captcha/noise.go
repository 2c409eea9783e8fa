package captcha

import (
	"image/color"
	"math/rand/v2"
)

const (
	MinComplexity = 1
	MaxComplexity = 10
)

const (
	gaussianSpread   = 5.0
	saltPepperFactor = 0.002
)

var (
	pepper = color.RGBA{0, 0, 0, 255}
	salt   = color.RGBA{255, 255, 255, 255}
)

// ApplyNoise runs the Gaussian pass then the salt-and-pepper pass, each with
// its own source. Complexity 1 (or less) adds no noise.
func ApplyNoise(canvas *Canvas, complexity int) {
	if complexity <= MinComplexity {
		return
	}
	level := float64(complexity - 1)
	ApplyGaussianNoise(newRand(), canvas, level, gaussianSpread*level)
	ApplySaltAndPepperNoise(newRand(), canvas, saltPepperFactor*level)
}

// ApplyGaussianNoise adds N(mean, stddev) to every colour channel.
func ApplyGaussianNoise(rng *rand.Rand, canvas *Canvas, mean, stddev float64) {
	pix := canvas.Image().Pix
	for i := 0; i < len(pix); i += 4 {
		for ch := 0; ch < 3; ch++ {
			v := float64(pix[i+ch]) + mean + rng.NormFloat64()*stddev
			pix[i+ch] = clampChannel(v)
		}
	}
}

// ApplySaltAndPepperNoise turns each pixel black or white with probability rate.
func ApplySaltAndPepperNoise(rng *rand.Rand, canvas *Canvas, rate float64) {
	if rate <= 0 {
		return
	}
	w, h := canvas.Width(), canvas.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() >= rate {
				continue
			}
			if rng.IntN(2) == 0 {
				canvas.Set(x, y, pepper)
			} else {
				canvas.Set(x, y, salt)
			}
		}
	}
}

func clampChannel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
