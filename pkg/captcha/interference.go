package captcha

import "math/rand/v2"

// minInterferenceSize is the smallest canvas edge interference is drawn on.
const minInterferenceSize = 5

const (
	ellipseMinRadius  = 10
	ellipseRadiusSpan = 5
)

// DrawInterferenceLine draws one random cubic Bézier from the left edge to the
// right edge. The start sits in the top half and the end in the bottom half so
// the curve always crosses the text band.
func DrawInterferenceLine(rng *rand.Rand, canvas *Canvas, dark bool) {
	w, h := canvas.Width(), canvas.Height()
	if w <= minInterferenceSize || h <= minInterferenceSize {
		return
	}
	fw, fh := float64(w), float64(h)
	edge := float64(minInterferenceSize)

	start := [2]float64{edge, rndBetween(rng, edge, float64(h/2))}
	end := [2]float64{fw - edge, rndBetween(rng, float64(h/2), fh-edge)}
	c1 := [2]float64{
		rndBetween(rng, float64(w/4), float64(w/4*3)),
		rndBetween(rng, edge, fh-edge),
	}
	c2 := [2]float64{
		rndBetween(rng, float64(w/4), float64(w/4*3)),
		rndBetween(rng, edge, fh-edge),
	}

	canvas.DrawCubicBezier(start, end, c1, c2, PaletteFor(dark).Pick(rng))
}

// DrawInterferenceEllipses draws n hollow circles that stay inside the canvas.
func DrawInterferenceEllipses(rng *rand.Rand, canvas *Canvas, n int, dark bool) {
	w, h := canvas.Width(), canvas.Height()
	if w <= minInterferenceSize || h <= minInterferenceSize {
		return
	}
	palette := PaletteFor(dark)

	maxRadius := (min(w, h) - 1) / 2
	for i := 0; i < n; i++ {
		r := min(ellipseMinRadius+rndInclusive(rng, ellipseRadiusSpan), maxRadius)
		cx := r + rndInclusive(rng, w-1-2*r)
		cy := r + rndInclusive(rng, h-1-2*r)
		canvas.DrawHollowEllipse(float64(cx), float64(cy), float64(r), float64(r), palette.Pick(rng))
	}
}
