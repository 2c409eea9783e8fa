package captcha

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/raster"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// ellipseKappa approximates a quarter ellipse with one cubic Bézier segment.
const ellipseKappa = 0.5522847498

// strokeWidth of interference curves, in 26.6 fixed point (1.5px).
const strokeWidth = fixed.Int26_6(96)

// Canvas is the mutable raster a single generation call draws on.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a width x height buffer filled with the mode background.
func NewCanvas(width, height int, dark bool) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: BackgroundFor(dark)}, image.Point{}, draw.Src)
	return &Canvas{img: img}
}

func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image exposes the underlying buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// At returns the colour at (x, y).
func (c *Canvas) At(x, y int) color.RGBA { return c.img.RGBAAt(x, y) }

// Set writes a pixel; out of bounds writes are ignored.
func (c *Canvas) Set(x, y int, col color.RGBA) { c.img.SetRGBA(x, y, col) }

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	dup := image.NewRGBA(c.img.Bounds())
	copy(dup.Pix, c.img.Pix)
	return &Canvas{img: dup}
}

// DrawText draws text with its top edge at y, using size pixels per em.
func (c *Canvas) DrawText(text string, x, y int, f *truetype.Font, size float64, col color.Color) error {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(c.img.Bounds())
	ctx.SetDst(c.img)
	ctx.SetSrc(image.NewUniform(col))

	_, err := ctx.DrawString(text, freetype.Pt(x, y+fontAscent(f, size)))
	return err
}

// DrawCubicBezier strokes the curve from start to end with control points c1, c2.
func (c *Canvas) DrawCubicBezier(start, end, c1, c2 [2]float64, col color.Color) {
	var p polyline
	p.start(start)
	p.cubic(c1, c2, end)
	c.stroke(p.path, col)
}

// DrawHollowEllipse strokes the outline of an axis-aligned ellipse.
func (c *Canvas) DrawHollowEllipse(cx, cy, rx, ry float64, col color.Color) {
	kx, ky := rx*ellipseKappa, ry*ellipseKappa

	var p polyline
	p.start([2]float64{cx + rx, cy})
	p.cubic([2]float64{cx + rx, cy + ky}, [2]float64{cx + kx, cy + ry}, [2]float64{cx, cy + ry})
	p.cubic([2]float64{cx - kx, cy + ry}, [2]float64{cx - rx, cy + ky}, [2]float64{cx - rx, cy})
	p.cubic([2]float64{cx - rx, cy - ky}, [2]float64{cx - kx, cy - ry}, [2]float64{cx, cy - ry})
	p.cubic([2]float64{cx + kx, cy - ry}, [2]float64{cx + rx, cy - ky}, [2]float64{cx + rx, cy})
	c.stroke(p.path, col)
}

// raster.Stroke panics on cubic segments, so cubics are flattened into
// cubicSteps straight pieces before stroking.
const cubicSteps = 16

// polyline 记录当前点，把三次曲线展开为折线
type polyline struct {
	path raster.Path
	cur  [2]float64
}

func (p *polyline) start(a [2]float64) {
	p.path.Start(pt(a[0], a[1]))
	p.cur = a
}

func (p *polyline) cubic(c1, c2, end [2]float64) {
	p0 := p.cur
	for i := 1; i <= cubicSteps; i++ {
		t := float64(i) / cubicSteps
		u := 1 - t
		a, b, cc, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		x := a*p0[0] + b*c1[0] + cc*c2[0] + d*end[0]
		y := a*p0[1] + b*c1[1] + cc*c2[1] + d*end[1]
		p.path.Add1(pt(x, y))
	}
	p.cur = end
}

func (c *Canvas) stroke(path raster.Path, col color.Color) {
	r := raster.NewRasterizer(c.Width(), c.Height())
	raster.Stroke(r, path, strokeWidth, raster.RoundCapper, raster.RoundJoiner)

	painter := raster.NewRGBAPainter(c.img)
	painter.SetColor(col)
	r.Rasterize(painter)
}

func pt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}
