package image

import (
	"image"
	"image/color"
)

// createTestImage 生成带渐变的测试图
func createTestImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 255 / max(width, 1)), uint8(y * 255 / max(height, 1)), 128, 255})
		}
	}
	return img
}
