package render

import (
	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"image"
	"image/color"
)

// pixelAt returns the BGR values of the pixel at x,y of a 3 channel Mat
func pixelAt(img gocv.Mat, x, y int) [3]uint8 {
	data := img.ToBytes()
	pos := y*img.Cols()*3 + x*3
	return [3]uint8{data[pos], data[pos+1], data[pos+2]}
}

// isBlack checks if all channels of a pixel are zero
func isBlack(px [3]uint8) bool {
	return px[0] == 0 && px[1] == 0 && px[2] == 0
}

// newTarget returns a black BGR Mat of the given size
func newTarget(width, height int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8UC3)
}

// fillRect returns a LabelFunc that draws an opaque rectangle
func fillRect(rect image.Rectangle, clr color.RGBA) LabelFunc {
	return func(dst *image.RGBA, _ font.Face) {
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				dst.SetRGBA(x, y, clr)
			}
		}
	}
}

// countInked returns the number of pixels with non zero alpha in rect
func countInked(img *image.RGBA, rect image.Rectangle) int {
	n := 0
	rect = rect.Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}
