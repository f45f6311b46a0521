package render

import (
	"gocv.io/x/gocv"
	"image"
	"image/color"
)

// Viewport maps image coordinates onto the render surface the image is
// displayed on.  The image is letterboxed, scaled to fit the surface whilst
// maintaining its aspect and centered with padding.
type Viewport struct {
	// srcWidth is the width of the source image
	srcWidth int
	// srcHeight is the height of the source image
	srcHeight int
	// destWidth is the width of the render surface
	destWidth int
	// destHeight is the height of the render surface
	destHeight int
	// tempMat is a Mat used during the letterbox resize
	tempMat gocv.Mat
	// letterbox parameters used in scaling
	xPad  int
	yPad  int
	scale float32
	// resize dimensions
	resizeW int
	resizeH int
}

// NewViewport returns a viewport for displaying an image of size src on a
// surface of size dest
func NewViewport(src, dest image.Point) *Viewport {
	v := &Viewport{
		srcWidth:   src.X,
		srcHeight:  src.Y,
		destWidth:  dest.X,
		destHeight: dest.Y,
		tempMat:    gocv.NewMat(),
	}

	// precalculate scaling dimensions
	v.preCalc()

	return v
}

// Close frees memory allocated during the letterbox resize
func (v *Viewport) Close() error {
	return v.tempMat.Close()
}

// preCalc the scaling factors for source and destination sizes
func (v *Viewport) preCalc() {

	if v.srcWidth <= 0 || v.srcHeight <= 0 || v.destWidth <= 0 || v.destHeight <= 0 {
		// nothing can be displayed
		v.scale = 1
		return
	}

	v.resizeW = v.destWidth
	v.resizeH = v.destHeight

	scaleW := float32(v.destWidth) / float32(v.srcWidth)
	scaleH := float32(v.destHeight) / float32(v.srcHeight)
	v.scale = scaleH

	if scaleW < scaleH {
		v.scale = scaleW
		v.resizeH = int(float32(v.srcHeight) * v.scale)
	} else {
		v.resizeW = int(float32(v.srcWidth) * v.scale)
	}

	v.yPad = (v.destHeight - v.resizeH) / 2 // padding height / 2
	v.xPad = (v.destWidth - v.resizeW) / 2  // padding width / 2
}

// LetterBox resizes the source image onto dest at the surface size whilst
// maintaining image aspect.  Color is that used for letter box padding.
func (v *Viewport) LetterBox(src gocv.Mat, dest *gocv.Mat, color color.RGBA) {

	if v.Empty() {
		return
	}

	if v.Identity() {
		src.CopyTo(dest)
		return
	}

	gocv.Resize(src, &v.tempMat, image.Pt(v.resizeW, v.resizeH),
		0, 0, gocv.InterpolationArea)

	gocv.CopyMakeBorder(v.tempMat, dest, v.yPad, v.destHeight-v.resizeH-v.yPad,
		v.xPad, v.destWidth-v.resizeW-v.xPad, gocv.BorderConstant, color)
}

// Point maps the image coordinate x,y to the render surface
func (v *Viewport) Point(x, y float32) image.Point {
	return image.Pt(
		int(x*v.scale+0.5)+v.xPad,
		int(y*v.scale+0.5)+v.yPad,
	)
}

// Rect returns the region of the render surface the image is displayed in
func (v *Viewport) Rect() image.Rectangle {
	return image.Rect(v.xPad, v.yPad, v.xPad+v.resizeW, v.yPad+v.resizeH)
}

// Empty returns true if either the image or the surface has no area
func (v *Viewport) Empty() bool {
	return v.resizeW <= 0 || v.resizeH <= 0
}

// Identity returns true if the image is displayed unscaled at the surface
// origin
func (v *Viewport) Identity() bool {
	return v.srcWidth == v.destWidth && v.srcHeight == v.destHeight
}

// ScaleFactor returns the scale factor from image to surface
func (v *Viewport) ScaleFactor() float32 {
	return v.scale
}

// XPad returns the x padding used in letterbox resize
func (v *Viewport) XPad() int {
	return v.xPad
}

// YPad returns the y padding used in letterbox resize
func (v *Viewport) YPad() int {
	return v.yPad
}

// SrcSize returns the size of the source image
func (v *Viewport) SrcSize() image.Point {
	return image.Pt(v.srcWidth, v.srcHeight)
}

// DestSize returns the size of the render surface
func (v *Viewport) DestSize() image.Point {
	return image.Pt(v.destWidth, v.destHeight)
}
