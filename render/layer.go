package render

import (
	"errors"
	"fmt"
	"gocv.io/x/gocv"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"image"
)

var (
	// ErrEmptyLayer is returned when a label layer is updated with a size
	// that has no area
	ErrEmptyLayer = errors.New("label layer has no area")
	// ErrLayerDisposed is returned when updating a disposed label layer
	ErrLayerDisposed = errors.New("label layer disposed")
)

// LabelFunc draws text labels onto the label layer's backing image using
// the given type face
type LabelFunc func(dst *image.RGBA, face font.Face)

// LabelLayer is a cached overlay holding rasterised text labels.  Labels are
// drawn in source image coordinates and composited onto the render surface
// through a Viewport.  The layer is only reallocated when the frame size or
// type face changes.
type LabelLayer struct {
	// img is the backing store labels are drawn onto
	img *image.RGBA
	// face is the type face the backing store was allocated for
	face font.Face
	// pass is the compose pass that last updated the layer
	pass    uint64
	started bool
	// content is true if labels have been drawn since the last erase
	content bool
	// scaled caches img resized to the viewport it was last drawn with
	scaled *image.RGBA
	// dirty is set when img has changed since scaled was built
	dirty    bool
	disposed bool
}

// NewLabelLayer returns an unallocated label layer.  The backing store is
// created on the first Update.
func NewLabelLayer() *LabelLayer {
	return &LabelLayer{}
}

// Update draws labels for the compose pass onto the layer.  The backing store
// is reallocated if it does not exist or size or face differ from those it
// was allocated with.  The first update of a new pass erases the labels of
// the previous pass, further updates with the same pass are additive so the
// labels of every pose in a frame accumulate on the layer.
func (l *LabelLayer) Update(pass uint64, size image.Point, face font.Face, fn LabelFunc) error {

	if l.disposed {
		return ErrLayerDisposed
	}

	if size.X <= 0 || size.Y <= 0 {
		// nothing can be drawn this frame
		l.erase()
		return fmt.Errorf("%w: %dx%d", ErrEmptyLayer, size.X, size.Y)
	}

	if l.img == nil || l.img.Bounds().Size() != size || l.face != face {
		l.img = image.NewRGBA(image.Rectangle{Max: size})
		l.face = face
		l.scaled = nil
		l.content = false

	} else if !l.started || pass != l.pass {
		l.erase()
	}

	l.pass = pass
	l.started = true

	if fn != nil {
		fn(l.img, face)
	}

	l.content = true
	l.dirty = true

	return nil
}

// Clear removes all labels but keeps the layer allocated.  Drawing a cleared
// layer does nothing.
func (l *LabelLayer) Clear() {
	if l.disposed {
		return
	}
	l.erase()
}

// erase zeros the backing store if it holds any labels
func (l *LabelLayer) erase() {
	if l.img == nil || !l.content {
		return
	}

	draw.Draw(l.img, l.img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	l.content = false
	l.dirty = true
}

// Draw composites the layer labels onto target at the position and scale
// the viewport displays the source image with
func (l *LabelLayer) Draw(target *gocv.Mat, vp *Viewport) error {

	if l.disposed || l.img == nil || !l.content {
		return nil
	}

	if target == nil || target.Empty() || vp == nil || vp.Empty() {
		return nil
	}

	if target.Channels() != 3 {
		return fmt.Errorf("label layer requires a 3 channel target, got %d", target.Channels())
	}

	raster := l.raster(vp)
	rect := vp.Rect()

	// get dimensions
	width := target.Cols()
	height := target.Rows()

	// only blend the part of the display rect inside the target
	clip := rect.Intersect(image.Rect(0, 0, width, height))

	if clip.Empty() {
		return nil
	}

	// it is too slow to manipulate pixel by pixel using GoCV due to slowness
	// over CGO.  So we copy the bytes from the target and blend the bytes
	// directly before copying back to a Mat
	imgData := target.ToBytes()

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {

			// raster pixels are premultiplied RGBA
			i := raster.PixOffset(x-rect.Min.X, y-rect.Min.Y)
			a := uint32(raster.Pix[i+3])

			if a == 0 {
				continue
			}

			// calculate position in the byte slice, target is BGR
			pixelPos := y*width*3 + x*3
			inv := 255 - a

			imgData[pixelPos+0] = uint8(uint32(raster.Pix[i+2]) + uint32(imgData[pixelPos+0])*inv/255)
			imgData[pixelPos+1] = uint8(uint32(raster.Pix[i+1]) + uint32(imgData[pixelPos+1])*inv/255)
			imgData[pixelPos+2] = uint8(uint32(raster.Pix[i+0]) + uint32(imgData[pixelPos+2])*inv/255)
		}
	}

	// copy back to the original mat
	tmpImg, err := gocv.NewMatFromBytes(height, width, target.Type(), imgData)

	if err != nil {
		return fmt.Errorf("error creating label Mat: %w", err)
	}

	defer tmpImg.Close()
	tmpImg.CopyTo(target)

	return nil
}

// raster returns the layer scaled to the viewport display size.  The scaled
// copy is cached until the labels or the display size change.
func (l *LabelLayer) raster(vp *Viewport) *image.RGBA {

	size := vp.Rect().Size()

	if size == l.img.Bounds().Size() {
		return l.img
	}

	if l.scaled == nil || l.scaled.Bounds().Size() != size {
		l.scaled = image.NewRGBA(image.Rectangle{Max: size})
		l.dirty = true
	}

	if l.dirty {
		draw.ApproxBiLinear.Scale(l.scaled, l.scaled.Bounds(), l.img, l.img.Bounds(), draw.Src, nil)
		l.dirty = false
	}

	return l.scaled
}

// Dispose releases the layer buffers.  It is safe to call more than once and
// a disposed layer is never drawn.
func (l *LabelLayer) Dispose() {
	if l.disposed {
		return
	}

	l.disposed = true
	l.img = nil
	l.scaled = nil
	l.face = nil
	l.content = false
}

// Size returns the dimensions of the backing store, or a zero point if the
// layer is not allocated
func (l *LabelLayer) Size() image.Point {
	if l.img == nil {
		return image.Point{}
	}
	return l.img.Bounds().Size()
}

// Empty returns true if the layer holds no labels to draw
func (l *LabelLayer) Empty() bool {
	return l.img == nil || !l.content
}

// Disposed returns true once Dispose has been called
func (l *LabelLayer) Disposed() bool {
	return l.disposed
}
