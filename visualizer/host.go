package visualizer

import (
	"github.com/swdee/go-poseviz"
	"github.com/swdee/go-poseviz/render"
	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"image"
	"image/color"
)

// ImageDisplay is the host component that displays the base image of each
// frame, including any zoom/pan of the canvas
type ImageDisplay interface {
	// ShowImage sets the image to display, nil displays nothing
	ShowImage(img *gocv.Mat)
	// RenderImage draws the current image onto target tinted with the given
	// color and returns the viewport mapping image coordinates onto target.
	// The viewport is nil or empty when there is no image.
	RenderImage(target *gocv.Mat, tint color.RGBA) *render.Viewport
}

// Surface is the host rendering surface overlays are drawn on
type Surface interface {
	// Target returns the active render target
	Target() *gocv.Mat
	// Font returns the current canvas font used for labels
	Font() render.Font
}

// ToggleControl is a checkable UI control bound to the draw labels state
type ToggleControl interface {
	SetChecked(checked bool)
	// OnChanged registers fn to be called when the user changes the check
	// state of the control
	OnChanged(fn func(checked bool))
}

// Layer is a cached overlay holding rasterised labels, see render.LabelLayer
type Layer interface {
	Update(pass uint64, size image.Point, face font.Face, fn render.LabelFunc) error
	Clear()
	Draw(target *gocv.Mat, vp *render.Viewport) error
	Dispose()
}

// Painter issues the drawing primitives for a single pose
type Painter interface {
	// Skeleton draws the pose keypoints and bones onto target
	Skeleton(target *gocv.Mat, pose *poseviz.Pose, vp *render.Viewport, style render.SkeletonStyle)
	// Labels draws the pose body part labels onto the label layer image.
	// Index is the position of the pose in its frame.
	Labels(dst *image.RGBA, f render.Font, pose *poseviz.Pose, threshold float32, index int)
}

// skeletonPainter is the Painter drawing with the render package
type skeletonPainter struct {
	topology poseviz.Topology
}

// NewPainter returns a Painter that draws poses with the given skeleton
// topology
func NewPainter(topology poseviz.Topology) Painter {
	return &skeletonPainter{topology: topology}
}

func (p *skeletonPainter) Skeleton(target *gocv.Mat, pose *poseviz.Pose,
	vp *render.Viewport, style render.SkeletonStyle) {
	render.Skeleton(target, pose, p.topology, vp, style)
}

func (p *skeletonPainter) Labels(dst *image.RGBA, f render.Font,
	pose *poseviz.Pose, threshold float32, index int) {
	render.Labels(dst, f, pose, threshold, render.PoseColor(index))
}
