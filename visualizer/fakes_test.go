package visualizer

import (
	"github.com/swdee/go-poseviz"
	"github.com/swdee/go-poseviz/render"
	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"image"
	"image/color"
)

// fakeDisplay records the images it is asked to show
type fakeDisplay struct {
	shown    []*gocv.Mat
	renders  int
	viewport *render.Viewport
}

func (d *fakeDisplay) ShowImage(img *gocv.Mat) { d.shown = append(d.shown, img) }

func (d *fakeDisplay) RenderImage(*gocv.Mat, color.RGBA) *render.Viewport {
	d.renders++
	return d.viewport
}

// lastShown returns the most recent image passed to ShowImage
func (d *fakeDisplay) lastShown() *gocv.Mat {
	if len(d.shown) == 0 {
		return nil
	}
	return d.shown[len(d.shown)-1]
}

type fakeSurface struct {
	target *gocv.Mat
}

func (s *fakeSurface) Target() *gocv.Mat { return s.target }
func (s *fakeSurface) Font() render.Font { return render.DefaultFont() }

// fakeControl is a check button the test can click
type fakeControl struct {
	checked bool
	changed func(bool)
}

func (c *fakeControl) SetChecked(checked bool) { c.checked = checked }
func (c *fakeControl) OnChanged(fn func(bool)) { c.changed = fn }

func (c *fakeControl) click() {
	c.checked = !c.checked
	if c.changed != nil {
		c.changed(c.checked)
	}
}

// fakeLayer records the operations issued on the label layer
type fakeLayer struct {
	ops      []string
	passes   []uint64
	disposed int
}

func (l *fakeLayer) Update(pass uint64, size image.Point, face font.Face, fn render.LabelFunc) error {
	l.ops = append(l.ops, "update")
	l.passes = append(l.passes, pass)
	fn(image.NewRGBA(image.Rectangle{Max: size}), face)
	return nil
}

func (l *fakeLayer) Clear() { l.ops = append(l.ops, "clear") }

func (l *fakeLayer) Draw(*gocv.Mat, *render.Viewport) error {
	l.ops = append(l.ops, "draw")
	return nil
}

func (l *fakeLayer) Dispose() { l.disposed++ }

// count returns the number of times op was issued
func (l *fakeLayer) count(op string) int {
	n := 0
	for _, o := range l.ops {
		if o == op {
			n++
		}
	}
	return n
}

// fakePainter records the poses drawn.  Labels mark pixel (index,0) of the
// layer so tests can see which poses a layer holds labels for.
type fakePainter struct {
	skeletons  []*poseviz.Pose
	labels     []*poseviz.Pose
	labelSizes []image.Point
	styles     []render.SkeletonStyle
}

func (p *fakePainter) Skeleton(_ *gocv.Mat, pose *poseviz.Pose, _ *render.Viewport, style render.SkeletonStyle) {
	p.skeletons = append(p.skeletons, pose)
	p.styles = append(p.styles, style)
}

func (p *fakePainter) Labels(dst *image.RGBA, _ render.Font, pose *poseviz.Pose, _ float32, index int) {
	p.labels = append(p.labels, pose)
	p.labelSizes = append(p.labelSizes, dst.Bounds().Size())
	dst.SetRGBA(index, 0, color.RGBA{R: 255, A: 255})
}
