package visualizer

import (
	"github.com/rs/zerolog"
	"github.com/swdee/go-poseviz"
	"github.com/swdee/go-poseviz/render"
	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"image"
)

// State of the visualizer lifecycle
type State int

const (
	Unloaded State = iota
	Loaded
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	default:
		return "unloaded"
	}
}

// Options defines the configuration of a Visualizer
type Options struct {
	// Topology is the skeleton drawn for each pose
	Topology poseviz.Topology
	// Style of the skeleton.  The LineType is switched to gocv.LineAA for
	// point smoothing once the render surface is ready
	Style render.SkeletonStyle
	// DrawLabels is the initial state of the draw labels toggle
	DrawLabels bool
	// Logger receives lifecycle and degraded rendering messages
	Logger zerolog.Logger
	// NewLayer creates the label layer when the render surface is ready.
	// Defaults to render.NewLabelLayer
	NewLayer func() Layer
	// Painter draws skeletons and labels.  Defaults to NewPainter(Topology)
	Painter Painter
}

// DefaultOptions returns the default visualizer options using the COCO
// skeleton with labels drawn
func DefaultOptions() Options {
	return Options{
		Topology:   poseviz.COCOTopology(),
		Style:      render.DefaultSkeletonStyle(),
		DrawLabels: true,
		Logger:     zerolog.Nop(),
	}
}

// Visualizer composites the poses of each frame over the frame image.  All
// methods must be called from the render thread, per frame in the order
// Show, ComposeOverlay, RenderFrame.
type Visualizer struct {
	display  ImageDisplay
	surface  Surface
	painter  Painter
	newLayer func() Layer
	style    render.SkeletonStyle
	log      zerolog.Logger

	state   State
	ready   bool
	initial bool
	toggle  *ToggleState
	layer   Layer
	// frame holds the poses of the frame being displayed
	frame poseviz.Frame
	// pass counts compose passes so the label layer knows when a new frame
	// of labels starts
	pass uint64
}

// New returns a Visualizer that displays frame images with display
func New(display ImageDisplay, opts Options) *Visualizer {

	v := &Visualizer{
		display:  display,
		painter:  opts.Painter,
		newLayer: opts.NewLayer,
		style:    opts.Style,
		log:      opts.Logger,
		initial:  opts.DrawLabels,
		toggle:   NewToggleState(opts.DrawLabels),
	}

	if v.painter == nil {
		v.painter = NewPainter(opts.Topology)
	}

	if v.newLayer == nil {
		v.newLayer = func() Layer { return render.NewLabelLayer() }
	}

	return v
}

// Load moves the visualizer to the Loaded state and binds the draw labels
// toggle to control.  Render resources are not created until SurfaceReady.
func (v *Visualizer) Load(control ToggleControl) {

	if v.state == Loaded {
		return
	}

	v.toggle = NewToggleState(v.initial)
	v.toggle.Bind(control)
	v.state = Loaded

	v.log.Info().Bool("draw_labels", v.toggle.Enabled()).Msg("Pose visualizer loaded")
}

// SurfaceReady is called by the host once the render surface exists.  It
// creates the label layer and enables point smoothing.
func (v *Visualizer) SurfaceReady(surface Surface) {

	if v.state != Loaded {
		v.log.Warn().Msg("Render surface ready before visualizer loaded, ignoring")
		return
	}

	if surface == nil {
		return
	}

	// surface was recreated by the host
	if v.layer != nil {
		v.layer.Dispose()
	}

	v.surface = surface
	v.layer = v.newLayer()
	v.style.LineType = gocv.LineAA
	v.ready = true

	v.log.Debug().Msg("Render surface ready")
}

// Show sets the poses of the frame to display.  The first pose's image is
// passed to the image display, an empty frame displays no image.
func (v *Visualizer) Show(frame poseviz.Frame) {
	v.frame = frame
	v.display.ShowImage(frame.Image())
}

// ComposeOverlay updates the label layer for the current frame.  Each non
// nil pose adds its labels to the layer if drawing labels is enabled,
// otherwise the layer is cleared.
func (v *Visualizer) ComposeOverlay() {

	if v.state != Loaded || !v.ready || len(v.frame) == 0 {
		return
	}

	v.pass++
	drawLabels := v.toggle.Enabled()

	for i, pose := range v.frame {
		if pose == nil {
			continue
		}

		if !drawLabels {
			v.layer.Clear()
			continue
		}

		lblFont := v.surface.Font()

		err := v.layer.Update(v.pass, pose.Size(), lblFont.Face, func(dst *image.RGBA, face font.Face) {
			v.painter.Labels(dst, lblFont.WithFace(face), pose, v.style.Threshold, i)
		})

		if err != nil {
			v.log.Debug().Err(err).Int("pose", i).Msg("Skipping pose labels")
		}
	}
}

// RenderFrame draws the frame image followed by the skeleton and labels of
// each non nil pose, in frame order
func (v *Visualizer) RenderFrame() {

	if v.state != Loaded || !v.ready {
		return
	}

	target := v.surface.Target()

	if target == nil {
		return
	}

	vp := v.display.RenderImage(target, render.White)

	if len(v.frame) == 0 {
		return
	}

	for i, pose := range v.frame {
		if pose == nil {
			continue
		}

		v.painter.Skeleton(target, pose, vp, v.style)

		if err := v.layer.Draw(target, vp); err != nil {
			v.log.Debug().Err(err).Int("pose", i).Msg("Skipping label layer")
		}
	}
}

// Unload releases the label layer and returns the visualizer to the
// Unloaded state.  It is safe to call without a surface ever becoming ready
// and more than once.
func (v *Visualizer) Unload() {

	if v.layer != nil {
		v.layer.Dispose()
		v.layer = nil
	}

	wasLoaded := v.state == Loaded

	v.ready = false
	v.surface = nil
	v.frame = nil
	v.state = Unloaded

	if wasLoaded {
		v.log.Info().Msg("Pose visualizer unloaded")
	}
}

// DrawLabels returns whether body part labels are currently drawn
func (v *Visualizer) DrawLabels() bool {
	return v.toggle.Enabled()
}

// SetDrawLabels changes whether body part labels are drawn, keeping the
// bound control in sync.  The change applies from the next compose pass.
// Called before Load it sets the state the toggle is loaded with.
func (v *Visualizer) SetDrawLabels(on bool) {
	if v.state != Loaded {
		v.initial = on
	}

	v.toggle.Apply(on)
}

// State returns the lifecycle state
func (v *Visualizer) State() State {
	return v.state
}

// Ready returns true once the render surface is ready and until unload
func (v *Visualizer) Ready() bool {
	return v.ready
}
