package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/swdee/go-poseviz"
	"github.com/swdee/go-poseviz/config"
	"github.com/swdee/go-poseviz/render"
	"github.com/swdee/go-poseviz/visualizer"
	"gocv.io/x/gocv"
)

const (
	// keys handled by the window
	keyEsc       = 27
	keyQuit      = 'q'
	keyLabels    = 'l'
	keyShrink    = '['
	keyGrow      = ']'
	minSurfaceW  = 160
	minSurfaceH  = 90
	resizeFactor = 1.25
)

// windowSurface is the render surface backed by a gocv window.  Frames are
// composited onto the target Mat which is then shown in the window.
type windowSurface struct {
	window *gocv.Window
	target gocv.Mat
	font   render.Font

	// allocated is set once target holds a Mat
	allocated bool
}

func newWindowSurface(window *gocv.Window, size image.Point, f render.Font) *windowSurface {
	s := &windowSurface{
		window: window,
		font:   f,
	}

	s.resize(size)

	return s
}

// resize reallocates the target Mat at the given size
func (s *windowSurface) resize(size image.Point) {
	if s.allocated {
		s.target.Close()
	}

	s.target = gocv.NewMatWithSize(size.Y, size.X, gocv.MatTypeCV8UC3)
	s.allocated = true
	s.window.ResizeWindow(size.X, size.Y)
}

func (s *windowSurface) size() image.Point {
	return image.Pt(s.target.Cols(), s.target.Rows())
}

func (s *windowSurface) Target() *gocv.Mat {
	return &s.target
}

func (s *windowSurface) Font() render.Font {
	return s.font
}

func (s *windowSurface) show() {
	s.window.IMShow(s.target)
}

func (s *windowSurface) Close() error {
	if !s.allocated {
		return nil
	}

	s.allocated = false
	return s.target.Close()
}

// letterboxDisplay draws the frame image letterboxed onto the render target
type letterboxDisplay struct {
	img *gocv.Mat
	vp  *render.Viewport
}

func (d *letterboxDisplay) ShowImage(img *gocv.Mat) {
	d.img = img
}

func (d *letterboxDisplay) RenderImage(target *gocv.Mat, tint color.RGBA) *render.Viewport {

	src := image.Point{}

	if d.img != nil && !d.img.Empty() {
		src = image.Pt(d.img.Cols(), d.img.Rows())
	}

	dest := image.Pt(target.Cols(), target.Rows())

	// reuse the viewport whilst sizes are unchanged
	if d.vp == nil || d.vp.SrcSize() != src || d.vp.DestSize() != dest {
		if d.vp != nil {
			d.vp.Close()
		}

		d.vp = render.NewViewport(src, dest)
	}

	if d.vp.Empty() {
		target.SetTo(gocv.NewScalar(0, 0, 0, 0))
		return d.vp
	}

	d.vp.LetterBox(*d.img, target, tint)

	return d.vp
}

func (d *letterboxDisplay) Close() error {
	if d.vp == nil {
		return nil
	}

	return d.vp.Close()
}

// trackbarToggle exposes a window trackbar with positions 0 and 1 as the
// draw labels check box
type trackbarToggle struct {
	trackbar *gocv.Trackbar
	checked  bool
	onChange func(bool)
}

func (t *trackbarToggle) SetChecked(checked bool) {
	t.checked = checked

	pos := 0
	if checked {
		pos = 1
	}

	t.trackbar.SetPos(pos)
}

func (t *trackbarToggle) OnChanged(fn func(bool)) {
	t.onChange = fn
}

// poll reports a change of the trackbar position made in the window
func (t *trackbarToggle) poll() {
	checked := t.trackbar.GetPos() > 0

	if checked != t.checked {
		t.set(checked)
	}
}

// flip toggles the check box from the keyboard
func (t *trackbarToggle) flip() {
	t.SetChecked(!t.checked)
	t.set(t.checked)
}

func (t *trackbarToggle) set(checked bool) {
	t.checked = checked

	if t.onChange != nil {
		t.onChange(checked)
	}
}

// poseSource reads frames of poses from a JSON lines file, one frame per
// line as an array of poses where null marks a missing pose
type poseSource struct {
	file    *os.File
	decoder *json.Decoder
}

func openPoseSource(path string) (*poseSource, error) {

	f, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf("error opening poses file: %w", err)
	}

	return &poseSource{
		file:    f,
		decoder: json.NewDecoder(bufio.NewReader(f)),
	}, nil
}

// next returns the poses for the next frame, each non nil pose refers to
// the given video frame.  io.EOF is returned at the end of the file.
func (p *poseSource) next(img *gocv.Mat) (poseviz.Frame, error) {

	var frame poseviz.Frame

	if err := p.decoder.Decode(&frame); err != nil {
		return nil, err
	}

	for _, pose := range frame {
		if pose != nil {
			pose.Image = img
		}
	}

	return frame, nil
}

func (p *poseSource) Close() error {
	return p.file.Close()
}

func main() {
	// console logging
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// read in cli flags
	videoFile := flag.String("v", "../data/people.mp4", "Video file to display")
	posesFile := flag.String("p", "../data/people-poses.jsonl", "JSON lines file of pose keypoints per video frame")
	outFile := flag.String("o", "", "Optional video file to save the rendered output to")

	flag.Parse()

	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.Level())

	if err := run(cfg, *videoFile, *posesFile, *outFile); err != nil {
		log.Fatal().Err(err).Msg("Pose visualizer failed")
	}
}

func run(cfg *config.Config, videoFile, posesFile, outFile string) error {

	topology, err := cfg.Topology()

	if err != nil {
		return err
	}

	lblFont, err := cfg.Font()

	if err != nil {
		log.Warn().Err(err).Msg("Using default label font")
	}

	video, err := gocv.VideoCaptureFile(videoFile)

	if err != nil {
		return fmt.Errorf("error opening video file: %w", err)
	}

	defer video.Close()

	poses, err := openPoseSource(posesFile)

	if err != nil {
		return err
	}

	defer poses.Close()

	window := gocv.NewWindow(cfg.WindowName)
	defer window.Close()

	size := image.Pt(cfg.SurfaceWidth, cfg.SurfaceHeight)
	surface := newWindowSurface(window, size, lblFont)
	defer surface.Close()

	var writer *gocv.VideoWriter

	if outFile != "" {
		writer, err = gocv.VideoWriterFile(outFile, "mp4v", float64(cfg.FPS), size.X, size.Y, true)

		if err != nil {
			return fmt.Errorf("error creating video writer: %w", err)
		}

		defer writer.Close()
	}

	display := &letterboxDisplay{}
	defer display.Close()

	opts := visualizer.DefaultOptions()
	opts.Topology = topology
	opts.Style = cfg.SkeletonStyle()
	opts.DrawLabels = cfg.DrawLabels
	opts.Logger = log.Logger

	vis := visualizer.New(display, opts)

	toggle := &trackbarToggle{
		trackbar: window.CreateTrackbar("labels", 1),
	}

	vis.Load(toggle)
	defer vis.Unload()

	vis.SurfaceReady(surface)

	img := gocv.NewMat()
	defer img.Close()

	delay := 1
	if cfg.FPS > 0 {
		delay = 1000 / cfg.FPS
	}

	frameNum := 0

	for {
		if ok := video.Read(&img); !ok || img.Empty() {
			log.Info().Int("frames", frameNum).Msg("End of video")
			return nil
		}

		frame, err := poses.next(&img)

		if errors.Is(err, io.EOF) {
			log.Info().Int("frames", frameNum).Msg("End of poses")
			return nil
		} else if err != nil {
			return fmt.Errorf("error reading poses for frame %d: %w", frameNum, err)
		}

		toggle.poll()

		vis.Show(frame)
		vis.ComposeOverlay()
		vis.RenderFrame()

		surface.show()

		if writer != nil && surface.size() == size {
			if err := writer.Write(*surface.Target()); err != nil {
				log.Warn().Err(err).Int("frame", frameNum).Msg("Error writing output frame")
			}
		}

		frameNum++

		switch window.WaitKey(delay) {
		case keyEsc, keyQuit:
			log.Info().Int("frames", frameNum).Msg("Stopped by user")
			return nil

		case keyLabels:
			toggle.flip()

		case keyShrink:
			resizeSurface(vis, surface, 1/resizeFactor)

		case keyGrow:
			resizeSurface(vis, surface, resizeFactor)
		}
	}
}

// resizeSurface recreates the render surface scaled by factor and notifies
// the visualizer
func resizeSurface(vis *visualizer.Visualizer, surface *windowSurface, factor float64) {

	cur := surface.size()
	next := image.Pt(int(float64(cur.X)*factor), int(float64(cur.Y)*factor))

	if next.X < minSurfaceW || next.Y < minSurfaceH {
		return
	}

	surface.resize(next)
	vis.SurfaceReady(surface)

	log.Debug().Int("width", next.X).Int("height", next.Y).Msg("Render surface resized")
}
