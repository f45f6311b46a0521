package render

import (
	"fmt"
	"github.com/swdee/go-poseviz"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"image"
	"image/color"
)

// textLabel defines where a text label should be rendered on the label layer
type textLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// Labels renders the body part name of every keypoint scoring at least
// threshold next to its position, and a header label with the pose score
// above the pose bounds.  Coordinates are those of the source image.
func Labels(dst *image.RGBA, f Font, pose *poseviz.Pose, threshold float32,
	headerClr color.RGBA) {

	if dst == nil || pose == nil || f.Face == nil {
		return
	}

	metrics := f.Face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	// keep a record of all labels so the header is drawn last and remains
	// on top of overlapping keypoint labels
	labels := make([]textLabel, 0, len(pose.KeyPoints)+1)

	for _, kp := range pose.KeyPoints {
		if !kp.Part.Valid() || kp.Score < threshold {
			continue
		}

		text := kp.Part.String()
		width := font.MeasureString(f.Face, text).Ceil()
		x, y := int(kp.X), int(kp.Y)

		// Calculate the alignment of text label to the keypoint
		var labelPosition image.Point

		switch f.Alignment {
		case Center:
			labelPosition = image.Pt(x-width/2, y-f.Offset-descent-f.BottomPad)

		case Right:
			labelPosition = image.Pt(x-f.Offset-width-f.RightPad, y+ascent/2)

		case Left:
			fallthrough
		default:
			labelPosition = image.Pt(x+f.Offset+f.LeftPad, y+ascent/2)
		}

		labels = append(labels, newTextLabel(f, text, labelPosition, width,
			ascent, descent, f.Background))
	}

	// header label placed above the pose bounding box
	if len(labels) > 0 {
		bounds := pose.Bounds(threshold)
		text := fmt.Sprintf("pose %.2f", pose.Score())
		width := font.MeasureString(f.Face, text).Ceil()

		var x int

		switch f.Alignment {
		case Center:
			x = (bounds.Min.X+bounds.Max.X)/2 - width/2
		case Right:
			x = bounds.Max.X - width - f.RightPad
		default:
			x = bounds.Min.X + f.LeftPad
		}

		y := bounds.Min.Y - f.Offset - descent - f.BottomPad

		// keep the header inside the layer when the pose touches the top edge
		if y-ascent-f.TopPad < dst.Bounds().Min.Y {
			y = bounds.Min.Y + ascent + f.TopPad
		}

		labels = append(labels, newTextLabel(f, text, image.Pt(x, y), width,
			ascent, descent, headerClr))
	}

	for _, lbl := range labels {
		// draw box text gets written on
		draw.Draw(dst, lbl.rect, image.NewUniform(lbl.clr), image.Point{}, draw.Over)

		// draw the label over box
		dr := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(f.Color),
			Face: f.Face,
			Dot:  fixed.P(lbl.textPos.X, lbl.textPos.Y),
		}
		dr.DrawString(lbl.text)
	}
}

// newTextLabel calculates the background box of text drawn with its
// baseline starting at pos
func newTextLabel(f Font, text string, pos image.Point, width, ascent,
	descent int, clr color.RGBA) textLabel {

	return textLabel{
		rect: image.Rect(pos.X-f.LeftPad, pos.Y-ascent-f.TopPad,
			pos.X+width+f.RightPad, pos.Y+descent+f.BottomPad),
		clr:     clr,
		text:    text,
		textPos: pos,
	}
}
