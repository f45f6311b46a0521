package poseviz

import (
	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"image"
	"math"
)

// KeyPoint is a labeled body part position with a confidence score
type KeyPoint struct {
	// Part is the body part this keypoint locates
	Part BodyPart `json:"part"`
	// X and Y are the sub-pixel coordinates in the source image
	X float32 `json:"x"`
	Y float32 `json:"y"`
	// Score is the confidence of the keypoint in the range 0 to 1
	Score float32 `json:"score"`
}

// Pose is one detected subject's set of keypoints for a single frame.  It
// must not be retained after the frame that produced it has been rendered.
type Pose struct {
	// KeyPoints are the detected keypoints, normally one per body part
	KeyPoints []KeyPoint `json:"keypoints"`
	// Image is the source frame the pose was detected in
	Image *gocv.Mat `json:"-"`
}

// Size returns the dimensions of the source image, or a zero point if the
// pose has no image attached
func (p *Pose) Size() image.Point {
	if p == nil || p.Image == nil || p.Image.Empty() {
		return image.Point{}
	}
	return image.Pt(p.Image.Cols(), p.Image.Rows())
}

// KeyPoint returns the keypoint for the given body part
func (p *Pose) KeyPoint(part BodyPart) (KeyPoint, bool) {
	if p == nil {
		return KeyPoint{}, false
	}

	for _, kp := range p.KeyPoints {
		if kp.Part == part {
			return kp, true
		}
	}

	return KeyPoint{}, false
}

// Bounds returns the bounding box around all keypoints with a score of at
// least threshold.  An empty rectangle is returned if no keypoint qualifies.
func (p *Pose) Bounds(threshold float32) image.Rectangle {
	if p == nil {
		return image.Rectangle{}
	}

	xs := make([]float64, 0, len(p.KeyPoints))
	ys := make([]float64, 0, len(p.KeyPoints))

	for _, kp := range p.KeyPoints {
		if kp.Score < threshold {
			continue
		}
		xs = append(xs, float64(kp.X))
		ys = append(ys, float64(kp.Y))
	}

	if len(xs) == 0 {
		return image.Rectangle{}
	}

	return image.Rect(
		int(math.Floor(floats.Min(xs))),
		int(math.Floor(floats.Min(ys))),
		int(math.Ceil(floats.Max(xs))),
		int(math.Ceil(floats.Max(ys))),
	)
}

// Score returns the mean confidence over all keypoints of the pose
func (p *Pose) Score() float32 {
	if p == nil || len(p.KeyPoints) == 0 {
		return 0
	}

	scores := make([]float64, len(p.KeyPoints))

	for i, kp := range p.KeyPoints {
		scores[i] = float64(kp.Score)
	}

	return float32(stat.Mean(scores, nil))
}

// Frame is the collection of poses detected in a single frame.  It may be
// empty and may contain nil entries for detection slots without a valid pose.
type Frame []*Pose

// Image returns the source image of the first non nil pose in the frame,
// or nil if the frame holds no pose
func (f Frame) Image() *gocv.Mat {
	for _, pose := range f {
		if pose != nil {
			return pose.Image
		}
	}
	return nil
}

// Poses returns the number of non nil poses in the frame
func (f Frame) Poses() int {
	n := 0
	for _, pose := range f {
		if pose != nil {
			n++
		}
	}
	return n
}
