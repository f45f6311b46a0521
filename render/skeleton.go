package render

import (
	"github.com/swdee/go-poseviz"
	"gocv.io/x/gocv"
)

// SkeletonStyle defines the parameters used for rendering a pose skeleton
type SkeletonStyle struct {
	// Threshold is the minimum keypoint score for a joint to be drawn.  A bone
	// is only drawn if the keypoints at both ends reach the threshold
	Threshold float32
	// PointRadius is the radius of the circle drawn at each joint
	PointRadius int
	// LineThickness of the bones
	LineThickness int
	// LineType used for joints, set to gocv.LineAA for point smoothing
	LineType gocv.LineType
}

// DefaultSkeletonStyle returns default skeleton style settings
func DefaultSkeletonStyle() SkeletonStyle {
	return SkeletonStyle{
		Threshold:     0.2,
		PointRadius:   3,
		LineThickness: 2,
		LineType:      gocv.Line8,
	}
}

// Skeleton renders the keypoints of the given pose and the bones between
// them onto img.  Keypoint coordinates are mapped through the viewport so
// they line up with the displayed image.
func Skeleton(img *gocv.Mat, pose *poseviz.Pose, topology poseviz.Topology,
	vp *Viewport, style SkeletonStyle) {

	if pose == nil || img == nil || vp == nil || vp.Empty() {
		return
	}

	// index the visible keypoints by body part
	var visible [poseviz.BodyPartsTotal]*poseviz.KeyPoint

	for i := range pose.KeyPoints {
		kp := &pose.KeyPoints[i]

		if !kp.Part.Valid() || kp.Score < style.Threshold {
			continue
		}

		visible[kp.Part] = kp
	}

	// draw skeleton lines
	for j, bone := range topology.Bones {
		if !bone.From.Valid() || !bone.To.Valid() {
			continue
		}

		from := visible[bone.From]
		to := visible[bone.To]

		if from == nil || to == nil {
			continue
		}

		gocv.Line(img, vp.Point(from.X, from.Y), vp.Point(to.X, to.Y),
			limbColor(j), style.LineThickness)
	}

	// draw circles at skeleton joints
	for part, kp := range visible {
		if kp == nil {
			continue
		}

		gocv.CircleWithParams(img, vp.Point(kp.X, kp.Y), style.PointRadius,
			keyPointColor(part), -1, style.LineType, 0)
	}
}
