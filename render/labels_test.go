package render

import (
	"github.com/swdee/go-poseviz"
	"image"
	"testing"
)

func TestLabels(t *testing.T) {

	dst := image.NewRGBA(image.Rect(0, 0, 300, 300))

	pose := &poseviz.Pose{
		KeyPoints: []poseviz.KeyPoint{
			{Part: poseviz.Nose, X: 100, Y: 150, Score: 0.9},
			{Part: poseviz.LeftHip, X: 120, Y: 250, Score: 0.8},
			{Part: poseviz.RightEye, X: 250, Y: 40, Score: 0.05},
		},
	}

	Labels(dst, DefaultFont(), pose, 0.2, PoseColor(0))

	// nose label is drawn to the right of the keypoint
	if countInked(dst, image.Rect(100, 140, 160, 160)) == 0 {
		t.Errorf("expected nose label next to keypoint")
	}

	// right eye is below threshold
	if countInked(dst, image.Rect(240, 30, 300, 50)) != 0 {
		t.Errorf("expected no label for low confidence keypoint")
	}

	// header sits above the bounds of the visible keypoints
	if countInked(dst, image.Rect(100, 110, 180, 150)) == 0 {
		t.Errorf("expected pose header above bounds")
	}
}

func TestLabelsNothingVisible(t *testing.T) {

	dst := image.NewRGBA(image.Rect(0, 0, 50, 50))

	pose := &poseviz.Pose{
		KeyPoints: []poseviz.KeyPoint{
			{Part: poseviz.Nose, X: 10, Y: 10, Score: 0.1},
		},
	}

	Labels(dst, DefaultFont(), pose, 0.5, PoseColor(0))
	Labels(dst, DefaultFont(), nil, 0.5, PoseColor(0))

	if countInked(dst, dst.Bounds()) != 0 {
		t.Errorf("expected empty layer when no keypoint is visible")
	}
}
