package render

import (
	"gocv.io/x/gocv"
	"image"
	"testing"
)

func TestViewportLetterBox(t *testing.T) {

	tests := []struct {
		srcWidth      int
		srcHeight     int
		destWidth     int
		destHeight    int
		expectedXPad  int
		expectedYPad  int
		expectedScale float32
	}{
		{1280, 720, 640, 640, 0, 140, 0.50},
		{800, 1000, 640, 640, 64, 0, 0.64},
		{800, 800, 640, 640, 0, 0, 0.8},
		{640, 480, 640, 480, 0, 0, 1},
	}

	for _, tc := range tests {
		img := gocv.NewMatWithSize(tc.srcHeight, tc.srcWidth, gocv.MatTypeCV8UC3)

		dest := gocv.NewMat()

		vp := NewViewport(image.Pt(tc.srcWidth, tc.srcHeight), image.Pt(tc.destWidth, tc.destHeight))

		vp.LetterBox(img, &dest, Black)

		if vp.XPad() != tc.expectedXPad || vp.YPad() != tc.expectedYPad {
			t.Errorf("Test failed for src (%d, %d): Padding values wrong, expected XPad=%d, YPad=%d, got xPad=%d, yPad=%d",
				tc.srcWidth, tc.srcHeight, tc.expectedXPad, tc.expectedYPad, vp.XPad(), vp.YPad())
		}

		if vp.ScaleFactor() != tc.expectedScale {
			t.Errorf("Test failed for src (%d, %d): Scalefactor incorrect, expected %f, got %f",
				tc.srcWidth, tc.srcHeight, tc.expectedScale, vp.ScaleFactor())
		}

		if dest.Cols() != tc.destWidth || dest.Rows() != tc.destHeight {
			t.Errorf("Test failed for src (%d, %d): expected letterbox %dx%d, got %dx%d",
				tc.srcWidth, tc.srcHeight, tc.destWidth, tc.destHeight, dest.Cols(), dest.Rows())
		}

		img.Close()
		dest.Close()
		vp.Close()
	}
}

func TestViewportPoint(t *testing.T) {

	vp := NewViewport(image.Pt(1280, 720), image.Pt(640, 640))
	defer vp.Close()

	if got := vp.Point(100, 100); got != image.Pt(50, 190) {
		t.Errorf("expected (50,190), got %v", got)
	}

	if got := vp.Rect(); got != image.Rect(0, 140, 640, 500) {
		t.Errorf("expected display rect (0,140)-(640,500), got %v", got)
	}

	if vp.Identity() {
		t.Errorf("expected scaled viewport not to be identity")
	}
}

func TestViewportEmpty(t *testing.T) {

	vp := NewViewport(image.Point{}, image.Pt(640, 480))
	defer vp.Close()

	if !vp.Empty() {
		t.Errorf("expected viewport without source image to be empty")
	}

	dest := gocv.NewMat()
	defer dest.Close()

	src := gocv.NewMat()
	defer src.Close()

	// no image to display so dest is left untouched
	vp.LetterBox(src, &dest, Black)

	if !dest.Empty() {
		t.Errorf("expected dest to remain empty")
	}
}
