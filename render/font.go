package render

import (
	"fmt"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"image/color"
	"os"
)

type Alignment int

const (
	Left   Alignment = 1
	Center Alignment = 2
	Right  Alignment = 3
)

// Font defines the parameters for rendering text labels onto the label layer
type Font struct {
	Face font.Face
	// Color of the label text
	Color color.RGBA
	// Background is the color of the box the text is drawn on
	Background color.RGBA
	// Padding to place around text
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
	// Alignment of the text label relative to the keypoint it describes
	Alignment Alignment
	// Offset is the distance in pixels between a keypoint and its label
	Offset int
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:       basicfont.Face7x13,
		Color:      White,
		Background: Shadow,
		LeftPad:    2,
		RightPad:   2,
		TopPad:     1,
		BottomPad:  2,
		Alignment:  Left,
		Offset:     6,
	}
}

// WithFace returns a copy of the font settings using the given type face
func (f Font) WithFace(face font.Face) Font {
	f.Face = face
	return f
}

// LoadFontFace loads a TTF or OTF font file and returns a type face of the
// given point size
func LoadFontFace(fontPath string, size float64) (font.Face, error) {

	// load font data
	fontBytes, err := os.ReadFile(fontPath)

	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	// parse the font
	f, err := opentype.Parse(fontBytes)

	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	// create a type face
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create type face: %w", err)
	}

	return face, nil
}
