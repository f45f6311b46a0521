package render

import "image/color"

var (
	// poseColors is a list of distinct colors used for the background of the
	// per pose header label
	poseColors = []color.RGBA{
		{R: 255, G: 56, B: 56, A: 255},   // #FF3838
		{R: 255, G: 112, B: 31, A: 255},  // #FF701F
		{R: 255, G: 178, B: 29, A: 255},  // #FFB21D
		{R: 207, G: 210, B: 49, A: 255},  // #CFD231
		{R: 72, G: 249, B: 10, A: 255},   // #48F90A
		{R: 26, G: 147, B: 52, A: 255},   // #1A9334
		{R: 0, G: 212, B: 187, A: 255},   // #00D4BB
		{R: 0, G: 194, B: 255, A: 255},   // #00C2FF
		{R: 52, G: 69, B: 147, A: 255},   // #344593
		{R: 100, G: 115, B: 255, A: 255}, // #6473FF
		{R: 0, G: 24, B: 236, A: 255},    // #0018EC
		{R: 132, G: 56, B: 255, A: 255},  // #8438FF
		{R: 82, G: 0, B: 133, A: 255},    // #520085
		{R: 255, G: 149, B: 200, A: 255}, // #FF95C8
		{R: 255, G: 55, B: 199, A: 255},  // #FF37C7
		{R: 255, G: 157, B: 151, A: 255}, // #FF9D97
		{R: 44, G: 153, B: 168, A: 255},  // #2C99A8
		{R: 61, G: 219, B: 134, A: 255},  // #3DDB86
		{R: 203, G: 56, B: 255, A: 255},  // #CB38FF
		{R: 146, G: 204, B: 23, A: 255},  // #92CC17
	}

	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 50, A: 255}
	Pink   = color.RGBA{R: 255, G: 0, B: 255, A: 255}

	// Shadow is the translucent backing drawn behind body part labels
	Shadow = color.RGBA{R: 0, G: 0, B: 0, A: 160}

	// Transparent is the cleared label layer color
	Transparent = color.RGBA{}

	// posePalette are the colors used for the skeleton/pose
	posePalette = []color.RGBA{
		{R: 255, G: 128, B: 0, A: 255},
		{R: 255, G: 153, B: 51, A: 255},
		{R: 255, G: 178, B: 102, A: 255},
		{R: 230, G: 230, B: 0, A: 255},
		{R: 255, G: 153, B: 255, A: 255},
		{R: 153, G: 204, B: 255, A: 255},
		{R: 255, G: 102, B: 255, A: 255},
		{R: 255, G: 51, B: 255, A: 255},
		{R: 102, G: 178, B: 255, A: 255},
		{R: 51, G: 153, B: 255, A: 255},
		{R: 255, G: 153, B: 153, A: 255},
		{R: 255, G: 102, B: 102, A: 255},
		{R: 255, G: 51, B: 51, A: 255},
		{R: 153, G: 255, B: 153, A: 255},
		{R: 102, G: 255, B: 102, A: 255},
		{R: 51, G: 255, B: 51, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}

	// keyPointColors correspond to the skeleton body parts and colors to use
	// to render for the joints (circles), indexed by BodyPart
	keyPointColors = []color.RGBA{
		posePalette[16], posePalette[16], posePalette[16], posePalette[16], posePalette[16],
		posePalette[9], posePalette[9], posePalette[9], posePalette[9], posePalette[9],
		posePalette[9], posePalette[0], posePalette[0], posePalette[0], posePalette[0],
		posePalette[0], posePalette[0],
	}

	// limbColors correspond to the bones of the COCO topology, indexed by
	// bone.  Topologies with more bones wrap around
	limbColors = []color.RGBA{
		posePalette[0], posePalette[0], posePalette[0], posePalette[0], posePalette[7],
		posePalette[7], posePalette[7], posePalette[9], posePalette[9], posePalette[9],
		posePalette[9], posePalette[9], posePalette[16], posePalette[16], posePalette[16],
		posePalette[16], posePalette[16], posePalette[16], posePalette[16],
	}
)

// keyPointColor returns the joint color for the given body part
func keyPointColor(part int) color.RGBA {
	if part < 0 || part >= len(keyPointColors) {
		return White
	}
	return keyPointColors[part]
}

// limbColor returns the line color for the bone at index i of the topology
func limbColor(i int) color.RGBA {
	return limbColors[i%len(limbColors)]
}

// PoseColor returns the color assigned to the pose at index i of a frame
func PoseColor(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return poseColors[i%len(poseColors)]
}
