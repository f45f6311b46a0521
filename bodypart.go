package poseviz

import (
	"fmt"
	"strings"
)

// BodyPart identifies a keypoint of the skeleton.  The numbering follows the
// order COCO trained pose models output their keypoints in.
type BodyPart int

const (
	Nose BodyPart = iota
	LeftEye
	RightEye
	LeftEar
	RightEar
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
)

// BodyPartsTotal is the number of keypoints in a skeleton
const BodyPartsTotal = 17

var bodyPartNames = [BodyPartsTotal]string{
	"nose",
	"left_eye",
	"right_eye",
	"left_ear",
	"right_ear",
	"left_shoulder",
	"right_shoulder",
	"left_elbow",
	"right_elbow",
	"left_wrist",
	"right_wrist",
	"left_hip",
	"right_hip",
	"left_knee",
	"right_knee",
	"left_ankle",
	"right_ankle",
}

// Valid reports whether the body part is one of the known skeleton keypoints
func (b BodyPart) Valid() bool {
	return b >= 0 && int(b) < BodyPartsTotal
}

// String returns the snake case name of the body part, eg: "left_shoulder"
func (b BodyPart) String() string {
	if !b.Valid() {
		return fmt.Sprintf("BodyPart(%d)", int(b))
	}
	return bodyPartNames[b]
}

// ParseBodyPart returns the BodyPart for the given name.  Matching ignores
// case and surrounding white space.
func ParseBodyPart(name string) (BodyPart, error) {

	name = strings.ToLower(strings.TrimSpace(name))

	for i, n := range bodyPartNames {
		if n == name {
			return BodyPart(i), nil
		}
	}

	return 0, fmt.Errorf("unknown body part %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (b BodyPart) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid body part %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *BodyPart) UnmarshalText(text []byte) error {
	part, err := ParseBodyPart(string(text))

	if err != nil {
		return err
	}

	*b = part
	return nil
}
