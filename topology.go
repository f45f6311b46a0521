package poseviz

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Bone is a pair of anatomically adjacent body parts that are joined by a
// line when the skeleton is drawn
type Bone struct {
	From BodyPart
	To   BodyPart
}

// Topology is the fixed set of bones making up a skeleton
type Topology struct {
	Bones []Bone
}

// COCOTopology returns the skeleton used by COCO trained pose models, so
// (LeftAnkle, LeftKnee) means draw line from left ankle to left knee.
func COCOTopology() Topology {
	return Topology{
		Bones: []Bone{
			{LeftAnkle, LeftKnee},
			{LeftKnee, LeftHip},
			{RightAnkle, RightKnee},
			{RightKnee, RightHip},
			{LeftHip, RightHip},
			{LeftShoulder, LeftHip},
			{RightShoulder, RightHip},
			{LeftShoulder, RightShoulder},
			{LeftShoulder, LeftElbow},
			{RightShoulder, RightElbow},
			{LeftElbow, LeftWrist},
			{RightElbow, RightWrist},
			{LeftEye, RightEye},
			{Nose, LeftEye},
			{Nose, RightEye},
			{LeftEye, LeftEar},
			{RightEye, RightEar},
			{LeftEar, LeftShoulder},
			{RightEar, RightShoulder},
		},
	}
}

// LoadTopology reads the skeleton bones from the given text file.  It should
// contain one bone per line as two body part names separated by white space,
// eg: "left_knee left_ankle".  Blank lines and lines starting with # are
// ignored.
func LoadTopology(file string) (Topology, error) {

	// open the file
	f, err := os.Open(file)

	if err != nil {
		return Topology{}, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	// create a scanner to read the file.
	scanner := bufio.NewScanner(f)

	var topo Topology
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		if len(fields) != 2 {
			return Topology{}, fmt.Errorf("line %d: expected two body parts, got %d", lineNum, len(fields))
		}

		from, err := ParseBodyPart(fields[0])

		if err != nil {
			return Topology{}, fmt.Errorf("line %d: %w", lineNum, err)
		}

		to, err := ParseBodyPart(fields[1])

		if err != nil {
			return Topology{}, fmt.Errorf("line %d: %w", lineNum, err)
		}

		topo.Bones = append(topo.Bones, Bone{From: from, To: to})
	}

	// check for errors during scanning
	if err := scanner.Err(); err != nil {
		return Topology{}, fmt.Errorf("error reading file: %w", err)
	}

	return topo, nil
}
