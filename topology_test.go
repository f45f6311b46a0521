package poseviz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBodyPartNames(t *testing.T) {

	for i := 0; i < BodyPartsTotal; i++ {
		part := BodyPart(i)

		parsed, err := ParseBodyPart(part.String())

		if err != nil {
			t.Fatalf("error parsing %s: %v", part, err)
		}

		if parsed != part {
			t.Errorf("expected %s, got %s", part, parsed)
		}
	}

	if _, err := ParseBodyPart("tail"); err == nil {
		t.Errorf("expected error for unknown body part")
	}

	if got := BodyPart(42).String(); got != "BodyPart(42)" {
		t.Errorf("unexpected name for invalid body part %q", got)
	}
}

func TestCOCOTopology(t *testing.T) {

	topo := COCOTopology()

	if len(topo.Bones) != 19 {
		t.Fatalf("expected 19 bones, got %d", len(topo.Bones))
	}

	for _, bone := range topo.Bones {
		if !bone.From.Valid() || !bone.To.Valid() {
			t.Errorf("bone references invalid body part %+v", bone)
		}
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "topology.txt")

	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("error writing file: %v", err)
	}

	return file
}

func TestLoadTopology(t *testing.T) {

	file := writeFile(t, "# arms\nleft_shoulder left_elbow\n\nleft_elbow  left_wrist\n")

	topo, err := LoadTopology(file)

	if err != nil {
		t.Fatalf("error loading topology: %v", err)
	}

	expected := []Bone{
		{LeftShoulder, LeftElbow},
		{LeftElbow, LeftWrist},
	}

	if len(topo.Bones) != len(expected) {
		t.Fatalf("expected %d bones, got %d", len(expected), len(topo.Bones))
	}

	for i := range expected {
		if topo.Bones[i] != expected[i] {
			t.Errorf("bone %d: expected %+v, got %+v", i, expected[i], topo.Bones[i])
		}
	}
}

func TestLoadTopologyErrors(t *testing.T) {

	tests := []struct {
		content string
		errText string
	}{
		{"left_shoulder\n", "line 1"},
		{"nose left_eye\nnose tail\n", "line 2"},
	}

	for _, tc := range tests {
		_, err := LoadTopology(writeFile(t, tc.content))

		if err == nil || !strings.Contains(err.Error(), tc.errText) {
			t.Errorf("expected error containing %q, got %v", tc.errText, err)
		}
	}

	if _, err := LoadTopology(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
