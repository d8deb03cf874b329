package render

import (
	"testing"

	"github.com/matzehuels/dialoguewheel/pkg/errors"
)

func TestConvertMissingTool(t *testing.T) {
	old := Converter
	Converter = "dialoguewheel-no-such-converter"
	t.Cleanup(func() { Converter = old })

	if Available() {
		t.Fatal("Available() = true for a missing tool")
	}
	if _, err := ToPDF([]byte("<svg/>")); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want UNSUPPORTED", err)
	}
}

func TestConvertRejectsInput(t *testing.T) {
	tests := []struct {
		name  string
		svg   []byte
		scale float64
	}{
		{"empty", nil, 1},
		{"zero scale", []byte("<svg/>"), 0},
		{"negative scale", []byte("<svg/>"), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ToPNG(tt.svg, tt.scale); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ToPNG() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}
