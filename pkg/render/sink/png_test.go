package sink

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

func TestRenderPNGBuiltin(t *testing.T) {
	data, err := RenderPNG(testScene(func(a *wheel.Appearance) { a.RingExtrusion = 2 }), WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 660 || b.Dy() != 360 {
		t.Errorf("image size = %dx%d, want 660x360", b.Dx(), b.Dy())
	}

	// The ring's right half at (75+160, 90) in wheel space is opaque.
	if _, _, _, alpha := img.At(2*(75+160), 2*90).RGBA(); alpha == 0 {
		t.Error("expected the Bribe segment to be painted")
	}
	// The hole in the middle stays transparent.
	if _, _, _, alpha := img.At(2*(75+90), 2*90).RGBA(); alpha != 0 {
		t.Error("expected the ring center to be empty")
	}
}

func TestRenderPNGInvalidScale(t *testing.T) {
	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := RenderPNG(testScene(nil), WithScale(scale)); err == nil {
			t.Errorf("RenderPNG(scale=%v) succeeded, want error", scale)
		}
	}
}

func TestRenderPNGUnknownRasterizer(t *testing.T) {
	if _, err := RenderPNG(testScene(nil), WithRasterizer("magic")); err == nil {
		t.Error("expected error for unknown rasterizer")
	}
}
