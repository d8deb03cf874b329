package wheel

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/dialoguewheel/pkg/errors"
)

func TestCheckRejectsNonPositive(t *testing.T) {
	checks := map[string]func(float64) (float64, error){
		AttrWheelRadius:   CheckWheelRadius,
		AttrRingThickness: CheckRingThickness,
		AttrFontSizeScale: CheckFontSizeScale,
	}

	for name, check := range checks {
		for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			if _, err := check(v); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("%s(%v) error = %v, want INVALID_CONFIG", name, v, err)
			}
		}
		if got, err := check(12.5); err != nil || got != 12.5 {
			t.Errorf("%s(12.5) = %v, %v; want 12.5, nil", name, got, err)
		}
	}
}

func TestCheckClamps(t *testing.T) {
	tests := []struct {
		name  string
		check func(float64) (float64, error)
		in    float64
		want  float64
	}{
		{"opacity above", CheckDisabledOpacity, 1.5, 1},
		{"opacity below", CheckDisabledOpacity, -0.2, 0},
		{"opacity inside", CheckDisabledOpacity, 0.4, 0.4},
		{"saturation above", CheckDisabledSaturation, 7, 1},
		{"bevel below", CheckBevelIntensity, -3, 0},
		{"bevel inside", CheckBevelIntensity, 0.5, 0.5},
		{"extrusion above", CheckRingExtrusion, 80, 50},
		{"extrusion fractional", CheckRingExtrusion, 12.7, 12.7},
		{"perspective negative", CheckPerspectiveAngleX, -30, -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.check(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckClampRejectsNaN(t *testing.T) {
	if _, err := CheckDisabledOpacity(math.NaN()); err == nil {
		t.Error("CheckDisabledOpacity(NaN) should fail")
	}
}

func TestRadii(t *testing.T) {
	tests := []struct {
		name      string
		radius    float64
		thickness float64
		inner     float64
	}{
		{"normal ring", 90, 40, 50},
		{"thickness equals radius", 90, 90, 0},
		{"thickness exceeds radius", 90, 200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DefaultAppearance()
			a.WheelRadius = tt.radius
			a.RingThickness = tt.thickness
			if got := a.InnerRadius(); got != tt.inner {
				t.Errorf("InnerRadius() = %v, want %v", got, tt.inner)
			}
			if got := a.OuterRadius() - a.EffectiveThickness(); got != tt.inner {
				t.Errorf("outer - min(thickness, outer) = %v, want %v", got, tt.inner)
			}
		})
	}
}

func TestLayers(t *testing.T) {
	a := DefaultAppearance()
	for in, want := range map[float64]int{0: 0, 0.9: 0, 1: 1, 35.5: 35, 50: 50} {
		a.RingExtrusion = in
		if got := a.Layers(); got != want {
			t.Errorf("Layers() with extrusion %v = %d, want %d", in, got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	in := Appearance{
		WheelRadius:        -1,
		RingThickness:      40,
		PerspectiveAngleX:  10,
		FontSizeScale:      2,
		BevelIntensity:     4,
		RingExtrusion:      60,
		DisabledOpacity:    -1,
		DisabledSaturation: 0.2,
		DisableAffectsText: false,
	}

	got, err := in.Normalize(DefaultAppearance())
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("Normalize() error = %v, want INVALID_CONFIG", err)
	}

	want := Appearance{
		WheelRadius:        150,
		RingThickness:      40,
		PerspectiveAngleX:  10,
		FontSizeScale:      2,
		BevelIntensity:     1,
		RingExtrusion:      50,
		DisabledOpacity:    0,
		DisabledSaturation: 0.2,
		DisableAffectsText: false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeDefaultsUnchanged(t *testing.T) {
	d := DefaultAppearance()
	got, err := d.Normalize(d)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("defaults should already be normalized (-want +got):\n%s", diff)
	}
}

func TestCloneOptions(t *testing.T) {
	orig := []Option{{Text: "a", Color: "#fff"}}
	c := CloneOptions(orig)
	c[0].Text = "mutated"
	if orig[0].Text != "a" {
		t.Error("CloneOptions should not share backing storage")
	}
	if c := CloneOptions(nil); c == nil || len(c) != 0 {
		t.Errorf("CloneOptions(nil) = %#v, want empty non-nil slice", c)
	}
}

func TestValidateOptions(t *testing.T) {
	if err := ValidateOptions(DemoOptions()); err != nil {
		t.Errorf("demo options should validate: %v", err)
	}
	bad := []Option{{Text: "ok", Color: "#fff"}, {Text: "bad", Color: "green"}}
	err := ValidateOptions(bad)
	if !errors.Is(err, errors.ErrCodeInvalidOptions) {
		t.Fatalf("ValidateOptions() error = %v, want INVALID_OPTIONS", err)
	}
	if msg := errors.UserMessage(err); msg != "option 1" {
		t.Errorf("UserMessage() = %q, want %q", msg, "option 1")
	}
}

func TestSelectable(t *testing.T) {
	opts := DemoOptions()
	tests := []struct {
		index int
		want  bool
	}{
		{-1, false},
		{0, true},
		{4, false}, // "Attack!" is disabled
		{5, true},
		{6, false},
	}
	for _, tt := range tests {
		if got := Selectable(opts, tt.index); got != tt.want {
			t.Errorf("Selectable(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
	if got := EnabledCount(opts); got != 5 {
		t.Errorf("EnabledCount() = %d, want 5", got)
	}
}

func TestDemoAppearanceIsNormalized(t *testing.T) {
	d := DemoAppearance()
	got, err := d.Normalize(DefaultAppearance())
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("demo appearance changed on normalize (-want +got):\n%s", diff)
	}
}
