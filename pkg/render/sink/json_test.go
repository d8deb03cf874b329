package sink

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

func TestRenderJSON(t *testing.T) {
	s := testScene(func(a *wheel.Appearance) { a.RingExtrusion = 2 })

	data, err := RenderJSON(s)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out struct {
		Selected int `json:"selected"`
		Scene    struct {
			Width   float64 `json:"width"`
			Height  float64 `json:"height"`
			Sectors []any   `json:"sectors"`
			Layers  []struct {
				Depth     int  `json:"depth"`
				Clickable bool `json:"clickable"`
			} `json:"layers"`
			Lines []struct {
				Side string `json:"side"`
			} `json:"lines"`
		} `json:"scene"`
		Options []wheel.Option `json:"options"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Selected != -1 {
		t.Errorf("Selected = %d, want -1", out.Selected)
	}
	if out.Scene.Width != 330 || out.Scene.Height != 180 {
		t.Errorf("size = %vx%v, want 330x180", out.Scene.Width, out.Scene.Height)
	}
	if len(out.Scene.Sectors) != 2 {
		t.Errorf("Sectors count = %d, want 2", len(out.Scene.Sectors))
	}
	if len(out.Scene.Layers) != 6 {
		t.Errorf("Layers count = %d, want 6", len(out.Scene.Layers))
	}
	if out.Scene.Lines[0].Side != "right" || out.Scene.Lines[1].Side != "left" {
		t.Errorf("sides = %q, %q", out.Scene.Lines[0].Side, out.Scene.Lines[1].Side)
	}
	if out.Options != nil {
		t.Error("options should be omitted without WithJSONSource")
	}
}

func TestRenderJSONWithSource(t *testing.T) {
	opts := wheel.DemoOptions()
	a := wheel.DemoAppearance()
	data, err := RenderJSON(testScene(nil), WithJSONSelected(3), WithJSONSource(opts, a))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Selected != 3 {
		t.Errorf("Selected = %d, want 3", out.Selected)
	}
	if len(out.Options) != len(opts) || out.Options[4].Text != "Attack!" || !out.Options[4].Disabled {
		t.Errorf("Options = %+v", out.Options)
	}
	if out.Appearance == nil || out.Appearance.RingExtrusion != 35 {
		t.Errorf("Appearance = %+v", out.Appearance)
	}
}
