package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

func TestRenderHTML(t *testing.T) {
	s := testScene(func(a *wheel.Appearance) {
		a.PerspectiveAngleX = 45
		a.BevelIntensity = 0.5
		a.FontSizeScale = 1.5
	})
	out, err := RenderHTML(s, WithHTMLTitle("Guard <post>"))
	if err != nil {
		t.Fatalf("RenderHTML() error: %v", err)
	}
	page := string(out)

	checks := []string{
		"<title>Guard &lt;post&gt;</title>",
		"width: 330px; height: 180px;",
		"perspective: 1000px;",
		"transform: translate(-50%, -50%) rotateX(45deg);",
		"transform-style: preserve-3d;",
		"font-size: 21px;",
		"translateZ(5px)",
		`<svg viewBox="0 0 180 180">`,
		`<filter id="shinyBevelFilter"`,
		`class="segment-label right-label" style="color: #2ecc71; top: 90px; left: 255px;">Bribe</div>`,
		`class="segment-label left-label disabled" style="color: #c0392b; top: 90px; right: 255px;">`,
		"option-selected",
		`"disabled":true`,
	}
	for _, want := range checks {
		if !strings.Contains(page, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
	if strings.Contains(page, "EventSource(wheelConfig") && strings.Contains(page, `"eventsURL"`) {
		t.Error("events endpoint should be omitted when not configured")
	}
}

func TestRenderHTMLEndpoints(t *testing.T) {
	out, err := RenderHTML(testScene(nil),
		WithSelectEndpoint("/api/select/"),
		WithEventsEndpoint("/api/events"),
		WithHTMLSelected(0),
		WithHTMLOptions([]wheel.Option{{Text: "</script>", Color: "#fff"}}),
	)
	if err != nil {
		t.Fatalf("RenderHTML() error: %v", err)
	}
	page := string(out)

	for _, want := range []string{
		`"selectURL":"/api/select/"`,
		`"eventsURL":"/api/events"`,
		`"selected":0`,
		`class="segment selected" data-index="0"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
	if strings.Count(page, "</script>") != 1 {
		t.Error("embedded option text must not terminate the script element")
	}
}

func TestRenderHTMLLabelZ(t *testing.T) {
	out, err := RenderHTML(testScene(nil))
	if err != nil {
		t.Fatalf("RenderHTML() error: %v", err)
	}
	if !strings.Contains(string(out), "translateZ(2px)") {
		t.Error("label z offset should be 2 without bevel")
	}
	if strings.Contains(string(out), "<defs>") {
		t.Error("no defs without bevel")
	}
}
