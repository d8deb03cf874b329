package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

func TestToDOT_Basic(t *testing.T) {
	opts := []wheel.Option{
		{Text: "Bribe", Color: "#2ecc71"},
		{Text: "Attack", Color: "#c0392b", Disabled: true},
	}
	dot := ToDOT(opts, Options{Current: -1})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	for _, want := range []string{
		`"unselected" [label="Unselected", penwidth=3]`,
		`"selected_0" [label="Bribe", color="#2ecc71"]`,
		`"unselected" -> "selected_0" [label="click 0"]`,
		`"selected_0" -> "selected_0" [label="click 0"]`,
		"dashed",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
	if strings.Contains(dot, `-> "selected_1"`) {
		t.Error("disabled option must not be reachable")
	}
	if strings.Contains(dot, `"selected_1" ->`) {
		t.Error("disabled option has no outgoing transitions")
	}
}

func TestToDOT_Transfers(t *testing.T) {
	opts := wheel.DemoOptions()

	full := ToDOT(opts, Options{Current: 2})
	if got := strings.Count(full, " -> "); got != 5+5*5 {
		t.Errorf("edges = %d, want %d", got, 5+5*5)
	}
	if !strings.Contains(full, `"selected_2" [label="[Lie] Say you're lost.", color="#f1c40f", penwidth=3]`) {
		t.Error("current state should be highlighted")
	}

	compact := ToDOT(opts, Options{Current: -1, HideTransfers: true})
	if got := strings.Count(compact, " -> "); got != 5+5 {
		t.Errorf("compact edges = %d, want 10", got)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT([]wheel.Option{{Text: "Ask", Color: "#3498db"}}, Options{Detailed: true, Current: -1})
	if !strings.Contains(dot, `Ask\nindex: 0\ncolor: #3498db`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestToDOT_Empty(t *testing.T) {
	dot := ToDOT(nil, Options{Current: -1})
	if strings.Contains(dot, "->") {
		t.Error("empty option list has no transitions")
	}
	if !strings.Contains(dot, `"unselected"`) {
		t.Error("initial state is always drawn")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 62.00 116.00" width="62" height="116"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Error("SVG without viewBox should pass through")
	}
}
