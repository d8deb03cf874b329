package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/dialoguewheel/pkg/errors"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

var scenario = []wheel.Option{
	{Text: "Bribe", Color: "#2ecc71"},
	{Text: "Attack", Color: "#c0392b", Disabled: true},
}

func TestReadOptions(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json array", FormatJSON, `[{"text":"Bribe","color":"#2ecc71"},{"text":"Attack","color":"#c0392b","disabled":true}]`},
		{"json object", FormatJSON, `{"options":[{"text":"Bribe","color":"#2ecc71"},{"text":"Attack","color":"#c0392b","disabled":true}]}`},
		{"yaml sequence", FormatYAML, `
- text: Bribe
  color: "#2ecc71"
- text: Attack
  color: "#c0392b"
  disabled: true
`},
		{"yaml mapping", FormatYAML, `
options:
  - text: Bribe
    color: "#2ecc71"
  - text: Attack
    color: "#c0392b"
    disabled: true
`},
		{"toml", FormatTOML, `
[[options]]
text = "Bribe"
color = "#2ecc71"

[[options]]
text = "Attack"
color = "#c0392b"
disabled = true
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadOptions(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadOptions() error = %v", err)
			}
			if diff := cmp.Diff(scenario, got); diff != "" {
				t.Errorf("ReadOptions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadOptions_Empty(t *testing.T) {
	for _, f := range Formats {
		got, err := ReadOptions(strings.NewReader(""), f)
		if f == FormatJSON {
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("empty JSON error = %v, want INVALID_FORMAT", err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: ReadOptions(\"\") error = %v", f, err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("%s: want empty non-nil list, got %#v", f, got)
		}
	}
}

func TestReadOptions_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   errors.Code
	}{
		{"malformed json", FormatJSON, `[{"text":`, errors.ErrCodeInvalidFormat},
		{"malformed yaml", FormatYAML, "- text: [unclosed", errors.ErrCodeInvalidFormat},
		{"malformed toml", FormatTOML, "[[options]\ntext=", errors.ErrCodeInvalidFormat},
		{"bad color", FormatJSON, `[{"text":"x","color":"red"}]`, errors.ErrCodeInvalidOptions},
		{"unknown format", Format("xml"), `<x/>`, errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadOptions(strings.NewReader(tt.input), tt.format)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestReadOptions_FreeFormText(t *testing.T) {
	long := strings.Repeat("選", 90)
	input := `[{"text":"` + long + `"},{"text":"Line one\nline two"}]`
	opts, err := ReadOptions(strings.NewReader(input), FormatJSON)
	if err != nil {
		t.Fatalf("ReadOptions() error = %v", err)
	}
	if opts[0].Text != long || opts[1].Text != "Line one\nline two" {
		t.Errorf("texts = %q, %q", opts[0].Text, opts[1].Text)
	}
}

func TestExportImportOptions(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "dialogue"+ext)
			if err := ExportOptions(wheel.DemoOptions(), path); err != nil {
				t.Fatalf("ExportOptions() error = %v", err)
			}
			got, err := ImportOptions(path)
			if err != nil {
				t.Fatalf("ImportOptions() error = %v", err)
			}
			if diff := cmp.Diff(wheel.DemoOptions(), got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestImportOptions_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ImportOptions(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	_, err = ImportOptions(filepath.Join(dir, "options.csv"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("csv error = %v, want UNSUPPORTED", err)
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`[{"color":"#12"}]`), 0644)
	_, err = ImportOptions(bad)
	if !errors.Is(err, errors.ErrCodeInvalidOptions) {
		t.Errorf("bad option error = %v, want INVALID_OPTIONS", err)
	}
	if !strings.Contains(err.Error(), "bad.json") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestReadAppearance(t *testing.T) {
	input := `
wheel_radius = 90
ring_thickness = 40
ring_extrusion = 80
disable_affects_text = false
`
	got, err := ReadAppearance(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadAppearance() error = %v", err)
	}
	want := wheel.DefaultAppearance()
	want.WheelRadius = 90
	want.RingThickness = 40
	want.RingExtrusion = 50
	want.DisableAffectsText = false
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadAppearance() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadAppearance_Rejected(t *testing.T) {
	got, err := ReadAppearance(strings.NewReader("wheel_radius = -1\nfont_size_scale = 2\n"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
	if got.WheelRadius != 150 || got.FontSizeScale != 2 {
		t.Errorf("got %+v", got)
	}

	_, err = ReadAppearance(strings.NewReader("wheel_radius = "))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("malformed error = %v, want INVALID_FORMAT", err)
	}
}

func TestWriteAppearance(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAppearance(&buf, wheel.DemoAppearance()); err != nil {
		t.Fatalf("WriteAppearance() error = %v", err)
	}
	if !strings.Contains(buf.String(), "wheel_radius = 90.0") {
		t.Errorf("output missing radius:\n%s", buf.String())
	}
	got, err := ReadAppearance(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != wheel.DemoAppearance() {
		t.Errorf("round trip = %+v", got)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.json":     FormatJSON,
		"a.YAML":     FormatYAML,
		"dir/b.yml":  FormatYAML,
		"c.toml":     FormatTOML,
		"x.json.bak": "",
	}
	for path, want := range tests {
		got, _ := FormatFromPath(path)
		if got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
