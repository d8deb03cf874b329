// Package pipeline provides the export pipeline for dialogue wheels.
//
// This package implements the validate → build → render pipeline that the
// CLI and the preview server share. By centralizing this logic, both entry
// points apply the same defaults, cache keys, and format rules.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Validate: Check the option list and normalize the appearance
//  2. Build: Compute the [geometry.Scene] for the wheel
//  3. Render: Encode the scene (or the selection state diagram) in each
//     requested format
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	src := pipeline.Source{Options: opts, Appearance: appearance}
//	result, err := runner.Execute(ctx, src, pipeline.Options{
//	    Formats:  []string{"svg", "html"},
//	    Selected: pipeline.NoSelection,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Set View to [ViewStates] to render the selection state machine instead of
// the wheel.
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dialoguewheel/pkg/cache"
	"github.com/matzehuels/dialoguewheel/pkg/errors"
	"github.com/matzehuels/dialoguewheel/pkg/render/geometry"
	"github.com/matzehuels/dialoguewheel/pkg/render/sink"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// DefaultTitle is the HTML page title.
	DefaultTitle = "Dialogue Wheel"

	// NoSelection marks an export without a selected segment.
	NoSelection = -1
)

// View constants select what is rendered.
const (
	ViewWheel  = "wheel"
	ViewStates = "states"
)

// DefaultView is the default view.
const DefaultView = ViewWheel

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats lists the supported formats per view.
var ValidFormats = map[string][]string{
	ViewWheel:  {FormatSVG, FormatHTML, FormatPNG, FormatPDF, FormatJSON},
	ViewStates: {FormatSVG, FormatPNG, FormatPDF, FormatDOT},
}

// ValidRasterizers is the set of supported PNG backends.
var ValidRasterizers = map[string]bool{
	string(sink.RasterBuiltin): true,
	string(sink.RasterRSVG):    true,
}

// =============================================================================
// Source and Options
// =============================================================================

// Source is the render input: the option list and the appearance.
type Source struct {
	Options    []wheel.Option   `json:"options"`
	Appearance wheel.Appearance `json:"appearance"`
}

// Options contains all configuration for one pipeline run.
type Options struct {
	View    string   `json:"view,omitempty"`
	Formats []string `json:"formats,omitempty"`

	// Selected is the highlighted option index, or NoSelection. Indices that
	// do not name an enabled option are treated as NoSelection.
	Selected int `json:"selected"`

	// Wheel options
	Inline      bool    `json:"inline,omitempty"` // SVG with presentation attributes instead of CSS
	Flat        bool    `json:"flat,omitempty"`   // Ignore the perspective tilt in SVG output
	Background  string  `json:"background,omitempty"`
	Interactive bool    `json:"interactive,omitempty"` // Embed the click script in SVG output
	Title       string  `json:"title,omitempty"`
	FilterID    string  `json:"filter_id,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
	Rasterizer  string  `json:"rasterizer,omitempty"`

	// State diagram options
	Detailed      bool `json:"detailed,omitempty"`
	HideTransfers bool `json:"hide_transfers,omitempty"`

	// Refresh bypasses cache reads; results are still written back.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the built wheel scene.
	Scene geometry.Scene

	// SourceHash is the content hash of the render input.
	SourceHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the outputs came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Segments   int
	Layers     int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateView checks that a view is valid.
func ValidateView(view string) error {
	if _, ok := ValidFormats[view]; !ok {
		return errors.New(errors.ErrCodeInvalidInput, "invalid view: %q (must be one of: wheel, states)", view)
	}
	return nil
}

// ValidateFormat checks that a format is valid for view.
func ValidateFormat(view, format string) error {
	valid, ok := ValidFormats[view]
	if !ok {
		return ValidateView(view)
	}
	if !slices.Contains(valid, format) {
		return errors.New(errors.ErrCodeUnsupported, "invalid %s format: %q (must be one of: %s)", view, format, strings.Join(valid, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid for view.
func ValidateFormats(view string, formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(view, f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRasterizer checks that a PNG backend is valid.
func ValidateRasterizer(name string) error {
	if !ValidRasterizers[name] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid rasterizer: %q (must be one of: builtin, rsvg)", name)
	}
	return nil
}

// ValidateSource checks the option list and normalizes the appearance.
func ValidateSource(src Source) (Source, error) {
	if err := wheel.ValidateOptions(src.Options); err != nil {
		return Source{}, err
	}
	a, err := src.Appearance.Normalize(wheel.DefaultAppearance())
	if err != nil {
		return Source{}, err
	}
	return Source{Options: wheel.CloneOptions(src.Options), Appearance: a}, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.View == "" {
		o.View = DefaultView
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Rasterizer == "" {
		o.Rasterizer = string(sink.RasterBuiltin)
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := ValidateView(o.View); err != nil {
		return err
	}
	if err := ValidateFormats(o.View, o.Formats); err != nil {
		return err
	}
	if err := ValidateRasterizer(o.Rasterizer); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be > 0, got %v", o.Scale)
	}
	o.validated = true
	return nil
}

// IsStates returns true if the state diagram is rendered.
func (o *Options) IsStates() bool {
	return o.View == ViewStates
}

// selection returns the effective selected index for opts.
func (o *Options) selection(opts []wheel.Option) int {
	if wheel.Selectable(opts, o.Selected) {
		return o.Selected
	}
	return NoSelection
}

// ArtifactKeyOpts returns cache key options for a wheel artifact.
func (o *Options) ArtifactKeyOpts(format string, selected int) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:   format,
		Selected: selected,
		FilterID: o.FilterID,
	}
	switch format {
	case FormatSVG:
		k.Inline, k.Flat, k.Background, k.Interactive = o.Inline, o.Flat, o.Background, o.Interactive
	case FormatPNG:
		k.Flat, k.Background, k.Scale, k.Rasterizer = o.Flat, o.Background, o.Scale, o.Rasterizer
	case FormatPDF:
		k.Flat, k.Background = o.Flat, o.Background
	case FormatHTML:
		k.Background, k.Title = o.Background, o.Title
	}
	return k
}

// DiagramKeyOpts returns cache key options for a state diagram artifact.
func (o *Options) DiagramKeyOpts(format string, current int) cache.DiagramKeyOpts {
	k := cache.DiagramKeyOpts{
		Format:        format,
		Detailed:      o.Detailed,
		HideTransfers: o.HideTransfers,
		Current:       current,
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}

func (o *Options) String() string {
	return fmt.Sprintf("%s[%s]", o.View, strings.Join(o.Formats, ","))
}
