// Package pkg provides the core libraries for the dialogue wheel.
//
// # Overview
//
// A dialogue wheel is a circular menu of up to a handful of choices, drawn as
// ring segments with a tilted, bevelled look. Clicking an enabled segment
// selects it and notifies listeners. The pkg directory is organized into
// these areas:
//
//  1. [wheel] - Domain types (options, appearance, defaults, validation)
//  2. [render] - Geometry, encoders, and state diagrams
//  3. [widget] - The live, stateful widget with attributes and selection
//  4. [pipeline] - Orchestration (validate → build → render → cache)
//  5. [server] - HTTP preview with server-sent events
//
// # Architecture
//
// The typical data flow:
//
//	Options file (JSON / YAML / TOML)
//	         ↓
//	    [io] package (import options and appearance)
//	         ↓
//	    [render/geometry] package (build a scene)
//	         ↓
//	    [render/sink] package (encode the scene)
//	         ↓
//	    SVG/HTML/PNG/PDF/JSON output
//
// # Quick Start
//
// Build a scene and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/dialoguewheel/pkg/render/geometry"
//	    "github.com/matzehuels/dialoguewheel/pkg/render/sink"
//	    "github.com/matzehuels/dialoguewheel/pkg/wheel"
//	)
//
//	scene := geometry.Build(wheel.DemoOptions(), wheel.DefaultAppearance())
//	svg := sink.RenderSVG(scene)
//
// Drive a live widget:
//
//	w := widget.New(widget.WithOptions(wheel.DemoOptions()))
//	w.Subscribe(func(sel widget.Selection) {
//	    fmt.Println("picked", sel.Option.Text)
//	})
//	w.Click(0)
//
// # Main Packages
//
// [wheel] - Options, appearance parameters, their defaults and validity rules.
//
// [render/geometry] - Segment angles, layer stacks, bevel filters, label
// placement, and hit testing in the wheel's own coordinate system.
//
// [render/sink] - Encoders for scenes: SVG (stylesheet or inline), HTML page,
// JSON, PNG (builtin rasterizer or rsvg-convert), and PDF.
//
// [render/nodelink] - Selection state machine diagrams laid out by Graphviz.
//
// [widget] - The stateful widget: attribute setters, rebuild on change,
// click handling, and selection listeners.
//
// ## Infrastructure
//
// [cache] - Cache backends (file, Redis, null) keyed by content hashes.
//
// [io] - Import and export of options and appearance.
//
// [pipeline] - The render pipeline shared by the CLI and the preview server.
//
// [observability] - Hooks for render and HTTP events.
//
// [errors] - Coded errors with user messages and HTTP status mapping.
//
// [buildinfo] - Version metadata set at link time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/widget/...             # Specific package
//	go test -run Example                 # Examples only
//
// [wheel]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/wheel
// [render]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/render
// [render/geometry]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/render/geometry
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/render/nodelink
// [widget]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/widget
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/server
// [cache]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dialoguewheel/pkg/buildinfo
package pkg
