// Package server runs a preview server for one dialogue wheel.
//
// The server owns a [widget.Widget] and exposes it over HTTP: an interactive
// page, static renders, the scene as JSON, and a small API that drives the
// widget's configuration and selection. Selections and rebuilds are pushed
// to browsers as server-sent events, so several open pages stay in sync.
//
// # Routes
//
//	GET   /                     interactive page
//	GET   /wheel.{format}       svg, png, pdf, json, or html render
//	GET   /states.{format}      selection state diagram (svg, png, pdf, dot)
//	GET   /scene.json           current scene
//	GET   /api/state            selection, attributes, and revision
//	POST  /api/select/{index}   select an option
//	POST  /api/click?x=&y=      click at a point in wheel coordinates
//	PUT   /api/options          replace the option list (JSON array)
//	PATCH /api/appearance       set attributes from a JSON object
//	GET   /api/events           server-sent events
//
// The widget is not safe for concurrent use, so every handler holds the
// server mutex while it touches it.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dialoguewheel/pkg/pipeline"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
	"github.com/matzehuels/dialoguewheel/pkg/widget"
)

// Config configures a Server.
type Config struct {
	Options    []wheel.Option
	Appearance wheel.Appearance
	Title      string
	// Runner renders static artifacts. Nil uses an uncached runner.
	Runner *pipeline.Runner
	Logger *log.Logger
}

// Server serves one widget.
type Server struct {
	mu     sync.Mutex
	widget *widget.Widget
	runner *pipeline.Runner
	logger *log.Logger
	title  string
	build  uint64
	events *broker
	router chi.Router
}

// New creates a server and its widget.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	runner := cfg.Runner
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	title := cfg.Title
	if title == "" {
		title = pipeline.DefaultTitle
	}

	s := &Server{
		runner: runner,
		logger: logger,
		title:  title,
		events: newBroker(),
	}
	s.widget = widget.New(
		widget.WithLogger(logger),
		widget.WithSurface(widget.SurfaceFunc(s.present)),
		widget.WithAppearance(cfg.Appearance),
		widget.WithOptions(cfg.Options),
	)
	s.widget.Subscribe(s.selected)
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("preview server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.events.close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/", s.handlePage)
	r.Get("/scene.json", s.handleScene)
	r.Get("/wheel.{format}", s.handleArtifact(pipeline.ViewWheel))
	r.Get("/states.{format}", s.handleArtifact(pipeline.ViewStates))

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/select/{index}", s.handleSelect)
		r.Post("/click", s.handleClick)
		r.Put("/options", s.handleOptions)
		r.Patch("/appearance", s.handleAppearance)
		r.Get("/events", s.handleEvents)
	})
	return r
}

// present is the widget surface. It runs with s.mu held by the handler that
// changed the widget, and announces rebuilt scenes only.
func (s *Server) present(f widget.Frame) {
	if f.Build == s.build {
		return
	}
	s.build = f.Build
	s.events.publish("render", renderEvent{Build: f.Build, Revision: f.Revision})
}

// selected forwards widget selections to event subscribers.
func (s *Server) selected(sel widget.Selection) {
	s.logger.Info("option selected", "index", sel.Index, "option", sel.Option.Text)
	s.events.publish("selection", sel)
}

type renderEvent struct {
	Build    uint64 `json:"build"`
	Revision uint64 `json:"revision"`
}
