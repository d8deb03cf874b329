package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/matzehuels/dialoguewheel/pkg/errors"
	"github.com/matzehuels/dialoguewheel/pkg/pipeline"
	"github.com/matzehuels/dialoguewheel/pkg/render/sink"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

const maxBody = 1 << 20

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatHTML: "text/html; charset=utf-8",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
}

// State is the body of GET /api/state.
type State struct {
	ID         string            `json:"id"`
	Selected   int               `json:"selected"`
	Option     *wheel.Option     `json:"option,omitempty"`
	Revision   uint64            `json:"revision"`
	Build      uint64            `json:"build"`
	Attributes map[string]string `json:"attributes"`
}

type selectResponse struct {
	Accepted bool  `json:"accepted"`
	State    State `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// state snapshots the widget. Callers hold s.mu.
func (s *Server) state() State {
	f := s.widget.Frame()
	st := State{
		ID:         s.widget.ID(),
		Selected:   s.widget.SelectedIndex(),
		Revision:   f.Revision,
		Build:      f.Build,
		Attributes: s.widget.Attributes(),
	}
	if opt, ok := s.widget.SelectedOption(); ok {
		st.Option = &opt
	}
	return st
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	f := s.widget.Frame()
	page, err := sink.RenderHTML(f.Scene,
		sink.WithHTMLTitle(s.title),
		sink.WithHTMLHostID(s.widget.ID()),
		sink.WithHTMLSelected(f.Selected),
		sink.WithHTMLOptions(f.Options),
		sink.WithSelectEndpoint("/api/select/"),
		sink.WithEventsEndpoint("/api/events"),
	)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeBytes(w, contentTypes[pipeline.FormatHTML], page)
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	f := s.widget.Frame()
	data, err := sink.RenderJSON(f.Scene,
		sink.WithJSONSelected(f.Selected),
		sink.WithJSONSource(f.Options, s.widget.Appearance()),
	)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeBytes(w, contentTypes[pipeline.FormatJSON], data)
}

// handleArtifact renders the current widget state through the pipeline, so
// static artifacts share the runner's cache.
func (s *Server) handleArtifact(view string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := chi.URLParam(r, "format")
		if err := pipeline.ValidateFormat(view, format); err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeNotFound, err, "no %s render as %q", view, format))
			return
		}

		s.mu.Lock()
		src := pipeline.Source{Options: s.widget.Options(), Appearance: s.widget.Appearance()}
		opts := pipeline.Options{
			View:     view,
			Formats:  []string{format},
			Selected: s.widget.SelectedIndex(),
			FilterID: s.widget.FilterID(),
			Title:    s.title,
			Detailed: r.URL.Query().Get("detailed") == "true",
		}
		s.mu.Unlock()

		res, err := s.runner.Execute(r.Context(), src, opts)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if res.CacheInfo.RenderHit {
			w.Header().Set("X-Cache", "HIT")
		} else {
			w.Header().Set("X-Cache", "MISS")
		}
		writeBytes(w, contentTypes[format], res.Artifacts[format])
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	st := s.state()
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "segment index"))
		return
	}

	s.mu.Lock()
	accepted := s.widget.Click(index)
	st := s.state()
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, selectResponse{Accepted: accepted, State: st})
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x, err := strconv.ParseFloat(q.Get("x"), 64)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "x coordinate"))
		return
	}
	y, err := strconv.ParseFloat(q.Get("y"), 64)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "y coordinate"))
		return
	}

	s.mu.Lock()
	accepted := s.widget.ClickAt(x, y)
	st := s.state()
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, selectResponse{Accepted: accepted, State: st})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}

	s.mu.Lock()
	err = s.widget.SetOptionsJSON(body)
	st := s.state()
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, st)
}

// handleAppearance applies a JSON object of attributes as one change.
// String values are taken as-is; numbers and booleans use their JSON text.
// Any rejection leaves the widget untouched.
func (s *Server) handleAppearance(w http.ResponseWriter, r *http.Request) {
	var patch map[string]json.RawMessage
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&patch); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode attributes"))
		return
	}
	attrs := make(map[string]string, len(patch))
	for name, raw := range patch {
		if !isAttribute(name) {
			s.writeError(w, errors.New(errors.ErrCodeInvalidAttribute, "unknown attribute %q", name))
			return
		}
		attrs[name] = attributeValue(raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.widget.SetAttributes(attrs); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.state())
}

func isAttribute(name string) bool {
	for _, a := range wheel.Attributes {
		if a == name {
			return true
		}
	}
	return false
}

func attributeValue(raw json.RawMessage) string {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return string(raw)
}

func writeBytes(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode response", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}
