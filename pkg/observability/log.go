package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event as a debug log line.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log through logger. A nil logger uses the
// package default of charmbracelet/log.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger.WithPrefix("hooks")}
}

// Install registers h for all hook categories.
func Install(h *LogHooks) {
	SetWidgetHooks(h)
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetServerHooks(h)
}

func (h *LogHooks) OnRender(widgetID string, segments, layers int, d time.Duration) {
	h.logger.Debug("widget render", "widget", widgetID, "segments", segments, "layers", layers, "took", d)
}

func (h *LogHooks) OnSelect(widgetID string, index int) {
	h.logger.Debug("widget select", "widget", widgetID, "index", index)
}

func (h *LogHooks) OnReject(widgetID, field string, err error) {
	h.logger.Debug("widget reject", "widget", widgetID, "field", field, "err", err)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("export start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "formats", formats, "took", d, "err", err)
		return
	}
	h.logger.Debug("export done", "formats", formats, "took", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "took", d)
}
