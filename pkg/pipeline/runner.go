package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dialoguewheel/pkg/cache"
	"github.com/matzehuels/dialoguewheel/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	// TTL is the lifetime of cached artifacts.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLArtifact,
	}
}

// Execute runs the complete validate → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, src Source, opts Options) (result *Result, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	src, err = ValidateSource(src)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	defer func() {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	result = &Result{
		SourceHash: cache.SourceHash(src.Options, src.Appearance),
	}

	// Stage 1: Build
	buildStart := time.Now()
	result.Scene = Build(src, opts)
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Segments = len(result.Scene.Sectors)
	result.Stats.Layers = len(result.Scene.Layers)

	r.Logger.Debug("built scene",
		"segments", result.Stats.Segments,
		"layers", result.Stats.Layers,
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, result, src, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"view", opts.View,
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders every requested format, serving each from
// cache when possible. The bool reports whether all formats were cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, result *Result, src Source, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true

	for _, format := range opts.Formats {
		key, keyType := r.key(result.SourceHash, src, opts, format)

		if !opts.Refresh {
			if data, ok := r.lookup(ctx, key, keyType); ok {
				artifacts[format] = data
				continue
			}
		}
		allCached = false

		data, err := RenderFormat(ctx, result.Scene, src, opts, format)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
		r.store(ctx, key, keyType, data)
	}

	return artifacts, allCached, nil
}

func (r *Runner) key(sourceHash string, src Source, opts Options, format string) (string, string) {
	selected := opts.selection(src.Options)
	if opts.IsStates() {
		return r.Keyer.DiagramKey(sourceHash, opts.DiagramKeyOpts(format, selected)), "diagram"
	}
	return r.Keyer.ArtifactKey(sourceHash, opts.ArtifactKeyOpts(format, selected)), "artifact"
}

// lookup reads key, retrying transient backend failures. Errors count as
// misses so a flaky cache never fails a render.
func (r *Runner) lookup(ctx context.Context, key, keyType string) ([]byte, bool) {
	var data []byte
	var hit bool
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		data, hit, err = r.Cache.Get(ctx, key)
		return err
	})
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) store(ctx context.Context, key, keyType string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
