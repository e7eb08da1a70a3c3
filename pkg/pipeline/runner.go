package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/shelfcraft/pkg/cache"
	"github.com/matzehuels/shelfcraft/pkg/core/hardware"
	"github.com/matzehuels/shelfcraft/pkg/core/pricing"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	"github.com/matzehuels/shelfcraft/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeLayout   = "layout"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
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
	}
}

// Execute runs layout → hardware → dimensions → price → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run", result.RunID[:8])
	hooks := observability.Pipeline()

	// Stage 1: Layout
	hooks.OnLayoutStart(ctx, opts.Config.Style.String(), opts.Config.NumRows)
	layoutStart := time.Now()
	res, hash, layoutHit, err := r.computeLayout(ctx, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, opts.Config.Style.String(), len(res.Panels), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = res
	result.ConfigHash = hash
	result.Stats.PanelCount = len(res.Panels)
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"style", res.Style,
		"panels", len(res.Panels),
		"fallback", res.Fallback,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stages 2-4: Hardware, dimensions, price
	result.Placements = PlaceHardware(opts.Config, res, opts.Plan)
	result.Stats.Doors = len(result.Placements.Doors)
	result.Stats.Drawers = len(result.Placements.Drawers)
	hooks.OnHardwareComplete(ctx, result.Stats.Doors, result.Stats.Drawers)
	logger.Debug("placed hardware", "doors", result.Stats.Doors, "drawers", result.Stats.Drawers)

	result.Dimensions = Annotate(opts.Config, res)
	result.Quote = Price(res, opts.Category, opts.Calculator)
	logger.Debug("priced layout",
		"category", result.Quote.Category,
		"volume", result.Quote.Volume,
		"final", result.Quote.Final)

	// Stage 5: Render
	if len(opts.Formats) == 0 {
		return result, nil
	}
	scene := Scene{
		Config:     opts.Config,
		Layout:     res,
		Placements: result.Placements,
		Dimensions: result.Dimensions,
		Quote:      result.Quote,
	}
	hooks.OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, scene, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo computes a layout with caching and reports
// whether it came from the cache.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, cfg shelf.Config) (shelf.Result, bool, error) {
	opts := Options{Config: cfg}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return shelf.Result{}, false, err
	}
	res, _, hit, err := r.computeLayout(ctx, opts)
	return res, hit, err
}

// ComputeLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, cfg shelf.Config) (shelf.Result, error) {
	res, _, err := r.ComputeLayoutWithCacheInfo(ctx, cfg)
	return res, err
}

func (r *Runner) computeLayout(ctx context.Context, opts Options) (shelf.Result, string, bool, error) {
	hash, err := cache.HashJSON(opts.Config)
	if err != nil {
		return shelf.Result{}, "", false, err
	}
	cacheKey := r.Keyer.LayoutKey(hash)

	if !opts.Refresh {
		if data, ok := r.get(ctx, cacheKey, keyTypeLayout); ok {
			var cached shelf.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, hash, true, nil
			}
			// Undecodable entries are recomputed and overwritten.
		}
	}

	res, err := ComputeLayout(opts.Config)
	if err != nil {
		return shelf.Result{}, hash, false, err
	}

	if data, err := json.Marshal(res); err == nil {
		r.set(ctx, cacheKey, keyTypeLayout, data, cache.LayoutTTL)
	}
	return res, hash, false, nil
}

// RenderWithCacheInfo renders a scene with caching and reports whether every
// artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, scene Scene, opts Options) (map[string][]byte, bool, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	if opts.Scale == 0 {
		opts.Scale = DefaultScale
	}

	sceneHash, err := cache.HashJSON(struct {
		Config     shelf.Config
		Placements hardware.Placements
		Quote      pricing.Quote
	}{scene.Config, scene.Placements, scene.Quote})
	if err != nil {
		return nil, false, fmt.Errorf("hash scene: %w", err)
	}

	artifacts := make(map[string][]byte)
	if !opts.Refresh {
		for _, format := range opts.Formats {
			data, ok := r.get(ctx, r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format)), keyTypeArtifact)
			if !ok {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := Render(ctx, scene, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		r.set(ctx, r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format)), keyTypeArtifact, data, cache.ArtifactTTL)
	}
	return rendered, false, nil
}

// get reads a cache entry. Backend errors count as misses.
func (r *Runner) get(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "key", key, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

// set writes a cache entry. Failures are logged and otherwise ignored.
func (r *Runner) set(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
