package pagination

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// PrefetchConfig holds prefetch configuration.
type PrefetchConfig struct {
	// MaxConcurrency is the maximum number of parallel page fetches.
	MaxConcurrency int

	// Timeout per page fetch. Zero means no per-page timeout.
	Timeout time.Duration
}

// DefaultPrefetchConfig returns a configuration that stays polite towards
// the public registry.
func DefaultPrefetchConfig() PrefetchConfig {
	return PrefetchConfig{
		MaxConcurrency: 4,
		Timeout:        15 * time.Second,
	}
}

// Prefetch fetches every page that is not yet cached, running at most
// cfg.MaxConcurrency fetches at a time. The first failure cancels the
// remaining fetches and is returned. Pages fetched before the failure stay
// cached.
func (c *Cursor[T, Q]) Prefetch(ctx context.Context, cfg PrefetchConfig) error {
	return c.PrefetchRange(ctx, cfg, 0, c.numPages)
}

// PrefetchRange is Prefetch restricted to the pages in [from, to). The range
// is clamped to the cursor's pages.
func (c *Cursor[T, Q]) PrefetchRange(ctx context.Context, cfg PrefetchConfig, from, to int) error {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultPrefetchConfig().MaxConcurrency
	}
	from = max(from, 0)
	to = min(to, c.numPages)

	var missing []int
	for n := from; n < to; n++ {
		if !c.Cached(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	start := time.Now()
	c.logger.Info().
		Int("pages", len(missing)).
		Int("total_pages", c.numPages).
		Int("concurrency", cfg.MaxConcurrency).
		Msg("Starting page prefetch")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.MaxConcurrency)

	for _, n := range missing {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			pageCtx := gctx
			if cfg.Timeout > 0 {
				var cancel context.CancelFunc
				pageCtx, cancel = context.WithTimeout(gctx, cfg.Timeout)
				defer cancel()
			}

			if _, _, err := c.Page(pageCtx, n); err != nil {
				return fmt.Errorf("prefetch page %d: %w", n, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.Warn().
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("Prefetch stopped")
		return err
	}

	c.logger.Info().
		Int("pages", len(missing)).
		Dur("duration", time.Since(start)).
		Msg("Prefetch complete")
	return nil
}
