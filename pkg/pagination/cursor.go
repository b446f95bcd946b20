package pagination

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strconv"
	"sync"

	"github.com/Sternrassler/brreg-client/pkg/logging"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// ErrPageMismatch is returned when the Fetcher answers with a different page
// than the one requested. The page is not cached.
var ErrPageMismatch = errors.New("fetched page number does not match request")

// Cursor is a lazy view over all pages of one search.
//
// Pages returned by a Cursor are shared with its cache and must be treated
// as read-only. A Cursor is safe for concurrent use.
type Cursor[T any, Q Query[Q]] struct {
	fetcher       Fetcher[T, Q]
	query         Q
	numPages      int
	totalElements int
	logger        zerolog.Logger

	mu    sync.RWMutex
	pages map[int]*Page[T]
	group singleflight.Group
}

// NewCursor returns a cursor seeded with seed, the page that query produced.
// The valid page numbers are 0 through max(1, seed.TotalPages)-1.
func NewCursor[T any, Q Query[Q]](fetcher Fetcher[T, Q], query Q, seed *Page[T]) *Cursor[T, Q] {
	return &Cursor[T, Q]{
		fetcher:       fetcher,
		query:         query,
		numPages:      max(1, seed.TotalPages),
		totalElements: seed.TotalElements,
		logger:        logging.NewLogger("pagination"),
		pages:         map[int]*Page[T]{seed.Number: seed},
	}
}

// Query returns the query the cursor was created from.
func (c *Cursor[T, Q]) Query() Q {
	return c.query
}

// NumPages returns the number of valid pages. It is never less than one.
func (c *Cursor[T, Q]) NumPages() int {
	return c.numPages
}

// TotalElements returns the number of matches reported by the seed page.
func (c *Cursor[T, Q]) TotalElements() int {
	return c.totalElements
}

// PageNumbers returns the valid page numbers in ascending order.
func (c *Cursor[T, Q]) PageNumbers() []int {
	nums := make([]int, c.numPages)
	for i := range nums {
		nums[i] = i
	}
	return nums
}

// Cached reports whether page n is held in the cache.
func (c *Cursor[T, Q]) Cached(n int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.pages[n]
	return ok
}

func (c *Cursor[T, Q]) cached(n int) (*Page[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.pages[n]
	return p, ok
}

// Page returns page n. The boolean is false when n is not a valid page number,
// in which case no fetch is made. A cached page is returned without calling
// the Fetcher.
//
// Concurrent calls for the same uncached page share one fetch, which runs
// under the context of the first caller.
func (c *Cursor[T, Q]) Page(ctx context.Context, n int) (*Page[T], bool, error) {
	if n < 0 || n >= c.numPages {
		return nil, false, nil
	}
	if p, ok := c.cached(n); ok {
		PageHits.Inc()
		return p, true, nil
	}

	v, err, _ := c.group.Do(strconv.Itoa(n), func() (any, error) {
		// Another flight may have stored the page before this one started.
		if p, ok := c.cached(n); ok {
			return p, nil
		}
		return c.fetch(ctx, n)
	})
	if err != nil {
		return nil, true, err
	}
	return v.(*Page[T]), true, nil
}

func (c *Cursor[T, Q]) fetch(ctx context.Context, n int) (*Page[T], error) {
	PageFetches.Inc()

	p, err := c.fetcher.Fetch(ctx, c.query.WithPage(n))
	if err != nil {
		PageErrors.Inc()
		c.logger.Debug().Err(err).Int("page", n).Msg("Page fetch failed")
		return nil, err
	}
	if p == nil {
		PageErrors.Inc()
		return nil, fmt.Errorf("page %d: fetcher returned no page", n)
	}
	if p.Number != n {
		PageErrors.Inc()
		return nil, fmt.Errorf("%w: requested %d, got %d", ErrPageMismatch, n, p.Number)
	}

	c.mu.Lock()
	c.pages[n] = p
	c.mu.Unlock()

	c.logger.Debug().
		Int("page", n).
		Int("items", len(p.Items)).
		Int("total_pages", c.numPages).
		Msg("Page fetched")

	return p, nil
}

// Pages yields every page in ascending order, fetching as needed. Iteration
// stops after the first error, which is yielded with a nil page.
func (c *Cursor[T, Q]) Pages(ctx context.Context) iter.Seq2[*Page[T], error] {
	return func(yield func(*Page[T], error) bool) {
		for n := range c.numPages {
			p, _, err := c.Page(ctx, n)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(p, nil) {
				return
			}
		}
	}
}

// Items yields every record of every page, in page order and then in server
// order within a page. Iteration stops after the first error.
func (c *Cursor[T, Q]) Items(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for p, err := range c.Pages(ctx) {
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range p.Items {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}
