package pagination

import "context"

// Page is one page of a search result.
type Page[T any] struct {
	// Items holds the records on this page in server order.
	Items []T

	// Size is the requested page size.
	Size int

	// Number is the 0-indexed page number.
	Number int

	TotalElements int
	TotalPages    int
}

// Query is a search query that can be re-issued for another page.
// WithPage must return a copy and leave the receiver unchanged.
type Query[Q any] interface {
	WithPage(n int) Q
}

// Fetcher runs a search and returns the page the query asks for.
type Fetcher[T any, Q Query[Q]] interface {
	Fetch(ctx context.Context, q Q) (*Page[T], error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc[T any, Q Query[Q]] func(ctx context.Context, q Q) (*Page[T], error)

// Fetch calls f(ctx, q).
func (f FetcherFunc[T, Q]) Fetch(ctx context.Context, q Q) (*Page[T], error) {
	return f(ctx, q)
}
