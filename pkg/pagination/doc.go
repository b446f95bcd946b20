// Package pagination presents a multi-page search result as a lazy,
// randomly accessible and cached sequence of pages.
//
// A Cursor is seeded with the first page of a search and the query that
// produced it. Further pages are fetched on demand by re-issuing the query
// with only its page number replaced, so the page size and every filter are
// preserved:
//
//	cursor := pagination.NewCursor(fetcher, q, seed)
//	for item, err := range cursor.Items(ctx) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(item.Navn)
//	}
//
// Behavior:
//   - A cursor always exposes at least one page. A search with no results
//     has exactly page 0, which is empty.
//   - Cached pages are served without calling the Fetcher. The cache only
//     grows for the lifetime of the cursor.
//   - Pages and Items yield in ascending page order and can be iterated any
//     number of times. Once all pages are cached, iterating costs no fetches.
//   - Concurrent requests for the same uncached page share a single fetch.
//   - A failed fetch is returned to the caller and leaves the cache as it was.
//   - Prefetch fetches every missing page with bounded concurrency. It only
//     runs when called.
package pagination
