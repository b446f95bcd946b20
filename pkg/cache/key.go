package cache

import (
	"net/url"
	"strings"
)

// Key identifies a cached lookup.
type Key struct {
	// Endpoint is the request path, e.g. "/enheter/112233445/roller".
	Endpoint string

	// Query holds the request query, if any.
	Query url.Values
}

// String returns the canonical form "brreg:<path>[?<query>]". Query keys
// are sorted, so equal keys always give equal strings.
//
//	brreg:enheter/112233445/roller
//	brreg:enheter?navn=Sesam&size=2
func (k Key) String() string {
	var b strings.Builder
	b.WriteString("brreg:")
	b.WriteString(strings.Trim(k.Endpoint, "/"))
	if q := k.Query.Encode(); q != "" {
		b.WriteByte('?')
		b.WriteString(q)
	}
	return b.String()
}
