package client

import (
	"context"

	"github.com/Sternrassler/brreg-client/pkg/decode"
	"github.com/Sternrassler/brreg-client/pkg/pagination"
	"github.com/Sternrassler/brreg-client/pkg/query"
	"github.com/Sternrassler/brreg-client/pkg/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// EnhetCursor iterates the pages of an /enheter search.
type EnhetCursor = pagination.Cursor[types.Enhet, query.EnhetQuery]

// UnderenhetCursor iterates the pages of an /underenheter search.
type UnderenhetCursor = pagination.Cursor[types.Underenhet, query.UnderenhetQuery]

func (c *Client) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "brreg."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// GetEnhet looks up an entity by organization number. Spaces in orgnr are
// ignored. A nil entity with a nil error means the registry has no such
// entity (404) or it was removed (410).
func (c *Client) GetEnhet(ctx context.Context, orgnr string) (_ *types.Enhet, err error) {
	id, err := types.ParseOrganisasjonsnummer(orgnr)
	if err != nil {
		return nil, err
	}

	ctx, span := c.startSpan(ctx, "GetEnhet", attribute.String("brreg.orgnr", id.String()))
	defer func() { endSpan(span, err) }()

	status, body, err := c.get(ctx, request{
		op:     "get enhet",
		route:  "/enheter/{id}",
		path:   "/enheter/" + id.String(),
		accept: AcceptEnhet,
		lookup: true,
	})
	if err != nil {
		return nil, err
	}
	if isMissing(status) {
		return nil, nil
	}

	e, err := decode.Enhet(body)
	if err != nil {
		return nil, &Error{Op: "get enhet", Err: err}
	}
	return e, nil
}

// GetUnderenhet looks up a subordinate unit by organization number. It
// returns nil, nil on 404 and 410.
func (c *Client) GetUnderenhet(ctx context.Context, orgnr string) (_ *types.Underenhet, err error) {
	id, err := types.ParseOrganisasjonsnummer(orgnr)
	if err != nil {
		return nil, err
	}

	ctx, span := c.startSpan(ctx, "GetUnderenhet", attribute.String("brreg.orgnr", id.String()))
	defer func() { endSpan(span, err) }()

	status, body, err := c.get(ctx, request{
		op:     "get underenhet",
		route:  "/underenheter/{id}",
		path:   "/underenheter/" + id.String(),
		accept: AcceptUnderenhet,
		lookup: true,
	})
	if err != nil {
		return nil, err
	}
	if isMissing(status) {
		return nil, nil
	}

	u, err := decode.Underenhet(body)
	if err != nil {
		return nil, &Error{Op: "get underenhet", Err: err}
	}
	return u, nil
}

// GetRoller returns the role groups of an entity. On 404 and 410 it returns
// an empty, non-nil slice.
func (c *Client) GetRoller(ctx context.Context, orgnr string) (_ []types.RolleGruppe, err error) {
	id, err := types.ParseOrganisasjonsnummer(orgnr)
	if err != nil {
		return nil, err
	}

	ctx, span := c.startSpan(ctx, "GetRoller", attribute.String("brreg.orgnr", id.String()))
	defer func() { endSpan(span, err) }()

	status, body, err := c.get(ctx, request{
		op:     "get roller",
		route:  "/enheter/{id}/roller",
		path:   "/enheter/" + id.String() + "/roller",
		accept: AcceptJSON,
		lookup: true,
	})
	if err != nil {
		return nil, err
	}
	if isMissing(status) {
		return []types.RolleGruppe{}, nil
	}

	groups, err := decode.Roller(body)
	if err != nil {
		return nil, &Error{Op: "get roller", Err: err}
	}
	return groups, nil
}

// SearchEnhet runs an /enheter search and returns a cursor seeded with the
// page q asks for. The query is validated before any request is made.
func (c *Client) SearchEnhet(ctx context.Context, q query.EnhetQuery) (*EnhetCursor, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	seed, err := c.fetchEnheter(ctx, q)
	if err != nil {
		return nil, err
	}
	fetcher := pagination.FetcherFunc[types.Enhet, query.EnhetQuery](c.fetchEnheter)
	return pagination.NewCursor[types.Enhet, query.EnhetQuery](fetcher, q, seed), nil
}

// SearchUnderenhet runs an /underenheter search and returns a cursor.
func (c *Client) SearchUnderenhet(ctx context.Context, q query.UnderenhetQuery) (*UnderenhetCursor, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	seed, err := c.fetchUnderenheter(ctx, q)
	if err != nil {
		return nil, err
	}
	fetcher := pagination.FetcherFunc[types.Underenhet, query.UnderenhetQuery](c.fetchUnderenheter)
	return pagination.NewCursor[types.Underenhet, query.UnderenhetQuery](fetcher, q, seed), nil
}

func (c *Client) fetchEnheter(ctx context.Context, q query.EnhetQuery) (_ *pagination.Page[types.Enhet], err error) {
	ctx, span := c.startSpan(ctx, "SearchEnhet", attribute.Int("brreg.page", pageOf(q.Paging)))
	defer func() { endSpan(span, err) }()

	_, body, err := c.get(ctx, request{
		op:       "search enheter",
		route:    "/enheter",
		path:     "/enheter",
		rawQuery: q.Encode(),
		accept:   AcceptEnhet,
	})
	if err != nil {
		return nil, err
	}

	p, err := decode.EnhetPage(body)
	if err != nil {
		return nil, &Error{Op: "search enheter", Err: err}
	}
	return p, nil
}

func (c *Client) fetchUnderenheter(ctx context.Context, q query.UnderenhetQuery) (_ *pagination.Page[types.Underenhet], err error) {
	ctx, span := c.startSpan(ctx, "SearchUnderenhet", attribute.Int("brreg.page", pageOf(q.Paging)))
	defer func() { endSpan(span, err) }()

	_, body, err := c.get(ctx, request{
		op:       "search underenheter",
		route:    "/underenheter",
		path:     "/underenheter",
		rawQuery: q.Encode(),
		accept:   AcceptUnderenhet,
	})
	if err != nil {
		return nil, err
	}

	p, err := decode.UnderenhetPage(body)
	if err != nil {
		return nil, &Error{Op: "search underenheter", Err: err}
	}
	return p, nil
}

func pageOf(p query.Paging) int {
	if p.Page == nil {
		return 0
	}
	return *p.Page
}
