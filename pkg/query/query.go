// Package query builds the URL query strings for Enhetsregisteret searches.
//
// Every query type lists its wire names explicitly in Encode. Only fields
// that are set are serialized:
//
//	q := query.EnhetQuery{Navn: "Sesam", Paging: query.Paging{Size: query.Int(2)}}
//	q.Encode() // "navn=Sesam&size=2"
//
// Queries are values. WithPage returns a copy and never modifies the receiver.
// Slice fields are shared between copies and must not be modified after the
// query has been handed to a search.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Sternrassler/brreg-client/pkg/types"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidQuery is wrapped by every error returned from Validate.
var ErrInvalidQuery = errors.New("invalid query")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Sort is the sort order of a result set.
type Sort string

const (
	// SortAsc sorts ascending.
	SortAsc Sort = "ASC"

	// SortDesc sorts descending.
	SortDesc Sort = "DESC"
)

// Paging holds the fields shared by all searches.
type Paging struct {
	// Sort is the sort order. Empty means the server default.
	Sort Sort `validate:"omitempty,oneof=ASC DESC"`

	// Size is the page size. Nil means the server default (20).
	Size *int `validate:"omitempty,gt=0"`

	// Page is the 0-indexed page number. Nil means the first page.
	Page *int `validate:"omitempty,gte=0"`
}

func (p Paging) withPage(n int) Paging {
	p.Page = Int(n)
	return p
}

func (p Paging) encode(e *encoder) {
	e.str("sort", string(p.Sort))
	e.int("size", p.Size)
	e.int("page", p.Page)
}

// Int returns a pointer to n, for optional integer fields.
func Int(n int) *int { return &n }

// Bool returns a pointer to b, for optional boolean fields.
func Bool(b bool) *bool { return &b }

// encoder collects set fields in their wire representation.
type encoder struct {
	values url.Values
}

func newEncoder() *encoder {
	return &encoder{values: url.Values{}}
}

func (e *encoder) str(key, v string) {
	if v != "" {
		e.values.Set(key, v)
	}
}

func (e *encoder) int(key string, v *int) {
	if v != nil {
		e.values.Set(key, strconv.Itoa(*v))
	}
}

func (e *encoder) bool(key string, v *bool) {
	if v != nil {
		e.values.Set(key, strconv.FormatBool(*v))
	}
}

func (e *encoder) date(key string, d types.Date) {
	if !d.IsZero() {
		e.values.Set(key, d.String())
	}
}

func (e *encoder) code(key string, c fmt.Stringer) {
	e.str(key, c.String())
}

func (e *encoder) list(key string, vs []string) {
	if len(vs) > 0 {
		e.values.Set(key, strings.Join(vs, ","))
	}
}

// encode returns the canonical form: keys sorted, values percent-encoded.
func (e *encoder) encode() string {
	return e.values.Encode()
}

func stringsOf[T fmt.Stringer](vs []T) []string {
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

func validateStruct(q any) error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return nil
}
