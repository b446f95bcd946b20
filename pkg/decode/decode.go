// Package decode turns Enhetsregisteret response bodies into typed records.
//
// Wire names are bound by struct tags on the types in pkg/types. Required
// fields are checked after unmarshaling, so a body that parses as JSON but
// lacks an organization number or a name is still rejected.
//
// The functions in this package are pure and never perform I/O.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Sternrassler/brreg-client/pkg/pagination"
	"github.com/Sternrassler/brreg-client/pkg/types"
	"github.com/go-playground/validator/v10"
)

// ErrDecode is matched by every error returned from this package.
var ErrDecode = errors.New("decode failed")

// Error describes a body that could not be decoded as Kind.
type Error struct {
	// Kind is the record being decoded, e.g. "enhet" or "enheter page".
	Kind string

	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDecode.
func (e *Error) Is(target error) bool {
	return target == ErrDecode
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// pageMeta is the "page" object of a search response.
type pageMeta struct {
	Size          int `json:"size"`
	Number        int `json:"number" validate:"gte=0"`
	TotalElements int `json:"totalElements" validate:"gte=0"`
	TotalPages    int `json:"totalPages" validate:"gte=0"`
}

// searchBody is the envelope of a search response. The item array sits
// under a resource specific key inside "_embedded".
type searchBody struct {
	Page     *pageMeta                  `json:"page" validate:"required"`
	Embedded map[string]json.RawMessage `json:"_embedded"`
}

func unmarshal(kind string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &Error{Kind: kind, Err: err}
	}
	if err := validate.Struct(v); err != nil {
		return &Error{Kind: kind, Err: err}
	}
	return nil
}

// Enhet decodes a single entity.
func Enhet(body []byte) (*types.Enhet, error) {
	var e types.Enhet
	if err := unmarshal("enhet", body, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Underenhet decodes a single subordinate unit.
func Underenhet(body []byte) (*types.Underenhet, error) {
	var u types.Underenhet
	if err := unmarshal("underenhet", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Roller decodes the role groups of an entity.
func Roller(body []byte) ([]types.RolleGruppe, error) {
	var r types.RollerResponse
	if err := unmarshal("roller", body, &r); err != nil {
		return nil, err
	}
	return r.Rollegrupper, nil
}

// EnhetPage decodes one page of an /enheter search.
func EnhetPage(body []byte) (*pagination.Page[types.Enhet], error) {
	return page[types.Enhet](body, "enheter")
}

// UnderenhetPage decodes one page of an /underenheter search.
func UnderenhetPage(body []byte) (*pagination.Page[types.Underenhet], error) {
	return page[types.Underenhet](body, "underenheter")
}

func page[T any](body []byte, key string) (*pagination.Page[T], error) {
	kind := key + " page"

	var env searchBody
	if err := unmarshal(kind, body, &env); err != nil {
		return nil, err
	}

	p := &pagination.Page[T]{
		Size:          env.Page.Size,
		Number:        env.Page.Number,
		TotalElements: env.Page.TotalElements,
		TotalPages:    env.Page.TotalPages,
	}

	raw, ok := env.Embedded[key]
	if !ok {
		return p, nil
	}
	if err := json.Unmarshal(raw, &p.Items); err != nil {
		return nil, &Error{Kind: kind, Err: err}
	}
	for i := range p.Items {
		if err := validate.Struct(&p.Items[i]); err != nil {
			return nil, &Error{Kind: kind, Err: fmt.Errorf("item %d: %w", i, err)}
		}
	}
	if p.Size > 0 && len(p.Items) > p.Size {
		return nil, &Error{Kind: kind, Err: fmt.Errorf("%d items exceed page size %d", len(p.Items), p.Size)}
	}
	return p, nil
}
