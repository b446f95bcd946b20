// Package types defines the registry records returned by the Enhetsregisteret API
// and the fixed-format code types used to query it.
package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrInvalidFormat is matched by every FormatError.
var ErrInvalidFormat = errors.New("invalid format")

// FormatError describes a code value that failed validation.
type FormatError struct {
	// Kind is the code type, e.g. "organisasjonsnummer".
	Kind string

	// Value is the rejected input after normalization.
	Value string

	// Reason is a short human readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// codeFormat is the length and pattern a fixed-format code must satisfy.
type codeFormat struct {
	kind    string
	length  int
	pattern *regexp.Regexp
}

var (
	organisasjonsnummerFormat = codeFormat{"organisasjonsnummer", 9, regexp.MustCompile(`^\d{9}$`)}
	kommunenummerFormat       = codeFormat{"kommunenummer", 4, regexp.MustCompile(`^\d{4}$`)}
	postnummerFormat          = codeFormat{"postnummer", 4, regexp.MustCompile(`^\d{4}$`)}
	sektorkodeFormat          = codeFormat{"sektorkode", 4, regexp.MustCompile(`^\d{4}$`)}
	naeringskodeFormat        = codeFormat{"naeringskode", 6, regexp.MustCompile(`^\d{2}\.\d{3}$`)}
)

func (f codeFormat) check(value string) error {
	n := utf8.RuneCountInString(value)
	switch {
	case n < f.length:
		return &FormatError{Kind: f.kind, Value: value, Reason: fmt.Sprintf("should have at least %d characters, got %d", f.length, n)}
	case n > f.length:
		return &FormatError{Kind: f.kind, Value: value, Reason: fmt.Sprintf("should have at most %d characters, got %d", f.length, n)}
	case !f.pattern.MatchString(value):
		return &FormatError{Kind: f.kind, Value: value, Reason: fmt.Sprintf("should match pattern %s", f.pattern)}
	}
	return nil
}

// Organisasjonsnummer is a validated 9-digit organization number.
// The zero value means "not set".
type Organisasjonsnummer struct {
	value string
}

// ParseOrganisasjonsnummer strips all spaces from s and validates the result.
// "112 233 445" is accepted and normalized to "112233445".
func ParseOrganisasjonsnummer(s string) (Organisasjonsnummer, error) {
	s = strings.ReplaceAll(s, " ", "")
	if err := organisasjonsnummerFormat.check(s); err != nil {
		return Organisasjonsnummer{}, err
	}
	return Organisasjonsnummer{value: s}, nil
}

// MustOrganisasjonsnummer is like ParseOrganisasjonsnummer but panics on invalid input.
func MustOrganisasjonsnummer(s string) Organisasjonsnummer {
	o, err := ParseOrganisasjonsnummer(s)
	if err != nil {
		panic(err)
	}
	return o
}

// String returns the compact 9-digit form.
func (o Organisasjonsnummer) String() string { return o.value }

// IsZero reports whether o is unset.
func (o Organisasjonsnummer) IsZero() bool { return o.value == "" }

// MarshalText implements encoding.TextMarshaler.
func (o Organisasjonsnummer) MarshalText() ([]byte, error) { return []byte(o.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler and validates the input.
func (o *Organisasjonsnummer) UnmarshalText(b []byte) error {
	parsed, err := ParseOrganisasjonsnummer(string(b))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Kommunenummer is a validated 4-digit municipality number.
type Kommunenummer struct {
	value string
}

// ParseKommunenummer validates s as a municipality number.
func ParseKommunenummer(s string) (Kommunenummer, error) {
	if err := kommunenummerFormat.check(s); err != nil {
		return Kommunenummer{}, err
	}
	return Kommunenummer{value: s}, nil
}

// MustKommunenummer is like ParseKommunenummer but panics on invalid input.
func MustKommunenummer(s string) Kommunenummer {
	k, err := ParseKommunenummer(s)
	if err != nil {
		panic(err)
	}
	return k
}

// String returns the municipality number as written, or "" for the zero value.
func (k Kommunenummer) String() string { return k.value }

// IsZero reports whether k is unset.
func (k Kommunenummer) IsZero() bool { return k.value == "" }

// Postnummer is a validated 4-digit postal code.
type Postnummer struct {
	value string
}

// ParsePostnummer validates s as a postal code.
func ParsePostnummer(s string) (Postnummer, error) {
	if err := postnummerFormat.check(s); err != nil {
		return Postnummer{}, err
	}
	return Postnummer{value: s}, nil
}

// MustPostnummer is like ParsePostnummer but panics on invalid input.
func MustPostnummer(s string) Postnummer {
	p, err := ParsePostnummer(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the postal code as written, or "" for the zero value.
func (p Postnummer) String() string { return p.value }

// IsZero reports whether p is unset.
func (p Postnummer) IsZero() bool { return p.value == "" }

// Sektorkode is a validated 4-digit institutional sector code.
type Sektorkode struct {
	value string
}

// ParseSektorkode validates s as a sector code.
func ParseSektorkode(s string) (Sektorkode, error) {
	if err := sektorkodeFormat.check(s); err != nil {
		return Sektorkode{}, err
	}
	return Sektorkode{value: s}, nil
}

// MustSektorkode is like ParseSektorkode but panics on invalid input.
func MustSektorkode(s string) Sektorkode {
	k, err := ParseSektorkode(s)
	if err != nil {
		panic(err)
	}
	return k
}

// String returns the sector code as written, or "" for the zero value.
func (k Sektorkode) String() string { return k.value }

// IsZero reports whether k is unset.
func (k Sektorkode) IsZero() bool { return k.value == "" }

// Naeringskode is a validated industry code of the form "NN.NNN".
type Naeringskode struct {
	value string
}

// ParseNaeringskode validates s as an industry code.
func ParseNaeringskode(s string) (Naeringskode, error) {
	if err := naeringskodeFormat.check(s); err != nil {
		return Naeringskode{}, err
	}
	return Naeringskode{value: s}, nil
}

// MustNaeringskode is like ParseNaeringskode but panics on invalid input.
func MustNaeringskode(s string) Naeringskode {
	k, err := ParseNaeringskode(s)
	if err != nil {
		panic(err)
	}
	return k
}

// String returns the industry code as written, or "" for the zero value.
func (k Naeringskode) String() string { return k.value }

// IsZero reports whether k is unset.
func (k Naeringskode) IsZero() bool { return k.value == "" }
