package query

import "github.com/Sternrassler/brreg-client/pkg/types"

// UnderenhetQuery is the filter set for /underenheter searches.
type UnderenhetQuery struct {
	Paging

	Navn                string
	Organisasjonsnummer []types.Organisasjonsnummer

	// OverordnetEnhet is the organization number of the owning Enhet.
	OverordnetEnhet types.Organisasjonsnummer

	FraAntallAnsatte *int `validate:"omitempty,gt=0"`
	TilAntallAnsatte *int `validate:"omitempty,gt=0"`

	RegistrertIMvaregisteret *bool

	FraRegistreringsdatoEnhetsregisteret types.Date
	TilRegistreringsdatoEnhetsregisteret types.Date
	FraOppstartsdato                     types.Date
	TilOppstartsdato                     types.Date
	FraDatoEierskifte                    types.Date
	TilDatoEierskifte                    types.Date
	FraNedleggelsesdato                  types.Date
	TilNedleggelsesdato                  types.Date

	Organisasjonsform []string `validate:"dive,excludes=0x2C"`
	Hjemmeside        string

	PostadresseKommunenummer []types.Kommunenummer
	PostadressePostnummer    []types.Postnummer
	PostadressePoststed      string
	PostadresseLandkode      []string `validate:"dive,excludes=0x2C"`
	PostadresseAdresse       string

	// Kommunenummer filters on the location address municipality.
	Kommunenummer                 []types.Kommunenummer
	BeliggenhetsadressePostnummer []types.Postnummer
	BeliggenhetsadressePoststed   string
	BeliggenhetsadresseLandkode   []string `validate:"dive,excludes=0x2C"`
	BeliggenhetsadresseAdresse    string

	Naeringskode []types.Naeringskode
}

// Validate checks field ranges and list items.
func (q UnderenhetQuery) Validate() error {
	return validateStruct(q)
}

// WithPage returns a copy of q that requests page n.
func (q UnderenhetQuery) WithPage(n int) UnderenhetQuery {
	q.Paging = q.Paging.withPage(n)
	return q
}

// Encode returns the URL query string for q.
func (q UnderenhetQuery) Encode() string {
	e := newEncoder()
	q.Paging.encode(e)

	e.str("navn", q.Navn)
	e.list("organisasjonsnummer", stringsOf(q.Organisasjonsnummer))
	e.code("overordnetEnhet", q.OverordnetEnhet)
	e.int("fraAntallAnsatte", q.FraAntallAnsatte)
	e.int("tilAntallAnsatte", q.TilAntallAnsatte)
	e.bool("registrertIMvaregisteret", q.RegistrertIMvaregisteret)

	e.date("fraRegistreringsdatoEnhetsregisteret", q.FraRegistreringsdatoEnhetsregisteret)
	e.date("tilRegistreringsdatoEnhetsregisteret", q.TilRegistreringsdatoEnhetsregisteret)
	e.date("fraOppstartsdato", q.FraOppstartsdato)
	e.date("tilOppstartsdato", q.TilOppstartsdato)
	e.date("fraDatoEierskifte", q.FraDatoEierskifte)
	e.date("tilDatoEierskifte", q.TilDatoEierskifte)
	e.date("fraNedleggelsesdato", q.FraNedleggelsesdato)
	e.date("tilNedleggelsesdato", q.TilNedleggelsesdato)

	e.list("organisasjonsform", q.Organisasjonsform)
	e.str("hjemmeside", q.Hjemmeside)

	e.list("postadresse.kommunenummer", stringsOf(q.PostadresseKommunenummer))
	e.list("postadresse.postnummer", stringsOf(q.PostadressePostnummer))
	e.str("postadresse.poststed", q.PostadressePoststed)
	e.list("postadresse.landkode", q.PostadresseLandkode)
	e.str("postadresse.adresse", q.PostadresseAdresse)

	e.list("kommunenummer", stringsOf(q.Kommunenummer))
	e.list("beliggenhetsadresse.postnummer", stringsOf(q.BeliggenhetsadressePostnummer))
	e.str("beliggenhetsadresse.poststed", q.BeliggenhetsadressePoststed)
	e.list("beliggenhetsadresse.landkode", q.BeliggenhetsadresseLandkode)
	e.str("beliggenhetsadresse.adresse", q.BeliggenhetsadresseAdresse)

	e.list("naeringskode", stringsOf(q.Naeringskode))

	return e.encode()
}
