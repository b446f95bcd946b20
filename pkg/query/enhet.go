package query

import "github.com/Sternrassler/brreg-client/pkg/types"

// EnhetQuery is the filter set for /enheter searches.
type EnhetQuery struct {
	Paging

	// Navn matches the entity name.
	Navn string

	Organisasjonsnummer []types.Organisasjonsnummer

	// OverordnetEnhet is the organization number of the parent entity.
	OverordnetEnhet types.Organisasjonsnummer

	FraAntallAnsatte *int `validate:"omitempty,gt=0"`
	TilAntallAnsatte *int `validate:"omitempty,gt=0"`

	Konkurs                            *bool
	RegistrertIMvaregisteret           *bool
	RegistrertIForetaksregisteret      *bool
	RegistrertIStiftelsesregisteret    *bool
	RegistrertIFrivillighetsregisteret *bool
	FrivilligRegistrertIMvaregisteret  []string `validate:"dive,excludes=0x2C"`

	UnderTvangsavviklingEllerTvangsopplosning *bool
	UnderAvvikling                            *bool

	FraRegistreringsdatoEnhetsregisteret types.Date
	TilRegistreringsdatoEnhetsregisteret types.Date
	FraStiftelsesdato                    types.Date
	TilStiftelsesdato                    types.Date

	Organisasjonsform        []string `validate:"dive,excludes=0x2C"`
	Hjemmeside               string
	InstitusjonellSektorkode []types.Sektorkode

	PostadresseKommunenummer []types.Kommunenummer
	PostadressePostnummer    []types.Postnummer
	PostadressePoststed      string
	PostadresseLandkode      []string `validate:"dive,excludes=0x2C"`
	PostadresseAdresse       string

	// Kommunenummer filters on the business address municipality.
	Kommunenummer                []types.Kommunenummer
	ForretningsadressePostnummer []types.Postnummer
	ForretningsadressePoststed   string
	ForretningsadresseLandkode   []string `validate:"dive,excludes=0x2C"`
	ForretningsadresseAdresse    string

	Naeringskode               []types.Naeringskode
	SisteInnsendteAarsregnskap []string `validate:"dive,excludes=0x2C"`
}

// Validate checks field ranges and list items. Code-typed fields are
// validated when they are parsed.
func (q EnhetQuery) Validate() error {
	return validateStruct(q)
}

// WithPage returns a copy of q that requests page n.
func (q EnhetQuery) WithPage(n int) EnhetQuery {
	q.Paging = q.Paging.withPage(n)
	return q
}

// Encode returns the URL query string for q.
func (q EnhetQuery) Encode() string {
	e := newEncoder()
	q.Paging.encode(e)

	e.str("navn", q.Navn)
	e.list("organisasjonsnummer", stringsOf(q.Organisasjonsnummer))
	e.code("overordnetEnhet", q.OverordnetEnhet)
	e.int("fraAntallAnsatte", q.FraAntallAnsatte)
	e.int("tilAntallAnsatte", q.TilAntallAnsatte)

	e.bool("konkurs", q.Konkurs)
	e.bool("registrertIMvaregisteret", q.RegistrertIMvaregisteret)
	e.bool("registrertIForetaksregisteret", q.RegistrertIForetaksregisteret)
	e.bool("registrertIStiftelsesregisteret", q.RegistrertIStiftelsesregisteret)
	e.bool("registrertIFrivillighetsregisteret", q.RegistrertIFrivillighetsregisteret)
	e.list("frivilligRegistrertIMvaregisteret", q.FrivilligRegistrertIMvaregisteret)
	e.bool("underTvangsavviklingEllerTvangsopplosning", q.UnderTvangsavviklingEllerTvangsopplosning)
	e.bool("underAvvikling", q.UnderAvvikling)

	e.date("fraRegistreringsdatoEnhetsregisteret", q.FraRegistreringsdatoEnhetsregisteret)
	e.date("tilRegistreringsdatoEnhetsregisteret", q.TilRegistreringsdatoEnhetsregisteret)
	e.date("fraStiftelsesdato", q.FraStiftelsesdato)
	e.date("tilStiftelsesdato", q.TilStiftelsesdato)

	e.list("organisasjonsform", q.Organisasjonsform)
	e.str("hjemmeside", q.Hjemmeside)
	e.list("institusjonellSektorkode", stringsOf(q.InstitusjonellSektorkode))

	e.list("postadresse.kommunenummer", stringsOf(q.PostadresseKommunenummer))
	e.list("postadresse.postnummer", stringsOf(q.PostadressePostnummer))
	e.str("postadresse.poststed", q.PostadressePoststed)
	e.list("postadresse.landkode", q.PostadresseLandkode)
	e.str("postadresse.adresse", q.PostadresseAdresse)

	e.list("kommunenummer", stringsOf(q.Kommunenummer))
	e.list("forretningsadresse.postnummer", stringsOf(q.ForretningsadressePostnummer))
	e.str("forretningsadresse.poststed", q.ForretningsadressePoststed)
	e.list("forretningsadresse.landkode", q.ForretningsadresseLandkode)
	e.str("forretningsadresse.adresse", q.ForretningsadresseAdresse)

	e.list("naeringskode", stringsOf(q.Naeringskode))
	e.list("sisteInnsendteAarsregnskap", q.SisteInnsendteAarsregnskap)

	return e.encode()
}
