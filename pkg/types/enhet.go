package types

// Organisasjonsform is the legal form of an entity, e.g. "AS".
type Organisasjonsform struct {
	Kode        string `json:"kode" validate:"required"`
	Beskrivelse string `json:"beskrivelse" validate:"required"`

	// Utgaatt is set when the legal form is no longer valid.
	Utgaatt Date `json:"utgaatt"`
}

// Naering is an industry code with its description.
type Naering struct {
	Kode        string `json:"kode,omitempty"`
	Beskrivelse string `json:"beskrivelse,omitempty"`
}

// InstitusjonellSektor is the institutional sector code of an entity.
type InstitusjonellSektor struct {
	Kode        string `json:"kode,omitempty"`
	Beskrivelse string `json:"beskrivelse,omitempty"`
}

// Adresse is a postal, business or location address.
// Address lines that are null on the wire decode to "".
type Adresse struct {
	Adresse       []string `json:"adresse,omitempty"`
	Postnummer    string   `json:"postnummer,omitempty"`
	Poststed      string   `json:"poststed,omitempty"`
	Kommunenummer string   `json:"kommunenummer,omitempty"`
	Kommune       string   `json:"kommune,omitempty"`
	Landkode      string   `json:"landkode,omitempty"`
	Land          string   `json:"land,omitempty"`
}

// Enhet is a top-level registered entity (company, association, sole
// proprietorship) identified by its organization number.
type Enhet struct {
	Organisasjonsnummer string            `json:"organisasjonsnummer" validate:"required"`
	Navn                string            `json:"navn" validate:"required"`
	Organisasjonsform   Organisasjonsform `json:"organisasjonsform"`
	Hjemmeside          *string           `json:"hjemmeside,omitempty"`
	Postadresse         *Adresse          `json:"postadresse,omitempty"`

	RegistreringsdatoEnhetsregisteret  Date     `json:"registreringsdatoEnhetsregisteret"`
	RegistrertIMvaregisteret           *bool    `json:"registrertIMvaregisteret,omitempty"`
	FrivilligMvaRegistrertBeskrivelser []string `json:"frivilligMvaRegistrertBeskrivelser,omitempty"`

	Naeringskode1    *Naering `json:"naeringskode1,omitempty"`
	Naeringskode2    *Naering `json:"naeringskode2,omitempty"`
	Naeringskode3    *Naering `json:"naeringskode3,omitempty"`
	Hjelpeenhetskode *Naering `json:"hjelpeenhetskode,omitempty"`

	AntallAnsatte              *int  `json:"antallAnsatte,omitempty"`
	HarRegistrertAntallAnsatte *bool `json:"harRegistrertAntallAnsatte,omitempty"`

	// OverordnetEnhet is the organization number of the parent entity in the
	// public sector. It is a reference, never resolved eagerly.
	OverordnetEnhet *string `json:"overordnetEnhet,omitempty"`

	Forretningsadresse       *Adresse              `json:"forretningsadresse,omitempty"`
	Stiftelsesdato           Date                  `json:"stiftelsesdato"`
	InstitusjonellSektorkode *InstitusjonellSektor `json:"institusjonellSektorkode,omitempty"`

	RegistrertIForetaksregisteret      *bool `json:"registrertIForetaksregisteret,omitempty"`
	RegistrertIStiftelsesregisteret    *bool `json:"registrertIStiftelsesregisteret,omitempty"`
	RegistrertIFrivillighetsregisteret *bool `json:"registrertIFrivillighetsregisteret,omitempty"`

	// SisteInnsendteAarsregnskap is the year of the last submitted annual
	// accounts. The registry sends it as a number or a string.
	SisteInnsendteAarsregnskap Year `json:"sisteInnsendteAarsregnskap,omitempty"`

	Konkurs                                   *bool `json:"konkurs,omitempty"`
	Konkursdato                               Date  `json:"konkursdato"`
	UnderAvvikling                            *bool `json:"underAvvikling,omitempty"`
	UnderAvviklingDato                        Date  `json:"underAvviklingDato"`
	UnderTvangsavviklingEllerTvangsopplosning *bool `json:"underTvangsavviklingEllerTvangsopplosning,omitempty"`

	Maalform              *string  `json:"maalform,omitempty"`
	Vedtektsdato          Date     `json:"vedtektsdato"`
	VedtektsfestetFormaal []string `json:"vedtektsfestetFormaal,omitempty"`
	Aktivitet             []string `json:"aktivitet,omitempty"`

	Nedleggelsesdato Date `json:"nedleggelsesdato"`
	Slettedato       Date `json:"slettedato"`
}

// Deleted reports whether the registry has a deletion date for the entity.
func (e *Enhet) Deleted() bool { return !e.Slettedato.IsZero() }

// Underenhet is a subordinate unit, usually a physical business location,
// that always belongs to a parent Enhet.
type Underenhet struct {
	Organisasjonsnummer string            `json:"organisasjonsnummer" validate:"required"`
	Navn                string            `json:"navn" validate:"required"`
	Organisasjonsform   Organisasjonsform `json:"organisasjonsform"`
	Hjemmeside          *string           `json:"hjemmeside,omitempty"`
	Postadresse         *Adresse          `json:"postadresse,omitempty"`

	RegistreringsdatoEnhetsregisteret  Date     `json:"registreringsdatoEnhetsregisteret"`
	RegistrertIMvaregisteret           *bool    `json:"registrertIMvaregisteret,omitempty"`
	FrivilligMvaRegistrertBeskrivelser []string `json:"frivilligMvaRegistrertBeskrivelser,omitempty"`

	Naeringskode1    *Naering `json:"naeringskode1,omitempty"`
	Naeringskode2    *Naering `json:"naeringskode2,omitempty"`
	Naeringskode3    *Naering `json:"naeringskode3,omitempty"`
	Hjelpeenhetskode *Naering `json:"hjelpeenhetskode,omitempty"`

	AntallAnsatte              *int  `json:"antallAnsatte,omitempty"`
	HarRegistrertAntallAnsatte *bool `json:"harRegistrertAntallAnsatte,omitempty"`

	// OverordnetEnhet is the organization number of the owning Enhet.
	OverordnetEnhet *string `json:"overordnetEnhet,omitempty"`

	Beliggenhetsadresse *Adresse `json:"beliggenhetsadresse,omitempty"`
	Oppstartsdato       Date     `json:"oppstartsdato"`
	DatoEierskifte      Date     `json:"datoEierskifte"`
	Nedleggelsesdato    Date     `json:"nedleggelsesdato"`
	Slettedato          Date     `json:"slettedato"`
}

// Deleted reports whether the registry has a deletion date for the unit.
func (u *Underenhet) Deleted() bool { return !u.Slettedato.IsZero() }
