package types

// RolleGruppeType identifies a role group, e.g. "STYR" (Styre).
type RolleGruppeType struct {
	Kode        string `json:"kode" validate:"required"`
	Beskrivelse string `json:"beskrivelse" validate:"required"`
}

// RolleType identifies a role, e.g. "LEDE" (Styrets leder).
type RolleType struct {
	Kode        string `json:"kode" validate:"required"`
	Beskrivelse string `json:"beskrivelse" validate:"required"`
}

// RollePersonNavn is the full name of a person holding a role.
type RollePersonNavn struct {
	Fornavn    string  `json:"fornavn" validate:"required"`
	Mellomnavn *string `json:"mellomnavn,omitempty"`
	Etternavn  string  `json:"etternavn" validate:"required"`
}

// RollePerson is a person holding a role. ErDoed reads as false when the
// registry leaves it out.
type RollePerson struct {
	Fodselsdato Date            `json:"fodselsdato" validate:"required"`
	Navn        RollePersonNavn `json:"navn"`
	Verge       *RollePerson    `json:"verge,omitempty"`
	ErDoed      bool            `json:"erDoed"`
}

// RolleEnhet is an entity holding a role in another entity.
type RolleEnhet struct {
	Organisasjonsnummer string            `json:"organisasjonsnummer" validate:"required"`
	Organisasjonsform   Organisasjonsform `json:"organisasjonsform"`
	Navn                []string          `json:"navn,omitempty"`
	ErSlettet           bool              `json:"erSlettet"`
}

// RolleFullmektig is a proxy acting on behalf of the role holder.
type RolleFullmektig struct {
	Navn    *string  `json:"navn,omitempty"`
	Adresse []string `json:"adresse,omitempty"`
}

// Rolle is a single role held by either a person or an entity.
type Rolle struct {
	Type   RolleType    `json:"type"`
	Person *RollePerson `json:"person,omitempty"`
	Enhet  *RolleEnhet  `json:"enhet,omitempty"`

	// Ansvarsandel is the share of liability, as a fraction or percentage.
	Ansvarsandel *string `json:"ansvarsandel,omitempty"`

	// ValgtAv is whom the role represents, not who holds it.
	ValgtAv *RolleType `json:"valgtAv,omitempty"`

	Fratraadt   bool              `json:"fratraadt"`
	Fullmektige []RolleFullmektig `json:"fullmektige,omitempty" validate:"dive"`
	Rekkefolge  *int              `json:"rekkefolge,omitempty"`
}

// RolleGruppe is a labeled set of roles within an Enhet. Roller must be
// present but may be empty.
type RolleGruppe struct {
	Type       RolleGruppeType `json:"type"`
	SistEndret Date            `json:"sistEndret" validate:"required"`
	Roller     []Rolle         `json:"roller" validate:"required,dive"`
}

// RollerResponse is the body of /enheter/{id}/roller.
type RollerResponse struct {
	Rollegrupper []RolleGruppe `json:"rollegrupper" validate:"required,dive"`
}
