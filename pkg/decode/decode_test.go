package decode

import (
	"testing"
	"time"

	"github.com/Sternrassler/brreg-client/internal/testutil"
	"github.com/Sternrassler/brreg-client/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhet_Fixture(t *testing.T) {
	e, err := Enhet(testutil.Fixture("enhet"))
	require.NoError(t, err)

	assert.Equal(t, "112233445", e.Organisasjonsnummer)
	assert.Equal(t, "SESAM STASJON", e.Navn)
	assert.Equal(t, "AS", e.Organisasjonsform.Kode)
	assert.Equal(t, "Aksjeselskap", e.Organisasjonsform.Beskrivelse)
	assert.True(t, e.Organisasjonsform.Utgaatt.IsZero())
	assert.Equal(t, types.NewDate(2017, time.October, 20), e.RegistreringsdatoEnhetsregisteret)
	assert.Equal(t, types.NewDate(2017, time.October, 20), e.Stiftelsesdato)

	require.NotNil(t, e.RegistrertIMvaregisteret)
	assert.True(t, *e.RegistrertIMvaregisteret)

	require.NotNil(t, e.Naeringskode1)
	assert.Equal(t, types.Naering{Kode: "52.292", Beskrivelse: "Skipsmegling"}, *e.Naeringskode1)
	assert.Nil(t, e.Naeringskode2)

	require.NotNil(t, e.AntallAnsatte)
	assert.Equal(t, 50, *e.AntallAnsatte)
	require.NotNil(t, e.HarRegistrertAntallAnsatte)
	assert.True(t, *e.HarRegistrertAntallAnsatte)

	require.NotNil(t, e.Forretningsadresse)
	assert.Equal(t, types.Adresse{
		Land:          "Norge",
		Landkode:      "NO",
		Postnummer:    "0101",
		Poststed:      "OSLO",
		Adresse:       []string{"Tyvholmen 1", "", "", ""},
		Kommune:       "OSLO",
		Kommunenummer: "0301",
	}, *e.Forretningsadresse)
	assert.Nil(t, e.Postadresse)

	require.NotNil(t, e.InstitusjonellSektorkode)
	assert.Equal(t, "2100", e.InstitusjonellSektorkode.Kode)

	for name, flag := range map[string]*bool{
		"registrertIStiftelsesregisteret":           e.RegistrertIStiftelsesregisteret,
		"registrertIFrivillighetsregisteret":        e.RegistrertIFrivillighetsregisteret,
		"konkurs":                                   e.Konkurs,
		"underAvvikling":                            e.UnderAvvikling,
		"underTvangsavviklingEllerTvangsopplosning": e.UnderTvangsavviklingEllerTvangsopplosning,
	} {
		require.NotNil(t, flag, name)
		assert.False(t, *flag, name)
	}
	require.NotNil(t, e.RegistrertIForetaksregisteret)
	assert.True(t, *e.RegistrertIForetaksregisteret)

	require.NotNil(t, e.Maalform)
	assert.Equal(t, "Bokmål", *e.Maalform)

	assert.Nil(t, e.Hjemmeside)
	assert.Nil(t, e.OverordnetEnhet)
	assert.True(t, e.Slettedato.IsZero(), "empty slettedato must decode as absent")
	assert.False(t, e.Deleted())
}

func TestEnhet_Deleted(t *testing.T) {
	e, err := Enhet(testutil.Fixture("enhet_deleted"))
	require.NoError(t, err)

	assert.Equal(t, "123456789", e.Organisasjonsnummer)
	assert.Equal(t, "SLETTET ENHET AS", e.Navn)
	assert.Equal(t, "UTBG", e.Organisasjonsform.Kode)
	assert.Equal(t, "Frivillig registrert utleiebygg", e.Organisasjonsform.Beskrivelse)
	assert.Equal(t, types.NewDate(2017, time.July, 17), e.Organisasjonsform.Utgaatt)
	assert.Equal(t, types.NewDate(2017, time.October, 20), e.Slettedato)
	assert.True(t, e.Deleted())
	assert.True(t, e.RegistreringsdatoEnhetsregisteret.IsZero())
	assert.Nil(t, e.Konkurs)
}

func TestUnderenhet_Fixture(t *testing.T) {
	u, err := Underenhet(testutil.Fixture("underenhet"))
	require.NoError(t, err)

	assert.Equal(t, "776655441", u.Organisasjonsnummer)
	assert.Equal(t, "BEDR", u.Organisasjonsform.Kode)
	require.NotNil(t, u.OverordnetEnhet)
	assert.Equal(t, "112233445", *u.OverordnetEnhet)
	require.NotNil(t, u.Beliggenhetsadresse)
	assert.Equal(t, "0122", u.Beliggenhetsadresse.Postnummer)
	assert.Equal(t, types.NewDate(2017, time.October, 20), u.Oppstartsdato)
	assert.Equal(t, types.NewDate(2018, time.October, 20), u.Nedleggelsesdato)
	assert.True(t, u.DatoEierskifte.IsZero())
	assert.False(t, u.Deleted())

	deleted, err := Underenhet(testutil.Fixture("underenhet_deleted"))
	require.NoError(t, err)
	assert.Equal(t, "SLETTET UNDERENHET AS", deleted.Navn)
	assert.True(t, deleted.Deleted())
}

func TestEnhet_SisteInnsendteAarsregnskap(t *testing.T) {
	const base = `{"organisasjonsnummer":"112233445","navn":"X","organisasjonsform":{"kode":"AS","beskrivelse":"Aksjeselskap"}`

	tests := []struct {
		name string
		body string
		want types.Year
	}{
		{name: "number", body: base + `,"sisteInnsendteAarsregnskap":2023}`, want: 2023},
		{name: "string", body: base + `,"sisteInnsendteAarsregnskap":"2022"}`, want: 2022},
		{name: "absent", body: base + `}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Enhet([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.SisteInnsendteAarsregnskap)
		})
	}

	_, err := Enhet([]byte(base + `,"sisteInnsendteAarsregnskap":"i fjor"}`))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no organisasjonsnummer", body: `{"navn":"X","organisasjonsform":{"kode":"AS","beskrivelse":"Aksjeselskap"}}`},
		{name: "no navn", body: `{"organisasjonsnummer":"112233445","organisasjonsform":{"kode":"AS","beskrivelse":"Aksjeselskap"}}`},
		{name: "no organisasjonsform", body: `{"organisasjonsnummer":"112233445","navn":"X"}`},
		{name: "bad date", body: `{"organisasjonsnummer":"112233445","navn":"X","organisasjonsform":{"kode":"AS","beskrivelse":"Aksjeselskap"},"stiftelsesdato":"20.10.2017"}`},
		{name: "not json", body: `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Enhet([]byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecode)

			var de *Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, "enhet", de.Kind)
		})
	}
}

func TestRoller_Fixture(t *testing.T) {
	groups, err := Roller(testutil.Fixture("roller"))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	styre := groups[0]
	assert.Equal(t, "STYR", styre.Type.Kode)
	assert.Equal(t, "Styre", styre.Type.Beskrivelse)
	assert.Equal(t, types.NewDate(2019, time.January, 1), styre.SistEndret)
	require.Len(t, styre.Roller, 1)

	leder := styre.Roller[0]
	assert.Equal(t, "LEDE", leder.Type.Kode)
	assert.Equal(t, "Styrets leder", leder.Type.Beskrivelse)
	require.NotNil(t, leder.Person)
	assert.Nil(t, leder.Enhet)
	assert.Equal(t, "Ove", leder.Person.Navn.Fornavn)
	assert.Equal(t, "Olsen", leder.Person.Navn.Etternavn)
	assert.Nil(t, leder.Person.Navn.Mellomnavn)
	assert.Equal(t, types.NewDate(1981, time.January, 1), leder.Person.Fodselsdato)
	require.NotNil(t, leder.ValgtAv)
	assert.Equal(t, "A-AK", leder.ValgtAv.Kode)
	assert.False(t, leder.Fratraadt)
	require.NotNil(t, leder.Rekkefolge)
	assert.Equal(t, 0, *leder.Rekkefolge)
	assert.Empty(t, leder.Fullmektige)

	deltakere := groups[1]
	assert.Equal(t, "DELT", deltakere.Type.Kode)
	assert.Equal(t, types.NewDate(2021, time.February, 1), deltakere.SistEndret)
	require.Len(t, deltakere.Roller, 2)

	first := deltakere.Roller[0]
	assert.Equal(t, "DTPR", first.Type.Kode)
	assert.Equal(t, "Deltaker med delt ansvar", first.Type.Beskrivelse)
	require.NotNil(t, first.Enhet)
	assert.Equal(t, "810006242", first.Enhet.Organisasjonsnummer)
	assert.Equal(t, "AS", first.Enhet.Organisasjonsform.Kode)
	assert.Equal(t, []string{"Rolfsens Deltakerorganisasjon AS"}, first.Enhet.Navn)
	require.NotNil(t, first.Ansvarsandel)
	assert.Equal(t, "50%", *first.Ansvarsandel)

	second := deltakere.Roller[1]
	assert.Equal(t, "810004282", second.Enhet.Organisasjonsnummer)
	assert.Equal(t, []string{"Sult AS"}, second.Enhet.Navn)
	assert.Equal(t, 1, *second.Rekkefolge)
}

func TestRoller_MissingGroups(t *testing.T) {
	_, err := Roller([]byte(`{}`))
	assert.ErrorIs(t, err, ErrDecode)

	_, err = Roller([]byte(`{"rollegrupper":[{"type":{"kode":"STYR","beskrivelse":"Styre"},"roller":[{"type":{}}]}]}`))
	assert.ErrorIs(t, err, ErrDecode, "role type code is required")
}

func TestRoller_RequiredFields(t *testing.T) {
	const person = `{"fodselsdato":"1981-01-01","navn":{"fornavn":"Ove","etternavn":"Olsen"},"erDoed":false}`
	group := func(fields string) []byte {
		return []byte(`{"rollegrupper":[{"type":{"kode":"STYR","beskrivelse":"Styre"}` + fields + `}]}`)
	}
	role := `{"type":{"kode":"LEDE","beskrivelse":"Styrets leder"},"person":` + person + `,"fratraadt":false}`

	tests := []struct {
		name    string
		input   []byte
		wantErr bool
	}{
		{"complete", group(`,"sistEndret":"2019-01-01","roller":[` + role + `]`), false},
		{"empty roles", group(`,"sistEndret":"2019-01-01","roller":[]`), false},
		{"missing roles", group(`,"sistEndret":"2019-01-01"`), true},
		{"null roles", group(`,"sistEndret":"2019-01-01","roller":null`), true},
		{"missing sistEndret", group(`,"roller":[` + role + `]`), true},
		{
			"person without fodselsdato",
			group(`,"sistEndret":"2019-01-01","roller":[{"type":{"kode":"LEDE","beskrivelse":"Styrets leder"},` +
				`"person":{"navn":{"fornavn":"Ove","etternavn":"Olsen"}}}]`),
			true,
		},
		{
			"guardian without fodselsdato",
			group(`,"sistEndret":"2019-01-01","roller":[{"type":{"kode":"LEDE","beskrivelse":"Styrets leder"},` +
				`"person":{"fodselsdato":"1981-01-01","navn":{"fornavn":"Ove","etternavn":"Olsen"},` +
				`"verge":{"navn":{"fornavn":"Kari","etternavn":"Olsen"}}}}]`),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Roller(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDecode)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEnhetPage(t *testing.T) {
	p, err := EnhetPage(testutil.Fixture("search_enheter_page0"))
	require.NoError(t, err)

	assert.Equal(t, 2, p.Size)
	assert.Equal(t, 0, p.Number)
	assert.Equal(t, 3, p.TotalElements)
	assert.Equal(t, 2, p.TotalPages)
	require.Len(t, p.Items, 2)
	assert.Equal(t, "SESAM AS", p.Items[0].Navn)
	assert.Equal(t, "SESAM FAMILIEBARNEHAGE", p.Items[1].Navn)

	p, err = EnhetPage(testutil.Fixture("search_enheter_page1"))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Number)
	require.Len(t, p.Items, 1)
	assert.Equal(t, "SESAM FILMKLUBB", p.Items[0].Navn)
}

func TestEnhetPage_Empty(t *testing.T) {
	p, err := EnhetPage(testutil.Fixture("search_empty"))
	require.NoError(t, err)

	assert.Equal(t, 20, p.Size)
	assert.Equal(t, 0, p.TotalElements)
	assert.Equal(t, 0, p.TotalPages)
	assert.Empty(t, p.Items)
}

func TestUnderenhetPage(t *testing.T) {
	p, err := UnderenhetPage(testutil.Fixture("search_underenheter"))
	require.NoError(t, err)
	require.Len(t, p.Items, 1)
	assert.Equal(t, "776655441", p.Items[0].Organisasjonsnummer)

	// The enheter key is not read for underenheter pages.
	p, err = UnderenhetPage(testutil.Fixture("search_enheter_page0"))
	require.NoError(t, err)
	assert.Empty(t, p.Items)
}

func TestPage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no page object", body: `{"_embedded":{"enheter":[]}}`},
		{name: "negative number", body: `{"page":{"size":20,"number":-1,"totalElements":0,"totalPages":0}}`},
		{name: "invalid item", body: `{"page":{"size":20,"number":0,"totalElements":1,"totalPages":1},"_embedded":{"enheter":[{"navn":"X"}]}}`},
		{name: "too many items", body: `{"page":{"size":1,"number":0,"totalElements":2,"totalPages":2},"_embedded":{"enheter":[` +
			`{"organisasjonsnummer":"923609016","navn":"A","organisasjonsform":{"kode":"AS","beskrivelse":"Aksjeselskap"}},` +
			`{"organisasjonsnummer":"998127703","navn":"B","organisasjonsform":{"kode":"AS","beskrivelse":"Aksjeselskap"}}]}}`},
		{name: "items not an array", body: `{"page":{"size":20,"number":0,"totalElements":0,"totalPages":0},"_embedded":{"enheter":{}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EnhetPage([]byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}
