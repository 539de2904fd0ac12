package catalog

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIsTotalOverCodeDescriptionAndName(t *testing.T) {
	for _, d := range Static() {
		for _, m := range d.Members() {
			code, ok := d.Resolve(m.Code)
			require.True(t, ok, "%s: code %s", d.Name(), m.Code)
			assert.Equal(t, m.Code, code)

			code, ok = d.Resolve(m.Description)
			require.True(t, ok, "%s: description %q", d.Name(), m.Description)
			assert.Equal(t, m.Code, code, "%s: description %q", d.Name(), m.Description)

			code, ok = d.Resolve(strings.ToLower(m.Name))
			require.True(t, ok, "%s: name %q", d.Name(), m.Name)
			assert.Equal(t, m.Code, code, "%s: name %q", d.Name(), m.Name)
		}
	}
}

func TestUnionQualifiesSharedNames(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"ZONAS_INDUSTRIALES_COMERCIALES", "121"},
		{"ZONAS_INDUSTRIALES_COMERCIALES_12", "12"},
		{"ZONAS_EXTRACCION_MINERA", "131"},
		{"zonas_extraccion_minera_13", "13"},
		{"Zonas de extracción minera y escombreras", "13"},
	}
	for _, tt := range tests {
		code, ok := NomenclaturaCLC.Resolve(tt.token)
		require.True(t, ok, tt.token)
		assert.Equal(t, tt.want, code, tt.token)
	}

	// The merged levels keep their own names.
	m, ok := SubcatCober.Member("12")
	require.True(t, ok)
	assert.Equal(t, "ZONAS_INDUSTRIALES_COMERCIALES", m.Name)
}

func TestUnionSharedDescriptions(t *testing.T) {
	a := mustNumeric("Dom_A", nm(1, "UNO", "Bosque"))
	b := mustNumeric("Dom_B", nm(11, "ONCE", "bosque"))
	u, err := Union("Dom_AB", a, b)
	require.NoError(t, err)

	code, ok := u.Resolve("Bosque")
	require.True(t, ok)
	assert.Equal(t, "11", code)

	code, ok = u.Resolve("Bosque (1)")
	require.True(t, ok)
	assert.Equal(t, "1", code)
}

func TestResolveAbsentTokens(t *testing.T) {
	for _, raw := range []any{nil, "", "   ", "nan", "NaN", "None", "null", "0", "0.0", 0, 0.0, math.NaN(),
		pgtype.Numeric{}, pgtype.Numeric{NaN: true, Valid: true}, pgtype.Numeric{Int: big.NewInt(0), Valid: true}} {
		_, ok := Veda.Resolve(raw)
		assert.False(t, ok, "%#v should resolve to nothing", raw)
	}
}

func TestResolveUnmatched(t *testing.T) {
	_, ok := Habito.Resolve("not a habit")
	assert.False(t, ok)

	_, ok = CateCober.Resolve(9)
	assert.False(t, ok)
}

func TestResolveNumericForms(t *testing.T) {
	tests := []struct {
		raw  any
		want string
	}{
		{311, "311"},
		{311.0, "311"},
		{"311", "311"},
		{" 311.0 ", "311"},
		{int64(311), "311"},
		{pgtype.Numeric{Int: big.NewInt(311), Valid: true}, "311"},
		{pgtype.Numeric{Int: big.NewInt(3110), Exp: -1, Valid: true}, "311"},
		{"Bosque denso", "311"},
		{"BOSQUE DENSO", "311"},
	}

	for _, tt := range tests {
		got, ok := ClasCober.Resolve(tt.raw)
		require.True(t, ok, "%#v", tt.raw)
		assert.Equal(t, tt.want, got, "%#v", tt.raw)
	}
}

func TestResolveTextDomainKeepsRepresentation(t *testing.T) {
	code, ok := Departamento.Resolve("05")
	require.True(t, ok)
	assert.Equal(t, "05", code)

	_, ok = Departamento.Resolve(5)
	assert.False(t, ok, "numeric 5 is not the code \"05\"")

	code, ok = Departamento.Resolve("antioquia")
	require.True(t, ok)
	assert.Equal(t, "05", code)
}

func TestDescribe(t *testing.T) {
	desc, ok := SubActComp.Describe("1211")
	require.True(t, ok)
	assert.Equal(t, "Otra", desc)

	desc, ok = SubActComp.Describe("9999")
	assert.False(t, ok)
	assert.Empty(t, desc)
}

func TestValue(t *testing.T) {
	assert.Equal(t, int64(311), ClasCober.Value("311", true))
	assert.Equal(t, 311.0, ClasCober.Value("311", false))
	assert.Equal(t, "05", Departamento.Value("05", true))
}

func TestNewNumericRejectsDuplicates(t *testing.T) {
	_, err := NewNumeric("Dom_Test", nm(1, "A", "a"), Member{Code: "1.0", Name: "B", Description: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate code")
}

func TestNewTextEnforcesWidth(t *testing.T) {
	_, err := NewText("Dom_Test", 2, tm("5", "X", "x"))
	assert.Error(t, err)
}

func TestUnionRejectsMixedKinds(t *testing.T) {
	_, err := Union("Dom_Mixed", Veda, Departamento)
	assert.Error(t, err)
}

func TestNomenclaturaCoversAllLevels(t *testing.T) {
	total := 0
	for _, level := range CLCLevels {
		total += level.Len()
		for _, code := range level.Codes() {
			assert.True(t, NomenclaturaCLC.Contains(code), code)
		}
	}
	assert.Equal(t, total, NomenclaturaCLC.Len())
}

func TestCatalog(t *testing.T) {
	subdivisions, err := NewText(SubdivisionDomain, SubdivisionWidth, tm("05001", "MEDELLIN_05001", "Medellín"))
	require.NoError(t, err)

	c, err := Default(subdivisions)
	require.NoError(t, err)
	assert.Equal(t, len(Static())+1, c.Len())

	d, ok := c.Domain("Dom_Municipio")
	require.True(t, ok)
	assert.Same(t, subdivisions, d)

	_, ok = c.Domain("Dom_Nope")
	assert.False(t, ok)

	names := c.Names()
	assert.IsIncreasing(t, names)
}

func TestDefaultRequiresSubdivisions(t *testing.T) {
	_, err := Default(nil)
	assert.ErrorIs(t, err, ErrReferenceDataMissing)
}

func TestNewCatalogRejectsDuplicateNames(t *testing.T) {
	_, err := New(Veda, Veda)
	assert.Error(t, err)
}
