package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/geoanla/internal/catalog"
)

// sampleSchema is a small record type exercising every field type, a domain
// of each kind and the common rule families.
func sampleSchema() Schema {
	return Schema{
		Info: SchemaInfo{Key: "Muestra", Group: "Pruebas", Label: "Muestra"},
		Fields: []FieldSpec{
			{Name: "ID_MUEST", Type: FieldText, Required: true, MaxLen: 20},
			{Name: "MUNICIPIO", Type: FieldText, Required: true, Domain: catalog.SubdivisionDomain},
			{Name: "ESTACIONAL", Type: FieldDecimal, Required: true, Domain: "Dom_Temporada"},
			{Name: "COTA", Type: FieldDecimal, Required: true, Min: Bound(0), Max: Bound(6000)},
			{Name: "INDIVIDUOS", Type: FieldInteger, Min: Bound(0)},
			{Name: "FEC_INI", Type: FieldDate, Required: true},
			{Name: "FEC_FIN", Type: FieldDate},
			{Name: "VEDA", Type: FieldDecimal, Domain: "Dom_Veda"},
			{Name: "RESOLUCION", Type: FieldText, MaxLen: 20},
			{Name: "geometry", Aliases: []string{"WKT"}, Type: FieldGeometry},
		},
		Rules: []Rule{
			Chronology("FEC_INI", "FEC_FIN"),
			RequiredWhen("VEDA", "RESOLUCION"),
			GeometryShape("geometry", FamilyPoint),
		},
		Identifiers: []string{"ID_MUEST"},
	}
}

// sampleRow returns a row sampleSchema accepts.
func sampleRow(id string) Row {
	return Row{
		"ID_MUEST":   id,
		"MUNICIPIO":  "05001",
		"ESTACIONAL": "Seco",
		"COTA":       "1495,5",
		"INDIVIDUOS": "3",
		"FEC_INI":    "2024-05-01",
		"FEC_FIN":    "2024-06-01",
		"WKT":        "POINT (-75.56 6.25)",
	}
}

func testCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	subs, err := catalog.LoadSubdivisions(strings.NewReader("id,nombre\n5001,Medellín\n76001,Cali\n"))
	require.NoError(t, err)
	cat, err := catalog.Default(subs)
	require.NoError(t, err)
	return cat
}

func testRegistry(t testing.TB, opts ...RegistryOption) *DomainRegistry {
	t.Helper()
	reg, err := NewDomainRegistry(testCatalog(t), opts...)
	require.NoError(t, err)
	return reg
}

// withSchemas replaces the schema registry for the duration of the test.
func withSchemas(t testing.TB, schemas ...Schema) {
	t.Helper()
	Clear()
	for _, s := range schemas {
		Register(s)
	}
	t.Cleanup(Clear)
}

func sampleValidator(t testing.TB) *RowValidator {
	t.Helper()
	s := sampleSchema()
	bindings, err := testRegistry(t).DomainsOf(s)
	require.NoError(t, err)
	return NewRowValidator(s, bindings)
}
