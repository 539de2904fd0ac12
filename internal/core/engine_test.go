package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/geoanla/internal/metrics"
)

func sampleRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = sampleRow(fmt.Sprintf("M-%02d", i))
	}
	return rows
}

// failingReader returns its rows and then err.
type failingReader struct {
	rows []Row
	err  error
}

func (f *failingReader) Columns() []string { return []string{"ID_MUEST"} }

func (f *failingReader) Next() (Row, error) {
	if len(f.rows) == 0 {
		return nil, f.err
	}
	row := f.rows[0]
	f.rows = f.rows[1:]
	return row, nil
}

func TestEngineRun_OneBadRow(t *testing.T) {
	withSchemas(t, sampleSchema())
	m := metrics.New(prometheus.NewRegistry())
	engine := NewEngine(testRegistry(t), WithMetrics(m))

	rows := sampleRows(10)
	rows[3]["COTA"] = "7000"

	res, err := engine.Run(context.Background(), NewRecordsReader(rows), "Muestra", 0)
	require.NoError(t, err)

	assert.Equal(t, 10, res.Total)
	assert.Len(t, res.Accepted, 9)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 3, res.Errors[0].Row)
	assert.Equal(t, "M-03", res.Errors[0].Identifier)
	assert.Equal(t, "[COTA]: must be between 0 and 6000", res.Errors[0].Message())
	assert.False(t, res.Valid())

	assert.Equal(t, 9.0, testutil.ToFloat64(m.Rows.WithLabelValues("Muestra", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Violations.WithLabelValues("Muestra", "range")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Batches.WithLabelValues("Muestra", "complete")))
}

func TestEngineRun_Offset(t *testing.T) {
	withSchemas(t, sampleSchema())
	engine := NewEngine(testRegistry(t))

	rows := sampleRows(5)
	rows[4]["FEC_INI"] = "31/02/2024"

	res, err := engine.Run(context.Background(), NewRecordsReader(rows), "Muestra", 5000)
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 5004, res.Errors[0].Row)
	assert.Equal(t, 5000, res.Offset)
}

func TestEngineRun_AcceptedRecordsHoldEveryField(t *testing.T) {
	withSchemas(t, sampleSchema())
	engine := NewEngine(testRegistry(t))

	res, err := engine.Run(context.Background(), NewRecordsReader(sampleRows(1)), "Muestra", 0)
	require.NoError(t, err)
	require.Len(t, res.Accepted, 1)

	rec := res.Accepted[0]
	for _, f := range sampleSchema().Fields {
		assert.Contains(t, rec, f.Name)
	}
	assert.Nil(t, rec["VEDA"])
	assert.Equal(t, "05001", rec["MUNICIPIO"])
	assert.Equal(t, 1495.5, rec["COTA"])
}

func TestEngineExtract_MissingColumns(t *testing.T) {
	withSchemas(t, sampleSchema())
	m := metrics.New(prometheus.NewRegistry())
	engine := NewEngine(testRegistry(t), WithMetrics(m))

	row := sampleRow("M-01")
	delete(row, "INDIVIDUOS")
	row["OBSERVACION"] = "sin novedad"

	b, err := engine.Extract(context.Background(), NewRecordsReader([]Row{row}), "muestra")
	require.NoError(t, err)
	assert.Equal(t, PhaseExtracting, b.Phase)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, []string{"INDIVIDUOS", "VEDA", "RESOLUCION"}, b.Missing)
	assert.Equal(t, []string{"OBSERVACION"}, b.Extra)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.MissingColumns.WithLabelValues("Muestra")))

	res, err := engine.Validate(context.Background(), b, 0)
	require.NoError(t, err)
	assert.Len(t, res.Accepted, 1)
	assert.Equal(t, b.Missing, res.Missing)
	assert.Equal(t, "Muestra: 1 rows, 1 accepted, 0 rejected (missing columns: INDIVIDUOS, VEDA, RESOLUCION)", res.Summary())
}

func TestEngineExtract_Fatal(t *testing.T) {
	withSchemas(t, sampleSchema(), Schema{
		Info:   SchemaInfo{Key: "Roto", Group: "Pruebas"},
		Fields: []FieldSpec{{Name: "X", Type: FieldText, Domain: "Dom_Inexistente"}},
	})
	engine := NewEngine(testRegistry(t))
	ctx := context.Background()

	_, err := engine.Extract(ctx, NewRecordsReader(sampleRows(1)), "Desconocido")
	assert.ErrorIs(t, err, ErrSchemaNotFound)

	_, err = engine.Extract(ctx, nil, "Muestra")
	assert.ErrorIs(t, err, ErrUnsupportedSource)

	_, err = engine.Extract(ctx, NewRecordsReader(nil), "Roto")
	assert.ErrorIs(t, err, ErrDomainNotFound)

	_, err = OpenSource(42)
	assert.ErrorIs(t, err, ErrUnsupportedSource)
}

func TestEngineValidate_Cancelled(t *testing.T) {
	withSchemas(t, sampleSchema())
	engine := NewEngine(testRegistry(t))

	b, err := engine.Extract(context.Background(), NewRecordsReader(sampleRows(3)), "Muestra")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := engine.Validate(ctx, b, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, PhaseFailed, b.Phase)
}

func TestEngineValidate_ReadError(t *testing.T) {
	withSchemas(t, sampleSchema())
	engine := NewEngine(testRegistry(t))

	broken := errors.New("disk unplugged")
	src := &failingReader{rows: sampleRows(2), err: broken}

	res, err := engine.Run(context.Background(), src, "Muestra", 10)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, broken)
	assert.Contains(t, err.Error(), "read row 12")
}

func TestEngineValidate_OnlyOnce(t *testing.T) {
	withSchemas(t, sampleSchema())
	engine := NewEngine(testRegistry(t))
	ctx := context.Background()

	b, err := engine.Extract(ctx, NewRecordsReader(sampleRows(1)), "Muestra")
	require.NoError(t, err)
	_, err = engine.Validate(ctx, b, 0)
	require.NoError(t, err)
	assert.Equal(t, PhaseComplete, b.Phase)

	_, err = engine.Validate(ctx, b, 0)
	assert.Error(t, err)

	_, err = engine.Validate(ctx, nil, 0)
	assert.Error(t, err)
}

func TestEngineRun_IdentifierFallback(t *testing.T) {
	withSchemas(t, sampleSchema())
	engine := NewEngine(testRegistry(t))

	rows := sampleRows(3)
	rows[2]["ID_MUEST"] = ""

	res, err := engine.Run(context.Background(), NewRecordsReader(rows), "Muestra", 0)
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "row 2", res.Errors[0].Identifier)
	assert.Equal(t, "[ID_MUEST]: missing required field", res.Errors[0].Message())
}

func TestIdentify_JoinsIdentifiers(t *testing.T) {
	s := Schema{
		Fields:      []FieldSpec{{Name: "ID_VEDA"}, {Name: "EXPEDIENTE"}},
		Identifiers: []string{"ID_VEDA", "EXPEDIENTE"},
	}
	assert.Equal(t, "V-7 LAV0012-00-2016", identify(Row{"ID_VEDA": "V-7", "EXPEDIENTE": "LAV0012-00-2016"}, s, nil, 4))
	assert.Equal(t, "LAV0012-00-2016", identify(Row{"id_veda": nil, "expediente": "LAV0012-00-2016"}, s, nil, 4))
	assert.Equal(t, "row 4", identify(Row{}, s, nil, 4))
}

func TestEngineRun_CSV(t *testing.T) {
	withSchemas(t, sampleSchema())
	engine := NewEngine(testRegistry(t))

	input := strings.Join([]string{
		"ID_MUEST;MUNICIPIO;ESTACIONAL;COTA;INDIVIDUOS;FEC_INI;FEC_FIN;VEDA;RESOLUCION;WKT",
		"M-01;Medellín;301;1495,5;3;01/05/2024;01/06/2024;;;POINT (-75.56 6.25)",
		"M-02;76001;húmedo;980;2;2024-06-01;2024-05-01;;;POINT (-76.52 3.43)",
		"M-03;Bogotá;Seco;980;;2024-06-01;;;;LINESTRING (0 0, 1 1)",
	}, "\n")

	src, err := NewCSVReader(strings.NewReader(input), CSVOptions{})
	require.NoError(t, err)

	res, err := engine.Run(context.Background(), src, "Muestra", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Accepted, 1)
	assert.Equal(t, "05001", res.Accepted[0]["MUNICIPIO"])
	assert.Equal(t, 301.0, res.Accepted[0]["ESTACIONAL"])

	require.Len(t, res.Errors, 2)
	assert.Equal(t, "M-02", res.Errors[0].Identifier)
	assert.Equal(t, "FEC_FIN", res.Errors[0].Errors[0].Field)
	assert.Equal(t, KindRule, res.Errors[0].Errors[0].Kind)

	fields := []string{}
	for _, e := range res.Errors[1].Errors {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"MUNICIPIO", "geometry"}, fields)
}

func TestReadAll(t *testing.T) {
	rows, err := ReadAll(NewRecordsReader(sampleRows(3)))
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	broken := errors.New("boom")
	rows, err = ReadAll(&failingReader{rows: sampleRows(1), err: broken})
	assert.ErrorIs(t, err, broken)
	assert.Len(t, rows, 1)

	_, err = (&failingReader{err: io.EOF}).Next()
	assert.ErrorIs(t, err, io.EOF)
}
