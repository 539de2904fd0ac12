package core

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/geoanla/internal/catalog"
)

func newTestService(t *testing.T, opts ...ServiceOption) *Service {
	t.Helper()
	withSchemas(t, sampleSchema())
	return NewService(NewEngine(testRegistry(t)), opts...)
}

func TestServiceValidate_StoresResult(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.Validate(ctx, "Muestra", NewRecordsReader(sampleRows(2)), 0)
	require.NoError(t, err)

	stored, err := svc.Result(res.BatchID)
	require.NoError(t, err)
	assert.Same(t, res, stored)

	_, err = svc.Result("nope")
	assert.ErrorIs(t, err, ErrResultNotFound)
	assert.Equal(t, "BAT004", MapError(err).Code)
}

func TestServiceRecentResults(t *testing.T) {
	svc := newTestService(t, WithResultCapacity(2))
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		res, err := svc.Validate(ctx, "Muestra", NewRecordsReader(sampleRows(i+1)), 0)
		require.NoError(t, err)
		ids = append(ids, res.BatchID)
	}

	entries := svc.RecentResults(0)
	require.Len(t, entries, 2)
	assert.Equal(t, ids[2], entries[0].BatchID)
	assert.Equal(t, 3, entries[0].Total)
	assert.Equal(t, ids[1], entries[1].BatchID)

	_, err := svc.Result(ids[0])
	assert.ErrorIs(t, err, ErrResultNotFound)

	assert.Len(t, svc.RecentResults(1), 1)
}

func TestServicePruneResults(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Validate(context.Background(), "Muestra", NewRecordsReader(sampleRows(1)), 0)
	require.NoError(t, err)

	assert.Equal(t, 0, svc.pruneResults(time.Now().Add(-time.Hour)))
	assert.Equal(t, 1, svc.pruneResults(time.Now().Add(time.Second)))
	assert.Empty(t, svc.RecentResults(10))
}

func TestServiceResultJanitor(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Validate(context.Background(), "Muestra", NewRecordsReader(sampleRows(1)), 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.StartResultJanitor(ctx, RetentionConfig{MaxAge: time.Nanosecond, CheckInterval: 5 * time.Millisecond})
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(svc.RecentResults(0)) == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestServiceValidate_Failures(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Validate(ctx, "Nada", NewRecordsReader(nil), 0)
	assert.ErrorIs(t, err, ErrSchemaNotFound)
	assert.Empty(t, svc.RecentResults(0))

	_, err = svc.ValidateQuery(ctx, "Muestra", "SELECT 1", 0)
	assert.ErrorIs(t, err, ErrNoDatabase)
}

func TestServiceValidateCSVAndGeoJSON(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	csv := "ID_MUEST,MUNICIPIO,ESTACIONAL,COTA,FEC_INI,WKT\nM-01,Cali,Medio,980,2024-02-01,POINT (1 2)\n"
	res, err := svc.ValidateCSV(ctx, "Muestra", strings.NewReader(csv), CSVOptions{}, 0)
	require.NoError(t, err)
	assert.Len(t, res.Accepted, 1)

	geo := `{"type":"FeatureCollection","features":[{"type":"Feature",
		"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]},
		"properties":{"ID_MUEST":"M-02","MUNICIPIO":"76001","ESTACIONAL":303,"COTA":980,"FEC_INI":"2024-02-01"}}]}`
	res, err = svc.ValidateGeoJSON(ctx, "Muestra", strings.NewReader(geo), 20)
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 20, res.Errors[0].Row)
	assert.Equal(t, KindGeometry, res.Errors[0].Errors[0].Kind)
}

func TestServiceStream(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.Stream(context.Background(), "Muestra", NewRecordsReader(sampleRows(5)), 2, func(*Result) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Chunks)
	assert.Empty(t, svc.RecentResults(0))
}

func TestServiceDomains(t *testing.T) {
	svc := newTestService(t)

	assert.Contains(t, svc.DomainNames(), "Dom_Temporada")
	assert.Contains(t, svc.DomainNames(), catalog.SubdivisionDomain)

	m, ok, err := svc.Resolve("Dom_Temporada", "seco")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "301", m.Code)
	assert.Equal(t, "Seco", m.Description)

	_, ok, err = svc.Resolve("Dom_Temporada", "Lluvioso")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = svc.Resolve("Dom_Nada", "x")
	assert.ErrorIs(t, err, ErrDomainNotFound)
}

func TestServiceSchemas(t *testing.T) {
	svc := newTestService(t)

	infos := svc.ListSchemas()
	require.Len(t, infos, 1)
	assert.Equal(t, "Muestra", infos[0].Key)
	assert.Len(t, svc.ListSchemasByGroup()["Pruebas"], 1)

	_, err := svc.Schema("muestra")
	assert.NoError(t, err)
}

func TestLoadRegistry(t *testing.T) {
	dir := t.TempDir()
	subs := filepath.Join(dir, "municipios.csv")
	dicts := filepath.Join(dir, "dictionaries.yaml")
	require.NoError(t, os.WriteFile(subs, []byte("id,nombre\n5001,Medellín\n"), 0o644))
	require.NoError(t, os.WriteFile(dicts, []byte("RESOLUCION:\n  \"0213\": Resolución 0213 de 1977\n"), 0o644))

	reg, err := LoadRegistry(subs, dicts)
	require.NoError(t, err)
	bindings, err := reg.DomainsOf(sampleSchema())
	require.NoError(t, err)
	assert.True(t, bindings["RESOLUCION"].External)

	_, err = LoadRegistry(filepath.Join(dir, "missing.csv"), "")
	assert.ErrorIs(t, err, catalog.ErrReferenceDataMissing)
	assert.Equal(t, "CAT001", MapError(err).Code)
}
