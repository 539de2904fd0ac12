package application

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/geoanla/internal/catalog"
	"github.com/JonMunkholm/geoanla/internal/config"
	"github.com/JonMunkholm/geoanla/internal/core"
)

func writeSubdivisions(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "municipios.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,nombre\n5001,Medellín\n76001,Cali\n"), 0o600))
	return path
}

func testConfig(path string) *config.Config {
	return &config.Config{
		Catalog:    config.CatalogConfig{SubdivisionsPath: path},
		Validation: config.ValidationConfig{MaxConcurrent: 2, MaxWaitTime: time.Second, Timeout: time.Minute},
		Results:    config.ResultsConfig{Capacity: 5},
		Elevation:  config.ElevationConfig{URL: "http://localhost:1/lookup", BatchSize: 10},
	}
}

func TestNew(t *testing.T) {
	cfg := testConfig(writeSubdivisions(t))

	app, err := New(context.Background(), cfg, WithRegisterer(prometheus.NewRegistry()))
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.Pool)
	assert.NotNil(t, app.Metrics)
	assert.NotNil(t, app.Elevation)
	assert.Equal(t, 2, app.Service.Limiter().MaxConcurrent())
	assert.Contains(t, app.Service.DomainNames(), catalog.SubdivisionDomain)
	assert.NotEmpty(t, app.Service.ListSchemas())

	_, err = app.Service.ValidateQuery(context.Background(), "any", "SELECT 1", 0)
	assert.ErrorIs(t, err, core.ErrNoDatabase)
}

func TestNew_WithoutElevationOrMetrics(t *testing.T) {
	cfg := testConfig(writeSubdivisions(t))
	cfg.Elevation.URL = ""

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, app.Elevation)
	assert.Nil(t, app.Metrics)
}

func TestNew_MissingReferenceData(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.csv"))

	_, err := New(context.Background(), cfg)
	assert.ErrorIs(t, err, catalog.ErrReferenceDataMissing)
}

func TestNew_BadDatabaseURL(t *testing.T) {
	cfg := testConfig(writeSubdivisions(t))
	cfg.Database.URL = "::not a url"

	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNew_ElevationReprojectsPlanarPoints(t *testing.T) {
	var sent []float64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Locations []struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"locations"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		results := make([]map[string]float64, len(req.Locations))
		for i, l := range req.Locations {
			sent = append(sent, l.Longitude, l.Latitude)
			results[i] = map[string]float64{"latitude": l.Latitude, "longitude": l.Longitude, "elevation": 1495}
		}
		json.NewEncoder(w).Encode(map[string]any{"results": results})
	}))
	defer srv.Close()

	cfg := testConfig(writeSubdivisions(t))
	cfg.Elevation.URL = srv.URL

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)

	// Medellín in MAGNA-SIRGAS Origen-Nacional.
	got, err := app.Elevation.Lookup(context.Background(), []orb.Point{{4716441.212, 2249503.384}})
	require.NoError(t, err)
	require.NotNil(t, got[0])
	assert.Equal(t, 1495.0, *got[0])

	require.Len(t, sent, 2)
	assert.InDelta(t, -75.5636, sent[0], 1e-7)
	assert.InDelta(t, 6.2518, sent[1], 1e-7)
}

func TestNew_UnsupportedSourceCRS(t *testing.T) {
	cfg := testConfig(writeSubdivisions(t))
	cfg.Elevation.SourceCRS = 32618

	_, err := New(context.Background(), cfg)
	assert.ErrorContains(t, err, "EPSG:32618")
}
