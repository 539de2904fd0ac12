package elevation

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference coordinates computed with the Krüger series (Karney, 2011).
func TestProjectorFor_OrigenNacional(t *testing.T) {
	project, err := ProjectorFor(OrigenNacional)
	require.NoError(t, err)
	require.NotNil(t, project)

	tests := []struct {
		name      string
		projected orb.Point
		want      orb.Point
	}{
		{"origin", orb.Point{5000000, 2000000}, orb.Point{-73, 4}},
		{"Medellín", orb.Point{4716441.212, 2249503.384}, orb.Point{-75.5636, 6.2518}},
		{"Leticia", orb.Point{5339544.706, 1091643.422}, orb.Point{-69.9406, -4.2153}},
		{"Riohacha", orb.Point{5010114.726, 2833715.585}, orb.Point{-72.9072, 11.5444}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := project(tt.projected)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Lon(), got.Lon(), 1e-7)
			assert.InDelta(t, tt.want.Lat(), got.Lat(), 1e-7)
		})
	}
}

func TestProjectorFor_BogotaZone(t *testing.T) {
	project, err := ProjectorFor(3116)
	require.NoError(t, err)

	got, err := project(orb.Point{1000599.986, 1012694.722})
	require.NoError(t, err)
	assert.InDelta(t, -74.0721, got.Lon(), 1e-7)
	assert.InDelta(t, 4.7110, got.Lat(), 1e-7)
}

func TestProjectorFor_LonLatPassesThrough(t *testing.T) {
	project, err := ProjectorFor(OrigenNacional)
	require.NoError(t, err)

	got, err := project(orb.Point{-75.56, 6.25})
	require.NoError(t, err)
	assert.Equal(t, orb.Point{-75.56, 6.25}, got)
}

func TestProjectorFor_Unsupported(t *testing.T) {
	_, err := ProjectorFor(32618)
	assert.Error(t, err)

	project, err := ProjectorFor(WGS84)
	require.NoError(t, err)
	assert.Nil(t, project)
}

func TestLookup_ProjectsPlanarPoints(t *testing.T) {
	var calls atomic.Int32
	srv := elevationServer(t, &calls)
	defer srv.Close()

	project, err := ProjectorFor(OrigenNacional)
	require.NoError(t, err)
	c := New(Config{URL: srv.URL}, WithProjector(project))

	got, err := c.Lookup(context.Background(), []orb.Point{{4716441.212, 2249503.384}, {-75.56, 6.25}})
	require.NoError(t, err)
	require.NotNil(t, got[0])
	require.NotNil(t, got[1])
	// The test server answers latitude*100.
	assert.InDelta(t, 625.18, *got[0], 1e-4)
	assert.InDelta(t, 625.0, *got[1], 1e-9)
}
