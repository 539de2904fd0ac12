package core

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/paulmach/orb/geojson"
)

// GeometryColumn is the column under which feature geometries are exposed.
const GeometryColumn = "geometry"

// FeatureReader serves the features of a GeoJSON collection as rows: the
// feature properties plus the geometry under GeometryColumn.
type FeatureReader struct {
	features []*geojson.Feature
	columns  []string
	pos      int

	// Raw geometries orb decoded despite missing coordinates, by feature index.
	rawGeometry map[int]string
}

// NewGeoJSONReader decodes a FeatureCollection from r.
func NewGeoJSONReader(r io.Reader) (*FeatureReader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read geojson: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("invalid geojson: %w", err)
	}
	fr := NewFeatureReader(fc)

	var raw struct {
		Features []struct {
			Geometry json.RawMessage `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid geojson: %w", err)
	}
	for i, f := range raw.Features {
		if len(f.Geometry) == 0 || string(f.Geometry) == "null" {
			continue
		}
		if checkCoordinates(f.Geometry) != nil {
			if fr.rawGeometry == nil {
				fr.rawGeometry = make(map[int]string)
			}
			fr.rawGeometry[i] = string(f.Geometry)
		}
	}
	return fr, nil
}

// NewFeatureReader wraps an already decoded collection.
func NewFeatureReader(fc *geojson.FeatureCollection) *FeatureReader {
	seen := map[string]bool{GeometryColumn: true}
	columns := []string{}
	for _, f := range fc.Features {
		for k := range f.Properties {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)
	return &FeatureReader{
		features: fc.Features,
		columns:  append(columns, GeometryColumn),
	}
}

func (r *FeatureReader) Columns() []string { return r.columns }

func (r *FeatureReader) Next() (Row, error) {
	if r.pos >= len(r.features) {
		return nil, io.EOF
	}
	i := r.pos
	f := r.features[i]
	r.pos++

	row := make(Row, len(f.Properties)+1)
	for k, v := range f.Properties {
		row[k] = v
	}
	if raw, ok := r.rawGeometry[i]; ok {
		row[GeometryColumn] = raw
	} else if f.Geometry != nil {
		row[GeometryColumn] = f.Geometry
	} else {
		row[GeometryColumn] = nil
	}
	return row, nil
}
