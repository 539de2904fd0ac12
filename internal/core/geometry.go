package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

// GeometryFamily groups geometry types the way feature classes do: a point
// class accepts points and multipoints, and so on.
type GeometryFamily string

const (
	FamilyPoint   GeometryFamily = "point"
	FamilyLine    GeometryFamily = "line"
	FamilyPolygon GeometryFamily = "polygon"
)

var errInvalidGeometry = errors.New("invalid geometry")

// ToGeometry converts a raw value to an orb.Geometry. It accepts orb values,
// GeoJSON geometry objects (decoded or as maps) and WKT text.
func ToGeometry(v any) (orb.Geometry, error) {
	switch x := v.(type) {
	case orb.Geometry:
		return x, nil
	case *geojson.Geometry:
		if x == nil || x.Geometry() == nil {
			return nil, errInvalidGeometry
		}
		return x.Geometry(), nil
	case map[string]any:
		raw, err := json.Marshal(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidGeometry, err)
		}
		if err := checkCoordinates(raw); err != nil {
			return nil, err
		}
		g, err := geojson.UnmarshalGeometry(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidGeometry, err)
		}
		return g.Geometry(), nil
	case string:
		s := strings.TrimSpace(x)
		if strings.HasPrefix(s, "{") {
			if err := checkCoordinates([]byte(s)); err != nil {
				return nil, err
			}
			g, err := geojson.UnmarshalGeometry([]byte(s))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", errInvalidGeometry, err)
			}
			return g.Geometry(), nil
		}
		g, err := wkt.Unmarshal(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidGeometry, err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: unsupported %T", errInvalidGeometry, v)
	}
}

// checkCoordinates rejects a GeoJSON geometry without coordinates. orb
// decodes {"type":"Point","coordinates":[]} as POINT(0 0).
func checkCoordinates(raw []byte) error {
	var g struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(raw, &g); err != nil {
		return fmt.Errorf("%w: %v", errInvalidGeometry, err)
	}
	if g.Type == "GeometryCollection" {
		return nil
	}
	c := bytes.Join(bytes.Fields(g.Coordinates), nil)
	if len(c) == 0 || string(c) == "null" || string(c) == "[]" {
		return fmt.Errorf("%w: %s has no coordinates", errInvalidGeometry, g.Type)
	}
	return nil
}

// FamilyOf returns the family of g.
func FamilyOf(g orb.Geometry) (GeometryFamily, bool) {
	switch g.(type) {
	case orb.Point, orb.MultiPoint:
		return FamilyPoint, true
	case orb.LineString, orb.MultiLineString:
		return FamilyLine, true
	case orb.Polygon, orb.MultiPolygon, orb.Ring:
		return FamilyPolygon, true
	default:
		return "", false
	}
}

// emptiness returns a reason when g has no usable coordinates.
func emptiness(g orb.Geometry) string {
	switch x := g.(type) {
	case orb.MultiPoint:
		if len(x) == 0 {
			return "multipoint has no points"
		}
	case orb.LineString:
		if len(x) < 2 {
			return "line needs at least two vertices"
		}
	case orb.MultiLineString:
		if len(x) == 0 {
			return "multiline has no lines"
		}
		for _, ls := range x {
			if len(ls) < 2 {
				return "line needs at least two vertices"
			}
		}
	case orb.Ring:
		if len(x) < 4 {
			return "ring needs at least four vertices"
		}
	case orb.Polygon:
		if len(x) == 0 || len(x[0]) < 4 {
			return "polygon ring needs at least four vertices"
		}
	case orb.MultiPolygon:
		if len(x) == 0 {
			return "multipolygon has no polygons"
		}
		for _, p := range x {
			if len(p) == 0 || len(p[0]) < 4 {
				return "polygon ring needs at least four vertices"
			}
		}
	}
	return ""
}
