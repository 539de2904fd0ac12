package elevation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"github.com/JonMunkholm/geoanla/internal/core"
)

// DefaultTarget is the field elevations are written to.
const DefaultTarget = "COTA"

// ErrNoGeometry is returned when a record type declares no geometry field.
var ErrNoGeometry = errors.New("record type has no geometry field")

// Augment looks up the elevation of every point geometry in rows and writes
// it under target. Rows without a point geometry, and points the service
// could not resolve, are left untouched. It returns how many rows were
// updated.
func (c *Client) Augment(ctx context.Context, rows []core.Row, geomField, target string) (int, error) {
	if target == "" {
		target = DefaultTarget
	}

	var (
		points []orb.Point
		owners []int
	)
	for i, row := range rows {
		raw, ok := row[geomField]
		if !ok || raw == nil {
			continue
		}
		g, err := core.ToGeometry(raw)
		if err != nil {
			continue
		}
		if p, ok := g.(orb.Point); ok {
			points = append(points, p)
			owners = append(owners, i)
		}
	}
	if len(points) == 0 {
		return 0, nil
	}

	elevations, err := c.Lookup(ctx, points)
	updated := 0
	for i, e := range elevations {
		if e == nil {
			continue
		}
		rows[owners[i]][target] = *e
		updated++
	}
	return updated, err
}

// AugmentSource reads every row of src, fills DefaultTarget from the
// geometry column of the record type and returns the rows as a new reader.
// The geometry column is the first geometry field of sc, by name or alias,
// or the feature geometry of a GeoJSON source.
func (c *Client) AugmentSource(ctx context.Context, sc core.Schema, src core.RowReader) (core.RowReader, int, error) {
	var names []string
	for _, f := range sc.Fields {
		if f.Type == core.FieldGeometry {
			names = f.Names()
			break
		}
	}
	if names == nil {
		return nil, 0, fmt.Errorf("%w: %s", ErrNoGeometry, sc.Info.Key)
	}
	if _, ok := src.(*core.FeatureReader); ok {
		names = append(names, core.GeometryColumn)
	}

	column := ""
	for _, col := range src.Columns() {
		for _, n := range names {
			if strings.EqualFold(col, n) {
				column = col
			}
		}
	}

	rows, err := core.ReadAll(src)
	if err != nil {
		return nil, 0, err
	}
	if column == "" {
		return core.NewRecordsReader(rows), 0, nil
	}

	updated, err := c.Augment(ctx, rows, column, DefaultTarget)
	if err != nil {
		return nil, updated, err
	}
	c.logger.Debug("elevations filled", "schema", sc.Info.Key, "rows", len(rows), "updated", updated)
	return core.NewRecordsReader(rows), updated, nil
}
