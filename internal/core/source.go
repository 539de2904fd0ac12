package core

// source.go defines how the engine reads rows.
//
// A RowReader yields rows in source order and reports io.EOF after the last
// one. Readers exist for in-memory rows, CSV, GeoJSON and PostgreSQL queries.
// Null handling differs per source (empty cells, JSON null, SQL NULL); every
// reader hands nil to the validators for all of them.

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/paulmach/orb/geojson"
)

// ErrUnsupportedSource is returned for inputs no reader understands.
var ErrUnsupportedSource = errors.New("unsupported source")

// RowReader yields the rows of one batch.
type RowReader interface {
	// Columns lists the column names the source exposes.
	Columns() []string
	// Next returns the next row, or io.EOF when the source is exhausted.
	Next() (Row, error)
}

// RecordsReader serves rows held in memory.
type RecordsReader struct {
	rows    []Row
	columns []string
	pos     int
}

// NewRecordsReader wraps in-memory rows. Columns are the union of the row
// keys, sorted.
func NewRecordsReader(rows []Row) *RecordsReader {
	seen := make(map[string]bool)
	var columns []string
	for _, r := range rows {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)
	return &RecordsReader{rows: rows, columns: columns}
}

func (r *RecordsReader) Columns() []string { return r.columns }

func (r *RecordsReader) Next() (Row, error) {
	if r.pos >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.pos]
	r.pos++
	return row, nil
}

// OpenSource adapts the supported in-memory inputs to a RowReader:
// a RowReader itself, []Row, []map[string]any or a GeoJSON feature
// collection. Anything else wraps ErrUnsupportedSource.
func OpenSource(v any) (RowReader, error) {
	switch src := v.(type) {
	case RowReader:
		return src, nil
	case []Row:
		return NewRecordsReader(src), nil
	case []map[string]any:
		rows := make([]Row, len(src))
		for i, m := range src {
			rows[i] = Row(m)
		}
		return NewRecordsReader(rows), nil
	case *geojson.FeatureCollection:
		return NewFeatureReader(src), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, v)
	}
}

// ReadAll drains r.
func ReadAll(r RowReader) ([]Row, error) {
	var rows []Row
	for {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}
