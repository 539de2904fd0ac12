package core

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// QueryReader serves the rows of a PostgreSQL query. Geometry columns should
// be selected as text, e.g. ST_AsText(geom) AS geometry.
type QueryReader struct {
	rows    pgx.Rows
	columns []string
}

// NewQueryReader runs sql on db. The caller must Close the reader.
func NewQueryReader(ctx context.Context, db DBTX, sql string, args ...any) (*QueryReader, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query source: %w", err)
	}

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = fd.Name
	}
	return &QueryReader{rows: rows, columns: columns}, nil
}

func (q *QueryReader) Columns() []string { return q.columns }

func (q *QueryReader) Next() (Row, error) {
	if !q.rows.Next() {
		q.rows.Close()
		if err := q.rows.Err(); err != nil {
			return nil, fmt.Errorf("query source: %w", err)
		}
		return nil, io.EOF
	}

	values, err := q.rows.Values()
	if err != nil {
		return nil, fmt.Errorf("query source: %w", err)
	}

	row := make(Row, len(q.columns))
	for i, name := range q.columns {
		row[name] = pgValue(values[i])
	}
	return row, nil
}

// pgValue converts a decoded PostgreSQL value to the plain Go types the
// validators read. NULL and invalid pgtype values become nil.
func pgValue(v any) any {
	switch x := v.(type) {
	case pgtype.Numeric:
		return numericValue(x)
	case pgtype.Text:
		if !x.Valid {
			return nil
		}
		return x.String
	case pgtype.Float8:
		if !x.Valid {
			return nil
		}
		return x.Float64
	case pgtype.Int8:
		if !x.Valid {
			return nil
		}
		return x.Int64
	case pgtype.Int4:
		if !x.Valid {
			return nil
		}
		return int64(x.Int32)
	case pgtype.Date:
		return pgTime(x.Time, x.Valid, x.InfinityModifier)
	case pgtype.Timestamp:
		return pgTime(x.Time, x.Valid, x.InfinityModifier)
	case pgtype.Timestamptz:
		return pgTime(x.Time, x.Valid, x.InfinityModifier)
	case pgtype.InfinityModifier:
		return x.String()
	case [16]byte:
		return uuid.UUID(x).String()
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	default:
		return v
	}
}

// numericValue returns an int64 for integral numerics that fit, a float64
// otherwise.
func numericValue(n pgtype.Numeric) any {
	switch {
	case !n.Valid:
		return nil
	case n.NaN:
		return math.NaN()
	case n.InfinityModifier == pgtype.Infinity:
		return math.Inf(1)
	case n.InfinityModifier == pgtype.NegativeInfinity:
		return math.Inf(-1)
	case n.Int == nil:
		return int64(0)
	}

	d := decimal.NewFromBigInt(n.Int, n.Exp)
	if d.IsInteger() && d.BigInt().IsInt64() {
		return d.IntPart()
	}
	return d.InexactFloat64()
}

func pgTime(t time.Time, valid bool, inf pgtype.InfinityModifier) any {
	if !valid {
		return nil
	}
	if inf != pgtype.Finite {
		return inf.String()
	}
	return t
}

// Close releases the underlying connection.
func (q *QueryReader) Close() { q.rows.Close() }
