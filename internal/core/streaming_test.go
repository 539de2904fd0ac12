package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_ChunksKeepGlobalOrdinals(t *testing.T) {
	withSchemas(t, sampleSchema())
	engine := NewEngine(testRegistry(t))

	rows := sampleRows(10)
	rows[1]["COTA"] = "-5"
	rows[7]["COTA"] = "-5"

	var offsets, bad []int
	summary, err := engine.Stream(context.Background(), NewRecordsReader(rows), "Muestra", 4, func(r *Result) error {
		offsets = append(offsets, r.Offset)
		for _, e := range r.Errors {
			bad = append(bad, e.Row)
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 4, 8}, offsets)
	assert.Equal(t, []int{1, 7}, bad)
	assert.Equal(t, 3, summary.Chunks)
	assert.Equal(t, 10, summary.Total)
	assert.Equal(t, 8, summary.Accepted)
	assert.Equal(t, 2, summary.Rejected)
	assert.Equal(t, []string{"VEDA", "RESOLUCION"}, summary.Missing)
}

func TestStream_ExactMultiple(t *testing.T) {
	withSchemas(t, sampleSchema())
	engine := NewEngine(testRegistry(t))

	chunks := 0
	summary, err := engine.Stream(context.Background(), NewRecordsReader(sampleRows(6)), "Muestra", 3, func(r *Result) error {
		chunks++
		assert.Equal(t, 3, r.Total)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, chunks)
	assert.Equal(t, 6, summary.Total)
}

func TestStream_EmitErrorStops(t *testing.T) {
	withSchemas(t, sampleSchema())
	engine := NewEngine(testRegistry(t))

	stop := errors.New("client went away")
	calls := 0
	_, err := engine.Stream(context.Background(), NewRecordsReader(sampleRows(10)), "Muestra", 2, func(*Result) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestStream_DefaultChunkSize(t *testing.T) {
	withSchemas(t, sampleSchema())
	engine := NewEngine(testRegistry(t))

	summary, err := engine.Stream(context.Background(), NewRecordsReader(sampleRows(3)), "Muestra", 0, func(*Result) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Chunks)

	_, err = engine.Stream(context.Background(), NewRecordsReader(nil), "Nada", 0, func(*Result) error { return nil })
	assert.ErrorIs(t, err, ErrSchemaNotFound)
}

func TestCountingReader(t *testing.T) {
	r := NewCountingReader(strings.NewReader("0123456789"), 10)
	buf := make([]byte, 4)

	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, int64(4), r.BytesRead)
	assert.Equal(t, 40, r.Progress())

	assert.Equal(t, 0, NewCountingReader(strings.NewReader("x"), 0).Progress())
}
