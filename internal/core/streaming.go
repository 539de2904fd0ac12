package core

// streaming.go validates large sources in fixed-size chunks.
//
// Each chunk is validated as its own pass with the offset of its first row,
// so row ordinals in error reports stay global while memory stays bounded by
// the chunk size. The column diagnostic is computed once for the whole
// source.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// DefaultChunkSize is the number of rows per chunk when none is given.
const DefaultChunkSize = 5000

// StreamSummary totals a streamed validation.
type StreamSummary struct {
	BatchID   string        `json:"batchId"`
	SchemaKey string        `json:"schema"`
	Chunks    int           `json:"chunks"`
	Total     int           `json:"total"`
	Accepted  int           `json:"accepted"`
	Rejected  int           `json:"rejected"`
	Missing   []string      `json:"missingColumns,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// chunkReader yields at most limit rows of src.
type chunkReader struct {
	src   RowReader
	limit int
	read  int
	eof   bool
}

func (c *chunkReader) Columns() []string { return c.src.Columns() }

func (c *chunkReader) Next() (Row, error) {
	if c.read >= c.limit {
		return nil, io.EOF
	}
	row, err := c.src.Next()
	if errors.Is(err, io.EOF) {
		c.eof = true
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	c.read++
	return row, nil
}

// Stream validates src in chunks of chunkSize rows and hands each chunk's
// result to emit, in source order. An error from emit stops the stream.
func (e *Engine) Stream(ctx context.Context, src RowReader, schemaKey string, chunkSize int, emit func(*Result) error) (*StreamSummary, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	base, err := e.Extract(ctx, src, schemaKey)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	summary := &StreamSummary{
		BatchID:   base.ID,
		SchemaKey: base.Schema.Info.Key,
		Missing:   base.Missing,
	}

	for offset := 0; ; {
		chunk := &chunkReader{src: src, limit: chunkSize}
		res, err := e.Validate(ctx, base.rebind(chunk), offset)
		if err != nil {
			return nil, err
		}
		if res.Total == 0 {
			break
		}

		summary.Chunks++
		summary.Total += res.Total
		summary.Accepted += len(res.Accepted)
		summary.Rejected += len(res.Errors)

		if err := emit(res); err != nil {
			return nil, fmt.Errorf("chunk at row %d: %w", offset, err)
		}
		if chunk.eof || res.Total < chunkSize {
			break
		}
		offset += res.Total
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

// rebind returns a copy of b reading from src, ready to be validated.
func (b *Batch) rebind(src RowReader) *Batch {
	c := *b
	c.source = src
	c.Phase = PhaseExtracting
	return &c
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
	Total     int64 // If known (0 if unknown)
}

// NewCountingReader creates a counting reader with optional total size.
func NewCountingReader(r io.Reader, total int64) *CountingReader {
	return &CountingReader{reader: r, Total: total}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// Progress returns the read progress as a percentage (0-100).
// Returns 0 if total is unknown.
func (r *CountingReader) Progress() int {
	if r.Total <= 0 {
		return 0
	}
	return int(r.BytesRead * 100 / r.Total)
}
