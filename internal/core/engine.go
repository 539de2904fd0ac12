package core

// engine.go runs batch validation.
//
// A batch goes through two steps:
//  1. Extract binds the schema to the catalog and compares the source columns
//     with the declared fields. Missing columns are a diagnostic, not a
//     failure: the affected fields are simply absent from every row.
//  2. Validate reads the rows in order. Each row is parsed and checked; valid
//     rows become accepted records, invalid rows become one ErrorReport each.
//     A bad row never stops the batch.
//
// Only unusable input is fatal: an unknown schema, a schema bound to a domain
// the catalog lacks, or a source that fails while being read.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/JonMunkholm/geoanla/internal/metrics"
)

const tracerName = "github.com/JonMunkholm/geoanla/internal/core"

// Engine validates batches of rows against registered schemas.
type Engine struct {
	registry *DomainRegistry
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics sets the instruments batches are recorded in.
func WithMetrics(m *metrics.Metrics) EngineOption {
	return func(e *Engine) { e.metrics = m }
}

// WithTracer overrides the OpenTelemetry tracer.
func WithTracer(t trace.Tracer) EngineOption {
	return func(e *Engine) { e.tracer = t }
}

// NewEngine creates an engine resolving domains through reg.
func NewEngine(reg *DomainRegistry, opts ...EngineOption) *Engine {
	e := &Engine{
		registry: reg,
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the domain registry the engine validates against.
func (e *Engine) Registry() *DomainRegistry { return e.registry }

// Batch is one extracted source, ready to be validated once.
type Batch struct {
	ID      string     `json:"batchId"`
	Schema  Schema     `json:"-"`
	Phase   BatchPhase `json:"phase"`
	Columns []string   `json:"columns"`                  // Columns the source exposes
	Missing []string   `json:"missingColumns,omitempty"` // Declared fields with no source column
	Extra   []string   `json:"extraColumns,omitempty"`   // Source columns the schema does not declare

	source    RowReader
	validator *RowValidator
	logger    *slog.Logger
}

// Extract prepares src for validation against the schema registered under
// schemaKey.
func (e *Engine) Extract(ctx context.Context, src RowReader, schemaKey string) (*Batch, error) {
	_, span := e.tracer.Start(ctx, "core.Extract", trace.WithAttributes(attribute.String("schema", schemaKey)))
	defer span.End()

	schema, err := Lookup(schemaKey)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if src == nil {
		err := fmt.Errorf("%w: nil reader", ErrUnsupportedSource)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	bindings, err := e.registry.DomainsOf(schema)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	b := &Batch{
		ID:        uuid.New().String(),
		Schema:    schema,
		Phase:     PhaseStarting,
		Columns:   src.Columns(),
		source:    src,
		validator: NewRowValidator(schema, bindings, src.Columns()...),
	}
	b.logger = e.logger.With("batch_id", b.ID, "schema", schema.Info.Key)

	b.Phase = PhaseExtracting
	report := CompareHeaders(b.Columns, schema)
	b.Missing, b.Extra = report.Missing, report.Extra

	if len(b.Missing) > 0 {
		b.logger.Warn("missing columns", "columns", strings.Join(b.Missing, ", "))
		e.metrics.AddMissingColumns(schema.Info.Key, len(b.Missing))
	}
	span.SetAttributes(attribute.String("batch.id", b.ID), attribute.Int("missing_columns", len(b.Missing)))

	return b, nil
}

// Validate reads every row of b. Row ordinals in error reports are the
// 0-based position in the source plus offset, so a caller splitting a large
// input into chunks keeps global row numbers.
func (e *Engine) Validate(ctx context.Context, b *Batch, offset int) (*Result, error) {
	if b == nil {
		return nil, errors.New("validate: nil batch")
	}
	if b.Phase != PhaseExtracting {
		return nil, fmt.Errorf("validate: batch %s is %s", b.ID, b.Phase)
	}

	ctx, span := e.tracer.Start(ctx, "core.Validate", trace.WithAttributes(
		attribute.String("schema", b.Schema.Info.Key),
		attribute.String("batch.id", b.ID),
		attribute.Int("offset", offset),
	))
	defer span.End()

	start := time.Now()
	b.Phase = PhaseValidating
	b.logger.Info("batch started", "offset", offset)

	result := &Result{
		BatchID:   b.ID,
		SchemaKey: b.Schema.Info.Key,
		Offset:    offset,
		Missing:   b.Missing,
		Accepted:  []Record{},
		Errors:    []ErrorReport{},
	}

	fail := func(err error) (*Result, error) {
		b.Phase = PhaseFailed
		result.Duration = time.Since(start)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.metrics.ObserveBatch(b.Schema.Info.Key, string(PhaseFailed), result.Duration)
		b.logger.Error("batch failed", "error", err, "rows_read", result.Total)
		return nil, err
	}

	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		row, err := b.source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		ordinal := index + offset
		if err != nil {
			return fail(fmt.Errorf("read row %d: %w", ordinal, err))
		}
		result.Total++

		rec, errs := b.validator.ValidateRow(row)
		if len(errs) == 0 {
			result.Accepted = append(result.Accepted, rec)
			continue
		}

		report := ErrorReport{
			Row:        ordinal,
			Identifier: identify(row, b.Schema, b.Columns, ordinal),
			Errors:     errs,
		}
		result.Errors = append(result.Errors, report)
		for _, ve := range errs {
			e.metrics.IncrementViolation(b.Schema.Info.Key, string(ve.Kind))
		}
		b.logger.Debug("row rejected", "row", ordinal, "id", report.Identifier, "errors", report.Message())
	}

	b.Phase = PhaseComplete
	result.Duration = time.Since(start)

	span.SetAttributes(
		attribute.Int("rows.total", result.Total),
		attribute.Int("rows.rejected", len(result.Errors)),
	)
	e.metrics.ObserveBatch(b.Schema.Info.Key, string(PhaseComplete), result.Duration)
	e.metrics.AddRows(b.Schema.Info.Key, len(result.Accepted), len(result.Errors))
	b.logger.Info("batch completed",
		"rows", result.Total,
		"accepted", len(result.Accepted),
		"rejected", len(result.Errors),
		"duration", result.Duration,
	)

	return result, nil
}

// Run extracts and validates src in one call.
func (e *Engine) Run(ctx context.Context, src RowReader, schemaKey string, offset int) (*Result, error) {
	b, err := e.Extract(ctx, src, schemaKey)
	if err != nil {
		return nil, err
	}
	return e.Validate(ctx, b, offset)
}

// identify builds the identifier shown in an error report from the schema's
// identifier fields present on the row, or "row N" when none is.
func identify(row Row, s Schema, columns []string, ordinal int) string {
	var parts []string
	for _, name := range s.identifiers() {
		spec, ok := s.Field(name)
		if !ok {
			spec = FieldSpec{Name: name}
		}
		v, found := row.lookup(spec, columns)
		if !found || isAbsent(v) {
			continue
		}
		if text := ToText(v); text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("row %d", ordinal)
	}
	return strings.Join(parts, " ")
}
