package core

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// DBTX is the interface for reading rows from PostgreSQL.
// Satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Query(context.Context, string, ...any) (pgx.Rows, error)
}

// FieldType represents the expected data type of a record field.
type FieldType int

const (
	FieldText FieldType = iota
	FieldInteger
	FieldDecimal
	FieldDate
	FieldGeometry
)

func (t FieldType) String() string {
	switch t {
	case FieldText:
		return "text"
	case FieldInteger:
		return "integer"
	case FieldDecimal:
		return "decimal"
	case FieldDate:
		return "date"
	case FieldGeometry:
		return "geometry"
	default:
		return "value"
	}
}

// FieldSpec declares one field of a record schema.
type FieldSpec struct {
	Name        string    // Field name in the geodatabase model
	Aliases     []string  // Alternative source column names
	Type        FieldType // Expected data type
	Required    bool      // Value must be present
	MaxLen      int       // Maximum text length in characters (0 = unbounded)
	Min         *float64  // Inclusive lower bound for numeric fields
	Max         *float64  // Inclusive upper bound for numeric fields
	Domain      string    // Catalog domain the value must belong to
	Description string
}

// Names returns the field name followed by its aliases.
func (f FieldSpec) Names() []string {
	return append([]string{f.Name}, f.Aliases...)
}

// Bound returns a pointer to v, for FieldSpec.Min and FieldSpec.Max.
func Bound(v float64) *float64 { return &v }

// SchemaInfo contains display information about a record type.
type SchemaInfo struct {
	Key         string   `json:"key"`         // Unique identifier: "PuntoMuestreoFlora"
	Group       string   `json:"group"`       // Model group: "T20_Biotico", "Tablas"
	Label       string   `json:"label"`       // Display name
	Description string   `json:"description"` // What one record represents
	Columns     []string `json:"columns"`     // Field names in declaration order
}

// Schema is the declaration of one record type: its fields, the cross-field
// rules that apply to it, and the fields that identify a record in reports.
type Schema struct {
	Info        SchemaInfo
	Fields      []FieldSpec
	Rules       []Rule
	Identifiers []string
}

// DefaultIdentifiers are used when a schema does not declare its own.
var DefaultIdentifiers = []string{"ID_MUEST", "ID_MUES_PT", "EXPEDIENTE"}

// Field returns the spec of the named field.
func (s Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Domains returns the explicit field -> domain name table of the schema.
func (s Schema) Domains() map[string]string {
	out := make(map[string]string)
	for _, f := range s.Fields {
		if f.Domain != "" {
			out[f.Name] = f.Domain
		}
	}
	return out
}

func (s Schema) identifiers() []string {
	if len(s.Identifiers) > 0 {
		return s.Identifiers
	}
	return DefaultIdentifiers
}

// Row is one raw source row keyed by column name.
type Row map[string]any

// lookup finds the value of a field by name or alias. Exact keys win over
// case-insensitive matches, which are tried in columns order and then in
// sorted key order, so a row holding both "cota" and "COTA" always yields the
// same value.
func (r Row) lookup(spec FieldSpec, columns []string) (any, bool) {
	names := spec.Names()
	for _, name := range names {
		if v, ok := r[name]; ok {
			return v, true
		}
	}

	var keys []string
	for _, name := range names {
		for _, c := range columns {
			if !strings.EqualFold(c, name) {
				continue
			}
			if v, ok := r[c]; ok {
				return v, true
			}
		}
		if keys == nil {
			keys = slices.Sorted(maps.Keys(r))
		}
		for _, k := range keys {
			if strings.EqualFold(k, name) {
				return r[k], true
			}
		}
	}
	return nil, false
}

// Record is a parsed record keyed by field name. Accepted records hold every
// declared field; absent optional fields are nil.
type Record map[string]any

// Has reports whether the field holds a value. Empty text counts as absent.
func (r Record) Has(field string) bool {
	switch v := r[field].(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}

// BatchPhase indicates the current stage of a validation batch.
type BatchPhase string

const (
	PhaseStarting   BatchPhase = "starting"
	PhaseExtracting BatchPhase = "extracting"
	PhaseValidating BatchPhase = "validating"
	PhaseComplete   BatchPhase = "complete"
	PhaseFailed     BatchPhase = "failed"
)

// ErrorReport lists every violation found in one rejected row.
type ErrorReport struct {
	Row        int               `json:"row"`
	Identifier string            `json:"id"`
	Errors     []ValidationError `json:"errors"`
}

// Message joins the violations as "[FIELD]: message; [FIELD]: message".
func (r ErrorReport) Message() string {
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = "[" + e.target() + "]: " + e.Message
	}
	return strings.Join(parts, "; ")
}

// Result is the outcome of validating one batch.
type Result struct {
	BatchID   string        `json:"batchId"`
	SchemaKey string        `json:"schema"`
	Offset    int           `json:"offset"`
	Total     int           `json:"total"`
	Accepted  []Record      `json:"accepted"`
	Errors    []ErrorReport `json:"errors"`
	Missing   []string      `json:"missingColumns,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// Rejected returns the number of rejected rows.
func (r *Result) Rejected() int { return len(r.Errors) }

// Summary describes the outcome in one line.
func (r *Result) Summary() string {
	s := fmt.Sprintf("%s: %d rows, %d accepted, %d rejected", r.SchemaKey, r.Total, len(r.Accepted), len(r.Errors))
	if len(r.Missing) > 0 {
		s += fmt.Sprintf(" (missing columns: %s)", strings.Join(r.Missing, ", "))
	}
	return s
}

// Valid reports whether every row was accepted.
func (r *Result) Valid() bool { return len(r.Errors) == 0 }
