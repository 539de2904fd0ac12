package core

// validation.go provides field-level validation of raw rows.
//
// Every declared field is checked independently and every failure is
// collected, so one report lists all problems of a row:
//  1. Presence: required fields must carry a value
//  2. Coded fields: the value must resolve to a member of the bound domain
//  3. Type: text, integer, decimal, date or geometry parsing
//  4. Constraints: text length and inclusive numeric bounds
//
// Decimal values are rounded to DecimalPlaces. Cross-field rules run on the
// parsed record afterwards (see rules.go).

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JonMunkholm/geoanla/internal/catalog"
)

// ErrorKind classifies a validation error.
type ErrorKind string

const (
	KindMissing  ErrorKind = "missing"
	KindType     ErrorKind = "type"
	KindLength   ErrorKind = "length"
	KindRange    ErrorKind = "range"
	KindDomain   ErrorKind = "domain"
	KindGeometry ErrorKind = "geometry"
	KindRule     ErrorKind = "rule"
)

// ValidationError represents a single violation within a row.
type ValidationError struct {
	Field   string    `json:"field"`            // Offending field
	Rule    string    `json:"rule,omitempty"`   // Cross-field rule that failed, if any
	Value   string    `json:"value,omitempty"`  // The invalid value
	Message string    `json:"message"`          // Human-readable error message
	Kind    ErrorKind `json:"kind"`
}

func (e ValidationError) Error() string {
	if t := e.target(); t != "" {
		return fmt.Sprintf("%s: %s", t, e.Message)
	}
	return e.Message
}

func (e ValidationError) target() string {
	if e.Field != "" {
		return e.Field
	}
	return e.Rule
}

// validate is safe for concurrent use and caches nothing per call.
var validate = validator.New()

// RowValidator validates rows against one schema.
type RowValidator struct {
	schema   Schema
	bindings map[string]Binding
	columns  []string
}

// NewRowValidator creates a validator for s. bindings come from
// DomainRegistry.DomainsOf. columns is the source column order, used when
// several columns match a field case-insensitively.
func NewRowValidator(s Schema, bindings map[string]Binding, columns ...string) *RowValidator {
	return &RowValidator{schema: s, bindings: bindings, columns: columns}
}

// ValidateRow parses row into a record holding every declared field, then
// applies the schema's cross-field rules. All errors are returned.
func (v *RowValidator) ValidateRow(row Row) (Record, []ValidationError) {
	rec := make(Record, len(v.schema.Fields))
	var errs []ValidationError

	for _, spec := range v.schema.Fields {
		raw, _ := row.lookup(spec, v.columns)
		val, err := v.validateField(spec, raw)
		rec[spec.Name] = val
		if err != nil {
			errs = append(errs, *err)
		}
	}

	for _, rule := range v.schema.Rules {
		errs = append(errs, rule.Check(rec)...)
	}

	return rec, errs
}

// validateField returns the parsed value of one field, or the reason it was
// rejected.
func (v *RowValidator) validateField(spec FieldSpec, raw any) (any, *ValidationError) {
	if b, ok := v.bindings[spec.Name]; ok {
		return v.validateCoded(spec, b, raw)
	}

	if isAbsent(raw) {
		return nil, missing(spec, "")
	}

	switch spec.Type {
	case FieldText:
		s := ToText(raw)
		if s == "" {
			return nil, missing(spec, "")
		}
		if spec.MaxLen > 0 {
			if err := validate.Var(s, "max="+strconv.Itoa(spec.MaxLen)); err != nil {
				return nil, &ValidationError{
					Field:   spec.Name,
					Value:   s,
					Message: fmt.Sprintf("exceeds %d characters", spec.MaxLen),
					Kind:    KindLength,
				}
			}
		}
		return s, nil

	case FieldInteger:
		if f, err := ToFloat(raw); err == nil && math.IsNaN(f) {
			return nil, missing(spec, " (NaN)")
		}
		n, err := ToInteger(raw)
		if err != nil {
			return nil, typeError(spec, raw, err)
		}
		if e := checkRange(spec, float64(n)); e != nil {
			return nil, e
		}
		return n, nil

	case FieldDecimal:
		f, err := ToFloat(raw)
		if err != nil {
			return nil, typeError(spec, raw, err)
		}
		if math.IsNaN(f) {
			return nil, missing(spec, " (NaN)")
		}
		if math.IsInf(f, 0) {
			return nil, typeError(spec, raw, errInvalidNumber)
		}
		f = RoundDecimal(f, DecimalPlaces)
		if e := checkRange(spec, f); e != nil {
			return nil, e
		}
		return f, nil

	case FieldDate:
		t, err := ToDate(raw)
		if err != nil {
			return nil, typeError(spec, raw, err)
		}
		return t, nil

	case FieldGeometry:
		g, err := ToGeometry(raw)
		if err != nil {
			return nil, &ValidationError{Field: spec.Name, Message: err.Error(), Kind: KindGeometry}
		}
		return g, nil
	}

	return nil, typeError(spec, raw, fmt.Errorf("unsupported field type %s", spec.Type))
}

func (v *RowValidator) validateCoded(spec FieldSpec, b Binding, raw any) (any, *ValidationError) {
	code, ok := b.Domain.Resolve(raw)
	if !ok {
		if isAbsent(raw) || catalog.IsNullMarker(ToText(raw)) {
			return nil, missing(spec, "")
		}
		return nil, &ValidationError{
			Field:   spec.Name,
			Value:   ToText(raw),
			Message: fmt.Sprintf("value %q is not a member of %s", ToText(raw), b.Domain.Name()),
			Kind:    KindDomain,
		}
	}

	if spec.Type == FieldText {
		return code, nil
	}
	return b.Domain.Value(code, spec.Type == FieldInteger), nil
}

// missing returns a presence error for required fields and nil otherwise.
func missing(spec FieldSpec, detail string) *ValidationError {
	if !spec.Required {
		return nil
	}
	return &ValidationError{Field: spec.Name, Message: "missing required field" + detail, Kind: KindMissing}
}

func typeError(spec FieldSpec, raw any, err error) *ValidationError {
	return &ValidationError{
		Field:   spec.Name,
		Value:   ToText(raw),
		Message: fmt.Sprintf("expected %s: %v", spec.Type, err),
		Kind:    KindType,
	}
}

func checkRange(spec FieldSpec, f float64) *ValidationError {
	if spec.Min == nil && spec.Max == nil {
		return nil
	}

	var tags []string
	if spec.Min != nil {
		tags = append(tags, "gte="+formatBound(*spec.Min))
	}
	if spec.Max != nil {
		tags = append(tags, "lte="+formatBound(*spec.Max))
	}
	if err := validate.Var(f, strings.Join(tags, ",")); err == nil {
		return nil
	}

	var msg string
	switch {
	case spec.Min != nil && spec.Max != nil:
		msg = fmt.Sprintf("must be between %s and %s", formatBound(*spec.Min), formatBound(*spec.Max))
	case spec.Min != nil:
		msg = "must be greater than or equal to " + formatBound(*spec.Min)
	default:
		msg = "must be less than or equal to " + formatBound(*spec.Max)
	}
	return &ValidationError{Field: spec.Name, Value: formatBound(f), Message: msg, Kind: KindRange}
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// isAbsent reports whether a raw value carries no data: nil, blank text or NaN.
func isAbsent(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	default:
		return false
	}
}

// HeaderReport describes how source columns line up with a schema.
type HeaderReport struct {
	Missing []string // Declared fields with no matching column
	Extra   []string // Source columns the schema does not declare
}

// CompareHeaders matches source columns against the fields of s by name or
// alias, case-insensitively.
func CompareHeaders(columns []string, s Schema) HeaderReport {
	idx := MakeHeaderIndex(columns)
	known := make(map[string]bool)
	var report HeaderReport

	for _, spec := range s.Fields {
		found := false
		for _, name := range spec.Names() {
			key := strings.ToLower(name)
			known[key] = true
			if _, ok := idx[key]; ok {
				found = true
			}
		}
		if !found {
			report.Missing = append(report.Missing, spec.Name)
		}
	}

	for _, c := range columns {
		if !known[strings.ToLower(CleanCell(c))] {
			report.Extra = append(report.Extra, c)
		}
	}
	return report
}
