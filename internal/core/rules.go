package core

// rules.go provides the cross-field rule families record schemas compose.
//
// A rule reads the parsed record and returns zero or more violations. Rules
// never fail on absent values: presence is the field validators' concern, so
// a rule whose inputs are missing simply has nothing to say.

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// Rule is a named cross-field check.
type Rule struct {
	Name   string
	Fields []string // Fields the rule reads
	Check  func(rec Record) []ValidationError
}

func ruleError(rule, field string, value any, format string, args ...any) ValidationError {
	e := ValidationError{
		Field:   field,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
		Kind:    KindRule,
	}
	if value != nil {
		e.Value = display(value)
	}
	return e
}

// Chronology rejects records whose end date precedes their start date.
// Equal dates are accepted.
func Chronology(start, end string) Rule {
	name := "chronology:" + start + "<=" + end
	return Rule{
		Name:   name,
		Fields: []string{start, end},
		Check: func(rec Record) []ValidationError {
			a, okA := rec[start].(time.Time)
			b, okB := rec[end].(time.Time)
			if !okA || !okB || !b.Before(a) {
				return nil
			}
			return []ValidationError{ruleError(name, end, b,
				"%s (%s) cannot be earlier than %s (%s)", end, display(b), start, display(a))}
		},
	}
}

// Ordered rejects records whose high value is below their low value.
func Ordered(low, high string) Rule {
	name := "ordered:" + low + "<=" + high
	return Rule{
		Name:   name,
		Fields: []string{low, high},
		Check: func(rec Record) []ValidationError {
			lo, okLo := number(rec[low])
			hi, okHi := number(rec[high])
			if !okLo || !okHi || hi >= lo {
				return nil
			}
			return []ValidationError{ruleError(name, high, rec[high],
				"%s (%s) cannot be less than %s (%s)", high, display(rec[high]), low, display(rec[low]))}
		},
	}
}

// NotGreater rejects records where part exceeds total.
func NotGreater(part, total string) Rule {
	name := "not-greater:" + part + "<=" + total
	return Rule{
		Name:   name,
		Fields: []string{part, total},
		Check: func(rec Record) []ValidationError {
			p, okP := number(rec[part])
			t, okT := number(rec[total])
			if !okP || !okT || p <= t {
				return nil
			}
			return []ValidationError{ruleError(name, part, rec[part],
				"%s (%s) cannot be greater than %s (%s)", part, display(rec[part]), total, display(rec[total]))}
		},
	}
}

// RequiredWhen requires every dependent field once trigger holds a value.
func RequiredWhen(trigger string, dependents ...string) Rule {
	name := "required-when:" + trigger
	return Rule{
		Name:   name,
		Fields: append([]string{trigger}, dependents...),
		Check: func(rec Record) []ValidationError {
			if !rec.Has(trigger) {
				return nil
			}
			var errs []ValidationError
			for _, d := range dependents {
				if !rec.Has(d) {
					errs = append(errs, ruleError(name, d, nil,
						"%s is required when %s is set", d, trigger))
				}
			}
			return errs
		},
	}
}

// RequiredWhenEquals requires every dependent field when trigger holds code.
// It covers the "Other" options of coded fields, which need a free-text
// complement.
func RequiredWhenEquals(trigger, code string, dependents ...string) Rule {
	name := "required-when:" + trigger + "=" + code
	return Rule{
		Name:   name,
		Fields: append([]string{trigger}, dependents...),
		Check: func(rec Record) []ValidationError {
			if !rec.Has(trigger) || display(rec[trigger]) != code {
				return nil
			}
			var errs []ValidationError
			for _, d := range dependents {
				if !rec.Has(d) {
					errs = append(errs, ruleError(name, d, nil,
						"%s is required when %s is %s", d, trigger, code))
				}
			}
			return errs
		},
	}
}

// AtLeastOne rejects records where none of fields holds a value. Empty text
// counts as absent.
func AtLeastOne(fields ...string) Rule {
	name := "at-least-one:" + strings.Join(fields, ",")
	return Rule{
		Name:   name,
		Fields: fields,
		Check: func(rec Record) []ValidationError {
			for _, f := range fields {
				if rec.Has(f) {
					return nil
				}
			}
			return []ValidationError{{
				Rule:    name,
				Message: "orphan record: at least one of " + strings.Join(fields, ", ") + " is required",
				Kind:    KindRule,
			}}
		},
	}
}

// Hierarchy checks a family of coded levels, given coarsest first, against a
// nomenclature field:
//   - the nomenclature must equal the code of the deepest populated level
//   - each populated level must extend the next coarser populated level's
//     digits (strict prefix)
//
// Every violation is reported separately.
func Hierarchy(nomenclature string, levels ...string) Rule {
	name := "hierarchy:" + nomenclature
	return Rule{
		Name:   name,
		Fields: append([]string{nomenclature}, levels...),
		Check: func(rec Record) []ValidationError {
			type populated struct {
				field string
				code  string
			}
			var chain []populated
			for _, l := range levels {
				if rec.Has(l) {
					chain = append(chain, populated{l, display(rec[l])})
				}
			}
			if len(chain) == 0 {
				return nil
			}

			var errs []ValidationError
			deepest := chain[len(chain)-1]
			if rec.Has(nomenclature) {
				if got := display(rec[nomenclature]); got != deepest.code {
					errs = append(errs, ruleError(name, nomenclature, rec[nomenclature],
						"%s (%s) does not match the deepest level %s (%s)",
						nomenclature, got, deepest.field, deepest.code))
				}
			}

			for i := 1; i < len(chain); i++ {
				parent, child := chain[i-1], chain[i]
				if len(child.code) <= len(parent.code) || !strings.HasPrefix(child.code, parent.code) {
					errs = append(errs, ruleError(name, child.field, rec[child.field],
						"%s (%s) is not a subdivision of %s (%s)",
						child.field, child.code, parent.field, parent.code))
				}
			}
			return errs
		},
	}
}

// GeometryShape checks that a geometry belongs to family and is not empty.
func GeometryShape(field string, family GeometryFamily) Rule {
	name := "geometry:" + string(family)
	return Rule{
		Name:   name,
		Fields: []string{field},
		Check: func(rec Record) []ValidationError {
			g, ok := rec[field].(orb.Geometry)
			if !ok || g == nil {
				return nil
			}
			got, known := FamilyOf(g)
			if !known || got != family {
				return []ValidationError{{
					Field:   field,
					Rule:    name,
					Value:   g.GeoJSONType(),
					Message: fmt.Sprintf("expected %s geometry, got %s", family, g.GeoJSONType()),
					Kind:    KindGeometry,
				}}
			}
			if reason := emptiness(g); reason != "" {
				return []ValidationError{{Field: field, Rule: name, Message: reason, Kind: KindGeometry}}
			}
			return nil
		},
	}
}

// number extracts a float from a parsed numeric value.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}

// display renders a parsed value for messages and code comparison.
func display(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format("2006-01-02")
	case orb.Geometry:
		return x.GeoJSONType()
	default:
		return fmt.Sprint(x)
	}
}
