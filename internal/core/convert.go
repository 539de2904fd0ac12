package core

// convert.go turns raw source values into typed field values.
//
// Sources hand over strings (CSV), JSON numbers (GeoJSON), or driver types
// (PostgreSQL). These functions accept any of them:
//   - Dates in ISO form first, then day-first forms (dd/mm/yyyy)
//   - Numbers with a decimal comma or a decimal point
//   - Excel formula prefixes (="value") and stray quotes in CSV cells
//
// Text parsing goes through pgtype so the same rules apply to every source.

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// DecimalPlaces is the precision decimal measurements are rounded to.
const DecimalPlaces = 8

// numericRegex validates that a string is a valid numeric format after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

var dateLayouts = []string{
	"2006-01-02", "2006/01/02", "2006.01.02", "20060102",
	"2/1/2006", "02/01/2006", "2-1-2006", "02-01-2006", "2.1.2006", "02.01.2006",
	"2006-01-02 15:04:05", "2006-01-02T15:04:05", time.RFC3339, time.RFC3339Nano,
	"02/01/2006 15:04:05", "2/1/2006 15:04",
}

var (
	errInvalidNumber = errors.New("invalid number")
	errInvalidDate   = errors.New("invalid date")
	errNotInteger    = errors.New("invalid number: not an integer")
)

// ToPgDate converts a string to pgtype.Date.
// Returns invalid when no known layout matches.
func ToPgDate(s string) pgtype.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Date{Valid: false}
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return pgtype.Date{Time: civilDate(t), Valid: true}
		}
	}
	return pgtype.Date{Valid: false}
}

// ToPgNumeric converts a string to pgtype.Numeric.
// A lone comma is taken as the decimal separator ("12,5"); when both
// separators appear, the last one is the decimal separator.
func ToPgNumeric(s string) pgtype.Numeric {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Numeric{Valid: false}
	}

	s = strings.ReplaceAll(s, " ", "")
	dot, comma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case comma >= 0 && dot < 0:
		s = strings.ReplaceAll(s, ",", ".")
		if strings.Count(s, ".") > 1 {
			return pgtype.Numeric{Valid: false}
		}
	case comma > dot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case dot > comma && comma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	}

	if !numericRegex.MatchString(s) {
		return pgtype.Numeric{Valid: false}
	}

	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return n
}

// ToText renders a raw value as text. Integral numbers lose their fraction
// ("5001.0" read as a float becomes "5001").
func ToText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case json.Number:
		return x.String()
	case time.Time:
		return x.Format("2006-01-02")
	case pgtype.Text:
		return strings.TrimSpace(x.String)
	case pgtype.Numeric:
		if v := numericValue(x); v != nil {
			return ToText(v)
		}
		return ""
	case fmt.Stringer:
		return strings.TrimSpace(x.String())
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

// ToFloat converts a raw value to float64. The string "nan" yields NaN so
// callers can treat it as a missing value.
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case json.Number:
		return x.Float64()
	case pgtype.Numeric:
		return numericFloat(x)
	case pgtype.Float8:
		if !x.Valid {
			return math.NaN(), nil
		}
		return x.Float64, nil
	case string:
		s := strings.TrimSpace(x)
		if strings.EqualFold(s, "nan") {
			return math.NaN(), nil
		}
		n := ToPgNumeric(s)
		if !n.Valid {
			return 0, fmt.Errorf("%w: %q", errInvalidNumber, s)
		}
		return numericFloat(n)
	default:
		return 0, fmt.Errorf("%w: unsupported %T", errInvalidNumber, v)
	}
}

func numericFloat(n pgtype.Numeric) (float64, error) {
	if n.NaN {
		return math.NaN(), nil
	}
	f, err := n.Float64Value()
	if err != nil || !f.Valid {
		return 0, errInvalidNumber
	}
	return f.Float64, nil
}

// ToInteger converts a raw value to int64. Non-integral numbers are rejected.
func ToInteger(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case int32:
		return int64(x), nil
	case int16:
		return int64(x), nil
	}

	f, err := ToFloat(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errNotInteger
	}
	return int64(f), nil
}

// ToDate converts a raw value to a civil date at UTC midnight.
func ToDate(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return civilDate(x), nil
	case pgtype.Date:
		if !x.Valid {
			return time.Time{}, errInvalidDate
		}
		return civilDate(x.Time), nil
	case pgtype.Timestamp:
		if !x.Valid {
			return time.Time{}, errInvalidDate
		}
		return civilDate(x.Time), nil
	case pgtype.Timestamptz:
		if !x.Valid {
			return time.Time{}, errInvalidDate
		}
		return civilDate(x.Time), nil
	}

	s := ToText(v)
	d := ToPgDate(s)
	if !d.Valid {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, s)
	}
	return d.Time, nil
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RoundDecimal rounds f half away from zero to the given number of places.
// Rounding an already rounded value returns it unchanged.
func RoundDecimal(f float64, places int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	r, _ := decimal.NewFromFloat(f).Round(places).Float64()
	return r
}

// HeaderIndex maps column names (lowercase) to their position in a CSV row.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// Keys are lowercased for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}

// CleanCell removes common spreadsheet artifacts from a cell value:
// surrounding whitespace, the Excel formula prefix (="...") and surrounding
// quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	}

	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		s = s[1 : len(s)-1]
	}

	return strings.TrimSpace(s)
}
