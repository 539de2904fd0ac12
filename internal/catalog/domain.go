// Package catalog holds the coded domains of the ANLA geodatabase model.
//
// A Domain is an immutable, ordered set of members. Each member has a code
// (the value stored in the geodatabase), a symbolic name and a localized
// description. Domains are declared statically in this package, except the
// administrative subdivisions which are loaded once from a reference table.
package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Kind distinguishes numeric codes from textual codes.
type Kind int

const (
	// KindNumeric domains compare codes by numeric value.
	KindNumeric Kind = iota
	// KindText domains compare codes by exact representation ("05" is not "5").
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Member is one entry of a Domain.
type Member struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Domain is an immutable set of coded members.
type Domain struct {
	name    string
	kind    Kind
	width   int
	members []Member
	byCode  map[string]int
}

// nullMarkers are tokens treated as "no value" during resolution.
var nullMarkers = map[string]struct{}{
	"":     {},
	"nan":  {},
	"none": {},
	"null": {},
	"0":    {},
	"0.0":  {},
}

// IsNullMarker reports whether token is one of the placeholders sources use
// for a missing coded value.
func IsNullMarker(token string) bool {
	_, ok := nullMarkers[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

// NewNumeric builds a numeric domain. Member codes must parse as numbers and
// are stored in their shortest decimal form.
func NewNumeric(name string, members ...Member) (*Domain, error) {
	d := &Domain{name: name, kind: KindNumeric}
	for _, m := range members {
		f, err := strconv.ParseFloat(strings.TrimSpace(m.Code), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("domain %s: code %q is not numeric", name, m.Code)
		}
		m.Code = canonicalNumber(f)
		if err := d.add(m); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// NewText builds a text domain. When width is positive every code must have
// exactly that many characters.
func NewText(name string, width int, members ...Member) (*Domain, error) {
	d := &Domain{name: name, kind: KindText, width: width}
	for _, m := range members {
		if width > 0 && len(m.Code) != width {
			return nil, fmt.Errorf("domain %s: code %q must be %d characters", name, m.Code, width)
		}
		if err := d.add(m); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Union merges domains of the same kind into a new domain. Codes must stay
// unique across the merged domains.
//
// A name or description shared by several members stays with the member of
// the longest code; the others get their code appended ("NAME_12",
// "Description (12)"), so every member still resolves from its own name.
func Union(name string, domains ...*Domain) (*Domain, error) {
	if len(domains) == 0 {
		return nil, fmt.Errorf("domain %s: union of nothing", name)
	}
	kind := domains[0].kind
	var members []Member
	for _, d := range domains {
		if d.kind != kind {
			return nil, fmt.Errorf("domain %s: cannot merge %s domain %s into %s union",
				name, d.kind, d.name, kind)
		}
		members = append(members, d.members...)
	}

	qualify(members, func(m *Member) *string { return &m.Name }, func(text, code string) string {
		return text + "_" + code
	})
	qualify(members, func(m *Member) *string { return &m.Description }, func(text, code string) string {
		return text + " (" + code + ")"
	})

	if kind == KindText {
		return NewText(name, 0, members...)
	}
	return NewNumeric(name, members...)
}

// qualify rewrites the text picked by field on every member sharing it
// (case-insensitively) with another member, except the one with the longest
// code. Ties keep the last member.
func qualify(members []Member, field func(*Member) *string, rename func(text, code string) string) {
	keeper := make(map[string]int)
	count := make(map[string]int)
	for i := range members {
		key := strings.ToLower(*field(&members[i]))
		if key == "" {
			continue
		}
		count[key]++
		if j, ok := keeper[key]; !ok || len(members[i].Code) >= len(members[j].Code) {
			keeper[key] = i
		}
	}
	for i := range members {
		text := field(&members[i])
		key := strings.ToLower(*text)
		if count[key] > 1 && keeper[key] != i {
			*text = rename(*text, members[i].Code)
		}
	}
}

func (d *Domain) add(m Member) error {
	if d.byCode == nil {
		d.byCode = make(map[string]int)
	}
	if _, exists := d.byCode[m.Code]; exists {
		return fmt.Errorf("domain %s: duplicate code %q", d.name, m.Code)
	}
	d.byCode[m.Code] = len(d.members)
	d.members = append(d.members, m)
	return nil
}

// Name returns the domain name, e.g. "Dom_Veda".
func (d *Domain) Name() string { return d.name }

// Kind returns whether codes are numeric or textual.
func (d *Domain) Kind() Kind { return d.kind }

// Width returns the fixed code width of a text domain (0 when unconstrained).
func (d *Domain) Width() int { return d.width }

// Len returns the number of members.
func (d *Domain) Len() int { return len(d.members) }

// Members returns a copy of the members in declaration order.
func (d *Domain) Members() []Member {
	out := make([]Member, len(d.members))
	copy(out, d.members)
	return out
}

// Codes returns the member codes in declaration order.
func (d *Domain) Codes() []string {
	out := make([]string, len(d.members))
	for i, m := range d.members {
		out[i] = m.Code
	}
	return out
}

// Contains reports whether code is a canonical member code.
func (d *Domain) Contains(code string) bool {
	_, ok := d.byCode[code]
	return ok
}

// Member returns the member with the given canonical code.
func (d *Domain) Member(code string) (Member, bool) {
	i, ok := d.byCode[code]
	if !ok {
		return Member{}, false
	}
	return d.members[i], true
}

// Describe returns the description of code. Unknown codes yield ("", false);
// Describe never fails.
func (d *Domain) Describe(code string) (string, bool) {
	m, ok := d.Member(code)
	if !ok {
		return "", false
	}
	return m.Description, true
}

// Resolve maps a raw token to a canonical member code.
//
// Blank tokens and null markers resolve to nothing. Otherwise the token is
// matched against codes (numerically for numeric domains, textually for text
// domains), then case-insensitively against descriptions, then against
// symbolic names. The first match wins. A token that matches nothing reports
// false and the caller decides whether that is a violation.
func (d *Domain) Resolve(v any) (string, bool) {
	token, ok := tokenOf(v)
	if !ok || IsNullMarker(token) {
		return "", false
	}

	switch d.kind {
	case KindNumeric:
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			if code := canonicalNumber(f); d.Contains(code) {
				return code, true
			}
		}
	case KindText:
		if d.Contains(token) {
			return token, true
		}
	}

	for _, m := range d.members {
		if strings.EqualFold(m.Description, token) {
			return m.Code, true
		}
	}
	for _, m := range d.members {
		if strings.EqualFold(m.Name, token) {
			return m.Code, true
		}
	}
	return "", false
}

// Value converts a canonical code to the value stored in accepted records:
// int64 or float64 for numeric domains (depending on integer), string for
// text domains.
func (d *Domain) Value(code string, integer bool) any {
	if d.kind == KindText {
		return code
	}
	f, err := strconv.ParseFloat(code, 64)
	if err != nil {
		return nil
	}
	if integer {
		return int64(f)
	}
	return f
}

// tokenOf renders a raw value as a trimmed token. It reports false for nil and
// NaN, which carry no token at all.
func tokenOf(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return strings.TrimSpace(x), true
	case float64:
		if math.IsNaN(x) {
			return "", false
		}
		return canonicalNumber(x), true
	case float32:
		if math.IsNaN(float64(x)) {
			return "", false
		}
		return canonicalNumber(float64(x)), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case json.Number:
		return strings.TrimSpace(x.String()), true
	case pgtype.Numeric:
		if !x.Valid || x.NaN {
			return "", false
		}
		if x.InfinityModifier != pgtype.Finite {
			return x.InfinityModifier.String(), true
		}
		if x.Int == nil {
			return "0", true
		}
		return decimal.NewFromBigInt(x.Int, x.Exp).String(), true
	case fmt.Stringer:
		return strings.TrimSpace(x.String()), true
	default:
		return strings.TrimSpace(fmt.Sprint(x)), true
	}
}

func canonicalNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// nm declares a numeric member.
func nm(code int, name, description string) Member {
	return Member{Code: strconv.Itoa(code), Name: name, Description: description}
}

// tm declares a text member.
func tm(code, name, description string) Member {
	return Member{Code: code, Name: name, Description: description}
}

func mustNumeric(name string, members ...Member) *Domain {
	d, err := NewNumeric(name, members...)
	if err != nil {
		panic(err)
	}
	return d
}

func mustText(name string, members ...Member) *Domain {
	width := 0
	if len(members) > 0 {
		width = len(members[0].Code)
	}
	d, err := NewText(name, width, members...)
	if err != nil {
		panic(err)
	}
	return d
}

func mustUnion(name string, domains ...*Domain) *Domain {
	d, err := Union(name, domains...)
	if err != nil {
		panic(err)
	}
	return d
}
