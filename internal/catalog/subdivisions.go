package catalog

// subdivisions.go loads the municipality reference table into a Domain.
//
// The table is a CSV file with an "id" column (DANE code, possibly stored
// without its leading zero) and a "nombre" column (display name). Ids are
// left-padded to SubdivisionWidth. Display names repeat across departments,
// so every symbolic name carries its id as a suffix.

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrReferenceDataMissing is returned when a required reference table cannot
// be found. Validation cannot start without it.
var ErrReferenceDataMissing = errors.New("reference data missing")

const (
	// SubdivisionDomain is the name under which municipalities are registered.
	SubdivisionDomain = "Dom_Municipio"
	// SubdivisionWidth is the width of a municipality code.
	SubdivisionWidth = 5
)

// LoadSubdivisionsFile opens path and loads it with LoadSubdivisions.
func LoadSubdivisionsFile(path string) (*Domain, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrReferenceDataMissing, path)
		}
		return nil, fmt.Errorf("open subdivisions: %w", err)
	}
	defer f.Close()

	d, err := LoadSubdivisions(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return d, nil
}

// LoadSubdivisions reads the municipality table from r.
func LoadSubdivisions(r io.Reader) (*Domain, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: subdivisions table is empty", ErrReferenceDataMissing)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idCol, nameCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "id":
			idCol = i
		case "nombre":
			nameCol = i
		}
	}
	if idCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("subdivisions table needs columns id and nombre, got %v", header)
	}

	var members []Member
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if idCol >= len(record) || nameCol >= len(record) {
			return nil, fmt.Errorf("line %d: expected at least %d columns", line, max(idCol, nameCol)+1)
		}

		id, err := padCode(record[idCol], SubdivisionWidth)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		display := strings.TrimSpace(record[nameCol])
		members = append(members, Member{
			Code:        id,
			Name:        SymbolName(display) + "_" + id,
			Description: display,
		})
	}

	return NewText(SubdivisionDomain, SubdivisionWidth, members...)
}

// padCode normalizes a code read from a table: integral floats lose their
// fraction ("5001.0" -> "5001") and the result is left-padded with zeros.
func padCode(raw string, width int) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", errors.New("empty id")
	}
	if f, err := strconv.ParseFloat(code, 64); err == nil && f == float64(int64(f)) {
		code = strconv.FormatInt(int64(f), 10)
	}
	if len(code) > width {
		return "", fmt.Errorf("id %q longer than %d characters", code, width)
	}
	return strings.Repeat("0", width-len(code)) + code, nil
}
