package core

// source_csv.go reads rows from delimited text exported by spreadsheets and
// GIS tools.
//
// Input is decoded to UTF-8 first (a BOM wins over the configured encoding),
// invalid bytes become U+FFFD. The delimiter is sniffed from the header line
// when not configured. Cells are cleaned of spreadsheet artifacts; empty
// cells become nil. A WKT column carries geometries.

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVOptions configures a CSVReader.
type CSVOptions struct {
	Encoding string // IANA/WHATWG name; empty means UTF-8
	Comma    rune   // Field delimiter; 0 sniffs ',', ';', '\t' or '|'
}

// CSVReader reads rows from delimited text. The first record is the header.
type CSVReader struct {
	r      *csv.Reader
	header []string
	line   int
}

// NewCSVReader decodes r and reads its header row.
func NewCSVReader(r io.Reader, opts CSVOptions) (*CSVReader, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	decoded := transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder()))
	buffered := bufio.NewReaderSize(decoded, 64<<10)

	comma := opts.Comma
	if comma == 0 {
		peek, _ := buffered.Peek(buffered.Size())
		comma = sniffDelimiter(peek)
	}

	cr := csv.NewReader(buffered)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty input: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("invalid csv header: %w", err)
	}

	for i := range header {
		header[i] = CleanCell(header[i])
	}
	return &CSVReader{r: cr, header: header, line: 1}, nil
}

func (c *CSVReader) Columns() []string { return c.header }

func (c *CSVReader) Next() (Row, error) {
	record, err := c.r.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	c.line++
	if err != nil {
		return nil, fmt.Errorf("invalid csv at line %d: %w", c.line, err)
	}

	row := make(Row, len(c.header))
	for i, name := range c.header {
		if name == "" {
			continue
		}
		if i >= len(record) {
			row[name] = nil
			continue
		}
		if cell := CleanCell(record[i]); cell != "" {
			row[name] = cell
		} else {
			row[name] = nil
		}
	}
	return row, nil
}

// lookupEncoding resolves an encoding name such as "windows-1252" or
// "latin1". Empty means UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return enc, nil
}

// sniffDelimiter picks the most frequent candidate delimiter in the first line.
func sniffDelimiter(data []byte) rune {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[:i]
	}
	best, bestCount := ',', 0
	for _, c := range []rune{',', ';', '\t', '|'} {
		if n := bytes.Count(data, []byte(string(c))); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}
