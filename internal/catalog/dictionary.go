package catalog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Dictionary is an externally supplied code -> text table bound to a field
// instead of a catalog domain.
type Dictionary map[string]string

// LoadDictionaries decodes a YAML document of the form
//
//	FIELD_NAME:
//	  "code": "text"
//
// into one Dictionary per field.
func LoadDictionaries(r io.Reader) (map[string]Dictionary, error) {
	var raw map[string]map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]Dictionary{}, nil
		}
		return nil, fmt.Errorf("decode dictionaries: %w", err)
	}

	out := make(map[string]Dictionary, len(raw))
	for field, entries := range raw {
		if len(entries) == 0 {
			return nil, fmt.Errorf("dictionary for %s is empty", field)
		}
		out[field] = Dictionary(entries)
	}
	return out, nil
}

// LoadDictionariesFile opens path and loads it with LoadDictionaries.
func LoadDictionariesFile(path string) (map[string]Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrReferenceDataMissing, path)
		}
		return nil, fmt.Errorf("open dictionaries: %w", err)
	}
	defer f.Close()
	return LoadDictionaries(f)
}

// FromDictionary converts a dictionary into a text domain. Members are
// ordered by code.
func FromDictionary(name string, dict Dictionary) (*Domain, error) {
	codes := make([]string, 0, len(dict))
	for code := range dict {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	members := make([]Member, len(codes))
	for i, code := range codes {
		members[i] = Member{Code: code, Name: SymbolName(dict[code]), Description: dict[code]}
	}
	return NewText(name, 0, members...)
}
