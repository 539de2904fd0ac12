package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrSchemaNotFound is returned when a record type is not registered.
var ErrSchemaNotFound = errors.New("schema not found")

var (
	schemas   = make(map[string]Schema)
	schemasMu sync.RWMutex
)

// Register adds a record schema to the registry.
// Panics if a schema with the same key is already registered or if the
// declaration is inconsistent (duplicate field names, rules on unknown fields).
func Register(s Schema) {
	schemasMu.Lock()
	defer schemasMu.Unlock()

	if _, exists := schemas[s.Info.Key]; exists {
		panic(fmt.Sprintf("schema already registered: %s", s.Info.Key))
	}
	if err := checkSchema(s); err != nil {
		panic(err)
	}

	if len(s.Info.Columns) == 0 {
		s.Info.Columns = make([]string, len(s.Fields))
		for i, f := range s.Fields {
			s.Info.Columns[i] = f.Name
		}
	}

	schemas[s.Info.Key] = s
}

func checkSchema(s Schema) error {
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if seen[f.Name] {
			return fmt.Errorf("schema %s: duplicate field %s", s.Info.Key, f.Name)
		}
		seen[f.Name] = true
	}
	for _, r := range s.Rules {
		for _, f := range r.Fields {
			if !seen[f] {
				return fmt.Errorf("schema %s: rule %s reads unknown field %s", s.Info.Key, r.Name, f)
			}
		}
	}
	return nil
}

// Get returns a schema by key. Keys match case-insensitively.
func Get(key string) (Schema, bool) {
	schemasMu.RLock()
	defer schemasMu.RUnlock()

	if s, ok := schemas[key]; ok {
		return s, true
	}
	for k, s := range schemas {
		if strings.EqualFold(k, key) {
			return s, true
		}
	}
	return Schema{}, false
}

// Lookup returns a schema by key or an error wrapping ErrSchemaNotFound.
func Lookup(key string) (Schema, error) {
	s, ok := Get(key)
	if !ok {
		return Schema{}, fmt.Errorf("%w: %s", ErrSchemaNotFound, key)
	}
	return s, nil
}

// All returns all registered schemas.
// Sorted by group then by key for consistent ordering.
func All() []Schema {
	schemasMu.RLock()
	defer schemasMu.RUnlock()

	result := make([]Schema, 0, len(schemas))
	for _, s := range schemas {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Info.Group != result[j].Info.Group {
			return result[i].Info.Group < result[j].Info.Group
		}
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// ByGroup returns all schemas of a model group, sorted by key.
func ByGroup(group string) []Schema {
	var result []Schema
	for _, s := range All() {
		if s.Info.Group == group {
			result = append(result, s)
		}
	}
	return result
}

// Groups returns all unique group names, sorted.
func Groups() []string {
	schemasMu.RLock()
	defer schemasMu.RUnlock()

	seen := make(map[string]bool)
	for _, s := range schemas {
		seen[s.Info.Group] = true
	}

	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}

	sort.Strings(groups)
	return groups
}

// SchemaCount returns the number of registered schemas.
func SchemaCount() int {
	schemasMu.RLock()
	defer schemasMu.RUnlock()
	return len(schemas)
}

// Clear removes all registered schemas.
// Primarily useful for testing.
func Clear() {
	schemasMu.Lock()
	defer schemasMu.Unlock()
	schemas = make(map[string]Schema)
}
