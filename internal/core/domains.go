package core

// domains.go binds schema fields to catalog domains.
//
// Bindings come from each field's explicit Domain declaration. A field can
// also be bound to an externally supplied dictionary, which takes precedence
// over its declared domain. The registry is built once, before any batch is
// validated, and never changes afterwards.

import (
	"errors"
	"fmt"
	"sort"

	"github.com/JonMunkholm/geoanla/internal/catalog"
)

// ErrDomainNotFound is returned when a schema names a domain the catalog
// does not hold. It indicates a misconfigured schema.
var ErrDomainNotFound = errors.New("domain not found")

// Binding ties a field to the domain its values must belong to.
type Binding struct {
	Field    string
	Domain   *catalog.Domain
	External bool // bound to an external dictionary rather than a catalog domain
}

// DomainRegistry maps schema fields to domains.
type DomainRegistry struct {
	catalog  *catalog.Catalog
	external map[string]*catalog.Domain
}

// RegistryOption configures a DomainRegistry.
type RegistryOption func(*DomainRegistry) error

// WithDictionary binds field, in every schema, to an external dictionary.
func WithDictionary(field string, dict catalog.Dictionary) RegistryOption {
	return func(r *DomainRegistry) error {
		d, err := catalog.FromDictionary(field, dict)
		if err != nil {
			return fmt.Errorf("dictionary %s: %w", field, err)
		}
		r.external[field] = d
		return nil
	}
}

// WithDictionaries binds every dictionary in dicts to the field it is keyed by.
func WithDictionaries(dicts map[string]catalog.Dictionary) RegistryOption {
	return func(r *DomainRegistry) error {
		fields := make([]string, 0, len(dicts))
		for f := range dicts {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			if err := WithDictionary(f, dicts[f])(r); err != nil {
				return err
			}
		}
		return nil
	}
}

// NewDomainRegistry creates a registry over cat.
func NewDomainRegistry(cat *catalog.Catalog, opts ...RegistryOption) (*DomainRegistry, error) {
	if cat == nil {
		return nil, errors.New("domain registry needs a catalog")
	}
	r := &DomainRegistry{
		catalog:  cat,
		external: make(map[string]*catalog.Domain),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Catalog returns the catalog the registry resolves against.
func (r *DomainRegistry) Catalog() *catalog.Catalog { return r.catalog }

// DomainsOf returns the bindings of every coded field of s, keyed by field
// name. A declared domain missing from the catalog is a fatal error.
func (r *DomainRegistry) DomainsOf(s Schema) (map[string]Binding, error) {
	out := make(map[string]Binding)
	for _, f := range s.Fields {
		if d, ok := r.external[f.Name]; ok {
			out[f.Name] = Binding{Field: f.Name, Domain: d, External: true}
			continue
		}
		if f.Domain == "" {
			continue
		}
		d, ok := r.catalog.Domain(f.Domain)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s declares %s", ErrDomainNotFound, s.Info.Key, f.Name, f.Domain)
		}
		out[f.Name] = Binding{Field: f.Name, Domain: d}
	}
	return out, nil
}

// Domain returns the domain bound to field in s, or the catalog domain named
// ref when ref is not a field of s.
func (r *DomainRegistry) Domain(s Schema, ref string) (*catalog.Domain, bool) {
	if d, ok := r.external[ref]; ok {
		if _, isField := s.Field(ref); isField {
			return d, true
		}
	}
	if f, ok := s.Field(ref); ok {
		if f.Domain == "" {
			return nil, false
		}
		return r.catalog.Domain(f.Domain)
	}
	return r.catalog.Domain(ref)
}

// CodeOf resolves value against the domain referenced by ref (a field of s or
// a domain name). It reports false when the reference is unknown or the value
// does not resolve.
func (r *DomainRegistry) CodeOf(value any, s Schema, ref string) (string, bool) {
	d, ok := r.Domain(s, ref)
	if !ok {
		return "", false
	}
	return d.Resolve(value)
}
