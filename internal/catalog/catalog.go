package catalog

import (
	"fmt"
	"sort"
)

// NomenclaturaCLC accepts a code of any Corine Land Cover level. Nomenclature
// fields of sampling points are validated against it.
var NomenclaturaCLC = mustUnion("Dom_Nomenclatura_CLC", CLCLevels...)

// CLCLevels lists the land-cover levels from coarsest to finest.
var CLCLevels = []*Domain{CateCober, SubcatCober, ClasCober, SubclasCober, Nivel5Cober, Nivel6Cober}

// Static returns every domain declared in this package.
func Static() []*Domain {
	return []*Domain{
		FCMultimedia, Departamento, Tenencia, TipoMuestreoFlo, Temporada,
		Apendice, Amenaza, TipoDistribu, EntidadVeda, Vigencia,
		UsoFlora, Habito, Veda, TipoTransecto, TipoMigra,
		UsoFauna, Dieta, Sector, Boolean, TipoMuestreoFau,
		Deter, Regeneracion, CAR, TipoActadmin, SubActComp,
		OtrasComp, EstInver,
		CateCober, SubcatCober, ClasCober, SubclasCober, Nivel5Cober, Nivel6Cober,
		NomenclaturaCLC,
	}
}

// Catalog is an immutable set of domains addressed by name.
type Catalog struct {
	domains map[string]*Domain
	names   []string
}

// New builds a catalog. Domain names must be unique.
func New(domains ...*Domain) (*Catalog, error) {
	c := &Catalog{domains: make(map[string]*Domain, len(domains))}
	for _, d := range domains {
		if d == nil {
			continue
		}
		if _, exists := c.domains[d.name]; exists {
			return nil, fmt.Errorf("catalog: duplicate domain %s", d.name)
		}
		c.domains[d.name] = d
		c.names = append(c.names, d.name)
	}
	sort.Strings(c.names)
	return c, nil
}

// Default builds the full catalog: the static domains plus the loaded
// administrative subdivisions.
func Default(subdivisions *Domain) (*Catalog, error) {
	if subdivisions == nil {
		return nil, fmt.Errorf("%w: %s not loaded", ErrReferenceDataMissing, SubdivisionDomain)
	}
	return New(append(Static(), subdivisions)...)
}

// Domain returns the domain with the given name.
func (c *Catalog) Domain(name string) (*Domain, bool) {
	d, ok := c.domains[name]
	return d, ok
}

// Names returns the domain names, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of domains.
func (c *Catalog) Len() int { return len(c.domains) }
