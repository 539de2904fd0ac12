package tables

import (
	"github.com/JonMunkholm/geoanla/internal/catalog"
	"github.com/JonMunkholm/geoanla/internal/core"
)

// Field constructors shared by the record types. Required fields take the
// plain name, optional ones the opt prefix.

func text(name string, maxLen int) core.FieldSpec {
	return core.FieldSpec{Name: name, Type: core.FieldText, Required: true, MaxLen: maxLen}
}

func optText(name string, maxLen int) core.FieldSpec {
	f := text(name, maxLen)
	f.Required = false
	return f
}

func integer(name string) core.FieldSpec {
	return core.FieldSpec{Name: name, Type: core.FieldInteger, Required: true}
}

func optInteger(name string) core.FieldSpec {
	f := integer(name)
	f.Required = false
	return f
}

func decimal(name string) core.FieldSpec {
	return core.FieldSpec{Name: name, Type: core.FieldDecimal, Required: true}
}

func optDecimal(name string) core.FieldSpec {
	f := decimal(name)
	f.Required = false
	return f
}

// nonNegative is a required decimal that must be >= 0.
func nonNegative(name string) core.FieldSpec {
	f := decimal(name)
	f.Min = core.Bound(0)
	return f
}

// percentage is a required decimal in [0, max].
func percentage(name string, max float64) core.FieldSpec {
	f := nonNegative(name)
	f.Max = core.Bound(max)
	return f
}

func date(name string) core.FieldSpec {
	return core.FieldSpec{Name: name, Type: core.FieldDate, Required: true}
}

func optDate(name string) core.FieldSpec {
	f := date(name)
	f.Required = false
	return f
}

// coded is a required field bound to a numeric catalog domain.
func coded(name, domain string) core.FieldSpec {
	return core.FieldSpec{Name: name, Type: core.FieldDecimal, Required: true, Domain: domain}
}

func optCoded(name, domain string) core.FieldSpec {
	f := coded(name, domain)
	f.Required = false
	return f
}

// nomenclature is the land-cover code of a record, any CLC level.
func nomenclature() core.FieldSpec {
	return core.FieldSpec{
		Name:        "NOMENCLAT",
		Aliases:     []string{"NOMENCLATURA"},
		Type:        core.FieldInteger,
		Required:    true,
		Domain:      catalog.NomenclaturaCLC.Name(),
		Description: "Código Corine Land Cover del nivel más detallado",
	}
}

// municipality and department are text-coded: their codes keep leading zeros.
func municipality() core.FieldSpec {
	return core.FieldSpec{Name: "MUNICIPIO", Type: core.FieldText, Required: true, Domain: catalog.SubdivisionDomain}
}

func department() core.FieldSpec {
	return core.FieldSpec{
		Name:     "DEPTO",
		Aliases:  []string{"DEPARTAMENTO"},
		Type:     core.FieldText,
		Required: true,
		Domain:   catalog.Departamento.Name(),
	}
}

func geometry() core.FieldSpec {
	return core.FieldSpec{
		Name:     "geometry",
		Aliases:  []string{"WKT", "geom", "the_geom", "SHAPE"},
		Type:     core.FieldGeometry,
		Required: true,
	}
}

// alias adds alternative source column names to f.
func alias(f core.FieldSpec, names ...string) core.FieldSpec {
	f.Aliases = append(append([]string(nil), f.Aliases...), names...)
	return f
}

// describe sets the field description.
func describe(f core.FieldSpec, description string) core.FieldSpec {
	f.Description = description
	return f
}

// project lists the administrative fields most layers start with.
func project() []core.FieldSpec {
	return []core.FieldSpec{
		describe(optText("EXPEDIENTE", 20), "Número de expediente ANLA"),
		text("OPERADOR", 100),
		text("PROYECTO", 200),
	}
}

// taxonomy lists the taxonomic classification of a sampled species.
func taxonomy() []core.FieldSpec {
	return []core.FieldSpec{
		text("DIVISION", 50),
		text("CLASE", 50),
		text("ORDEN", 50),
		text("FAMILIA", 50),
		text("GENERO", 50),
		text("ESPECIE", 50),
		text("N_COMUN", 50),
	}
}

// conservation lists the threat and protection categories of a species.
func conservation() []core.FieldSpec {
	return []core.FieldSpec{
		describe(coded("CATEG_CIT", catalog.Apendice.Name()), "Apéndice CITES"),
		describe(coded("CATEG_UICN", catalog.Amenaza.Name()), "Categoría UICN"),
		describe(coded("CATE_MINIS", catalog.Amenaza.Name()), "Categoría Resolución 192 de 2014"),
		coded("T_DISTRIB", catalog.TipoDistribu.Name()),
		optCoded("VEDA", catalog.Veda.Name()),
		optText("RESOLUCION", 20),
		optCoded("ENTID_VEDA", catalog.EntidadVeda.Name()),
		optCoded("VIGEN_VEDA", catalog.Vigencia.Name()),
	}
}

// vedaRule makes the ban details mandatory once VEDA is set.
func vedaRule() core.Rule {
	return core.RequiredWhen("VEDA", "RESOLUCION", "ENTID_VEDA", "VIGEN_VEDA")
}

func fields(groups ...[]core.FieldSpec) []core.FieldSpec {
	var out []core.FieldSpec
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
