package tables

import (
	"github.com/JonMunkholm/geoanla/internal/catalog"
	"github.com/JonMunkholm/geoanla/internal/core"
)

func init() {
	registerPuntoMuestreoFlora()
	registerPuntoMuestreoVeda()
	registerCoberturaTierra()
	registerPuntoMuestreoFauna()
	registerTransectoMuestreoFauna()
}

// administrativeAct lists the optional act that authorized the sampling.
func administrativeAct() []core.FieldSpec {
	return []core.FieldSpec{
		optText("NUM_ACT_AD", 20),
		optDate("FEC_ACT_AD"),
		optText("ART_ACT_AD", 50),
	}
}

// locality lists the political location of a sampling site.
func locality() []core.FieldSpec {
	return []core.FieldSpec{
		text("VEREDA", 100),
		municipality(),
		department(),
		describe(text("NOMBRE", 100), "Nombre del predio o lugar"),
	}
}

// coordinates lists the planar coordinates in MAGNA-SIRGAS.
func coordinates() []core.FieldSpec {
	return []core.FieldSpec{
		describe(decimal("COOR_ESTE"), "Coordenada Este en MAGNA-SIRGAS"),
		describe(decimal("COOR_NORTE"), "Coordenada Norte en MAGNA-SIRGAS"),
	}
}

func registerPuntoMuestreoFlora() {
	core.Register(core.Schema{
		Info: core.SchemaInfo{
			Key:         "PuntoMuestreoFlora",
			Group:       GroupBiotico,
			Label:       "Puntos de muestreo de flora",
			Description: "Parcela o transecto de muestreo de flora",
		},
		Fields: fields(
			project(),
			administrativeAct(),
			locality(),
			[]core.FieldSpec{
				text("ID_MUEST", 20),
				text("N_COBERT", 100),
				nomenclature(),
				coded("T_MUEST", catalog.TipoMuestreoFlo.Name()),
				optDecimal("AREA_UM_ha"),
				optDecimal("LONGI_TR_m"),
				optText("CUERPO_AGU", 100),
				optDecimal("PROFUND"),
				text("DESCRIP", 255),
				date("FEC_MUEST"),
				coded("ESTACIONAL", catalog.Temporada.Name()),
				text("LOCALIDAD", 250),
				describe(decimal("COTA"), "msnm"),
			},
			coordinates(),
			[]core.FieldSpec{geometry()},
		),
		Rules: []core.Rule{
			core.GeometryShape("geometry", core.FamilyPoint),
		},
		Identifiers: []string{"ID_MUEST"},
	})
}

func registerPuntoMuestreoVeda() {
	core.Register(core.Schema{
		Info: core.SchemaInfo{
			Key:         "PuntoMuestreoVeda",
			Group:       GroupBiotico,
			Label:       "Puntos de especies en veda",
			Description: "Individuo de una especie en veda",
		},
		Fields: fields(
			project(),
			[]core.FieldSpec{
				text("VEREDA", 100),
				municipality(),
				department(),
				describe(text("ID_VEDA", 20), "Identificador del individuo en veda"),
				alias(text("N_COBERT", 100), "N_COBERTURA"),
				nomenclature(),
				alias(text("DESCRIP", 255), "DESCRIPCION"),
				alias(optText("OBSERV", 255), "OBSERVACIONES"),
				alias(date("FEC_MUEST"), "FECHA_MUESTRA"),
				alias(decimal("COOR_ESTE"), "ESTE"),
				alias(decimal("COOR_NORTE"), "NORTE"),
				geometry(),
			},
		),
		Rules: []core.Rule{
			core.GeometryShape("geometry", core.FamilyPoint),
		},
		Identifiers: []string{"ID_VEDA", "EXPEDIENTE"},
	})
}

// coverLevel is one Corine Land Cover level field.
func coverLevel(name string, d *catalog.Domain, required bool, description string) core.FieldSpec {
	return core.FieldSpec{
		Name:        name,
		Type:        core.FieldInteger,
		Required:    required,
		Domain:      d.Name(),
		Description: description,
	}
}

func registerCoberturaTierra() {
	levels := []string{"N1_COBERT", "N2_COBERT", "N3_COBERT", "N4_COBERT", "N5_COBERT", "N6_COBERT"}

	core.Register(core.Schema{
		Info: core.SchemaInfo{
			Key:         "CoberturaTierra",
			Group:       GroupBiotico,
			Label:       "Coberturas de la tierra",
			Description: "Polígono de cobertura según la leyenda Corine Land Cover",
		},
		Fields: fields(
			project(),
			[]core.FieldSpec{
				describe(integer("ID_COBERT"), "Identificador único del polígono"),
				coverLevel("N1_COBERT", catalog.CateCober, true, "Nivel 1: categoría"),
				coverLevel("N2_COBERT", catalog.SubcatCober, true, "Nivel 2: subcategoría"),
				coverLevel("N3_COBERT", catalog.ClasCober, true, "Nivel 3: clase"),
				coverLevel("N4_COBERT", catalog.SubclasCober, false, "Nivel 4: subclase"),
				coverLevel("N5_COBERT", catalog.Nivel5Cober, false, "Nivel 5: detalle ecológico"),
				coverLevel("N6_COBERT", catalog.Nivel6Cober, false, "Nivel 6: detalle fisonómico"),
				nomenclature(),
				optText("OBSERV", 255),
				describe(nonNegative("AREA_ha"), "Área en hectáreas"),
				geometry(),
			},
		),
		Rules: []core.Rule{
			core.Hierarchy("NOMENCLAT", levels...),
			core.GeometryShape("geometry", core.FamilyPolygon),
		},
		Identifiers: []string{"ID_COBERT", "EXPEDIENTE"},
	})
}

func registerPuntoMuestreoFauna() {
	core.Register(core.Schema{
		Info: core.SchemaInfo{
			Key:         "PuntoMuestreoFauna",
			Group:       GroupBiotico,
			Label:       "Puntos de muestreo de fauna",
			Description: "Punto de captura u observación de fauna",
		},
		Fields: fields(
			project(),
			administrativeAct(),
			locality(),
			[]core.FieldSpec{
				describe(text("ID_MUES_PT", 20), "Identificador del punto de fauna"),
				text("N_COBERT", 100),
				nomenclature(),
				describe(coded("T_MUEST", catalog.TipoMuestreoFau.Name()), "Tipo de captura u observación"),
				date("FEC_MUEST"),
				coded("ESTACIONAL", catalog.Temporada.Name()),
				describe(text("HABITAT", 255), "Descripción del entorno"),
				text("DESCRIP", 255),
				optText("CUERPO_AGU", 100),
				describe(decimal("COTA"), "msnm"),
			},
			coordinates(),
			[]core.FieldSpec{geometry()},
		),
		Rules: []core.Rule{
			core.GeometryShape("geometry", core.FamilyPoint),
		},
		Identifiers: []string{"ID_MUES_PT"},
	})
}

func registerTransectoMuestreoFauna() {
	cotaMin := describe(nonNegative("COTA_MIN"), "Altura mínima msnm")
	cotaMax := describe(nonNegative("COTA_MAX"), "Altura máxima msnm")

	core.Register(core.Schema{
		Info: core.SchemaInfo{
			Key:         "TransectoMuestreoFauna",
			Group:       GroupBiotico,
			Label:       "Transectos de muestreo de fauna",
			Description: "Recorrido lineal de muestreo de fauna",
		},
		Fields: fields(
			project(),
			administrativeAct(),
			locality(),
			[]core.FieldSpec{
				text("ID_MUES_TR", 20),
				coded("T_TRANSEC", catalog.TipoTransecto.Name()),
				optText("OT_TRANSEC", 50),
				describe(text("N_COBERT", 100), "Nombre Corine Land Cover"),
				nomenclature(),
				describe(text("HABITAT", 250), "Descripción del entorno"),
				text("DESCRIP", 255),
				date("FEC_MUEST"),
				coded("ESTACIONAL", catalog.Temporada.Name()),
				optText("CUERPO_AGU", 100),
				cotaMin,
				cotaMax,
				nonNegative("LONGITUD_m"),
				geometry(),
			},
		),
		Rules: []core.Rule{
			core.Ordered("COTA_MIN", "COTA_MAX"),
			core.GeometryShape("geometry", core.FamilyLine),
		},
		Identifiers: []string{"ID_MUES_TR", "EXPEDIENTE"},
	})
}
