package tables

import (
	"github.com/JonMunkholm/geoanla/internal/catalog"
	"github.com/JonMunkholm/geoanla/internal/core"
)

func init() {
	registerCompensOTAutorPG()
	registerOtraCompensacion()
}

// Codes of the "Otra" options that require a free-text complement.
const (
	otherActivity     = "1211"  // Dom_SubAct_Comp
	otherCompensation = "20115" // Dom_Otras_Comp
)

func registerCompensOTAutorPG() {
	core.Register(core.Schema{
		Info: core.SchemaInfo{
			Key:         "Compens_OTAutorPG",
			Group:       GroupCompensacion,
			Label:       "Compensación a otras autoridades",
			Description: "Polígono de compensación ordenada por otra autoridad ambiental",
		},
		Fields: fields(
			project(),
			[]core.FieldSpec{
				text("EXP_AUT_AB", 20),
				coded("AUT_AB", catalog.CAR.Name()),
				coded("T_ACTO_OBL", catalog.TipoActadmin.Name()),
				describe(integer("RES_OBL"), "Número de resolución"),
				describe(date("FE_OBL"), "Fecha del acto administrativo"),
				coded("ACTIVIDAD", catalog.SubActComp.Name()),
				optText("OTRA_ACT", 255),
				describe(nonNegative("AREA_PG_ha"), "Área en hectáreas"),
				date("FECHA_INI"),
				date("FECHA_TER"),
				coded("OT_COMP_NN", catalog.OtrasComp.Name()),
				describe(nonNegative("VAL_E_COM"), "Valor en COP"),
				optText("OBSER_COMP", 255),
				geometry(),
			},
		),
		Rules: []core.Rule{
			core.RequiredWhenEquals("ACTIVIDAD", otherActivity, "OTRA_ACT"),
			core.Chronology("FECHA_INI", "FECHA_TER"),
			core.GeometryShape("geometry", core.FamilyPolygon),
		},
		Identifiers: []string{"EXP_AUT_AB", "EXPEDIENTE"},
	})
}

func registerOtraCompensacion() {
	core.Register(core.Schema{
		Info: core.SchemaInfo{
			Key:         "OtraCompensacion",
			Group:       GroupCompensacion,
			Label:       "Otras compensaciones",
			Description: "Polígono de una compensación distinta a la de pérdida de biodiversidad",
		},
		Fields: fields(
			project(),
			[]core.FieldSpec{
				text("ID_OT_COMP", 20),
				optInteger("NO_ACTOAD"),
				optDate("FE_ACTOAD"),
				optCoded("T_ACTO_OBL", catalog.TipoActadmin.Name()),
				optInteger("RES_OBL"),
				optDate("FE_OBL"),
				describe(nonNegative("AREA_COMP"), "Área total a compensar (ha)"),
				coded("ACTIVIDAD", catalog.SubActComp.Name()),
				optText("OTRA_ACT", 255),
				text("DESCRIPCIO", 255),
				describe(nonNegative("AREA_PG_ha"), "Área del polígono (ha)"),
				coded("ESTADO", catalog.EstInver.Name()),
				date("FECHA_INI"),
				date("FECHA_TER"),
				coded("OT_COMP_NN", catalog.OtrasComp.Name()),
				optText("OT_NN", 150),
				describe(nonNegative("PREC_SUELO"), "Precio de la tierra por hectárea (COP)"),
				describe(nonNegative("VAL_E_COM"), "Valor estimado total (COP)"),
				describe(nonNegative("VALOR_ACT"), "Valor destinado a la subactividad (COP)"),
				optText("OBSER_COMP", 255),
				geometry(),
			},
		),
		Rules: []core.Rule{
			core.RequiredWhenEquals("ACTIVIDAD", otherActivity, "OTRA_ACT"),
			core.RequiredWhenEquals("OT_COMP_NN", otherCompensation, "OT_NN"),
			core.Chronology("FECHA_INI", "FECHA_TER"),
			core.NotGreater("AREA_PG_ha", "AREA_COMP"),
			core.GeometryShape("geometry", core.FamilyPolygon),
		},
		Identifiers: []string{"ID_OT_COMP", "EXPEDIENTE"},
	})
}
