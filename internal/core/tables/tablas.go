package tables

import (
	"github.com/JonMunkholm/geoanla/internal/catalog"
	"github.com/JonMunkholm/geoanla/internal/core"
)

func init() {
	registerMuestreoFloraFustal()
	registerMuestreoFloraResultados()
	registerMuestreoFloraRegeneracion()
	registerSegCompensaciones()
	registerSegIndicadores()
}

func registerMuestreoFloraFustal() {
	core.Register(core.Schema{
		Info: core.SchemaInfo{
			Key:         "MuestreoFloraFustalTB",
			Group:       GroupTablas,
			Label:       "Muestreo de flora: fustales",
			Description: "Individuo con DAP de al menos 10 cm, relacionado por ID_MUEST",
		},
		Fields: fields(
			[]core.FieldSpec{
				optText("EXPEDIENTE", 20),
				text("ID_MUEST", 20),
				optText("ID_S_MUEST", 20),
				text("ID_INDV_MU", 20),
			},
			taxonomy(),
			[]core.FieldSpec{
				describe(nonNegative("DAP_INDIV"), "Diámetro a la altura del pecho (m)"),
				describe(nonNegative("AB_INDIV"), "Área basal (m2)"),
				describe(nonNegative("H_TOTAL"), "Altura total (m)"),
				describe(nonNegative("H_FUSTE"), "Altura comercial (m)"),
				describe(nonNegative("VOL_TOTAL"), "Volumen total (m3)"),
				describe(nonNegative("VOL_COM"), "Volumen comercial (m3)"),
				describe(nonNegative("BIOM_INDIV"), "Biomasa (kg)"),
				describe(nonNegative("CARB_INDIV"), "Carbono (kg)"),
				optText("OBSERV", 255),
			},
		),
		Rules: []core.Rule{
			core.NotGreater("H_FUSTE", "H_TOTAL"),
		},
		Identifiers: []string{"ID_MUEST", "ID_INDV_MU"},
	})
}

func registerMuestreoFloraResultados() {
	core.Register(core.Schema{
		Info: core.SchemaInfo{
			Key:         "MuestreoFloraResultadosTB",
			Group:       GroupTablas,
			Label:       "Muestreo de flora: resultados",
			Description: "Caracterización taxonómica, estructural y de conservación por especie",
		},
		Fields: fields(
			[]core.FieldSpec{
				optText("EXPEDIENTE", 20),
				text("PROYECTO", 200),
				text("N_COBERT", 100),
				nomenclature(),
				optText("ECOSISTEMA", 255),
			},
			taxonomy(),
			[]core.FieldSpec{
				{Name: "INDIVIDUOS", Type: core.FieldInteger, Required: true, Min: core.Bound(0)},
			},
			conservation(),
			[]core.FieldSpec{
				nonNegative("ABUNDANCIA"),
				percentage("ABUND_REL", 100),
				nonNegative("FRECUENCIA"),
				percentage("FRECU_REL", 100),
				nonNegative("DOMINANCIA"),
				percentage("DOMIN_REL", 100),
				describe(percentage("IVI", 300), "Índice de valor de importancia"),
				coded("USO", catalog.UsoFlora.Name()),
				coded("TIPO_HAB", catalog.Habito.Name()),
				nonNegative("DEN_MADERA"),
				text("MET_DENSID", 50),
				nonNegative("VOL_COM"),
				nonNegative("VOL_TOTAL"),
				nonNegative("BIOM_TOT"),
				nonNegative("CARB_TOT"),
				date("FECHA_IMUE"),
				date("FECHA_FMUE"),
				optText("OBSERV", 255),
			},
		),
		Rules: []core.Rule{
			core.Chronology("FECHA_IMUE", "FECHA_FMUE"),
			vedaRule(),
		},
		Identifiers: []string{"ESPECIE", "EXPEDIENTE"},
	})
}

func registerMuestreoFloraRegeneracion() {
	core.Register(core.Schema{
		Info: core.SchemaInfo{
			Key:         "MuestreoFloraRegeneracionTB",
			Group:       GroupTablas,
			Label:       "Muestreo de flora: regeneración",
			Description: "Regeneración natural y otros tipos de vegetación, relacionada por ID_MUEST",
		},
		Fields: fields(
			[]core.FieldSpec{
				optText("EXPEDIENTE", 20),
				describe(text("ID_MUEST", 20), "Identificador del punto de muestreo de flora"),
				optText("ID_S_MUEST", 20),
			},
			taxonomy(),
			conservation(),
			[]core.FieldSpec{
				{Name: "T_REGEN", Type: core.FieldInteger, Required: true, Domain: catalog.Regeneracion.Name()},
				coded("TIPO_HAB", catalog.Habito.Name()),
				{Name: "INDIVIDUOS", Type: core.FieldInteger, Required: true, Min: core.Bound(0)},
				optText("OBSERV", 255),
			},
		),
		Rules: []core.Rule{
			vedaRule(),
		},
	})
}

func registerSegCompensaciones() {
	core.Register(core.Schema{
		Info: core.SchemaInfo{
			Key:         "Seg_CompensacionesTB",
			Group:       GroupTablas,
			Label:       "Seguimiento de compensaciones",
			Description: "Avance de una actividad de compensación, relacionada por ID_COMP o ID_OT_COMP",
		},
		Fields: []core.FieldSpec{
			text("EXPEDIENTE", 20),
			text("OPERADOR", 100),
			text("PROYECTO", 200),
			optText("ID_COMP", 20),
			optText("ID_OT_COMP", 20),
			integer("NO_ACTOAD"),
			date("FE_ACTOAD"),
			coded("T_ACTO_OBL", catalog.TipoActadmin.Name()),
			integer("RES_OBL"),
			date("FE_OBL"),
			optInteger("NO_ACT_CUM"),
			optDate("FE_ACT_CUM"),
			coded("ESTADO", catalog.EstInver.Name()),
			date("FEC_INI_AC"),
			date("FEC_TER_AC"),
			optInteger("ID_ICA"),
			date("FECHA_INI"),
			date("FECHA_FIN"),
			describe(nonNegative("PREC_SUELO"), "Precio de la tierra por hectárea (COP)"),
			describe(nonNegative("EJ_ACU_ACT"), "Ejecución acumulada (COP)"),
			describe(nonNegative("V_INV_EJ"), "Valor de la inversión del periodo (COP)"),
			optText("OBS_CP", 255),
		},
		Rules: []core.Rule{
			core.AtLeastOne("ID_COMP", "ID_OT_COMP"),
			core.Chronology("FEC_INI_AC", "FEC_TER_AC"),
			core.Chronology("FECHA_INI", "FECHA_FIN"),
			core.RequiredWhen("FE_ACT_CUM", "NO_ACT_CUM"),
		},
		Identifiers: []string{"ID_COMP", "ID_OT_COMP", "EXPEDIENTE"},
	})
}

func registerSegIndicadores() {
	core.Register(core.Schema{
		Info: core.SchemaInfo{
			Key:         "Seg_IndicadoresTB",
			Group:       GroupTablas,
			Label:       "Indicadores de seguimiento",
			Description: "Indicador de una inversión del 1% o de una compensación",
		},
		Fields: []core.FieldSpec{
			text("EXPEDIENTE", 20),
			optText("ID_INVER", 20),
			optText("ID_INV_PT", 20),
			optText("ID_INV_PG", 20),
			optText("ID_INV_LN", 20),
			optText("ID_COMP", 20),
			optText("ID_OT_COMP", 20),
			optInteger("ID_ICA"),
			describe(date("FECHA_INI"), "Inicio del periodo reportado"),
			describe(date("FECHA_FIN"), "Fin del periodo reportado"),
			describe(text("IND_EF_GES", 255), "Indicador de eficiencia de gestión"),
			describe(decimal("VAL_NOPUM"), "Valor del indicador de eficiencia técnica"),
			optText("OBSEVACIO", 255),
		},
		Rules: []core.Rule{
			core.AtLeastOne("ID_INVER", "ID_INV_PT", "ID_INV_PG", "ID_INV_LN", "ID_COMP", "ID_OT_COMP"),
			core.Chronology("FECHA_INI", "FECHA_FIN"),
		},
	})
}
