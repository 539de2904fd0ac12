package core

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestChronology(t *testing.T) {
	rule := Chronology("FECHA_INI", "FECHA_TER")

	errs := rule.Check(Record{"FECHA_INI": day("2024-06-01"), "FECHA_TER": day("2024-05-01")})
	require.Len(t, errs, 1)
	assert.Equal(t, "FECHA_TER", errs[0].Field)
	assert.Equal(t, KindRule, errs[0].Kind)
	assert.Equal(t, "FECHA_TER (2024-05-01) cannot be earlier than FECHA_INI (2024-06-01)", errs[0].Message)

	assert.Empty(t, rule.Check(Record{"FECHA_INI": day("2024-06-01"), "FECHA_TER": day("2024-06-01")}))
	assert.Empty(t, rule.Check(Record{"FECHA_INI": day("2024-06-01"), "FECHA_TER": nil}))
	assert.Empty(t, rule.Check(Record{}))
}

func TestOrderedAndNotGreater(t *testing.T) {
	ordered := Ordered("COTA_MIN", "COTA_MAX")
	assert.Empty(t, ordered.Check(Record{"COTA_MIN": 100.0, "COTA_MAX": 100.0}))
	errs := ordered.Check(Record{"COTA_MIN": 1200.0, "COTA_MAX": 1100.0})
	require.Len(t, errs, 1)
	assert.Equal(t, "COTA_MAX", errs[0].Field)
	assert.Equal(t, "1100", errs[0].Value)

	notGreater := NotGreater("H_FUSTE", "H_TOTAL")
	assert.Empty(t, notGreater.Check(Record{"H_FUSTE": 8.0, "H_TOTAL": 12.5}))
	assert.Empty(t, notGreater.Check(Record{"H_FUSTE": 8.0}))
	errs = notGreater.Check(Record{"H_FUSTE": 13.0, "H_TOTAL": int64(12)})
	require.Len(t, errs, 1)
	assert.Equal(t, "H_FUSTE (13) cannot be greater than H_TOTAL (12)", errs[0].Message)
}

func TestRequiredWhen(t *testing.T) {
	rule := RequiredWhen("VEDA", "RESOLUCION", "ENTID_VEDA", "VIGEN_VEDA")

	assert.Empty(t, rule.Check(Record{"VEDA": nil}))

	errs := rule.Check(Record{"VEDA": 341.0, "RESOLUCION": "", "ENTID_VEDA": 2040.0})
	require.Len(t, errs, 2)
	assert.Equal(t, "RESOLUCION", errs[0].Field)
	assert.Equal(t, "VIGEN_VEDA", errs[1].Field)
	assert.Equal(t, "VIGEN_VEDA is required when VEDA is set", errs[1].Message)

	assert.Empty(t, rule.Check(Record{"VEDA": 341.0, "RESOLUCION": "0213", "ENTID_VEDA": 2040.0, "VIGEN_VEDA": 2031.0}))
}

func TestRequiredWhenEquals(t *testing.T) {
	rule := RequiredWhenEquals("ACTIVIDAD", "1211", "OTRA_ACT")

	errs := rule.Check(Record{"ACTIVIDAD": 1211.0})
	require.Len(t, errs, 1)
	assert.Equal(t, "OTRA_ACT is required when ACTIVIDAD is 1211", errs[0].Message)

	assert.Len(t, rule.Check(Record{"ACTIVIDAD": "1211", "OTRA_ACT": "  "}), 1)
	assert.Empty(t, rule.Check(Record{"ACTIVIDAD": 1211.0, "OTRA_ACT": "Cercado"}))
	assert.Empty(t, rule.Check(Record{"ACTIVIDAD": 1201.0}))
}

func TestAtLeastOne(t *testing.T) {
	rule := AtLeastOne("ID_COMP", "ID_OT_COMP")

	errs := rule.Check(Record{"ID_COMP": "", "ID_OT_COMP": nil})
	require.Len(t, errs, 1)
	assert.Empty(t, errs[0].Field)
	assert.Equal(t, "at-least-one:ID_COMP,ID_OT_COMP", errs[0].Rule)
	assert.Equal(t, "orphan record: at least one of ID_COMP, ID_OT_COMP is required", errs[0].Message)

	assert.Empty(t, rule.Check(Record{"ID_COMP": "", "ID_OT_COMP": "OC-01"}))
}

func TestHierarchy(t *testing.T) {
	rule := Hierarchy("NOMENCLAT", "N1", "N2", "N3", "N4")

	tests := []struct {
		name       string
		rec        Record
		wantFields []string
	}{
		{
			name: "consistent chain",
			rec:  Record{"N1": int64(3), "N2": int64(31), "N3": int64(311), "NOMENCLAT": int64(311)},
		},
		{
			name:       "nomenclature not the deepest level",
			rec:        Record{"N1": int64(3), "N2": int64(31), "N3": int64(311), "NOMENCLAT": int64(31)},
			wantFields: []string{"NOMENCLAT"},
		},
		{
			name:       "level outside its parent",
			rec:        Record{"N1": int64(3), "N2": int64(32), "N3": int64(311), "NOMENCLAT": int64(311)},
			wantFields: []string{"N3"},
		},
		{
			name:       "both violations reported",
			rec:        Record{"N1": int64(2), "N2": int64(31), "N3": int64(311), "N4": int64(3111), "NOMENCLAT": int64(311)},
			wantFields: []string{"NOMENCLAT", "N2"},
		},
		{
			name:       "same length is not a subdivision",
			rec:        Record{"N1": int64(31), "N2": int64(31), "NOMENCLAT": int64(31)},
			wantFields: []string{"N2"},
		},
		{
			name: "skipped level compares with the next populated one",
			rec:  Record{"N1": int64(3), "N2": nil, "N3": int64(311), "NOMENCLAT": int64(311)},
		},
		{
			name: "no populated level",
			rec:  Record{"NOMENCLAT": int64(311)},
		},
		{
			name: "absent nomenclature checks prefixes only",
			rec:  Record{"N1": int64(3), "N2": int64(31)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := rule.Check(tt.rec)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
				assert.Equal(t, KindRule, e.Kind)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestGeometryShape(t *testing.T) {
	points := GeometryShape("geometry", FamilyPoint)
	polygons := GeometryShape("geometry", FamilyPolygon)

	assert.Empty(t, points.Check(Record{"geometry": orb.Point{1, 2}}))
	assert.Empty(t, points.Check(Record{"geometry": orb.MultiPoint{{1, 2}, {3, 4}}}))
	assert.Empty(t, points.Check(Record{"geometry": nil}))

	errs := points.Check(Record{"geometry": orb.MultiPoint{}})
	require.Len(t, errs, 1)
	assert.Equal(t, "multipoint has no points", errs[0].Message)

	errs = polygons.Check(Record{"geometry": orb.Polygon{{{0, 0}, {1, 0}, {0, 0}}}})
	require.Len(t, errs, 1)
	assert.Equal(t, KindGeometry, errs[0].Kind)

	errs = polygons.Check(Record{"geometry": orb.Point{1, 2}})
	require.Len(t, errs, 1)
	assert.Equal(t, "expected polygon geometry, got Point", errs[0].Message)

	assert.Empty(t, polygons.Check(Record{"geometry": orb.MultiPolygon{{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}}}))
}
