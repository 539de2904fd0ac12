// Package core validates environmental-monitoring records against their
// geodatabase record types.
//
// The package holds all validation logic independent of any transport. The
// HTTP server, the CLI and tests all use it through [Service] or [Engine].
//
// # Record Types
//
// Record types are registered at init time using [Register]. Each [Schema]
// declares its fields, the catalog domain of every coded field, the
// cross-field rules that apply and the fields that identify a record in
// reports:
//
//	core.Register(core.Schema{
//	    Info: core.SchemaInfo{Key: "PuntoMuestreoFlora", Group: "T20_Biotico"},
//	    Fields: []core.FieldSpec{
//	        {Name: "ID_MUEST", Type: core.FieldText, Required: true, MaxLen: 20},
//	        {Name: "MUNICIPIO", Type: core.FieldText, Required: true, Domain: "Dom_Municipio"},
//	    },
//	    Rules: []core.Rule{core.Chronology("FECHA_INI", "FECHA_FIN")},
//	})
//
// The declarations themselves live in the tables subpackage.
//
// # Batches
//
// A batch is one source (in-memory rows, CSV, GeoJSON or a PostgreSQL query)
// validated against one record type:
//
//  1. [Engine.Extract] binds the record type to the catalog and reports
//     missing and extra columns
//  2. [Engine.Validate] reads every row; a bad row becomes an [ErrorReport]
//     and never stops the batch
//
// [Engine.Stream] splits a large source into chunks while keeping global row
// numbers. [Service] adds a concurrency limit and keeps recent results.
//
// # Error Handling
//
// Row-level problems are [ValidationError] values. Fatal problems are plain
// errors; [MapError] turns both into user-facing messages with a support
// code:
//
//   - VAL001-VAL009: validation errors
//   - CAT001-CAT002: reference data errors
//   - SRC001-SRC006: source errors
//   - BAT001-BAT004: batch errors
package core
