// Package tables registers the ANLA record types with the core registry.
// Import this package to ensure all record types are registered.
//
// Each file declares one model group and registers its schemas from init():
//
//	biotico.go       T20_Biotico       sampling points, land cover, transects
//	compensacion.go  T34_Compensacion  compensation polygons
//	tablas.go        Tablas            alphanumeric tables without geometry
package tables

// Model groups.
const (
	GroupBiotico      = "T20_Biotico"
	GroupCompensacion = "T34_Compensacion"
	GroupTablas       = "Tablas"
)
