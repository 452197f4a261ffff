package schema

// OutputFormat selects the serialization format for rescaled routes.
type OutputFormat string

// Supported route output formats.
const (
	GPXFormat OutputFormat = "gpx"
	TCXFormat OutputFormat = "tcx"
	FITFormat OutputFormat = "fit"
)

// OutputKind selects how tabular results (analysis, preview) are rendered.
type OutputKind string

// Supported result output kinds.
const (
	TextOut    OutputKind = "text"
	CSVOut     OutputKind = "csv"
	JSONOut    OutputKind = "json"
	ParquetOut OutputKind = "parquet"
)

// CacheBackend selects the durable store for elevation lookups.
type CacheBackend string

// Supported cache backends.
const (
	SQLiteBackend     CacheBackend = "sqlite"
	MySQLBackend      CacheBackend = "mysql"
	PostgreSQLBackend CacheBackend = "postgresql"
	NoneBackend       CacheBackend = "none"
)

// TerrainPreset is a known flat-terrain coordinate. Relocating routes to flat
// (offshore) terrain keeps route planners from overriding the synthesized
// elevation profile with real-world terrain data.
type TerrainPreset struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Description string  `json:"description"`
}

// FlatTerrainPresets are the selectable start coordinates, indexed from 1 in
// the CLI.
var FlatTerrainPresets = []TerrainPreset{
	{
		Name:        "North Sea",
		Lat:         54.0,
		Lon:         3.0,
		Description: "Offshore North Sea - flat water, widely compatible coordinates",
	},
	{
		Name:        "English Channel",
		Lat:         50.5,
		Lon:         0.0,
		Description: "English Channel - flat water, commonly used coordinates",
	},
	{
		Name:        "Mediterranean Sea",
		Lat:         40.0,
		Lon:         15.0,
		Description: "Mediterranean Sea - flat, stable coordinates",
	},
	{
		Name:        "Baltic Sea",
		Lat:         58.0,
		Lon:         18.0,
		Description: "Baltic Sea - flat water, conservative European coordinates",
	},
	{
		Name:        "Bay of Biscay",
		Lat:         45.0,
		Lon:         -5.0,
		Description: "Bay of Biscay - flat Atlantic area, moderate coordinates",
	},
	{
		Name:        "Netherlands Coast",
		Lat:         52.5,
		Lon:         4.0,
		Description: "Just off the Netherlands coast - very flat, import-friendly",
	},
}
