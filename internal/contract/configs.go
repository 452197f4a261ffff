package contract

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/velomapa/gpxscale/schema"
)

// Default values for configuration.
const (
	DefaultScale     = 0.5
	DefaultStartLat  = 52.5
	DefaultStartLon  = 4.0
	DefaultPowerW    = 250.0
	DefaultWeightKg  = 75.0
	DefaultPrecision = 1
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for a batch run.
// This struct remains the "final, validated" config; core algorithms never
// see it, only the plain numeric values derived from it.
type Config struct {
	Folder string
	Scale  float64

	// Optional constraints; nil means unconstrained.
	MinDistanceKm *float64
	MaxAscentM    *float64

	StartLat, StartLon float64
	UseHere            bool // resolve the start coordinate from IP geolocation

	Format       schema.OutputFormat
	OutputFolder string
	BaseName     string

	AddTiming bool
	PowerW    float64
	WeightKg  float64

	Workers   int
	Precision int
	Output    schema.OutputKind
	OutputFile string
	Width      int // terminal width override (0 = auto-detect)
	UseColors  bool

	SkipElevation bool // skip the new-start elevation lookup entirely

	CacheBackend   schema.CacheBackend
	CacheDBConnect string // please use env var as this is plaintext
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.MinDistanceKm != nil {
		v := *c.MinDistanceKm
		clone.MinDistanceKm = &v
	}
	if c.MaxAscentM != nil {
		v := *c.MaxAscentM
		clone.MaxAscentM = &v
	}
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// Set manually from positional args, so no tag.
	FolderStr string

	Scale       float64 `mapstructure:"scale"`
	MinDistance float64 `mapstructure:"min-distance"`
	MaxAscent   float64 `mapstructure:"max-ascent"`
	StartLat    float64 `mapstructure:"start-lat"`
	StartLon    float64 `mapstructure:"start-lon"`
	Terrain     int     `mapstructure:"terrain"`
	Here        bool    `mapstructure:"here"`

	Format       string `mapstructure:"format"`
	OutputFolder string `mapstructure:"output-folder"`
	BaseName     string `mapstructure:"base-name"`

	AddTiming bool    `mapstructure:"add-timing"`
	Power     float64 `mapstructure:"power"`
	Weight    float64 `mapstructure:"weight"`

	Workers    int    `mapstructure:"workers"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	SkipElevation bool `mapstructure:"skip-elevation"`

	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct. Coordinate range checks happen here,
// before anything reaches the core algorithms.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.Folder = input.FolderStr
	if cfg.Folder == "" {
		cfg.Folder = "."
	}

	// --- 1. Scale and constraints ---
	if input.Scale <= 0 {
		return fmt.Errorf("scale must be positive (received %g)", input.Scale)
	}
	cfg.Scale = input.Scale

	cfg.MinDistanceKm = nil
	if input.MinDistance > 0 {
		v := input.MinDistance
		cfg.MinDistanceKm = &v
	} else if input.MinDistance < 0 {
		return fmt.Errorf("min-distance must be positive (received %g)", input.MinDistance)
	}

	cfg.MaxAscentM = nil
	if input.MaxAscent > 0 {
		v := input.MaxAscent
		cfg.MaxAscentM = &v
	} else if input.MaxAscent < 0 {
		return fmt.Errorf("max-ascent must be positive (received %g)", input.MaxAscent)
	}

	// --- 2. Start coordinate: terrain preset > explicit lat/lon ---
	cfg.UseHere = input.Here
	cfg.StartLat, cfg.StartLon = input.StartLat, input.StartLon
	if input.Terrain != 0 {
		if input.Terrain < 1 || input.Terrain > len(schema.FlatTerrainPresets) {
			return fmt.Errorf("terrain must be between 1 and %d (received %d)", len(schema.FlatTerrainPresets), input.Terrain)
		}
		preset := schema.FlatTerrainPresets[input.Terrain-1]
		cfg.StartLat, cfg.StartLon = preset.Lat, preset.Lon
	}
	if cfg.StartLat < -90 || cfg.StartLat > 90 {
		return fmt.Errorf("start-lat must be between -90 and 90 (received %g)", cfg.StartLat)
	}
	if cfg.StartLon < -180 || cfg.StartLon > 180 {
		return fmt.Errorf("start-lon must be between -180 and 180 (received %g)", cfg.StartLon)
	}

	// --- 3. Output format ---
	cfg.Format = schema.OutputFormat(strings.ToLower(input.Format))
	switch cfg.Format {
	case schema.GPXFormat, schema.TCXFormat, schema.FITFormat:
	default:
		return fmt.Errorf("invalid format '%s'. must be gpx, tcx, fit", input.Format)
	}
	cfg.OutputFolder = input.OutputFolder
	cfg.BaseName = input.BaseName

	// --- 4. Timing ---
	cfg.AddTiming = input.AddTiming
	cfg.PowerW = input.Power
	cfg.WeightKg = input.Weight
	if cfg.AddTiming {
		if cfg.PowerW <= 0 {
			return fmt.Errorf("power must be positive when timing is enabled (received %g)", cfg.PowerW)
		}
		if cfg.WeightKg <= 0 {
			return fmt.Errorf("weight must be positive when timing is enabled (received %g)", cfg.WeightKg)
		}
	}

	// --- 5. Execution and output ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	if input.Precision < 0 || input.Precision > 3 {
		return fmt.Errorf("precision must be between 0 and 3 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputKind(strings.ToLower(input.Output))
	switch cfg.Output {
	case schema.TextOut, schema.CSVOut, schema.JSONOut, schema.ParquetOut:
	default:
		return fmt.Errorf("invalid output '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color flag: %w", err)
	}
	cfg.UseColors = useColors
	cfg.SkipElevation = input.SkipElevation

	// --- 6. Cache backend ---
	cfg.CacheBackend = schema.CacheBackend(strings.ToLower(input.CacheBackend))
	switch cfg.CacheBackend {
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend, schema.NoneBackend:
	default:
		return fmt.Errorf("invalid cache-backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.CacheBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("invalid MySQL connection string. expected format: user:password@tcp(host:port)/dbname")
		}
		return nil
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		return nil
	default:
		return fmt.Errorf("unsupported cache backend: %s", backend)
	}
}
