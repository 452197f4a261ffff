package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velomapa/gpxscale/schema"
)

// validInput returns a raw input that passes validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		FolderStr:    "routes",
		Scale:        0.5,
		StartLat:     52.5,
		StartLon:     4.0,
		Format:       "gpx",
		Power:        250,
		Weight:       75,
		Workers:      4,
		Precision:    1,
		Output:       "text",
		Color:        "yes",
		CacheBackend: "sqlite",
	}
}

func TestProcessAndValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, validInput())
	require.NoError(t, err)

	assert.Equal(t, "routes", cfg.Folder)
	assert.Equal(t, 0.5, cfg.Scale)
	assert.Nil(t, cfg.MinDistanceKm)
	assert.Nil(t, cfg.MaxAscentM)
	assert.Equal(t, schema.GPXFormat, cfg.Format)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidate_EmptyFolderDefaultsToDot(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.FolderStr = ""
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, ".", cfg.Folder)
}

func TestProcessAndValidate_InvalidScale(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Scale = 0
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scale must be positive")

	input.Scale = -0.5
	assert.Error(t, ProcessAndValidate(cfg, input))
}

func TestProcessAndValidate_Constraints(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.MinDistance = 25
	input.MaxAscent = 500
	require.NoError(t, ProcessAndValidate(cfg, input))

	require.NotNil(t, cfg.MinDistanceKm)
	assert.Equal(t, 25.0, *cfg.MinDistanceKm)
	require.NotNil(t, cfg.MaxAscentM)
	assert.Equal(t, 500.0, *cfg.MaxAscentM)
}

func TestProcessAndValidate_NegativeConstraints(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.MinDistance = -1
	assert.Error(t, ProcessAndValidate(cfg, input))

	input = validInput()
	input.MaxAscent = -1
	assert.Error(t, ProcessAndValidate(cfg, input))
}

func TestProcessAndValidate_TerrainPreset(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Terrain = 1
	input.StartLat = 10 // overridden by the preset
	input.StartLon = 10
	require.NoError(t, ProcessAndValidate(cfg, input))

	preset := schema.FlatTerrainPresets[0]
	assert.Equal(t, preset.Lat, cfg.StartLat)
	assert.Equal(t, preset.Lon, cfg.StartLon)
}

func TestProcessAndValidate_TerrainOutOfRange(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Terrain = len(schema.FlatTerrainPresets) + 1
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terrain must be between")
}

func TestProcessAndValidate_CoordinateRange(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.StartLat = 91
	assert.Error(t, ProcessAndValidate(cfg, input))

	input = validInput()
	input.StartLon = -181
	assert.Error(t, ProcessAndValidate(cfg, input))
}

func TestProcessAndValidate_FormatEnum(t *testing.T) {
	for _, format := range []string{"gpx", "tcx", "fit", "GPX"} {
		cfg := &Config{}
		input := validInput()
		input.Format = format
		assert.NoError(t, ProcessAndValidate(cfg, input), format)
	}

	cfg := &Config{}
	input := validInput()
	input.Format = "kml"
	assert.Error(t, ProcessAndValidate(cfg, input))
}

func TestProcessAndValidate_TimingRequiresPowerAndWeight(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.AddTiming = true
	input.Power = 0
	assert.Error(t, ProcessAndValidate(cfg, input))

	input = validInput()
	input.AddTiming = true
	input.Weight = -10
	assert.Error(t, ProcessAndValidate(cfg, input))

	// Without timing, zero power is fine.
	input = validInput()
	input.Power = 0
	assert.NoError(t, ProcessAndValidate(cfg, input))
}

func TestProcessAndValidate_WorkersAndPrecision(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Workers = 0
	assert.Error(t, ProcessAndValidate(cfg, input))

	input = validInput()
	input.Precision = 4
	assert.Error(t, ProcessAndValidate(cfg, input))

	input = validInput()
	input.Precision = 0
	assert.NoError(t, ProcessAndValidate(cfg, input))
}

func TestProcessAndValidate_OutputEnum(t *testing.T) {
	for _, output := range []string{"text", "csv", "json", "parquet"} {
		cfg := &Config{}
		input := validInput()
		input.Output = output
		assert.NoError(t, ProcessAndValidate(cfg, input), output)
	}

	cfg := &Config{}
	input := validInput()
	input.Output = "xml"
	assert.Error(t, ProcessAndValidate(cfg, input))
}

func TestProcessAndValidate_InvalidColor(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Color = "maybe"
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color flag")
}

func TestProcessAndValidate_CacheBackendEnum(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.CacheBackend = "redis"
	assert.Error(t, ProcessAndValidate(cfg, input))

	input = validInput()
	input.CacheBackend = "none"
	assert.NoError(t, ProcessAndValidate(cfg, input))
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))

	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@host/db"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/db"))

	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost user=postgres dbname=test"))
}

func TestConfigClone_DeepCopiesPointers(t *testing.T) {
	minKm := 25.0
	cfg := &Config{Scale: 0.5, MinDistanceKm: &minKm}

	clone := cfg.Clone()
	*clone.MinDistanceKm = 50

	assert.Equal(t, 25.0, *cfg.MinDistanceKm)
	assert.Equal(t, 50.0, *clone.MinDistanceKm)
	assert.Nil(t, clone.MaxAscentM)
}
