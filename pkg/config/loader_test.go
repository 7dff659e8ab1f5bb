package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StricklySoft/stricklysoft-result/internal/testutil"
	"github.com/StricklySoft/stricklysoft-result/internal/testutil/fixtures"
	sserr "github.com/StricklySoft/stricklysoft-result/pkg/errors"
)

// ===========================================================================
// Test Types
// ===========================================================================

// Every test uses its own env prefix so the tests can run in parallel.

type basicConfig struct {
	Host    string        `env:"HOST" envDefault:"localhost" yaml:"host" json:"host"`
	Port    int           `env:"PORT" envDefault:"8080" yaml:"port" json:"port"`
	Debug   bool          `env:"DEBUG" envDefault:"false" yaml:"debug" json:"debug"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s" yaml:"timeout" json:"timeout"`
}

type typesConfig struct {
	Code    sserr.Code `env:"CODE"`
	Retries uint8      `env:"RETRIES"`
	Ratio   float64    `env:"RATIO"`
	Conns   int32      `env:"CONNS" envDefault:"25"`
	Tags    []string   `env:"TAGS" envDefault:"a,b,c"`
}

type nestedConfig struct {
	App      string      `env:"APP" required:"true"`
	Database dbSubConfig `env:"DB" yaml:"database"`
}

type dbSubConfig struct {
	Host string `env:"HOST" yaml:"host" required:"true"`
	Port int    `env:"PORT" yaml:"port"`
}

type signupConfig struct {
	Name   string `env:"NAME" required:"true"`
	Port   int    `env:"PORT" required:"true"`
	MinAge int    `env:"MIN_AGE" envDefault:"18"`
}

func (c *signupConfig) Validate() *sserr.ValidationErrors {
	return sserr.EmptyValidation().
		When(c.Port > 65535, "Port", "port is out of range [1, 65535]").
		When(c.MinAge < 13, "MinAge", "minimum age must be at least 13")
}

type nilValidatorConfig struct {
	Name string `env:"NAME"`
}

func (c *nilValidatorConfig) Validate() *sserr.ValidationErrors { return nil }

// ===========================================================================
// Load targets
// ===========================================================================

func TestLoader_Load_InvalidTarget(t *testing.T) {
	t.Parallel()
	var notStruct int
	tests := []struct {
		name string
		cfg  any
	}{
		{"nil", nil},
		{"nil pointer", (*basicConfig)(nil)},
		{"non-pointer", basicConfig{}},
		{"pointer to non-struct", &notStruct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := New().Load(tt.cfg)
			testutil.RequireErrorCode(t, err, sserr.CodeInternalConfiguration)
			assert.True(t, sserr.IsInternal(err))
		})
	}
}

// ===========================================================================
// Layers
// ===========================================================================

func TestLoader_Load_Defaults(t *testing.T) {
	t.Parallel()
	var cfg typesConfig
	cfg.Conns = 7

	require.NoError(t, New().WithEnvPrefix("cfgtest_defaults").Load(&cfg))

	assert.Equal(t, int32(7), cfg.Conns, "non-zero fields keep their value")
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)

	var basic basicConfig
	require.NoError(t, New().WithEnvPrefix("cfgtest_defaults").Load(&basic))
	assert.Equal(t, basicConfig{Host: "localhost", Port: 8080, Timeout: 30 * time.Second}, basic)
}

func TestLoader_Load_Files(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		ext     string
		content string
	}{
		{"yaml", ".yaml", fixtures.TestConfigYAML},
		{"yml", ".yml", fixtures.TestConfigYAML},
		{"json", ".json", fixtures.TestConfigJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := testutil.TempConfigFile(t, tt.content, tt.ext)
			var cfg basicConfig

			require.NoError(t, New().WithEnvPrefix("cfgtest_files").WithFile(path).Load(&cfg))

			assert.Equal(t, "db.internal", cfg.Host)
			assert.Equal(t, 5432, cfg.Port)
			assert.True(t, cfg.Debug)
			assert.Equal(t, 30*time.Second, cfg.Timeout, "defaults fill fields the file omits")
		})
	}
}

func TestLoader_Load_MissingFileIsIgnored(t *testing.T) {
	t.Parallel()
	var cfg basicConfig
	require.NoError(t, New().WithEnvPrefix("cfgtest_missing").WithFile("/nonexistent/config.yaml").Load(&cfg))
	assert.Equal(t, "localhost", cfg.Host)
}

func TestLoader_Load_FileErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"unsupported extension", func(t *testing.T) string { return testutil.TempConfigFile(t, "host=x", ".toml") }},
		{"directory traversal", func(t *testing.T) string { return "../etc/config.yaml" }},
		{"invalid yaml", func(t *testing.T) string { return testutil.TempConfigFile(t, "host: [unclosed", ".yaml") }},
		{"invalid json", func(t *testing.T) string { return testutil.TempConfigFile(t, `{"host":`, ".json") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var cfg basicConfig
			err := New().WithFile(tt.path(t)).Load(&cfg)
			testutil.RequireErrorCode(t, err, sserr.CodeInternalConfiguration)
		})
	}
}

func TestLoader_Load_PriorityOrder(t *testing.T) {
	t.Parallel()
	path := testutil.TempConfigFile(t, "host: from-file\nport: 9000\n", ".yaml")
	testutil.SetEnv(t, "CFGTEST_PRIORITY_PORT", "9999")

	var cfg basicConfig
	require.NoError(t, New().WithEnvPrefix("cfgtest_priority").WithFile(path).Load(&cfg))

	assert.Equal(t, "from-file", cfg.Host, "file beats default")
	assert.Equal(t, 9999, cfg.Port, "env beats file")
	assert.Equal(t, 30*time.Second, cfg.Timeout, "default used when nothing else is set")
}

func TestLoader_Load_Types(t *testing.T) {
	t.Parallel()
	testutil.SetEnv(t, "CFGTEST_TYPES_CODE", "VAL_002")
	testutil.SetEnv(t, "CFGTEST_TYPES_RETRIES", "3")
	testutil.SetEnv(t, "CFGTEST_TYPES_RATIO", "0.75")
	testutil.SetEnv(t, "CFGTEST_TYPES_TAGS", " x , y ")

	var cfg typesConfig
	require.NoError(t, New().WithEnvPrefix("cfgtest_types").Load(&cfg))

	assert.Equal(t, sserr.CodeValidationRequired, cfg.Code)
	assert.Equal(t, uint8(3), cfg.Retries)
	assert.InDelta(t, 0.75, cfg.Ratio, 1e-9)
	assert.Equal(t, []string{"x", "y"}, cfg.Tags)
}

func TestLoader_Load_NestedStruct(t *testing.T) {
	t.Parallel()
	path := testutil.TempConfigFile(t, "database:\n  host: file-host\n  port: 5432\n", ".yaml")
	testutil.SetEnv(t, "CFGTEST_NESTED_APP", "signup")
	testutil.SetEnv(t, "CFGTEST_NESTED_DB_PORT", "6432")

	var cfg nestedConfig
	require.NoError(t, New().WithEnvPrefix("cfgtest_nested").WithFile(path).Load(&cfg))

	assert.Equal(t, "signup", cfg.App)
	assert.Equal(t, "file-host", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
}

// ===========================================================================
// Validation
// ===========================================================================

func TestLoader_Load_CollectsEveryFailure(t *testing.T) {
	t.Parallel()
	testutil.SetEnv(t, "CFGTEST_ALL_PORT", "not-a-number")
	testutil.SetEnv(t, "CFGTEST_ALL_MIN_AGE", "5")

	var cfg signupConfig
	err := New().WithEnvPrefix("cfgtest_all").Load(&cfg)

	var verrs *sserr.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, 4, verrs.Len())
	assert.Equal(t, []string{"Port", "Name", "MinAge"}, verrs.Fields())
	ports := verrs.ForField("Port")
	require.Len(t, ports, 2)
	assert.Contains(t, ports[0], "CFGTEST_ALL_PORT")
	assert.Equal(t, "required field Port is empty", ports[1])
	assert.Equal(t, "required field Name is empty", verrs.ForField("Name")[0])
	assert.True(t, sserr.IsValidation(err))
}

func TestLoader_Load_NestedRequiredUsesDottedPath(t *testing.T) {
	t.Parallel()
	var cfg nestedConfig
	err := New().WithEnvPrefix("cfgtest_nested_required").Load(&cfg)

	var verrs *sserr.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"App", "Database.Host"}, verrs.Fields())
}

func TestLoader_Load_ValidatorSuccess(t *testing.T) {
	t.Parallel()
	testutil.SetEnv(t, "CFGTEST_VALID_NAME", "signup")
	testutil.SetEnv(t, "CFGTEST_VALID_PORT", "8080")

	var cfg signupConfig
	require.NoError(t, New().WithEnvPrefix("cfgtest_valid").Load(&cfg))
	assert.Equal(t, 18, cfg.MinAge)

	var nv nilValidatorConfig
	assert.NoError(t, New().WithEnvPrefix("cfgtest_valid").Load(&nv), "a nil list from Validate means valid")
}

// ===========================================================================
// LoadResult / MustLoad
// ===========================================================================

func TestLoadResult(t *testing.T) {
	t.Parallel()
	testutil.SetEnv(t, "CFGTEST_RESULT_NAME", "signup")
	testutil.SetEnv(t, "CFGTEST_RESULT_PORT", "8080")

	r := LoadResult[signupConfig](New().WithEnvPrefix("cfgtest_result"))

	testutil.RequireSuccess(t, r)
	assert.Equal(t, "signup", r.Value().Name)
}

func TestLoadResult_ValidationFailure(t *testing.T) {
	t.Parallel()
	r := LoadResult[signupConfig](New().WithEnvPrefix("cfgtest_result_invalid"))

	testutil.RequireFailure(t, r)
	assert.Equal(t, "Name: required field Name is empty; Port: required field Port is empty", r.Err().Summary())
}

func TestLoadResult_LoadFailure(t *testing.T) {
	t.Parallel()
	path := testutil.TempConfigFile(t, "host=x", ".ini")
	r := LoadResult[basicConfig](New().WithFile(path))

	testutil.RequireFailure(t, r)
	require.Equal(t, 1, r.Err().Len())
	assert.Equal(t, sserr.CodeInternalConfiguration, r.Err().Errors()[0].Code())
}

func TestMustLoad(t *testing.T) {
	t.Parallel()
	cfg := MustLoad[basicConfig](New().WithEnvPrefix("cfgtest_must"))
	assert.Equal(t, "localhost", cfg.Host)

	assert.PanicsWithValue(t,
		"config: MustLoad failed: Name: required field Name is empty; Port: required field Port is empty",
		func() { MustLoad[signupConfig](New().WithEnvPrefix("cfgtest_must")) })
}
