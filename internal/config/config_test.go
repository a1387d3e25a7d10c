package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlags mirrors the persistent flags registered by the CLI.
func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("root", "", "")
	fs.StringSlice("exclude", nil, "")
	fs.Int("max-depth", 0, "")
	fs.String("style", "", "")
	fs.String("log-level", "", "")
	fs.String("log-format", "", "")
	fs.Bool("log-caller", false, "")

	return fs
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "fsgraph.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultRoot, cfg.Root)
	assert.Empty(t, cfg.Exclude)
	assert.Equal(t, 0, cfg.MaxDepth)
	assert.Equal(t, DefaultStyle, cfg.Style)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.False(t, cfg.Log.IncludeCaller)
	assert.Equal(t, "", cfg.File)
}

func TestLoad_File(t *testing.T) {
	p := writeFile(t, `
root: /srv
exclude: ["**/.git", "tmp"]
max_depth: 4
style: table
log:
  level: debug
  format: json
  include_caller: true
`)
	cfg, err := Load(p, nil)
	require.NoError(t, err)

	assert.Equal(t, "/srv", cfg.Root)
	assert.Equal(t, []string{"**/.git", "tmp"}, cfg.Exclude)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, "table", cfg.Style)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json", IncludeCaller: true}, cfg.Log)
	assert.Equal(t, p, cfg.File)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	p := writeFile(t, "root: /from-file\nstyle: table\nmax_depth: 2\n")
	t.Setenv("FSGRAPH_ROOT", "/from-env")
	t.Setenv("FSGRAPH_LOG_LEVEL", "error")
	t.Setenv("FSGRAPH_EXCLUDE", "a,b")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--root", "/from-flag", "--log-format", "json"}))

	cfg, err := Load(p, flags)
	require.NoError(t, err)

	assert.Equal(t, "/from-flag", cfg.Root, "flag beats env and file")
	assert.Equal(t, "table", cfg.Style, "file beats default")
	assert.Equal(t, 2, cfg.MaxDepth, "unset flag does not clobber file")
	assert.Equal(t, "error", cfg.Log.Level, "env beats default")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"a", "b"}, cfg.Exclude)
}

func TestLoad_FlagsOnly(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{
		"--exclude", "**/node_modules", "--exclude", "*.tmp",
		"--max-depth", "3", "--log-caller",
	}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, []string{"**/node_modules", "*.tmp"}, cfg.Exclude)
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.True(t, cfg.Log.IncludeCaller)
}

func TestLoad_InvalidValue(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--style", "xml"}))

	_, err := Load("", flags)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{Root: "/r", Style: "plain", Log: LoggingConfig{Level: "info", Format: "text"}}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"table style upper", func(c *Config) { c.Style = "TABLE" }, false},
		{"empty root", func(c *Config) { c.Root = " " }, true},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }, true},
		{"empty exclude", func(c *Config) { c.Exclude = []string{""} }, true},
		{"bad style", func(c *Config) { c.Style = "dot" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"warning alias", func(c *Config) { c.Log.Level = "WARNING" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "log.level", envKey("FSGRAPH_LOG_LEVEL"))
	assert.Equal(t, "log.include_caller", envKey("FSGRAPH_LOG_INCLUDE_CALLER"))
	assert.Equal(t, "max_depth", envKey("FSGRAPH_MAX_DEPTH"))
	assert.Equal(t, "root", envKey("FSGRAPH_ROOT"))
}
