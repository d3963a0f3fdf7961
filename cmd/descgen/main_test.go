package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("descgen", pflag.ContinueOnError)
	defineFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(newFlags(t), t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "descgen_gen.go", cfg.Output)
	assert.Equal(t, "auto", cfg.Color)
	assert.False(t, cfg.Format)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".descgen.yaml"), []byte("format: true\noutput: desc_gen.go\n"), 0o644)
	require.NoError(t, err)

	cfg, err := loadConfig(newFlags(t), dir, "")
	require.NoError(t, err)
	assert.True(t, cfg.Format)
	assert.Equal(t, "desc_gen.go", cfg.Output)
}

func TestLoadConfigFlagOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	err := os.WriteFile(path, []byte("output = \"desc_gen.go\"\ntags = \"a\"\n"), 0o644)
	require.NoError(t, err)

	cfg, err := loadConfig(newFlags(t, "-o", "flag_gen.go"), dir, path)
	require.NoError(t, err)
	assert.Equal(t, "flag_gen.go", cfg.Output)
	assert.Equal(t, "a", cfg.Tags)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("DESCGEN_FORMAT", "true")

	cfg, err := loadConfig(newFlags(t), t.TempDir(), "")
	require.NoError(t, err)
	assert.True(t, cfg.Format)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	dir := t.TempDir()
	_, err := loadConfig(newFlags(t), dir, filepath.Join(dir, "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestUseColor(t *testing.T) {
	color, err := useColor("always")
	require.NoError(t, err)
	assert.True(t, color)

	color, err = useColor("never")
	require.NoError(t, err)
	assert.False(t, color)

	_, err = useColor("rainbow")
	assert.EqualError(t, err, `invalid color value: "rainbow"`)
}

func TestColorize(t *testing.T) {
	got := colorize("a.go:1:2: duplicate Description method of T\n\tprevious declaration at b.go:3:4")
	assert.Equal(t,
		"\033[31ma.go:1:2:\033[0m duplicate Description method of T\n\033[2m\tprevious declaration at b.go:3:4\033[0m",
		got,
	)
}
