package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()

	require.NoError(t, Validate(cfg))
	assert.Equal(t, "-", cfg.Output.Path)
	assert.Equal(t, 0, cfg.Output.Indent)
	assert.Empty(t, cfg.Filter.Patterns)
	assert.Contains(t, cfg.Paths.Code, "**/*.cpp")
	assert.Contains(t, cfg.Paths.Code, "**/*.h")
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "no code patterns",
			mutate:  func(c *Config) { c.Paths.Code = nil },
			wantErr: ErrNoCodePatterns,
		},
		{
			name:    "empty output path",
			mutate:  func(c *Config) { c.Output.Path = "" },
			wantErr: ErrEmptyOutputPath,
		},
		{
			name:    "negative indent",
			mutate:  func(c *Config) { c.Output.Indent = -4 },
			wantErr: ErrNegativeIndent,
		},
		{
			name:    "blank filter pattern",
			mutate:  func(c *Config) { c.Filter.Patterns = []string{"Foo", ""} },
			wantErr: ErrEmptyFilterPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, Validate(cfg), tt.wantErr)
		})
	}
}

func TestLoader_DefaultsWhenNoConfigFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoader_ReadsConfigFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	configDir := filepath.Join(root, ".classver")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	configYAML := `
paths:
  code:
    - "src/**/*.cpp"
filter:
  patterns:
    - "mylib::"
output:
  path: snapshot.txt
  indent: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(configYAML), 0644))

	cfg, err := LoadConfigFromDir(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/**/*.cpp"}, cfg.Paths.Code)
	assert.Equal(t, []string{"mylib::"}, cfg.Filter.Patterns)
	assert.Equal(t, "snapshot.txt", cfg.Output.Path)
	assert.Equal(t, 4, cfg.Output.Indent)
	// Unset sections keep their defaults.
	assert.Equal(t, Default().Paths.Ignore, cfg.Paths.Ignore)
}

func TestLoader_EnvironmentOverridesFile(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ".classver")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("output:\n  path: from-file.txt\n"), 0644))

	t.Setenv("CLASSVER_OUTPUT_PATH", "from-env.txt")

	cfg, err := LoadConfigFromDir(root)
	require.NoError(t, err)

	assert.Equal(t, "from-env.txt", cfg.Output.Path)
}

func TestLoadConfigFromFile_ReadsExplicitPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  path: snapshot.txt\n  indent: 2\n"), 0644))

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "snapshot.txt", cfg.Output.Path)
	assert.Equal(t, 2, cfg.Output.Indent)
	assert.Equal(t, Default().Paths.Code, cfg.Paths.Code)
}

func TestLoadConfigFromFile_MissingFileFails(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoader_InvalidConfigFails(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	configDir := filepath.Join(root, ".classver")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("output:\n  indent: -1\n"), 0644))

	_, err := LoadConfigFromDir(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeIndent)
}
