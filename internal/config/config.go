package config

// Config represents the complete classver configuration.
// It can be loaded from .classver/config.yml with environment variable overrides.
type Config struct {
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
	Filter FilterConfig `yaml:"filter" mapstructure:"filter"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// PathsConfig defines which files to scan and which to ignore.
type PathsConfig struct {
	Code   []string `yaml:"code" mapstructure:"code"`     // glob patterns for source files
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to ignore
}

// FilterConfig selects which classes end up in the snapshot.
type FilterConfig struct {
	Patterns []string `yaml:"patterns" mapstructure:"patterns"` // qualified-name substrings; empty includes everything
}

// OutputConfig defines where and how the snapshot is written.
type OutputConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`     // "-" for stdout, otherwise a file path
	Indent int    `yaml:"indent" mapstructure:"indent"` // base indentation of the serialized snapshot
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Code: []string{
				"**/*.c",
				"**/*.cpp",
				"**/*.cc",
				"**/*.cxx",
				"**/*.h",
				"**/*.hpp",
				"**/*.hh",
				"**/*.hxx",
			},
			Ignore: []string{
				"build/**",
				"cmake-build-*/**",
				"third_party/**",
				"vendor/**",
				".git/**",
			},
		},
		Filter: FilterConfig{
			Patterns: []string{},
		},
		Output: OutputConfig{
			Path:   "-",
			Indent: 0,
		},
	}
}
