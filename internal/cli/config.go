package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/crndecomp/matrix"
)

const (
	maxWalkDepth = 25
	envPrefix    = "CRNDECOMP"
)

// configNames are tried in order in every directory during discovery.
var configNames = []string{"crndecomp.yaml", "crndecomp.yml"}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"epsilon":    "epsilon",
	"format":     "format",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Config represents the crndecomp configuration from crndecomp.yaml.
type Config struct {
	// Epsilon is the numeric tolerance for pivots and nonzero tests.
	Epsilon float64 `mapstructure:"epsilon" json:"epsilon"`

	// Fallback enables the unrounded recomputation on incomplete coverage.
	Fallback bool `mapstructure:"fallback" json:"fallback"`

	// Format is the report format: text, yaml or json.
	Format string `mapstructure:"format" json:"format"`

	Log LogConfig `mapstructure:"log" json:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// flags may be nil. Only flags the user actually set override lower layers,
// and only those listed in flagKeys.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string, flags *pflag.FlagSet) (*Config, string, error) {
	v := viper.New()

	// 1. Set defaults first (lowest precedence)
	setDefaults(v)

	// 2. Set up environment variable binding
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 3. Find and load config file
	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	// 4. Bind explicitly set flags (highest precedence)
	if flags != nil {
		var bindErr error
		flags.Visit(func(f *pflag.Flag) {
			if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
				bindErr = v.BindPFlag(key, f)
			}
		})
		if bindErr != nil {
			return nil, configPath, fmt.Errorf("binding flags: %w", bindErr)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, configPath, err
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("epsilon", matrix.DefaultEpsilon)
	v.SetDefault("fallback", true)
	v.SetDefault("format", "text")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// Validate rejects settings no command can run with.
func (c *Config) Validate() error {
	if c.Epsilon < 0 {
		return fmt.Errorf("epsilon must be non-negative, got %g", c.Epsilon)
	}
	return nil
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for crndecomp.yaml or crndecomp.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Stop at the repository root.
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}
