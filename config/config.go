package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SPOTIGRAPH_DATASET_PATH.
const EnvPrefix = "SPOTIGRAPH"

// Config holds all application configuration.
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Log     LogConfig     `mapstructure:"log"`
	Engine  EngineConfig  `mapstructure:"engine"`
}

type DatasetConfig struct {
	Path      string `mapstructure:"path"`
	Format    string `mapstructure:"format"`    // csv|yaml; empty means by extension
	Encoding  string `mapstructure:"encoding"`  // utf8|latin1
	Weighting string `mapstructure:"weighting"` // unit|inverse-log-streams
	Directed  bool   `mapstructure:"directed"`
	Prune     bool   `mapstructure:"prune"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type EngineConfig struct {
	BatchWorkers int `mapstructure:"batch_workers"`
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Dataset.Path == "" {
		warnings = append(warnings, "dataset.path is empty; pass --dataset or set SPOTIGRAPH_DATASET_PATH")
	}

	switch c.Dataset.Format {
	case "", "csv", "yaml":
	default:
		warnings = append(warnings, fmt.Sprintf("dataset.format %q is not one of csv, yaml", c.Dataset.Format))
	}

	switch c.Dataset.Encoding {
	case "utf8", "latin1":
	default:
		warnings = append(warnings, fmt.Sprintf("dataset.encoding %q is not one of utf8, latin1", c.Dataset.Encoding))
	}

	switch c.Dataset.Weighting {
	case "unit", "inverse-log-streams":
	default:
		warnings = append(warnings, fmt.Sprintf("dataset.weighting %q is not one of unit, inverse-log-streams", c.Dataset.Weighting))
	}

	if c.Engine.BatchWorkers < 1 {
		warnings = append(warnings, fmt.Sprintf("engine.batch_workers %d is below 1", c.Engine.BatchWorkers))
	}

	return warnings
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset.path", "")
	v.SetDefault("dataset.format", "")
	v.SetDefault("dataset.encoding", "latin1")
	v.SetDefault("dataset.weighting", "unit")
	v.SetDefault("dataset.directed", false)
	v.SetDefault("dataset.prune", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("engine.batch_workers", 4)
}

// Load reads configuration from defaults, the file at path (skipped when path
// is empty), and SPOTIGRAPH_* environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}
