package main

import (
	"errors"
	"strings"

	crdberrors "github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// config is the resolved configuration of a run. Flags override environment
// variables, which override the config file.
type config struct {
	Tags    string `mapstructure:"tags"`
	Tests   bool   `mapstructure:"tests"`
	Output  string `mapstructure:"output"`
	Color   string `mapstructure:"color"`
	Format  bool   `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`
}

var configKeys = []string{"tags", "tests", "output", "color", "format", "verbose"}

// loadConfig reads .descgen.yaml or .descgen.toml in dir, or path if given,
// and merges it with DESCGEN_* environment variables and flags.
func loadConfig(flags *pflag.FlagSet, dir, path string) (config, error) {
	v := viper.New()

	v.SetEnvPrefix("DESCGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return config{}, crdberrors.Wrapf(err, "failed to bind flag %q", key)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".descgen")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return config{}, crdberrors.Wrap(err, "failed to read config")
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, crdberrors.Wrap(err, "failed to unmarshal config")
	}
	return cfg, nil
}
