package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// config is the resolved configuration: flags override environment
// variables, which override the config file, which overrides defaults.
type config struct {
	Seed    int64 `mapstructure:"seed"`
	Count   int   `mapstructure:"count"`
	MinKey  int   `mapstructure:"min-key"`
	MaxKey  int   `mapstructure:"max-key"`
	Peek    int   `mapstructure:"peek"`
	Rounds  int   `mapstructure:"rounds"`
	Left    int   `mapstructure:"left"`
	Right   int   `mapstructure:"right"`
	JSON    bool  `mapstructure:"json"`
	Metrics bool  `mapstructure:"metrics"`
}

func newViper() *viper.Viper {
	vi := viper.New()

	vi.SetEnvPrefix("PAIRHEAP")
	vi.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vi.AutomaticEnv()

	vi.SetDefault("seed", 1)
	vi.SetDefault("count", 1000)
	vi.SetDefault("min-key", -1_000_000)
	vi.SetDefault("max-key", 1_000_000)
	vi.SetDefault("peek", 5)
	vi.SetDefault("rounds", 10)
	vi.SetDefault("left", 500)
	vi.SetDefault("right", 500)
	vi.SetDefault("json", false)
	vi.SetDefault("metrics", false)

	return vi
}

func readConfig(flags *pflag.FlagSet) (*config, error) {
	vi := newViper()

	if err := vi.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}
	if path := vi.GetString("config"); path != "" {
		vi.SetConfigFile(path)
		if err := vi.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	c := &config{}
	if err := vi.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	return c, nil
}
