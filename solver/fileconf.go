package solver

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrConfigBlock is returned by LoadConfig when the file has no solver
// block under the requested name.
var ErrConfigBlock = errors.New("solver: configuration block not found")

// LoadConfig reads one named solver block from a configuration file
// (YAML, TOML or JSON, by extension) laid out as:
//
//	solvers:
//	  ls:
//	    kind: iterative
//	    method: cg
//	    eps_r: 1e-10
//	    i_max: 500
//
// Unset fields keep their documented defaults; for direct solvers the warn
// flag defaults to on, so fallback notices are visible unless explicitly
// silenced.
func LoadConfig(path, name string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("solver: reading %s: %w", path, err)
	}

	key := "solvers." + name
	sub := v.Sub(key)
	if sub == nil {
		return Config{}, fmt.Errorf("%w: %q in %s", ErrConfigBlock, name, path)
	}

	if Kind(sub.GetString("kind")) == KindDirect {
		sub.SetDefault("warn", true)
	}

	var cfg Config
	if err := sub.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("solver: decoding block %q: %w", name, err)
	}

	return cfg, nil
}
