// Package config implements the configuration of the isostrategy tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tuneinsight/isostrategy/log"
	"github.com/tuneinsight/isostrategy/strategy"
)

// DefaultLogLevel is the log level used when none is configured.
const DefaultLogLevel = "NOTICE"

// Logging is the logging configuration.
type Logging struct {
	// File specifies the log file, if omitted stderr will be used.
	File string

	// Level specifies the log level.
	Level string

	// Disable disables logging entirely.
	Disable bool
}

func (lCfg *Logging) validate() error {
	if lCfg.Level == "" {
		lCfg.Level = DefaultLogLevel
	}
	lCfg.Level = strings.ToUpper(lCfg.Level)
	if _, err := log.LevelFromString(lCfg.Level); err != nil {
		return fmt.Errorf("config: Logging: %w", err)
	}
	return nil
}

// Strategy describes one parameter set. Either Preset or all of LeafCount,
// MulCost and IsoCost are given.
type Strategy struct {
	// Name identifies the set in the output. It defaults to the preset name.
	Name string

	// Preset selects a named isogeny family, see strategy.PresetNames.
	Preset string

	LeafCount int
	MulCost   float64
	IsoCost   float64
}

// NamedParameters is a checked parameter set and the name it was configured
// under.
type NamedParameters struct {
	Name string
	strategy.Parameters
}

// Config is the top level configuration.
type Config struct {
	Logging  *Logging
	Strategy []*Strategy
}

// FixupAndValidate applies defaults to config entries and validates the
// configuration.
func (cfg *Config) FixupAndValidate() error {
	if cfg.Logging == nil {
		cfg.Logging = &Logging{}
	}
	if err := cfg.Logging.validate(); err != nil {
		return err
	}

	if len(cfg.Strategy) == 0 {
		for _, name := range strategy.PresetNames() {
			cfg.Strategy = append(cfg.Strategy, &Strategy{Preset: name})
		}
	}

	names := make(map[string]bool)
	for i, s := range cfg.Strategy {
		if s == nil {
			return fmt.Errorf("config: Strategy[%d]: empty entry", i)
		}

		if s.Preset != "" {
			lit, err := strategy.Preset(s.Preset)
			if err != nil {
				return fmt.Errorf("config: Strategy[%d]: %w", i, err)
			}
			// Entries already expanded by a previous call are left as is.
			if s.LeafCount != 0 || s.MulCost != 0 || s.IsoCost != 0 {
				if s.LeafCount != lit.LeafCount || s.MulCost != lit.MulCost || s.IsoCost != lit.IsoCost {
					return fmt.Errorf("config: Strategy[%d]: Preset is mutually exclusive with LeafCount, MulCost and IsoCost", i)
				}
			}
			s.LeafCount, s.MulCost, s.IsoCost = lit.LeafCount, lit.MulCost, lit.IsoCost
			if s.Name == "" {
				s.Name = s.Preset
			}
		}

		if s.Name == "" {
			s.Name = fmt.Sprintf("n=%d,p=%v,q=%v", s.LeafCount, s.MulCost, s.IsoCost)
		}

		if names[s.Name] {
			return fmt.Errorf("config: Strategy[%d]: duplicate name '%v'", i, s.Name)
		}
		names[s.Name] = true

		if _, err := s.parameters(); err != nil {
			return fmt.Errorf("config: Strategy '%v': %w", s.Name, err)
		}
	}

	return nil
}

func (s *Strategy) parameters() (strategy.Parameters, error) {
	return strategy.NewParametersFromLiteral(strategy.ParametersLiteral{
		LeafCount: s.LeafCount,
		MulCost:   s.MulCost,
		IsoCost:   s.IsoCost,
	})
}

// Parameters returns the checked parameter sets, in configuration order.
func (cfg *Config) Parameters() (params []NamedParameters, err error) {
	params = make([]NamedParameters, len(cfg.Strategy))
	for i, s := range cfg.Strategy {
		if params[i].Parameters, err = s.parameters(); err != nil {
			return nil, fmt.Errorf("config: Strategy '%v': %w", s.Name, err)
		}
		params[i].Name = s.Name
	}
	return
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	if f == "" {
		return nil, errors.New("config: no file specified")
	}
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}
