package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zephyrtronium/qcalc"
)

// config is the resolved configuration for one run.
type config struct {
	Digits      int
	SciDigits   int
	SciOver     float64
	SciUnder    float64
	Color       string
	Definitions string
	Debug       bool
}

// addConfigFlags adds the flags for every configuration key.
func addConfigFlags(flags *pflag.FlagSet) {
	def := qcalc.DefaultStyle
	flags.Int("digits", def.Digits, "digits after the point in ordinary notation")
	flags.Int("sci-digits", def.SciDigits, "digits after the point in scientific notation")
	flags.Float64("sci-over", def.Over, "magnitude at which answers switch to scientific notation")
	flags.Float64("sci-under", def.Under, "nonzero magnitude below which answers switch to scientific notation")
	flags.String("color", "auto", `highlight errors: "auto", "always", or "never"`)
	flags.String("definitions", "", "YAML file of units and constants replacing the builtin table")
	flags.Bool("debug", false, "log parsing and evaluation to stderr")
}

// loadConfig resolves configuration from flags, QCALC_* environment
// variables, and a config file, in that order of priority. If file is empty,
// qcalc.yaml is looked up in the user config directory and then the working
// directory, and it is not an error for it not to exist.
func loadConfig(vip *viper.Viper, flags *pflag.FlagSet, file string) (config, error) {
	if err := vip.BindPFlags(flags); err != nil {
		return config{}, err
	}
	vip.SetEnvPrefix("QCALC")
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	if file != "" {
		vip.SetConfigFile(file)
	} else {
		vip.SetConfigName("qcalc")
		vip.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			vip.AddConfigPath(filepath.Join(dir, "qcalc"))
		}
		vip.AddConfigPath(".")
	}
	if err := vip.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &nf) {
			return config{}, fmt.Errorf("couldn't read config: %w", err)
		}
	}
	cfg := config{
		Digits:      vip.GetInt("digits"),
		SciDigits:   vip.GetInt("sci-digits"),
		SciOver:     vip.GetFloat64("sci-over"),
		SciUnder:    vip.GetFloat64("sci-under"),
		Color:       vip.GetString("color"),
		Definitions: vip.GetString("definitions"),
		Debug:       vip.GetBool("debug"),
	}
	return cfg, cfg.validate()
}

func (cfg config) validate() error {
	switch {
	case cfg.Digits < 0 || cfg.Digits > 100:
		return fmt.Errorf("digits must be between 0 and 100, not %d", cfg.Digits)
	case cfg.SciDigits < 0 || cfg.SciDigits > 100:
		return fmt.Errorf("sci-digits must be between 0 and 100, not %d", cfg.SciDigits)
	case cfg.SciOver <= 0:
		return fmt.Errorf("sci-over must be positive, not %g", cfg.SciOver)
	case cfg.SciUnder < 0:
		return fmt.Errorf("sci-under must not be negative, not %g", cfg.SciUnder)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf(`color must be "auto", "always", or "never", not %q`, cfg.Color)
	}
	return nil
}

func (cfg config) style() qcalc.Style {
	return qcalc.Style{
		Digits:    cfg.Digits,
		SciDigits: cfg.SciDigits,
		Over:      cfg.SciOver,
		Under:     cfg.SciUnder,
	}
}

// parseOptions returns the parse options for the configuration, loading the
// definitions file if there is one.
func (cfg config) parseOptions() ([]qcalc.ParseOption, error) {
	opts := []qcalc.ParseOption{qcalc.WithStyle(cfg.style())}
	if cfg.Definitions == "" {
		return opts, nil
	}
	f, err := os.Open(cfg.Definitions)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defs, err := qcalc.LoadDefinitions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Definitions, err)
	}
	return append(opts, qcalc.UseDefinitions(defs)), nil
}
