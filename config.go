package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"animvec/interp"
)

// Config holds the settings for one animation run.
type Config struct {
	From      []float64
	To        []float64
	Duration  time.Duration
	FPS       int
	Curve     string
	Threshold float64
	Verbose   bool
}

func bindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (yaml)")
	fs.String("from", "0", "start vector, comma separated")
	fs.String("to", "1", "target vector, comma separated")
	fs.Duration("duration", time.Second, "animation duration")
	fs.Int("fps", interp.DefaultFPS, "frames per second")
	fs.String("curve", "linear", "timing curve: linear or ease-in-out")
	fs.Float64("threshold", interp.DefaultThreshold, "squared distance to the target at which the animation settles early; 0 settles only on an exact match")
	fs.BoolP("verbose", "v", false, "log every frame")
}

func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("ANIMVEC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (cfg Config, err error) {
	if cfg.From, err = parseValues(v.GetString("from")); err != nil {
		return cfg, fmt.Errorf("from: %w", err)
	}
	if cfg.To, err = parseValues(v.GetString("to")); err != nil {
		return cfg, fmt.Errorf("to: %w", err)
	}
	cfg.Duration = v.GetDuration("duration")
	cfg.FPS = v.GetInt("fps")
	cfg.Curve = v.GetString("curve")
	cfg.Threshold = v.GetFloat64("threshold")
	cfg.Verbose = v.GetBool("verbose")

	if cfg.FPS <= 0 {
		return cfg, fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if cfg.Threshold < 0 {
		return cfg, fmt.Errorf("threshold must not be negative, got %g", cfg.Threshold)
	}
	if _, err = curveByName(cfg.Curve); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parseValues splits s on commas and whitespace. An empty string is an empty vector.
func parseValues(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		values = append(values, x)
	}
	return values, nil
}

func curveByName(name string) (interp.Curve, error) {
	switch name {
	case "", "linear":
		return interp.Linear, nil
	case "ease-in-out":
		return interp.EaseInOut, nil
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}
