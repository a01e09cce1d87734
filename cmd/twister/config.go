package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/deepnoodle-ai/twister"
	"github.com/deepnoodle-ai/twister/pkg/dist"
	"github.com/deepnoodle-ai/twister/pkg/stream"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const configName = ".twister"

// Settings that may come from the config file, TWISTER_* environment
// variables or global flags, in increasing order of precedence.
var (
	intSettings    = []string{"seed-a", "seed-b", "max-rejections"}
	stringSettings = []string{"stream", "poisson"}
	boolSettings   = []string{"verbose", "no-color"}
)

// loadConfig merges the config file, the environment and the global flags.
// A missing default config file is not an error; a missing explicit one is.
func loadConfig(ctx *cli.Context) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("stream", "random")
	v.SetDefault("poisson", "ptrs")
	v.SetEnvPrefix("twister")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := ctx.String("config"); path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		home, err := homedir.Dir()
		if err == nil {
			v.SetConfigFile(filepath.Join(home, configName+".yaml"))
			if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	for _, key := range intSettings {
		if ctx.IsSet(key) {
			v.Set(key, ctx.Int(key))
		}
	}
	for _, key := range stringSettings {
		if ctx.IsSet(key) {
			v.Set(key, ctx.String(key))
		}
	}
	for _, key := range boolSettings {
		if ctx.IsSet(key) {
			v.Set(key, ctx.Bool(key))
		}
	}
	return v, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// newLogger returns a console logger on stderr at info level, or debug
// level when verbose is set.
func newLogger(v *viper.Viper) zerolog.Logger {
	level := zerolog.InfoLevel
	if v.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: v.GetBool("no-color") || !isTerminal(os.Stderr),
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// generatorOptions translates the merged settings into generator options.
func generatorOptions(v *viper.Viper) ([]twister.Option, error) {
	opts := []twister.Option{twister.WithLogger(newLogger(v))}

	for key, id := range map[string]stream.ID{"seed-a": stream.A, "seed-b": stream.B} {
		if !v.IsSet(key) {
			continue
		}
		seed := v.GetInt64(key)
		if seed < 0 || seed > math.MaxUint32 {
			return nil, fmt.Errorf("%s must be in [0, %d], got %d", key, uint32(math.MaxUint32), seed)
		}
		opts = append(opts, twister.WithSeed(id, uint32(seed)))
	}

	id, err := stream.ParseID(v.GetString("stream"))
	if err != nil {
		return nil, err
	}
	opts = append(opts, twister.WithDefaultStream(id))

	strategy, err := dist.PoissonStrategyByName(v.GetString("poisson"))
	if err != nil {
		return nil, err
	}
	opts = append(opts, twister.WithPoissonStrategy(strategy))

	if v.IsSet("max-rejections") {
		limit := v.GetInt("max-rejections")
		if limit < 0 {
			return nil, fmt.Errorf("max-rejections must be >= 0, got %d", limit)
		}
		opts = append(opts, twister.WithObserver(dist.RejectionLimit(limit)))
	}
	return opts, nil
}

// newGenerator builds a generator from the command's configuration.
func newGenerator(ctx *cli.Context, extra ...twister.Option) (*twister.Generator, *viper.Viper, error) {
	v, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	opts, err := generatorOptions(v)
	if err != nil {
		return nil, nil, err
	}
	return twister.New(append(opts, extra...)...), v, nil
}
