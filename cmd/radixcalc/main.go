// Command radixcalc evaluates prefix-notation expressions over numbers
// in any radix from 2 to 36.
//
// With arguments, radixcalc evaluates them as a single expression and prints
// the result. Without arguments, it starts an interactive session.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/govalues/radix/internal/calc"
)

// version is set at build time via -ldflags; defaults to dev.
var version = "dev"

func main() {
	var (
		configPath  string
		workRadix   int
		maxFracLen  int
		noColor     bool
		verbose     int
		showVersion bool
	)

	flag.StringVarP(&configPath, "config", "c", "", "path to a YAML configuration file")
	flag.IntVarP(&workRadix, "radix", "r", 10, "working radix (2 to 36)")
	flag.IntVarP(&maxFracLen, "frac", "f", 32, "fraction bound in digits")
	flag.BoolVar(&noColor, "no-color", false, "disable colored output")
	flag.CountVarP(&verbose, "verbose", "v", "increase verbosity; repeat for more detail")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: radixcalc [options] [expression]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()

	cfg := calc.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = calc.LoadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
	}
	if flag.CommandLine.Changed("radix") {
		cfg.Radix = workRadix
	}
	if flag.CommandLine.Changed("frac") {
		cfg.MaxFracLen = maxFracLen
	}
	if noColor {
		cfg.Color = false
	}
	if verbose > 0 {
		cfg.LogLevel = zerolog.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	level, _ := cfg.Level()
	log = log.Level(level)
	log.Debug().
		Int("radix", cfg.Radix).
		Int("max_frac_len", cfg.MaxFracLen).
		Bool("color", cfg.Color).
		Msg("configuration loaded")

	eval, err := calc.NewEvaluator(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create evaluator")
	}

	if flag.NArg() > 0 {
		d, err := eval.Evaluate(strings.Join(flag.Args(), " "))
		if err != nil {
			log.Error().Err(err).Msg("evaluation failed")
			os.Exit(1)
		}
		fmt.Println(d)
		return
	}

	newREPL(eval, painter{enabled: cfg.Color}, os.Stdout).run()
}
