package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/emailextract/internal/app"
	"github.com/hyperifyio/emailextract/internal/extract"
)

const defaultProgName = "emailextract"

func main() {
	os.Exit(runCLI(os.Args, os.Stdout, os.Stderr))
}

// runCLI parses args (including argv[0]) and runs one extraction. Exit code
// policy: 0 on success and on bad usage, 1 on any I/O failure, 2 when the
// configuration itself is invalid.
func runCLI(args []string, stdout, stderr io.Writer) int {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339})

	prog := defaultProgName
	if len(args) > 0 {
		if args[0] != "" {
			prog = filepath.Base(args[0])
		}
		args = args[1:]
	}

	var (
		configPath string
		format     string
		encoding   string
		dedupe     string
		noBanner   bool
		verbose    bool
	)
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&configPath, "config", os.Getenv("EMAILEXTRACT_CONFIG"), "Path to YAML or JSON config file")
	fs.StringVar(&format, "format", "", "Input format: text, html, mbox or auto")
	fs.StringVar(&encoding, "encoding", "", "Input character encoding label (default utf-8)")
	fs.StringVar(&dedupe, "dedupe", "", "Duplicate removal: adjacent (default) or global")
	fs.BoolVar(&noBanner, "no-banner", false, "Do not print the banner")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.Warn().Err(err).Msg("bad flags")
		}
		printUsage(stdout, stderr, prog)
		return 0
	}

	cfg := app.Config{
		Format:   format,
		Encoding: encoding,
		Dedupe:   dedupe,
		NoBanner: noBanner,
		Verbose:  verbose,
	}
	app.ApplyEnvToConfig(&cfg)
	setLogLevel(cfg.Verbose)

	// Usage is decided before the config file is read.
	if fs.NArg() != 2 {
		if !cfg.NoBanner {
			app.NewReporter(stdout).Banner()
		}
		usageErr := &extract.Error{Kind: extract.UsageError, Err: fmt.Errorf("expected 2 arguments, got %d", fs.NArg())}
		log.Debug().Err(usageErr).Str("kind", extract.UsageError.String()).Msg("printing usage")
		printUsage(stdout, stderr, prog)
		return 0
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config failed")
			return 2
		}
		app.ApplyFileConfig(&cfg, fc)
		setLogLevel(cfg.Verbose)
	}
	log.Debug().Str("version", app.BuildVersion).Str("commit", app.BuildCommit).Msg("starting")

	rep := app.NewReporter(stdout)
	if !cfg.NoBanner {
		rep.Banner()
	}

	cfg.InputPath = fs.Arg(0)
	cfg.OutputPath = fs.Arg(1)

	a, err := app.New(cfg, rep)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return 2
	}
	if err := a.Run(); err != nil {
		log.Error().Err(err).Str("kind", extract.KindOf(err).String()).Msg("run failed")
		return 1
	}
	return 0
}

func setLogLevel(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// printUsage writes the usage line framed by a blank line on stderr before
// it and a blank line on stdout after it.
func printUsage(stdout, stderr io.Writer, prog string) {
	fmt.Fprintln(stderr)
	fmt.Fprintf(stderr, "Usage: .%c%s <input_file> <output_file>\n", filepath.Separator, prog)
	fmt.Fprintln(stdout)
}
