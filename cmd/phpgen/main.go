package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/stackb/phpgen/pkg/collections"
	"github.com/stackb/phpgen/pkg/glob"
	"github.com/stackb/phpgen/pkg/logger"
	"github.com/stackb/phpgen/pkg/model"
	"github.com/stackb/phpgen/pkg/namespace"
	"github.com/stackb/phpgen/pkg/printer"
)

const (
	executableName = "phpgen"
)

type config struct {
	root     string
	models   collections.StringSlice
	excludes collections.StringSlice
	out      string
	logLevel string
	dump     bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Str("cmd", executableName).Logger()
		log.Fatal().Err(err).Msg("invalid flags")
	}

	log, err := logger.New(os.Stderr, cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", executableName, err)
		os.Exit(1)
	}
	log = log.With().Str("cmd", executableName).Logger()

	if err := run(cfg, log, os.Stdout, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func parseFlags(args []string) (*config, error) {
	cfg := new(config)

	fs := flag.NewFlagSet(executableName, flag.ContinueOnError)
	fs.StringVar(&cfg.root, "root", ".", "the directory model patterns are relative to")
	fs.Var(&cfg.models, "model", "a doublestar glob of model files (.star, .yaml, .yml); may be repeated")
	fs.Var(&cfg.excludes, "exclude", "a doublestar glob of model files to skip; may be repeated")
	fs.StringVar(&cfg.out, "out", "", "the output directory (default: stdout)")
	fs.StringVar(&cfg.logLevel, "log_level", "info", "the log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.dump, "dump", false, "dump the loaded registries to stderr")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s OPTIONS\n", executableName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if len(cfg.models) == 0 {
		return nil, fmt.Errorf("at least one -model is required")
	}

	return cfg, nil
}

func run(cfg *config, log zerolog.Logger, stdout, stderr io.Writer) error {
	files, err := glob.Apply(glob.Value{Patterns: cfg.models, Excludes: cfg.excludes}, os.DirFS(cfg.root))
	if err != nil {
		return fmt.Errorf("-model: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no model files under %s match %s", cfg.root, cfg.models.String())
	}

	loader := model.NewLoader(model.WithLogger(log))
	p := printer.New()

	for _, rel := range files {
		registries, err := loader.LoadFile(filepath.Join(cfg.root, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}
		if cfg.dump {
			spew.Fdump(stderr, registries)
		}

		views := make([]namespace.View, len(registries))
		for i, r := range registries {
			views[i] = r
		}

		if cfg.out == "" {
			if err := p.PrintFile(stdout, views); err != nil {
				return err
			}
			continue
		}

		var buf bytes.Buffer
		if err := p.PrintFile(&buf, views); err != nil {
			return err
		}
		filename := filepath.Join(cfg.out, filepath.FromSlash(strings.TrimSuffix(rel, filepath.Ext(rel))+".php"))
		if err := os.MkdirAll(filepath.Dir(filename), os.ModePerm); err != nil {
			return err
		}
		if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", filename, err)
		}
		log.Info().Str("model", rel).Str("file", filename).Int("namespaces", len(views)).Msg("generated")
	}

	return nil
}
