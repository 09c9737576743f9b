package model

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/stackb/phpgen/pkg/model/starlarkeval"
	"github.com/stackb/phpgen/pkg/namespace"
)

// ErrUnsupportedFormat is returned for model files with an unknown
// extension.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// Loader reads model files into registries.
type Loader struct {
	logger zerolog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used by the loader and the registries it
// builds.
func WithLogger(logger zerolog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{logger: zerolog.Nop()}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// LoadFile reads, decodes and builds the model in filename.
func (l *Loader) LoadFile(filename string) ([]*namespace.Registry, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	spec, err := l.LoadSpec(filename, data)
	if err != nil {
		return nil, err
	}
	registries, err := Build(spec, namespace.WithLogger(l.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	l.logger.Debug().Str("file", filename).Int("namespaces", len(registries)).Msg("model loaded")
	return registries, nil
}

// LoadSpec decodes data according to the extension of filename.
func (l *Loader) LoadSpec(filename string, data []byte) (*Spec, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".star":
		return l.loadStarlark(filename, data)
	case ".yaml", ".yml":
		return loadYAML(filename, data)
	default:
		return nil, fmt.Errorf("%s: %w", filename, ErrUnsupportedFormat)
	}
}

func (l *Loader) loadStarlark(filename string, data []byte) (*Spec, error) {
	spec := &Spec{}
	interpreter := starlarkeval.NewInterpreter(l.logger, builtins(spec))
	if err := interpreter.Exec(filename, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return spec, nil
}

func loadYAML(filename string, data []byte) (*Spec, error) {
	spec := &Spec{}
	if len(bytes.TrimSpace(data)) == 0 {
		return spec, nil
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("%s: failed to parse yaml: %w", filename, err)
	}
	return spec, nil
}
