package model

import (
	"fmt"

	"github.com/stackb/phpgen/pkg/namespace"
)

// Spec is the declarative description of a generated file.
type Spec struct {
	Namespaces []*NamespaceSpec `yaml:"namespaces"`
}

// NamespaceSpec describes one namespace.
type NamespaceSpec struct {
	Name      string          `yaml:"name"`
	Bracketed bool            `yaml:"bracketed"`
	Uses      []*UseSpec      `yaml:"uses"`
	Types     []*TypeSpec     `yaml:"types"`
	Functions []*FunctionSpec `yaml:"functions"`
}

// UseSpec describes an import.  An empty Alias is generated.
type UseSpec struct {
	Name  string `yaml:"name"`
	Alias string `yaml:"alias"`
	Kind  string `yaml:"kind"`
}

// TypeSpec describes a declared type.
type TypeSpec struct {
	Name       string   `yaml:"name"`
	Kind       string   `yaml:"kind"`
	Extends    []string `yaml:"extends"`
	Implements []string `yaml:"implements"`
	Comment    string   `yaml:"comment"`
}

// FunctionSpec describes a declared function.
type FunctionSpec struct {
	Name    string       `yaml:"name"`
	Returns string       `yaml:"returns"`
	Params  []*ParamSpec `yaml:"params"`
	Comment string       `yaml:"comment"`
}

// ParamSpec describes a function parameter.
type ParamSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Build constructs the registries described by spec.  When a file holds more
// than one namespace all of them use bracketed syntax, since the two forms
// cannot be mixed.
func Build(spec *Spec, options ...namespace.Option) ([]*namespace.Registry, error) {
	registries := make([]*namespace.Registry, 0, len(spec.Namespaces))
	for _, ns := range spec.Namespaces {
		r, err := buildNamespace(ns, options)
		if err != nil {
			return nil, fmt.Errorf("namespace %q: %w", ns.Name, err)
		}
		registries = append(registries, r)
	}
	if len(registries) > 1 {
		for _, r := range registries {
			r.SetBracketedSyntax(true)
		}
	}
	return registries, nil
}

func buildNamespace(spec *NamespaceSpec, options []namespace.Option) (*namespace.Registry, error) {
	r, err := namespace.New(spec.Name, options...)
	if err != nil {
		return nil, err
	}
	r.SetBracketedSyntax(spec.Bracketed)

	for _, use := range spec.Uses {
		kind, err := namespace.ParseKind(use.Kind)
		if err != nil {
			return nil, fmt.Errorf("use %q: %w", use.Name, err)
		}
		if _, err := r.AddImport(use.Name, use.Alias, kind); err != nil {
			return nil, fmt.Errorf("use %q: %w", use.Name, err)
		}
	}

	for _, typ := range spec.Types {
		kind, err := namespace.ParseTypeKind(typ.Kind)
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", typ.Name, err)
		}
		if len(typ.Extends) > 0 && (kind == namespace.TypeEnum || kind == namespace.TypeTrait) {
			return nil, fmt.Errorf("type %q: %s cannot extend %v", typ.Name, kind, typ.Extends)
		}
		decl, err := r.AddType(typ.Name)
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", typ.Name, err)
		}
		decl.SetKind(kind)
		decl.Comment = typ.Comment
		for _, name := range typ.Extends {
			if !namespace.IsNamespaceIdentifier(name, true) {
				return nil, fmt.Errorf("type %q: %w", typ.Name, &namespace.InvalidNameError{What: "parent name", Value: name})
			}
			decl.AddExtends(name)
		}
		for _, name := range typ.Implements {
			if !namespace.IsNamespaceIdentifier(name, true) {
				return nil, fmt.Errorf("type %q: %w", typ.Name, &namespace.InvalidNameError{What: "interface name", Value: name})
			}
			decl.AddImplements(name)
		}
	}

	for _, fn := range spec.Functions {
		decl, err := r.AddFunction(fn.Name)
		if err != nil {
			return nil, fmt.Errorf("function %q: %w", fn.Name, err)
		}
		decl.Comment = fn.Comment
		decl.SetReturnType(fn.Returns)
		for _, param := range fn.Params {
			if !namespace.IsIdentifier(param.Name) {
				return nil, fmt.Errorf("function %q: %w", fn.Name, &namespace.InvalidNameError{What: "parameter name", Value: param.Name})
			}
			decl.AddParam(param.Name, param.Type)
		}
	}

	return r, nil
}
