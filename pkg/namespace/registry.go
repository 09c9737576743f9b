package namespace

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stackb/phpgen/pkg/collections"
)

// Registry is the namespaced part of a generated file: its identity, its
// import tables and its declared types and functions.  It answers the name
// resolution queries a printer needs.  A Registry is not safe for concurrent
// mutation.
type Registry struct {
	name      string
	bracketed bool
	imports   [numKinds]*importTable
	types     *collections.FoldMap[*TypeDecl]
	functions *collections.FoldMap[*FunctionDecl]
	reserved  Keywords
	logger    zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithReservedWords adds words to the default reserved set.
func WithReservedWords(words ...string) Option {
	return func(r *Registry) {
		r.reserved.Add(words...)
	}
}

// New constructs a Registry for the namespace name.  The empty string is the
// global namespace.
func New(name string, options ...Option) (*Registry, error) {
	if name != "" && !IsNamespaceIdentifier(name, false) {
		return nil, &InvalidNameError{What: "namespace name", Value: name}
	}
	r := &Registry{
		name:      name,
		types:     collections.NewFoldMap[*TypeDecl](),
		functions: collections.NewFoldMap[*FunctionDecl](),
		reserved:  NewKeywords(DefaultKeywords...),
		logger:    zerolog.Nop(),
	}
	for i := range r.imports {
		r.imports[i] = newImportTable()
	}
	for _, opt := range options {
		opt(r)
	}
	return r, nil
}

// Name returns the namespace identity.
func (r *Registry) Name() string {
	return r.name
}

// SetBracketedSyntax toggles the "namespace X { ... }" rendering form.
func (r *Registry) SetBracketedSyntax(state bool) {
	r.bracketed = state
}

// HasBracketedSyntax reports the rendering form.
func (r *Registry) HasBracketedSyntax() bool {
	return r.bracketed
}

// IsReserved reports whether name is a reserved word in this registry.
func (r *Registry) IsReserved(name string) bool {
	return r.reserved.Has(name)
}

// AddImport binds alias to the fully-qualified name within kind and returns
// the alias used.  An empty alias is generated from the short name of name,
// suffixed with 2, 3, ... until it is free.
func (r *Registry) AddImport(name, alias string, kind Kind) (string, error) {
	return r.addImport(name, alias, kind, false)
}

// AddTypeImport is AddImport for KindType.
func (r *Registry) AddTypeImport(name, alias string) (string, error) {
	return r.AddImport(name, alias, KindType)
}

// AddFunctionImport is AddImport for KindFunction.
func (r *Registry) AddFunctionImport(name, alias string) (string, error) {
	return r.AddImport(name, alias, KindFunction)
}

// AddConstantImport is AddImport for KindConstant.
func (r *Registry) AddConstantImport(name, alias string) (string, error) {
	return r.AddImport(name, alias, KindConstant)
}

func (r *Registry) addImport(name, alias string, kind Kind, virtual bool) (string, error) {
	table, err := r.table(kind)
	if err != nil {
		return "", err
	}
	if !IsNamespaceIdentifier(name, true) {
		return "", &InvalidNameError{What: kind.String() + " name", Value: name}
	}
	name = strings.TrimPrefix(name, Separator)
	if IsIdentifier(name) && r.reserved.Has(name) {
		return "", &InvalidNameError{What: kind.String() + " name", Value: name}
	}
	if alias != "" && (!IsIdentifier(alias) || r.reserved.Has(alias)) {
		return "", &InvalidNameError{What: "alias", Value: alias}
	}

	if alias == "" {
		alias = table.freeAlias(ShortName(name), name, r.reserved)
	} else if used, ok := table.lookup(alias); ok && !collections.EqualFold(used.name, name) {
		return "", &AliasConflictError{Kind: kind, Alias: alias, Existing: used.name, Requested: name}
	}

	table.put(alias, name, virtual)
	r.logger.Debug().
		Str("namespace", r.name).
		Stringer("kind", kind).
		Str("alias", alias).
		Str("name", name).
		Bool("virtual", virtual).
		Msg("import registered")
	return alias, nil
}

// RemoveImport drops the binding for alias within kind, if any.
func (r *Registry) RemoveImport(alias string, kind Kind) {
	table, err := r.table(kind)
	if err != nil {
		return
	}
	if table.remove(alias) {
		r.logger.Debug().Str("namespace", r.name).Stringer("kind", kind).Str("alias", alias).Msg("import removed")
	}
}

// Imports returns the bindings of kind sorted by target name.  For KindType
// the self-registrations of declared types are omitted; they are bookkeeping,
// not statements the caller asked for.
func (r *Registry) Imports(kind Kind) []Import {
	table, err := r.table(kind)
	if err != nil {
		return nil
	}
	imports := make([]Import, 0, len(table.sorted))
	for _, e := range table.sorted {
		if e.virtual {
			continue
		}
		imports = append(imports, Import{Alias: e.alias, Name: e.name})
	}
	return imports
}

// qualify joins short onto the namespace identity.
func (r *Registry) qualify(short string) string {
	if r.name == "" {
		return short
	}
	return r.name + Separator + short
}

func (r *Registry) table(kind Kind) (*importTable, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown import kind: %v", kind)
	}
	return r.imports[kind], nil
}

// Import is a single alias binding as seen by a printer.
type Import struct {
	// Alias is the short name in effect in the namespace.
	Alias string
	// Name is the fully-qualified target, without a leading separator.
	Name string
}

// String renders the binding as "Name as Alias", omitting the alias when it
// equals the short name.
func (i Import) String() string {
	if i.Alias == ShortName(i.Name) {
		return i.Name
	}
	return i.Name + " as " + i.Alias
}
