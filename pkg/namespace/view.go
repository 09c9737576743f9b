package namespace

// View is the read-only face of a Registry handed to printers.
type View interface {
	// Name returns the namespace identity.
	Name() string
	// HasBracketedSyntax reports whether "namespace X { }" form is wanted.
	HasBracketedSyntax() bool
	// Imports returns the user-visible bindings of kind, sorted by target.
	Imports(kind Kind) []Import
	// Types returns the declared types in declaration order.
	Types() []*TypeDecl
	// Functions returns the declared functions in declaration order.
	Functions() []*FunctionDecl
	// ShortenName returns the shortest reference to a fully-qualified name.
	ShortenName(name string, kind Kind) string
	// ShortenType shortens every name in a type expression.
	ShortenType(expr string, kind Kind) string
	// ResolveName returns the fully-qualified name a reference denotes.
	ResolveName(name string, kind Kind) string
}

var _ View = (*Registry)(nil)
