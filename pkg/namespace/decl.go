package namespace

import (
	"fmt"
	"strings"
)

// TypeKind classifies a declared type.  The registry never branches on it;
// it is carried for the printer.
type TypeKind string

const (
	TypeClass     TypeKind = "class"
	TypeInterface TypeKind = "interface"
	TypeTrait     TypeKind = "trait"
	TypeEnum      TypeKind = "enum"
)

// ParseTypeKind parses a TypeKind.  The empty string means TypeClass.
func ParseTypeKind(s string) (TypeKind, error) {
	switch k := TypeKind(s); k {
	case "":
		return TypeClass, nil
	case TypeClass, TypeInterface, TypeTrait, TypeEnum:
		return k, nil
	default:
		return "", fmt.Errorf("unknown type kind %q", s)
	}
}

// TypeDecl is a type declared in a namespace.  Referenced type names are
// kept fully qualified; the printer shortens them.
type TypeDecl struct {
	name      string
	namespace string

	Kind       TypeKind
	Extends    []string
	Implements []string
	Comment    string
}

func newTypeDecl(name, namespace string) *TypeDecl {
	return &TypeDecl{name: name, namespace: namespace, Kind: TypeClass}
}

// Name returns the short name of the type.
func (t *TypeDecl) Name() string {
	return t.name
}

// QualifiedName returns the namespace-qualified name of the type.
func (t *TypeDecl) QualifiedName() string {
	if t.namespace == "" {
		return t.name
	}
	return t.namespace + Separator + t.name
}

// SetKind sets the kind and returns t.
func (t *TypeDecl) SetKind(kind TypeKind) *TypeDecl {
	t.Kind = kind
	return t
}

// AddExtends appends a fully-qualified parent name and returns t.
func (t *TypeDecl) AddExtends(name string) *TypeDecl {
	t.Extends = append(t.Extends, strings.TrimLeft(name, Separator))
	return t
}

// AddImplements appends a fully-qualified interface name and returns t.
func (t *TypeDecl) AddImplements(name string) *TypeDecl {
	t.Implements = append(t.Implements, strings.TrimLeft(name, Separator))
	return t
}

// Param is a function parameter.  Type is a type expression of
// fully-qualified names, possibly empty.
type Param struct {
	Name string
	Type string
}

// FunctionDecl is a function declared in a namespace.
type FunctionDecl struct {
	name string

	Params     []Param
	ReturnType string
	Comment    string
}

// Name returns the function name.
func (f *FunctionDecl) Name() string {
	return f.name
}

// AddParam appends a parameter and returns f.
func (f *FunctionDecl) AddParam(name, typ string) *FunctionDecl {
	f.Params = append(f.Params, Param{Name: name, Type: typ})
	return f
}

// SetReturnType sets the return type expression and returns f.
func (f *FunctionDecl) SetReturnType(typ string) *FunctionDecl {
	f.ReturnType = typ
	return f
}
