package namespace

import (
	"strings"

	"github.com/stackb/phpgen/pkg/collections"
)

// ShortenName returns the shortest reference to the fully-qualified name
// that ResolveName maps back to it under the current imports.  Reserved
// words and the empty string are returned as-is.
func (r *Registry) ShortenName(name string, kind Kind) string {
	if name == "" || r.reserved.Has(name) {
		return name
	}
	name = strings.TrimLeft(name, Separator)

	if kind != KindType {
		if table, err := r.table(kind); err == nil {
			if e, ok := table.exact(name); ok {
				return e.alias
			}
		}
		// only the namespace prefix of a function or constant shortens
		return r.ShortenName(NamespaceOf(name)+Separator, KindType) + ShortName(name)
	}

	return r.shortenTypeName(name)
}

func (r *Registry) shortenTypeName(name string) string {
	types := r.imports[KindType]

	var res string
	found := false

	if prefix := r.name + Separator; collections.HasPrefixFold(name, prefix) {
		if short := name[len(prefix):]; short != "" {
			if _, shadowed := types.lookup(firstSegment(short)); !shadowed {
				res, found = short, true
			}
		}
	}

	types.walkPrefixes(name, func(prefixLen int, e *importEntry) {
		short := e.alias + name[prefixLen:]
		if !found || len(short) < len(res) {
			res, found = short, true
		}
	})

	if found {
		return res
	}
	if r.name == "" {
		return name
	}
	return Separator + name
}

// ShortenType applies ShortenName to every name inside a type expression
// such as "?Foo\Bar", "A|B" or "(A&B)|null", leaving all other characters
// untouched.
func (r *Registry) ShortenType(expr string, kind Kind) string {
	return mapNames(expr, func(name string) string {
		return r.ShortenName(name, kind)
	})
}

// ResolveName is the inverse of ShortenName: it returns the fully-qualified
// name (without a leading separator) that the reference name denotes within
// this namespace.
func (r *Registry) ResolveName(name string, kind Kind) string {
	if name == "" || r.reserved.Has(name) {
		return name
	}
	if strings.HasPrefix(name, Separator) {
		return name[len(Separator):]
	}

	if kind != KindType {
		if table, err := r.table(kind); err == nil {
			if e, ok := table.lookup(name); ok {
				return e.name
			}
		}
		return r.ResolveName(NamespaceOf(name)+Separator, KindType) + ShortName(name)
	}

	first, rest, hasRest := strings.Cut(name, Separator)
	if e, ok := r.imports[KindType].lookup(first); ok {
		if hasRest {
			return e.name + Separator + rest
		}
		return e.name
	}
	return r.qualify(name)
}

// ResolveType applies ResolveName to every name inside a type expression.
func (r *Registry) ResolveType(expr string, kind Kind) string {
	return mapNames(expr, func(name string) string {
		return r.ResolveName(name, kind)
	})
}

// mapNames replaces every maximal run of name bytes in expr with fn(run).
func mapNames(expr string, fn func(string) string) string {
	var buf strings.Builder
	buf.Grow(len(expr))
	for i := 0; i < len(expr); {
		if !isNameByte(expr[i]) {
			buf.WriteByte(expr[i])
			i++
			continue
		}
		j := i + 1
		for j < len(expr) && isNameByte(expr[j]) {
			j++
		}
		buf.WriteString(fn(expr[i:j]))
		i = j
	}
	return buf.String()
}
