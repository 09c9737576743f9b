package namespace

import (
	"strings"

	"github.com/stackb/phpgen/pkg/collections"
)

// Separator delimits the segments of a namespaced name.
const Separator = `\`

// DefaultKeywords are names that are never qualified, imported or shortened:
// the pseudo-types and the class-relative keywords.
var DefaultKeywords = []string{
	"self", "parent", "static",
	"array", "callable", "iterable", "object", "mixed", "resource", "numeric",
	"bool", "int", "float", "string",
	"void", "never", "null", "false", "true",
}

// Keywords is a set of reserved words compared case-insensitively.
type Keywords map[string]struct{}

// NewKeywords builds a Keywords set from the given words.
func NewKeywords(words ...string) Keywords {
	k := make(Keywords, len(words))
	k.Add(words...)
	return k
}

// Add puts the given words in the set.
func (k Keywords) Add(words ...string) {
	for _, w := range words {
		k[collections.Fold(w)] = struct{}{}
	}
}

// Has reports whether name is reserved.
func (k Keywords) Has(name string) bool {
	_, ok := k[collections.Fold(name)]
	return ok
}

// IsIdentifier reports whether s is a single bare identifier.
func IsIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return false
		}
	}
	return true
}

// IsNamespaceIdentifier reports whether s is a sequence of identifiers
// joined by Separator.  A single leading separator is accepted when
// allowLeadingSeparator is set.
func IsNamespaceIdentifier(s string, allowLeadingSeparator bool) bool {
	if allowLeadingSeparator {
		s = strings.TrimPrefix(s, Separator)
	}
	if s == "" {
		return false
	}
	for _, segment := range strings.Split(s, Separator) {
		if !IsIdentifier(segment) {
			return false
		}
	}
	return true
}

// ShortName returns the last segment of name.
func ShortName(name string) string {
	return name[strings.LastIndex(name, Separator)+1:]
}

// NamespaceOf returns everything before the last segment of name, without
// the trailing separator.  A bare name has an empty namespace.
func NamespaceOf(name string) string {
	if i := strings.LastIndex(name, Separator); i > 0 {
		return name[:i]
	}
	return ""
}

// firstSegment returns the leading segment of name.
func firstSegment(name string) string {
	first, _, _ := strings.Cut(name, Separator)
	return first
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c >= 0x7f
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}

// isNameByte reports whether c may appear in a (possibly namespaced) name
// within a type expression.
func isNameByte(c byte) bool {
	return isIdentByte(c) || c == '\\'
}
