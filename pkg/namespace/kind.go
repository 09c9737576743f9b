package namespace

import "fmt"

// Kind selects one of the independent import tables.  An alias of one kind
// never shadows an alias of another.
type Kind int

const (
	// KindType covers classes, interfaces, traits and enums.
	KindType Kind = iota
	// KindFunction covers global functions ("use function").
	KindFunction
	// KindConstant covers global constants ("use const").
	KindConstant

	numKinds
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindFunction:
		return "function"
	case KindConstant:
		return "constant"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k names one of the known kinds.
func (k Kind) Valid() bool {
	return k >= KindType && k < numKinds
}

// ParseKind parses the textual form of a kind.  The empty string means
// KindType.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "type", "class":
		return KindType, nil
	case "function", "func":
		return KindFunction, nil
	case "constant", "const":
		return KindConstant, nil
	default:
		return 0, fmt.Errorf("unknown import kind %q (want type, function or constant)", s)
	}
}
