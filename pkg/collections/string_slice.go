package collections

import "strings"

// StringSlice is a repeatable string flag.
type StringSlice []string

// String implements the flag.Value interface.
func (s *StringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

// Set implements the flag.Value interface.  Each occurrence of the flag
// appends a value.
func (s *StringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}
