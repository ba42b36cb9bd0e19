// Package strutil holds the small string helpers shared by the toolkit.
package strutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Fmt formats according to a format specifier, a shorthand kept for
// symmetry with the toolkit's other one-line wrappers.
func Fmt(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Atos renders an arbitrary value as a string. nil becomes the empty
// string; byte slices are taken verbatim, everything else goes through
// the default formatting.
func Atos(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case error:
		return x.Error()
	default:
		return fmt.Sprintf("%v", x)
	}
}

// IsEmpty reports whether s is empty after trimming spaces.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotEmpty is the negation of IsEmpty.
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}
