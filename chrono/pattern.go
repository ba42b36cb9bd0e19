package chrono

import (
	"fmt"
	"strings"
)

// DefaultPattern is the pattern used by Format.
const DefaultPattern = "yyyy-MM-dd HH:mm:ss"

// Format renders the value with the default pattern in the associated zone.
func (c Chrono) Format() string {
	s, _ := c.FormatPattern(DefaultPattern)
	return s
}

// FormatPattern renders the value with a caller-supplied pattern.
// Recognized tokens: yyyy, MM, dd, HH, mm, ss. Text inside single
// quotes is emitted verbatim, '' yields a single quote. Unrecognized
// letter runs pass through literally. It fails with ErrInvalidPattern
// only when the pattern cannot be tokenized, i.e. an unterminated
// quote, and with ErrNilInput for an empty pattern.
func (c Chrono) FormatPattern(pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: empty pattern", ErrNilInput)
	}

	var b strings.Builder
	rs := []rune(pattern)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case r == '\'':
			if i+1 < len(rs) && rs[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			j, err := scanQuoted(&b, rs, i)
			if err != nil {
				return "", err
			}
			i = j
		case isPatternLetter(r):
			j := i
			for j < len(rs) && rs[j] == r {
				j++
			}
			c.writeToken(&b, string(rs[i:j]))
			i = j
		default:
			b.WriteRune(r)
			i++
		}
	}
	return b.String(), nil
}

func (c Chrono) writeToken(b *strings.Builder, tok string) {
	switch tok {
	case "yyyy":
		fmt.Fprintf(b, "%04d", c.t.Year())
	case "MM":
		fmt.Fprintf(b, "%02d", int(c.t.Month()))
	case "dd":
		fmt.Fprintf(b, "%02d", c.t.Day())
	case "HH":
		fmt.Fprintf(b, "%02d", c.t.Hour())
	case "mm":
		fmt.Fprintf(b, "%02d", c.t.Minute())
	case "ss":
		fmt.Fprintf(b, "%02d", c.t.Second())
	default:
		b.WriteString(tok)
	}
}

// scanQuoted copies a quoted literal starting at the quote rs[start]
// and returns the index past the closing quote.
func scanQuoted(b *strings.Builder, rs []rune, start int) (int, error) {
	for j := start + 1; j < len(rs); j++ {
		if rs[j] != '\'' {
			b.WriteRune(rs[j])
			continue
		}
		if j+1 < len(rs) && rs[j+1] == '\'' {
			b.WriteRune('\'')
			j++
			continue
		}
		return j + 1, nil
	}
	return 0, fmt.Errorf("%w: unterminated quote at %d", ErrInvalidPattern, start)
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
