package xbel

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// unescapeText expands the predefined entity references and character
// references in raw character data. The filter only needs this to check
// that a swallowed text node is pure whitespace; forwarded text is
// always written raw.
func unescapeText(b []byte) ([]byte, error) {
	if bytes.IndexByte(b, '&') < 0 {
		return b, nil
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c != '&' {
			out = append(out, c)
			continue
		}
		rel := bytes.IndexByte(b[i:], ';')
		if rel < 0 {
			return nil, errInvalidEntity
		}
		ref := string(b[i+1 : i+rel])
		i += rel
		switch ref {
		case "lt":
			out = append(out, '<')
		case "gt":
			out = append(out, '>')
		case "amp":
			out = append(out, '&')
		case "apos":
			out = append(out, '\'')
		case "quot":
			out = append(out, '"')
		default:
			r, err := parseCharRef(ref)
			if err != nil {
				return nil, err
			}
			out = utf8.AppendRune(out, r)
		}
	}
	return out, nil
}

func parseCharRef(ref string) (rune, error) {
	if len(ref) < 2 || ref[0] != '#' {
		return 0, errInvalidEntity
	}
	digits := ref[1:]
	base := 10
	if digits[0] == 'x' || digits[0] == 'X' {
		digits = digits[1:]
		base = 16
	}
	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil || n > utf8.MaxRune {
		return 0, errInvalidEntity
	}
	return rune(n), nil
}
