package xbel

import "strings"

// Schemes a manifest may reference without the entry ever being a
// removal candidate. Anything besides these and file:// is a manifest
// format this filter does not understand well enough to rewrite.
var nonLocalSchemes = []string{"trash://", "mtp://", "ftp://", "sftp://"}

// classification is the result of inspecting one bookmark's href.
type classification struct {
	local bool
	path  string // decoded filesystem path, only when local
}

// classifyHref extracts and decodes the single href attribute of a
// bookmark start tag. The raw value is percent-decoded before scheme
// matching; invalid UTF-8 produced by the decode is replaced rather than
// treated as fatal, so one broken entry cannot abort the whole run.
func classifyHref(attrs []Attr) (classification, error) {
	var value []byte
	count := 0
	for _, a := range attrs {
		if string(a.Name) == "href" {
			value = a.Value
			count++
		}
	}
	if count != 1 {
		return classification{}, &HrefCountError{Count: count}
	}
	href := lossyString(percentDecode(value))
	if path, ok := strings.CutPrefix(href, "file://"); ok {
		return classification{local: true, path: path}, nil
	}
	for _, scheme := range nonLocalSchemes {
		if strings.HasPrefix(href, scheme) {
			return classification{}, nil
		}
	}
	return classification{}, &UnrecognizedSchemeError{Href: href}
}

// matchesPrefix reports whether path falls under any removal prefix.
// This is a plain string prefix test, deliberately not path-segment
// aware: /home/a also matches /home/abc.
func matchesPrefix(prefixes []string, path string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// percentDecode resolves %XY triplets in b. Malformed triplets are kept
// as written instead of failing, matching how file managers themselves
// treat the field. net/url rejects them, hence the hand-rolled decode.
func percentDecode(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == '%' && i+2 < len(b) {
			hi, okHi := unhex(b[i+1])
			lo, okLo := unhex(b[i+2])
			if okHi && okLo {
				out = append(out, hi<<4|lo)
				i += 2
				continue
			}
		}
		out = append(out, b[i])
	}
	return out
}

// lossyString converts raw bytes to a string, substituting the Unicode
// replacement character for invalid UTF-8 sequences.
func lossyString(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

func unhex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
