package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// guardPlaceholder stands in for a segment that is empty after sanitizing.
const guardPlaceholder = "RESOURCES"

// DeriveGuard returns the include guard token for a header written to output
// inside namespace, in the form _{NAMESPACE}_{FILENAME}_.
//
// Control characters are dropped. Every other character that is not an ASCII
// letter or digit becomes '_', so the result is always a valid identifier.
func DeriveGuard(output, namespace string) string {
	return "_" + guardSegment(namespace) + "_" + guardSegment(baseName(output)) + "_"
}

// baseName strips both slash styles regardless of the host OS.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

func guardSegment(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsControl(r):
			continue
		case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			sb.WriteRune(unicode.ToUpper(r))
		default:
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		return guardPlaceholder
	}
	return sb.String()
}
