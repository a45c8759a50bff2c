package generator

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// FormatBytes renders data as unsigned decimal literals, each followed by a comma.
// An empty slice yields an empty string.
func FormatBytes(data []byte) string {
	return string(AppendBytes(make([]byte, 0, len(data)*4), data))
}

// AppendBytes appends the FormatBytes rendering of data to dst.
func AppendBytes(dst, data []byte) []byte {
	for _, b := range data {
		dst = strconv.AppendUint(dst, uint64(b), 10)
		dst = append(dst, ',')
	}
	return dst
}

// EscapeString escapes s for use inside a C++ string literal.
func EscapeString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&sb, `\%03o`, c)
				continue
			}
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// GetCommonFuncMap returns the template functions used by the header template.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		"bytes":   FormatBytes,
		"cstring": EscapeString,
	}
}
