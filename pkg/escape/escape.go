// Package escape renders string content back into the single line GraphQL
// string form, the inverse of the escape decoding done by the lexer.
package escape

import "fmt"

const hexChars = "0123456789abcdef"

// Bytes appends the escaped form of in to out and returns out.
func Bytes(in, out []byte) []byte {
	for i := 0; i < len(in); i++ {
		switch b := in[i]; b {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\b':
			out = append(out, '\\', 'b')
		case '\f':
			out = append(out, '\\', 'f')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			if b < 0x20 {
				out = append(out, '\\', 'u', '0', '0', hexChars[b>>4], hexChars[b&0xf])
				continue
			}
			out = append(out, b)
		}
	}
	return out
}

// String escapes in as a new string.
func String(in string) string {
	return string(Bytes([]byte(in), make([]byte, 0, len(in))))
}

// Quoted escapes in and wraps it in double quotes.
func Quoted(in string) string {
	return fmt.Sprintf(`"%s"`, String(in))
}
