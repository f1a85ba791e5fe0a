package card

import "strings"

// StripComments removes // line comments and /* */ block comments from src
// while leaving string literal contents untouched. Newlines inside block
// comments are preserved so line numbers in later stages still match the
// input.
func StripComments(src string) string {
	var out strings.Builder
	out.Grow(len(src))

	for i := 0; i < len(src); {
		c := src[i]

		switch {
		case c == '"' || c == '\'':
			end := scanString(src, i)
			out.WriteString(src[i:end])
			i = end

		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}

		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i += 2
			for i < len(src) {
				if src[i] == '*' && i+1 < len(src) && src[i+1] == '/' {
					i += 2
					break
				}
				if src[i] == '\n' {
					out.WriteByte('\n')
				}
				i++
			}

		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String()
}

// scanString returns the index just past the string literal starting at
// src[start], honoring backslash escapes. An unterminated literal runs to
// the end of input; the parser reports it later.
func scanString(src string, start int) int {
	quote := src[start]
	i := start + 1
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1
		default:
			i++
		}
	}
	return i
}

// reExportMarker is the prefix relaxed literals may carry when authored as a
// script module.
const reExportMarker = "export default"

// StripExportDefault removes a leading re-export-default marker, keeping any
// whitespace before it so positions shift as little as possible.
func StripExportDefault(src string) string {
	trimmed := strings.TrimLeft(src, " \t\r\n")
	if strings.HasPrefix(trimmed, reExportMarker) {
		lead := src[:len(src)-len(trimmed)]
		return lead + trimmed[len(reExportMarker):]
	}
	return src
}
