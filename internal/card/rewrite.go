package card

import "strings"

const (
	eventPrefix = "$event."
	thisPrefix  = "this."
)

// RewriteBindings rewrites embedded event and binding expressions in a
// comment-free literal:
//
//   - a quoted "$event.…" or '$event.…' literal loses its quotes, turning it
//     back into an identifier-like expression;
//   - a bare $event.… path gains double quotes;
//   - a bare this.… path becomes a "{{…}}" binding expression with the
//     this. prefix removed.
//
// The pass is a single string-aware scan, so text already inside a quoted
// literal is never rewritten twice.
func RewriteBindings(src string) string {
	var out strings.Builder
	out.Grow(len(src))

	for i := 0; i < len(src); {
		c := src[i]

		switch {
		case c == '"' || c == '\'':
			end := scanString(src, i)
			content := src[i+1 : stringContentEnd(src, i, end)]
			if strings.HasPrefix(content, eventPrefix) {
				out.WriteString(content)
			} else {
				out.WriteString(src[i:end])
			}
			i = end

		case c == '$' && atBoundary(src, i) && hasPathAt(src, i, eventPrefix):
			end := scanPath(src, i+len(eventPrefix))
			out.WriteByte('"')
			out.WriteString(src[i:end])
			out.WriteByte('"')
			i = end

		case c == 't' && atBoundary(src, i) && hasPathAt(src, i, thisPrefix):
			end := scanPath(src, i+len(thisPrefix))
			out.WriteString(`"{{`)
			out.WriteString(src[i+len(thisPrefix) : end])
			out.WriteString(`}}"`)
			i = end

		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String()
}

// stringContentEnd returns the index of the closing quote of the literal
// spanning [start,end), or end when the literal is unterminated.
func stringContentEnd(src string, start, end int) int {
	if end > start+1 && src[end-1] == src[start] {
		return end - 1
	}
	return end
}

// hasPathAt reports whether src[i:] starts with prefix followed by an
// identifier character, i.e. a usable expression path.
func hasPathAt(src string, i int, prefix string) bool {
	if !strings.HasPrefix(src[i:], prefix) {
		return false
	}
	j := i + len(prefix)
	return j < len(src) && isIdentChar(src[j])
}

// atBoundary reports whether position i does not continue an earlier
// identifier.
func atBoundary(src string, i int) bool {
	return i == 0 || !isIdentChar(src[i-1])
}

// scanPath consumes a dotted identifier path starting at i and returns the
// index just past it. A trailing dot is not consumed.
func scanPath(src string, i int) int {
	for i < len(src) {
		if isIdentChar(src[i]) {
			i++
			continue
		}
		if src[i] == '.' && i+1 < len(src) && isIdentChar(src[i+1]) {
			i++
			continue
		}
		break
	}
	return i
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
