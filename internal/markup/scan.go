// Package markup discovers embedded custom-element references in component
// markup. It is a scanning pass, not a markup parser: only top-level
// <element> declarations and their name/src attributes are recognized.
package markup

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// ElementRef is one <element name="…" src="…"> declaration found in markup.
// Name may be empty when the declaration relies on the file-name default.
type ElementRef struct {
	Name string
	Src  string
	Pos  hcl.Pos
}

// ScanElements returns every element declaration in the markup, in document
// order. HTML comments are skipped.
func ScanElements(src string) []ElementRef {
	var refs []ElementRef
	line := 1

	for i := 0; i < len(src); {
		c := src[i]
		if c == '\n' {
			line++
			i++
			continue
		}
		if c != '<' {
			i++
			continue
		}

		if strings.HasPrefix(src[i:], "<!--") {
			end := strings.Index(src[i:], "-->")
			if end < 0 {
				break
			}
			line += strings.Count(src[i:i+end+3], "\n")
			i += end + 3
			continue
		}

		if isTagAt(src, i, "element") {
			tagEnd := strings.IndexByte(src[i:], '>')
			if tagEnd < 0 {
				break
			}
			tag := src[i : i+tagEnd+1]
			refs = append(refs, ElementRef{
				Name: attrValue(tag, "name"),
				Src:  attrValue(tag, "src"),
				Pos:  hcl.Pos{Line: line, Column: 1},
			})
			line += strings.Count(tag, "\n")
			i += tagEnd + 1
			continue
		}

		i++
	}

	return refs
}

// isTagAt reports whether an opening tag with the given name starts at i.
func isTagAt(src string, i int, name string) bool {
	if !strings.HasPrefix(src[i+1:], name) {
		return false
	}
	j := i + 1 + len(name)
	if j >= len(src) {
		return false
	}
	switch src[j] {
	case ' ', '\t', '\r', '\n', '>', '/':
		return true
	default:
		return false
	}
}

// attrValue extracts the value of a quoted attribute from a single tag's
// text, or returns the empty string when the attribute is absent.
func attrValue(tag, name string) string {
	for i := 0; i < len(tag); {
		idx := strings.Index(tag[i:], name)
		if idx < 0 {
			return ""
		}
		j := i + idx
		// must be a standalone attribute name
		if j > 0 && isNameChar(tag[j-1]) {
			i = j + len(name)
			continue
		}
		k := j + len(name)
		for k < len(tag) && (tag[k] == ' ' || tag[k] == '\t') {
			k++
		}
		if k >= len(tag) || tag[k] != '=' {
			i = j + len(name)
			continue
		}
		k++
		for k < len(tag) && (tag[k] == ' ' || tag[k] == '\t') {
			k++
		}
		if k >= len(tag) || (tag[k] != '"' && tag[k] != '\'') {
			i = j + len(name)
			continue
		}
		quote := tag[k]
		k++
		end := strings.IndexByte(tag[k:], quote)
		if end < 0 {
			return ""
		}
		return tag[k : k+end]
	}
	return ""
}

func isNameChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
