package refgraph

// reservedNames is the built-in element vocabulary. A page entry must not
// take one of these as its component name.
var reservedNames = map[string]struct{}{
	"a":        {},
	"button":   {},
	"canvas":   {},
	"chart":    {},
	"dialog":   {},
	"div":      {},
	"divider":  {},
	"form":     {},
	"image":    {},
	"input":    {},
	"label":    {},
	"list":     {},
	"listitem": {},
	"marquee":  {},
	"menu":     {},
	"option":   {},
	"picker":   {},
	"popup":    {},
	"progress": {},
	"refresh":  {},
	"select":   {},
	"slider":   {},
	"span":     {},
	"stack":    {},
	"swiper":   {},
	"switch":   {},
	"tabs":     {},
	"text":     {},
	"textarea": {},
	"video":    {},
}

// IsReserved reports whether name collides with the built-in element
// vocabulary, case-insensitively.
func IsReserved(name string) bool {
	_, ok := reservedNames[Fold(name)]
	return ok
}
