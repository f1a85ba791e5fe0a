package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComments(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"line comment", "a: 1 // trailing\nb: 2", "a: 1 \nb: 2"},
		{"block comment", "a: /* gone */ 1", "a:  1"},
		{"block keeps newlines", "a: 1/* x\ny */\nb: 2", "a: 1\n\nb: 2"},
		{"slashes in string", `a: "not // a comment"`, `a: "not // a comment"`},
		{"block marker in string", `a: "keep /* this */"`, `a: "keep /* this */"`},
		{"single quoted", `a: 'url://x' // gone`, `a: 'url://x' `},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripComments(tc.in))
		})
	}
}

func TestStripExportDefault(t *testing.T) {
	assert.Equal(t, " {a: 1}", StripExportDefault("export default {a: 1}"))
	assert.Equal(t, "\n {a: 1}", StripExportDefault("\nexport default {a: 1}"))
	assert.Equal(t, "{a: 1}", StripExportDefault("{a: 1}"))
}

func TestRewriteBindings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"this path", "this.count", `"{{count}}"`},
		{"this path trailing comma", "this.count,", `"{{count}}",`},
		{"this dotted path", "value: this.item.title", `value: "{{item.title}}"`},
		{"quoted event loses quotes", `"$event.detail"`, `$event.detail`},
		{"single quoted event loses quotes", `'$event.detail'`, `$event.detail`},
		{"bare event gains quotes", `$event.tap`, `"$event.tap"`},
		{"ordinary string untouched", `"this.count"`, `"this.count"`},
		{"mixed", `tap: $event.tap, total: this.total,`, `tap: "$event.tap", total: "{{total}}",`},
		{"no double rewrite", `"$event.detail", $event.tap`, `$event.detail, "$event.tap"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RewriteBindings(tc.in))
		})
	}
}
