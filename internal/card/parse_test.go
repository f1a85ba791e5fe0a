package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestParseLiteral_JSONSuperset(t *testing.T) {
	v, err := ParseLiteral(`{
		name: 'card',
		"count": 2,
		enabled: true,
		nothing: null,
		tags: ['a', 'b',],
		nested: { deep: -1.5 },
	}`)
	require.NoError(t, err)

	assert.True(t, v.Type().IsObjectType())
	assert.Equal(t, cty.StringVal("card"), v.GetAttr("name"))
	assert.True(t, cty.NumberIntVal(2).RawEquals(v.GetAttr("count")))
	assert.Equal(t, cty.True, v.GetAttr("enabled"))
	assert.True(t, v.GetAttr("nothing").IsNull())
	assert.Equal(t, cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}), v.GetAttr("tags"))
	assert.True(t, cty.NumberFloatVal(-1.5).RawEquals(v.GetAttr("nested").GetAttr("deep")))
}

func TestParseLiteral_EmptyContainers(t *testing.T) {
	v, err := ParseLiteral(`{empty: {}, none: []}`)
	require.NoError(t, err)
	assert.Equal(t, cty.EmptyObjectVal, v.GetAttr("empty"))
	assert.Equal(t, cty.EmptyTupleVal, v.GetAttr("none"))
}

func TestParseLiteral_BareExpressionValues(t *testing.T) {
	v, err := ParseLiteral(`{tap: $event.detail, click: handler}`)
	require.NoError(t, err)
	assert.Equal(t, cty.StringVal("$event.detail"), v.GetAttr("tap"))
	assert.Equal(t, cty.StringVal("handler"), v.GetAttr("click"))
}

func TestParseLiteral_StringEscapes(t *testing.T) {
	v, err := ParseLiteral(`{a: "line\nbreak", b: 'quote\'s', c: "A"}`)
	require.NoError(t, err)
	assert.Equal(t, cty.StringVal("line\nbreak"), v.GetAttr("a"))
	assert.Equal(t, cty.StringVal("quote's"), v.GetAttr("b"))
	assert.Equal(t, cty.StringVal("A"), v.GetAttr("c"))
}

func TestParseLiteral_DuplicateKeyLastWins(t *testing.T) {
	v, err := ParseLiteral(`{a: 1, a: 2}`)
	require.NoError(t, err)
	assert.True(t, cty.NumberIntVal(2).RawEquals(v.GetAttr("a")))
}

func TestParseLiteral_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not an object", `[1, 2]`},
		{"unterminated object", `{a: 1`},
		{"missing colon", `{a 1}`},
		{"unterminated string", `{a: "x`},
		{"trailing content", `{a: 1} extra`},
		{"empty input", ``},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLiteral(tc.in)
			require.Error(t, err)
		})
	}
}

func TestParseLiteral_ErrorPosition(t *testing.T) {
	_, err := ParseLiteral("{\n  a: 1,\n  b %\n}")
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 3, syntaxErr.Pos.Line)
}
