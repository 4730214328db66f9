package uritemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParts(t *testing.T) {
	tpl, err := buildTemplate("http://foo.com{/foo,bar:3}x{+list*}")
	assert.Nil(t, err)
	parts, err := tpl.Parts()
	assert.Nil(t, err)
	assert.Len(t, parts, 4)

	lit, ok := parts[0].(*Literal)
	assert.True(t, ok)
	assert.Equal(t, "http://foo.com", lit.Text)

	expr, ok := parts[1].(*Expression)
	assert.True(t, ok)
	assert.Equal(t, OP_PATH, expr.Op)
	assert.Len(t, expr.Vars, 2)
	assert.Equal(t, "foo", expr.Vars[0].Name)
	assert.Equal(t, 0, expr.Vars[0].MaxLength)
	assert.False(t, expr.Vars[0].Explode)
	assert.Equal(t, "bar", expr.Vars[1].Name)
	assert.Equal(t, 3, expr.Vars[1].MaxLength)

	expr, ok = parts[3].(*Expression)
	assert.True(t, ok)
	assert.Equal(t, OP_RESERVED, expr.Op)
	assert.True(t, expr.Vars[0].Explode)

	// parse-on-first-use is idempotent: same slice every call
	again, err := tpl.Parts()
	assert.Nil(t, err)
	assert.Same(t, parts[0], again[0])
}

func TestLiteralSkeleton(t *testing.T) {
	// re-joining the literal parts reproduces the template's literal
	// skeleton with every run present exactly once
	tpl, err := buildTemplate("a{x}b{y}c")
	assert.Nil(t, err)
	parts, err := tpl.Parts()
	assert.Nil(t, err)

	var skeleton string
	var runs int
	for _, part := range parts {
		if lit, ok := part.(*Literal); ok {
			skeleton += lit.Text
			runs++
		}
	}
	assert.Equal(t, "abc", skeleton)
	assert.Equal(t, 3, runs)
}

func TestProcessUnknownPart(t *testing.T) {
	type bogus struct{ Literal }
	_, err := process([]Part{&bogus{}}, nil)
	assert.IsType(t, &InternalError{}, err)
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "hello%20world%21", encodeComponent("hello world!"))
	assert.Equal(t, "a%2Fb", encodeComponent("a/b"))
	assert.Equal(t, "A-z0.9_~", encodeComponent("A-z0.9_~"))
	// component encoding never passes a triplet through
	assert.Equal(t, "%2520", encodeComponent("%20"))

	assert.Equal(t, ":/?#[]@!$&'()*+,;=", encodeReserved(":/?#[]@!$&'()*+,;="))
	assert.Equal(t, "/foo%20bar", encodeReserved("/foo bar"))
	assert.Equal(t, "/foo%20bar", encodeReserved("/foo%20bar"))
	assert.Equal(t, "%25zz", encodeReserved("%zz"))

	// multi-byte input is encoded per byte
	assert.Equal(t, "%C3%A9", encodeComponent("é"))
}

func TestOperatorTable(t *testing.T) {
	for _, tc := range []struct {
		op     Operator
		prefix string
		joiner string
	}{
		{OP_NONE, "", ","},
		{OP_RESERVED, "", ","},
		{OP_FRAGMENT, "#", ","},
		{OP_LABEL, ".", "."},
		{OP_PATH, "/", "/"},
		{OP_PARAM, ";", ";"},
		{OP_QUERY, "?", "&"},
		{OP_CONTINUATION, "&", "&"},
	} {
		assert.Equal(t, tc.prefix, opPrefix(tc.op), tc.op.String())
		assert.Equal(t, tc.joiner, opJoiner(tc.op), tc.op.String())
	}
}

func TestGetValuePreEncoded(t *testing.T) {
	v := &Variable{Name: "list", Explode: true}
	value, ok, err := getValue(v, OP_PATH, Params{"list": []string{"a b", "c"}})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.True(t, value.preEncoded)
	assert.Equal(t, "a%20b/c", value.text)

	// the pre-encoded marker stops the operator pass from touching it
	assert.Equal(t, "a%20b/c", renderVariable(OP_PATH, "list", value))

	// prefix truncation is ignored for lists
	v = &Variable{Name: "list", MaxLength: 1}
	value, ok, err = getValue(v, OP_NONE, Params{"list": []string{"abc", "def"}})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc,def", value.text)
}
