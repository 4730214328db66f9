package uritemplate

const (
	TYPE_EOF = iota - 1
	TYPE_TEXT
	TYPE_EXPR_START
	TYPE_EXPR_END
	TYPE_OPERATOR
	TYPE_NAME
	TYPE_PREFIX
	TYPE_EXPLODE
	TYPE_COMMA
)

type token struct {
	value string
	typ   int
	pos   int
}

func (t *token) string() string {
	if t.typ == TYPE_PREFIX {
		return ":" + t.value
	}

	return t.value
}

func newToken(typ int, value string, pos int) *token {
	return &token{typ: typ, value: value, pos: pos}
}
