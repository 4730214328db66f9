package uritemplate

import "strings"

// tokenize scans a template string into a flat token stream. A literal
// run is consumed up to the next '{' (or the end of input) before it is
// emitted, so one contiguous run always yields exactly one TYPE_TEXT
// token.
func tokenize(source *sourceCode) (*tokenStream, error) {
	var (
		code    = source.code
		stream  = &tokenStream{source: source, current: -1}
		cursor  = 0
		codeLen = len(code)
	)

	for cursor < codeLen {
		if code[cursor] != '{' {
			start := cursor
			for cursor < codeLen && code[cursor] != '{' {
				cursor++
			}
			stream.tokens = append(stream.tokens, newToken(TYPE_TEXT, code[start:cursor], start))
			continue
		}

		open := cursor
		stream.tokens = append(stream.tokens, newToken(TYPE_EXPR_START, "{", cursor))
		cursor++
		if cursor < codeLen && isOperatorByte(code[cursor]) {
			stream.tokens = append(stream.tokens, newToken(TYPE_OPERATOR, code[cursor:cursor+1], cursor))
			cursor++
		}

		closed := false
		for cursor < codeLen && !closed {
			switch {
			case isNameByte(code[cursor]):
				start := cursor
				for cursor < codeLen && isNameByte(code[cursor]) {
					cursor++
				}
				stream.tokens = append(stream.tokens, newToken(TYPE_NAME, code[start:cursor], start))

			case code[cursor] == ':':
				start := cursor
				cursor++
				digits := cursor
				for cursor < codeLen && isDigitByte(code[cursor]) {
					cursor++
				}
				if cursor == digits {
					return nil, &UnexpectedToken{Pos: start, Token: ":"}
				}
				stream.tokens = append(stream.tokens, newToken(TYPE_PREFIX, code[digits:cursor], start))

			case code[cursor] == '*':
				stream.tokens = append(stream.tokens, newToken(TYPE_EXPLODE, "*", cursor))
				cursor++

			case code[cursor] == ',':
				stream.tokens = append(stream.tokens, newToken(TYPE_COMMA, ",", cursor))
				cursor++

			case code[cursor] == '}':
				stream.tokens = append(stream.tokens, newToken(TYPE_EXPR_END, "}", cursor))
				cursor++
				closed = true

			default:
				return nil, &UnexpectedToken{Pos: cursor, Token: code[cursor : cursor+1]}
			}
		}
		if !closed {
			return nil, &UnClosedExpression{Pos: open}
		}
	}

	stream.tokens = append(stream.tokens, newToken(TYPE_EOF, "", codeLen))

	return stream, nil
}

type tokenStream struct {
	source  *sourceCode
	tokens  []*token
	current int
}

func (ts *tokenStream) Size() int {
	return len(ts.tokens)
}

func (ts *tokenStream) String() string {
	sb := &strings.Builder{}
	for _, t := range ts.tokens {
		sb.WriteString(t.string())
	}

	return sb.String()
}

func (ts *tokenStream) Current() (*token, error) {
	if ts.current < 0 || ts.current >= len(ts.tokens) {
		return nil, &UnexpectedEndOfTemplate{}
	}

	return ts.tokens[ts.current], nil
}

func (ts *tokenStream) HasNext() bool {
	size := len(ts.tokens)

	return ts.current < size-1
}

func (ts *tokenStream) Next() (*token, error) {
	ts.current++
	if ts.current > len(ts.tokens)-1 {
		return nil, &UnexpectedEndOfTemplate{}
	}

	return ts.tokens[ts.current], nil
}

func (ts *tokenStream) Peek(n int) (*token, error) {
	if ts.current+n > len(ts.tokens)-1 {
		return nil, &UnexpectedEndOfTemplate{}
	}

	return ts.tokens[ts.current+n], nil
}

func isOperatorByte(c byte) bool {
	switch c {
	case '+', '#', '.', '/', ';', '?', '&':
		return true
	}

	return false
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}
