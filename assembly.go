package uritemplate

import "strconv"

// assemble walks the token stream and builds the ordered part
// sequence of a template.
func assemble(stream *tokenStream) ([]Part, error) {
	var parts []Part
	for stream.HasNext() {
		token, err := stream.Next()
		if err != nil {
			return nil, err
		}
		switch token.typ {
		case TYPE_EOF:
			return parts, nil

		case TYPE_TEXT:
			parts = append(parts, &Literal{Text: token.value})

		case TYPE_EXPR_START:
			node, err := assembleExpression(stream)
			if err != nil {
				return nil, err
			}
			parts = append(parts, node)

		default:
			return nil, newUnexpectedToken(token)
		}
	}

	return parts, nil
}

// assembleExpression consumes tokens up to and including TYPE_EXPR_END.
// The opening TYPE_EXPR_START has already been consumed by the caller.
func assembleExpression(stream *tokenStream) (*Expression, error) {
	node := &Expression{}
	token, err := stream.Next()
	if err != nil {
		return nil, err
	}
	if token.typ == TYPE_OPERATOR {
		node.Op = operatorOf(token.value)
		token, err = stream.Next()
		if err != nil {
			return nil, err
		}
	}

	for {
		if token.typ != TYPE_NAME {
			return nil, newUnexpectedToken(token)
		}
		v := &Variable{Name: token.value}

		token, err = stream.Next()
		if err != nil {
			return nil, err
		}
		switch token.typ {
		case TYPE_PREFIX:
			n, cErr := strconv.Atoi(token.value)
			if cErr != nil || n == 0 {
				return nil, newUnexpectedToken(token)
			}
			v.MaxLength = n
			token, err = stream.Next()

		case TYPE_EXPLODE:
			v.Explode = true
			token, err = stream.Next()
		}
		if err != nil {
			return nil, err
		}
		// :N and * are mutually exclusive; a second modifier on the
		// same variable fails the grammar
		if token.typ == TYPE_PREFIX || token.typ == TYPE_EXPLODE {
			return nil, newUnexpectedToken(token)
		}
		node.Vars = append(node.Vars, v)

		switch token.typ {
		case TYPE_COMMA:
			token, err = stream.Next()
			if err != nil {
				return nil, err
			}

		case TYPE_EXPR_END:
			return node, nil

		default:
			return nil, newUnexpectedToken(token)
		}
	}
}
