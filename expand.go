package uritemplate

import "strings"

// A renderedValue carries one variable's resolved text. preEncoded is
// set when the text was percent-encoded during resolution (list
// values) so the operator encoding is not applied a second time.
type renderedValue struct {
	text       string
	preEncoded bool
}

// process renders the parts in parse order against ps and
// concatenates the results.
func process(parts []Part, ps Params) (string, error) {
	sb := &strings.Builder{}
	for _, part := range parts {
		switch node := part.(type) {
		case *Literal:
			sb.WriteString(node.Text)

		case *Expression:
			body, err := expand(node, ps)
			if err != nil {
				return "", err
			}
			sb.WriteString(body)

		default:
			return "", &InternalError{Part: part}
		}
	}

	return sb.String(), nil
}

// expand renders one expression: per-variable rendering, then the
// operator joiner, then the operator affix once for the whole block.
// Absent variables contribute nothing to the join.
func expand(node *Expression, ps Params) (string, error) {
	var rendered []string
	for _, v := range node.Vars {
		value, ok, err := getValue(v, node.Op, ps)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		rendered = append(rendered, renderVariable(node.Op, v.Name, value))
	}
	if len(rendered) == 0 {
		return "", nil
	}

	return opPrefix(node.Op) + strings.Join(rendered, opJoiner(node.Op)), nil
}

// getValue resolves one variable against ps. ok is false when the
// variable is absent; the caller then omits the variable entirely,
// named form included.
func getValue(v *Variable, op Operator, ps Params) (renderedValue, bool, error) {
	raw, ok := ps[v.Name]
	if !ok || raw == nil {
		return renderedValue{}, false, nil
	}

	switch value := raw.(type) {
	case string:
		if v.MaxLength > 0 {
			if rs := []rune(value); len(rs) > v.MaxLength {
				value = string(rs[:v.MaxLength])
			}
		}

		return renderedValue{text: value}, true, nil

	case []string:
		// prefix truncation does not apply to lists; each element is
		// taken whole and component-encoded individually
		joiner := ","
		if v.Explode {
			joiner = opJoiner(op)
		}
		encoded := make([]string, len(value))
		for i, item := range value {
			encoded[i] = encodeComponent(item)
		}

		return renderedValue{text: strings.Join(encoded, joiner), preEncoded: true}, true, nil
	}

	return renderedValue{}, false, &UnsupportedValue{Name: v.Name}
}

// renderVariable applies the operator encoding and the named
// name=value form. A present-but-empty value still renders its name.
func renderVariable(op Operator, name string, value renderedValue) string {
	text := value.text
	if !value.preEncoded {
		text = opEncode(op)(text)
	}
	switch op {
	case OP_PARAM, OP_QUERY, OP_CONTINUATION:
		return name + "=" + text
	}

	return text
}

func opPrefix(op Operator) string {
	switch op {
	case OP_NONE, OP_RESERVED:
		return ""
	}

	return op.String()
}

func opJoiner(op Operator) string {
	switch op {
	case OP_LABEL:
		return "."
	case OP_PATH:
		return "/"
	case OP_PARAM:
		return ";"
	case OP_QUERY, OP_CONTINUATION:
		return "&"
	}

	return ","
}

func opEncode(op Operator) func(string) string {
	switch op {
	case OP_RESERVED, OP_FRAGMENT, OP_LABEL, OP_PATH, OP_PARAM:
		return encodeReserved
	}

	return encodeComponent
}
