package uritemplate

// Operator selects the expansion policy of one {...} expression:
// its leading affix, the joiner between variables, named-form
// rendering and the percent-encoding applied to scalar values.
type Operator int

const (
	OP_NONE Operator = iota
	OP_RESERVED     // +
	OP_FRAGMENT     // #
	OP_LABEL        // .
	OP_PATH         // /
	OP_PARAM        // ;
	OP_QUERY        // ?
	OP_CONTINUATION // &
)

func operatorOf(s string) Operator {
	switch s {
	case "+":
		return OP_RESERVED
	case "#":
		return OP_FRAGMENT
	case ".":
		return OP_LABEL
	case "/":
		return OP_PATH
	case ";":
		return OP_PARAM
	case "?":
		return OP_QUERY
	case "&":
		return OP_CONTINUATION
	}

	return OP_NONE
}

func (op Operator) String() string {
	switch op {
	case OP_RESERVED:
		return "+"
	case OP_FRAGMENT:
		return "#"
	case OP_LABEL:
		return "."
	case OP_PATH:
		return "/"
	case OP_PARAM:
		return ";"
	case OP_QUERY:
		return "?"
	case OP_CONTINUATION:
		return "&"
	}

	return ""
}

// All part nodes implement the Part interface.
type Part interface {
	partNode()
	typ() string
}

// ----------------------------------------------------------------------------
// Parts

type (
	// A Literal node represents a run of template text that is copied
	// to the output verbatim.
	Literal struct {
		Text string
	}

	// An Expression node represents one {...} block.
	Expression struct {
		Op   Operator
		Vars []*Variable // at least one
	}

	// A Variable node represents a single variable specifier inside
	// an expression.
	Variable struct {
		Name      string
		MaxLength int  // :N prefix modifier; 0 when unset
		Explode   bool // * modifier
	}
)

// partNode() ensures that only part nodes can be assigned to a Part.
func (*Literal) partNode()    {}
func (*Expression) partNode() {}

func (*Literal) typ() string {
	return "Literal"
}
func (*Expression) typ() string {
	return "Expression"
}
