package uritemplate

import (
	"fmt"

	"github.com/pkg/errors"
)

func newUnexpectedToken(tok *token) error {
	return &UnexpectedToken{Pos: tok.pos, Token: tok.value}
}

// NoTemplate reports that Parts or Process was invoked before a
// template string was supplied.
type NoTemplate struct {
}

func (e *NoTemplate) Error() string {
	return "No template has been set."
}

type UnexpectedEndOfTemplate struct {
}

func (e *UnexpectedEndOfTemplate) Error() string {
	return "Unexpected end of template."
}

type UnClosedExpression struct {
	Pos int
}

func (e *UnClosedExpression) Error() string {
	return fmt.Sprintf("Unclosed expression \"{\" at offset %d", e.Pos)
}

type UnexpectedToken struct {
	Pos   int
	Token string
}

func (e *UnexpectedToken) Error() string {
	return fmt.Sprintf("Unexpected token \"%s\" at offset %d", e.Token, e.Pos)
}

// UnsupportedValue reports a variable mapping value of a kind the
// engine does not expand (associative arrays among them).
type UnsupportedValue struct {
	Name string
}

func (e *UnsupportedValue) Error() string {
	return fmt.Sprintf("Unsupported value kind for variable \"%s\"", e.Name)
}

// InternalError reports a part of an unrecognized kind at render time;
// it indicates a parser/engine contract violation and is never
// expected in correct operation.
type InternalError struct {
	Part Part
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("Internal error: unknown part kind %T", e.Part)
}

// IsInvalidTemplate reports whether err means the template string
// failed to match the grammar.
func IsInvalidTemplate(err error) bool {
	switch errors.Cause(err).(type) {
	case *UnexpectedToken, *UnClosedExpression, *UnexpectedEndOfTemplate:
		return true
	}

	return false
}
