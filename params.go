package uritemplate

// Params maps variable names to values. The engine expands string and
// []string values; anything else fails with UnsupportedValue.
type Params map[string]any

// Add sets name to value; adding the same name again turns the value
// into a list in insertion order.
func (p Params) Add(name, value string) {
	switch current := p[name].(type) {
	case nil:
		p[name] = value
	case string:
		p[name] = []string{current, value}
	case []string:
		p[name] = append(current, value)
	default:
		p[name] = value
	}
}
