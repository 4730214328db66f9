// Package uritemplate expands RFC 6570 URI Templates: a template
// string of literal text interleaved with {...} expressions is parsed
// once and rendered against a variable mapping per the RFC's operator
// semantics.
package uritemplate

import "sync"

// A Template owns a template string and its lazily parsed part
// sequence. The parts are computed at most once; Source is treated as
// set-once and must not change after the first Parts or Process call.
type Template struct {
	Source string

	once  sync.Once
	parts []Part
	err   error
}

func NewTemplate(source string) *Template {
	return &Template{Source: source}
}

// Parts triggers parse-on-first-use and returns the cached part
// sequence. Idempotent; safe for concurrent use.
func (t *Template) Parts() ([]Part, error) {
	t.once.Do(t.parse)

	return t.parts, t.err
}

// Process expands the template against ps. It never mutates or
// retains ps.
func (t *Template) Process(ps Params) (string, error) {
	parts, err := t.Parts()
	if err != nil {
		return "", err
	}

	return process(parts, ps)
}

func (t *Template) parse() {
	if t.Source == "" {
		t.err = &NoTemplate{}

		return
	}
	stream, err := tokenize(newSourceCode(t.Source))
	if err != nil {
		t.err = err

		return
	}
	t.parts, t.err = assemble(stream)
}

func buildTemplate(tpl string) (*Template, error) {
	t := NewTemplate(tpl)
	if _, err := t.Parts(); err != nil {
		return nil, err
	}

	return t, nil
}

func buildFileTemplate(path string) (*Template, error) {
	source, err := newSourceCodeFile(path)
	if err != nil {
		return nil, err
	}

	return buildTemplate(trimTemplateFile(source.code))
}
