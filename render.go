package uritemplate

import (
	"io"

	"github.com/pkg/errors"
)

// Expand parses tpl and processes it against ps in one step.
func Expand(tpl string, ps Params) (string, error) {
	doc, err := buildTemplate(tpl)
	if err != nil {
		return "", err
	}

	return doc.Process(ps)
}

func Render(tpl string, writer io.Writer, ps Params) (err error) {
	body, err := Expand(tpl, ps)
	if err != nil {
		return
	}

	_, err = writer.Write([]byte(body))

	return
}

func RenderFile(path string, writer io.Writer, ps Params) (err error) {
	doc, err := buildFileTemplate(path)
	if err != nil {
		return
	}
	body, err := doc.Process(ps)
	if err != nil {
		return
	}

	_, err = writer.Write([]byte(body))

	return
}

func RenderNamed(name string, writer io.Writer, ps Params) (err error) {
	doc := TemplateByName(name)
	if doc == nil {
		return errors.Errorf("no template registered with name [%s]", name)
	}
	body, err := doc.Process(ps)
	if err != nil {
		return
	}

	_, err = writer.Write([]byte(body))

	return
}
