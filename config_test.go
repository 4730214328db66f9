package uritemplate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitConfig(t *testing.T) {
	dir := t.TempDir()
	tplDir := filepath.Join(dir, "templates")
	assert.Nil(t, os.Mkdir(tplDir, 0o755))
	assert.Nil(t, os.WriteFile(filepath.Join(tplDir, "config_search.tpl"), []byte("http://example.com/search{?q,lang}\n"), 0o644))
	assert.Nil(t, os.WriteFile(filepath.Join(tplDir, "notes.txt"), []byte("not a template"), 0o644))

	cfg := `TplDir: ` + tplDir + `
Templates:
  config_user: "http://example.com/users{/id}"
`
	path := filepath.Join(dir, "uritpl.yml")
	assert.Nil(t, os.WriteFile(path, []byte(cfg), 0o644))

	assert.Nil(t, InitConfig(path))

	buf := &bytes.Buffer{}
	err := RenderNamed("config_user", buf, Params{"id": "7"})
	assert.Nil(t, err)
	assert.Equal(t, "http://example.com/users/7", buf.String())

	// the trailing newline of the .tpl file is not literal output
	buf.Reset()
	err = RenderNamed("config_search", buf, Params{"q": "go uri templates", "lang": "en"})
	assert.Nil(t, err)
	assert.Equal(t, "http://example.com/search?q=go%20uri%20templates&lang=en", buf.String())

	// non-template files in TplDir are skipped
	assert.Nil(t, TemplateByName("notes"))
}

func TestInitConfigBadYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uritpl.yml")
	assert.Nil(t, os.WriteFile(path, []byte("Templates: [not, a, map]"), 0o644))
	assert.ErrorContains(t, InitConfig(path), "can't parse config")
}

func TestInitConfigMissingFile(t *testing.T) {
	assert.NotNil(t, InitConfig(filepath.Join(t.TempDir(), "absent.yml")))
}
