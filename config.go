package uritemplate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	v2 "gopkg.in/yaml.v2"
)

var (
	pwd    string
	config *Config
)

type Config struct {
	TplDir    string            `yaml:"TplDir"`
	ExtName   string            `yaml:"ExtName"`
	Templates map[string]string `yaml:"Templates"`
}

// InitConfig reads a yaml config file and registers every template it
// names: the inline Templates section first, then one template per
// ExtName file under TplDir (the file name without extension becomes
// the template name).
func InitConfig(path string) (err error) {
	pwd, err = os.Getwd()
	if err != nil {
		return err
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(pwd, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	config = new(Config)
	if err = v2.Unmarshal(data, config); err != nil {
		return errors.Wrapf(err, "can't parse config [%s]", path)
	}
	for name, tpl := range config.Templates {
		if err = AddTemplate(name, tpl); err != nil {
			return
		}
	}
	if config.TplDir != "" {
		dir := config.TplDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(pwd, dir)
		}
		err = loadTplDir(dir)
	}

	return
}

func loadTplDir(dir string) error {
	ext := config.ExtName
	if ext == "" {
		ext = ".tpl"
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "can't read template dir [%s]", dir)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		tpl, err := buildFileTemplate(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if err := _store.AddTemplate(name, tpl); err != nil {
			return err
		}
	}

	return nil
}
