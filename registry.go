package uritemplate

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	_store = &Templates{
		store:  make(map[string]*namedTemplate),
		locker: &sync.RWMutex{},
	}
)

type namedTemplate struct {
	identity string
	tpl      *Template
}

// Templates is a named-template store. Templates are parsed on
// registration, so lookups hand out templates whose part cache is
// already populated and safe for concurrent Process calls.
type Templates struct {
	store  map[string]*namedTemplate
	locker *sync.RWMutex
}

func (ts *Templates) AddTemplate(name string, tpl *Template) error {
	if _, err := tpl.Parts(); err != nil {
		return errors.Wrapf(err, "template [%s]", name)
	}
	identity := abstract([]byte(tpl.Source))
	ts.locker.Lock()
	defer ts.locker.Unlock()
	if current, ok := ts.store[name]; ok {
		// registering the identical source again is a no-op
		if current.identity == identity {
			return nil
		}

		return errors.Errorf("template with name [%s] has already exists.", name)
	}

	ts.store[name] = &namedTemplate{identity: identity, tpl: tpl}

	return nil
}

func (ts *Templates) Template(name string) *Template {
	ts.locker.RLock()
	defer ts.locker.RUnlock()

	if named, ok := ts.store[name]; ok {
		return named.tpl
	}

	return nil
}

// AddTemplate parses tpl and registers it in the process-wide store.
func AddTemplate(name, tpl string) error {
	return _store.AddTemplate(name, NewTemplate(tpl))
}

// TemplateByName returns the registered template or nil.
func TemplateByName(name string) *Template {
	return _store.Template(name)
}
