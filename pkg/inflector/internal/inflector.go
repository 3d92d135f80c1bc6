package internal

import (
	"sync"
)

var Defaults = &Inflector{}

type Inflector struct {
	mu    sync.RWMutex
	rules map[RuleType]*Rule
}

func (i *Inflector) MustRegister(r *Rule) {
	if err := i.Register(r); err != nil {
		panic(err)
	}
}

// Register replaces the rule of the same type.
func (i *Inflector) Register(r *Rule) error {
	if err := r.Init(); err != nil {
		return err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.rules == nil {
		i.rules = make(map[RuleType]*Rule)
	}
	i.rules[r.Type] = r

	return nil
}

func (i *Inflector) Inflected(tye RuleType, s string) string {
	i.mu.RLock()
	r, ok := i.rules[tye]
	i.mu.RUnlock()

	if ok {
		return r.Inflected(s)
	}
	return s
}
