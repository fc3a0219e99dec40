// Package pricing edits the per-model price table held in backend settings.
package pricing

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Casper-hue/api-watchdog/internal/api"
)

var (
	ErrEmptyName = errors.New("model name is empty")
	ErrExists    = errors.New("model already exists")
	ErrNotFound  = errors.New("model not found")
)

// Table maps model name to its input/output price per 1M tokens.
type Table map[string]api.ModelPrice

// Clone returns an independent copy, so edits can be discarded.
func (t Table) Clone() Table {
	if t == nil {
		return Table{}
	}
	return maps.Clone(t)
}

// Add inserts a new model priced at zero.
func (t Table) Add(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if _, ok := t[name]; ok {
		return "", fmt.Errorf("%w: %s", ErrExists, name)
	}
	t[name] = api.ModelPrice{}
	return name, nil
}

// Rename moves the price pair of old to a new name.
func (t Table) Rename(old, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p, ok := t[old]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, old)
	}
	if name == old {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	if _, ok := t[name]; ok {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	delete(t, old)
	t[name] = p
	return nil
}

func (t Table) SetInput(name string, v float64) error {
	return t.update(name, func(p *api.ModelPrice) { p.Input = v })
}

func (t Table) SetOutput(name string, v float64) error {
	return t.update(name, func(p *api.ModelPrice) { p.Output = v })
}

func (t Table) update(name string, fn func(*api.ModelPrice)) error {
	p, ok := t[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	fn(&p)
	t[name] = p
	return nil
}

func (t Table) Delete(name string) error {
	if _, ok := t[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(t, name)
	return nil
}

// MergeMissing adds models from official that t does not have yet and
// returns how many were added. Existing prices are left alone.
func (t Table) MergeMissing(official map[string]api.ModelPrice) int {
	n := 0
	for k, v := range official {
		if _, ok := t[k]; !ok {
			t[k] = v
			n++
		}
	}
	return n
}

// Replace discards every entry and copies official in.
func (t Table) Replace(official map[string]api.ModelPrice) {
	clear(t)
	maps.Copy(t, official)
}

// Names returns model names in sorted order.
func (t Table) Names() []string {
	return slices.Sorted(maps.Keys(t))
}
