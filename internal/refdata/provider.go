// Package refdata serves the read-only lookup lists (destinations, countries,
// vehicle and transfer types, monuments, activities) that master records
// reference by id.
package refdata

import (
	"fmt"
	"sort"

	"github.com/dmitrijs2005/tripdesk/internal/crud"
)

// List names.
const (
	Destinations  = "destinations"
	Countries     = "countries"
	VehicleTypes  = "vehicle-types"
	TransferTypes = "transfer-types"
	Monuments     = "monuments"
	Activities    = "activities"
)

// Entry is one reference item. Parent links monuments and activities to
// their destination; it is empty for top-level lists.
type Entry struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Parent string `yaml:"parent"`
}

var _ crud.Lookup = (*Provider)(nil)

// Provider holds the reference lists. It is immutable after construction.
type Provider struct {
	lists map[string][]Entry
	index map[string]map[string]Entry
}

// New builds a Provider from list name → entries. Entries are copied. A
// duplicate id within a list is an error.
func New(lists map[string][]Entry) (*Provider, error) {
	p := &Provider{
		lists: make(map[string][]Entry, len(lists)),
		index: make(map[string]map[string]Entry, len(lists)),
	}
	for name, entries := range lists {
		idx := make(map[string]Entry, len(entries))
		for _, e := range entries {
			if _, dup := idx[e.ID]; dup {
				return nil, fmt.Errorf("reference list %s: duplicate id %q", name, e.ID)
			}
			idx[e.ID] = e
		}
		p.lists[name] = append([]Entry(nil), entries...)
		p.index[name] = idx
	}
	return p, nil
}

// Lookup returns the display name of id in list. A nil Provider knows no
// entries.
func (p *Provider) Lookup(list, id string) (string, bool) {
	if p == nil {
		return "", false
	}
	e, ok := p.index[list][id]
	if !ok {
		return "", false
	}
	return e.Name, true
}

// Options returns every entry of list as selectable options, in list order.
func (p *Provider) Options(list string) []crud.Option {
	if p == nil {
		return nil
	}
	return toOptions(p.lists[list], func(Entry) bool { return true })
}

// OptionsFor returns the entries of list whose parent is parent.
func (p *Provider) OptionsFor(list, parent string) []crud.Option {
	if p == nil {
		return nil
	}
	return toOptions(p.lists[list], func(e Entry) bool { return e.Parent == parent })
}

// Names returns the list names known to the provider, sorted.
func (p *Provider) Names() []string {
	names := make([]string, 0, len(p.lists))
	for n := range p.lists {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func toOptions(entries []Entry, keep func(Entry) bool) []crud.Option {
	out := make([]crud.Option, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			out = append(out, crud.Option{ID: e.ID, Name: e.Name})
		}
	}
	return out
}
