package engine

import (
	"github.com/emirpasic/gods/maps/treemap"
)

type ruleKey struct {
	order int
	name  string
}

// Keys order by precedence first; the rule name breaks ties, so that
// matching among equal-order rules is deterministic.
func compareRuleKeys(a, b interface{}) int {
	ka, kb := a.(ruleKey), b.(ruleKey)
	if ka.order != kb.order {
		return ka.order - kb.order
	}
	switch {
	case ka.name < kb.name:
		return -1
	case ka.name > kb.name:
		return 1
	}
	return 0
}

type tableEntry struct {
	name string
	rule *Rule
}

// Table is an ordered, read-only collection of named rules. It drives
// both the matching order during parsing and the renderer lookup during
// output. Build it up with Add, then treat it as frozen.
type Table struct {
	byName map[string]*Rule
	sorted *treemap.Map // ruleKey -> *Rule
}

// NewTable returns an empty rule table.
func NewTable() *Table {
	return &Table{
		byName: make(map[string]*Rule),
		sorted: treemap.NewWith(compareRuleKeys),
	}
}

// Add registers rule under name, replacing any previous registration of
// the same name.
func (t *Table) Add(name string, rule *Rule) *Table {
	if old, ok := t.byName[name]; ok {
		t.sorted.Remove(ruleKey{order: old.Order, name: name})
	}
	t.byName[name] = rule
	t.sorted.Put(ruleKey{order: rule.Order, name: name}, rule)
	return t
}

// Extend returns a new table containing the receiver's rules plus the
// given additions; the receiver is left untouched.
func (t *Table) Extend(names []string, rules []*Rule) *Table {
	ext := NewTable()
	it := t.sorted.Iterator()
	for it.Next() {
		key := it.Key().(ruleKey)
		ext.Add(key.name, it.Value().(*Rule))
	}
	for i, name := range names {
		ext.Add(name, rules[i])
	}
	return ext
}

// Rule looks up a rule by name.
func (t *Table) Rule(name string) (*Rule, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// entries snapshots the rules in precedence order.
func (t *Table) entries() []tableEntry {
	list := make([]tableEntry, 0, t.sorted.Size())
	it := t.sorted.Iterator()
	for it.Next() {
		key := it.Key().(ruleKey)
		list = append(list, tableEntry{name: key.name, rule: it.Value().(*Rule)})
	}
	return list
}
