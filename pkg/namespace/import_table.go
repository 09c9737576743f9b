package namespace

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dghubble/trie"

	"github.com/stackb/phpgen/pkg/collections"
)

var importTrieConfig = &trie.PathTrieConfig{
	Segmenter: nameSegmenter,
}

// importEntry is one alias binding.
type importEntry struct {
	alias string
	name  string
	// explicit is set when a caller registered the binding directly.
	explicit bool
	// virtual is set when a declared type registered itself.
	virtual bool
}

// targetImports are the bindings that share a (folded) target name, in
// registration order.
type targetImports struct {
	entries []*importEntry
}

// importTable holds the bindings of a single Kind.
type importTable struct {
	// byAlias is keyed by the folded alias.
	byAlias map[string]*importEntry
	// targets is keyed by the folded target and holds *targetImports.
	targets *trie.PathTrie
	// sorted is ordered by target name, namespace boundaries first.
	sorted []*importEntry
}

func newImportTable() *importTable {
	return &importTable{
		byAlias: make(map[string]*importEntry),
		targets: trie.NewPathTrieWithConfig(importTrieConfig),
	}
}

// lookup finds the binding for alias.
func (t *importTable) lookup(alias string) (*importEntry, bool) {
	e, ok := t.byAlias[collections.Fold(alias)]
	return e, ok
}

// freeAlias returns base, base2, base3, ... whichever comes first that is
// unused or already bound to name.  Reserved candidates are skipped.
func (t *importTable) freeAlias(base, name string, reserved Keywords) string {
	alias := base
	for counter := 2; ; counter++ {
		if !reserved.Has(alias) {
			used, ok := t.lookup(alias)
			if !ok || collections.EqualFold(used.name, name) {
				return alias
			}
		}
		alias = base + strconv.Itoa(counter)
	}
}

// put binds alias to name.  The caller has already checked that any existing
// binding for alias points to the same name.
func (t *importTable) put(alias, name string, virtual bool) *importEntry {
	if e, ok := t.lookup(alias); ok {
		t.unsort(e)
		e.alias = alias
		e.name = name
		e.explicit = e.explicit || !virtual
		e.virtual = e.virtual || virtual
		t.insertSorted(e)
		return e
	}

	e := &importEntry{alias: alias, name: name, explicit: !virtual, virtual: virtual}
	t.byAlias[collections.Fold(alias)] = e

	key := collections.Fold(name)
	if v := t.targets.Get(key); v != nil {
		target := v.(*targetImports)
		target.entries = append(target.entries, e)
	} else {
		t.targets.Put(key, &targetImports{entries: []*importEntry{e}})
	}
	t.insertSorted(e)
	return e
}

// remove deletes the binding for alias.
func (t *importTable) remove(alias string) bool {
	e, ok := t.lookup(alias)
	if !ok {
		return false
	}
	delete(t.byAlias, collections.Fold(alias))
	t.unsort(e)

	key := collections.Fold(e.name)
	if v := t.targets.Get(key); v != nil {
		target := v.(*targetImports)
		if i := collections.SliceIndexFunc(target.entries, func(x *importEntry) bool { return x == e }); i >= 0 {
			target.entries = collections.SliceRemoveIndex(target.entries, i)
		}
		if len(target.entries) == 0 {
			t.targets.Delete(key)
		}
	}
	return true
}

// exact returns the earliest binding whose target equals name.
func (t *importTable) exact(name string) (*importEntry, bool) {
	v := t.targets.Get(collections.Fold(name))
	if v == nil {
		return nil, false
	}
	target := v.(*targetImports)
	if len(target.entries) == 0 {
		return nil, false
	}
	return target.entries[0], true
}

// walkPrefixes calls fn for every binding whose target is name or a
// segment-aligned prefix of name, shallowest target first.  prefixLen is the
// byte length of the matched target within name.
func (t *importTable) walkPrefixes(name string, fn func(prefixLen int, e *importEntry)) {
	t.targets.WalkPath(collections.Fold(name), func(key string, value interface{}) error {
		for _, e := range value.(*targetImports).entries {
			fn(len(key), e)
		}
		return nil
	})
}

func (t *importTable) insertSorted(e *importEntry) {
	key := sortKey(e.name)
	i := sort.Search(len(t.sorted), func(i int) bool {
		return sortKey(t.sorted[i].name) > key
	})
	t.sorted = collections.SliceInsertAt(t.sorted, i, e)
}

func (t *importTable) unsort(e *importEntry) {
	if i := collections.SliceIndexFunc(t.sorted, func(x *importEntry) bool { return x == e }); i >= 0 {
		t.sorted = collections.SliceRemoveIndex(t.sorted, i)
	}
}

// sortKey orders names so that a namespace boundary sorts before any
// identifier character: `A\B\C` < `A\BC`.
func sortKey(name string) string {
	return strings.ReplaceAll(name, Separator, " ")
}

// nameSegmenter segments folded names on the namespace separator.  For
// example, `a\b\c` -> ("a", 1), (`\b`, 3), (`\c`, -1) in successive calls.
// It does not allocate any heap memory.
func nameSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexByte(path[start+1:], '\\') // next separator after the 0th byte
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
