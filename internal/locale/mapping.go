// Package locale models flat JSON locale files as ordered key/value
// mappings.
//
// Values are kept as raw JSON so that whatever a translator stored (a string,
// a number, a nested object) survives a rewrite unchanged. Only the key order
// and the key set are ever altered.
package locale

import (
	"sort"

	"github.com/tidwall/gjson"

	apperrors "github.com/louisbranch/localesync/internal/platform/errors"
)

// emptyValue is written for keys that a target mapping does not define.
var emptyValue = []byte(`""`)

// Entry is one top-level member of a locale file.
type Entry struct {
	// Key is the decoded member name.
	Key string
	// RawKey is the quoted member name as it appeared in the file.
	RawKey []byte
	// Value is the raw JSON value.
	Value []byte
}

// Key names one position of a KeyList.
type Key struct {
	Name string
	Raw  []byte
}

// KeyList is the ordered key sequence of a source mapping. It is computed once
// per run and must be treated as read-only.
type KeyList []Key

// Names returns the decoded key names in order.
func (l KeyList) Names() []string {
	names := make([]string, len(l))
	for i, key := range l {
		names[i] = key.Name
	}
	return names
}

// Mapping is an ordered set of unique keys with raw JSON values.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

func newMapping(size int) *Mapping {
	return &Mapping{
		entries: make([]Entry, 0, size),
		index:   make(map[string]int, size),
	}
}

// Parse reads a locale file. The content must be a JSON object; anything else
// fails with a parse-coded error. When a key repeats, the last value wins and
// the key keeps its first position.
func Parse(data []byte) (*Mapping, error) {
	if !gjson.ValidBytes(data) {
		return nil, apperrors.New(apperrors.CodeParse, "invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, apperrors.New(apperrors.CodeParse, "top-level value is not a JSON object")
	}

	m := newMapping(8)
	root.ForEach(func(key, value gjson.Result) bool {
		m.set(key.Str, []byte(key.Raw), []byte(value.Raw))
		return true
	})
	return m, nil
}

func (m *Mapping) set(key string, rawKey, value []byte) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, RawKey: rawKey, Value: value})
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.entries)
}

// Keys returns the key names in mapping order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, entry := range m.entries {
		keys[i] = entry.Key
	}
	return keys
}

// Get returns the raw JSON value stored under key.
func (m *Mapping) Get(key string) ([]byte, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Entries returns a copy of the entries in mapping order.
func (m *Mapping) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Sorted returns a copy of m with its keys in ascending byte order together
// with the resulting key list.
func (m *Mapping) Sorted() (*Mapping, KeyList) {
	entries := m.Entries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	sorted := newMapping(len(entries))
	keys := make(KeyList, 0, len(entries))
	for _, entry := range entries {
		sorted.set(entry.Key, entry.RawKey, entry.Value)
		keys = append(keys, Key{Name: entry.Key, Raw: entry.RawKey})
	}
	return sorted, keys
}

// Reconcile builds a mapping with exactly the keys of keys, in that order.
// Values present in target are copied as-is; missing keys get an empty
// string. Keys of target that are not in keys are dropped.
func Reconcile(target *Mapping, keys KeyList) *Mapping {
	out := newMapping(len(keys))
	for _, key := range keys {
		value := emptyValue
		if target != nil {
			if existing, ok := target.Get(key.Name); ok {
				value = existing
			}
		}
		out.set(key.Name, key.Raw, value)
	}
	return out
}
