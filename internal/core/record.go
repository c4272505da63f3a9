package core

// Record is one spreadsheet row exactly as the row source delivered it.
// Keys keep their original column order; values are raw cell text.
//
// Records never leave this package's normalization boundary: views carry
// typed values only.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord returns an empty record with room for n columns.
func NewRecord(n int) Record {
	return Record{
		keys:   make([]string, 0, n),
		values: make(map[string]string, n),
	}
}

// RecordOf builds a record from alternating key, value pairs.
// A trailing key without a value is stored as empty.
func RecordOf(pairs ...string) Record {
	r := NewRecord(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		v := ""
		if i+1 < len(pairs) {
			v = pairs[i+1]
		}
		r.Set(pairs[i], v)
	}
	return r
}

// Set stores value under key. Re-setting an existing key keeps its position.
func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Keys returns the column names in source order.
func (r Record) Keys() []string {
	return r.keys
}

// Len returns the number of columns.
func (r Record) Len() int {
	return len(r.keys)
}

// Lookup returns the value stored under the exact key.
func (r Record) Lookup(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Get returns the value stored under the exact key, or "" if absent.
func (r Record) Get(key string) string {
	return r.values[key]
}

// First returns the first non-empty value among the given header spellings.
// Aliases are checked in order, so the first one present wins.
func (r Record) First(aliases Aliases) string {
	for _, key := range aliases {
		if v := r.values[key]; v != "" {
			return v
		}
	}
	return ""
}

// Aliases lists accepted header spellings for one logical field,
// most current spelling first.
type Aliases []string
