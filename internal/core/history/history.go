// Package history holds the historical override table: Hebrew dates whose Gregorian equivalent is
// fixed by tradition and must never be recomputed
// A Table is built once and is read-only afterwards; it is safe for concurrent lookups
package history

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"hebdate/internal/core/calendar"
	perr "hebdate/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

//go:embed overrides.yaml
var embedded []byte

// Key builds the composite lookup key {year}-{label}-{day}
func Key(year int, monthLabel string, day int) string {
	return strconv.Itoa(year) + "-" + monthLabel + "-" + strconv.Itoa(day)
}

// Entry is one override record
// Hebrew and GregorianText are reported verbatim; Gregorian is the parsed form of GregorianText
type Entry struct {
	Year          int
	Month         string
	Day           int
	Hebrew        string
	GregorianText string
	Gregorian     calendar.Gregorian
}

// Key is the entry's lookup key
func (e Entry) Key() string { return Key(e.Year, e.Month, e.Day) }

// NewEntry validates and assembles a record
func NewEntry(year int, month string, day int, hebrew, gregorian string) (Entry, error) {
	month = strings.TrimSpace(month)
	if year < 1 || day < 1 || month == "" {
		return Entry{}, perr.InvalidArgf("override %s is incomplete", Key(year, month, day))
	}
	if strings.TrimSpace(hebrew) == "" {
		return Entry{}, perr.InvalidArgf("override %s has no hebrew text", Key(year, month, day))
	}
	g, err := calendar.ParseGregorian(gregorian)
	if err != nil {
		return Entry{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "override %s", Key(year, month, day))
	}
	return Entry{Year: year, Month: month, Day: day, Hebrew: hebrew, GregorianText: gregorian, Gregorian: g}, nil
}

// ParseKey splits a key back into its parts
func ParseKey(key string) (year int, month string, day int, err error) {
	first := strings.Index(key, "-")
	last := strings.LastIndex(key, "-")
	if first <= 0 || last <= first+1 || last == len(key)-1 {
		return 0, "", 0, perr.InvalidArgf("override key %q is not year-month-day", key)
	}
	year, yerr := strconv.Atoi(key[:first])
	day, derr := strconv.Atoi(key[last+1:])
	if yerr != nil || derr != nil {
		return 0, "", 0, perr.InvalidArgf("override key %q is not year-month-day", key)
	}
	return year, key[first+1 : last], day, nil
}

// Table is an arena of entries with an exact key index; there is no mutation path after Build
type Table struct {
	entries []Entry
	index   map[string]int
}

// Build indexes entries; duplicate keys are rejected
func Build(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		k := e.Key()
		if _, dup := t.index[k]; dup {
			return nil, perr.InvalidArgf("duplicate override %s", k)
		}
		t.index[k] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// Supplement returns a new table holding t's entries plus the extra ones
// Keys already present in t win; the skipped keys are returned so callers can log them
func (t *Table) Supplement(extra []Entry) (*Table, []string) {
	all := t.Entries()
	seen := make(map[string]struct{}, len(all)+len(extra))
	for _, e := range all {
		seen[e.Key()] = struct{}{}
	}
	var skipped []string
	for _, e := range extra {
		k := e.Key()
		if _, dup := seen[k]; dup {
			skipped = append(skipped, k)
			continue
		}
		seen[k] = struct{}{}
		all = append(all, e)
	}
	out, _ := Build(all) // keys are unique by construction
	return out, skipped
}

// Lookup finds an entry by exact key
func (t *Table) Lookup(key string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	i, ok := t.index[key]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Len is the number of entries
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy in insertion order
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

type yamlFile struct {
	Overrides []struct {
		Key       string `yaml:"key"`
		Hebrew    string `yaml:"hebrew"`
		Gregorian string `yaml:"gregorian"`
	} `yaml:"overrides"`
}

// Decode reads the YAML override document
func Decode(doc []byte) ([]Entry, error) {
	var f yamlFile
	if err := yaml.Unmarshal(doc, &f); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "override document")
	}
	out := make([]Entry, 0, len(f.Overrides))
	for i, o := range f.Overrides {
		y, m, d, err := ParseKey(o.Key)
		if err != nil {
			return nil, perr.WithField(err, fmt.Sprintf("overrides[%d].key", i))
		}
		e, err := NewEntry(y, m, d, o.Hebrew, o.Gregorian)
		if err != nil {
			return nil, perr.WithField(err, fmt.Sprintf("overrides[%d]", i))
		}
		out = append(out, e)
	}
	return out, nil
}

// Default is the table compiled into the binary
func Default() (*Table, error) {
	entries, err := Decode(embedded)
	if err != nil {
		return nil, err
	}
	return Build(entries)
}

// MustDefault is Default for process start; a broken embedded table is a build defect
func MustDefault() *Table {
	t, err := Default()
	if err != nil {
		panic(fmt.Sprintf("history: embedded overrides: %v", err))
	}
	return t
}
