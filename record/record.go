package record

import (
	"fmt"
	"unicode/utf8"
)

// MaxNameLen is the longest name a Record can carry, in bytes.
const MaxNameLen = 499

// Record is the sortable unit: an identifier plus a name.
// Records are ordered by ID only.
type Record struct {
	ID   int32
	Name string
}

// New builds a Record, truncating name to MaxNameLen bytes.
func New(id int32, name string) Record {
	return Record{ID: id, Name: TruncateName(name)}
}

// TruncateName cuts s down to at most MaxNameLen bytes without splitting a rune.
func TruncateName(s string) string {
	if len(s) <= MaxNameLen {
		return s
	}
	cut := MaxNameLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Less reports whether r orders before o.
func (r Record) Less(o Record) bool {
	return r.ID < o.ID
}

func (r Record) String() string {
	return fmt.Sprintf("%d %s", r.ID, r.Name)
}
