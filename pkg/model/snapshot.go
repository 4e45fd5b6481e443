package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry pairs a resolved attribute name with its serialized value.
type Entry struct {
	Name  string
	Value any
}

// Snapshot is an ordered name→serialized-value mapping produced on demand.
// Order follows the model's declaration order so repeated snapshots of the
// same model serialize identically.
type Snapshot struct {
	entries []Entry
}

// Len returns the number of entries.
func (s Snapshot) Len() int { return len(s.entries) }

// Names lists entry names in order.
func (s Snapshot) Names() []string {
	names := make([]string, len(s.entries))
	for i, entry := range s.entries {
		names[i] = entry.Name
	}
	return names
}

// Get returns the serialized value for a name.
func (s Snapshot) Get(name string) (any, bool) {
	for _, entry := range s.entries {
		if entry.Name == name {
			return entry.Value, true
		}
	}
	return nil, false
}

// Entries returns a copy of the ordered entries.
func (s Snapshot) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// MarshalJSON renders the snapshot as a JSON object preserving entry order.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("snapshot: marshal name %q: %w", entry.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("snapshot: marshal %q: %w", entry.Name, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
