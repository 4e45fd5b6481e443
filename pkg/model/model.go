package model

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-props/pkg/attr"
)

// Model owns a fixed set of named attribute containers and produces
// snapshots of their state. Models are not safe for concurrent mutation;
// callers impose one writer at a time per instance, and snapshot reads must
// not race with writes.
type Model struct {
	typeName string
	names    []string
	attrs    map[string]attr.Attribute
}

// Builder collects attribute declarations for an ad hoc model. Errors are
// deferred to Build so declarations chain.
type Builder struct {
	typeName string
	names    []string
	attrs    map[string]attr.Attribute
	err      error
}

// New starts a model builder for the given type name.
func New(typeName string) *Builder {
	return &Builder{
		typeName: typeName,
		attrs:    make(map[string]attr.Attribute),
	}
}

// Attr declares an attribute under the given identifier. An explicit name
// carried by the attribute itself (attr.WithName) overrides the identifier.
func (b *Builder) Attr(name string, attribute attr.Attribute) *Builder {
	if b.err != nil {
		return b
	}
	if attribute == nil {
		b.err = fmt.Errorf("model %s: attribute %q is nil", b.typeName, name)
		return b
	}
	resolved := resolveName(name, attribute)
	if resolved == "" {
		b.err = fmt.Errorf("model %s: attribute declared without a name", b.typeName)
		return b
	}
	if _, exists := b.attrs[resolved]; exists {
		b.err = fmt.Errorf("model %s: duplicate attribute %q", b.typeName, resolved)
		return b
	}
	b.names = append(b.names, resolved)
	b.attrs[resolved] = attribute
	return b
}

// Build finalizes the declaration set. The returned model's attribute set is
// fixed for its lifetime.
func (b *Builder) Build() (*Model, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.typeName == "" {
		return nil, fmt.Errorf("model: type name is required")
	}
	names := append([]string(nil), b.names...)
	attrs := make(map[string]attr.Attribute, len(b.attrs))
	for name, attribute := range b.attrs {
		attrs[name] = attribute
	}
	return &Model{typeName: b.typeName, names: names, attrs: attrs}, nil
}

// Type returns the model's type name.
func (m *Model) Type() string { return m.typeName }

// Names lists resolved attribute names in declaration order.
func (m *Model) Names() []string {
	return append([]string(nil), m.names...)
}

// Attribute looks up an attribute by resolved name.
func (m *Model) Attribute(name string) (attr.Attribute, bool) {
	attribute, ok := m.attrs[name]
	return attribute, ok
}

// FullSnapshot returns every attribute holding a literal or a reference, in
// declaration order. Attributes with neither are omitted entirely.
func (m *Model) FullSnapshot() Snapshot {
	return m.snapshot(false)
}

// DirtySnapshot restricts FullSnapshot to attributes mutated since
// construction. Taking a snapshot does not clear dirty bits; the consuming
// context decides when a model counts as clean again.
func (m *Model) DirtySnapshot() Snapshot {
	return m.snapshot(true)
}

// ExternalForm renders the full snapshot as a JSON object keyed by
// attribute name.
func (m *Model) ExternalForm() ([]byte, error) {
	payload, err := json.Marshal(m.FullSnapshot())
	if err != nil {
		return nil, fmt.Errorf("model %s: external form: %w", m.typeName, err)
	}
	return payload, nil
}

func (m *Model) snapshot(dirtyOnly bool) Snapshot {
	var entries []Entry
	for _, name := range m.names {
		attribute := m.attrs[name]
		if dirtyOnly && !attribute.Dirty() {
			continue
		}
		value, ok := attribute.SerializeValue()
		if !ok {
			continue
		}
		entries = append(entries, Entry{Name: name, Value: value})
	}
	return Snapshot{entries: entries}
}

func resolveName(declared string, attribute attr.Attribute) string {
	if explicit := attribute.ExternalName(); explicit != "" {
		return explicit
	}
	return declared
}
