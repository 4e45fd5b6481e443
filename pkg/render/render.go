// Package render produces an HTML debug view of model snapshots. It is an
// inspection aid for the producing side; the real consumer receives the JSON
// external form instead.
package render

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-props/pkg/model"
)

const snapshotTemplate = `<section class="props-snapshot">
  <h2>{{ title }}</h2>
  <table>
    <thead>
      <tr><th>attribute</th><th>value</th></tr>
    </thead>
    <tbody>
      {% for row in rows %}
      <tr><td>{{ row.name }}</td><td><code>{{ row.value|safe }}</code></td></tr>
      {% endfor %}
    </tbody>
  </table>
</section>
`

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// Renderer renders snapshots through a compiled template.
type Renderer struct {
	tmpl *pongo2.Template
}

// New compiles the snapshot template.
func New() (*Renderer, error) {
	set := pongo2.NewSet("props", pongo2.MustNewLocalFileSystemLoader(""))
	tmpl, err := set.FromString(snapshotTemplate)
	if err != nil {
		return nil, fmt.Errorf("render: parse template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Snapshot renders the snapshot as an HTML table. Serialized values are
// JSON-encoded and sanitized before injection, so string attributes carrying
// markup cannot break the page.
func (r *Renderer) Snapshot(title string, snap model.Snapshot) (string, error) {
	rows := make([]map[string]any, 0, snap.Len())
	for _, entry := range snap.Entries() {
		payload, err := json.Marshal(entry.Value)
		if err != nil {
			return "", fmt.Errorf("render: encode %q: %w", entry.Name, err)
		}
		rows = append(rows, map[string]any{
			"name":  entry.Name,
			"value": sanitizer().Sanitize(string(payload)),
		})
	}

	out, err := r.tmpl.Execute(pongo2.Context{
		"title": title,
		"rows":  rows,
	})
	if err != nil {
		return "", fmt.Errorf("render: execute template: %w", err)
	}
	return out, nil
}

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}
