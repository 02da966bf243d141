// Package seedpack loads the embedded seeds.json of fallback lookup
// lists. The lookups service serves these when the database has no
// rows for a list yet
package seedpack

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed seeds.json
var embedded []byte

// Option is one selectable entry in a lookup list
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type rawPackV1 struct {
	Version int                 `json:"version"`
	Meta    map[string]any      `json:"meta"`
	Lists   map[string][]Option `json:"lists"`
}

// Pack holds the validated seed lists keyed by list name
type Pack struct {
	Version int
	Meta    map[string]any
	Lists   map[string][]Option
}

// Load returns the compiled pack from the embedded seeds.json
func Load() (*Pack, error) {
	var rp rawPackV1
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("seedpack: parse seeds.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("seedpack: unsupported seeds.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version: rp.Version,
		Meta:    rp.Meta,
		Lists:   make(map[string][]Option, len(rp.Lists)),
	}

	for name, opts := range rp.Lists {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		seen := make(map[string]struct{}, len(opts))
		acc := make([]Option, 0, len(opts))
		for _, o := range opts {
			v := strings.ToLower(strings.TrimSpace(o.Value))
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			label := strings.TrimSpace(o.Label)
			if label == "" {
				label = o.Value
			}
			acc = append(acc, Option{Value: v, Label: label})
		}
		if len(acc) == 0 {
			return nil, fmt.Errorf("seedpack: list %q has no usable entries", name)
		}
		// Deterministic iteration for tests/debug
		sort.Slice(acc, func(i, j int) bool { return acc[i].Value < acc[j].Value })
		p.Lists[name] = acc
	}

	return p, nil
}

// Names returns the sorted list names
func (p *Pack) Names() []string {
	out := make([]string, 0, len(p.Lists))
	for name := range p.Lists {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// List returns the named seed list, or nil when unknown
func (p *Pack) List(name string) []Option {
	return p.Lists[strings.ToLower(strings.TrimSpace(name))]
}
