// Package pack defines the already-computed packs handed to the review
// screen and the pile type shared with persisted settings.
package pack

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one pile-name/count pair in a pack.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Count uint   `json:"count" yaml:"count"`
}

// Pack is an ordered collection of pile entries. It is a value type: copies
// share nothing once cloned, and the review screen never mutates one.
type Pack struct {
	entries []Entry
}

// New builds a pack from entries in the given order.
func New(entries ...Entry) Pack {
	return Pack{entries: slices.Clone(entries)}
}

// Entries returns a copy of the entries in their original order.
func (p Pack) Entries() []Entry {
	return slices.Clone(p.entries)
}

// Sorted returns a copy of the entries ordered by pile name.
func (p Pack) Sorted() []Entry {
	out := slices.Clone(p.entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Len returns the number of piles in the pack.
func (p Pack) Len() int {
	return len(p.entries)
}

// Total returns the number of cards across all piles.
func (p Pack) Total() uint {
	var total uint
	for _, e := range p.entries {
		total += e.Count
	}
	return total
}

// Equal reports whether both packs hold the same entries in the same order.
func (p Pack) Equal(other Pack) bool {
	return slices.Equal(p.entries, other.entries)
}

// UnmarshalYAML accepts either a mapping of pile name to count, the same
// mapping nested under "card_sources", or a sequence of {name, count}.
// Mapping order is preserved. JSON input decodes through the same path.
func (p *Pack) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		if len(node.Content) == 2 && node.Content[0].Value == "card_sources" {
			return p.UnmarshalYAML(node.Content[1])
		}
		return p.decodeMapping(node)
	case yaml.SequenceNode:
		var entries []Entry
		if err := node.Decode(&entries); err != nil {
			return fmt.Errorf("line %d: decode pack entries: %w", node.Line, err)
		}
		return p.setEntries(entries, node.Line)
	default:
		return fmt.Errorf("line %d: pack must be a mapping or a list", node.Line)
	}
}

func (p *Pack) decodeMapping(node *yaml.Node) error {
	entries := make([]Entry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		var count int64
		if err := val.Decode(&count); err != nil {
			return fmt.Errorf("line %d: pile %q: count must be an integer", val.Line, key.Value)
		}
		if count < 0 {
			return fmt.Errorf("line %d: pile %q: count cannot be negative", val.Line, key.Value)
		}
		entries = append(entries, Entry{Name: key.Value, Count: uint(count)})
	}
	return p.setEntries(entries, node.Line)
}

func (p *Pack) setEntries(entries []Entry, line int) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("line %d: pile name cannot be empty", line)
		}
		if seen[e.Name] {
			return fmt.Errorf("line %d: duplicate pile %q", line, e.Name)
		}
		seen[e.Name] = true
	}
	p.entries = entries
	return nil
}

// MarshalYAML writes the pack as a name-to-count mapping in entry order.
func (p Pack) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range p.entries {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(e.Count)},
		)
	}
	return node, nil
}

// Pile is a named category of cards tracked in persisted settings.
type Pile struct {
	Cards uint   `json:"cards" yaml:"cards"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}
