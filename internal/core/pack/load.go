package pack

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ErrNoPacks is returned when a source yields no packs at all.
var ErrNoPacks = errors.New("no packs found")

// packFile is the top-level document: either a bare list of packs or a
// mapping with a "packs" key.
type packFile struct {
	Packs []Pack
}

func (f *packFile) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		return node.Decode(&f.Packs)
	case yaml.MappingNode:
		var wrapped struct {
			Packs []Pack `yaml:"packs"`
		}
		if err := node.Decode(&wrapped); err != nil {
			return err
		}
		f.Packs = wrapped.Packs
		return nil
	default:
		return fmt.Errorf("line %d: expected a list of packs", node.Line)
	}
}

// Decode reads packs from YAML or JSON.
func Decode(r io.Reader) ([]Pack, error) {
	var f packFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPacks
		}
		return nil, fmt.Errorf("decode packs: %w", err)
	}
	if len(f.Packs) == 0 {
		return nil, ErrNoPacks
	}
	return f.Packs, nil
}

// LoadFile reads packs from a single file.
func LoadFile(path string) ([]Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open packs file: %w", err)
	}
	defer func() { _ = f.Close() }()

	packs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return packs, nil
}

// LoadGlob expands a doublestar pattern (e.g. "out/**/*.yaml") and
// concatenates the packs of every match. Files are read in lexical path
// order so the resulting pack order is stable between runs. The matched
// paths are returned alongside the packs.
func LoadGlob(pattern string) ([]Pack, []string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, nil, fmt.Errorf("expand %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%w: pattern %q matched no files", ErrNoPacks, pattern)
	}
	slices.Sort(matches)

	var all []Pack
	for _, path := range matches {
		packs, err := LoadFile(path)
		if errors.Is(err, ErrNoPacks) {
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		all = append(all, packs...)
	}

	if len(all) == 0 {
		return nil, matches, ErrNoPacks
	}
	return all, matches, nil
}
