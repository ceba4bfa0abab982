// Package treefile reads and writes Tree[string] snapshots as YAML.
//
// Each node is a mapping with an item and an optional children list. Empty
// slots left behind by deletes are written as null entries so paths keep
// their meaning across a save and load:
//
//	item: root
//	children:
//	  - item: a
//	  - null
//	  - item: c
//	    children:
//	      - item: d
package treefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/sapling"
)

// ErrEmptyDocument is returned when a snapshot has no content at all.
var ErrEmptyDocument = errors.New("treefile: empty document")

type node struct {
	Item     string  `yaml:"item"`
	Children []*node `yaml:"children,omitempty"`
}

// Marshal encodes t. A wholly Empty tree encodes as null.
func Marshal(t sapling.Tree[string]) ([]byte, error) {
	data, err := yaml.Marshal(toNode(t))
	if err != nil {
		return nil, fmt.Errorf("treefile: encode: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a snapshot written by Marshal.
func Unmarshal(data []byte) (sapling.Tree[string], error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return sapling.Empty[string](), ErrEmptyDocument
	}
	var root *node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return sapling.Empty[string](), fmt.Errorf("treefile: decode: %w", err)
	}
	return fromNode(root), nil
}

// Load reads the snapshot at path.
func Load(path string) (sapling.Tree[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sapling.Empty[string](), fmt.Errorf("treefile: read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// Save writes t to path, replacing any existing file.
func Save(path string, t sapling.Tree[string]) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("treefile: write %s: %w", path, err)
	}
	return nil
}

func toNode(t sapling.Tree[string]) *node {
	item, ok := t.Item()
	if !ok {
		return nil
	}
	n := &node{Item: item}
	for _, c := range t.Children() {
		n.Children = append(n.Children, toNode(c))
	}
	return n
}

func fromNode(n *node) sapling.Tree[string] {
	if n == nil {
		return sapling.Empty[string]()
	}
	children := make([]sapling.Tree[string], len(n.Children))
	for i, c := range n.Children {
		children[i] = fromNode(c)
	}
	return sapling.NewNode(n.Item, children...)
}
