// Package theme reads utility framework theme configuration.
//
// Theme is a YAML (or JSON) document, either the theme object itself or a
// document with top level "theme" key. Values are looked up by dotted path the
// same way framework plugins do it. Mappings found under "extend" are merged
// over the base ones, any other extend value replaces the base one. Mapping order is preserved: it defines order of
// generated utilities.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	yaml "gopkg.in/yaml.v3"
)

// ErrInvalidInput reports theme values of unexpected shape.
var ErrInvalidInput = errors.New("invalid theme input")

// Well known theme paths.
const (
	PathKeyframes          = "keyframes"
	PathSequence           = "animationSequence.sequence"
	PathSequenceOptions    = "animationSequence.options"
	PathTransitionDuration = "transitionDuration"

	extendKey = "extend"
)

// Theme is a parsed theme configuration.
type Theme struct {
	root *yaml.Node
}

// Load reads theme configuration from file. Files with UTF-16 or UTF-8 BOM
// (often produced by Windows editors) are accepted.
func Load(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("failed to decode theme file '%s': %w", path, err)
	}
	th, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to process theme file '%s': %w", path, err)
	}
	return th, nil
}

// Parse parses theme configuration. Empty input produces empty theme.
func Parse(data []byte) (*Theme, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Theme{}, nil
		}
		return nil, fmt.Errorf("failed to decode theme data: %w", err)
	}

	root := resolve(&doc)
	if root == nil || root.Tag == "!!null" {
		return &Theme{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: theme must be a mapping (line %d)", ErrInvalidInput, root.Line)
	}
	if th := child(root, "theme"); th != nil {
		if th.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: theme must be a mapping (line %d)", ErrInvalidInput, th.Line)
		}
		root = th
	}
	return &Theme{root: root}, nil
}

// Has reports whether value at path is configured (directly or via extend).
func (t *Theme) Has(path string) bool {
	return t.lookup(path) != nil
}

// lookup finds value at dotted path. When both base and extend values are
// mappings the result is base with extend entries merged over it, otherwise
// extend value wins.
func (t *Theme) lookup(path string) *yaml.Node {
	if t == nil || t.root == nil {
		return nil
	}
	base := find(t.root, path)
	ext := find(t.root, extendKey+"."+path)
	switch {
	case ext == nil:
		return base
	case base == nil:
		return ext
	case base.Kind == yaml.MappingNode && ext.Kind == yaml.MappingNode:
		return mergeMappings(base, ext)
	default:
		return ext
	}
}

func find(node *yaml.Node, path string) *yaml.Node {
	for key := range strings.SplitSeq(path, ".") {
		if node = child(node, key); node == nil {
			return nil
		}
	}
	if node.Tag == "!!null" {
		return nil
	}
	return node
}

// child returns value for key in mapping node, nil if absent.
func child(node *yaml.Node, key string) *yaml.Node {
	node = resolve(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	var found *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			// duplicate keys: last one wins
			found = resolve(node.Content[i+1])
		}
	}
	return found
}

// resolve strips document and alias wrappers.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}

// mergeMappings returns new mapping node with entries of ext merged over base.
// Overridden keys keep their base position, new keys are appended.
func mergeMappings(base, ext *yaml.Node) *yaml.Node {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: base.Tag, Line: base.Line, Column: base.Column}
	index := make(map[string]int)
	for _, src := range []*yaml.Node{base, ext} {
		for i := 0; i+1 < len(src.Content); i += 2 {
			k, v := src.Content[i], src.Content[i+1]
			if pos, ok := index[k.Value]; ok {
				out.Content[pos+1] = v
				continue
			}
			index[k.Value] = len(out.Content)
			out.Content = append(out.Content, k, v)
		}
	}
	return out
}

// entries walks mapping entries in order.
func entries(node *yaml.Node, fn func(key, value *yaml.Node)) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		fn(node.Content[i], resolve(node.Content[i+1]))
	}
}
