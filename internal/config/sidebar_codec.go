// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML walks the mapping node directly; decoding into a Go map
// would reject duplicate keys before Resolve sees them and lose order.
func (s *SidebarFileConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(SidebarFileConfig, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := resolveAlias(node.Content[i]), node.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: sidebar key must be a string", key.Line)
			}
			var groups []SidebarFileGroup
			if err := decodeNodeStrict(val, &groups); err != nil {
				return fmt.Errorf("sidebar %q: %w", key.Value, err)
			}
			out = append(out, SidebarFileSection{Prefix: key.Value, Groups: groups})
		}
		*s = out
		return nil
	case yaml.SequenceNode:
		var sections []SidebarFileSection
		if err := decodeNodeStrict(node, &sections); err != nil {
			return fmt.Errorf("sidebar: %w", err)
		}
		*s = sections
		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*s = nil
			return nil
		}
	}
	return fmt.Errorf("line %d: sidebar must be a mapping of prefix to groups", node.Line)
}

// decodeNodeStrict decodes a subtree with unknown-field checking. Node.Decode
// does not inherit KnownFields from the outer decoder, so the subtree is
// re-encoded and decoded by a strict decoder. Aliases are expanded first
// because their anchors may live outside the subtree.
func decodeNodeStrict(node *yaml.Node, out any) error {
	raw, err := yaml.Marshal(expandAliases(node))
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// expandAliases returns a copy of node with every alias replaced by its
// target and anchors dropped. The parser rejects self-referencing anchors,
// so the walk terminates.
func expandAliases(node *yaml.Node) *yaml.Node {
	node = resolveAlias(node)
	cp := *node
	cp.Anchor = ""
	if len(node.Content) > 0 {
		cp.Content = make([]*yaml.Node, len(node.Content))
		for i, child := range node.Content {
			cp.Content[i] = expandAliases(child)
		}
	}
	return &cp
}

// UnmarshalJSON reads the object token by token to keep key order and
// duplicate keys.
func (s *SidebarFileConfig) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if data[0] == '[' {
		var sections []SidebarFileSection
		if err := dec.Decode(&sections); err != nil {
			return fmt.Errorf("sidebar: %w", err)
		}
		*s = sections
		return nil
	}

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("sidebar: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("sidebar must be an object of prefix to groups")
	}

	out := make(SidebarFileConfig, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("sidebar: %w", err)
		}
		prefix, ok := tok.(string)
		if !ok {
			return fmt.Errorf("sidebar key must be a string")
		}
		var groups []SidebarFileGroup
		if err := dec.Decode(&groups); err != nil {
			return fmt.Errorf("sidebar %q: %w", prefix, err)
		}
		out = append(out, SidebarFileSection{Prefix: prefix, Groups: groups})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("sidebar: %w", err)
	}
	*s = out
	return nil
}
