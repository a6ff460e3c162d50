// SPDX-License-Identifier: MIT

package site

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the sidebar as an ordered mapping prefix -> groups.
func (s Sidebar) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, sec := range s {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: sec.Prefix}
		val := &yaml.Node{}
		groups := sec.Groups
		if groups == nil {
			groups = []SidebarGroup{}
		}
		if err := val.Encode(groups); err != nil {
			return nil, fmt.Errorf("encode sidebar %q: %w", sec.Prefix, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// MarshalJSON renders the sidebar as a JSON object whose keys keep
// declaration order.
func (s Sidebar) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sec := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sec.Prefix)
		if err != nil {
			return nil, err
		}
		groups := sec.Groups
		if groups == nil {
			groups = []SidebarGroup{}
		}
		val, err := json.Marshal(groups)
		if err != nil {
			return nil, fmt.Errorf("encode sidebar %q: %w", sec.Prefix, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the tag as the pair [name, {attrs}].
func (h HeadTag) MarshalYAML() (any, error) {
	return h.pair(), nil
}

// MarshalJSON renders the tag as the pair [name, {attrs}].
func (h HeadTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.pair())
}

func (h HeadTag) pair() []any {
	attrs := h.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	return []any{h.Name, attrs}
}

// MarshalYAML renders a bare name, or [name, {options}] when options are set.
func (p Plugin) MarshalYAML() (any, error) {
	return p.wire(), nil
}

// MarshalJSON renders a bare name, or [name, {options}] when options are set.
func (p Plugin) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.wire())
}

func (p Plugin) wire() any {
	if p.Options == nil {
		return p.Name
	}
	return []any{p.Name, p.Options}
}
