// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ManuGH/sitecfg/internal/site"
	"github.com/ManuGH/sitecfg/internal/validate"
)

// Resolve turns a declarative FileConfig into a validated site.Config with
// every omitted optional field defaulted. It performs no I/O and keeps no
// state: equal inputs always produce equal outputs, and the output shares no
// maps or slices with the input.
//
// All problems are collected before returning. On failure the returned
// config is the zero value and the error is a validate.ValidationError whose
// entries unwrap to the Err* sentinels of this package.
func Resolve(in FileConfig) (site.Config, error) {
	v := validate.New()

	out := site.Config{
		Title:       in.Title,
		Description: in.Description,
		Base:        DefaultBase,
	}
	if in.Base != nil {
		out.Base = *in.Base
	}
	v.BasePath(ErrInvalidBase, "base", out.Base)

	out.Head = resolveHead(v, in.Head)
	out.Theme = resolveTheme(v, in.ThemeConfig)
	out.Plugins = resolvePlugins(v, in.Plugins)

	if err := v.Err(); err != nil {
		return site.Config{}, err
	}
	return out, nil
}

func resolveHead(v *validate.Validator, entries []any) []site.HeadTag {
	out := make([]site.HeadTag, 0, len(entries))
	for i, raw := range entries {
		field := fmt.Sprintf("head[%d]", i)

		pair, ok := asList(raw)
		if !ok || len(pair) == 0 || len(pair) > 2 {
			v.Fail(ErrInvalidHeadTag, field, "head tag must be [name, {attributes}]", raw)
			continue
		}
		name, ok := pair[0].(string)
		if !ok || name == "" {
			v.Fail(ErrInvalidHeadTag, field, "head tag name must be a non-empty string", pair[0])
			continue
		}

		tag := site.HeadTag{Name: name, Attrs: map[string]string{}}
		if len(pair) == 2 {
			attrs, ok := asMap(pair[1])
			if !ok {
				v.Fail(ErrInvalidHeadTag, field, "head tag attributes must be a mapping", pair[1])
				continue
			}
			valid := true
			for _, k := range slices.Sorted(maps.Keys(attrs)) {
				a := attrs[k]
				s, ok := scalarString(a)
				if !ok {
					v.Fail(ErrInvalidHeadTag, field+"."+k, "attribute value must be a scalar", a)
					valid = false
					continue
				}
				tag.Attrs[k] = s
			}
			if !valid {
				continue
			}
		}
		out = append(out, tag)
	}
	return out
}

func resolveTheme(v *validate.Validator, in ThemeFileConfig) site.ThemeConfig {
	out := site.ThemeConfig{
		Repo:         in.Repo,
		EditLinks:    DefaultEditLinks,
		DocsDir:      in.DocsDir,
		EditLinkText: DefaultEditLinkText,
		LastUpdated:  DefaultLastUpdated,
	}
	if in.EditLinks != nil {
		out.EditLinks = *in.EditLinks
	}
	if in.EditLinkText != "" {
		out.EditLinkText = in.EditLinkText
	}
	if in.LastUpdated != nil {
		out.LastUpdated = *in.LastUpdated
	}

	out.Nav = resolveNav(v, "themeConfig.nav", in.Nav)
	if out.Nav == nil {
		out.Nav = []site.NavItem{}
	}
	out.Sidebar = resolveSidebar(v, in.Sidebar)
	return out
}

func resolveNav(v *validate.Validator, field string, items []NavFileItem) []site.NavItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]site.NavItem, 0, len(items))
	for i, item := range items {
		f := fmt.Sprintf("%s[%d]", field, i)
		v.NotEmpty(ErrInvalidNavItem, f+".text", item.Text)

		if len(item.Items) > 0 {
			if item.Link != "" {
				v.Link(ErrMalformedPath, f+".link", item.Link)
			}
		} else {
			v.Link(ErrMalformedPath, f+".link", item.Link)
		}

		out = append(out, site.NavItem{
			Text:      item.Text,
			Link:      item.Link,
			AriaLabel: item.AriaLabel,
			Items:     resolveNav(v, f+".items", item.Items),
		})
	}
	return out
}

func resolveSidebar(v *validate.Validator, sections SidebarFileConfig) site.Sidebar {
	out := make(site.Sidebar, 0, len(sections))
	seen := make(map[string]int, len(sections))
	for i, sec := range sections {
		field := fmt.Sprintf("themeConfig.sidebar[%q]", sec.Prefix)

		if first, dup := seen[sec.Prefix]; dup {
			v.Fail(ErrDuplicateSidebarKey, field,
				fmt.Sprintf("sidebar prefix already declared by entry %d", first), sec.Prefix)
			continue
		}
		seen[sec.Prefix] = i
		v.RoutePrefix(ErrMalformedPath, field, sec.Prefix)

		groups := make([]site.SidebarGroup, 0, len(sec.Groups))
		for j, g := range sec.Groups {
			gf := fmt.Sprintf("%s[%d]", field, j)
			group := site.SidebarGroup{
				Title:        g.Title,
				Collapsable:  DefaultCollapsable,
				SidebarDepth: DefaultSidebarDepth,
				Children:     make([]string, 0, len(g.Children)),
			}
			if g.Collapsable != nil {
				group.Collapsable = *g.Collapsable
			}
			if g.SidebarDepth != nil {
				group.SidebarDepth = *g.SidebarDepth
				if group.SidebarDepth < 0 {
					v.Fail(ErrInvalidSidebarGroup, gf+".sidebarDepth",
						fmt.Sprintf("sidebar depth cannot be negative, got %d", group.SidebarDepth), group.SidebarDepth)
				}
			}
			for k, child := range g.Children {
				v.PageRef(ErrMalformedPath, fmt.Sprintf("%s.children[%d]", gf, k), child)
				group.Children = append(group.Children, child)
			}
			groups = append(groups, group)
		}
		out = append(out, site.SidebarSection{Prefix: sec.Prefix, Groups: groups})
	}
	return out
}

func resolvePlugins(v *validate.Validator, entries []any) []site.Plugin {
	out := make([]site.Plugin, 0, len(entries))
	for i, raw := range entries {
		field := fmt.Sprintf("plugins[%d]", i)
		p, msg := resolvePlugin(raw)
		if msg != "" {
			v.Fail(ErrInvalidPluginDeclaration, field, msg, raw)
			continue
		}
		out = append(out, p)
	}
	return out
}

func resolvePlugin(raw any) (site.Plugin, string) {
	if name, ok := raw.(string); ok {
		if name == "" {
			return site.Plugin{}, "plugin name cannot be empty"
		}
		return site.Plugin{Name: name}, ""
	}

	pair, ok := asList(raw)
	if !ok {
		return site.Plugin{}, "plugin must be a name or a [name, {options}] pair"
	}
	if len(pair) == 0 || len(pair) > 2 {
		return site.Plugin{}, fmt.Sprintf("plugin pair must have 1 or 2 elements, got %d", len(pair))
	}
	name, ok := pair[0].(string)
	if !ok || name == "" {
		return site.Plugin{}, "plugin name must be a non-empty string"
	}
	if len(pair) == 1 {
		return site.Plugin{Name: name}, ""
	}
	switch pair[1].(type) {
	case map[string]any, map[any]any, map[string]string:
	default:
		return site.Plugin{}, "plugin options must be a mapping"
	}
	opts, err := normalizeValue(pair[1])
	if err != nil {
		return site.Plugin{}, fmt.Sprintf("plugin options: %v", err)
	}
	return site.Plugin{Name: name, Options: opts.(map[string]any)}, ""
}
