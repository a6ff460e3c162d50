// SPDX-License-Identifier: MIT

package config

import "github.com/ManuGH/sitecfg/internal/site"

// Clone returns an alias-free deep copy of a site.Config.
// Reference types (maps/slices) are cloned; nil stays nil.
func Clone(in site.Config) site.Config {
	out := in

	out.Head = cloneHead(in.Head)
	out.Theme.Nav = cloneNav(in.Theme.Nav)
	out.Theme.Sidebar = cloneSidebar(in.Theme.Sidebar)
	out.Plugins = clonePlugins(in.Plugins)

	return out
}

func cloneStringSlice(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneHead(in []site.HeadTag) []site.HeadTag {
	if in == nil {
		return nil
	}
	out := make([]site.HeadTag, len(in))
	for i := range in {
		out[i] = site.HeadTag{Name: in[i].Name, Attrs: cloneStringMap(in[i].Attrs)}
	}
	return out
}

func cloneNav(in []site.NavItem) []site.NavItem {
	if in == nil {
		return nil
	}
	out := make([]site.NavItem, len(in))
	for i := range in {
		out[i] = in[i]
		out[i].Items = cloneNav(in[i].Items)
	}
	return out
}

func cloneSidebar(in site.Sidebar) site.Sidebar {
	if in == nil {
		return nil
	}
	out := make(site.Sidebar, len(in))
	for i, sec := range in {
		out[i].Prefix = sec.Prefix
		if sec.Groups == nil {
			continue
		}
		out[i].Groups = make([]site.SidebarGroup, len(sec.Groups))
		for j, g := range sec.Groups {
			out[i].Groups[j] = g
			out[i].Groups[j].Children = cloneStringSlice(g.Children)
		}
	}
	return out
}

func clonePlugins(in []site.Plugin) []site.Plugin {
	if in == nil {
		return nil
	}
	out := make([]site.Plugin, len(in))
	for i, p := range in {
		out[i].Name = p.Name
		if p.Options != nil {
			out[i].Options = cloneOptions(p.Options)
		}
	}
	return out
}

func cloneOptions(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneAny(v)
	}
	return out
}

func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneOptions(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneAny(t[i])
		}
		return out
	default:
		return t
	}
}
