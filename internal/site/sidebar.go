// SPDX-License-Identifier: MIT

package site

import "strings"

// Sidebar is the ordered set of per-prefix sidebars.
type Sidebar []SidebarSection

// Prefixes returns the section prefixes in declaration order.
func (s Sidebar) Prefixes() []string {
	out := make([]string, len(s))
	for i, sec := range s {
		out[i] = sec.Prefix
	}
	return out
}

// Match returns the section used for route. Sections are tried in
// declaration order and the first prefix that route starts with wins, which
// is how the default theme picks a sidebar.
func (s Sidebar) Match(route string) (SidebarSection, bool) {
	if !strings.HasSuffix(route, "/") && !strings.HasSuffix(route, ".html") {
		route += "/"
	}
	for _, sec := range s {
		if strings.HasPrefix(route, sec.Prefix) {
			return sec, true
		}
	}
	return SidebarSection{}, false
}

// Routes lists every page route referenced by the sidebar, in order.
func (s Sidebar) Routes() []string {
	var out []string
	for _, sec := range s {
		for _, g := range sec.Groups {
			for _, child := range g.Children {
				out = append(out, PageRoute(sec.Prefix, child))
			}
		}
	}
	return out
}

// PageRoute joins a section prefix and a child page reference. The empty
// child maps to the section index.
func PageRoute(prefix, child string) string {
	if child == "" {
		return prefix
	}
	if strings.HasPrefix(child, "/") {
		return child
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + strings.TrimSuffix(child, ".md")
}
