// SPDX-License-Identifier: MIT

package site

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleSidebar() Sidebar {
	return Sidebar{
		{Prefix: "/guide/movescript/", Groups: []SidebarGroup{{
			Title:        "Movescript Module",
			SidebarDepth: 1,
			Children:     []string{"", "spec", "settings", "reference"},
		}}},
		{Prefix: "/guide/itemscript/", Groups: []SidebarGroup{{
			Title:        "Itemscript Module",
			SidebarDepth: 1,
			Children:     []string{"", "filters", "reference"},
		}}},
	}
}

func TestSidebarMarshalJSONKeepsOrder(t *testing.T) {
	sb := Sidebar{
		{Prefix: "/z/", Groups: []SidebarGroup{{Title: "Z", Children: []string{}}}},
		{Prefix: "/a/"},
	}
	b, err := json.Marshal(sb)
	require.NoError(t, err)
	require.JSONEq(t, `{"/z/":[{"title":"Z","collapsable":false,"sidebarDepth":0,"children":[]}],"/a/":[]}`, string(b))
	require.Less(t, strings.Index(string(b), `"/z/"`), strings.Index(string(b), `"/a/"`))
}

func TestSidebarMarshalJSONEmpty(t *testing.T) {
	b, err := json.Marshal(Sidebar{})
	require.NoError(t, err)
	require.Equal(t, "{}", string(b))
}

func TestSidebarMarshalYAMLKeepsOrder(t *testing.T) {
	b, err := yaml.Marshal(map[string]any{"sidebar": sampleSidebar()})
	require.NoError(t, err)

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal(b, &node))
	sidebar := node.Content[0].Content[1]
	require.Equal(t, yaml.MappingNode, sidebar.Kind)
	require.Equal(t, "/guide/movescript/", sidebar.Content[0].Value)
	require.Equal(t, "/guide/itemscript/", sidebar.Content[2].Value)
}

func TestHeadTagWireForm(t *testing.T) {
	tag := HeadTag{Name: "meta", Attrs: map[string]string{"name": "theme-color", "content": "#de9502"}}

	b, err := json.Marshal(tag)
	require.NoError(t, err)
	require.JSONEq(t, `["meta",{"name":"theme-color","content":"#de9502"}]`, string(b))

	b, err = json.Marshal(HeadTag{Name: "script"})
	require.NoError(t, err)
	require.Equal(t, `["script",{}]`, string(b))
}

func TestPluginWireForm(t *testing.T) {
	b, err := json.Marshal([]Plugin{
		{Name: "@vuepress/plugin-back-to-top"},
		{Name: "vuepress-plugin-code-copy", Options: map[string]any{"color": "#de9502", "staticIcon": false}},
	})
	require.NoError(t, err)
	require.JSONEq(t, `["@vuepress/plugin-back-to-top",["vuepress-plugin-code-copy",{"color":"#de9502","staticIcon":false}]]`, string(b))

	y, err := yaml.Marshal(Plugin{Name: "p1"})
	require.NoError(t, err)
	require.Equal(t, "p1\n", string(y))
}

func TestSidebarMatch(t *testing.T) {
	sb := append(sampleSidebar(), SidebarSection{Prefix: "/"})

	sec, ok := sb.Match("/guide/movescript/spec")
	require.True(t, ok)
	require.Equal(t, "/guide/movescript/", sec.Prefix)

	sec, ok = sb.Match("/guide/itemscript/")
	require.True(t, ok)
	require.Equal(t, "/guide/itemscript/", sec.Prefix)

	sec, ok = sb.Match("/about")
	require.True(t, ok)
	require.Equal(t, "/", sec.Prefix)

	_, ok = sampleSidebar().Match("/about")
	require.False(t, ok)
}

func TestSidebarRoutes(t *testing.T) {
	require.Equal(t, []string{
		"/guide/movescript/",
		"/guide/movescript/spec",
		"/guide/movescript/settings",
		"/guide/movescript/reference",
		"/guide/itemscript/",
		"/guide/itemscript/filters",
		"/guide/itemscript/reference",
	}, sampleSidebar().Routes())
	require.Equal(t, []string{"/guide/movescript/", "/guide/itemscript/"}, sampleSidebar().Prefixes())
}

func TestPageRoute(t *testing.T) {
	require.Equal(t, "/g/", PageRoute("/g/", ""))
	require.Equal(t, "/g/x", PageRoute("/g/", "x.md"))
	require.Equal(t, "/g/x", PageRoute("/g", "x"))
	require.Equal(t, "/abs", PageRoute("/g/", "/abs"))
}

func TestNavItemIsGroup(t *testing.T) {
	require.False(t, NavItem{Text: "A", Link: "/a/"}.IsGroup())
	require.True(t, NavItem{Text: "More", Items: []NavItem{{Text: "B", Link: "/b/"}}}.IsGroup())
}
