// SPDX-License-Identifier: MIT

package site

// Config is the fully resolved site configuration. Its YAML and JSON forms
// match the shape the site generator consumes:
// { title, description, base, head, themeConfig, plugins }.
type Config struct {
	Title       string      `yaml:"title" json:"title"`
	Description string      `yaml:"description" json:"description"`
	Base        string      `yaml:"base" json:"base"`
	Head        []HeadTag   `yaml:"head" json:"head"`
	Theme       ThemeConfig `yaml:"themeConfig" json:"themeConfig"`
	Plugins     []Plugin    `yaml:"plugins" json:"plugins"`
}

// ThemeConfig holds the options interpreted by the rendering theme.
type ThemeConfig struct {
	Repo         string    `yaml:"repo" json:"repo"`
	EditLinks    bool      `yaml:"editLinks" json:"editLinks"`
	DocsDir      string    `yaml:"docsDir" json:"docsDir"`
	EditLinkText string    `yaml:"editLinkText" json:"editLinkText"`
	LastUpdated  bool      `yaml:"lastUpdated" json:"lastUpdated"`
	Nav          []NavItem `yaml:"nav" json:"nav"`
	Sidebar      Sidebar   `yaml:"sidebar" json:"sidebar"`
}

// NavItem is a navbar entry. A leaf carries a Link; a group carries Items.
type NavItem struct {
	Text      string    `yaml:"text" json:"text"`
	Link      string    `yaml:"link,omitempty" json:"link,omitempty"`
	AriaLabel string    `yaml:"ariaLabel,omitempty" json:"ariaLabel,omitempty"`
	Items     []NavItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// IsGroup reports whether the item is a dropdown group rather than a link.
func (n NavItem) IsGroup() bool {
	return len(n.Items) > 0
}

// SidebarSection is the sidebar shown for every page under Prefix.
type SidebarSection struct {
	Prefix string
	Groups []SidebarGroup
}

// SidebarGroup is a titled block of pages. An empty child names the index
// page of the enclosing section.
type SidebarGroup struct {
	Title        string   `yaml:"title" json:"title"`
	Collapsable  bool     `yaml:"collapsable" json:"collapsable"`
	SidebarDepth int      `yaml:"sidebarDepth" json:"sidebarDepth"`
	Children     []string `yaml:"children" json:"children"`
}

// HeadTag is an element injected into the document <head>, in order.
type HeadTag struct {
	Name  string
	Attrs map[string]string
}

// Plugin is a plugin activation. Options is nil for a bare-name declaration.
type Plugin struct {
	Name    string
	Options map[string]any
}
