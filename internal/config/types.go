// SPDX-License-Identifier: MIT

package config

// FileConfig is the declarative input accepted by Resolve. Optional scalars
// are pointers so an omitted field can be told apart from its zero value.
// Head and plugin entries are kept untyped: their shape is checked by
// Resolve, not by the decoder.
type FileConfig struct {
	Title       string          `yaml:"title" json:"title" toml:"title"`
	Description string          `yaml:"description" json:"description" toml:"description"`
	Base        *string         `yaml:"base" json:"base" toml:"base"`
	Head        []any           `yaml:"head" json:"head" toml:"head"`
	ThemeConfig ThemeFileConfig `yaml:"themeConfig" json:"themeConfig" toml:"themeConfig"`
	Plugins     []any           `yaml:"plugins" json:"plugins" toml:"plugins"`
}

// ThemeFileConfig is the themeConfig block of a FileConfig.
type ThemeFileConfig struct {
	Repo         string            `yaml:"repo" json:"repo" toml:"repo"`
	EditLinks    *bool             `yaml:"editLinks" json:"editLinks" toml:"editLinks"`
	DocsDir      string            `yaml:"docsDir" json:"docsDir" toml:"docsDir"`
	EditLinkText string            `yaml:"editLinkText" json:"editLinkText" toml:"editLinkText"`
	LastUpdated  *bool             `yaml:"lastUpdated" json:"lastUpdated" toml:"lastUpdated"`
	Nav          []NavFileItem     `yaml:"nav" json:"nav" toml:"nav"`
	Sidebar      SidebarFileConfig `yaml:"sidebar" json:"sidebar" toml:"sidebar"`
}

// NavFileItem is a navbar entry: a leaf with Link or a group with Items.
type NavFileItem struct {
	Text      string        `yaml:"text" json:"text" toml:"text"`
	Link      string        `yaml:"link" json:"link" toml:"link"`
	AriaLabel string        `yaml:"ariaLabel" json:"ariaLabel" toml:"ariaLabel"`
	Items     []NavFileItem `yaml:"items" json:"items" toml:"items"`
}

// SidebarFileConfig keeps sidebar sections in declaration order, duplicates
// included, so Resolve can report repeated prefixes. YAML and JSON accept
// either a prefix -> groups mapping or a list of sections; TOML uses the
// list form ([[themeConfig.sidebar]]).
type SidebarFileConfig []SidebarFileSection

// SidebarFileSection is one prefix and its groups.
type SidebarFileSection struct {
	Prefix string             `yaml:"prefix" json:"prefix" toml:"prefix"`
	Groups []SidebarFileGroup `yaml:"groups" json:"groups" toml:"groups"`
}

// SidebarFileGroup is a titled block of pages.
type SidebarFileGroup struct {
	Title        string   `yaml:"title" json:"title" toml:"title"`
	Collapsable  *bool    `yaml:"collapsable" json:"collapsable" toml:"collapsable"`
	SidebarDepth *int     `yaml:"sidebarDepth" json:"sidebarDepth" toml:"sidebarDepth"`
	Children     []string `yaml:"children" json:"children" toml:"children"`
}
