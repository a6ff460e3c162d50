// SPDX-License-Identifier: MIT

package config

import (
	"github.com/ManuGH/sitecfg/internal/site"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ChangeSummary describes the result of comparing two site configurations.
type ChangeSummary struct {
	ChangedFields []string // List of field paths that changed, in declaration order
}

// Changed reports whether any field differs.
func (s ChangeSummary) Changed() bool {
	return len(s.ChangedFields) > 0
}

// equateEmpty treats nil and empty slices/maps as the same value.
var equateEmpty = cmpopts.EquateEmpty()

// Diff compares two configurations field by field.
func Diff(old, next site.Config) ChangeSummary {
	fields := []struct {
		path string
		a, b any
	}{
		{"Title", old.Title, next.Title},
		{"Description", old.Description, next.Description},
		{"Base", old.Base, next.Base},
		{"Head", old.Head, next.Head},
		{"Theme.Repo", old.Theme.Repo, next.Theme.Repo},
		{"Theme.EditLinks", old.Theme.EditLinks, next.Theme.EditLinks},
		{"Theme.DocsDir", old.Theme.DocsDir, next.Theme.DocsDir},
		{"Theme.EditLinkText", old.Theme.EditLinkText, next.Theme.EditLinkText},
		{"Theme.LastUpdated", old.Theme.LastUpdated, next.Theme.LastUpdated},
		{"Theme.Nav", old.Theme.Nav, next.Theme.Nav},
		{"Theme.Sidebar", old.Theme.Sidebar, next.Theme.Sidebar},
		{"Plugins", old.Plugins, next.Plugins},
	}

	summary := ChangeSummary{}
	for _, f := range fields {
		if !cmp.Equal(f.a, f.b, equateEmpty) {
			summary.ChangedFields = append(summary.ChangedFields, f.path)
		}
	}
	return summary
}

// Equal reports whether two configurations are semantically identical.
func Equal(a, b site.Config) bool {
	return cmp.Equal(a, b, equateEmpty)
}
