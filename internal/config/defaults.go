// SPDX-License-Identifier: MIT

package config

// Defaults applied by Resolve to omitted fields.
const (
	DefaultBase         = "/"
	DefaultEditLinks    = false
	DefaultLastUpdated  = false
	DefaultEditLinkText = ""
	DefaultCollapsable  = true
	DefaultSidebarDepth = 1
)
