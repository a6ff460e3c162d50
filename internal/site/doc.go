// SPDX-License-Identifier: MIT

// Package site defines the resolved documentation-site configuration handed
// to the downstream static-site generator.
//
// Values of these types are produced by config.Resolve and are treated as
// immutable: nothing in sitecfg mutates a Config after it is returned, and
// callers that need a modified copy go through config.Clone first.
package site
