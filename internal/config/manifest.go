// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// descriptionPath selects the description field of a package manifest.
var descriptionPath = jp.MustParseString("$.description")

// ReadManifestDescription returns the "description" of a package.json style
// manifest. A manifest without a string description yields "".
func ReadManifestDescription(path string) (string, error) {
	// #nosec G304 -- manifest paths are provided by the operator via CLI
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("read manifest: %w", err)
	}
	doc, err := oj.Parse(data)
	if err != nil {
		return "", fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if s, ok := descriptionPath.First(doc).(string); ok {
		return s, nil
	}
	return "", nil
}
