// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

// Encode renders the document as block-style YAML.
func Encode(target *types.TargetDocument, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(target); err != nil {
		return nil, oops.In("transform").Wrapf(err, "marshaling YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, oops.In("transform").Wrapf(err, "marshaling YAML")
	}
	return buf.Bytes(), nil
}

// Write encodes target and writes it to path, replacing any existing file.
// The output directory is created if needed.
func Write(target *types.TargetDocument, path string, indent int) error {
	data, err := Encode(target, indent)
	if err != nil {
		return err
	}

	errb := oops.In("transform").With("path", path)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errb.Wrapf(err, "creating directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errb.Wrapf(err, "writing %s", path)
	}
	return nil
}
