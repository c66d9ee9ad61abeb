// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"path/filepath"
	"strings"

	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

// outputExt is the extension given to derived output files.
const outputExt = ".yml"

// OutputPath derives the destination for input. By default the output sits
// next to the input with its extension swapped for .yml. A non-empty outDir
// replaces the directory; a non-empty outFile replaces the whole path.
func OutputPath(input, outDir, outFile string) string {
	if outFile != "" {
		return outFile
	}
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + outputExt

	dir := filepath.Dir(input)
	if outDir != "" {
		dir = outDir
	}
	return filepath.Join(dir, name)
}

// ValidateArgs rejects an empty input list and an explicit output file
// combined with more than one input.
func ValidateArgs(inputs []string, outFile string) error {
	if len(inputs) == 0 {
		return &types.ArgumentError{Msg: "at least one input file is required (-i/--input)"}
	}
	if len(inputs) > 1 && outFile != "" {
		return &types.ArgumentError{Msg: "Multiple input files specified, -o/--outfile is invalid"}
	}
	return nil
}
