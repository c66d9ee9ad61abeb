// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `[info]
name = "Base"
desc = "Base station"

[network]
ip = "0.0.0.0"
port = 8801

[radio]
rxOnly = false
type = "vox"

[audio]
txDevice = "hw:0"

[softkeys]
softkeyList = ["SCAN"]
`

// TestRootCommand runs the real command tree. Flag values persist across
// Execute calls and -i appends once set, so the cases run in a fixed order
// inside one test and every accumulated input stays a valid file.
func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	comma := filepath.Join(dir, "north,site.toml")
	for _, p := range []string{a, b, comma} {
		require.NoError(t, os.WriteFile(p, []byte(source), 0o644))
	}
	outDir := filepath.Join(dir, "out")

	t.Run("input name containing a comma is one input", func(t *testing.T) {
		rootCmd.SetArgs([]string{"-i", comma, "-d", outDir})
		require.NoError(t, rootCmd.Execute())
		assert.FileExists(t, filepath.Join(outDir, "north,site.yml"))
		assert.NoFileExists(t, filepath.Join(outDir, "north.yml"))
	})

	t.Run("converts inputs and positional args into outdir", func(t *testing.T) {
		rootCmd.SetArgs([]string{"-i", a, "-d", outDir, b})
		require.NoError(t, rootCmd.Execute())
		assert.FileExists(t, filepath.Join(outDir, "a.yml"))
		assert.FileExists(t, filepath.Join(outDir, "b.yml"))
	})

	t.Run("version prints the build version", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		defer rootCmd.SetOut(nil)
		rootCmd.SetArgs([]string{"version"})
		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, "rc2-toml-yaml dev\n", out.String())
	})

	t.Run("flag errors are left for main to print", func(t *testing.T) {
		rootCmd.SetArgs([]string{"--no-such-flag"})
		err := rootCmd.Execute()
		require.Error(t, err)
		assert.False(t, errors.Is(err, errLogged))
	})

	t.Run("outfile with multiple inputs fails", func(t *testing.T) {
		rootCmd.SetArgs([]string{"-i", a, "-i", b, "-o", filepath.Join(dir, "x.yml")})
		err := rootCmd.Execute()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errLogged), "converter failures are already logged")
		assert.NoFileExists(t, filepath.Join(dir, "x.yml"))
	})
}
