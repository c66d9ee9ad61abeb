//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	samplesIn  = "testdata"
	samplesOut = "bin/samples"
)

// Samples converts every testdata/*.toml file into bin/samples with the
// freshly built CLI.
func Samples() error {
	mg.Deps(Build)

	inputs, err := filepath.Glob(filepath.Join(samplesIn, "*.toml"))
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no sample configs in %s", samplesIn)
	}

	args := []string{"-d", samplesOut}
	for _, in := range inputs {
		args = append(args, "-i", in)
	}
	return sh.RunV(binPath, args...)
}
