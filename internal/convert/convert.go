// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives TOML-to-YAML conversion of one or more RC2 config
// files: output path derivation, argument validation and the per-file loop.
package convert

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/rc2-toml-yaml/internal/loader"
	"github.com/pdiddy/rc2-toml-yaml/internal/transform"
	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

// BatchResult holds the outcome of a conversion run.
type BatchResult struct {
	Converted int
	Failed    int
	// Failures lists the inputs that failed, in input order.
	Failures []string
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Converter runs the loader and transformer over input files.
type Converter struct {
	cfg         types.ConversionConfig
	log         logrus.FieldLogger
	loader      *loader.Loader
	transformer *transform.Transformer
}

// New returns a Converter configured by cfg and reporting through log.
func New(cfg types.ConversionConfig, log logrus.FieldLogger) *Converter {
	return &Converter{
		cfg:         cfg,
		log:         log,
		loader:      loader.New(log),
		transformer: transform.New(log, transform.WithIndent(cfg.EffectiveIndent())),
	}
}

// ConvertFile converts a single input to its derived output path and
// returns that path.
func (c *Converter) ConvertFile(input string) (string, error) {
	output := OutputPath(input, c.cfg.OutDir, c.cfg.OutFile)

	doc, err := c.loader.Load(input)
	if err != nil {
		return output, err
	}
	if err := c.transformer.Convert(doc, output); err != nil {
		return output, err
	}
	return output, nil
}

// Run converts inputs in order. Argument errors are returned before anything
// is converted. A *types.ParseError stops the run and is returned with the
// result so far. Any other per-file failure is counted and the run moves on
// to the next file.
func (c *Converter) Run(inputs []string) (BatchResult, error) {
	var result BatchResult
	if err := ValidateArgs(inputs, c.cfg.OutFile); err != nil {
		c.log.Error(err.Error())
		return result, err
	}

	for _, input := range inputs {
		log := c.log.WithField("path", input)
		output, err := c.ConvertFile(input)
		if err != nil {
			var pe *types.ParseError
			if errors.As(err, &pe) {
				log.WithError(err).Error("Failed to decode TOML config file")
				result.Failed++
				result.Failures = append(result.Failures, input)
				return result, err
			}
			log.WithError(err).Errorf("Failed to convert %s to YAML", input)
			result.Failed++
			result.Failures = append(result.Failures, input)
			continue
		}
		log.WithField("output", output).Infof("Converted %s to %s", input, output)
		result.Converted++
	}

	if result.HasFailures() {
		c.log.Error("One or more conversions failed!")
	}
	return result, nil
}
