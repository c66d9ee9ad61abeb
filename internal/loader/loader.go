// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader reads RC2 TOML configuration files into source documents
// and checks that the required sections are present.
package loader

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

// Loader decodes TOML source files. The zero value is not usable; use New.
type Loader struct {
	log logrus.FieldLogger
}

// New returns a Loader that reports through log.
func New(log logrus.FieldLogger) *Loader {
	return &Loader{log: log}
}

// Load reads and decodes the file at path. Unreadable files and TOML syntax
// errors return a *types.ParseError. A document lacking a required section
// returns a *types.SchemaError, which matches types.ErrInvalidDocument; the
// decoded document is not returned in that case.
func (l *Loader) Load(path string) (types.SourceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.ParseError{
			Path: path,
			Err:  oops.In("loader").With("path", path).Wrapf(err, "reading source"),
		}
	}

	doc, err := Decode(data)
	if err != nil {
		pe := &types.ParseError{Path: path, Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			pe.Line, pe.Column = derr.Position()
		}
		return nil, pe
	}

	log := l.log.WithField("path", path)
	log.Info("Reading TOML data")
	log.Debugf("%v", map[string]any(doc))

	if err := Validate(path, doc); err != nil {
		var se *types.SchemaError
		if errors.As(err, &se) {
			log.WithField("section", se.Section).Error("TOML config missing required section")
		}
		return nil, err
	}
	return doc, nil
}

// Decode parses TOML bytes into a source document.
func Decode(data []byte) (types.SourceDocument, error) {
	raw := map[string]any{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return types.SourceDocument(raw), nil
}

// Validate checks the required sections in order and returns a
// *types.SchemaError naming the first one missing.
func Validate(path string, doc types.SourceDocument) error {
	for _, name := range types.RequiredSections {
		if !doc.Has(name) {
			return &types.SchemaError{Path: path, Section: name}
		}
	}
	return nil
}
