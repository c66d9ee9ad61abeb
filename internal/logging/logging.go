// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the logrus logger handed to the loader, transformer
// and converter. There is no package-level logger; callers pass the result
// down explicitly.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

// New returns a logger writing to w. Debug selects DebugLevel, otherwise
// InfoLevel. Format selects the JSON or text formatter.
func New(w io.Writer, cfg types.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	switch cfg.Format {
	case types.LogJSON:
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:          true,
			DisableLevelTruncation: true,
		})
	}

	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
		log.WithField("level", log.GetLevel()).Debug("Debug logging enabled")
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
