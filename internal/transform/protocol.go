// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

// ControlProtocol maps the protocol-specific part of a source document into
// the control block. Each protocol validates its own sections.
type ControlProtocol interface {
	// Type returns the radio.type value that selects this protocol.
	Type() string

	// Mode returns the control mode code written to control.controlMode.
	Mode() types.ControlMode

	// Apply fills the protocol's block of ctl from doc.
	Apply(doc types.SourceDocument, ctl *types.ControlConfig, log logrus.FieldLogger) error
}

// DefaultProtocols returns the control protocols supported out of the box.
func DefaultProtocols() []ControlProtocol {
	return []ControlProtocol{SB9600{}}
}
