// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform maps RC2 TOML source documents onto the daemon's YAML
// configuration schema and writes the result.
package transform

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

// Transformer builds and writes target documents. Control protocols are
// looked up by radio.type; a type with no registered protocol leaves the
// control mode unset.
type Transformer struct {
	log       logrus.FieldLogger
	indent    int
	protocols map[string]ControlProtocol
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithIndent sets the YAML indentation width.
func WithIndent(n int) Option {
	return func(t *Transformer) {
		if n > 0 {
			t.indent = n
		}
	}
}

// WithProtocols replaces the default protocol set.
func WithProtocols(ps ...ControlProtocol) Option {
	return func(t *Transformer) {
		t.protocols = map[string]ControlProtocol{}
		for _, p := range ps {
			t.protocols[p.Type()] = p
		}
	}
}

// New returns a Transformer with the default protocols and indentation.
func New(log logrus.FieldLogger, opts ...Option) *Transformer {
	t := &Transformer{
		log:       log,
		indent:    types.DefaultIndent,
		protocols: map[string]ControlProtocol{},
	}
	for _, p := range DefaultProtocols() {
		t.protocols[p.Type()] = p
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Register adds or replaces a control protocol.
func (t *Transformer) Register(p ControlProtocol) {
	t.protocols[p.Type()] = p
}

// Convert builds the target document and writes it to outfile. Nothing is
// written when the build fails. Every failure is logged before returning.
func (t *Transformer) Convert(doc types.SourceDocument, outfile string) error {
	target, err := t.Build(doc)
	if err != nil {
		t.logFailure(err)
		return err
	}
	if err := Write(target, outfile, t.indent); err != nil {
		t.log.WithField("path", outfile).WithError(err).Error("Unable to write YAML")
		return err
	}
	return nil
}

// Build maps doc onto a new target document.
func (t *Transformer) Build(doc types.SourceDocument) (*types.TargetDocument, error) {
	target := types.NewTargetDocument()

	if err := buildDaemon(doc, &target.Daemon); err != nil {
		return nil, err
	}

	radio, err := section(doc, types.SectionRadio)
	if err != nil {
		return nil, err
	}
	if target.Control.RxOnly, err = boolField(radio, types.SectionRadio, "rxOnly"); err != nil {
		return nil, err
	}
	radioType, err := stringField(radio, types.SectionRadio, "type")
	if err != nil {
		return nil, err
	}
	if p, ok := t.protocols[radioType]; ok {
		mode := p.Mode()
		target.Control.ControlMode = &mode
		t.log.WithField("mode", mode).Debug("Selected control protocol")
		if err := p.Apply(doc, &target.Control, t.log); err != nil {
			return nil, err
		}
	} else {
		t.log.WithField("type", radioType).Info("No control protocol for radio type, leaving control mode unset")
	}

	audio, err := section(doc, types.SectionAudio)
	if err != nil {
		return nil, err
	}
	target.Audio = passthrough(audio).(map[string]any)

	softkeys, err := section(doc, types.SectionSoftkeys)
	if err != nil {
		return nil, err
	}
	list, err := arrayField(softkeys, types.SectionSoftkeys, "softkeyList")
	if err != nil {
		return nil, err
	}
	target.Softkeys = passthrough(list).([]any)

	if err := t.buildLookups(doc, &target.TextLookups); err != nil {
		return nil, err
	}
	return target, nil
}

func buildDaemon(doc types.SourceDocument, d *types.DaemonConfig) error {
	info, err := section(doc, types.SectionInfo)
	if err != nil {
		return err
	}
	if d.Name, err = stringField(info, types.SectionInfo, "name"); err != nil {
		return err
	}
	if d.Desc, err = stringField(info, types.SectionInfo, "desc"); err != nil {
		return err
	}

	network, err := section(doc, types.SectionNetwork)
	if err != nil {
		return err
	}
	if d.ListenAddress, err = stringField(network, types.SectionNetwork, "ip"); err != nil {
		return err
	}
	if d.ListenPort, err = intField(network, types.SectionNetwork, "port"); err != nil {
		return err
	}
	return nil
}

func (t *Transformer) logFailure(err error) {
	var (
		ms  *types.MissingSectionError
		mf  *types.MissingFieldError
		inv *types.InvalidFieldError
		ue  *types.UnknownEnumValueError
	)
	switch {
	case errors.As(err, &ms):
		t.log.WithField("section", ms.Section).Error(err.Error())
	case errors.As(err, &mf):
		t.log.WithFields(logrus.Fields{"section": mf.Section, "field": mf.Field}).Error("Required field not found in TOML file")
	case errors.As(err, &inv):
		t.log.WithFields(logrus.Fields{"section": inv.Section, "field": inv.Field}).Error(inv.Reason)
	case errors.As(err, &ue):
		t.log.WithFields(logrus.Fields{"section": ue.Section, "field": ue.Field, "value": ue.Value}).Error("Unable to parse enumerated value")
	default:
		t.log.WithError(err).Error("Conversion failed")
	}
}
