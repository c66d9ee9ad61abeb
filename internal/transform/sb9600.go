// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

// headTypes maps the TOML head names to the daemon's control head codes.
var headTypes = map[string]types.ControlHeadType{
	"W9": types.HeadW9,
	"M3": types.HeadM3,
	"O5": types.HeadO5,
}

// headNames lists headTypes keys in code order for error messages.
var headNames = []string{"W9", "M3", "O5"}

// buttonReplacer swaps the symbols the daemon cannot use as mapping keys.
var buttonReplacer = strings.NewReplacer("#", "p", "*", "s")

// SB9600 is the Motorola SB9600 serial control-head protocol.
type SB9600 struct{}

func (SB9600) Type() string { return types.SectionSB9600 }

func (SB9600) Mode() types.ControlMode { return types.ControlSB9600 }

// Apply builds control.sb9600 from the sb9600 section and the
// softkeys.buttonBinding list.
func (SB9600) Apply(doc types.SourceDocument, ctl *types.ControlConfig, log logrus.FieldLogger) error {
	log.Info("Parsing SB9600 config")

	if !doc.Has(types.SectionSB9600) {
		return &types.MissingSectionError{
			Section: types.SectionSB9600,
			Reason:  "radio.type is sb9600",
		}
	}
	sec, err := section(doc, types.SectionSB9600)
	if err != nil {
		return err
	}

	port, err := stringField(sec, types.SectionSB9600, "port")
	if err != nil {
		return err
	}
	head, err := ParseHead(sec)
	if err != nil {
		return err
	}
	log.WithField("head", head).Debug("Parsed SB9600 head type")

	cfg := &types.SB9600Config{
		SerialPort:      port,
		ControlHeadType: head,
		SoftkeyBindings: map[string]*string{},
	}

	if _, ok := sec["useLedsForRx"]; ok {
		leds, err := boolField(sec, types.SectionSB9600, "useLedsForRx")
		if err != nil {
			return err
		}
		cfg.UseLedsForRx = &leds
	}

	softkeys, err := section(doc, types.SectionSoftkeys)
	if err != nil {
		return err
	}
	bindings, err := arrayField(softkeys, types.SectionSoftkeys, "buttonBinding")
	if err != nil {
		return err
	}
	for i, entry := range bindings {
		button, softkey, err := pair(entry, types.SectionSoftkeys, "buttonBinding", i)
		if err != nil {
			return err
		}
		button = NormalizeButton(button)

		if isFalsy(softkey) {
			cfg.SoftkeyBindings[button] = nil
		} else {
			name, ok := softkey.(string)
			if !ok {
				return typeMismatch(types.SectionSoftkeys, "buttonBinding", "string", softkey)
			}
			cfg.SoftkeyBindings[button] = &name
		}
		log.WithFields(logrus.Fields{"button": button, "softkey": softkey}).Debug("Parsed SB9600 button binding")
	}

	ctl.SB9600 = cfg
	return nil
}

// ParseHead maps sec["head"] through the control head enumeration.
func ParseHead(sec map[string]any) (types.ControlHeadType, error) {
	v, err := field(sec, types.SectionSB9600, "head")
	if err != nil {
		return 0, err
	}
	name, _ := v.(string)
	head, ok := headTypes[name]
	if !ok {
		return 0, &types.UnknownEnumValueError{
			Section: types.SectionSB9600,
			Field:   "head",
			Value:   v,
			Allowed: headNames,
		}
	}
	return head, nil
}

// NormalizeButton replaces every '#' with 'p' and every '*' with 's'.
func NormalizeButton(button string) string {
	return buttonReplacer.Replace(button)
}
