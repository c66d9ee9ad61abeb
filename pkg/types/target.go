// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ControlMode selects the radio control protocol used by the daemon. The
// numeric values are part of the daemon's configuration format.
type ControlMode int

const (
	ControlVOX     ControlMode = 0
	ControlTRC     ControlMode = 1
	ControlSB9600  ControlMode = 2
	ControlXCMPSer ControlMode = 3
	ControlXCMPUSB ControlMode = 4
)

// String returns the daemon's name for the mode.
func (m ControlMode) String() string {
	switch m {
	case ControlVOX:
		return "VOX"
	case ControlTRC:
		return "TRC"
	case ControlSB9600:
		return "SB9600"
	case ControlXCMPSer:
		return "XCMP_SER"
	case ControlXCMPUSB:
		return "XCMP_USB"
	default:
		return "unknown"
	}
}

// ControlHeadType identifies the SB9600 control head model.
type ControlHeadType int

const (
	HeadW9 ControlHeadType = 0
	HeadM3 ControlHeadType = 1
	HeadO5 ControlHeadType = 2
)

// TargetDocument is the YAML configuration consumed by the RC2 daemon.
// Field order here is the key order of the written file.
type TargetDocument struct {
	Daemon      DaemonConfig     `yaml:"daemon"`
	Control     ControlConfig    `yaml:"control"`
	Audio       map[string]any   `yaml:"audio"`
	TextLookups TextLookupConfig `yaml:"textLookups"`
	Softkeys    []any            `yaml:"softkeys"`
}

// DaemonConfig identifies the daemon and where it listens for consoles.
type DaemonConfig struct {
	Name          string `yaml:"name"`
	Desc          string `yaml:"desc"`
	ListenAddress string `yaml:"listenAddress"`
	ListenPort    int    `yaml:"listenPort"`
}

// ControlConfig holds the radio control settings. ControlMode is nil until a
// control protocol claims the radio type; SB9600 is nil unless the SB9600
// protocol was selected.
type ControlConfig struct {
	ControlMode *ControlMode
	RxOnly      bool
	SB9600      *SB9600Config
}

// MarshalYAML writes an unset mode as null and an unset SB9600 block as an
// empty mapping, which is what the daemon expects.
func (c ControlConfig) MarshalYAML() (any, error) {
	out := struct {
		ControlMode *ControlMode `yaml:"controlMode"`
		RxOnly      bool         `yaml:"rxOnly"`
		SB9600      any          `yaml:"sb9600"`
	}{
		ControlMode: c.ControlMode,
		RxOnly:      c.RxOnly,
		SB9600:      map[string]any{},
	}
	if c.SB9600 != nil {
		out.SB9600 = c.SB9600
	}
	return out, nil
}

// SB9600Config is the SB9600 control block. A nil binding value means the
// button has no softkey assigned.
type SB9600Config struct {
	SerialPort      string             `yaml:"serialPort"`
	ControlHeadType ControlHeadType    `yaml:"controlHeadType"`
	SoftkeyBindings map[string]*string `yaml:"softkeyBindings"`
	UseLedsForRx    *bool              `yaml:"useLedsForRx,omitempty"`
}

// TextLookup rewrites zone or channel display text.
type TextLookup struct {
	Match   string `yaml:"match"`
	Replace string `yaml:"replace"`
}

// TextLookupConfig groups the zone and channel text lookups.
type TextLookupConfig struct {
	Zone    []TextLookup `yaml:"zone"`
	Channel []TextLookup `yaml:"channel"`
}

// NewTargetDocument returns a document with every collection initialised so
// that empty collections are written as [] rather than null.
func NewTargetDocument() *TargetDocument {
	return &TargetDocument{
		Audio: map[string]any{},
		TextLookups: TextLookupConfig{
			Zone:    []TextLookup{},
			Channel: []TextLookup{},
		},
		Softkeys: []any{},
	}
}

// Float is a passthrough TOML float. It is written with a fractional part so
// that 1.0 stays a float in the YAML output instead of becoming 1.
type Float float64

// MarshalYAML emits the value as an explicit !!float scalar.
func (f Float) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(float64(f))}, nil
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
