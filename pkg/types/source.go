// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Source section names.
const (
	SectionInfo     = "info"
	SectionNetwork  = "network"
	SectionRadio    = "radio"
	SectionAudio    = "audio"
	SectionSoftkeys = "softkeys"
	SectionSB9600   = "sb9600"
	SectionLookups  = "lookups"
)

// RequiredSections lists the sections every source document must carry,
// in the order they are checked.
var RequiredSections = []string{
	SectionInfo,
	SectionNetwork,
	SectionRadio,
	SectionAudio,
	SectionSoftkeys,
}

// SourceDocument is a decoded TOML configuration. Top-level keys are section
// names; each section is normally a map[string]any of scalars and arrays.
type SourceDocument map[string]any

// Has reports whether the document contains the named top-level key.
func (d SourceDocument) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// Section returns the named section as a table. The second return value is
// false when the section is absent or is not a table.
func (d SourceDocument) Section(name string) (map[string]any, bool) {
	v, ok := d[name]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}
