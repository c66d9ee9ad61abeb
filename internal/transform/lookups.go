// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

// buildLookups copies lookups.zoneLookup and lookups.chanLookup in source
// order. A missing lookups section or list leaves the output empty.
func (t *Transformer) buildLookups(doc types.SourceDocument, out *types.TextLookupConfig) error {
	if !doc.Has(types.SectionLookups) {
		return nil
	}
	sec, err := section(doc, types.SectionLookups)
	if err != nil {
		return err
	}

	if out.Zone, err = t.lookupList(sec, "zoneLookup", "zone", out.Zone); err != nil {
		return err
	}
	if out.Channel, err = t.lookupList(sec, "chanLookup", "channel", out.Channel); err != nil {
		return err
	}
	return nil
}

func (t *Transformer) lookupList(sec map[string]any, key, kind string, dst []types.TextLookup) ([]types.TextLookup, error) {
	if _, ok := sec[key]; !ok {
		return dst, nil
	}
	entries, err := arrayField(sec, types.SectionLookups, key)
	if err != nil {
		return nil, err
	}
	for i, entry := range entries {
		match, second, err := pair(entry, types.SectionLookups, key, i)
		if err != nil {
			return nil, err
		}
		replace, ok := second.(string)
		if !ok {
			return nil, typeMismatch(types.SectionLookups, key, "string", second)
		}
		dst = append(dst, types.TextLookup{Match: match, Replace: replace})
		t.log.WithFields(logrus.Fields{"kind": kind, "match": match, "replace": replace}).Debug("Parsed text lookup")
	}
	return dst, nil
}
