// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rc2-toml-yaml/internal/loader"
	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

func TestBuildLookups(t *testing.T) {
	tests := []struct {
		name        string
		lookups     string
		wantZone    []types.TextLookup
		wantChannel []types.TextLookup
	}{
		{
			name:        "no lookups section",
			wantZone:    []types.TextLookup{},
			wantChannel: []types.TextLookup{},
		},
		{
			name:        "empty lookups section",
			lookups:     "[lookups]\n",
			wantZone:    []types.TextLookup{},
			wantChannel: []types.TextLookup{},
		},
		{
			name: "zone only, order preserved",
			lookups: `[lookups]
zoneLookup = [["Z1", "Zone One"], ["Z2", "Zone Two"]]
`,
			wantZone: []types.TextLookup{
				{Match: "Z1", Replace: "Zone One"},
				{Match: "Z2", Replace: "Zone Two"},
			},
			wantChannel: []types.TextLookup{},
		},
		{
			name: "duplicates pass through",
			lookups: `[lookups]
zoneLookup = [["Z1", "A"], ["Z1", "B"]]
chanLookup = [["CH 1", "Dispatch"], ["CH 2", "Tac"]]
`,
			wantZone: []types.TextLookup{
				{Match: "Z1", Replace: "A"},
				{Match: "Z1", Replace: "B"},
			},
			wantChannel: []types.TextLookup{
				{Match: "CH 1", Replace: "Dispatch"},
				{Match: "CH 2", Replace: "Tac"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := loader.Decode([]byte(baseTOML + tt.lookups))
			require.NoError(t, err)
			tr, _ := newTransformer()

			got, err := tr.Build(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.wantZone, got.TextLookups.Zone)
			assert.Equal(t, tt.wantChannel, got.TextLookups.Channel)
		})
	}
}

func TestLookupsEncoding(t *testing.T) {
	doc, err := loader.Decode([]byte(baseTOML + `[lookups]
zoneLookup = [["Z1", "Zone One"], ["Z2", "Zone Two"]]
`))
	require.NoError(t, err)
	tr, _ := newTransformer()

	got, err := tr.Build(doc)
	require.NoError(t, err)
	data, err := Encode(got, types.DefaultIndent)
	require.NoError(t, err)

	var out struct {
		TextLookups struct {
			Zone    []map[string]string `yaml:"zone"`
			Channel []map[string]string `yaml:"channel"`
		} `yaml:"textLookups"`
	}
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, []map[string]string{
		{"match": "Z1", "replace": "Zone One"},
		{"match": "Z2", "replace": "Zone Two"},
	}, out.TextLookups.Zone)
	assert.Empty(t, out.TextLookups.Channel)
}
