// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

// sections maps each section to a minimal body so tests can drop one.
var sections = map[string]string{
	"info":     "[info]\nname = \"Base\"\ndesc = \"Base station\"\n",
	"network":  "[network]\nip = \"0.0.0.0\"\nport = 8801\n",
	"radio":    "[radio]\nrxOnly = false\ntype = \"sb9600\"\n",
	"audio":    "[audio]\ntxDevice = \"hw:0\"\nrxDevice = \"hw:1\"\n",
	"softkeys": "[softkeys]\nsoftkeyList = [\"SCAN\", \"MON\"]\nbuttonBinding = [[\"#1\", \"SCAN\"]]\n",
}

func sourceWithout(skip string) string {
	var b strings.Builder
	for _, name := range types.RequiredSections {
		if name == skip {
			continue
		}
		b.WriteString(sections[name])
	}
	return b.String()
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "radio.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	log, _ := test.NewNullLogger()
	path := writeSource(t, sourceWithout(""))

	doc, err := New(log).Load(path)
	require.NoError(t, err)

	info, ok := doc.Section("info")
	require.True(t, ok)
	assert.Equal(t, "Base", info["name"])

	network, ok := doc.Section("network")
	require.True(t, ok)
	assert.EqualValues(t, 8801, network["port"])

	softkeys, ok := doc.Section("softkeys")
	require.True(t, ok)
	assert.Equal(t, []any{"SCAN", "MON"}, softkeys["softkeyList"])
}

func TestLoadMissingSection(t *testing.T) {
	for _, name := range types.RequiredSections {
		t.Run(name, func(t *testing.T) {
			log, hook := test.NewNullLogger()
			path := writeSource(t, sourceWithout(name))

			doc, err := New(log).Load(path)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.True(t, errors.Is(err, types.ErrInvalidDocument))

			var se *types.SchemaError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, name, se.Section)
			assert.Contains(t, err.Error(), name)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, logrus.ErrorLevel, entry.Level)
			assert.Equal(t, name, entry.Data["section"])
		})
	}
}

func TestLoadOptionalSectionsNotRequired(t *testing.T) {
	log, _ := test.NewNullLogger()
	path := writeSource(t, sourceWithout(""))

	doc, err := New(log).Load(path)
	require.NoError(t, err)
	assert.False(t, doc.Has("sb9600"))
	assert.False(t, doc.Has("lookups"))
}

func TestLoadSyntaxError(t *testing.T) {
	log, _ := test.NewNullLogger()
	path := writeSource(t, "[info]\nname = \"Base\ndesc = 1\n")

	_, err := New(log).Load(path)
	require.Error(t, err)

	var pe *types.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, path, pe.Path)
	assert.Greater(t, pe.Line, 0)
	assert.False(t, errors.Is(err, types.ErrInvalidDocument))
}

func TestLoadUnreadableFile(t *testing.T) {
	log, _ := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "missing.toml")

	_, err := New(log).Load(path)
	require.Error(t, err)

	var pe *types.ParseError
	require.True(t, errors.As(err, &pe))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidateChecksInOrder(t *testing.T) {
	err := Validate("x.toml", types.SourceDocument{"radio": map[string]any{}})
	var se *types.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "info", se.Section)
}
