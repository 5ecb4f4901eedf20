package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wavelint/wavelint"
	"github.com/wavelint/wavelint/pkg/diagram"
)

func loadProject(t *testing.T, src string) *wavelint.Project {
	t.Helper()
	project, err := wavelint.New(src)
	require.NoError(t, err)
	return project
}

func TestBuildReport(t *testing.T) {
	project := loadProject(t, `{ signal: [{ name: 'clk', wave: 'p.' }], head: { text: 'H' } }`)

	r := buildReport(project)
	assert.Equal(t, diagram.KindSignal, r.Kind)
	assert.Equal(t, []string{"head", "signal"}, r.Keys)
	assert.Equal(t, 1, r.Entries)
	assert.Equal(t, map[string]any{"text": "H"}, r.Head)
	assert.Equal(t, map[string]any{}, r.Config)
}

func TestWriteReport_Text(t *testing.T) {
	r := buildReport(loadProject(t, `{ signal: [] }`))

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, r, "text"))
	assert.Contains(t, buf.String(), "kind:    signal")
	assert.Contains(t, buf.String(), "entries: 0")
}

func TestWriteReport_JSON(t *testing.T) {
	r := buildReport(loadProject(t, `{ reg: 'anything' }`))

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, r, "json"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "reg", decoded["kind"])
}

func TestWriteReport_YAML(t *testing.T) {
	r := buildReport(loadProject(t, `{ assign: [] }`))

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, r, "yaml"))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "assign", decoded["kind"])
}

func TestWriteReport_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := writeReport(&buf, report{}, "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestDescribeFailure_KeepsKindBranchable(t *testing.T) {
	_, err := wavelint.New("missing.json5")
	require.Error(t, err)

	described := describeFailure(err)
	require.ErrorIs(t, described, diagram.ErrNotFound)
	assert.Contains(t, described.Error(), "does not exist")
}
