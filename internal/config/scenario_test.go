package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autotaker/csisat/difflog"
	"github.com/autotaker/csisat/internal/config"
)

func TestLoad_ParsesScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	contents := `
domain: integer
atoms:
  - x: a
    y: b
    rel: "<="
    c: 1
  - x: b
    rel: "<"
    c: 5
shared: [a, b]
script:
  - push: "0"
  - push: "~1"
  - pop: true
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	sc, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, difflog.Integer, sc.ResolvedDomain())
	require.Len(t, sc.Atoms, 2)
	require.Equal(t, []string{"a", "b"}, sc.Shared)
	require.Len(t, sc.Script, 3)
	require.Equal(t, "0", sc.Script[0].Push)
	require.Equal(t, "~1", sc.Script[1].Push)
	require.True(t, sc.Script[2].Pop)

	atoms, err := sc.ToAtoms()
	require.NoError(t, err)
	require.Equal(t, difflog.LessEq, atoms[0].Rel)
	require.Equal(t, difflog.LessStrict, atoms[1].Rel)
}

func TestToAtoms_RejectsUnknownRelation(t *testing.T) {
	sc := config.Scenario{Atoms: []config.AtomSpec{{X: "a", Rel: "!="}}}
	_, err := sc.ToAtoms()
	require.Error(t, err)
}

func TestDefaultScenario_IsRealDomain(t *testing.T) {
	require.Equal(t, difflog.Real, config.DefaultScenario().ResolvedDomain())
}
