package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/cubeshuffle/internal/core/pack"
)

func TestReviewCmd_LoadPacksFromGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("- red: 2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`[{"blue": 1}]`), 0o644))

	cmd := NewReviewCmd(&Flags{}, newTestApp(t))
	cmd.glob = filepath.Join(dir, "*.{yaml,json}")

	list, err := cmd.loadPacks()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "red", list[0].Entries()[0].Name)
	assert.Equal(t, "blue", list[1].Entries()[0].Name)
}

func TestReviewCmd_GlobWithoutMatches(t *testing.T) {
	cmd := NewReviewCmd(&Flags{}, newTestApp(t))
	cmd.glob = filepath.Join(t.TempDir(), "*.yaml")

	_, err := cmd.loadPacks()
	assert.ErrorIs(t, err, pack.ErrNoPacks)
}

func TestReviewCmd_FlagsExposeFileAndPacks(t *testing.T) {
	cmd := NewReviewCmd(&Flags{}, newTestApp(t))

	var names []string
	for _, f := range cmd.Flags() {
		names = append(names, f.Names()...)
	}
	assert.ElementsMatch(t, []string{"packs", "p", "file", "f"}, names)
}
