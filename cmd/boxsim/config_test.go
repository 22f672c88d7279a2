package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/boxsim/internal/config"
	"github.com/vovakirdan/boxsim/internal/scenes"
)

func withConfigFlag(t *testing.T, path string) {
	t.Helper()
	old := flagConfig
	flagConfig = path
	t.Cleanup(func() {
		flagConfig = old
		scenes.SetConfigPath("")
	})
}

func TestUseSceneFileMissing(t *testing.T) {
	withConfigFlag(t, filepath.Join(t.TempDir(), "missing.yaml"))

	err := useSceneFile("sandbox")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestUseSceneFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: -5\n"), 0o644))
	withConfigFlag(t, path)

	assert.ErrorIs(t, useSceneFile("sandbox"), config.ErrInvalid)
}

func TestUseSceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: 30\n"), 0o644))
	withConfigFlag(t, path)

	require.NoError(t, useSceneFile("sandbox"))

	s := scenes.NewSandbox()
	s.Reset(runtimeConfig())
	require.NoError(t, s.Err())
	assert.Equal(t, 30, s.Config().TickRate)
}

func TestUseSceneFileIgnoredByOtherScenes(t *testing.T) {
	withConfigFlag(t, filepath.Join(t.TempDir(), "missing.yaml"))

	assert.NoError(t, useSceneFile("wall"))
}

func TestUseSceneFileUnset(t *testing.T) {
	withConfigFlag(t, "")

	assert.NoError(t, useSceneFile("sandbox"))
}
