package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempRepoRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0750))
	return root
}

func TestRepoConfig(t *testing.T) {
	t.Run("missing config loads as defaults", func(t *testing.T) {
		root := tempRepoRoot(t)

		config, err := GetRepoConfig(root)
		require.NoError(t, err)
		require.Nil(t, config.DefaultBranch)
	})

	t.Run("set and get default branch", func(t *testing.T) {
		root := tempRepoRoot(t)

		require.NoError(t, SetDefaultBranch(root, "trunk"))

		config, err := GetRepoConfig(root)
		require.NoError(t, err)
		require.NotNil(t, config.DefaultBranch)
		require.Equal(t, "trunk", *config.DefaultBranch)

		branch, err := GetDefaultBranch(root)
		require.NoError(t, err)
		require.Equal(t, "trunk", branch)
	})

	t.Run("corrupt config is an error", func(t *testing.T) {
		root := tempRepoRoot(t)
		require.NoError(t, os.WriteFile(filepath.Join(root, ".git", ".giddy_config"), []byte("{nope"), 0600))

		_, err := GetRepoConfig(root)
		require.Error(t, err)
	})
}
