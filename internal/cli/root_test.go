package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	rootCmd := NewRootCmd("test")

	require.Equal(t, "giddy", rootCmd.Use)
	require.Equal(t, "test", rootCmd.Version)

	expected := []string{"add", "del", "new", "show", "update"}
	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			require.Equal(t, name, cmd.Name())
		})
	}
}

func TestUpdateCmdFlags(t *testing.T) {
	cmd := newUpdateCmd()

	require.NotNil(t, cmd.Flags().Lookup("recursive"))
	require.Equal(t, "r", cmd.Flags().Lookup("recursive").Shorthand)
}

func TestShowCmdFlags(t *testing.T) {
	cmd := newShowCmd()

	require.NotNil(t, cmd.Flags().Lookup("tree"))
	require.NotNil(t, cmd.Flags().Lookup("prs"))
}
