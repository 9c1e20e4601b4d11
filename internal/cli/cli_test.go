package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return buf.String(), err
}

func TestEnginesCommand(t *testing.T) {
	out, err := execute(t, "engines")
	require.NoError(t, err)
	require.Contains(t, out, "pmd")
}

func TestInspectCommand_UnknownEngine(t *testing.T) {
	_, err := execute(t, "inspect", "--engine", "eslint", "--file", "-")
	require.Error(t, err)
	require.Contains(t, err.Error(), "engine 'eslint' is not supported yet")
}

func TestPromptCommand_UnknownEngine(t *testing.T) {
	_, err := execute(t, "prompt", "--engine", "", "--config", "does-not-exist.yaml")
	require.Error(t, err)
}
