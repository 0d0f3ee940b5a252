package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteDefinition drops a definition file into a temporary directory and
// returns its path. The extension of filename picks the parse format.
// It fails the test immediately on error.
func WriteDefinition(t *testing.T, filename, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write definition file")

	return path
}
