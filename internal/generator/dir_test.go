package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesRecursively(t *testing.T) {
	root := t.TempDir()
	output := filepath.Join(root, "newdir", "sub", "out.hpp")

	require.NoError(t, EnsureParentDir(output))

	info, err := os.Stat(filepath.Join(root, "newdir", "sub"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call is a no-op.
	require.NoError(t, EnsureParentDir(output))
}

func TestEnsureParentDir_NoParent(t *testing.T) {
	require.NoError(t, EnsureParentDir("out.hpp"))
	require.NoError(t, EnsureParentDir("./out.hpp"))
}

func TestEnsureParentDir_ParentIsFile(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	for _, output := range []string{
		filepath.Join(blocker, "out.hpp"),
		filepath.Join(blocker, "sub", "out.hpp"),
	} {
		err := EnsureParentDir(output)
		var dirErr *DirectoryError
		require.ErrorAs(t, err, &dirErr, output)
		assert.Equal(t, filepath.Dir(output), dirErr.Dir)
		assert.Equal(t, output, dirErr.Output)
		assert.Contains(t, err.Error(), "for output file '"+output+"'")
	}
}
