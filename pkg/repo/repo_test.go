package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test 1: Locate from the root itself returns the root.
func TestLocate_AtRoot(t *testing.T) {
	r := initRepo(t)

	root, err := Locate(r.RootDir, ".git")
	require.NoError(t, err)
	require.Equal(t, r.RootDir, root)
}

// Test 2: Locate from a nested subdirectory returns the ancestor root.
func TestLocate_FromNestedSubdir(t *testing.T) {
	r := initRepo(t)
	nested := filepath.Join(r.RootDir, "a", "b", "c")
	mkdir(t, nested)

	root, err := Locate(nested, ".git")
	require.NoError(t, err)
	require.Equal(t, r.RootDir, root)
}

// Test 3: Locate outside any repository fails with ErrRepositoryNotFound.
func TestLocate_OutsideRepository(t *testing.T) {
	dir := t.TempDir()

	_, err := Locate(dir, ".mgit-test-marker-that-does-not-exist")
	require.ErrorIs(t, err, ErrRepositoryNotFound)
}

// Test 4: a regular file named like the metadata directory is not a marker.
func TestLocate_MetaFileIsNotMarker(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".marker"), "gitdir: elsewhere\n")

	_, err := Locate(dir, ".marker")
	require.ErrorIs(t, err, ErrRepositoryNotFound)
}

// Test 5: Locate is stable across repeated calls and relative inputs.
func TestLocate_RelativePath(t *testing.T) {
	r := initRepo(t)
	sub := filepath.Join(r.RootDir, "sub")
	mkdir(t, sub)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(sub))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	first, err := Locate(".", ".git")
	require.NoError(t, err)
	second, err := Locate("..", ".git")
	require.NoError(t, err)
	require.Equal(t, r.RootDir, first)
	require.Equal(t, first, second)
}

// Test 6: Locate on a missing start directory reports the path error.
func TestLocate_MissingStart(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "nope"), ".git")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrRepositoryNotFound)
}

// Test 7: Open finds the repository and wires the store.
func TestOpen_FromSubdir(t *testing.T) {
	r := initRepo(t)
	sub := filepath.Join(r.RootDir, "pkg")
	mkdir(t, sub)

	opened, err := Open(sub, nil, nil)
	require.NoError(t, err)
	require.Equal(t, r.RootDir, opened.RootDir)
	require.Equal(t, r.MetaDir, opened.MetaDir)

	h, err := r.Store.WriteBlob([]byte("shared"))
	require.NoError(t, err)
	require.True(t, opened.Store.Has(h))
}

// Test 8: Open rejects an invalid config before touching the filesystem.
func TestOpen_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ObjectFormat = "md5"

	_, err := Open(t.TempDir(), cfg, nil)
	require.Error(t, err)
}
