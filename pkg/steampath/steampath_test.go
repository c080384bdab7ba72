package steampath_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HALLauncher/hal-steam-tools/pkg/steampath"
)

const testAppID = 394360

// writeLibrary creates a steamapps directory holding an app manifest and,
// when installDir is non-empty, the matching common/<installDir> directory.
func writeLibrary(t *testing.T, installDir string) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "steamapps")
	require.NoError(t, os.MkdirAll(root, 0o755))

	manifest := fmt.Sprintf("\"appid\"\t\t\"%d\"\n\"installdir\"\t\t\"%s\"\n", testAppID, installDir)
	require.NoError(t, os.WriteFile(
		filepath.Join(root, fmt.Sprintf("appmanifest_%d.acf", testAppID)),
		[]byte(manifest), 0o644))

	if installDir != "" {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "common", installDir), 0o755))
	}
	return root
}

func TestAppInstallDir(t *testing.T) {
	root := writeLibrary(t, "ExampleGame")

	dir, err := steampath.AppInstallDir(testAppID, root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "common", "ExampleGame"), dir)
}

func TestAppInstallDirMissingDirectory(t *testing.T) {
	root := writeLibrary(t, "ExampleGame")
	require.NoError(t, os.RemoveAll(filepath.Join(root, "common", "ExampleGame")))

	_, err := steampath.AppInstallDir(testAppID, root)
	assert.ErrorIs(t, err, steampath.ErrNotFound)
}

func TestAppInstallDirNoManifest(t *testing.T) {
	root := filepath.Join(t.TempDir(), "steamapps")
	require.NoError(t, os.MkdirAll(root, 0o755))

	_, err := steampath.AppInstallDir(testAppID, root)
	assert.ErrorIs(t, err, steampath.ErrNotFound)
}

func TestAppInstallDirNoRoots(t *testing.T) {
	_, err := steampath.AppInstallDir(testAppID)
	assert.ErrorIs(t, err, steampath.ErrNotFound)
}

func TestAppInstallDirSearchesAllRoots(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "steamapps")
	require.NoError(t, os.MkdirAll(empty, 0o755))
	root := writeLibrary(t, "ExampleGame")

	dir, err := steampath.AppInstallDir(testAppID, empty, root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "common", "ExampleGame"), dir)
}

func TestLibraryRoots(t *testing.T) {
	primary := filepath.Join(t.TempDir(), "steamapps")
	require.NoError(t, os.MkdirAll(primary, 0o755))

	extraBase := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(extraBase, "steamapps"), 0o755))

	vdf := fmt.Sprintf("\"libraryfolders\"\n{\n\t\"0\"\n\t{\n\t\t\"path\"\t\t\"%s\"\n\t}\n\t\"1\"\n\t{\n\t\t\"path\"\t\t\"%s\"\n\t}\n}\n",
		extraBase, filepath.Join(extraBase, "does-not-exist"))
	require.NoError(t, os.WriteFile(filepath.Join(primary, "libraryfolders.vdf"), []byte(vdf), 0o644))

	roots := steampath.LibraryRoots(primary)
	require.Len(t, roots, 1)
	assert.Equal(t, filepath.Join(extraBase, "steamapps"), roots[0])
}

func TestLibraryRootsNoFile(t *testing.T) {
	assert.Empty(t, steampath.LibraryRoots(t.TempDir()))
}
