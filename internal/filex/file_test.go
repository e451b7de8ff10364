package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_CreatesRelativeDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("photos")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cwd, "photos"), got)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureDir_AbsolutePath(t *testing.T) {
	tmp := t.TempDir()

	want := filepath.Join(tmp, "photos")
	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()

	first, err := EnsureDir(filepath.Join(tmp, "photos"))
	require.NoError(t, err)

	second, err := EnsureDir(filepath.Join(tmp, "photos"))
	require.NoError(t, err)

	require.Equal(t, first, second)
	fi, err := os.Stat(second)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()

	name := filepath.Join(tmp, "photos")
	require.NoError(t, os.WriteFile(name, []byte("x"), 0o660))

	_, err := EnsureDir(name)
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestCopyFile_CopiesContent(t *testing.T) {
	tmp := t.TempDir()

	src := filepath.Join(tmp, "src.png")
	dst := filepath.Join(tmp, "dst.png")
	require.NoError(t, os.WriteFile(src, []byte("not really a png"), 0o660))

	require.NoError(t, CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, []byte("not really a png"), got)
}

func TestCopyFile_MissingSource(t *testing.T) {
	tmp := t.TempDir()

	err := CopyFile(filepath.Join(tmp, "nope.png"), filepath.Join(tmp, "dst.png"))
	require.Error(t, err)
}

func TestCopyFile_OverwritesDestination(t *testing.T) {
	tmp := t.TempDir()

	src := filepath.Join(tmp, "src.png")
	dst := filepath.Join(tmp, "dst.png")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o660))
	require.NoError(t, os.WriteFile(dst, []byte("old content, longer"), 0o660))

	require.NoError(t, CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got)
}
