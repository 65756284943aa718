package packfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wismer/packedit/pkg/packerr"
)

func TestValidArchiveName(t *testing.T) {
	require.True(t, ValidArchiveName("mymod.pack"))
	require.False(t, ValidArchiveName("mymod.zip"))
}

func TestOpenRejectsBadExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mymod.zip")
	require.NoError(t, os.WriteFile(path, []byte("whatever"), 0o644))

	_, err := Open(path)
	require.True(t, packerr.Is(err, packerr.BadName))
}

func TestOpenSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mymod.pack")

	pf := New("mymod.pack", MagicPFH5)
	require.NoError(t, pf.AddEntries([]PackedFile{{Path: []string{"a.txt"}, Data: []byte("hello")}}))
	require.NoError(t, Save(pf, path))

	reopened, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, pf.Entries, reopened.Entries)
	require.Equal(t, "mymod.pack", reopened.DisplayName)
}

func TestSaveNoPathFails(t *testing.T) {
	pf := New("mymod.pack", MagicPFH5)
	err := Save(pf, "")
	require.True(t, packerr.Is(err, packerr.Io))
}
