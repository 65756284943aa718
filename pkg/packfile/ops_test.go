package packfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wismer/packedit/pkg/packerr"
)

func TestAddFile(t *testing.T) {
	dir := t.TempDir()
	hostPath := filepath.Join(dir, "db.bin")
	require.NoError(t, os.WriteFile(hostPath, []byte("payload"), 0o644))

	pf := New("test.pack", MagicPFH5)
	err := AddFile(pf, hostPath, []string{"db", "tables", "db.bin"})
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), pf.Entries[0].Data)
	require.Equal(t, uint32(len("payload")), pf.Entries[0].Size)
}

func TestAddFolderSkipsDuplicates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("2"), 0o644))

	pf := New("test.pack", MagicPFH5)
	require.NoError(t, pf.AddEntries([]PackedFile{{Path: []string{"ui", "a.txt"}, Data: []byte("existing")}}))

	result, err := AddFolder(pf, dir, []string{"ui"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Added)
	require.Len(t, result.Skipped, 1)
}

// TestExtractFolder checks the folder-extract path-rewrite rule: the
// folder's own name component is preserved under dest, matching the
// folder-merge rule in packfile_test.go.
func TestExtractFolder(t *testing.T) {
	pf := New("test.pack", MagicPFH5)
	require.NoError(t, pf.AddEntries([]PackedFile{
		{Path: []string{"ui", "icons", "a.png"}, Data: []byte("1")},
		{Path: []string{"ui", "b.png"}, Data: []byte("2")},
	}))

	dest := t.TempDir()
	result, err := Extract(pf, []string{"ui"}, dest)
	require.NoError(t, err)
	require.Equal(t, 2, result.Extracted)
	require.Empty(t, result.Failed)

	data, err := os.ReadFile(filepath.Join(dest, "ui", "icons", "a.png"))
	require.NoError(t, err)
	require.Equal(t, []byte("1"), data)
}

func TestExtractNotFound(t *testing.T) {
	pf := New("test.pack", MagicPFH5)
	_, err := Extract(pf, []string{"nope"}, t.TempDir())
	require.True(t, packerr.Is(err, packerr.NotFound))
}

func TestValidateNameRules(t *testing.T) {
	require.NoError(t, validateName("ok_name"))
	require.True(t, packerr.Is(validateName(""), packerr.BadName))
	require.True(t, packerr.Is(validateName("a/b"), packerr.BadName))
	require.True(t, packerr.Is(validateName("a b"), packerr.BadName))
}
