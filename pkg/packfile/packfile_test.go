package packfile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wismer/packedit/pkg/packerr"
)

func buildArchive(t *testing.T) []byte {
	t.Helper()
	buf := make([]byte, 0, 64)
	buf = append(buf, "PFH5"...)
	buf = append(buf, 0, 0, 0, 0) // bitmask+type
	buf = append(buf, 0, 0, 0, 0) // pack_file_count
	buf = append(buf, 0, 0, 0, 0) // pack_file_index_size
	buf = append(buf, 1, 0, 0, 0) // packed_file_count
	buf = append(buf, 0, 0, 0, 0) // packed_file_index_size (recomputed on encode anyway)
	buf = append(buf, 0, 0, 0, 0) // creation_time

	buf = append(buf, 4, 0, 0, 0) // size=4
	buf = append(buf, "foo/bar.txt"...)
	buf = append(buf, 0)

	buf = append(buf, "ABCD"...)
	return buf
}

// TestDecodeEncodeS1 exercises scenario S1: decode a single-entry PFH5
// archive and require re-encode reproduces the decoded entries exactly.
func TestDecodeEncodeS1(t *testing.T) {
	data := buildArchive(t)
	pf, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, MagicPFH5, pf.Header.Magic)
	require.Len(t, pf.Entries, 1)
	require.Equal(t, []string{"foo", "bar.txt"}, pf.Entries[0].Path)
	require.Equal(t, uint32(4), pf.Entries[0].Size)
	require.Equal(t, []byte("ABCD"), pf.Entries[0].Data)

	reencoded := Encode(pf)
	again, err := Decode(reencoded)
	require.NoError(t, err)
	require.Equal(t, pf.Entries, again.Entries)
}

func TestDecodeRejectsEncryptedArchive(t *testing.T) {
	data := buildArchive(t)
	data[4] = 0x80 // HasEncryptedIndex
	_, err := Decode(data)
	require.True(t, packerr.Is(err, packerr.Unsupported))
}

func TestDecodeTruncatedHeader(t *testing.T) {
	_, err := Decode([]byte("PFH5"))
	require.True(t, packerr.Is(err, packerr.BadFormat))
}

// TestRenameS2 exercises scenario S2: renaming a file's leaf changes only
// the final path component.
func TestRenameS2(t *testing.T) {
	pf, err := Decode(buildArchive(t))
	require.NoError(t, err)

	err = Rename(pf, []string{"foo", "bar.txt"}, "baz.txt")
	require.NoError(t, err)
	require.Equal(t, []string{"foo", "baz.txt"}, pf.Entries[0].Path)
	require.Len(t, pf.Entries, 1)
}

// TestRenameS3 exercises scenario S3: a name containing whitespace fails
// BadName.
func TestRenameS3(t *testing.T) {
	pf, err := Decode(buildArchive(t))
	require.NoError(t, err)

	err = Rename(pf, []string{"foo", "bar.txt"}, "new name")
	require.True(t, packerr.Is(err, packerr.BadName))
}

func TestRenameSameNameRejected(t *testing.T) {
	pf, err := Decode(buildArchive(t))
	require.NoError(t, err)

	err = Rename(pf, []string{"foo", "bar.txt"}, "bar.txt")
	require.True(t, packerr.Is(err, packerr.BadName))
}

func TestRenameFolderRewritesAllDescendants(t *testing.T) {
	pf := New("test.pack", MagicPFH5)
	require.NoError(t, pf.AddEntries([]PackedFile{
		{Path: []string{"foo", "a.txt"}, Data: []byte("1")},
		{Path: []string{"foo", "b.txt"}, Data: []byte("2")},
	}))

	err := Rename(pf, []string{"foo"}, "bar")
	require.NoError(t, err)
	require.Equal(t, []string{"bar", "a.txt"}, pf.Entries[0].Path)
	require.Equal(t, []string{"bar", "b.txt"}, pf.Entries[1].Path)
}

func TestRenameArchiveRoot(t *testing.T) {
	pf := New("archive.pack", MagicPFH5)
	err := Rename(pf, []string{"archive.pack"}, "renamed.pack")
	require.NoError(t, err)
	require.Equal(t, "renamed.pack", pf.DisplayName)
}

// TestAddEntriesS4 exercises scenario S4: adding a duplicate path fails
// and leaves the archive unchanged.
func TestAddEntriesS4(t *testing.T) {
	pf, err := Decode(buildArchive(t))
	require.NoError(t, err)
	before := append([]PackedFile(nil), pf.Entries...)

	err = pf.AddEntries([]PackedFile{{Path: []string{"foo", "bar.txt"}, Data: []byte("X")}})
	require.True(t, packerr.Is(err, packerr.Duplicate))
	require.Equal(t, before, pf.Entries)
}

func TestAddEntriesDuplicateWithinBatch(t *testing.T) {
	pf := New("test.pack", MagicPFH5)
	err := pf.AddEntries([]PackedFile{
		{Path: []string{"a"}, Data: []byte("1")},
		{Path: []string{"a"}, Data: []byte("2")},
	})
	require.True(t, packerr.Is(err, packerr.Duplicate))
	require.Empty(t, pf.Entries)
}

// TestDeleteIsPrefixFilter exercises the delete-folder invariant: deleting
// a folder keeps exactly the entries whose path does not start with it,
// preserving relative order.
func TestDeleteIsPrefixFilter(t *testing.T) {
	pf := New("test.pack", MagicPFH5)
	require.NoError(t, pf.AddEntries([]PackedFile{
		{Path: []string{"ui", "a.png"}, Data: []byte("1")},
		{Path: []string{"db", "x.bin"}, Data: []byte("2")},
		{Path: []string{"ui", "b.png"}, Data: []byte("3")},
	}))

	err := Delete(pf, []string{"ui"})
	require.NoError(t, err)
	require.Len(t, pf.Entries, 1)
	require.Equal(t, []string{"db", "x.bin"}, pf.Entries[0].Path)
}

func TestDeleteArchiveRootClearsEverything(t *testing.T) {
	pf := New("mymod.pack", MagicPFH5)
	require.NoError(t, pf.AddEntries([]PackedFile{{Path: []string{"a"}, Data: []byte("1")}}))

	err := Delete(pf, []string{"mymod.pack"})
	require.NoError(t, err)
	require.Empty(t, pf.Entries)
}

func TestDeleteNotFound(t *testing.T) {
	pf := New("mymod.pack", MagicPFH5)
	err := Delete(pf, []string{"nope"})
	require.True(t, packerr.Is(err, packerr.NotFound))
}

// TestMergeAtomicity exercises property 6: a collision at the destination
// leaves dst byte-identical to its pre-call state.
func TestMergeAtomicity(t *testing.T) {
	src := New("src.pack", MagicPFH5)
	require.NoError(t, src.AddEntries([]PackedFile{{Path: []string{"a.txt"}, Data: []byte("1")}}))

	dst := New("dst.pack", MagicPFH5)
	require.NoError(t, dst.AddEntries([]PackedFile{{Path: []string{"ui", "a.txt"}, Data: []byte("2")}}))
	before := append([]PackedFile(nil), dst.Entries...)

	err := Merge(src, []string{"a.txt"}, dst, []string{"ui"})
	require.True(t, packerr.Is(err, packerr.Duplicate))
	require.Equal(t, before, dst.Entries)
}

func TestMergeFileFromRootKeepsOnlyLeaf(t *testing.T) {
	src := New("src.pack", MagicPFH5)
	require.NoError(t, src.AddEntries([]PackedFile{{Path: []string{"deep", "a.txt"}, Data: []byte("1")}}))

	dst := New("dst.pack", MagicPFH5)
	require.NoError(t, dst.AddEntries([]PackedFile{{Path: []string{"other"}, Data: []byte("2")}}))

	err := Merge(src, []string{"deep", "a.txt"}, dst, []string{"dst.pack"})
	require.NoError(t, err)
	require.Contains(t, dst.Entries, PackedFile{Path: []string{"a.txt"}, Size: 1, Data: []byte("1")})
}

// TestMergeFolderKeepsTail checks the folder-merge path-rewrite rule: the
// tail keeps the last component of the source prefix (and everything
// under it), so a one-deep folder's own name survives the merge.
func TestMergeFolderKeepsTail(t *testing.T) {
	src := New("src.pack", MagicPFH5)
	require.NoError(t, src.AddEntries([]PackedFile{
		{Path: []string{"ui", "icons", "a.png"}, Data: []byte("1")},
	}))

	dst := New("dst.pack", MagicPFH5)

	err := Merge(src, []string{"ui"}, dst, []string{"dst.pack"})
	require.NoError(t, err)
	require.Equal(t, []string{"ui", "icons", "a.png"}, dst.Entries[0].Path)
}

func TestMergeDeeperFolderStripsParentOnly(t *testing.T) {
	src := New("src.pack", MagicPFH5)
	require.NoError(t, src.AddEntries([]PackedFile{
		{Path: []string{"ui", "icons", "a.png"}, Data: []byte("1")},
	}))

	dst := New("dst.pack", MagicPFH5)

	err := Merge(src, []string{"ui", "icons"}, dst, []string{"dst.pack"})
	require.NoError(t, err)
	require.Equal(t, []string{"icons", "a.png"}, dst.Entries[0].Path)
}

func TestEntryInvariantAfterMutations(t *testing.T) {
	pf := New("test.pack", MagicPFH5)
	require.NoError(t, pf.AddEntries([]PackedFile{
		{Path: []string{"a"}, Size: 1, Data: []byte("1")},
		{Path: []string{"b"}, Size: 1, Data: []byte("2")},
	}))
	require.NoError(t, Rename(pf, []string{"a"}, "c"))

	seen := make(map[string]bool)
	for _, e := range pf.Entries {
		require.Equal(t, int(e.Size), len(e.Data))
		require.False(t, seen[e.PathString()], "duplicate path after mutation")
		seen[e.PathString()] = true
	}
}
