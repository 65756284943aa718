// Package packfile implements the PackFile archive format: the binary
// container (header, index, payload) used by the Total War family of
// games, the in-memory archive model, and the tree operations (add,
// remove, rename, extract, merge) exposed to an editor.
package packfile

import (
	"github.com/wismer/packedit/pkg/packerr"
)

// PackFile is the in-memory archive: header, parent references, and an
// ordered sequence of entries, plus extra data that is never persisted to
// disk (the on-disk path and display name).
type PackFile struct {
	Header  Header
	Parents []string
	Entries []PackedFile

	// FilePath is the on-disk path packedit loaded this archive from, or
	// will save it to, kept exactly as passed to Open or Save; a relative
	// path is not made absolute. Empty for a freshly created archive.
	FilePath string
	// DisplayName is the archive's own name as shown in a tree view; it
	// also serves as the PackFileRoot sentinel path component.
	DisplayName string
}

// New creates a fresh, empty archive of the given display name and magic.
// A new archive always has PackFileType Mod, per spec.
func New(name string, magic Magic) *PackFile {
	return &PackFile{
		Header: Header{
			Magic:        magic,
			PackFileType: TypeMod,
		},
		Parents:     nil,
		Entries:     nil,
		DisplayName: name,
	}
}

// PathExists reports whether an entry with exactly this path exists.
func (pf *PackFile) PathExists(path []string) bool {
	for _, e := range pf.Entries {
		if pathEqual(e.Path, path) {
			return true
		}
	}
	return false
}

// FolderExists reports whether some entry's path strictly starts with
// prefix.
func (pf *PackFile) FolderExists(prefix []string) bool {
	for _, e := range pf.Entries {
		if pathStartsWith(e.Path, prefix) {
			return true
		}
	}
	return false
}

// AddEntries appends entries whose paths collide with none of the existing
// ones. The operation is all-or-nothing: if any collision exists (against
// the archive's current entries, or among the entries being added), the
// archive is left completely unchanged and a Duplicate error is returned.
func (pf *PackFile) AddEntries(entries []PackedFile) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		key := e.PathString()
		if _, dup := seen[key]; dup {
			return packerr.Newf(packerr.Duplicate, "add: duplicate path %q among entries being added", key)
		}
		seen[key] = struct{}{}
		if pf.PathExists(e.Path) {
			return packerr.Newf(packerr.Duplicate, "add: path %q already exists", key)
		}
	}
	for _, e := range entries {
		e.Size = uint32(len(e.Data))
		pf.Entries = append(pf.Entries, e)
	}
	return nil
}

// RemoveAt removes the entry at index, preserving the order of the rest.
func (pf *PackFile) RemoveAt(index int) {
	pf.Entries = append(pf.Entries[:index], pf.Entries[index+1:]...)
}

// RemoveAll clears every entry.
func (pf *PackFile) RemoveAll() {
	pf.Entries = nil
}
