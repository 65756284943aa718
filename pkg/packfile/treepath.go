package packfile

// TreePathKind tags what a tree path points to within an archive.
type TreePathKind int

const (
	// None means the path matches neither an entry nor a folder prefix.
	None TreePathKind = iota
	// KindFile means exactly one entry's path equals the given path.
	KindFile
	// KindFolder means at least one entry's path strictly starts with the
	// given path and no entry equals it exactly.
	KindFolder
	// KindPackFileRoot means the path is the sentinel single-component
	// path naming the archive itself.
	KindPackFileRoot
)

// TreePath is the classification of a path within one archive: a tagged
// variant dispatched on by every tree operation, avoiding repeated ad hoc
// scans over Entries.
type TreePath struct {
	Kind TreePathKind

	// Path is the full original path passed to Classify.
	Path []string

	// Index is the entry index, valid only when Kind == KindFile. It is
	// only valid for the lifetime of the call that produced it — any
	// structural mutation (add/remove/rename) invalidates it, so it must
	// never be cached across tree-mutating operations.
	Index int
}

// Classify determines what tree_path refers to in pf, per the tree-path
// type rules: PackFileRoot for the archive's own display name, File for an
// exact single match, Folder for a strict-prefix match with no exact
// match, None otherwise.
func (pf *PackFile) Classify(path []string) TreePath {
	if len(path) == 1 && path[0] == pf.DisplayName {
		return TreePath{Kind: KindPackFileRoot, Path: path}
	}

	for i, e := range pf.Entries {
		if pathEqual(e.Path, path) {
			return TreePath{Kind: KindFile, Path: path, Index: i}
		}
	}

	for _, e := range pf.Entries {
		if pathStartsWith(e.Path, path) {
			return TreePath{Kind: KindFolder, Path: path}
		}
	}

	return TreePath{Kind: None, Path: path}
}
