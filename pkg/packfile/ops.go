package packfile

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/wismer/packedit/pkg/packerr"
)

// AddFile reads hostPath from disk and adds it to pf at treePath. Fails
// Duplicate if treePath already exists, leaving pf unchanged.
func AddFile(pf *PackFile, hostPath string, treePath []string) error {
	data, err := os.ReadFile(hostPath)
	if err != nil {
		return packerr.Wrap(packerr.Io, "add-file: read failed", err)
	}
	entry := PackedFile{
		Path: clonePath(treePath),
		Size: uint32(len(data)),
		Data: data,
	}
	return pf.AddEntries([]PackedFile{entry})
}

// AddFolderResult reports the outcome of a recursive folder add: how many
// files were added, and the host paths that were skipped because the
// resulting archive path already existed.
type AddFolderResult struct {
	Added   int
	Skipped []string
}

// AddFolder walks hostDir recursively, adding every file found under a tree
// path built by stripping hostDir from the file's host path and appending
// the remainder to treePrefix. Unlike AddEntries, this is best-effort: a
// file whose resulting path collides is skipped and counted, not aborted.
func AddFolder(pf *PackFile, hostDir string, treePrefix []string) (AddFolderResult, error) {
	var result AddFolderResult

	err := filepath.Walk(hostDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(hostDir, path)
		if err != nil {
			return err
		}

		parts := strings.Split(filepath.ToSlash(rel), "/")
		treePath := append(clonePath(treePrefix), parts...)

		if err := AddFile(pf, path, treePath); err != nil {
			if packerr.Is(err, packerr.Duplicate) {
				result.Skipped = append(result.Skipped, path)
				return nil
			}
			return err
		}
		result.Added++
		return nil
	})
	if err != nil {
		return result, packerr.Wrap(packerr.Io, "add-folder: walk failed", err)
	}
	return result, nil
}

// Delete removes the entry, entries, or whole archive content named by
// treePath, per its classification.
func Delete(pf *PackFile, treePath []string) error {
	switch tp := pf.Classify(treePath); tp.Kind {
	case KindFile:
		pf.RemoveAt(tp.Index)
		return nil

	case KindFolder:
		kept := pf.Entries[:0:0]
		for _, e := range pf.Entries {
			if !pathStartsWith(e.Path, treePath) {
				kept = append(kept, e)
			}
		}
		pf.Entries = kept
		return nil

	case KindPackFileRoot:
		pf.RemoveAll()
		return nil

	default:
		return packerr.Newf(packerr.NotFound, "delete: path %v does not exist", treePath)
	}
}

// validateName rejects empty names, names containing a path separator, and
// names containing whitespace.
func validateName(name string) error {
	if name == "" {
		return packerr.New(packerr.BadName, "rename: new name must not be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return packerr.New(packerr.BadName, "rename: new name must not contain a path separator")
	}
	for _, r := range name {
		if unicode.IsSpace(r) {
			return packerr.New(packerr.BadName, "rename: new name must not contain whitespace")
		}
	}
	return nil
}

// Rename changes the leaf name of a file, the prefix component of a
// folder, or (for the archive root) the display name only.
func Rename(pf *PackFile, treePath []string, newName string) error {
	tp := pf.Classify(treePath)

	if tp.Kind == KindPackFileRoot {
		if newName == pf.DisplayName {
			return packerr.New(packerr.BadName, "rename: new name is the same as the old name")
		}
		if err := validateName(newName); err != nil {
			return err
		}
		pf.DisplayName = newName
		return nil
	}

	if len(treePath) > 0 && newName == treePath[len(treePath)-1] {
		return packerr.New(packerr.BadName, "rename: new name is the same as the old name")
	}
	if err := validateName(newName); err != nil {
		return err
	}

	switch tp.Kind {
	case KindFile:
		newPath := clonePath(treePath)
		newPath[len(newPath)-1] = newName
		if pf.PathExists(newPath) {
			return packerr.Newf(packerr.Duplicate, "rename: path %v already exists", newPath)
		}
		pf.Entries[tp.Index].Path = newPath
		return nil

	case KindFolder:
		depth := len(treePath) - 1
		newPrefix := clonePath(treePath)
		newPrefix[depth] = newName
		if pf.FolderExists(newPrefix) || pf.PathExists(newPrefix) {
			return packerr.Newf(packerr.Duplicate, "rename: folder %v already exists", newPrefix)
		}
		for i := range pf.Entries {
			if pathStartsWith(pf.Entries[i].Path, treePath) {
				pf.Entries[i].Path[depth] = newName
			}
		}
		return nil

	default:
		return packerr.Newf(packerr.NotFound, "rename: path %v does not exist", treePath)
	}
}

// ExtractResult reports how many files were written and which destination
// paths failed.
type ExtractResult struct {
	Extracted int
	Failed    []string
}

func writeExtractedFile(dest string, data []byte) error {
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(dest, data, 0o644)
}

// Extract writes the file or subtree named by treePath to dest on disk.
// For a folder, the folder's own name is kept under dest (extracting
// ["ui"] from mymod.pack writes to dest/ui/...); only the path components
// above it are stripped. Per-file write failures are collected; the batch
// always completes and reports counts plus the paths that failed, rather
// than aborting.
func Extract(pf *PackFile, treePath []string, dest string) (ExtractResult, error) {
	var result ExtractResult

	switch tp := pf.Classify(treePath); tp.Kind {
	case KindFile:
		entry := pf.Entries[tp.Index]
		if err := writeExtractedFile(dest, entry.Data); err != nil {
			result.Failed = append(result.Failed, dest)
		} else {
			result.Extracted++
		}
		return result, nil

	case KindFolder:
		for _, e := range pf.Entries {
			if !pathStartsWith(e.Path, treePath) {
				continue
			}
			rel := e.Path[len(treePath)-1:]
			out := filepath.Join(append([]string{dest}, rel...)...)
			if err := writeExtractedFile(out, e.Data); err != nil {
				result.Failed = append(result.Failed, out)
			} else {
				result.Extracted++
			}
		}
		return result, nil

	case KindPackFileRoot:
		for _, e := range pf.Entries {
			out := filepath.Join(append([]string{dest}, e.Path...)...)
			if err := writeExtractedFile(out, e.Data); err != nil {
				result.Failed = append(result.Failed, out)
			} else {
				result.Extracted++
			}
		}
		return result, nil

	default:
		return result, packerr.Newf(packerr.NotFound, "extract: path %v does not exist", treePath)
	}
}

// Merge copies a file, folder, or whole archive from src at srcPath into
// dst at dstPath. Legal destination classifications are PackFileRoot and
// Folder; source may be File, Folder, or PackFileRoot. For a source
// folder, its own name is kept under dst (only the path components above
// it are stripped), matching Extract. A collision at the destination
// aborts the whole merge, leaving dst byte-identical to its pre-call
// state.
func Merge(src *PackFile, srcPath []string, dst *PackFile, dstPath []string) error {
	srcType := src.Classify(srcPath)
	if srcType.Kind == None {
		return packerr.Newf(packerr.NotFound, "merge: source path %v does not exist", srcPath)
	}

	dstType := dst.Classify(dstPath)
	if dstType.Kind != KindPackFileRoot && dstType.Kind != KindFolder {
		return packerr.Newf(packerr.NotFound, "merge: destination path %v must be a folder or the archive root", dstPath)
	}

	var destPrefix []string
	if dstType.Kind == KindFolder {
		destPrefix = dstPath
	}

	var toAdd []PackedFile
	switch srcType.Kind {
	case KindPackFileRoot:
		for _, e := range src.Entries {
			toAdd = append(toAdd, PackedFile{
				Path: append(clonePath(destPrefix), clonePath(e.Path)...),
				Size: e.Size,
				Data: e.Data,
			})
		}

	case KindFile:
		e := src.Entries[srcType.Index]
		toAdd = append(toAdd, PackedFile{
			Path: append(clonePath(destPrefix), e.Leaf()),
			Size: e.Size,
			Data: e.Data,
		})

	case KindFolder:
		for _, e := range src.Entries {
			if !pathStartsWith(e.Path, srcPath) {
				continue
			}
			tail := e.Path[len(srcPath)-1:]
			toAdd = append(toAdd, PackedFile{
				Path: append(clonePath(destPrefix), clonePath(tail)...),
				Size: e.Size,
				Data: e.Data,
			})
		}
	}

	return dst.AddEntries(toAdd)
}
