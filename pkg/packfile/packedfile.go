package packfile

import "strings"

// PackedFile is one logical file stored inside a PackFile, addressed by an
// ordered sequence of path components. Its size always equals len(Data)
// outside of the brief window during the final encode step.
type PackedFile struct {
	Path         []string
	Size         uint32
	Data         []byte
	Timestamp    uint32
	HasTimestamp bool
}

// PathString renders Path as a slash-joined string, the on-disk form.
func (pf *PackedFile) PathString() string {
	return strings.Join(pf.Path, "/")
}

// Leaf returns the last path component, or "" for an empty path.
func (pf *PackedFile) Leaf() string {
	if len(pf.Path) == 0 {
		return ""
	}
	return pf.Path[len(pf.Path)-1]
}

// pathEqual reports whether two path component sequences are identical,
// case-sensitive, component by component.
func pathEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// pathStartsWith reports whether path strictly starts with prefix: every
// component of prefix matches, and path has at least one more component.
func pathStartsWith(path, prefix []string) bool {
	if len(path) <= len(prefix) {
		return false
	}
	for i := range prefix {
		if path[i] != prefix[i] {
			return false
		}
	}
	return true
}

// clonePath returns a fresh copy of a path component slice.
func clonePath(p []string) []string {
	out := make([]string, len(p))
	copy(out, p)
	return out
}
