// Package siegeai implements the SiegeAI map-blob patch: a byte-level
// rewrite of map-AI hint tokens inside a fixed whitelist of battle-map
// data blobs, plus cleanup of the useless .xml files Terry exports
// alongside them.
package siegeai

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wismer/packedit/pkg/packerr"
	"github.com/wismer/packedit/pkg/packfile"
)

var scopePrefix = []string{"terrain", "tiles", "battle", "_assembly_kit"}

var whitelist = map[string]bool{
	"bmd_data.bin":                    true,
	"catchment_01_layer_bmd_data.bin": true,
	"catchment_02_layer_bmd_data.bin": true,
	"catchment_03_layer_bmd_data.bin": true,
	"catchment_04_layer_bmd_data.bin": true,
	"catchment_05_layer_bmd_data.bin": true,
	"catchment_06_layer_bmd_data.bin": true,
	"catchment_07_layer_bmd_data.bin": true,
	"catchment_08_layer_bmd_data.bin": true,
	"catchment_09_layer_bmd_data.bin": true,
}

var (
	areaNodeToken = []byte("AIH_SIEGE_AREA_NODE")
	defensiveHill = []byte("AIH_DEFENSIVE_HILL")
	fortPerimeter = []byte("AIH_FORT_PERIMETER")
)

// Result reports what the patch did.
type Result struct {
	Patched int
	Deleted int
	Warning bool
}

// Summary renders the same textual cases the original patch distinguished:
// patched-only, deleted-only, both, each with or without the
// multiple-defensive-hill warning.
func (r Result) Summary() string {
	switch {
	case r.Patched == 0:
		return "No file suitable for patching has been found.\n" + deletedLine(r.Deleted)
	case r.Warning:
		return patchedLine(r.Patched) + "\n" + deletedLine(r.Deleted) + "\n\n" + warningText
	default:
		return patchedLine(r.Patched) + "\n" + deletedLine(r.Deleted)
	}
}

func patchedLine(n int) string {
	return fmt.Sprintf("%d files patched.", n)
}

func deletedLine(n int) string {
	if n == 0 {
		return "No file suitable for deleting has been found."
	}
	return fmt.Sprintf("%d files deleted.", n)
}

const warningText = "WARNING: Multiple Defensive Hints have been found and we only patched the first one. " +
	"If you are using SiegeAI, you should only have one Defensive Hill in the map (the one acting as the " +
	"perimeter of your fort/city/castle). Due to SiegeAI being present, in the map, normal Defensive Hills " +
	"will not work anyways, and the only thing they do is interfere with the patching process. So, if your " +
	"map doesn't work properly after patching, delete all the extra Defensive Hill Hints. They are the culprit."

func inScope(path []string) bool {
	if len(path) <= len(scopePrefix) {
		return len(path) == len(scopePrefix) && equalPrefix(path, scopePrefix)
	}
	return equalPrefix(path[:len(scopePrefix)], scopePrefix)
}

func equalPrefix(a, b []string) bool {
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

// Patch applies the SiegeAI patch to every in-scope entry of pf. An archive
// with no entries under terrain/tiles/battle/_assembly_kit fails Empty.
func Patch(pf *packfile.PackFile) (Result, error) {
	var result Result
	anyInScope := false
	var toDelete [][]string

	for i := range pf.Entries {
		entry := &pf.Entries[i]
		if !inScope(entry.Path) || len(entry.Path) == 0 {
			continue
		}
		anyInScope = true
		leaf := entry.Leaf()

		if whitelist[leaf] {
			if bytes.Contains(entry.Data, areaNodeToken) {
				if idx := bytes.Index(entry.Data, defensiveHill); idx >= 0 {
					copy(entry.Data[idx:idx+len(fortPerimeter)], fortPerimeter)
					result.Patched++
				}
				if bytes.Contains(entry.Data, defensiveHill) {
					result.Warning = true
				}
			}
		} else if strings.HasSuffix(leaf, ".xml") {
			toDelete = append(toDelete, clonePath(entry.Path))
		}
	}

	for _, path := range toDelete {
		if err := packfile.Delete(pf, path); err != nil {
			return result, err
		}
		result.Deleted++
	}

	if !anyInScope {
		return result, packerr.New(packerr.Empty, "siegeai: archive is empty, nothing to patch")
	}
	if result.Patched == 0 && result.Deleted == 0 {
		return result, packerr.New(packerr.Empty, "siegeai: no file in this archive could be patched or deleted")
	}

	return result, nil
}

func clonePath(p []string) []string {
	out := make([]string, len(p))
	copy(out, p)
	return out
}
