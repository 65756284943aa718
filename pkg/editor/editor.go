// Package editor implements the editor re-encode service: pushing a
// decoded inner format (Loc, RigidModel, or raw bytes) back into its
// owning packed file after the user has changed it.
package editor

import (
	"github.com/wismer/packedit/pkg/loc"
	"github.com/wismer/packedit/pkg/packerr"
	"github.com/wismer/packedit/pkg/packfile"
	"github.com/wismer/packedit/pkg/rigidmodel"
)

// ReplaceData replaces the data of the entry at index with newData and
// updates its size, atomically. Fails NotFound if index is out of range.
func ReplaceData(pf *packfile.PackFile, index int, newData []byte) error {
	if index < 0 || index >= len(pf.Entries) {
		return packerr.Newf(packerr.NotFound, "update-entry-data: index %d out of range", index)
	}
	pf.Entries[index].Data = newData
	pf.Entries[index].Size = uint32(len(newData))
	return nil
}

// UpdateLoc re-encodes l and writes the result into the entry at index.
func UpdateLoc(pf *packfile.PackFile, index int, l *loc.Loc) error {
	return ReplaceData(pf, index, loc.Encode(l))
}

// UpdateRigidModel re-encodes rm and writes the result into the entry at
// index. Fails whatever Encode fails with (BadLength on an oversized
// base_skeleton), leaving the entry unchanged.
func UpdateRigidModel(pf *packfile.PackFile, index int, rm *rigidmodel.RigidModel) error {
	data, err := rigidmodel.Encode(rm)
	if err != nil {
		return err
	}
	return ReplaceData(pf, index, data)
}

// UpdateText writes raw edited bytes (e.g. a plain-text packed file)
// directly into the entry at index.
func UpdateText(pf *packfile.PackFile, index int, text []byte) error {
	return ReplaceData(pf, index, text)
}
