// Package rigidmodel implements the RigidModel 3D-model header codec and
// the Attila-to-Warhammer structural patch.
package rigidmodel

import (
	"github.com/wismer/packedit/pkg/bytecodec"
	"github.com/wismer/packedit/pkg/packerr"
)

const (
	signature = "RMV2"

	// VersionAttila is the Total War: Attila RigidModel version, the only
	// version the Attila-to-Warhammer patch accepts as input.
	VersionAttila uint32 = 6
	// VersionWarhammer is the Total War: Warhammer (1 & 2) RigidModel
	// version, the patch's only output.
	VersionWarhammer uint32 = 7

	baseSkeletonFieldSize = 120
)

// Lod is one level-of-detail sub-header. MysteriousData1/2 are present
// only in v7 RigidModels; HasMysteriousData reports whether they were
// decoded (and will be encoded).
type Lod struct {
	GroupsCount        uint32
	VerticesDataLength uint32
	IndexDataLength    uint32
	StartOffset        uint32
	LodZoomFactor      float32
	MysteriousData1    uint32
	MysteriousData2    uint32
	HasMysteriousData  bool
}

// Header is the RigidModel file header plus its per-Lod sub-headers.
type Header struct {
	Version      uint32
	LodsCount    uint32
	BaseSkeleton string
	Lods         []Lod
}

// RigidModel is a decoded RigidModel file: header plus the opaque data
// tail that follows it, which packedit never interprets.
type RigidModel struct {
	Header Header
	Tail   []byte
}

const fixedHeaderSize = 4 + 4 + 4 + baseSkeletonFieldSize // signature + version + lods_count + base_skeleton

func lodSize(hasMysterious bool) int {
	// groups_count + vertices_data_length + index_data_length +
	// start_offset + lod_zoom_factor (all u32/f32, 4 bytes each)
	size := 4 * 5
	if hasMysterious {
		size += 4 * 2
	}
	return size
}

// Decode parses a complete RigidModel from raw bytes. Only version 6
// (Attila) and 7 (Warhammer) are understood; any other version fails
// Unsupported.
func Decode(data []byte) (*RigidModel, error) {
	if len(data) < fixedHeaderSize {
		return nil, packerr.New(packerr.BadFormat, "rigidmodel: truncated header")
	}

	sig, n, err := bytecodec.DecodeStringU8(data, 4)
	if err != nil {
		return nil, err
	}
	if sig != signature {
		return nil, packerr.Newf(packerr.BadFormat, "rigidmodel: bad signature %q", sig)
	}
	pos := n

	version, n, err := bytecodec.DecodeU32(data[pos:])
	if err != nil {
		return nil, err
	}
	pos += n
	if version != VersionAttila && version != VersionWarhammer {
		return nil, packerr.Newf(packerr.Unsupported, "rigidmodel: unsupported version %d", version)
	}

	lodsCount, n, err := bytecodec.DecodeU32(data[pos:])
	if err != nil {
		return nil, err
	}
	pos += n

	baseSkeleton, n, err := bytecodec.DecodeStringU8ZeroPadded(data[pos:], baseSkeletonFieldSize)
	if err != nil {
		return nil, err
	}
	pos += n

	hasMysterious := version == VersionWarhammer
	lods := make([]Lod, 0, lodsCount)
	for i := uint32(0); i < lodsCount; i++ {
		need := lodSize(hasMysterious)
		if pos+need > len(data) {
			return nil, packerr.New(packerr.BadFormat, "rigidmodel: truncated lod header")
		}

		groupsCount, _, _ := bytecodec.DecodeU32(data[pos:])
		verticesLen, _, _ := bytecodec.DecodeU32(data[pos+4:])
		indexLen, _, _ := bytecodec.DecodeU32(data[pos+8:])
		startOffset, _, _ := bytecodec.DecodeU32(data[pos+12:])
		zoom, _, _ := bytecodec.DecodeF32(data[pos+16:])

		lod := Lod{
			GroupsCount:        groupsCount,
			VerticesDataLength: verticesLen,
			IndexDataLength:    indexLen,
			StartOffset:        startOffset,
			LodZoomFactor:      zoom,
			HasMysteriousData:  hasMysterious,
		}
		pos += 20

		if hasMysterious {
			lod.MysteriousData1, _, _ = bytecodec.DecodeU32(data[pos:])
			lod.MysteriousData2, _, _ = bytecodec.DecodeU32(data[pos+4:])
			pos += 8
		}

		lods = append(lods, lod)
	}

	return &RigidModel{
		Header: Header{
			Version:      version,
			LodsCount:    lodsCount,
			BaseSkeleton: baseSkeleton,
			Lods:         lods,
		},
		Tail: data[pos:],
	}, nil
}

// Encode serializes rm into its on-disk byte-exact form.
func Encode(rm *RigidModel) ([]byte, error) {
	buf := make([]byte, 0, fixedHeaderSize+len(rm.Header.Lods)*28+len(rm.Tail))
	buf = bytecodec.EncodeStringU8(buf, signature)
	buf = bytecodec.EncodeU32(buf, rm.Header.Version)
	buf = bytecodec.EncodeU32(buf, uint32(len(rm.Header.Lods)))

	var err error
	buf, err = bytecodec.EncodeStringU8ZeroPadded(buf, rm.Header.BaseSkeleton, baseSkeletonFieldSize)
	if err != nil {
		return nil, packerr.Wrap(packerr.BadLength, "rigidmodel: base_skeleton too long", err)
	}

	for _, lod := range rm.Header.Lods {
		buf = bytecodec.EncodeU32(buf, lod.GroupsCount)
		buf = bytecodec.EncodeU32(buf, lod.VerticesDataLength)
		buf = bytecodec.EncodeU32(buf, lod.IndexDataLength)
		buf = bytecodec.EncodeU32(buf, lod.StartOffset)
		buf = bytecodec.EncodeF32(buf, lod.LodZoomFactor)
		if lod.HasMysteriousData {
			buf = bytecodec.EncodeU32(buf, lod.MysteriousData1)
			buf = bytecodec.EncodeU32(buf, lod.MysteriousData2)
		}
	}

	buf = append(buf, rm.Tail...)
	return buf, nil
}

// PatchAttilaToWarhammer applies the Attila->Warhammer structural patch in
// place: bumps the version to 7, and for every Lod sets the first
// mysterious field to its index, the second to 0, and increases
// start_offset by 8*lods_count. Only valid when the input is version 6.
func PatchAttilaToWarhammer(rm *RigidModel) error {
	switch rm.Header.Version {
	case VersionWarhammer:
		return packerr.New(packerr.Unsupported, "rigidmodel: already a Warhammer RigidModel")
	case VersionAttila:
		rm.Header.Version = VersionWarhammer
		lodsCount := uint32(len(rm.Header.Lods))
		for i := range rm.Header.Lods {
			rm.Header.Lods[i].MysteriousData1 = uint32(i)
			rm.Header.Lods[i].MysteriousData2 = 0
			rm.Header.Lods[i].HasMysteriousData = true
			rm.Header.Lods[i].StartOffset += 8 * lodsCount
		}
		return nil
	default:
		return packerr.Newf(packerr.Unsupported, "rigidmodel: unknown RigidModel version %d", rm.Header.Version)
	}
}
