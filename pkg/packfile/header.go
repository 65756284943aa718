package packfile

import (
	"github.com/wismer/packedit/pkg/bytecodec"
	"github.com/wismer/packedit/pkg/packerr"
)

// Magic identifies the on-disk PackFile format version. Only the four
// values below are accepted; PFH5 with HasEncryptedIndex set is still a
// PFH5 magic, the encryption is carried in the bitmask, not the magic.
type Magic string

const (
	MagicPFH5 Magic = "PFH5"
	MagicPFH4 Magic = "PFH4"
	MagicPFH3 Magic = "PFH3"
	MagicPFH0 Magic = "PFH0"
)

// ValidMagic reports whether m is one of the four supported magics.
func ValidMagic(m Magic) bool {
	switch m {
	case MagicPFH5, MagicPFH4, MagicPFH3, MagicPFH0:
		return true
	default:
		return false
	}
}

// Bitmask flags, from low bit.
const (
	HasExtendedHeader      uint32 = 0x01
	HasEncryptedData       uint32 = 0x20
	HasIndexWithTimestamps uint32 = 0x40
	HasEncryptedIndex      uint32 = 0x80

	// packFileTypeMask isolates the low 4 bits that some versions of the
	// format overload with the PackFileType.
	packFileTypeMask uint32 = 0x0F
)

// PackFileType enumerates the archive's declared purpose.
type PackFileType uint32

const (
	TypeBoot PackFileType = iota
	TypeRelease
	TypePatch
	TypeMod
	TypeMovie
)

// headerFixedSize is the byte length of the fixed-width portion of the
// header, before the variable-length parent name list.
const headerFixedSize = 28

// Header holds the fixed-width header fields. PackFileType and Bitmask are
// kept as separate logical values in memory and ORed together only at
// encode time, since some versions of the format overload the low 4 bits
// of the bitmask word with the PackFileType.
type Header struct {
	Magic               Magic
	PackFileType        PackFileType
	Bitmask             uint32
	PackFileCount       uint32
	PackFileIndexSize   uint32
	PackedFileCount     uint32
	PackedFileIndexSize uint32
	CreationTime        uint32
}

// HasFlag reports whether the given bitmask flag is set.
func (h *Header) HasFlag(flag uint32) bool {
	return h.Bitmask&flag != 0
}

// HeaderSize returns the derived total size of the fixed header plus the
// parent-name list that immediately follows it.
func (h *Header) HeaderSize(parents []string) int {
	size := headerFixedSize
	for _, p := range parents {
		size += len(p) + 1
	}
	return size
}

// decodeHeader reads the 28-byte fixed header starting at offset 0 of data.
func decodeHeader(data []byte) (*Header, int, error) {
	if len(data) < headerFixedSize {
		return nil, 0, packerr.New(packerr.BadFormat, "header: truncated")
	}
	magic := Magic(data[0:4])
	if !ValidMagic(magic) {
		return nil, 0, packerr.Newf(packerr.BadFormat, "header: unrecognized magic %q", string(data[0:4]))
	}

	raw, _, err := bytecodec.DecodeU32(data[4:8])
	if err != nil {
		return nil, 0, err
	}
	packFileCount, _, err := bytecodec.DecodeU32(data[8:12])
	if err != nil {
		return nil, 0, err
	}
	packFileIndexSize, _, err := bytecodec.DecodeU32(data[12:16])
	if err != nil {
		return nil, 0, err
	}
	packedFileCount, _, err := bytecodec.DecodeU32(data[16:20])
	if err != nil {
		return nil, 0, err
	}
	packedFileIndexSize, _, err := bytecodec.DecodeU32(data[20:24])
	if err != nil {
		return nil, 0, err
	}
	creationTime, _, err := bytecodec.DecodeU32(data[24:28])
	if err != nil {
		return nil, 0, err
	}

	h := &Header{
		Magic:               magic,
		PackFileType:        PackFileType(raw & packFileTypeMask),
		Bitmask:             raw &^ packFileTypeMask,
		PackFileCount:       packFileCount,
		PackFileIndexSize:   packFileIndexSize,
		PackedFileCount:     packedFileCount,
		PackedFileIndexSize: packedFileIndexSize,
		CreationTime:        creationTime,
	}

	if h.HasFlag(HasEncryptedIndex) || h.HasFlag(HasEncryptedData) {
		return nil, 0, packerr.New(packerr.Unsupported, "header: encrypted archives are not supported")
	}

	return h, headerFixedSize, nil
}

// encodeHeader appends the 28-byte fixed header to buf, ORing the
// PackFileType back into the low bits of the bitmask word.
func encodeHeader(buf []byte, h *Header) []byte {
	buf = append(buf, []byte(h.Magic)...)
	raw := h.Bitmask | (uint32(h.PackFileType) & packFileTypeMask)
	buf = bytecodec.EncodeU32(buf, raw)
	buf = bytecodec.EncodeU32(buf, h.PackFileCount)
	buf = bytecodec.EncodeU32(buf, h.PackFileIndexSize)
	buf = bytecodec.EncodeU32(buf, h.PackedFileCount)
	buf = bytecodec.EncodeU32(buf, h.PackedFileIndexSize)
	buf = bytecodec.EncodeU32(buf, h.CreationTime)
	return buf
}
