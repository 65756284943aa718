// Package loc implements the Loc localization table codec: a fixed 14-byte
// header followed by key/text/tooltip rows.
package loc

import (
	"github.com/wismer/packedit/pkg/bytecodec"
	"github.com/wismer/packedit/pkg/packerr"
)

const (
	byteOrderMark uint16 = 0xFFFE
	tag                  = "LOC"
	tagFieldSize         = 4 // "LOC" plus one NUL pad byte
	version       uint32 = 1

	headerSize = 2 + tagFieldSize + 4 + 4 // BOM + tag + version + entry_count
)

// Row is one Loc table entry.
type Row struct {
	Key     string
	Text    string
	Tooltip bool
}

// Loc is an ordered list of rows, preserving insertion order across
// decode/encode. The editor UI may add new rows under the temporary key
// token "New"; the codec treats them as ordinary rows.
type Loc struct {
	Rows []Row
}

// Decode parses a complete Loc table from raw bytes.
func Decode(data []byte) (*Loc, error) {
	if len(data) < headerSize {
		return nil, packerr.New(packerr.BadFormat, "loc: truncated header")
	}

	bom, n, err := bytecodec.DecodeU16(data)
	if err != nil {
		return nil, err
	}
	if bom != byteOrderMark {
		return nil, packerr.Newf(packerr.BadFormat, "loc: bad byte-order mark 0x%04X", bom)
	}
	pos := n

	tagBytes, n, err := bytecodec.DecodeStringU8ZeroPadded(data[pos:], tagFieldSize)
	if err != nil {
		return nil, err
	}
	if tagBytes != tag {
		return nil, packerr.Newf(packerr.BadFormat, "loc: bad tag %q", tagBytes)
	}
	pos += n

	ver, n, err := bytecodec.DecodeU32(data[pos:])
	if err != nil {
		return nil, err
	}
	if ver != version {
		return nil, packerr.Newf(packerr.BadFormat, "loc: unsupported version %d", ver)
	}
	pos += n

	count, n, err := bytecodec.DecodeU32(data[pos:])
	if err != nil {
		return nil, err
	}
	pos += n

	rows := make([]Row, 0, count)
	for i := uint32(0); i < count; i++ {
		key, n, err := bytecodec.DecodePackedStringU16(data[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		text, n, err := bytecodec.DecodePackedStringU16(data[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		tooltip, n, err := bytecodec.DecodeBool(data[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		rows = append(rows, Row{Key: key, Text: text, Tooltip: tooltip})
	}

	return &Loc{Rows: rows}, nil
}

// Encode serializes l into its on-disk byte-exact form.
func Encode(l *Loc) []byte {
	buf := make([]byte, 0, headerSize+len(l.Rows)*8)
	buf = bytecodec.EncodeU16(buf, byteOrderMark)
	buf, _ = bytecodec.EncodeStringU8ZeroPadded(buf, tag, tagFieldSize)
	buf = bytecodec.EncodeU32(buf, version)
	buf = bytecodec.EncodeU32(buf, uint32(len(l.Rows)))

	for _, row := range l.Rows {
		buf = bytecodec.EncodePackedStringU16(buf, row.Key)
		buf = bytecodec.EncodePackedStringU16(buf, row.Text)
		buf = bytecodec.EncodeBool(buf, row.Tooltip)
	}

	return buf
}
