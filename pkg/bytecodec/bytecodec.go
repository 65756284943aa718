// Package bytecodec provides the low-level decode/encode primitives the
// PackFile and inner-format codecs are built on: fixed-width little-endian
// integers, and length-prefixed or zero-padded strings in ASCII, UTF-16LE
// and UTF-8.
package bytecodec

import (
	"encoding/binary"
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/wismer/packedit/pkg/packerr"
)

// DecodeU16 reads a little-endian uint16 and returns the bytes consumed (2).
func DecodeU16(data []byte) (uint16, int, error) {
	if len(data) < 2 {
		return 0, 0, packerr.New(packerr.BadFormat, "u16: need 2 bytes")
	}
	return binary.LittleEndian.Uint16(data), 2, nil
}

// DecodeU32 reads a little-endian uint32 and returns the bytes consumed (4).
func DecodeU32(data []byte) (uint32, int, error) {
	if len(data) < 4 {
		return 0, 0, packerr.New(packerr.BadFormat, "u32: need 4 bytes")
	}
	return binary.LittleEndian.Uint32(data), 4, nil
}

// DecodeI32 reads a little-endian int32 and returns the bytes consumed (4).
func DecodeI32(data []byte) (int32, int, error) {
	v, n, err := DecodeU32(data)
	return int32(v), n, err
}

// DecodeF32 reads a little-endian IEEE-754 float32 and the bytes consumed (4).
func DecodeF32(data []byte) (float32, int, error) {
	v, n, err := DecodeU32(data)
	if err != nil {
		return 0, 0, err
	}
	return math.Float32frombits(v), n, nil
}

// DecodeBool reads one byte as a boolean: 0 is false, any other value is true.
func DecodeBool(data []byte) (bool, int, error) {
	if len(data) < 1 {
		return false, 0, packerr.New(packerr.BadFormat, "bool: need 1 byte")
	}
	return data[0] != 0, 1, nil
}

// EncodeU16 appends a little-endian uint16 to buf.
func EncodeU16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

// EncodeU32 appends a little-endian uint32 to buf.
func EncodeU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// EncodeI32 appends a little-endian int32 to buf.
func EncodeI32(buf []byte, v int32) []byte {
	return EncodeU32(buf, uint32(v))
}

// EncodeF32 appends a little-endian IEEE-754 float32 to buf.
func EncodeF32(buf []byte, v float32) []byte {
	return EncodeU32(buf, math.Float32bits(v))
}

// EncodeBool appends a single boolean byte (0 or 1) to buf.
func EncodeBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}
	return append(buf, 0)
}

// DecodeStringU8 reads exactly n bytes as UTF-8.
func DecodeStringU8(data []byte, n int) (string, int, error) {
	if len(data) < n {
		return "", 0, packerr.New(packerr.BadFormat, "string_u8: truncated")
	}
	chunk := data[:n]
	if !utf8.Valid(chunk) {
		return "", 0, packerr.New(packerr.BadEncoding, "string_u8: invalid UTF-8")
	}
	return string(chunk), n, nil
}

// DecodeStringU8ZeroPadded reads n bytes, UTF-8 up to the first NUL (or end
// of the field), and requires every byte after that NUL to also be NUL.
func DecodeStringU8ZeroPadded(data []byte, n int) (string, int, error) {
	if len(data) < n {
		return "", 0, packerr.New(packerr.BadFormat, "string_u8_0padded: truncated")
	}
	chunk := data[:n]
	end := n
	for i, b := range chunk {
		if b == 0 {
			end = i
			break
		}
	}
	for _, b := range chunk[end:] {
		if b != 0 {
			return "", 0, packerr.New(packerr.BadEncoding, "string_u8_0padded: non-zero padding byte")
		}
	}
	if !utf8.Valid(chunk[:end]) {
		return "", 0, packerr.New(packerr.BadEncoding, "string_u8_0padded: invalid UTF-8")
	}
	return string(chunk[:end]), n, nil
}

// DecodeStringU16 reads 2n bytes as UTF-16LE.
func DecodeStringU16(data []byte, n int) (string, int, error) {
	need := 2 * n
	if len(data) < need {
		return "", 0, packerr.New(packerr.BadFormat, "string_u16: truncated")
	}
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		units[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return string(utf16.Decode(units)), need, nil
}

// DecodePackedStringU8 reads a u16 byte-length prefix followed by that many
// UTF-8 bytes.
func DecodePackedStringU8(data []byte) (string, int, error) {
	length, n, err := DecodeU16(data)
	if err != nil {
		return "", 0, err
	}
	rest := data[n:]
	if int(length) > len(rest) {
		return "", 0, packerr.New(packerr.BadLength, "packedfile_string_u8: length prefix exceeds remaining bytes")
	}
	s, m, err := DecodeStringU8(rest, int(length))
	if err != nil {
		return "", 0, err
	}
	return s, n + m, nil
}

// DecodePackedStringU16 reads a u16 code-unit-length prefix followed by that
// many UTF-16LE code units.
func DecodePackedStringU16(data []byte) (string, int, error) {
	length, n, err := DecodeU16(data)
	if err != nil {
		return "", 0, err
	}
	rest := data[n:]
	if int(length)*2 > len(rest) {
		return "", 0, packerr.New(packerr.BadLength, "packedfile_string_u16: length prefix exceeds remaining bytes")
	}
	s, m, err := DecodeStringU16(rest, int(length))
	if err != nil {
		return "", 0, err
	}
	return s, n + m, nil
}

// EncodeStringU8 appends s as raw UTF-8 bytes (no length prefix, no padding).
func EncodeStringU8(buf []byte, s string) []byte {
	return append(buf, s...)
}

// EncodeStringU8ZeroPadded appends s as UTF-8 into a fixed n-byte field,
// NUL-padding the remainder. Fails BadLength if s doesn't fit.
func EncodeStringU8ZeroPadded(buf []byte, s string, n int) ([]byte, error) {
	if len(s) > n {
		return buf, packerr.New(packerr.BadLength, "string_u8_0padded: value too long for field")
	}
	field := make([]byte, n)
	copy(field, s)
	return append(buf, field...), nil
}

// EncodeStringU16 appends s as raw UTF-16LE code units (no length prefix).
func EncodeStringU16(buf []byte, s string) []byte {
	units := utf16.Encode([]rune(s))
	for _, u := range units {
		buf = EncodeU16(buf, u)
	}
	return buf
}

// EncodePackedStringU8 appends a u16 byte-length prefix followed by s as
// UTF-8.
func EncodePackedStringU8(buf []byte, s string) []byte {
	buf = EncodeU16(buf, uint16(len(s)))
	return EncodeStringU8(buf, s)
}

// EncodePackedStringU16 appends a u16 code-unit-length prefix followed by s
// as UTF-16LE.
func EncodePackedStringU16(buf []byte, s string) []byte {
	units := utf16.Encode([]rune(s))
	buf = EncodeU16(buf, uint16(len(units)))
	for _, u := range units {
		buf = EncodeU16(buf, u)
	}
	return buf
}
