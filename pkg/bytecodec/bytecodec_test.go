package bytecodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wismer/packedit/pkg/packerr"
)

func TestU32RoundTrip(t *testing.T) {
	buf := EncodeU32(nil, 0xDEADBEEF)
	v, n, err := DecodeU32(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, uint32(0xDEADBEEF), v)
}

func TestF32RoundTrip(t *testing.T) {
	buf := EncodeF32(nil, 3.5)
	v, _, err := DecodeF32(buf)
	require.NoError(t, err)
	require.Equal(t, float32(3.5), v)
}

func TestDecodeU32Truncated(t *testing.T) {
	_, _, err := DecodeU32([]byte{1, 2})
	require.Error(t, err)
	require.True(t, packerr.Is(err, packerr.BadFormat))
}

func TestDecodeBool(t *testing.T) {
	v, n, err := DecodeBool([]byte{0})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.False(t, v)

	v, _, err = DecodeBool([]byte{7})
	require.NoError(t, err)
	require.True(t, v)
}

func TestStringU8ZeroPaddedRoundTrip(t *testing.T) {
	buf, err := EncodeStringU8ZeroPadded(nil, "hello", 8)
	require.NoError(t, err)
	require.Len(t, buf, 8)

	s, n, err := DecodeStringU8ZeroPadded(buf, 8)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, "hello", s)
}

func TestStringU8ZeroPaddedTooLong(t *testing.T) {
	_, err := EncodeStringU8ZeroPadded(nil, "too long for this field", 8)
	require.Error(t, err)
	require.True(t, packerr.Is(err, packerr.BadLength))
}

func TestStringU8ZeroPaddedNonZeroPadding(t *testing.T) {
	buf := []byte{'a', 'b', 0, 'c'}
	_, _, err := DecodeStringU8ZeroPadded(buf, 4)
	require.Error(t, err)
	require.True(t, packerr.Is(err, packerr.BadEncoding))
}

func TestPackedStringU16RoundTrip(t *testing.T) {
	buf := EncodePackedStringU16(nil, "hello")
	s, n, err := DecodePackedStringU16(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, "hello", s)
}

func TestPackedStringU16EmptyAndUnicode(t *testing.T) {
	for _, s := range []string{"", "héllo wörld", "日本語"} {
		buf := EncodePackedStringU16(nil, s)
		got, _, err := DecodePackedStringU16(buf)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestPackedStringU16LengthExceedsRemaining(t *testing.T) {
	buf := EncodeU16(nil, 100)
	_, _, err := DecodePackedStringU16(buf)
	require.Error(t, err)
	require.True(t, packerr.Is(err, packerr.BadLength))
}

func TestDecodeStringU16(t *testing.T) {
	buf := EncodeStringU16(nil, "ABCD")
	s, n, err := DecodeStringU16(buf, 4)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, "ABCD", s)
}
