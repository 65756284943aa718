package packfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/wismer/packedit/pkg/bytecodec"
	"github.com/wismer/packedit/pkg/packerr"
)

// readNULTerminatedASCII reads an ASCII string from data starting at
// offset up to (and consuming) the next NUL byte. Returns the string and
// the number of bytes consumed, including the terminator.
func readNULTerminatedASCII(data []byte, offset int) (string, int, error) {
	idx := bytes.IndexByte(data[offset:], 0)
	if idx < 0 {
		return "", 0, packerr.New(packerr.BadFormat, "expected NUL-terminated string, found none")
	}
	return string(data[offset : offset+idx]), idx + 1, nil
}

// Decode parses a complete PackFile from raw bytes: header, parent
// references, packed-file index, and payload region.
func Decode(data []byte) (*PackFile, error) {
	header, pos, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}

	parents := make([]string, 0, header.PackFileCount)
	for i := uint32(0); i < header.PackFileCount; i++ {
		if pos >= len(data) {
			return nil, packerr.New(packerr.BadFormat, "parent list: truncated")
		}
		name, n, err := readNULTerminatedASCII(data, pos)
		if err != nil {
			return nil, packerr.Wrap(packerr.BadFormat, "parent list: truncated", err)
		}
		parents = append(parents, name)
		pos += n
	}

	entries := make([]PackedFile, 0, header.PackedFileCount)
	withTimestamps := header.HasFlag(HasIndexWithTimestamps)
	for i := uint32(0); i < header.PackedFileCount; i++ {
		if pos+4 > len(data) {
			return nil, packerr.New(packerr.BadFormat, "packed-file index: truncated size")
		}
		size, n, err := bytecodec.DecodeU32(data[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		var ts uint32
		if withTimestamps {
			if pos+4 > len(data) {
				return nil, packerr.New(packerr.BadFormat, "packed-file index: truncated timestamp")
			}
			ts, n, err = bytecodec.DecodeU32(data[pos:])
			if err != nil {
				return nil, err
			}
			pos += n
		}

		if pos >= len(data) {
			return nil, packerr.New(packerr.BadFormat, "packed-file index: truncated path")
		}
		pathStr, n, err := readNULTerminatedASCII(data, pos)
		if err != nil {
			return nil, packerr.Wrap(packerr.BadFormat, "packed-file index: truncated path", err)
		}
		pos += n

		entries = append(entries, PackedFile{
			Path:         strings.Split(pathStr, "/"),
			Size:         size,
			Timestamp:    ts,
			HasTimestamp: withTimestamps,
		})
	}

	cursor := pos
	for i := range entries {
		size := int(entries[i].Size)
		if cursor+size > len(data) {
			return nil, packerr.Newf(packerr.BadFormat, "payload: entry %q exceeds file bounds", entries[i].PathString())
		}
		entries[i].Data = data[cursor : cursor+size]
		cursor += size
	}

	return &PackFile{
		Header:  *header,
		Parents: parents,
		Entries: entries,
	}, nil
}

// Encode serializes pf into its on-disk byte-exact form. Header counts and
// index size are recomputed from the current Parents/Entries so the result
// is always internally consistent, even if the caller mutated the archive
// without maintaining those fields by hand.
func Encode(pf *PackFile) []byte {
	header := pf.Header
	header.PackFileCount = uint32(len(pf.Parents))
	header.PackedFileCount = uint32(len(pf.Entries))

	parentsSize := 0
	for _, p := range pf.Parents {
		parentsSize += len(p) + 1
	}
	header.PackFileIndexSize = uint32(parentsSize)

	withTimestamps := header.HasFlag(HasIndexWithTimestamps)
	indexSize := 0
	for _, e := range pf.Entries {
		indexSize += 4 // size
		if withTimestamps {
			indexSize += 4 // timestamp
		}
		indexSize += len(e.PathString()) + 1 // NUL-terminated path
	}
	header.PackedFileIndexSize = uint32(indexSize)

	buf := make([]byte, 0, headerFixedSize+parentsSize+indexSize+len(pf.Entries))
	buf = encodeHeader(buf, &header)

	for _, p := range pf.Parents {
		buf = append(buf, p...)
		buf = append(buf, 0)
	}

	for _, e := range pf.Entries {
		buf = bytecodec.EncodeU32(buf, uint32(len(e.Data)))
		if withTimestamps {
			buf = bytecodec.EncodeU32(buf, e.Timestamp)
		}
		buf = append(buf, e.PathString()...)
		buf = append(buf, 0)
	}

	for _, e := range pf.Entries {
		buf = append(buf, e.Data...)
	}

	return buf
}

// ValidArchiveName reports whether name ends in ".pack", the only suffix
// packedit will open by path.
func ValidArchiveName(name string) bool {
	return strings.HasSuffix(name, ".pack")
}

// Open reads and decodes a PackFile from disk. The filename must end in
// ".pack"; any other suffix fails BadName. On decode failure the file is
// simply not opened — there is no partial in-memory archive to roll back.
func Open(path string) (*PackFile, error) {
	name := filepath.Base(path)
	if !ValidArchiveName(name) {
		return nil, packerr.Newf(packerr.BadName, "archive name %q must end in \".pack\"", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, packerr.Wrap(packerr.Io, "open: read failed", err)
	}

	pf, err := Decode(data)
	if err != nil {
		return nil, err
	}
	pf.FilePath = path
	pf.DisplayName = name
	return pf, nil
}

// Save encodes pf and writes it to path, the PackFile's current FilePath if
// path is empty. Updates FilePath/DisplayName on success when a new path
// was given.
func Save(pf *PackFile, path string) error {
	if path == "" {
		if pf.FilePath == "" {
			return packerr.New(packerr.Io, "save: no path given and archive has none on record")
		}
		path = pf.FilePath
	}

	data := Encode(pf)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return packerr.Wrap(packerr.Io, "save: write failed", err)
	}

	pf.FilePath = path
	pf.DisplayName = filepath.Base(path)
	return nil
}
