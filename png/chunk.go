// Package png implements the PNG chunk container: parsing a datastream
// into validated chunks, reassembling chunks into a datastream, and
// chunk lookup, insertion, and removal by type code.
//
// Image pixel data is not interpreted; IDAT payloads (like every other
// chunk payload) are treated as opaque bytes.
package png

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"unicode/utf8"

	"github.com/deepteams/pnghide/internal/container"
)

// Chunk is a single PNG chunk: a type code plus an opaque data payload.
// The on-wire form is length (4 bytes BE) ‖ type (4 bytes) ‖ data ‖
// CRC-32 (4 bytes BE, computed over type ‖ data). A Chunk is immutable
// once constructed.
type Chunk struct {
	typ  ChunkType
	data []byte
}

var (
	ErrTruncated     = errors.New("png: chunk truncated")
	ErrChunkTooLarge = errors.New("png: chunk length exceeds PNG limits")
	ErrCRCMismatch   = errors.New("png: chunk CRC mismatch")
	ErrNotUTF8       = errors.New("png: chunk data is not valid UTF-8")
)

// NewChunk builds a chunk from a type code and payload, computing its CRC.
func NewChunk(typ ChunkType, data []byte) Chunk {
	return Chunk{typ: typ, data: data}
}

// ReadChunk reads one full chunk record from data and returns the chunk
// plus the total number of bytes consumed (12 + data length).
// The stored CRC is verified against a CRC-32 recomputed over type ‖ data;
// a mismatch means corruption or tampering and fails the read.
func ReadChunk(data []byte) (Chunk, int, error) {
	if len(data) < container.LengthSize+container.TagSize {
		return Chunk{}, 0, fmt.Errorf("%w: need %d header bytes, have %d",
			ErrTruncated, container.LengthSize+container.TagSize, len(data))
	}
	length := binary.BigEndian.Uint32(data[0:4])
	if length > container.MaxChunkLength {
		return Chunk{}, 0, fmt.Errorf("%w: length %d", ErrChunkTooLarge, length)
	}
	var tag [container.TagSize]byte
	copy(tag[:], data[4:8])
	typ := ChunkTypeFromBytes(tag)

	total := container.ChunkOverhead + int(length)
	if total > len(data) {
		return Chunk{}, 0, fmt.Errorf("%w: chunk %s needs %d bytes, have %d",
			ErrTruncated, typ, total, len(data))
	}
	payload := data[8 : 8+int(length)]
	stored := binary.BigEndian.Uint32(data[8+int(length) : total])

	c := Chunk{typ: typ, data: payload}
	if crc := c.CRC(); crc != stored {
		return Chunk{}, 0, fmt.Errorf("%w: chunk %s stored %08x, computed %08x",
			ErrCRCMismatch, typ, stored, crc)
	}
	return c, total, nil
}

// Length returns the byte length of the data payload.
func (c Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// Type returns the chunk's type code.
func (c Chunk) Type() ChunkType {
	return c.typ
}

// Data returns the chunk's payload.
func (c Chunk) Data() []byte {
	return c.data
}

// CRC returns the CRC-32 (IEEE polynomial) over type ‖ data.
func (c Chunk) CRC() uint32 {
	crc := crc32.Update(0, crc32.IEEETable, c.typ[:])
	return crc32.Update(crc, crc32.IEEETable, c.data)
}

// DataString interprets the payload as UTF-8 text.
func (c Chunk) DataString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: chunk %s", ErrNotUTF8, c.typ)
	}
	return string(c.data), nil
}

// Bytes returns the chunk's on-wire form. It round-trips exactly with
// ReadChunk.
func (c Chunk) Bytes() []byte {
	buf := make([]byte, container.ChunkOverhead+len(c.data))
	c.appendTo(buf[:0])
	return buf
}

// appendTo appends the on-wire form to dst and returns the extended slice.
func (c Chunk) appendTo(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, c.Length())
	dst = append(dst, c.typ[:]...)
	dst = append(dst, c.data...)
	return binary.BigEndian.AppendUint32(dst, c.CRC())
}

// String returns a one-line human-readable summary of the chunk.
func (c Chunk) String() string {
	class := "ancillary"
	if c.typ.IsCritical() {
		class = "critical"
	}
	vis := "private"
	if c.typ.IsPublic() {
		vis = "public"
	}
	copyable := "unsafe-to-copy"
	if c.typ.IsSafeToCopy() {
		copyable = "safe-to-copy"
	}
	return fmt.Sprintf("%s (%d bytes) %s %s %s", c.typ, c.Length(), class, vis, copyable)
}
