package png

import (
	"errors"
	"fmt"

	"github.com/deepteams/pnghide/internal/container"
)

// StandardHeader is the fixed 8-byte signature that begins every PNG
// datastream.
var StandardHeader = [container.SignatureSize]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

var (
	ErrInvalidSignature = errors.New("png: not a PNG file (bad signature)")
	ErrChunkNotFound    = errors.New("png: chunk not found")
)

// Png is an ordered sequence of chunks preceded by the PNG signature.
// Chunk order is preserved across parse, mutation, and serialization;
// no rendering-specific reordering is performed.
type Png struct {
	chunks []Chunk
}

// FromChunks assembles a Png from an explicit chunk sequence with no
// further validation.
func FromChunks(chunks []Chunk) *Png {
	return &Png{chunks: chunks}
}

// Parse reads a full PNG datastream: the 8-byte signature followed by
// chunk records filling the remainder of the buffer exactly. A single
// bad chunk invalidates the whole parse; chunk errors are wrapped with
// the byte offset at which they occurred.
func Parse(data []byte) (*Png, error) {
	if len(data) < container.SignatureSize || string(data[:container.SignatureSize]) != container.Signature {
		return nil, ErrInvalidSignature
	}
	p := &Png{}
	pos := container.SignatureSize
	for pos < len(data) {
		c, n, err := ReadChunk(data[pos:])
		if err != nil {
			return nil, fmt.Errorf("png: chunk at offset %d: %w", pos, err)
		}
		p.chunks = append(p.chunks, c)
		pos += n
	}
	return p, nil
}

// AppendChunk adds a chunk at the end of the sequence.
func (p *Png) AppendChunk(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// RemoveFirstChunk removes and returns the first chunk whose type code's
// string form equals name. Later duplicates are untouched.
func (p *Png) RemoveFirstChunk(name string) (Chunk, error) {
	for i, c := range p.chunks {
		if c.Type().String() == name {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return Chunk{}, fmt.Errorf("%w: %q", ErrChunkNotFound, name)
}

// ChunkByType returns the first chunk whose type code's string form
// equals name.
func (p *Png) ChunkByType(name string) (Chunk, bool) {
	for _, c := range p.chunks {
		if c.Type().String() == name {
			return c, true
		}
	}
	return Chunk{}, false
}

// Chunks returns the chunk sequence in stored order. The returned slice
// is the Png's own backing store and must not be modified.
func (p *Png) Chunks() []Chunk {
	return p.chunks
}

// Bytes serializes the datastream: signature followed by each chunk's
// on-wire form in stored order. It round-trips exactly with Parse.
func (p *Png) Bytes() []byte {
	size := container.SignatureSize
	for _, c := range p.chunks {
		size += container.ChunkOverhead + len(c.Data())
	}
	buf := make([]byte, 0, size)
	buf = append(buf, container.Signature...)
	for _, c := range p.chunks {
		buf = c.appendTo(buf)
	}
	return buf
}
