package pnghide

import (
	"errors"
	"fmt"

	"github.com/deepteams/pnghide/png"
)

// ErrReservedBit is returned by Encode for a chunk type whose reserved
// bit is set. Such types are structurally decodable but not valid in the
// current PNG revision, so embedding under them is refused.
var ErrReservedBit = errors.New("pnghide: chunk type has its reserved bit set")

// Encode embeds message in file under a new chunk of the given type and
// returns the rewritten datastream. The type must be 4 ASCII letters
// with a valid reserved bit (third letter uppercase).
func Encode(file []byte, typeName, message string) ([]byte, error) {
	typ, err := png.ChunkTypeFromString(typeName)
	if err != nil {
		return nil, err
	}
	if !typ.IsReservedBitValid() {
		return nil, fmt.Errorf("%w: %q", ErrReservedBit, typeName)
	}
	p, err := png.Parse(file)
	if err != nil {
		return nil, err
	}
	p.AppendChunk(png.NewChunk(typ, []byte(message)))
	return p.Bytes(), nil
}

// Decode returns the message carried by the first chunk of the given
// type. The file is not modified. Returns png.ErrChunkNotFound if no
// such chunk exists and png.ErrNotUTF8 if its payload is not text.
func Decode(file []byte, typeName string) (string, error) {
	p, err := png.Parse(file)
	if err != nil {
		return "", err
	}
	c, ok := p.ChunkByType(typeName)
	if !ok {
		return "", fmt.Errorf("%w: %q", png.ErrChunkNotFound, typeName)
	}
	return c.DataString()
}

// Remove strips the first chunk of the given type and returns the
// rewritten datastream. Later duplicates are untouched. Returns
// png.ErrChunkNotFound if no such chunk exists.
func Remove(file []byte, typeName string) ([]byte, error) {
	p, err := png.Parse(file)
	if err != nil {
		return nil, err
	}
	if _, err := p.RemoveFirstChunk(typeName); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// ChunkInfo summarizes one chunk of a PNG datastream.
type ChunkInfo struct {
	Type       string
	Length     uint32
	Critical   bool
	Public     bool
	SafeToCopy bool
}

// Print parses file and returns a summary of every chunk in stored order.
func Print(file []byte) ([]ChunkInfo, error) {
	p, err := png.Parse(file)
	if err != nil {
		return nil, err
	}
	infos := make([]ChunkInfo, 0, len(p.Chunks()))
	for _, c := range p.Chunks() {
		infos = append(infos, ChunkInfo{
			Type:       c.Type().String(),
			Length:     c.Length(),
			Critical:   c.Type().IsCritical(),
			Public:     c.Type().IsPublic(),
			SafeToCopy: c.Type().IsSafeToCopy(),
		})
	}
	return infos, nil
}
