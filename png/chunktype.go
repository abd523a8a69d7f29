package png

import (
	"errors"
	"fmt"

	"github.com/deepteams/pnghide/internal/container"
)

// ChunkType is a 4-byte PNG chunk type code. Each byte is an ASCII letter
// whose case bit (bit 5) encodes one chunk property: ancillary, private,
// reserved, safe-to-copy. ChunkType is a comparable value type; two codes
// are equal iff their raw bytes are equal.
type ChunkType [container.TagSize]byte

var (
	ErrTypeLength   = errors.New("png: chunk type must be exactly 4 characters")
	ErrTypeNotAlpha = errors.New("png: chunk type must contain only ASCII letters")
)

// ChunkTypeFromBytes builds a ChunkType from 4 raw bytes. It is purely
// structural and always succeeds; use IsValid to check conformance.
func ChunkTypeFromBytes(b [container.TagSize]byte) ChunkType {
	return ChunkType(b)
}

// ChunkTypeFromString parses a chunk type code from its string form.
// The string must be exactly 4 ASCII letters; the reserved bit is not
// checked here, so codes like "Rust" parse but report IsValid() == false.
func ChunkTypeFromString(s string) (ChunkType, error) {
	if len(s) != container.TagSize {
		return ChunkType{}, fmt.Errorf("%w: got %d", ErrTypeLength, len(s))
	}
	var ct ChunkType
	for i := 0; i < container.TagSize; i++ {
		c := s[i]
		if !isASCIILetter(c) {
			return ChunkType{}, fmt.Errorf("%w: %q", ErrTypeNotAlpha, s)
		}
		ct[i] = c
	}
	return ct, nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Bytes returns the raw 4-byte type code.
func (ct ChunkType) Bytes() [container.TagSize]byte {
	return ct
}

// String returns the type code as a 4-character string.
func (ct ChunkType) String() string {
	return string(ct[:])
}

// IsCritical reports whether the chunk is critical (first byte uppercase).
// Critical chunks are required to render the image; ancillary chunks may
// be discarded by editors.
func (ct ChunkType) IsCritical() bool {
	return ct[0]&container.PropertyBit == 0
}

// IsPublic reports whether the type code is public (second byte uppercase),
// i.e. defined by the PNG specification or a registered extension.
func (ct ChunkType) IsPublic() bool {
	return ct[1]&container.PropertyBit == 0
}

// IsReservedBitValid reports whether the reserved bit (third byte case) is
// clear. The current PNG revision requires the third byte to be uppercase.
func (ct ChunkType) IsReservedBitValid() bool {
	return ct[2]&container.PropertyBit == 0
}

// IsSafeToCopy reports whether the chunk is safe to copy (fourth byte
// lowercase) across edits that modify critical chunks.
func (ct ChunkType) IsSafeToCopy() bool {
	return ct[3]&container.PropertyBit != 0
}

// IsValid reports whether the type code conforms to the current PNG
// revision: all 4 bytes ASCII letters and the reserved bit clear.
func (ct ChunkType) IsValid() bool {
	for i := 0; i < container.TagSize; i++ {
		if !isASCIILetter(ct[i]) {
			return false
		}
	}
	return ct.IsReservedBitValid()
}
