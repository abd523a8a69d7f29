// Package container defines constants for the PNG datastream structure:
// the file signature, chunk field sizes, the type-code property bit, and
// well-known chunk type names.
package container

// Signature is the fixed 8-byte sequence that begins every PNG datastream.
const Signature = "\x89PNG\x0d\x0a\x1a\x0a"

// Chunk field sizes.
const (
	SignatureSize = 8  // Size of the PNG file signature
	LengthSize    = 4  // Size of a chunk's big-endian length field
	TagSize       = 4  // Size of a chunk type code (e.g. "tEXt")
	CRCSize       = 4  // Size of a chunk's big-endian CRC-32 field
	ChunkOverhead = 12 // Bytes a chunk occupies beyond its data (length + type + CRC)
)

// PropertyBit is bit 5 of a type-code byte. It is the case bit of the
// ASCII letter and carries one chunk property per byte position:
// ancillary, private, reserved, safe-to-copy.
const PropertyBit = 0x20

// MaxChunkLength is the largest valid chunk data length. PNG four-byte
// unsigned integers are limited to the range 0 to 2^31-1.
const MaxChunkLength = 1<<31 - 1

// Well-known chunk type names.
const (
	TypeIHDR = "IHDR"
	TypePLTE = "PLTE"
	TypeIDAT = "IDAT"
	TypeIEND = "IEND"
	TypeTEXt = "tEXt"
)
