// Package pnghide hides, retrieves, and removes secret payloads inside
// custom ancillary chunks of PNG files.
//
// The package operates at the chunk level of the PNG container format:
// a message is carried as the data payload of a chunk with a
// caller-chosen 4-letter type code, appended after the image's standard
// chunks. The image's rendering data is never touched, so the file stays
// a valid PNG for any viewer.
//
// All operations are pure transformations over in-memory byte buffers;
// file I/O belongs to the caller (see cmd/pnghide for the CLI).
package pnghide
