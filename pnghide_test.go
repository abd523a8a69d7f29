package pnghide

import (
	"bytes"
	"errors"
	"testing"

	"github.com/deepteams/pnghide/png"
)

// validPngBytes builds a minimal well-formed PNG datastream: IHDR with a
// plausible 13-byte payload, one opaque IDAT, and an empty IEND.
func validPngBytes(t *testing.T) []byte {
	t.Helper()
	ihdr := []byte{
		0, 0, 0, 1, // width
		0, 0, 0, 1, // height
		8, 6, 0, 0, 0, // bit depth, color type, compression, filter, interlace
	}
	mk := func(name string, data []byte) png.Chunk {
		ct, err := png.ChunkTypeFromString(name)
		if err != nil {
			t.Fatalf("ChunkTypeFromString(%q): %v", name, err)
		}
		return png.NewChunk(ct, data)
	}
	p := png.FromChunks([]png.Chunk{
		mk("IHDR", ihdr),
		mk("IDAT", []byte{0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00, 0x05, 0x00, 0x01}),
		mk("IEND", nil),
	})
	return p.Bytes()
}

func TestEncodeDecode(t *testing.T) {
	out, err := Encode(validPngBytes(t), "RuST", "hello")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	msg, err := Decode(out, "RuST")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if msg != "hello" {
		t.Errorf("Decode = %q, want \"hello\"", msg)
	}
}

func TestEncodeKeepsImageChunks(t *testing.T) {
	src := validPngBytes(t)
	out, err := Encode(src, "hiDe", "secret")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	p, err := png.Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, name := range []string{"IHDR", "IDAT", "IEND"} {
		if _, ok := p.ChunkByType(name); !ok {
			t.Errorf("chunk %s missing after encode", name)
		}
	}
	// The new chunk goes at the end.
	chunks := p.Chunks()
	if got := chunks[len(chunks)-1].Type().String(); got != "hiDe" {
		t.Errorf("last chunk = %q, want \"hiDe\"", got)
	}
}

func TestEncodeBadType(t *testing.T) {
	src := validPngBytes(t)
	tests := []struct {
		typeName string
		wantErr  error
	}{
		{"Ru5T", png.ErrTypeNotAlpha},
		{"RuS", png.ErrTypeLength},
		{"Rust", ErrReservedBit}, // third letter lowercase: reserved bit set
	}
	for _, tt := range tests {
		if _, err := Encode(src, tt.typeName, "msg"); !errors.Is(err, tt.wantErr) {
			t.Errorf("Encode(%q) err = %v, want %v", tt.typeName, err, tt.wantErr)
		}
	}
}

func TestEncodeBadInput(t *testing.T) {
	if _, err := Encode([]byte("not a png"), "RuST", "msg"); !errors.Is(err, png.ErrInvalidSignature) {
		t.Errorf("err = %v, want ErrInvalidSignature", err)
	}
}

func TestDecodeMissingChunk(t *testing.T) {
	if _, err := Decode(validPngBytes(t), "RuST"); !errors.Is(err, png.ErrChunkNotFound) {
		t.Errorf("err = %v, want ErrChunkNotFound", err)
	}
}

func TestDecodeDoesNotMutate(t *testing.T) {
	out, err := Encode(validPngBytes(t), "RuST", "hello")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Decode(out, "RuST"); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	// A second decode still finds the chunk.
	if msg, err := Decode(out, "RuST"); err != nil || msg != "hello" {
		t.Errorf("second Decode = %q, %v; want \"hello\", nil", msg, err)
	}
}

func TestRemoveRestoresOriginal(t *testing.T) {
	src := validPngBytes(t)
	encoded, err := Encode(src, "RuST", "msg")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	removed, err := Remove(encoded, "RuST")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !bytes.Equal(removed, src) {
		t.Error("Remove(Encode(src)) != src")
	}

	// The chunk is gone, so a second removal fails.
	if _, err := Remove(removed, "RuST"); !errors.Is(err, png.ErrChunkNotFound) {
		t.Errorf("second Remove err = %v, want ErrChunkNotFound", err)
	}
}

func TestPrint(t *testing.T) {
	out, err := Encode(validPngBytes(t), "ruSt", "hi")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	infos, err := Print(out)
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	if len(infos) != 4 {
		t.Fatalf("len(infos) = %d, want 4", len(infos))
	}
	if infos[0].Type != "IHDR" || !infos[0].Critical || !infos[0].Public || infos[0].SafeToCopy {
		t.Errorf("IHDR summary wrong: %+v", infos[0])
	}
	if infos[0].Length != 13 {
		t.Errorf("IHDR length = %d, want 13", infos[0].Length)
	}
	last := infos[3]
	if last.Type != "ruSt" || last.Critical || last.Public || !last.SafeToCopy {
		t.Errorf("ruSt summary wrong: %+v", last)
	}
}

func TestPrintBadInput(t *testing.T) {
	if _, err := Print([]byte{1, 2, 3}); !errors.Is(err, png.ErrInvalidSignature) {
		t.Errorf("err = %v, want ErrInvalidSignature", err)
	}
}
