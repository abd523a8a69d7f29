package pnghide

import (
	"bytes"
	"testing"

	"github.com/deepteams/pnghide/png"
)

// FuzzParse ensures no input can panic the chunk parser, and that any
// successful parse re-serializes to the exact input bytes.
func FuzzParse(f *testing.F) {
	mk := func(name string, data []byte) png.Chunk {
		ct, _ := png.ChunkTypeFromString(name)
		return png.NewChunk(ct, data)
	}
	valid := png.FromChunks([]png.Chunk{
		mk("IHDR", make([]byte, 13)),
		mk("tEXt", []byte("seed message")),
		mk("IEND", nil),
	}).Bytes()

	f.Add(valid)
	f.Add(valid[:len(valid)-5]) // truncated final chunk
	f.Add(valid[:8])            // signature only
	f.Add([]byte("not a png at all"))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		Print(data) //nolint:errcheck
		p, err := png.Parse(data)
		if err != nil {
			return
		}
		if !bytes.Equal(p.Bytes(), data) {
			t.Errorf("parse/serialize round trip changed %d input bytes", len(data))
		}
	})
}
