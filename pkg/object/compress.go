package object

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// DefaultCompressionLevel favours speed, like the reference writer.
const DefaultCompressionLevel = zlib.BestSpeed

// compressZlib deflates data into a zlib stream at the given level.
func compressZlib(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decompressZlib inflates a complete zlib stream.
func decompressZlib(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
