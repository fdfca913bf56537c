package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// maybeDecompress inflates gzip or zstd input, recognized by its magic
// bytes. Anything else is returned untouched.
func maybeDecompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("reading gzip input: %w", err)
		}
		defer func() { _ = zr.Close() }()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("reading gzip input: %w", err)
		}
		return out, nil
	case bytes.HasPrefix(data, zstdMagic):
		zr, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("reading zstd input: %w", err)
		}
		defer zr.Close()
		out, err := zr.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("reading zstd input: %w", err)
		}
		return out, nil
	default:
		return data, nil
	}
}
