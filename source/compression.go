package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how a blob is compressed.
type Compression uint8

const (
	// CompressionAuto detects the compression from the blob name suffix
	// (".zst", ".zstd", ".lz4").
	CompressionAuto Compression = iota
	// CompressionNone reads the blob as is.
	CompressionNone
	// CompressionZSTD decodes a zstd stream.
	CompressionZSTD
	// CompressionLZ4 decodes an lz4 frame.
	CompressionLZ4
)

// String returns the name of the compression.
func (c Compression) String() string {
	switch c {
	case CompressionAuto:
		return "auto"
	case CompressionNone:
		return "none"
	case CompressionZSTD:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// DetectCompression returns the compression implied by a blob name.
func DetectCompression(name string) Compression {
	switch {
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		return CompressionZSTD
	case strings.HasSuffix(name, ".lz4"):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// decompress wraps r according to c. The returned closer releases decoder
// resources; it does not close r.
func decompress(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case CompressionNone:
		return r, func() {}, nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}
		return dec, dec.Close, nil
	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("source: unknown compression %s", c)
	}
}
