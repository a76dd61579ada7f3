package dumpsql

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression file extensions for dump scripts.
const (
	extGZ   = ".gz"
	extBZ2  = ".bz2"
	extXZ   = ".xz"
	extZSTD = ".zst"
)

// compressionForPath returns the compression extension of a path, or
// the empty string for plain files.
func compressionForPath(path string) string {
	for _, ext := range []string{extGZ, extBZ2, extXZ, extZSTD} {
		if strings.HasSuffix(path, ext) {
			return ext
		}
	}
	return ""
}

// newDecompressedReader wraps r with a decompression reader selected by
// file extension. The returned closer releases decoder resources and
// must be called after reading; for plain input it is a no-op.
func newDecompressedReader(r io.Reader, ext string) (io.Reader, func() error, error) {
	switch ext {
	case "":
		return r, func() error { return nil }, nil

	case extGZ:
		gzReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, gzReader.Close, nil

	case extBZ2:
		// bzip2.NewReader doesn't need closing
		return bzip2.NewReader(r), func() error { return nil }, nil

	case extXZ:
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		// xz.Reader doesn't have a Close method
		return xzReader, func() error { return nil }, nil

	case extZSTD:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder.IOReadCloser(), func() error { decoder.Close(); return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported compression extension: %s", ext)
	}
}
