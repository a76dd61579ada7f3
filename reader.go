package dumpsql

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/nao1215/dumpsql/domain/model"
)

// readSource reads all bytes from r and decodes them under the given
// encoding. Read and decode failures are fatal and returned unchanged
// apart from error wrapping; there is no retry.
func readSource(r io.Reader, enc model.Encoding) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	return decodeSource(data, enc)
}

// readSourceFile opens a script file and decodes it under the given
// encoding. Compressed dumps (.gz, .bz2, .xz, .zst) are decompressed
// transparently based on the file extension.
func readSourceFile(path string, enc model.Encoding) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	defer f.Close()

	reader, closeReader, err := newDecompressedReader(f, compressionForPath(path))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSource, err)
	}

	text, err := readSource(reader, enc)
	if closeErr := closeReader(); closeErr != nil && err == nil {
		return "", fmt.Errorf("%w: %w", ErrReadSource, closeErr)
	}
	return text, err
}

// decodeSource converts raw script bytes into a string under the given
// encoding.
func decodeSource(data []byte, enc model.Encoding) (string, error) {
	var decoder *encoding.Decoder
	switch enc {
	case model.EncodingUTF16LE:
		decoder = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case model.EncodingLatin1:
		decoder = charmap.ISO8859_1.NewDecoder()
	default:
		// UTF-8 input needs no transformation beyond BOM stripping.
		return string(stripUTF8BOM(data)), nil
	}

	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeSource, err)
	}
	return string(decoded), nil
}

// stripUTF8BOM removes a leading UTF-8 byte order mark if present.
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
