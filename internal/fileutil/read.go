package fileutil

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/ulikunitz/xz"

	apperrors "github.com/fredericlepied/lshw-normalization/core/errors"
)

// Compression magic numbers. Detection goes by content, not filename, so a
// mislabeled file still reads correctly.
var (
	xzMagic   = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
	gzipMagic = []byte{0x1f, 0x8b}
)

// ReadDocument reads path, transparently decompressing xz and gzip content.
func ReadDocument(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewIO("read", path, err)
	}

	switch {
	case bytes.HasPrefix(data, xzMagic):
		// The xz reader does not need closing.
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, apperrors.NewIO("decompress", path, err)
		}
		return readAll(xzr, path)
	case bytes.HasPrefix(data, gzipMagic):
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, apperrors.NewIO("decompress", path, err)
		}
		defer gzr.Close()
		return readAll(gzr, path)
	}

	return data, nil
}

func readAll(r io.Reader, path string) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewIO("decompress", path, err)
	}
	return data, nil
}
