package fetch

import (
	"compress/gzip"
	"compress/zlib"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
)

// decodeBody unwraps a response body according to its Content-Encoding.
// Unknown or empty encodings pass through untouched.
func decodeBody(encoding string, body io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "gzip":
		r, err := gzip.NewReader(body)
		if err != nil {
			return nil, errors.Wrap(err, "gzip reader")
		}
		return r, nil
	case "deflate":
		r, err := zlib.NewReader(body)
		if err != nil {
			return nil, errors.Wrap(err, "deflate reader")
		}
		return r, nil
	case "br":
		return io.NopCloser(brotli.NewReader(body)), nil
	case "zstd":
		d, err := zstd.NewReader(body)
		if err != nil {
			return nil, errors.Wrap(err, "zstd reader")
		}
		return d.IOReadCloser(), nil
	default:
		return io.NopCloser(body), nil
	}
}
