package http

import (
	"bufio"
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"golang.org/x/net/html/charset"
)

// readBody decodes the response per Content-Encoding and converts it to
// UTF-8 using the charset from Content-Type or the document itself.
// At most limit decoded bytes are read.
func readBody(resp *http.Response, limit int64) (string, error) {
	decoded, err := decodeContent(resp.Body, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return "", err
	}

	raw, err := io.ReadAll(io.LimitReader(decoded, limit))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if len(raw) == 0 {
		return "", nil
	}

	reader, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return string(raw), nil
	}
	utf8, err := io.ReadAll(reader)
	if err != nil {
		return string(raw), nil
	}
	return string(utf8), nil
}

// decodeContent wraps body with a decompressor for the given encoding.
func decodeContent(body io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return body, nil
	case "gzip", "x-gzip":
		r, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("gzip body: %w", err)
		}
		return r, nil
	case "deflate":
		// Servers send either zlib-wrapped or raw deflate streams.
		br := bufio.NewReader(body)
		if hdr, err := br.Peek(2); err == nil && isZlibHeader(hdr) {
			r, err := zlib.NewReader(br)
			if err != nil {
				return nil, fmt.Errorf("deflate body: %w", err)
			}
			return r, nil
		}
		return flate.NewReader(br), nil
	case "br":
		return brotli.NewReader(body), nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

// isZlibHeader reports whether hdr starts a zlib stream (RFC 1950).
func isZlibHeader(hdr []byte) bool {
	return hdr[0]&0x0f == 8 && (uint16(hdr[0])<<8|uint16(hdr[1]))%31 == 0
}
