package source

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/samber/oops"
	"resty.dev/v3"
)

const maxLineSize = 16 * 1024 * 1024

// Reader loads input files and URLs as ordered lines.
type Reader struct {
	client *resty.Client
}

// NewReader creates a Reader whose URL fetches time out after timeout.
func NewReader(timeout time.Duration) *Reader {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return &Reader{client: client}
}

// Close releases the HTTP client.
func (r *Reader) Close() error {
	return r.client.Close()
}

// ReadLines returns the lines of a local file or http(s) URL.
func (r *Reader) ReadLines(ctx context.Context, input string) ([]string, error) {
	if IsURL(input) {
		return r.fetchLines(ctx, input)
	}

	return readFileLines(input)
}

// IsURL reports whether input names an http or https resource.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

func readFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, oops.
			Code("FILE_READ_ERROR").
			With("path", path).
			Hint("Check that the file exists and is readable").
			Wrapf(err, "opening %q", path)
	}
	defer func() {
		_ = f.Close()
	}()

	lines, err := splitLines(f)
	if err != nil {
		return nil, oops.
			Code("FILE_READ_ERROR").
			With("path", path).
			Wrapf(err, "reading %q", path)
	}

	return lines, nil
}

// splitLines splits on \n, dropping a trailing \r from each line and a
// leading UTF-8 BOM.
func splitLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(lines) == 0 {
			line = stripBOM(line)
		}
		lines = append(lines, string(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func stripBOM(content []byte) []byte {
	return bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})
}
