package render

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/samber/oops"

	"github.com/g5becks/scriptdoc/internal/libdoc"
)

// WriteFile renders m and atomically replaces path with the result. Nothing
// is written if rendering fails.
func WriteFile(path string, m *libdoc.Model, opts Options) error {
	var buf bytes.Buffer
	if err := Write(&buf, m, opts); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", dir).
			Wrapf(err, "creating output directory")
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", dir).
			Wrapf(err, "creating temporary output file")
	}

	tempPath := tempFile.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, writeErr := tempFile.Write(buf.Bytes()); writeErr != nil {
		_ = tempFile.Close()
		return oops.
			Code("WRITE_FAILED").
			With("path", tempPath).
			Wrapf(writeErr, "writing temporary output file")
	}

	if closeErr := tempFile.Close(); closeErr != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", tempPath).
			Wrapf(closeErr, "closing temporary output file")
	}

	if renameErr := os.Rename(tempPath, path); renameErr != nil {
		return oops.
			Code("WRITE_FAILED").
			With("from", tempPath).
			With("to", path).
			Wrapf(renameErr, "replacing output file")
	}

	return nil
}
