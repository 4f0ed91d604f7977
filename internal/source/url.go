package source

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/samber/oops"
)

const userAgent = "scriptdoc"

func (r *Reader) fetchLines(ctx context.Context, rawURL string) ([]string, error) {
	response, err := r.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("url", rawURL).
			Wrapf(err, "downloading %q", rawURL)
	}

	if response.StatusCode() < http.StatusOK || response.StatusCode() >= http.StatusMultipleChoices {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("url", rawURL).
			With("status", response.StatusCode()).
			Errorf("%q returned non-success status %d", rawURL, response.StatusCode())
	}

	content, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("url", rawURL).
			Wrapf(err, "reading response body")
	}

	lines, err := splitLines(bytes.NewReader(content))
	if err != nil {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("url", rawURL).
			Wrapf(err, "splitting response body")
	}

	return lines, nil
}
