package slog_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fwojciec/webfetch"
	"github.com/fwojciec/webfetch/mock"
	wfslog "github.com/fwojciec/webfetch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs title and sizes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*webfetch.ExtractResult, error) {
				return &webfetch.ExtractResult{Title: "Guide", ContentHTML: "<p>body</p>", Text: "body"}, nil
			},
		}

		extractor := wfslog.NewLoggingExtractor(inner, debugLogger(&buf))
		result, err := extractor.Extract("<html><p>body</p></html>")

		require.NoError(t, err)
		assert.Equal(t, "Guide", result.Title)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "title=Guide")
		assert.Contains(t, output, "in_bytes=24")
		assert.Contains(t, output, "out_bytes=11")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*webfetch.ExtractResult, error) {
				return nil, errors.New("no article")
			},
		}

		extractor := wfslog.NewLoggingExtractor(inner, debugLogger(&buf))
		_, err := extractor.Extract("<html></html>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"no article\"")
	})
}
