package webfetch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/webfetch"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := webfetch.Errorf(webfetch.EINVALID, "max_length %d out of range", 0)

	assert.Equal(t, webfetch.EINVALID, webfetch.ErrorCode(err))
	assert.Equal(t, "max_length 0 out of range", webfetch.ErrorMessage(err))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := webfetch.WrapError(webfetch.EFETCH, cause, "Failed to fetch %s", "https://example.com")

	assert.Equal(t, webfetch.EFETCH, webfetch.ErrorCode(err))
	assert.Equal(t, "Failed to fetch https://example.com: connection refused", webfetch.ErrorMessage(err))
	assert.ErrorIs(t, err, cause)
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webfetch.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webfetch.ErrorMessage(nil))
}

func TestErrorCode_UnknownError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, webfetch.EINTERNAL, webfetch.ErrorCode(err))
	assert.Equal(t, "Internal error.", webfetch.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("pipeline: %w", webfetch.Errorf(webfetch.EROBOTSFETCH, "robots unavailable"))

	assert.Equal(t, webfetch.EROBOTSFETCH, webfetch.ErrorCode(err))
}

func TestPolicyDeniedError(t *testing.T) {
	t.Parallel()

	t.Run("embeds robots details for rule denial", func(t *testing.T) {
		t.Parallel()

		err := &webfetch.PolicyDeniedError{
			RobotsURL:  "https://example.com/robots.txt",
			UserAgent:  "TestAgent/1.0",
			URL:        "https://example.com/private",
			RobotsText: "# comment\nUser-agent: *\nDisallow: /private",
		}

		assert.Equal(t, webfetch.EROBOTSDENIED, webfetch.ErrorCode(err))
		msg := webfetch.ErrorMessage(err)
		assert.Contains(t, msg, "https://example.com/robots.txt")
		assert.Contains(t, msg, "<useragent>TestAgent/1.0</useragent>")
		assert.Contains(t, msg, "<url>https://example.com/private</url>")
		assert.Contains(t, msg, "# comment\nUser-agent: *\nDisallow: /private")
		assert.Contains(t, msg, "manually fetching")
	})

	t.Run("reports status for forbidden robots.txt", func(t *testing.T) {
		t.Parallel()

		err := &webfetch.PolicyDeniedError{
			RobotsURL:  "https://example.com/robots.txt",
			StatusCode: 403,
		}

		msg := webfetch.ErrorMessage(err)
		assert.Contains(t, msg, "received status 403")
		assert.Contains(t, msg, "fetch prompt")
	})
}

func TestStatusError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", &webfetch.StatusError{URL: "https://example.com", StatusCode: 404})

	assert.Equal(t, webfetch.EFETCHSTATUS, webfetch.ErrorCode(err))
	assert.Equal(t, "Failed to fetch https://example.com - status code 404", webfetch.ErrorMessage(err))
}
