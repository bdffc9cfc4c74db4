package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/webfetch"
	"github.com/temoto/robotstxt"
)

// DefaultRobotsTimeout is the default timeout for robots.txt requests.
const DefaultRobotsTimeout = 30 * time.Second

// Ensure RobotsChecker implements webfetch.RobotsChecker at compile time.
var _ webfetch.RobotsChecker = (*RobotsChecker)(nil)

// RobotsChecker evaluates robots.txt rules for autonomous fetches.
// Robots files are fetched on every call and never cached.
type RobotsChecker struct {
	client  *http.Client
	limiter webfetch.RateLimiter
}

// NewRobotsChecker creates a new RobotsChecker.
// Defaults to DefaultRobotsTimeout if no timeout is given.
func NewRobotsChecker(opts ...Option) *RobotsChecker {
	o := newOptions(DefaultRobotsTimeout, opts)
	return &RobotsChecker{
		client:  o.client,
		limiter: o.limiter,
	}
}

// RobotsURL returns the robots.txt location for the site serving rawURL.
func RobotsURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", webfetch.Errorf(webfetch.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	robots := url.URL{
		Scheme: u.Scheme,
		Host:   u.Host,
		Path:   "/robots.txt",
	}
	return robots.String(), nil
}

// CheckMayFetch returns nil if userAgent may fetch rawURL.
//
// A 401 or 403 for robots.txt is treated as a denial. Any other 4xx means
// the site publishes no policy and fetching is allowed.
func (c *RobotsChecker) CheckMayFetch(ctx context.Context, rawURL, userAgent string) error {
	robotsURL, err := RobotsURL(rawURL)
	if err != nil {
		return err
	}

	resp, err := get(ctx, c.client, c.limiter, robotsURL, userAgent)
	if err != nil {
		return webfetch.WrapError(webfetch.EROBOTSFETCH, err,
			"Failed to fetch robots.txt %s due to a connection issue", robotsURL)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &webfetch.PolicyDeniedError{
			RobotsURL:  robotsURL,
			UserAgent:  userAgent,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
		}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil
	}

	text, err := readText(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return webfetch.WrapError(webfetch.EROBOTSFETCH, err,
			"Failed to fetch robots.txt %s due to a connection issue", robotsURL)
	}

	allowed, err := robotsAllow(text, rawURL, userAgent)
	if err != nil {
		return err
	}
	if !allowed {
		return &webfetch.PolicyDeniedError{
			RobotsURL:  robotsURL,
			UserAgent:  userAgent,
			URL:        rawURL,
			RobotsText: text,
		}
	}
	return nil
}

// robotsAllow reports whether the rules in robotsText allow userAgent to
// fetch rawURL. Full-line comments are removed before parsing.
func robotsAllow(robotsText, rawURL, userAgent string) (bool, error) {
	data, err := robotstxt.FromString(StripComments(robotsText))
	if err != nil {
		// Unparseable robots.txt publishes no usable policy.
		return true, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false, webfetch.Errorf(webfetch.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	return data.TestAgent(u.RequestURI(), userAgent), nil
}

// StripComments removes lines whose trimmed content starts with "#".
func StripComments(robotsText string) string {
	lines := strings.Split(strings.ReplaceAll(robotsText, "\r\n", "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
