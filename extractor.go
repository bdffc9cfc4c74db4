package webfetch

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// Text is the plain text of the main content.
	Text string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The title comes from page metadata (meta tags, JSON+LD, etc.).
	// The content HTML has boilerplate removed but preserves structure.
	Extract(html string) (*ExtractResult, error)
}

// Cleaner removes non-content elements from raw HTML before extraction.
type Cleaner interface {
	Clean(html string) (string, error)
}

// Simplifier turns raw HTML into readable markdown.
type Simplifier interface {
	// Simplify never fails. When no content can be extracted it returns
	// SimplifyFailedContent.
	Simplify(html string) string
}

// SimplifyFailedContent is returned in place of content when a page could
// not be simplified.
const SimplifyFailedContent = "<error>Page failed to be simplified from HTML</error>"
