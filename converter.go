package webfetch

// Converter renders extracted HTML as Markdown.
type Converter interface {
	// Convert returns the Markdown form of an HTML fragment. Headings use
	// ATX style so "<h2>" becomes "## ".
	Convert(html string) (string, error)
}
