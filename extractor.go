package farmdocs

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title: first h1, then <title>, then the file's
	// base name.
	Title string

	// Section is a coarse grouping label derived from a "Title — Subtitle"
	// pattern or the parent directory name. Empty if undeterminable.
	Section string

	// Content is the normalized plain-text body with extracted code
	// appended, so code text participates in full-text matching.
	Content string

	// CodeExamples are extracted snippets in first-seen order, deduplicated.
	CodeExamples []string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML for one page and returns the normalized
	// content. baseName is the file's name without extension, used as the
	// last-resort title. Returns EREJECTED for navigation/index pages and
	// for pages whose normalized content is shorter than MinContentLength.
	Extract(html, baseName string) (*ExtractResult, error)
}
