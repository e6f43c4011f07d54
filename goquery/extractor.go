// Package goquery provides a farmdocs.Extractor built on PuerkitoBio/goquery.
// It isolates main content from documentation HTML, normalizes it to plain
// text, and pulls out code examples.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/farmdocs"
)

// Ensure Extractor implements farmdocs.Extractor at compile time.
var _ farmdocs.Extractor = (*Extractor)(nil)

// contentSelectors is the ordered probe list for the main content region.
// Semantic elements first, then wrappers used by Sphinx/ReadTheDocs and
// Doxygen, which generate the bulk of render-farm documentation.
var contentSelectors = []string{
	"main",
	"article",
	"[role=main]",
	"div.document",
	"div.rst-content",
	"div.wy-nav-content",
	"div.body",
	"div.contents",
	"#content",
}

// stripSelectors identify non-content regions removed before text
// extraction so navigation chrome never pollutes the index.
var stripSelectors = []string{
	"nav",
	"aside",
	"header",
	"footer",
	"script",
	"style",
	".sidebar",
	".wy-nav-side",
	".sphinxsidebar",
	".breadcrumb",
	".wy-breadcrumbs",
	".toctree-wrapper",
	".headerlink",
	".toc",
}

// codeSelectors identify code-bearing regions, covering plain preformatted
// blocks plus the wrappers emitted by Pygments (Sphinx) and Doxygen.
var codeSelectors = []string{
	"pre",
	"div.highlight",
	"div.codehilite",
	"div.fragment",
}

// navigationTitles is the closed list of titles that mark auto-generated
// index or listing pages. Matched case-insensitively against the resolved
// page title.
var navigationTitles = []string{
	"index",
	"class list",
	"class index",
	"member list",
	"file list",
	"namespace list",
	"module index",
	"table of contents",
}

// Code snippet length bounds. Shorter snippets are noise tokens, longer
// ones are unlikely to be minimal examples.
const (
	minSnippetLength = 20
	maxSnippetLength = 2000
)

// navigationBodyThreshold is the body length below which a "list of"
// phrase marks the page as navigation scaffolding.
const navigationBodyThreshold = 1000

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeRe     = regexp.MustCompile(`[^\w\s\-.,;:(){}\[\]]`)
)

// sectionSeparators split a "Title — Subtitle" page title; the trailing
// part becomes the section label.
var sectionSeparators = []string{" — ", " – ", " - "}

// Extractor extracts normalized text and code examples from one HTML page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns normalized content for indexing.
// The section label is derived from the title only; callers fall back to
// the parent directory name when it comes back empty.
func (e *Extractor) Extract(rawHTML, baseName string) (*farmdocs.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, farmdocs.Errorf(farmdocs.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, farmdocs.Errorf(farmdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	// The section pattern relies on dash separators that normalization
	// strips, so it is derived from the raw title first.
	rawTitle := collapseSpace(doc.Find("h1").First().Text())
	if rawTitle == "" {
		rawTitle = collapseSpace(doc.Find("title").First().Text())
	}
	if rawTitle == "" {
		rawTitle = baseName
	}
	section := normalize(sectionFromTitle(rawTitle))
	title := normalize(rawTitle)

	if err := rejectNavigationPage(doc, title); err != nil {
		return nil, err
	}

	doc.Find(strings.Join(stripSelectors, ", ")).Remove()

	container := findContainer(doc)
	codeExamples := extractCodeExamples(container)

	content := normalize(container.Text())
	if len(codeExamples) > 0 {
		content = strings.TrimSpace(content + " " + strings.Join(codeExamples, " "))
	}
	if len(content) < farmdocs.MinContentLength {
		return nil, farmdocs.Errorf(farmdocs.EREJECTED, "content below %d characters", farmdocs.MinContentLength)
	}

	return &farmdocs.ExtractResult{
		Title:        title,
		Section:      section,
		Content:      content,
		CodeExamples: codeExamples,
	}, nil
}

// rejectNavigationPage applies the navigation-page heuristic: a known
// index/listing title always rejects; a "list of" phrase rejects only when
// the overall body text is short. The length condition is deliberately
// conjunctive so substantive pages that merely mention a list survive.
func rejectNavigationPage(doc *goquery.Document, title string) error {
	lowerTitle := strings.ToLower(title)
	for _, nav := range navigationTitles {
		if lowerTitle == nav {
			return farmdocs.Errorf(farmdocs.EREJECTED, "navigation page %q", title)
		}
	}

	body := normalize(doc.Find("body").Text())
	if strings.Contains(strings.ToLower(body), "list of") && len(body) < navigationBodyThreshold {
		return farmdocs.Errorf(farmdocs.EREJECTED, "listing page %q", title)
	}
	return nil
}

// findContainer probes the content selectors in order and returns the
// first match, falling back to the whole body.
func findContainer(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return doc.Find("body")
}

// extractCodeExamples collects code snippets from the container, keeping
// only those within the length bounds and deduplicating by exact text in
// first-seen order.
func extractCodeExamples(container *goquery.Selection) []string {
	seen := make(map[string]bool)
	var examples []string

	for _, selector := range codeSelectors {
		container.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			snippet := normalize(sel.Text())
			if len(snippet) < minSnippetLength || len(snippet) >= maxSnippetLength {
				return
			}
			if seen[snippet] {
				return
			}
			seen[snippet] = true
			examples = append(examples, snippet)
		})
	}
	return examples
}

// sectionFromTitle derives a section label from a "Title — Subtitle"
// pattern, returning the trailing part. Empty if the title has no
// recognized separator.
func sectionFromTitle(title string) string {
	for _, sep := range sectionSeparators {
		if idx := strings.LastIndex(title, sep); idx >= 0 {
			return strings.TrimSpace(title[idx+len(sep):])
		}
	}
	return ""
}

// normalize collapses whitespace runs to single spaces, strips characters
// outside the safe set, and trims the result.
func normalize(s string) string {
	return collapseSpace(unsafeRe.ReplaceAllString(s, ""))
}

// collapseSpace collapses whitespace runs to single spaces and trims.
func collapseSpace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
