package farmdocs

import "strings"

// farmVocabulary holds render-farm and job-lifecycle terms used for coarse
// tagging. A term is tagged when it appears anywhere in the page text.
var farmVocabulary = []string{
	"job",
	"worker",
	"slave",
	"submit",
	"plugin",
	"repository",
	"pool",
	"group",
	"frame",
	"task",
	"chunk",
	"priority",
	"limit",
	"event",
	"schedule",
	"render",
	"queue",
	"monitor",
	"spool",
	"license",
}

// codeVocabulary holds general programming terms that suggest API or
// scripting reference content.
var codeVocabulary = []string{
	"function",
	"class",
	"method",
	"parameter",
	"argument",
	"return",
	"import",
	"module",
	"property",
	"callback",
	"example",
	"script",
	"api",
}

// Keywords derives a controlled-vocabulary tag set from a page's title and
// content. Matching is case-insensitive substring containment; each present
// term contributes exactly one tag. The result is ordered by vocabulary
// position, which keeps it deterministic, but the order carries no meaning.
func Keywords(title, content string) []string {
	text := strings.ToLower(title + " " + content)

	var tags []string
	for _, vocab := range [][]string{farmVocabulary, codeVocabulary} {
		for _, term := range vocab {
			if strings.Contains(text, term) {
				tags = append(tags, term)
			}
		}
	}
	return tags
}

// CodeSearchTerms are conjoined with user queries when searching for code
// examples, biasing results toward documents likely to contain snippets.
func CodeSearchTerms() []string {
	return []string{"function", "class", "import", "script", "example", "def"}
}
