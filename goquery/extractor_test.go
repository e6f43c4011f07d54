package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/farmdocs"
	"github.com/fwojciec/farmdocs/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// page builds a minimal HTML page around the given body.
func page(title, body string) string {
	return fmt.Sprintf("<html><head><title>%s</title></head><body>%s</body></html>", title, body)
}

// filler returns substantive text long enough to pass the content gate.
func filler() string {
	return strings.Repeat("Workers pick up tasks from the render queue and process frames. ", 20)
}

func TestExtractor_TitleResolution(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	t.Run("prefers first h1", func(t *testing.T) {
		t.Parallel()

		html := page("Meta Title", "<h1>Submitting Jobs</h1><h1>Second</h1><p>"+filler()+"</p>")
		result, err := e.Extract(html, "submitting")
		require.NoError(t, err)
		assert.Equal(t, "Submitting Jobs", result.Title)
	})

	t.Run("falls back to title element", func(t *testing.T) {
		t.Parallel()

		html := page("Job Scheduling", "<p>"+filler()+"</p>")
		result, err := e.Extract(html, "scheduling")
		require.NoError(t, err)
		assert.Equal(t, "Job Scheduling", result.Title)
	})

	t.Run("falls back to base name", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><p>" + filler() + "</p></body></html>"
		result, err := e.Extract(html, "pools-and-groups")
		require.NoError(t, err)
		assert.Equal(t, "pools-and-groups", result.Title)
	})
}

func TestExtractor_NavigationRejection(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	t.Run("rejects known index titles", func(t *testing.T) {
		t.Parallel()

		for _, title := range []string{"Index", "Class List", "Member List", "Table of Contents"} {
			html := page(title, "<h1>"+title+"</h1><p>"+filler()+"</p>")
			_, err := e.Extract(html, "page")
			require.Error(t, err, title)
			assert.Equal(t, farmdocs.EREJECTED, farmdocs.ErrorCode(err), title)
		}
	})

	t.Run("rejects short page with list-of phrase", func(t *testing.T) {
		t.Parallel()

		html := page("Classes", "<h1>Classes</h1><p>Here is a list of all documented classes.</p>")
		_, err := e.Extract(html, "classes")
		require.Error(t, err)
		assert.Equal(t, farmdocs.EREJECTED, farmdocs.ErrorCode(err))
	})

	t.Run("keeps long page with list-of phrase", func(t *testing.T) {
		t.Parallel()

		html := page("Pools", "<h1>Pools</h1><p>A list of pools controls scheduling. "+filler()+"</p>")
		result, err := e.Extract(html, "pools")
		require.NoError(t, err)
		assert.Equal(t, "Pools", result.Title)
	})

	t.Run("navigation title rejects regardless of body length", func(t *testing.T) {
		t.Parallel()

		html := page("Class List", "<h1>Class List</h1><p>"+filler()+"</p>")
		_, err := e.Extract(html, "annotated")
		require.Error(t, err)
		assert.Equal(t, farmdocs.EREJECTED, farmdocs.ErrorCode(err))
	})
}

func TestExtractor_ContentGate(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	t.Run("drops short content", func(t *testing.T) {
		t.Parallel()

		html := page("Stub", "<h1>Stub</h1><p>Nothing here.</p>")
		_, err := e.Extract(html, "stub")
		require.Error(t, err)
		assert.Equal(t, farmdocs.EREJECTED, farmdocs.ErrorCode(err))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := e.Extract("   ", "empty")
		require.Error(t, err)
		assert.Equal(t, farmdocs.EINVALID, farmdocs.ErrorCode(err))
	})
}

func TestExtractor_ContentIsolation(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	t.Run("prefers main container and strips chrome", func(t *testing.T) {
		t.Parallel()

		html := page("Jobs", `
			<nav>Home Products Downloads</nav>
			<div class="sidebar">Sidebar links everywhere</div>
			<main><h1>Jobs</h1><p>`+filler()+`</p></main>
			<footer>Copyright boilerplate</footer>`)
		result, err := e.Extract(html, "jobs")
		require.NoError(t, err)
		assert.NotContains(t, result.Content, "Sidebar links")
		assert.NotContains(t, result.Content, "Copyright boilerplate")
		assert.Contains(t, result.Content, "render queue")
	})

	t.Run("falls back to body when no container matches", func(t *testing.T) {
		t.Parallel()

		html := page("Jobs", "<p>"+filler()+"</p>")
		result, err := e.Extract(html, "jobs")
		require.NoError(t, err)
		assert.Contains(t, result.Content, "render queue")
	})

	t.Run("strips script and style blocks", func(t *testing.T) {
		t.Parallel()

		html := page("Jobs", "<script>var tracking = true;</script><style>.x{color:red}</style><p>"+filler()+"</p>")
		result, err := e.Extract(html, "jobs")
		require.NoError(t, err)
		assert.NotContains(t, result.Content, "tracking")
		assert.NotContains(t, result.Content, "color")
	})
}

func TestExtractor_Normalization(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	html := page("Jobs", "<p>Submit\n\n\na   job&nbsp;&copy; with  (args) [flags]; done.</p><p>"+filler()+"</p>")
	result, err := e.Extract(html, "jobs")
	require.NoError(t, err)

	assert.Contains(t, result.Content, "Submit a job with (args) [flags]; done.")
	assert.NotContains(t, result.Content, "\n")
	assert.NotContains(t, result.Content, "  ")
}

func TestExtractor_CodeExamples(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	t.Run("extracts and dedupes snippets in order", func(t *testing.T) {
		t.Parallel()

		first := "job RepositoryUtils.GetJob(jobId)"
		second := "pools RepositoryUtils.GetPoolNames()"
		html := page("API", fmt.Sprintf(
			"<p>%s</p><pre>%s</pre><pre>%s</pre><pre>%s</pre>",
			filler(), first, second, first))
		result, err := e.Extract(html, "api")
		require.NoError(t, err)
		assert.Equal(t, []string{first, second}, result.CodeExamples)
	})

	t.Run("skips snippets outside length bounds", func(t *testing.T) {
		t.Parallel()

		long := strings.TrimSpace(strings.Repeat("frame 1; ", 300)) // well over 2000 chars
		html := page("API", "<p>"+filler()+"</p><pre>x1</pre><pre>"+long+"</pre>")
		result, err := e.Extract(html, "api")
		require.NoError(t, err)
		assert.Empty(t, result.CodeExamples)
	})

	t.Run("code text participates in content", func(t *testing.T) {
		t.Parallel()

		snippet := "job = RepositoryUtils.GetJob(jobId)"
		html := page("API", "<p>"+filler()+"</p><div class=\"highlight\"><pre>"+snippet+"</pre></div>")
		result, err := e.Extract(html, "api")
		require.NoError(t, err)
		assert.Contains(t, result.Content, "GetJob(jobId)")
	})
}

func TestExtractor_Section(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "em dash pattern", title: "Submitting Jobs — User Manual", want: "User Manual"},
		{name: "hyphen pattern", title: "Submitting Jobs - User Manual", want: "User Manual"},
		{name: "no separator", title: "Submitting Jobs", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html := page("x", "<h1>"+tt.title+"</h1><p>"+filler()+"</p>")
			result, err := e.Extract(html, "page")
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Section)
		})
	}
}
