package jobfetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDescription_UsesJobSelector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<nav>Navigation junk</nav>
			<div class="job-description">
				<h1>Senior Engineer</h1>
				<p>Build analytical engines all day.</p>
			</div>
			<footer>Footer junk</footer>
		</body></html>`))
	}))
	defer srv.Close()

	text, err := JobDescription(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Engineer")
	assert.Contains(t, text, "Build analytical engines all day.")
	assert.NotContains(t, text, "Navigation junk")
	assert.NotContains(t, text, "Footer junk")
}

func TestJobDescription_SendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html><body><main>A posting body.</main></body></html>`))
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestJobDescription_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Error(), "404")
}

func TestJobDescription_InvalidURL(t *testing.T) {
	for _, u := range []string{"", "not-a-url", "://missing-scheme"} {
		_, err := JobDescription(context.Background(), u, nil)
		var fetchErr *Error
		require.True(t, errors.As(err, &fetchErr), "url %q", u)
	}
}

func TestJobDescription_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>app()</script></body></html>`))
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no extractable text")
}

func TestExtractMainText_SelectorCascade(t *testing.T) {
	html := `<html><body>
		<main>Main content here</main>
		<article>Article content</article>
	</body></html>`

	text, err := ExtractMainText(html, []string{".job-description", "main", "article"})
	require.NoError(t, err)
	assert.Equal(t, "Main content here", text)
}

func TestExtractMainText_BodyFallback(t *testing.T) {
	html := `<html><body><div>Just a div</div></body></html>`

	text, err := ExtractMainText(html, []string{".job-description", "main"})
	require.NoError(t, err)
	assert.Equal(t, "Just a div", text)
}

func TestExtractMainText_RemovesNoise(t *testing.T) {
	html := `<html><body><main>
		<style>.x{}</style>
		<div class="sidebar">Sidebar</div>
		<div class="cookie-banner">Accept cookies</div>
		Real content
	</main></body></html>`

	text, err := ExtractMainText(html, []string{"main"})
	require.NoError(t, err)
	assert.Equal(t, "Real content", text)
}

func TestCleanWhitespace(t *testing.T) {
	input := "  line one  \n\n\n   line two\t\n   \n"
	assert.Equal(t, "line one\nline two", cleanWhitespace(input))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, shouldUseBrowser("short"))
	assert.True(t, shouldUseBrowser("   "))

	long := make([]byte, minContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, shouldUseBrowser(string(long)))
}
