package inspector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/use-agent/pagecheck/config"
	"github.com/use-agent/pagecheck/fetcher"
)

func newTestInspector() *Inspector {
	return New(fetcher.New(config.FetcherConfig{
		Timeout:     5 * time.Second,
		MaxBodySize: 10 * 1024 * 1024,
	}))
}

func servePage(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const notesPage = `<!DOCTYPE html>
<html>
<head><title>Course Notes</title></head>
<body>
  <h1>Department Archive</h1>
  <div class="intro">Welcome to the archive.</div>
  <div id="semesters">
    <h2>Fifth Semester</h2>
    <p>Covers the power system module and control theory.</p>
  </div>
</body>
</html>`

func TestSearchSectionText_Found(t *testing.T) {
	srv := servePage(t, notesPage)
	in := newTestInspector()

	out := in.SearchSectionText(context.Background(), srv.URL, "control theory", "Fifth Semester")

	assert.True(t, out.Found)
	assert.Equal(t, `Text "control theory" found within section "Fifth Semester".`, out.Message)
}

func TestSearchSectionText_CaseInsensitive(t *testing.T) {
	srv := servePage(t, notesPage)
	in := newTestInspector()

	// Both sides are case-folded: "Power" must match "power system".
	out := in.SearchSectionText(context.Background(), srv.URL, "Power", "fifth semester")

	assert.True(t, out.Found)
	assert.Equal(t, `Text "Power" found within section "fifth semester".`, out.Message)
}

func TestSearchSectionText_TextAbsent(t *testing.T) {
	srv := servePage(t, notesPage)
	in := newTestInspector()

	out := in.SearchSectionText(context.Background(), srv.URL, "quantum field theory", "Fifth Semester")

	assert.False(t, out.Found)
	assert.Equal(t, `Text "quantum field theory" not found within section "Fifth Semester".`, out.Message)
}

func TestSearchSectionText_SectionMissing(t *testing.T) {
	srv := servePage(t, notesPage)
	in := newTestInspector()

	out := in.SearchSectionText(context.Background(), srv.URL, "power", "Ninth Semester")

	assert.False(t, out.Found)
	assert.Equal(t, `Section "Ninth Semester" not found on the page.`, out.Message)
}

func TestSearchSectionText_HTTPFailureReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	in := newTestInspector()

	out := in.SearchSectionText(context.Background(), srv.URL, "power", "Fifth Semester")

	assert.False(t, out.Found)
	assert.Equal(t, "Failed to load page: HTTP status 404.", out.Message)
}

func TestSearchSectionText_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	in := newTestInspector()

	out := in.SearchSectionText(context.Background(), srv.URL, "power", "Fifth Semester")

	assert.False(t, out.Found)
	assert.True(t, strings.HasPrefix(out.Message, "An error occurred: "), "message: %s", out.Message)
}

func TestFindSection_FirstMatchInPreOrder(t *testing.T) {
	// The identifier lives in a nested div, but every ancestor's full text
	// also contains it. Pre-order traversal therefore selects the outermost
	// matching element and never reaches the more specific one.
	root, err := html.Parse(strings.NewReader(notesPage))
	require.NoError(t, err)

	section := findSection(root, "fifth semester")

	require.NotNil(t, section)
	assert.Equal(t, "html", section.Data)
}

func TestFindSection_NoMatch(t *testing.T) {
	root, err := html.Parse(strings.NewReader(notesPage))
	require.NoError(t, err)

	assert.Nil(t, findSection(root, "does-not-exist-anywhere"))
}

func TestNodeText_ConcatenatesDescendants(t *testing.T) {
	root, err := html.Parse(strings.NewReader(`<div><p>one</p><p>two <b>three</b></p></div>`))
	require.NoError(t, err)

	text := nodeText(root)

	assert.Contains(t, text, "one")
	assert.Contains(t, text, "two three")
}
