package inspector

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/use-agent/pagecheck/models"
)

// SearchSectionText fetches pageURL, locates the section identified by
// sectionIdentifier and reports whether searchText appears within it.
//
// The section is the FIRST element, in pre-order document traversal, whose
// full descendant text contains sectionIdentifier case-insensitively. The
// scan short-circuits on that element even when a deeper, more specific
// element also matches; with the identifier present anywhere on the page
// this usually selects a broad ancestor such as <html>. Callers relying on
// the selection must account for that.
//
// All failures degrade to a found:false outcome with a descriptive message;
// this method never returns an error.
func (in *Inspector) SearchSectionText(ctx context.Context, pageURL, searchText, sectionIdentifier string) models.SearchOutcome {
	res, err := in.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		slog.Error("section search: fetch failed", "url", pageURL, "error", err)
		return models.SearchOutcome{Found: false, Message: fmt.Sprintf("An error occurred: %v", err)}
	}
	if res.StatusCode != http.StatusOK {
		slog.Warn("section search: page load failed", "url", pageURL, "status", res.StatusCode)
		return models.SearchOutcome{Found: false, Message: fmt.Sprintf("Failed to load page: HTTP status %d.", res.StatusCode)}
	}

	root, err := html.Parse(bytes.NewReader(res.Body))
	if err != nil {
		slog.Error("section search: parse failed", "url", pageURL, "error", err)
		return models.SearchOutcome{Found: false, Message: fmt.Sprintf("An error occurred: %v", err)}
	}

	section := findSection(root, sectionIdentifier)
	if section == nil {
		slog.Info("section search: section not found", "url", pageURL, "identifier", sectionIdentifier)
		return models.SearchOutcome{
			Found:   false,
			Message: fmt.Sprintf("Section \"%s\" not found on the page.", sectionIdentifier),
		}
	}
	slog.Info("section search: section located", "url", pageURL, "identifier", sectionIdentifier, "element", section.Data)

	sectionText := strings.ToLower(nodeText(section))
	if strings.Contains(sectionText, strings.ToLower(searchText)) {
		slog.Info("section search: text found", "url", pageURL, "searchText", searchText)
		return models.SearchOutcome{
			Found:   true,
			Message: fmt.Sprintf("Text \"%s\" found within section \"%s\".", searchText, sectionIdentifier),
		}
	}

	slog.Info("section search: text not found", "url", pageURL, "searchText", searchText)
	return models.SearchOutcome{
		Found:   false,
		Message: fmt.Sprintf("Text \"%s\" not found within section \"%s\".", searchText, sectionIdentifier),
	}
}

// findSection returns the first element in pre-order whose descendant text
// contains identifier, case-insensitively, or nil when no element matches.
// First match wins; nested matches below it are never visited.
func findSection(root *html.Node, identifier string) *html.Node {
	want := strings.ToLower(identifier)

	var found *html.Node
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if strings.Contains(strings.ToLower(nodeText(n)), want) {
				found = n
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)
	return found
}

// nodeText concatenates all descendant text nodes of n in document order.
func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}
