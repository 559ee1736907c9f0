package inspector

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/use-agent/pagecheck/models"
)

// HrefMissing is the sentinel href for anchors without an href attribute.
const HrefMissing = "N/A"

// FindLinksInDiv fetches pageURL, locates a container element and returns
// the hyperlinks inside it whose trimmed visible text contains linkText,
// case-insensitively, in document order. An empty linkText matches every
// link.
//
// The container is located by exact id attribute equality when divID is
// non-empty; otherwise containerSelector is compiled as a CSS selector and
// its first match is used. Only links inside the container are considered.
//
// Unlike SearchSectionText, every failure here (fetch, non-200 status,
// parse, missing container) degrades silently to an empty slice; it is
// logged but not surfaced in the result.
func (in *Inspector) FindLinksInDiv(ctx context.Context, pageURL, divID, containerSelector, linkText string) []models.LinkMatch {
	links := []models.LinkMatch{}

	res, err := in.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		slog.Error("link search: fetch failed", "url", pageURL, "error", err)
		return links
	}
	if res.StatusCode != http.StatusOK {
		slog.Warn("link search: page load failed", "url", pageURL, "status", res.StatusCode)
		return links
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body))
	if err != nil {
		slog.Error("link search: parse failed", "url", pageURL, "error", err)
		return links
	}

	container := findContainer(doc, divID, containerSelector)
	if container == nil {
		slog.Info("link search: container not found", "url", pageURL, "divId", divID, "selector", containerSelector)
		return links
	}

	want := strings.ToLower(linkText)
	container.Find("a").Each(func(_ int, a *goquery.Selection) {
		text := strings.TrimSpace(a.Text())
		if !strings.Contains(strings.ToLower(text), want) {
			return
		}
		href, ok := a.Attr("href")
		if !ok {
			href = HrefMissing
		}
		links = append(links, models.LinkMatch{Text: text, Href: href})
	})

	slog.Info("link search: complete", "url", pageURL, "divId", divID, "matches", len(links))
	return links
}

// findContainer locates the scope element for the link search. divID wins
// over containerSelector; the first element in document order is selected
// in both modes.
func findContainer(doc *goquery.Document, divID, containerSelector string) *goquery.Selection {
	if divID != "" {
		var container *goquery.Selection
		doc.Find("[id]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if id, _ := s.Attr("id"); id == divID {
				container = s
				return false
			}
			return true
		})
		return container
	}

	if containerSelector != "" {
		sel, err := cascadia.Compile(containerSelector)
		if err != nil {
			slog.Warn("link search: invalid container selector", "selector", containerSelector, "error", err)
			return nil
		}
		if match := doc.FindMatcher(sel).First(); match.Length() > 0 {
			return match
		}
	}
	return nil
}
