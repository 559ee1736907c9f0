// Package inspector implements the two page inspection operations: searching
// for a phrase within a named section of a page, and extracting links from a
// labeled container. Both are stateless; each call performs its own fetch and
// parse and returns a soft outcome rather than an error.
package inspector

import (
	"github.com/use-agent/pagecheck/fetcher"
)

// Inspector runs inspection operations against remote pages.
type Inspector struct {
	fetcher *fetcher.Fetcher
}

// New creates an Inspector backed by the given page fetcher.
func New(f *fetcher.Fetcher) *Inspector {
	return &Inspector{fetcher: f}
}
