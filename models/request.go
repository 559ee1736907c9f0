package models

// ResultQuery carries the query parameters of GET /result, resolved once at
// the dispatcher boundary. Absent parameters are empty strings.
type ResultQuery struct {
	// URL is the target page to inspect. Required.
	URL string

	// SearchText is the phrase to look for inside the section.
	// The section search runs only when both SearchText and
	// SectionIdentifier are non-empty.
	SearchText string

	// SectionIdentifier is the substring that identifies the section.
	SectionIdentifier string

	// DivID is the exact id attribute of the link-search container.
	// The link search runs only when both DivID and LinkTextToFind
	// are non-empty.
	DivID string

	// LinkTextToFind is the substring matched against link text.
	LinkTextToFind string

	// ContainerSelector is an optional CSS selector used to pick the
	// link-search container when DivID is empty. DivID takes priority.
	ContainerSelector string
}

// HasSectionSearch reports whether the section search should run.
func (q *ResultQuery) HasSectionSearch() bool {
	return q.SearchText != "" && q.SectionIdentifier != ""
}

// HasLinkSearch reports whether the link search should run.
func (q *ResultQuery) HasLinkSearch() bool {
	return (q.DivID != "" || q.ContainerSelector != "") && q.LinkTextToFind != ""
}
