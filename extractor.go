package wikipedia

// ExtractResult holds the cleaned content of an HTML extract.
type ExtractResult struct {
	// Title is the first heading of the fragment, if any.
	Title string

	// ContentHTML is the extract with reference markers, edit links,
	// maintenance boxes and navigation removed.
	ContentHTML string
}

// Extractor cleans the HTML the API returns for rendered extracts.
type Extractor interface {
	// Extract processes an HTML fragment and returns its readable content.
	Extract(html string) (*ExtractResult, error)
}
