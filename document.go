package wikipedia

import (
	"context"
	"time"
)

// Document is a rendered page ready to be written to disk.
type Document struct {
	Title     string    `json:"title"`
	SourceURL string    `json:"sourceUrl"`
	Content   string    `json:"content"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	return nil
}

// PageStore saves exported documents with all-or-nothing semantics.
type PageStore interface {
	// Save writes a document to the pending export.
	Save(ctx context.Context, doc *Document) error

	// Commit publishes every saved document, replacing any previous export.
	Commit() error

	// Abort discards every saved document.
	Abort() error
}
