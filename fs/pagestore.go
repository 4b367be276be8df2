// Package fs provides file-based storage for exported pages.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wikipedia"
	"gopkg.in/yaml.v3"
)

// Ensure FileStore implements wikipedia.PageStore at compile time.
var _ wikipedia.PageStore = (*FileStore)(nil)

// titleReplacer maps characters that are legal in page titles but not in
// file names.
var titleReplacer = strings.NewReplacer(
	" ", "_",
	"/", "%2F",
	`\`, "%5C",
)

// TitleToPath converts a page title to a relative file path.
// Example: "Edsger W. Dijkstra" → "Edsger_W._Dijkstra.md"
func TitleToPath(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", wikipedia.Errorf(wikipedia.EINVALID, "document title required")
	}

	name := titleReplacer.Replace(title)
	if name == "." || name == ".." {
		return "", wikipedia.Errorf(wikipedia.EINVALID, "invalid document title %q", title)
	}
	return name + ".md", nil
}

// frontmatter is the YAML header written above every exported page.
type frontmatter struct {
	Source  string    `yaml:"source,omitempty"`
	Title   string    `yaml:"title"`
	Fetched time.Time `yaml:"fetched"`
	Hash    string    `yaml:"hash"`
}

// ContentHash returns the hex xxhash of content.
func ContentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *wikipedia.Document) (string, error) {
	header, err := yaml.Marshal(frontmatter{
		Source:  doc.SourceURL,
		Title:   doc.Title,
		Fetched: doc.FetchedAt.UTC(),
		Hash:    ContentHash(doc.Content),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(doc.Content)
	return b.String(), nil
}

// ParseDocument reads a file written by FormatDocument.
func ParseDocument(data []byte) (*wikipedia.Document, string, error) {
	rest, ok := bytes.CutPrefix(data, []byte("---\n"))
	if !ok {
		return nil, "", wikipedia.Errorf(wikipedia.EINVALID, "missing frontmatter")
	}
	header, body, ok := bytes.Cut(rest, []byte("\n---\n"))
	if !ok {
		return nil, "", wikipedia.Errorf(wikipedia.EINVALID, "unterminated frontmatter")
	}

	var fm frontmatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return nil, "", wikipedia.Errorf(wikipedia.EINVALID, "invalid frontmatter: %v", err)
	}

	return &wikipedia.Document{
		Title:     fm.Title,
		SourceURL: fm.Source,
		Content:   string(bytes.TrimPrefix(body, []byte("\n"))),
		FetchedAt: fm.Fetched,
	}, fm.Hash, nil
}

// FileStore implements wikipedia.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes doc to the temporary directory.
func (s *FileStore) Save(ctx context.Context, doc *wikipedia.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := TitleToPath(doc.Title)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	content, err := FormatDocument(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.tempDir(), relPath), []byte(content), 0644)
}

// Commit replaces the final directory with the temporary one.
func (s *FileStore) Commit() error {
	// Nothing saved still publishes an empty export.
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort removes the temporary directory.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
