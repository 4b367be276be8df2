package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/wikipedia"
	"github.com/fwojciec/wikipedia/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements wikipedia.Converter at compile time.
var _ wikipedia.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts extract paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p><b>Edsger Wybe Dijkstra</b> was a Dutch computer scientist.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Edsger Wybe Dijkstra** was a Dutch computer scientist.")
	})

	t.Run("converts section headings", func(t *testing.T) {
		t.Parallel()

		html := `<h2>Early years</h2><p>Born in Rotterdam.</p><h3>Education</h3><p>Leiden.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "## Early years")
		assert.Contains(t, md, "### Education")
	})

	t.Run("resolves relative wiki links against domain", func(t *testing.T) {
		t.Parallel()

		html := `<p>He won the <a href="/wiki/Turing_Award" title="Turing Award">Turing Award</a>.</p>`

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://en.wikipedia.org"))
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Turing Award](https://en.wikipedia.org/wiki/Turing_Award")
	})

	t.Run("keeps absolute links", func(t *testing.T) {
		t.Parallel()

		html := `<p>See the <a href="https://www.cs.utexas.edu/users/EWD/">archive</a>.</p>`

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://en.wikipedia.org"))
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[archive](https://www.cs.utexas.edu/users/EWD/)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>Shortest path algorithm</li><li>Semaphore</li></ul><ol><li>First</li><li>Second</li></ol>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- Shortest path algorithm")
		assert.Contains(t, md, "- Semaphore")
		assert.Contains(t, md, "1. First")
		assert.Contains(t, md, "2. Second")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table class="wikitable">
<tr><th>Year</th><th>Award</th></tr>
<tr><td>1972</td><td>Turing Award</td></tr>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		// Table cells may have padding for alignment, so check for content
		assert.Contains(t, md, "Year")
		assert.Contains(t, md, "Turing Award")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts italic", func(t *testing.T) {
		t.Parallel()

		html := `<p>Known as <i>Dijkstra's algorithm</i>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "*Dijkstra's algorithm*")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, wikipedia.EINVALID, wikipedia.ErrorCode(err))
	})
}
