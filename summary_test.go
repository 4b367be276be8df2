package wikipedia_test

import (
	"testing"

	"github.com/fwojciec/wikipedia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dijkstraExtract = "Edsger Wybe Dijkstra (Dutch pronunciation: [ˈɛtsxər ˈʋibə ˈdɛikstra] ( ); 11 May 1930 – 6 August 2002) was a Dutch computer scientist. " +
	"He received the 1972 Turing Award for fundamental contributions to developing programming languages, and was the Schlumberger Centennial Chair of Computer Sciences at The University of Texas at Austin from 1984 until 2000.\n" +
	"Shortly before his death in 2002, he received the ACM PODC Influential Paper Award in distributed computing for his work on self-stabilization of program computation. " +
	"This annual award was renamed the Dijkstra Prize the following year, in his honor.\n\n" +
	"Early years\nDijkstra was born in Rotterdam."

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("returns first paragraph by default", func(t *testing.T) {
		t.Parallel()

		got, err := wikipedia.Summarize(dijkstraExtract)

		require.NoError(t, err)
		assert.Equal(t, dijkstraExtract[:len(dijkstraExtract)-len("\n\nEarly years\nDijkstra was born in Rotterdam.")], got)
	})

	t.Run("returns whole text without paragraph break", func(t *testing.T) {
		t.Parallel()

		got, err := wikipedia.Summarize("One paragraph only.")

		require.NoError(t, err)
		assert.Equal(t, "One paragraph only.", got)
	})

	t.Run("skips leading blank lines", func(t *testing.T) {
		t.Parallel()

		got, err := wikipedia.Summarize("\n\nFirst.\n\nSecond.")

		require.NoError(t, err)
		assert.Equal(t, "First.", got)
	})

	t.Run("truncates to characters with ellipsis", func(t *testing.T) {
		t.Parallel()

		got, err := wikipedia.Summarize(dijkstraExtract, wikipedia.WithCharacters(7))

		require.NoError(t, err)
		assert.Equal(t, "Edsger ...", got)
	})

	t.Run("adds spaced ellipsis when cut mid word", func(t *testing.T) {
		t.Parallel()

		got, err := wikipedia.Summarize(dijkstraExtract, wikipedia.WithCharacters(4))

		require.NoError(t, err)
		assert.Equal(t, "Edsg ...", got)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		got, err := wikipedia.Summarize("ˈɛtsxər ˈʋibə", wikipedia.WithCharacters(3))

		require.NoError(t, err)
		assert.Equal(t, "ˈɛt ...", got)
	})

	t.Run("returns full text when characters exceed length", func(t *testing.T) {
		t.Parallel()

		got, err := wikipedia.Summarize("Short.", wikipedia.WithCharacters(100))

		require.NoError(t, err)
		assert.Equal(t, "Short.", got)
	})

	t.Run("returns empty for zero characters", func(t *testing.T) {
		t.Parallel()

		got, err := wikipedia.Summarize(dijkstraExtract, wikipedia.WithCharacters(0))

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("returns first sentences across line breaks", func(t *testing.T) {
		t.Parallel()

		got, err := wikipedia.Summarize(dijkstraExtract, wikipedia.WithSentences(2))

		require.NoError(t, err)
		assert.Equal(t, "Edsger Wybe Dijkstra (Dutch pronunciation: [ˈɛtsxər ˈʋibə ˈdɛikstra] ( ); 11 May 1930 – 6 August 2002) was a Dutch computer scientist. "+
			"He received the 1972 Turing Award for fundamental contributions to developing programming languages, and was the Schlumberger Centennial Chair of Computer Sciences at The University of Texas at Austin from 1984 until 2000.\n"+
			"Shortly before his death in 2002, he received the ACM PODC Influential Paper Award in distributed computing for his work on self-stabilization of program computation.", got)
	})

	t.Run("returns one sentence", func(t *testing.T) {
		t.Parallel()

		got, err := wikipedia.Summarize("First one. Second one. Third one.", wikipedia.WithSentences(1))

		require.NoError(t, err)
		assert.Equal(t, "First one.", got)
	})

	t.Run("returns full text when sentences exceed count", func(t *testing.T) {
		t.Parallel()

		got, err := wikipedia.Summarize("First one. Second one.", wikipedia.WithSentences(10))

		require.NoError(t, err)
		assert.Equal(t, "First one. Second one.", got)
	})

	t.Run("returns empty for zero sentences", func(t *testing.T) {
		t.Parallel()

		got, err := wikipedia.Summarize("First one. Second one.", wikipedia.WithSentences(0))

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("returns empty for empty text", func(t *testing.T) {
		t.Parallel()

		for _, opts := range [][]wikipedia.SummaryOption{
			nil,
			{wikipedia.WithSentences(2)},
			{wikipedia.WithCharacters(10)},
		} {
			got, err := wikipedia.Summarize("", opts...)
			require.NoError(t, err)
			assert.Empty(t, got)
		}
	})

	t.Run("rejects both options", func(t *testing.T) {
		t.Parallel()

		_, err := wikipedia.Summarize("text", wikipedia.WithSentences(1), wikipedia.WithCharacters(1))

		assert.Equal(t, wikipedia.EINVALID, wikipedia.ErrorCode(err))
	})

	t.Run("rejects negative counts", func(t *testing.T) {
		t.Parallel()

		_, err := wikipedia.Summarize("text", wikipedia.WithSentences(-1))
		assert.Equal(t, wikipedia.EINVALID, wikipedia.ErrorCode(err))

		_, err = wikipedia.Summarize("text", wikipedia.WithCharacters(-1))
		assert.Equal(t, wikipedia.EINVALID, wikipedia.ErrorCode(err))
	})
}
