package wikipedia_test

import (
	"testing"

	"github.com/fwojciec/wikipedia"
	"github.com/stretchr/testify/assert"
)

func TestFormatPage(t *testing.T) {
	t.Parallel()

	t.Run("formats title url and body", func(t *testing.T) {
		t.Parallel()

		result := wikipedia.FormatPage("Edsger W. Dijkstra", "https://en.wikipedia.org/wiki/Edsger_W._Dijkstra", "Dutch computer scientist.")

		expected := "Edsger W. Dijkstra\n==================\nhttps://en.wikipedia.org/wiki/Edsger_W._Dijkstra\n\nDutch computer scientist.\n"
		assert.Equal(t, expected, result)
	})

	t.Run("underlines by characters", func(t *testing.T) {
		t.Parallel()

		result := wikipedia.FormatPage("Łódź", "", "")

		assert.Equal(t, "Łódź\n====\n", result)
	})

	t.Run("omits missing url", func(t *testing.T) {
		t.Parallel()

		result := wikipedia.FormatPage("X", "", "Body.")

		assert.Equal(t, "X\n=\n\nBody.\n", result)
	})
}

func TestFormatSections(t *testing.T) {
	t.Parallel()

	t.Run("indents by level", func(t *testing.T) {
		t.Parallel()

		sections := []wikipedia.Section{
			{Level: 2, Title: "Academic career", Anchor: "Academic_career"},
			{Level: 3, Title: "Eindhoven", Anchor: "Eindhoven"},
			{Level: 1, Title: "Top", Anchor: "Top"},
		}

		result := wikipedia.FormatSections(sections)

		assert.Equal(t, "Academic career (#Academic_career)\n  Eindhoven (#Eindhoven)\nTop (#Top)", result)
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wikipedia.FormatSections(nil))
	})
}
