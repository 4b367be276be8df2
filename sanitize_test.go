package wikipedia_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/wikipedia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty input", raw: "", want: ""},
		{name: "whitespace only", raw: " \n\t\n ", want: ""},
		{name: "trims surrounding whitespace", raw: "\n\n  Hello world.  \n", want: "Hello world."},
		{name: "removes html comments", raw: "Before<!-- hidden --> after", want: "Before after"},
		{name: "removes unterminated comment", raw: "Text<!-- never closed", want: "Text"},
		{name: "removes paired refs", raw: "Claim.<ref name=\"a\">Source, p. 4</ref> Next.", want: "Claim. Next."},
		{name: "removes self-closing refs", raw: "Claim.<ref name=\"a\" /> Next.", want: "Claim. Next."},
		{name: "removes references block", raw: "Body.\n<references>\n<ref name=\"x\">X</ref>\n</references>", want: "Body."},
		{name: "removes math and gallery", raw: "Area <math>\\pi r^2</math> of a circle.<gallery>\nA.jpg\n</gallery>", want: "Area of a circle."},
		{name: "removes unknown templates", raw: "{{Infobox person\n| name = X\n}}\nX is a person.", want: "X is a person."},
		{name: "removes nested templates innermost first", raw: "{{Infobox|born={{birth date|1930|5|11}}}}Text", want: "Text"},
		{name: "renders spaced en dash", raw: "1930{{snd}}2002", want: "1930 – 2002"},
		{name: "renders em dash", raw: "yes{{em dash}}no", want: "yes—no"},
		{name: "renders nbsp", raw: "10{{nbsp}}km", want: "10\u00a0km"},
		{name: "renders lang template", raw: "{{lang|fr|bonjour}} means hello", want: "bonjour means hello"},
		{name: "renders lang-xx template", raw: "{{lang-de|Straße}}", want: "Straße"},
		{name: "renders IPA template", raw: "({{IPA-nl|ˈɛtsxər|pron}})", want: "(ˈɛtsxər)"},
		{name: "renders convert template", raw: "{{convert|5|km}} long", want: "5 km long"},
		{name: "removes tables", raw: "Before\n{| class=\"wikitable\"\n| a || b\n|}\nAfter", want: "Before\n\nAfter"},
		{name: "renders plain link", raw: "A [[computer scientist]].", want: "A computer scientist."},
		{name: "renders piped link", raw: "A [[Netherlands|Dutch]] man.", want: "A Dutch man."},
		{name: "renders link suffix", raw: "[[programming language]]s", want: "programming languages"},
		{name: "applies pipe trick", raw: "the [[semaphore (programming)|]] construct", want: "the semaphore construct"},
		{name: "applies pipe trick to comma titles", raw: "[[Paris, Texas|]]", want: "Paris"},
		{name: "renders leading colon link", raw: "[[:Category:Dutch physicists]]", want: "Category:Dutch physicists"},
		{name: "removes file links with nested links", raw: "[[File:X.jpg|thumb|At [[TU Eindhoven|TUE]]]]Text", want: "Text"},
		{name: "removes category links", raw: "Text\n[[Category:1930 births]]", want: "Text"},
		{name: "renders labeled external link", raw: "See [http://example.com the site].", want: "See the site."},
		{name: "removes bare external link", raw: "See [http://example.com].", want: "See ."},
		{name: "renders headings", raw: "Intro.\n\n== Early years ==\nBorn.", want: "Intro.\n\nEarly years\nBorn."},
		{name: "removes behavior switches", raw: "__NOTOC__Text", want: "Text"},
		{name: "removes bold and italic quotes", raw: "'''Bold''' and ''italic'' and Dijkstra's", want: "Bold and italic and Dijkstra's"},
		{name: "converts br to line break", raw: "one<br />two", want: "one\ntwo"},
		{name: "strips residual html tags", raw: "<span class=\"x\">kept</span> <b>text</b>", want: "kept text"},
		{name: "strips tags with unquoted attributes", raw: "<div style=color:red>kept</div>", want: "kept"},
		{name: "keeps comparisons", raw: "if a<b and c>d then", want: "if a<b and c>d then"},
		{name: "keeps unknown angle bracket words", raw: "List<String> and <T>", want: "List<String> and <T>"},
		{name: "unescapes entities", raw: "Fish &amp; chips&nbsp;&mdash;", want: "Fish & chips\u00a0—"},
		{name: "collapses whitespace runs", raw: "a  \t b", want: "a b"},
		{name: "collapses blank line runs", raw: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "normalizes crlf", raw: "a\r\n\r\nb", want: "a\n\nb"},
		{name: "keeps single line breaks", raw: "a\nb", want: "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, wikipedia.Sanitize(tt.raw))
		})
	}
}

func TestSanitize_Fixture(t *testing.T) {
	t.Parallel()

	page, err := wikipedia.ParsePage(loadFixture(t, "Edsger_Dijkstra_section_0.json"))
	require.NoError(t, err)

	want := strings.TrimSpace(loadFixture(t, "Edsger_W_Dijkstra-sanitized.txt"))
	assert.Equal(t, want, wikipedia.Sanitize(page.Content()))
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		loadFixture(t, "Edsger_Dijkstra_section_0.json"),
		"{{a|{{b|{{c}}}}}} [[x|[[y]]]] '''''q'''''",
		"&amp;lt;b&amp;gt; text",
		"<<b>>",
		"x &" + strings.Repeat("amp;", 10) + "lt;b&gt;y",
		"x &" + strings.Repeat("amp;", 10) + "lt;",
	}

	for _, in := range inputs {
		once := wikipedia.Sanitize(in)
		assert.Equal(t, once, wikipedia.Sanitize(once))
	}
}

func TestSanitize_PreservesUnicode(t *testing.T) {
	t.Parallel()

	raw := "Ἀθῆναι · 東京 · ˈɛtsxər · Łódź"

	assert.Equal(t, raw, wikipedia.Sanitize(raw))
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty input", raw: "", want: ""},
		{name: "keeps comparisons", raw: "If a<b and c>d. Then.", want: "If a<b and c>d. Then."},
		{name: "keeps entity-like text", raw: "AT&amp;T and &lt;br&gt;", want: "AT&amp;T and &lt;br&gt;"},
		{name: "keeps wiki-like text", raw: "Use {{braces}} and [[brackets]].", want: "Use {{braces}} and [[brackets]]."},
		{name: "renders headings", raw: "Intro.\n\n\n== Early years ==\nBorn.", want: "Intro.\n\nEarly years\nBorn."},
		{name: "collapses whitespace", raw: "  a \t b\r\n\r\n\r\n\r\nc  ", want: "a b\n\nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := wikipedia.NormalizeText(tt.raw)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, wikipedia.NormalizeText(got))
		})
	}
}
