package notetext_test

import (
	"testing"

	"github.com/alnah/go-notetext"
)

// ---------------------------------------------------------------------------
// TestPrettifyMarkdown - Flattens headings and bullets into plain text
// ---------------------------------------------------------------------------

func TestPrettifyMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// No markdown
		{name: "empty input", input: "", want: ""},
		{name: "plain text unchanged", input: "no markdown here", want: "no markdown here"},
		{name: "inline emphasis untouched", input: "this is *important* stuff", want: "this is *important* stuff"},

		// Headings
		{name: "h2 heading", input: "## Title", want: "**Title**"},
		{name: "h1 heading", input: "# Title", want: "**Title**"},
		{name: "h6 heading", input: "###### Deep", want: "**Deep**"},
		{name: "indented heading", input: "  ## Indented", want: "**Indented**"},
		{name: "hash without space still matches", input: "#hashtag", want: "**hashtag**"},

		// Bullets
		{name: "dash bullet", input: "- item", want: "• item"},
		{name: "star bullet", input: "* item", want: "• item"},
		{name: "indented bullet", input: "  - nested item", want: "• nested item"},
		{name: "dash without space unchanged", input: "-item", want: "-item"},
		{name: "bare dash line unchanged", input: "-", want: "-"},

		// Combined, multiline
		{name: "mixed document", input: "## Title\n- item one\n* item two", want: "**Title**\n• item one\n• item two"},
		{name: "blank lines preserved", input: "intro\n\n# Heading\n\n- point", want: "intro\n\n**Heading**\n\n• point"},
		{name: "heading output not re-matched as bullet", input: "## Bold title", want: "**Bold title**"},
		{name: "bullet content kept verbatim", input: "- keep  internal   spacing", want: "• keep  internal   spacing"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := notetext.PrettifyMarkdown(tt.input)
			if got != tt.want {
				t.Errorf("PrettifyMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Fuzz - PrettifyMarkdown never panics and is idempotent
// ---------------------------------------------------------------------------

// Both passes produce lines ("**...**", "• ...") that neither pattern can
// match again, so a second application must be a no-op.
func FuzzPrettifyMarkdown(f *testing.F) {
	f.Add("## Title\n- item one\n* item two")
	f.Add("no markdown here")
	f.Add("intro\n\n# Heading\n\n- point")
	f.Add("- # mixed markers")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		once := notetext.PrettifyMarkdown(input)
		twice := notetext.PrettifyMarkdown(once)
		if once != twice {
			t.Errorf("PrettifyMarkdown not idempotent:\nonce:  %q\ntwice: %q", once, twice)
		}
	})
}
