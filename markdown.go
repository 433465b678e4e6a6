package notetext

import "regexp"

// Precompiled line patterns. Horizontal whitespace only: \s would let a
// match swallow the blank line above it in multiline mode.
var (
	headingLine = regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]*(.*)$`)
	bulletLine  = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]+`)
)

// PrettifyMarkdown flattens the constrained markdown subset the summarizer
// emits into readable plain text: ATX heading lines become **bold** lines
// and dash/star bullet lines get a "• " marker. Two independent line-level
// substitution passes, headings first. This is not a markdown parser:
// inline emphasis, links, and nested structure pass through untouched.
func PrettifyMarkdown(markdown string) string {
	out := headingLine.ReplaceAllString(markdown, "**${1}**")
	return bulletLine.ReplaceAllString(out, "• ")
}
