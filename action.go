package notetext

import (
	"strings"

	"golang.org/x/text/cases"
)

// actionVerbs are imperative openers that mark a line as a task when the
// line is the verb alone or starts with the verb plus a space. Ordering
// is for readability only; each entry is an independent check.
var actionVerbs = []string{
	"call", "email", "buy", "order", "pick up", "schedule", "book",
	"send", "review", "prepare", "follow up", "check", "research",
	"plan", "clean", "paint", "fix", "update", "create", "write",
	"meet", "ask", "decide", "pay", "install", "contact", "reach out",
	"set up", "organize", "arrange", "confirm", "cancel", "remind",
	"notify", "submit", "complete", "finish", "start", "begin",
	"purchase", "get", "obtain", "reserve", "make", "do", "handle",
	"process", "deliver", "ship", "visit", "go to", "attend", "join",
	"participate",
}

// taskPatterns are substrings and prefixes that mark explicit task
// phrasing. Entries padded with spaces match mid-sentence; each entry's
// trimmed form is also tried as a line prefix.
var taskPatterns = []string{
	" to-do ", " todo ", "task:", "todo:", "action:", "reminder:",
	"need to ", "should ", "must ", "have to ", "remember to ",
}

// questionWords flag open questions when the line ends with "?". Open
// questions usually need an answer before something can happen, so they
// count as actionable.
var questionWords = []string{"when ", "how ", "who "}

// IsLikelyAction reports whether a line of text reads like an actionable
// to-do item. It is a deterministic rule cascade over the trimmed,
// locale-lowercased line: imperative verb openers first, then task
// phrasing, then open questions. No natural-language understanding.
func IsLikelyAction(text string) bool {
	s := cases.Lower(appLocale).String(strings.TrimSpace(text))
	if s == "" {
		return false
	}

	for _, verb := range actionVerbs {
		if s == verb || strings.HasPrefix(s, verb+" ") {
			return true
		}
	}

	for _, pattern := range taskPatterns {
		if strings.Contains(s, pattern) || strings.HasPrefix(s, strings.TrimSpace(pattern)) {
			return true
		}
	}

	if strings.HasSuffix(s, "?") {
		for _, w := range questionWords {
			if strings.Contains(s, w) {
				return true
			}
		}
	}

	return false
}
