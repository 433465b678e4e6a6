package notetext

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultTitleWords is the word budget used when SmartTitle is called
// with maxWords < 1.
const DefaultTitleWords = 7

// FallbackTitle is returned when no usable words can be extracted.
const FallbackTitle = "Nieuwe opname"

// appLocale drives locale-aware casing throughout the package.
// The app ships in Dutch.
var appLocale = language.Dutch

// SmartTitle derives a short display title from transcript text. It takes
// the text before the first period, keeps only letters, digits and spaces
// (every other rune is dropped outright, so "e-mail" becomes "email"),
// truncates to maxWords words, and titlecases the first letter of each
// word using Dutch casing rules. maxWords < 1 selects DefaultTitleWords.
//
// If nothing usable remains (empty input, punctuation-only input),
// FallbackTitle is returned.
func SmartTitle(text string, maxWords int) string {
	if maxWords < 1 {
		maxWords = DefaultTitleWords
	}

	flat := strings.ReplaceAll(text, "\n", " ")
	sentence, _, _ := strings.Cut(flat, ".")

	var b strings.Builder
	for _, r := range sentence {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	if len(words) == 0 {
		return FallbackTitle
	}

	// NoLower keeps the rest of each word intact, so acronyms in the
	// transcript survive titlecasing. Caser is not concurrency-safe;
	// create one per call.
	caser := cases.Title(appLocale, cases.NoLower)
	return caser.String(strings.Join(words, " "))
}
