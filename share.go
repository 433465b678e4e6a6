package notetext

import "strings"

// Share-sheet section labels. "Samenvatting" is deliberately untranslated:
// the app's share output is Dutch.
const (
	shareFileLabel       = "File: "
	shareTranscriptLabel = "Transcript:\n"
	shareSummaryLabel    = "Samenvatting:\n"
)

// ShareText composes the text block handed to the system share sheet from
// a recording's fields. A non-nil transcript or summary overrides the
// recording's own field, even when it points at an empty string (which
// suppresses that section); pass nil to use what the recording holds.
// Summaries are flattened with PrettifyMarkdown before inclusion.
//
// Sections are separated by one blank line. The name line always appears;
// transcript and summary sections appear only when non-empty.
func ShareText(rec Recording, transcript, summary *string) string {
	sections := []string{shareFileLabel + rec.DisplayName()}

	effTranscript := rec.Transcript
	if transcript != nil {
		effTranscript = *transcript
	}
	effSummary := rec.Summary
	if summary != nil {
		effSummary = *summary
	}

	if effTranscript != "" {
		sections = append(sections, shareTranscriptLabel+effTranscript)
	}
	if effSummary != "" {
		sections = append(sections, shareSummaryLabel+PrettifyMarkdown(effSummary))
	}

	return strings.Join(sections, "\n\n")
}
