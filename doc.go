// Package notetext implements the text transformations behind a voice-notes
// application:
//   - Deriving a short display title from transcript text
//   - Flattening markdown summaries into shareable plain text
//   - Composing the share-sheet text block for a recording
//   - Flagging lines that read like actionable tasks
//   - Transcript hygiene (blank detection, whitespace normalization)
//   - Display strings for recording length and file size
//
// Recording storage, playback, transcription, and the actual sharing
// mechanism live in the app; this package only reads Recording fields and
// transforms strings. Every function is pure and total: no I/O, no errors,
// no shared state, safe for concurrent use.
package notetext
