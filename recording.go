package notetext

// Recording is the read-only slice of a stored voice recording that the
// text helpers operate on. The app owns the full record (audio path,
// timestamps, sync state); this package never mutates these fields.
//
// Transcript and Summary use the empty string for "not available": the
// helpers only ever ask whether a field is present and non-empty, so a
// separate null state would be unobservable.
type Recording struct {
	Title      string
	FileName   string
	Transcript string
	Summary    string
}

// DisplayName returns the user-facing name for the recording: the title
// when one is set, otherwise the file name.
func (r Recording) DisplayName() string {
	if r.Title != "" {
		return r.Title
	}
	return r.FileName
}
