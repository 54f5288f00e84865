package pages

// Page is the stored record for a wiki page: the text split into lines plus
// the username that first created it. Author never changes; only that
// identity may replace the content.
type Page struct {
	Content []string `json:"content"`
	Author  string   `json:"author"`
}

// PutOutcome reports what an upload did.
type PutOutcome int

const (
	// PutCreated: first upload under this name; the caller should record
	// authorship on the profile.
	PutCreated PutOutcome = iota

	// PutUpdated: the author replaced the content of an existing page.
	PutUpdated

	// PutDenied: the page belongs to someone else; storage was not touched.
	PutDenied
)
