package profiles

// Profile is the mutable per-account record. Bio, DOB and Location are
// optional free text and marshal to JSON null when unset.
//
// PagesAuthored is append-only under normal flow: a name is recorded once,
// when the page is first created. Favorites is semantically a set, kept
// sorted for deterministic display.
type Profile struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Username      string   `json:"username"`
	PagesAuthored []string `json:"pages_authored"`
	Favorites     []string `json:"favorites"`
	Bio           *string  `json:"bio"`
	DOB           *string  `json:"DOB"`
	Location      *string  `json:"location"`
}
