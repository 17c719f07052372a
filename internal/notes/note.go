package notes

// Note is a full record as the Notes application reports it. The ID is an
// opaque x-coredata:// URL; timestamps are AppleScript date-as-string values
// in the system locale and are passed through unparsed.
type Note struct {
	ID       string
	Title    string
	Body     string
	Created  string
	Modified string
}

// NoteSummary is a listing entry: everything but the body.
type NoteSummary struct {
	ID       string
	Title    string
	Created  string
	Modified string
}
