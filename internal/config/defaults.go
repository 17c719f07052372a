package config

const (
	DefaultTransport = "stdio"
	DefaultHost      = "127.0.0.1"
	DefaultPort      = 8337
	DefaultLogLevel  = "info"

	DefaultOsascriptPath = "osascript"

	// NotesFolder is the one folder the gateway touches. It must exist in
	// the Notes application before the server starts; it is never created
	// automatically.
	NotesFolder = "Claude Diary"
)
