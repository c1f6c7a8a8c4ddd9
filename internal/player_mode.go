package internal

// PlayerMode is one state of the modal key handler.
type PlayerMode interface {
	Handle(key string) error

	// Each mode has a different idea of what belongs on the status line.
	StatusLine() string
}
