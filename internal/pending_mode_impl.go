package internal

func newPendingKeyMode(basePlayer *playerImpl, resume PlayerMode, then func(key string) error) *pendingKeyMode {
	return &pendingKeyMode{playerImpl: basePlayer, resume: resume, then: then}
}

// pendingKeyMode is the second half of a multi-key command, like "fa" or "]w". It takes exactly one
// key.
type pendingKeyMode struct {
	*playerImpl
	resume PlayerMode
	then   func(key string) error
}

func (pm *pendingKeyMode) Handle(key string) error {
	// Restore first, so then may swap modes or re-handle the key.
	pm.activePlayerMode = pm.resume
	return pm.then(key)
}

func (pm *pendingKeyMode) StatusLine() string {
	return pm.resume.StatusLine()
}
