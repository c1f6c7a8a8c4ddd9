package xword

// Player - The main interface that represents the program. At any point there will be just one
// instantiation of Player. The program will pass keys that the user presses (as named by curses),
// and it handles the manipulation of the puzzle and the publishing of that state (via painting the
// grid and clues to the terminal).
type Player interface {
	// Handle processes one key. It returns io.EOF when the user quits.
	Handle(key string) error
	Close()
}
