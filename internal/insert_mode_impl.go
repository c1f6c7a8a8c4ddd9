package internal

func newInsertPlayerMode(basePlayer *playerImpl) *insertModePlayer {
	return &insertModePlayer{playerImpl: basePlayer}
}

type insertModePlayer struct {
	*playerImpl
}

func (ip *insertModePlayer) Handle(key string) error {
	if ip.handleGlobal(key) {
		return nil
	}
	switch key {
	case ESC_KEY:
		ip.escape()
	case DELETE_KEY:
		// Delete the letter before the cursor.
		ip.puzzle.Retreat()
		ip.puzzle.Delete()
	case "up":
		ip.puzzle.Move(0, -1)
	case "down":
		ip.puzzle.Move(0, 1)
	case "left":
		ip.puzzle.Move(-1, 0)
	case "right":
		ip.puzzle.Move(1, 0)
	default:
		if ip.hasChord && key == ip.chordFirst {
			ip.awaitKey(ip.finishChord)
			return nil
		}
		if !ip.typeKey(key) {
			ip.ignore(key)
			return nil
		}
		ip.puzzle.Advance()
	}
	return nil
}

// finishChord handles the key after the chord's first key. If it doesn't complete the chord, the
// first key was just a letter.
func (ip *insertModePlayer) finishChord(key string) error {
	if key == ip.chordSecond {
		ip.escape()
		return nil
	}
	if ip.typeKey(ip.chordFirst) {
		ip.puzzle.Advance()
	}
	return ip.activePlayerMode.Handle(key)
}

func (ip *insertModePlayer) escape() {
	ip.userMsg = ""
	ip.swapPlayerMode(NORMAL_MODE)
}

func (ip *insertModePlayer) StatusLine() string {
	return ip.userMsg
}
