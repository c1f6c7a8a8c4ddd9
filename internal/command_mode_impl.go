package internal

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

func newCommandPlayerMode(basePlayer *playerImpl) *commandModePlayer {
	return &commandModePlayer{playerImpl: basePlayer}
}

type commandModePlayer struct {
	*playerImpl
}

func (cp *commandModePlayer) Handle(key string) error {
	switch key {
	case ESC_KEY:
		// Cancel the command.
		cp.commandBuffer.Reset()
		cp.swapPlayerMode(NORMAL_MODE)
		return nil
	case DELETE_KEY:
		// Delete the last char in the command. If the command is empty, then swap to NORMAL mode too.
		if cp.commandBuffer.Len() == 0 {
			cp.swapPlayerMode(NORMAL_MODE)
			return nil
		}
		cmd := cp.commandBuffer.String()
		_, size := utf8.DecodeLastRuneInString(cmd)
		cp.commandBuffer.Reset()
		cp.commandBuffer.WriteString(cmd[:len(cmd)-size])
		return nil
	case ENTER_KEY:
		command := strings.TrimSpace(cp.commandBuffer.String())
		cp.commandBuffer.Reset()
		cp.swapPlayerMode(NORMAL_MODE)
		return cp.handleCommandEntered(command)
	default:
		// Named keys like "down" don't belong in a command.
		if utf8.RuneCountInString(key) != 1 {
			cp.ignore(key)
			return nil
		}
		cp.commandBuffer.WriteString(key)
		return nil
	}
}

func (cp *commandModePlayer) handleCommandEntered(command string) error {
	cp.logger.Printf("command %q", command)
	switch command {
	case "":
		return nil
	case "q", "quit":
		// Quit the program.
		return io.EOF
	case "c", "check":
		cp.check(false /*markWrong*/)
		return nil
	case "c!", "check!":
		cp.check(true /*markWrong*/)
		return nil
	default:
		cp.userMsg = fmt.Sprintf(`Unknown command "%s"`, command)
		return nil
	}
}

func (cp *commandModePlayer) StatusLine() string {
	return ":" + cp.commandBuffer.String()
}
