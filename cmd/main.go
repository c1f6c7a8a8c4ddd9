package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	gc "github.com/gbin/goncurses"
	"golang.org/x/term"

	"github.com/omarnabikhan/xword/internal"
	"github.com/omarnabikhan/xword/internal/config"
	"github.com/omarnabikhan/xword/internal/crossword"
	"github.com/omarnabikhan/xword/internal/puz"
	"github.com/omarnabikhan/xword/internal/screen"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: xword <file.puz>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	// Everything that can go wrong with the puzzle should do so before curses takes the terminal.
	file, err := puz.Open(path)
	if err != nil {
		fail(fmt.Errorf("%s: %w", path, err))
	}
	puzzle, err := crossword.FromFile(file)
	if err != nil {
		fail(fmt.Errorf("%s: %w", path, err))
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fail(errors.New("stdin is not a terminal"))
	}
	logger.Printf("loaded %s: %q by %q, %dx%d", path, puzzle.Title, puzzle.Author, puzzle.Width, puzzle.Height)

	// Prevent escape key delay.
	if _, ok := os.LookupEnv("ESCDELAY"); !ok {
		os.Setenv("ESCDELAY", "0")
	}
	window, err := gc.Init()
	if err != nil {
		fail(err)
	}
	defer gc.End()

	gc.Echo(false)
	gc.CBreak(true)
	gc.Cursor(0)
	gc.StartColor()
	window.Keypad(true)

	painter, err := screen.New(window, puzzle, cfg)
	if err != nil {
		gc.End()
		fail(err)
	}
	player := internal.NewPlayer(puzzle, cfg, painter, logger)
	defer player.Close()

	// Also cleanup on process exit. mu keeps the teardown from running in the middle of a paint.
	var mu sync.Mutex
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan
		mu.Lock()
		player.Close()
		gc.End()
		closeLog()
		os.Exit(0)
	}()

	for {
		key := window.GetChar()
		if key == 0 {
			continue
		}
		mu.Lock()
		err := player.Handle(gc.KeyString(key))
		mu.Unlock()
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Print("quit")
				return
			}
			logger.Printf("handle: %v", err)
		}
	}
}

func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return log.New(f, "xword: ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "xword: %v\n", err)
	os.Exit(1)
}
