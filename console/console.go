// Package console is the interactive front end: it reads commands line by
// line and calls into the game service.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/logger"
	"github.com/wfunc/hangman/persistence"
	"github.com/wfunc/hangman/services"
)

type Console struct {
	svc *services.GameService
	out io.Writer
}

func New(svc *services.GameService, out io.Writer) *Console {
	return &Console{svc: svc, out: out}
}

// Run reads commands from in until QUIT, EOF or ctx is cancelled. Reading
// happens on its own goroutine so cancellation is seen while waiting for a line.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprint(c.out, "Welcome to Hangman! Type HELP for commands.\n\n")
	fmt.Fprint(c.out, Board(c.svc.Engine()))

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	for {
		fmt.Fprint(c.out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return ctx.Err()
		case err := <-readErr:
			fmt.Fprintln(c.out)
			return err
		case line := <-lines:
			if quit := c.Handle(ctx, line); quit {
				return nil
			}
		}
	}
}

// readLines scans in until EOF or until done is closed. The error channel
// receives the scan result only after every line has been delivered.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

// Handle executes one input line and reports whether the loop should stop.
func (c *Console) Handle(ctx context.Context, line string) bool {
	cmd, arg := ParseCommand(line)

	switch cmd {
	case CmdNone:
	case CmdQuit:
		fmt.Fprintln(c.out, "Goodbye!")
		return true
	case CmdHelp:
		fmt.Fprint(c.out, helpText)
	case CmdPrint:
		fmt.Fprint(c.out, Board(c.svc.Engine()))
	case CmdRestart:
		c.svc.Restart()
		fmt.Fprint(c.out, "New word chosen.\n", Board(c.svc.Engine()))
	case CmdSave:
		slot := slotName(arg)
		if err := c.svc.Save(ctx, slot); err != nil {
			logger.Log.Errorf("Save to slot %q failed: %v", slot, err)
			fmt.Fprintf(c.out, "Could not save: %v\n", err)
			return false
		}
		fmt.Fprintf(c.out, "Saved to %q.\n", slot)
	case CmdLoad:
		c.load(ctx, slotName(arg))
	case CmdStats:
		stats, err := c.svc.Stats(ctx)
		if err != nil {
			logger.Log.Errorf("Stats failed: %v", err)
			fmt.Fprintf(c.out, "Could not read stats: %v\n", err)
			return false
		}
		fmt.Fprint(c.out, Stats(stats))
	case CmdGuess:
		fmt.Fprint(c.out, Outcome(c.svc.Guess(ctx, arg)))
	}
	return false
}

func (c *Console) load(ctx context.Context, slot string) {
	err := c.svc.Load(ctx, slot)
	switch {
	case err == nil:
		fmt.Fprintf(c.out, "Loaded %q.\n", slot)
		fmt.Fprint(c.out, Board(c.svc.Engine()))
	case errors.Is(err, persistence.ErrRecordNotFound):
		fmt.Fprintf(c.out, "Nothing saved in %q.\n", slot)
	case errors.Is(err, game.ErrCorruptState):
		fmt.Fprintf(c.out, "The save in %q is damaged; keeping the current round.\n", slot)
	default:
		logger.Log.Errorf("Load from slot %q failed: %v", slot, err)
		fmt.Fprintf(c.out, "Could not load: %v\n", err)
	}
}

func slotName(arg string) string {
	if arg == "" {
		return services.DefaultSlot
	}
	return arg
}
