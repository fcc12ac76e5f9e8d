package output

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// ClearScreen clears the terminal screen and moves cursor to top-left
func ClearScreen(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[2J\033[H")
}

// HideCursor hides the terminal cursor
func HideCursor(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor
func ShowCursor(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25h")
}

// MoveTo positions the cursor at column x, row y, both zero-based
func MoveTo(w io.Writer, x, y int) {
	_, _ = fmt.Fprintf(w, "\033[%d;%dH", y+1, x+1)
}

// TerminalSize reports the dimensions in cells of the terminal attached to f
func TerminalSize(f *os.File) (width, height int, err error) {
	return term.GetSize(int(f.Fd()))
}

// SetupSignalHandler returns a channel that receives interrupt signals
func SetupSignalHandler() chan os.Signal {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	return sigChan
}
