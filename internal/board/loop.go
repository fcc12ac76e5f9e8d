package board

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mdartmann/oeffimonitor-cli/internal/models"
	"github.com/mdartmann/oeffimonitor-cli/internal/output"
	"github.com/rs/zerolog"
)

const (
	defaultInterval  = time.Second
	defaultSubframes = 10
)

// FetchFunc produces one cycle's worth of normalized feed data.
type FetchFunc func(ctx context.Context) ([]models.Departure, []models.TrafficNote, error)

// SizeFunc reports the current terminal dimensions in cells.
type SizeFunc func() (width, height int, err error)

// Loop drives the board: fetch once, render a run of sub-frames one
// interval apart, fetch again. Feed errors skip the cycle and the loop
// carries on; rendering and terminal errors end it.
type Loop struct {
	Fetch FetchFunc
	Size  SizeFunc
	Out   io.Writer
	// Formatter may be nil; the zero Formatter is used then.
	Formatter *Formatter
	// Interval is the sub-frame period (default 1s).
	Interval time.Duration
	// Subframes is the number of renders per fetch (default 10).
	Subframes int
	// Log receives cycle errors; zerolog.Nop() silences them.
	Log zerolog.Logger

	prev     Frame
	rotation int
}

// Run blocks until ctx is canceled or a fatal error occurs. The cursor is
// hidden for the duration of the loop.
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval == 0 {
		interval = defaultInterval
	}
	subframes := l.Subframes
	if subframes == 0 {
		subframes = defaultSubframes
	}
	formatter := l.Formatter
	if formatter == nil {
		formatter = &Formatter{}
	}

	w := bufio.NewWriter(l.Out)
	output.HideCursor(w)
	_ = w.Flush()
	defer func() {
		output.ShowCursor(w)
		_ = w.Flush()
	}()

	for {
		deps, notes, err := l.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.Log.Warn().Err(err).Msg("refresh cycle failed")
			// Force a full repaint once data is back.
			l.prev = Frame{}
			if err := sleep(ctx, interval); err != nil {
				return err
			}
			continue
		}

		for i := 0; i < subframes; i++ {
			if err := l.renderSubframe(w, formatter, deps, notes); err != nil {
				return err
			}
			if err := sleep(ctx, interval); err != nil {
				return err
			}
		}
	}
}

// renderSubframe formats one frame and writes the difference against the
// previous one, or the whole frame after a resize. All output of the
// sub-frame reaches the terminal in a single flush.
func (l *Loop) renderSubframe(w *bufio.Writer, formatter *Formatter, deps []models.Departure, notes []models.TrafficNote) error {
	width, height, err := l.Size()
	if err != nil {
		return fmt.Errorf("failed to read terminal size: %w", err)
	}

	state := BoardState{
		Departures: deps,
		Notes:      notes,
		Now:        time.Now(),
	}
	if len(notes) > 0 {
		idx := l.rotation
		state.NoteIndex = &idx
	}
	l.rotation++

	// One cell of margin so writes to the last row never scroll.
	frame, err := formatter.Format(state, width-1, height-1)
	if err != nil {
		return err
	}

	if HasResized(l.prev, frame) {
		output.ClearScreen(w)
		_, _ = io.WriteString(w, frame.String())
	} else {
		for _, u := range Diff(l.prev, frame) {
			output.MoveTo(w, u.X, u.Y)
			_, _ = w.WriteRune(u.Ch)
		}
	}
	output.MoveTo(w, 0, 0)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("terminal write failed: %w", err)
	}

	l.prev = frame
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
