package board

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mdartmann/oeffimonitor-cli/internal/models"
)

const (
	// MinWidth and MinHeight are the smallest dimensions a frame can be
	// formatted at.
	MinWidth  = 20
	MinHeight = 6

	// defaultReservedRows is the vertical space held back for borders,
	// header and footer; defaultRowHeight the space per departure row.
	defaultReservedRows = 5
	defaultRowHeight    = 3
)

// Formatting errors are contract violations and fatal to the process,
// unlike feed errors which only skip a cycle.
var (
	// ErrNoteIndexOutOfRange flags a rotation index with no matching
	// traffic note. The index is validated, never clamped.
	ErrNoteIndexOutOfRange = errors.New("traffic note index out of range")

	// ErrBoardTooSmall flags a target size below MinWidth x MinHeight.
	ErrBoardTooSmall = errors.New("board dimensions below minimum")
)

// Column titles of the departure grid
var headerRow = []string{"Departure", "Line", "Closest station", "Destination"}

// cellStyle pads every cell. No colors: the grid must stay plain text so
// frames diff cell by cell.
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Formatter renders board frames. The zero value uses the default layout
// constants.
type Formatter struct {
	// ReservedRows is the vertical space not available to departure rows.
	ReservedRows int
	// RowHeight is the vertical space one departure row occupies.
	RowHeight int
}

// BoardState is one sub-frame's worth of input to Format.
type BoardState struct {
	Departures []models.Departure
	// Notes is nil when the feed omitted the traffic section.
	Notes []models.TrafficNote
	// NoteIndex selects the footer note, wrapping around len(Notes); nil
	// renders a clock-only footer.
	NoteIndex *int
	Now       time.Time
}

// Format renders state into a Frame of exactly width x height cells. The
// departure list is assumed sorted; rows beyond the available space are
// truncated, spare rows padded blank.
func (f *Formatter) Format(state BoardState, width, height int) (Frame, error) {
	if width < MinWidth || height < MinHeight {
		return Frame{}, fmt.Errorf("%w: %dx%d", ErrBoardTooSmall, width, height)
	}

	reserved := f.ReservedRows
	if reserved == 0 {
		reserved = defaultReservedRows
	}
	rowHeight := f.RowHeight
	if rowHeight == 0 {
		rowHeight = defaultRowHeight
	}
	rows := (height - reserved) / rowHeight
	if rows < 0 {
		rows = 0
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Width(width).
		Headers(headerRow...)

	shown := len(state.Departures)
	if shown > rows {
		shown = rows
	}
	for i := 0; i < shown; i++ {
		dep := &state.Departures[i]
		t.Row(
			fmt.Sprintf("%s (%+d)", dep.DisplayTime().Format("15:04"), dep.Countdown),
			dep.Line.Name,
			dep.Station,
			dep.Destination,
		)
	}
	for i := shown; i < rows; i++ {
		t.Row("", "", "", "")
	}

	footer, err := footerRow(state)
	if err != nil {
		return Frame{}, err
	}
	t.Row(footer...)

	return NewFrame(width, height, t.Render()), nil
}

// footerRow builds the bottom row: wall clock, then the selected traffic
// note when a rotation index is supplied.
func footerRow(state BoardState) ([]string, error) {
	clock := state.Now.Format("15:04:05")
	if state.NoteIndex == nil {
		return []string{clock}, nil
	}

	idx := *state.NoteIndex
	if len(state.Notes) == 0 || idx < 0 {
		return nil, fmt.Errorf("%w: index %d with %d notes", ErrNoteIndexOutOfRange, idx, len(state.Notes))
	}

	n := idx % len(state.Notes)
	note := state.Notes[n]
	return []string{
		clock,
		fmt.Sprintf("%d/%d", n+1, len(state.Notes)),
		note.Title,
		note.Description,
	}, nil
}
