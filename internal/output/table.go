package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mdartmann/oeffimonitor-cli/internal/models"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors *Colors
	Limit  int
}

// RenderDepartures renders departures as a formatted table
func RenderDepartures(w io.Writer, departures []models.Departure, opts TableOptions) {
	if len(departures) == 0 {
		_, _ = fmt.Fprintln(w, "No departures found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	deps := departures
	if opts.Limit > 0 && opts.Limit < len(deps) {
		deps = deps[:opts.Limit]
	}

	for _, dep := range deps {
		// Time
		timeStr := dep.DisplayTime().Format("15:04")

		// Countdown in minutes (fixed 4-char width)
		countdownStr := c.FormatCountdown(dep.Countdown)

		// Line (truncate/pad to 6 chars)
		line := dep.Line.Name
		if len(line) > 6 {
			line = line[:6]
		}
		lineStr := fmt.Sprintf("%-6s", line)

		// Station (truncate/pad to 28 chars)
		station := dep.Station
		if len(station) > 28 {
			station = station[:28]
		}
		stationStr := fmt.Sprintf("%-28s", station)

		// Format the line: TIME COUNTDOWN LINE STATION DEST
		_, _ = fmt.Fprintf(w, "%s %s  %s  %s %s\n",
			c.Time(timeStr),
			countdownStr,
			c.Line(lineStr),
			c.Station(stationStr),
			dep.Destination,
		)
	}
}

// RenderTrafficNotes renders disruption notes as a formatted list
func RenderTrafficNotes(w io.Writer, notes []models.TrafficNote, opts TableOptions) {
	if len(notes) == 0 {
		_, _ = fmt.Fprintln(w, "No traffic notes found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	for i, note := range notes {
		_, _ = fmt.Fprintf(w, "%s %s\n",
			c.Muted("%d/%d", i+1, len(notes)),
			c.Note(note.Title),
		)
		if note.Priority != "" {
			_, _ = fmt.Fprintf(w, "    %s %s\n", c.Muted("Priority:"), c.Priority(note.Priority))
		}
		_, _ = fmt.Fprintf(w, "    %s\n", note.Description)
		_, _ = fmt.Fprintln(w)
	}
}

// RenderStations renders the monitored stations with the lines seen there
func RenderStations(w io.Writer, departures []models.Departure, opts TableOptions) {
	if len(departures) == 0 {
		_, _ = fmt.Fprintln(w, "No stations found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	// Group line names by station, keeping first-seen order
	stations := make([]string, 0)
	lines := make(map[string][]string)
	seen := make(map[string]map[string]bool)
	for _, dep := range departures {
		if _, ok := lines[dep.Station]; !ok {
			stations = append(stations, dep.Station)
			lines[dep.Station] = nil
			seen[dep.Station] = make(map[string]bool)
		}
		if !seen[dep.Station][dep.Line.Name] {
			seen[dep.Station][dep.Line.Name] = true
			lines[dep.Station] = append(lines[dep.Station], dep.Line.Name)
		}
	}

	_, _ = fmt.Fprintln(w, c.Header("Monitored stations:"))
	_, _ = fmt.Fprintln(w)

	for _, station := range stations {
		_, _ = fmt.Fprintf(w, "  %s\n", c.Station(station))
		_, _ = fmt.Fprintf(w, "    %s %s\n", c.Muted("Lines:"), c.Line(strings.Join(lines[station], ", ")))
		_, _ = fmt.Fprintln(w)
	}
}
