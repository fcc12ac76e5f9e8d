package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Wire types for the monitor endpoint. Required fields are pointers so that
// absent keys stay distinguishable from zero values until Normalize resolves
// them.

// MonitorResponse represents the raw JSON of a monitor request.
type MonitorResponse struct {
	Data *MonitorData `json:"data"`
}

// MonitorData carries the per-stop monitors and the optional traffic section.
// TrafficInfos stays undecoded here; its lenient handling happens in
// Normalize, separate from the strict monitor decoding.
type MonitorData struct {
	Monitors     *[]Monitor      `json:"monitors"`
	TrafficInfos json.RawMessage `json:"trafficInfos"`
}

// Monitor binds one physical stop to the lines departing from it.
type Monitor struct {
	LocationStop *LocationStop  `json:"locationStop"`
	Lines        *[]MonitorLine `json:"lines"`
}

// LocationStop wraps the GeoJSON-style stop record; only the title matters.
type LocationStop struct {
	Properties *StopProperties `json:"properties"`
}

// StopProperties holds the stop metadata of a monitor entry.
type StopProperties struct {
	Title *string `json:"title"`
}

// MonitorLine represents one line serving a monitored stop.
type MonitorLine struct {
	Name       *string         `json:"name"`
	Towards    *string         `json:"towards"`
	Type       *string         `json:"type"`
	Departures *LineDepartures `json:"departures"`
}

// LineDepartures wraps the departure list of a line.
type LineDepartures struct {
	Departure *[]RawDeparture `json:"departure"`
}

// RawDeparture represents one raw departure entry.
type RawDeparture struct {
	DepartureTime *DepartureTime `json:"departureTime"`
}

// DepartureTime carries the timing fields of a raw departure. TimeReal is
// genuinely optional; the other two are required.
type DepartureTime struct {
	TimePlanned *string `json:"timePlanned"`
	TimeReal    *string `json:"timeReal"`
	Countdown   *int    `json:"countdown"`
}

type rawTrafficInfo struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
}

// ParseMonitorResponse decodes a raw monitor payload. Invalid JSON is a
// parse error; a wrong JSON type on a known field surfaces as a
// MalformedValueError carrying the field path.
func ParseMonitorResponse(data []byte) (*MonitorResponse, error) {
	var resp MonitorResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &MalformedValueError{Path: typeErr.Field, Expected: typeErr.Type.String()}
		}
		return nil, fmt.Errorf("failed to parse monitor response: %w", err)
	}
	return &resp, nil
}

// Normalize converts a parsed monitor response into the sorted departure
// list and the optional traffic notes. Monitor data is strict: any missing
// field aborts the whole normalization, there is no partial board. Traffic
// notes are best-effort as a whole collection: nil means the section was
// absent or unusable, an empty non-nil slice means it was present and empty.
// Offset-less timestamps are interpreted in loc.
func (r *MonitorResponse) Normalize(loc *time.Location) ([]Departure, []TrafficNote, error) {
	if r.Data == nil || r.Data.Monitors == nil {
		return nil, nil, &MissingFieldError{Field: "monitors"}
	}

	var departures []Departure
	for i, mon := range *r.Data.Monitors {
		path := fmt.Sprintf("monitors[%d]", i)

		station, err := mon.title(path)
		if err != nil {
			return nil, nil, err
		}
		if mon.Lines == nil {
			return nil, nil, &MissingFieldError{Field: path + ".lines"}
		}
		for j, line := range *mon.Lines {
			deps, err := line.normalize(fmt.Sprintf("%s.lines[%d]", path, j), station, loc)
			if err != nil {
				return nil, nil, err
			}
			departures = append(departures, deps...)
		}
	}
	SortByCountdown(departures)

	return departures, r.Data.trafficNotes(), nil
}

func (m *Monitor) title(path string) (string, error) {
	if m.LocationStop == nil || m.LocationStop.Properties == nil || m.LocationStop.Properties.Title == nil {
		return "", &MissingFieldError{Field: path + ".locationStop.properties.title"}
	}
	return *m.LocationStop.Properties.Title, nil
}

func (l *MonitorLine) normalize(path, station string, loc *time.Location) ([]Departure, error) {
	if l.Name == nil {
		return nil, &MissingFieldError{Field: path + ".name"}
	}
	if l.Towards == nil {
		return nil, &MissingFieldError{Field: path + ".towards"}
	}
	if l.Type == nil {
		return nil, &MissingFieldError{Field: path + ".type"}
	}
	vt, err := VehicleTypeFromCode(*l.Type)
	if err != nil {
		return nil, err
	}
	if l.Departures == nil || l.Departures.Departure == nil {
		return nil, &MissingFieldError{Field: path + ".departures.departure"}
	}

	line := Line{Type: vt, Name: *l.Name}
	deps := make([]Departure, 0, len(*l.Departures.Departure))
	for k, rd := range *l.Departures.Departure {
		dpath := fmt.Sprintf("%s.departures.departure[%d].departureTime", path, k)
		dt := rd.DepartureTime
		if dt == nil {
			return nil, &MissingFieldError{Field: dpath}
		}
		if dt.TimePlanned == nil {
			return nil, &MissingFieldError{Field: dpath + ".timePlanned"}
		}
		if dt.Countdown == nil {
			return nil, &MissingFieldError{Field: dpath + ".countdown"}
		}
		planned, err := parseFeedTime(*dt.TimePlanned, loc)
		if err != nil {
			return nil, &MalformedValueError{Path: dpath + ".timePlanned", Expected: "timestamp"}
		}

		dep := Departure{
			Line:        line,
			Destination: *l.Towards,
			Station:     station,
			TimePlanned: planned,
			Countdown:   *dt.Countdown,
		}
		if dt.TimeReal != nil {
			rt, err := parseFeedTime(*dt.TimeReal, loc)
			if err != nil {
				return nil, &MalformedValueError{Path: dpath + ".timeReal", Expected: "timestamp"}
			}
			dep.TimeReal = &rt
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

// trafficNotes resolves the optional traffic section. Any entry missing a
// required field discards the whole collection, never a partial list.
func (d *MonitorData) trafficNotes() []TrafficNote {
	if d.TrafficInfos == nil {
		return nil
	}
	var raw []rawTrafficInfo
	if err := json.Unmarshal(d.TrafficInfos, &raw); err != nil {
		return nil
	}
	if raw == nil {
		return nil
	}
	notes := make([]TrafficNote, 0, len(raw))
	for _, ti := range raw {
		if ti.Title == nil || ti.Description == nil {
			return nil
		}
		note := TrafficNote{Title: *ti.Title, Description: *ti.Description}
		if ti.Priority != nil {
			note.Priority = *ti.Priority
		}
		notes = append(notes, note)
	}
	return notes
}

// feed timestamps look like "2024-01-01T10:00:00.000+0100"; fractional
// seconds and the offset are not always present.
var feedTimeLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
}

func parseFeedTime(s string, loc *time.Location) (time.Time, error) {
	var lastErr error
	for _, layout := range feedTimeLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
