package models

import (
	"sort"
	"time"
)

// Departure is one upcoming departure of a line at a station.
type Departure struct {
	Line        Line       `json:"line"`
	Destination string     `json:"destination"`
	Station     string     `json:"station"`
	TimePlanned time.Time  `json:"timePlanned"`
	TimeReal    *time.Time `json:"timeReal,omitempty"`
	Countdown   int        `json:"countdown"`
}

// DisplayTime returns the real-time departure if available, otherwise the
// planned one.
func (d *Departure) DisplayTime() time.Time {
	if d.TimeReal != nil {
		return *d.TimeReal
	}
	return d.TimePlanned
}

// Equal reports whether two departures describe the same departure event.
// Countdown and real-time data change between fetches and are not part of
// the identity.
func (d *Departure) Equal(other *Departure) bool {
	return d.Line == other.Line &&
		d.Destination == other.Destination &&
		d.Station == other.Station &&
		d.TimePlanned.Equal(other.TimePlanned)
}

// SortByCountdown orders departures soonest first. Countdown is the sole
// key; the sort is stable so equal countdowns keep their feed order.
// Negative countdowns (already due) sort ahead of everything else.
func SortByCountdown(deps []Departure) {
	sort.SliceStable(deps, func(i, j int) bool {
		return deps[i].Countdown < deps[j].Countdown
	})
}
