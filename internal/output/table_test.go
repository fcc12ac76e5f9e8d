package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mdartmann/oeffimonitor-cli/internal/models"
	"github.com/mdartmann/oeffimonitor-cli/internal/testutil"
)

func makeDeparture(line, station, dest string, countdown int) models.Departure {
	return models.Departure{
		Line:        models.Line{Type: models.VehicleTram, Name: line},
		Destination: dest,
		Station:     station,
		TimePlanned: time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC),
		Countdown:   countdown,
	}
}

func TestRenderDepartures_Empty(t *testing.T) {
	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever)}

	RenderDepartures(&buf, []models.Departure{}, opts)

	output := buf.String()
	testutil.AssertContains(t, output, "No departures found")
}

func TestRenderDepartures_SingleDeparture(t *testing.T) {
	dep := makeDeparture("2", "Rathaus", "Friedrich-Engels-Platz", 7)

	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever)}

	RenderDepartures(&buf, []models.Departure{dep}, opts)

	output := buf.String()
	testutil.AssertContains(t, output, "14:30")
	testutil.AssertContains(t, output, "   7")
	testutil.AssertContains(t, output, "Rathaus")
	testutil.AssertContains(t, output, "Friedrich-Engels-Platz")
}

func TestRenderDepartures_RealtimeOverride(t *testing.T) {
	dep := makeDeparture("2", "Rathaus", "Friedrich-Engels-Platz", 10)
	rt := time.Date(2024, 1, 1, 14, 33, 0, 0, time.UTC)
	dep.TimeReal = &rt

	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever)}

	RenderDepartures(&buf, []models.Departure{dep}, opts)

	output := buf.String()
	// The realtime estimate wins over the timetable
	testutil.AssertContains(t, output, "14:33")
	testutil.AssertNotContains(t, output, "14:30")
}

func TestRenderDepartures_NegativeCountdown(t *testing.T) {
	dep := makeDeparture("2", "Rathaus", "Friedrich-Engels-Platz", -2)

	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever)}

	RenderDepartures(&buf, []models.Departure{dep}, opts)

	testutil.AssertContains(t, buf.String(), "  -2")
}

func TestRenderDepartures_Limit(t *testing.T) {
	departures := []models.Departure{
		makeDeparture("L1", "Rathaus", "A", 1),
		makeDeparture("L2", "Rathaus", "B", 2),
		makeDeparture("L3", "Rathaus", "C", 3),
	}

	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever), Limit: 2}

	RenderDepartures(&buf, departures, opts)

	output := buf.String()
	testutil.AssertContains(t, output, "L1")
	testutil.AssertContains(t, output, "L2")
	testutil.AssertNotContains(t, output, "L3")
}

func TestRenderDepartures_LongLineName(t *testing.T) {
	dep := makeDeparture("VERYLONGLINE", "Rathaus", "A", 1)

	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever)}

	RenderDepartures(&buf, []models.Departure{dep}, opts)

	output := buf.String()
	// Should be truncated to 6 chars
	testutil.AssertContains(t, output, "VERYLO")
	testutil.AssertNotContains(t, output, "VERYLONGLINE")
}

func TestRenderDepartures_LongStationName(t *testing.T) {
	dep := makeDeparture("2", "Stadiongasse Parlament Wien XYZ", "A", 1)

	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever)}

	RenderDepartures(&buf, []models.Departure{dep}, opts)

	output := buf.String()
	// Should be truncated to 28 chars
	testutil.AssertContains(t, output, "Stadiongasse Parlament Wien")
	testutil.AssertNotContains(t, output, "XYZ")
}

func TestRenderDepartures_MultipleDepartures(t *testing.T) {
	departures := []models.Departure{
		makeDeparture("2", "Rathaus", "Friedrich-Engels-Platz", 2),
		makeDeparture("40A", "Schottentor", "Döblinger Friedhof", 5),
	}

	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever)}

	RenderDepartures(&buf, departures, opts)

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	testutil.AssertLen(t, lines, 2)
	testutil.AssertContains(t, output, "Döblinger Friedhof")
}

func TestRenderTrafficNotes_Empty(t *testing.T) {
	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever)}

	RenderTrafficNotes(&buf, nil, opts)

	testutil.AssertContains(t, buf.String(), "No traffic notes found")
}

func TestRenderTrafficNotes_Basic(t *testing.T) {
	notes := []models.TrafficNote{
		{Title: "U2: Betriebseinstellung", Description: "Kein Betrieb zwischen Schottentor und Rathaus."},
		{Title: "2: Verkehrsunfall", Description: "Verzögerungen in beiden Richtungen."},
	}

	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever)}

	RenderTrafficNotes(&buf, notes, opts)

	output := buf.String()
	testutil.AssertContains(t, output, "1/2")
	testutil.AssertContains(t, output, "U2: Betriebseinstellung")
	testutil.AssertContains(t, output, "Kein Betrieb zwischen Schottentor und Rathaus.")
	testutil.AssertContains(t, output, "2/2")
	testutil.AssertContains(t, output, "2: Verkehrsunfall")
	testutil.AssertNotContains(t, output, "Priority:")
}

func TestRenderTrafficNotes_Priority(t *testing.T) {
	notes := []models.TrafficNote{
		{Title: "U2: Betriebseinstellung", Description: "Kein Betrieb.", Priority: "1"},
	}

	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever)}

	RenderTrafficNotes(&buf, notes, opts)

	output := buf.String()
	testutil.AssertContains(t, output, "Priority:")
	testutil.AssertContains(t, output, "1")
}

func TestRenderStations_Empty(t *testing.T) {
	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever)}

	RenderStations(&buf, nil, opts)

	testutil.AssertContains(t, buf.String(), "No stations found")
}

func TestRenderStations_GroupsByStation(t *testing.T) {
	departures := []models.Departure{
		makeDeparture("2", "Rathaus", "A", 1),
		makeDeparture("40A", "Schottentor", "B", 2),
		makeDeparture("U2", "Rathaus", "C", 3),
		makeDeparture("2", "Rathaus", "D", 4), // seen already
	}

	var buf bytes.Buffer
	opts := TableOptions{Colors: NewColors(ColorNever)}

	RenderStations(&buf, departures, opts)

	output := buf.String()
	testutil.AssertContains(t, output, "Monitored stations:")
	testutil.AssertContains(t, output, "Lines:")

	// Lines grouped under their station, duplicates dropped
	testutil.AssertContains(t, output, "2, U2")
	testutil.AssertContains(t, output, "40A")
	testutil.AssertEqual(t, strings.Count(output, "Rathaus"), 1)

	// Stations keep first-seen order
	testutil.AssertTrue(t, strings.Index(output, "Rathaus") < strings.Index(output, "Schottentor"))
}
