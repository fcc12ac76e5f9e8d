package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mdartmann/oeffimonitor-cli/internal/api"
	"github.com/mdartmann/oeffimonitor-cli/internal/testutil"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	testutil.AssertLen(t, cfg.StopIDs, len(DefaultStopIDs))
	testutil.AssertEqual(t, cfg.StopIDs[0], 252)
	testutil.AssertEqual(t, cfg.RefreshInterval, 1)
	testutil.AssertEqual(t, cfg.Subframes, 10)
	testutil.AssertEqual(t, cfg.APIURL, "")
	testutil.AssertEqual(t, cfg.TrafficInfo, api.TrafficInfoLong)
	testutil.AssertEqual(t, cfg.Timeout, 10)
}

func TestDefault_CopiesStopIDs(t *testing.T) {
	cfg := Default()
	cfg.StopIDs[0] = 9999

	testutil.AssertEqual(t, DefaultStopIDs[0], 252)
	testutil.AssertEqual(t, Default().StopIDs[0], 252)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, cfg.RefreshInterval, 1)
	testutil.AssertLen(t, cfg.StopIDs, len(DefaultStopIDs))
}

func TestLoad_File(t *testing.T) {
	path := writeConfigFile(t, `
stop_ids = [252, 269]
refresh_interval_s = 2
subframes_per_fetch = 5
api_url = "http://localhost:8080/monitor"
traffic_info = "stoerungkurz"
timeout_s = 30
`)

	cfg, err := Load(path)
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, cfg.StopIDs, 2)
	testutil.AssertEqual(t, cfg.StopIDs[0], 252)
	testutil.AssertEqual(t, cfg.StopIDs[1], 269)
	testutil.AssertEqual(t, cfg.RefreshInterval, 2)
	testutil.AssertEqual(t, cfg.Subframes, 5)
	testutil.AssertEqual(t, cfg.APIURL, "http://localhost:8080/monitor")
	testutil.AssertEqual(t, cfg.TrafficInfo, api.TrafficInfoShort)
	testutil.AssertEqual(t, cfg.Timeout, 30)
}

func TestLoad_PartialFile(t *testing.T) {
	path := writeConfigFile(t, `stop_ids = [1346]`)

	cfg, err := Load(path)
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, cfg.StopIDs, 1)
	testutil.AssertEqual(t, cfg.StopIDs[0], 1346)

	// Unset keys keep their defaults
	testutil.AssertEqual(t, cfg.RefreshInterval, 1)
	testutil.AssertEqual(t, cfg.Subframes, 10)
	testutil.AssertEqual(t, cfg.TrafficInfo, api.TrafficInfoLong)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "failed to load config")
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfigFile(t, `stop_ids = [252`)

	_, err := Load(path)
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "failed to load config")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty stop list", `stop_ids = []`},
		{"zero stop id", `stop_ids = [252, 0]`},
		{"negative stop id", `stop_ids = [-1]`},
		{"zero refresh interval", `refresh_interval_s = 0`},
		{"zero subframes", `subframes_per_fetch = 0`},
		{"zero timeout", `timeout_s = 0`},
		{"bad api url", `api_url = "not a url"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)

			_, err := Load(path)
			testutil.AssertError(t, err)
			testutil.AssertContains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	testutil.AssertNil(t, cfg.Validate())

	cfg.StopIDs = nil
	testutil.AssertError(t, cfg.Validate())
}

func TestDurationHelpers(t *testing.T) {
	cfg := Config{RefreshInterval: 3, Timeout: 15}
	testutil.AssertEqual(t, cfg.Interval(), 3*time.Second)
	testutil.AssertEqual(t, cfg.HTTPTimeout(), 15*time.Second)
}
