package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/mdartmann/oeffimonitor-cli/internal/api"
)

// DefaultStopIDs covers the stops around the Vienna Rathaus quarter.
var DefaultStopIDs = []int{
	252, 269, // Rathaus, tram 2 (both directions)
	4205, 4210, // Rathaus, U2 (both directions)
	1346,       // Landesgerichtsstraße, trams 43/44 and N43 outbound
	1212, 1303, // Schottentor, trams 37-42 and bus 40A outbound
	3701, 5568, // Schottentor, night buses N38/N41 outbound
	17,     // Rathausplatz/Burgtheater, trams D/1/71 and night buses
	48, 16, // Stadiongasse/Parlament, trams D/1/2/71
	1401, 1440, // Volkstheater, buses 48A/49 outbound
	4908, 4909, // Volkstheater, U3 (both directions)
	1376, 5691, // Auerspergstraße, buses 46/N46 outbound
}

// Config is the runtime configuration of the monitor.
type Config struct {
	// StopIDs are the RBL stop identifiers to monitor.
	StopIDs []int `toml:"stop_ids" validate:"required,min=1,dive,gt=0"`
	// RefreshInterval is the sub-frame period in seconds.
	RefreshInterval int `toml:"refresh_interval_s" validate:"gte=1"`
	// Subframes is the number of renders per fetch.
	Subframes int `toml:"subframes_per_fetch" validate:"gte=1"`
	// APIURL overrides the OGD realtime API root.
	APIURL string `toml:"api_url" validate:"omitempty,url"`
	// TrafficInfo is the activateTrafficInfo request category.
	TrafficInfo string `toml:"traffic_info"`
	// Timeout is the HTTP timeout in seconds.
	Timeout int `toml:"timeout_s" validate:"gte=1"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StopIDs:         append([]int(nil), DefaultStopIDs...),
		RefreshInterval: 1,
		Subframes:       10,
		TrafficInfo:     api.TrafficInfoLong,
		Timeout:         10,
	}
}

// Load reads the TOML file at path when path is non-empty, merges it over
// the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Interval returns the sub-frame period.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.RefreshInterval) * time.Second
}

// HTTPTimeout returns the request timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
