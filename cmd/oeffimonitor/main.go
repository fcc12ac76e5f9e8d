package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mdartmann/oeffimonitor-cli/internal/api"
	"github.com/mdartmann/oeffimonitor-cli/internal/board"
	"github.com/mdartmann/oeffimonitor-cli/internal/config"
	"github.com/mdartmann/oeffimonitor-cli/internal/models"
	"github.com/mdartmann/oeffimonitor-cli/internal/output"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oeffimonitor",
	Short: "Live terminal departure board for the Wiener Linien realtime API",
	Long: `oeffimonitor renders a live departure board for Vienna's public
transit from the Wiener Linien OGD realtime API.

Features:
  - Full-screen departure board refreshed every second
  - Flicker-free rendering, only changed cells are redrawn
  - Rotating traffic disruption footer
  - One-shot departure, disruption and station listings
  - JSON output for scripting
  - TOML configuration with built-in Vienna city-hall defaults

Quick Start:
  1. Launch the board:          oeffimonitor (or oeffimonitor board)
  2. List departures once:      oeffimonitor departures
  3. Show disruptions:          oeffimonitor traffic
  4. List monitored stations:   oeffimonitor stops
  5. Monitor specific stops:    oeffimonitor board --stops 252,269`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, launch the board
		if len(args) == 0 {
			return runBoard(cmd, args)
		}
		return cmd.Help()
	},
}

// Global flags
var (
	flagConfig  string
	flagStops   []int
	flagTimeout int
	flagJSON    bool
	flagRawJSON bool
	flagColor   string
	flagVerbose bool
)

// Board flags
var (
	flagInterval  int
	flagSubframes int
)

// Departures/traffic flags
var (
	flagLimit    int
	flagCategory string
)

func init() {
	// Add subcommands
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(departuresCmd)
	rootCmd.AddCommand(trafficCmd)
	rootCmd.AddCommand(stopsCmd)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to TOML config file")
	rootCmd.PersistentFlags().IntSliceVarP(&flagStops, "stops", "s", nil, "RBL stop ids to monitor (comma separated)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "HTTP timeout in seconds")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagRawJSON, "raw-json", false, "Output raw API response")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log fetch errors in detail")

	// Board-specific flags
	boardCmd.Flags().IntVarP(&flagInterval, "interval", "i", 0, "Sub-frame period in seconds")
	boardCmd.Flags().IntVar(&flagSubframes, "subframes", 0, "Renders per feed fetch")

	// Departures-specific flags
	departuresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Maximum number of departures to show (0 = all)")

	// Traffic-specific flags
	trafficCmd.Flags().StringVar(&flagCategory, "category", "", "Traffic info category (stoerungkurz, stoerunglang, aufzugsinfo)")
}

// loadConfig loads the configuration file and applies flag overrides
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("stops") {
		cfg.StopIDs = flagStops
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if cmd.Flags().Changed("interval") {
		cfg.RefreshInterval = flagInterval
	}
	if cmd.Flags().Changed("subframes") {
		cfg.Subframes = flagSubframes
	}
	if cmd.Flags().Changed("category") {
		cfg.TrafficInfo = flagCategory
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// createClient creates an API client from the configuration
func createClient(cfg config.Config) (*api.Client, error) {
	opts := []api.ClientOption{
		api.WithTimeout(cfg.HTTPTimeout()),
	}
	if cfg.APIURL != "" {
		opts = append(opts, api.WithBaseURL(cfg.APIURL))
	}

	return api.NewClient(opts...)
}

// getColorMode returns the color mode based on flag
func getColorMode() output.ColorMode {
	return output.ParseColorMode(flagColor)
}

// newLogger builds the stderr logger for board diagnostics
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Render the live departure board",
	Long: `Render a live full-screen departure board for the configured stops.

The board redraws every second and refetches the feed once per run of
sub-frames (default: every 10 seconds). Between redraws only the cells
that changed are written, so the display never flickers. Traffic
disruptions rotate through the footer, advancing one note per second.

A failed fetch keeps the previous departures on screen and is retried
on the next cycle; run with --verbose to see the errors.

Examples:
  oeffimonitor board                       # Built-in Vienna stops
  oeffimonitor board --stops 252,269       # Rathaus only
  oeffimonitor board -i 2 --subframes 15   # Refetch every 30 seconds
  oeffimonitor board -c monitor.toml       # Stops from a config file

Press Ctrl+C to quit.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

var departuresCmd = &cobra.Command{
	Use:   "departures",
	Short: "List upcoming departures once",
	Long: `List the upcoming departures for the configured stops, soonest
first, and exit.

Examples:
  oeffimonitor departures                  # All configured stops
  oeffimonitor departures --stops 1212     # Schottentor only
  oeffimonitor departures -n 10            # First ten departures
  oeffimonitor departures --json           # Machine-readable output`,
	Args: cobra.NoArgs,
	RunE: runDepartures,
}

var trafficCmd = &cobra.Command{
	Use:   "traffic",
	Short: "List current traffic disruptions",
	Long: `List the traffic disruptions the feed reports for the configured
stops and exit.

Examples:
  oeffimonitor traffic
  oeffimonitor traffic --category stoerungkurz
  oeffimonitor traffic --json`,
	Args: cobra.NoArgs,
	RunE: runTraffic,
}

var stopsCmd = &cobra.Command{
	Use:   "stops",
	Short: "List the monitored stations and their lines",
	Long: `List the stations behind the configured stop ids together with
the lines currently departing there.

Examples:
  oeffimonitor stops
  oeffimonitor stops --stops 1212,1303,3701,5568`,
	Args: cobra.NoArgs,
	RunE: runStops,
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("the board needs an interactive terminal; use 'oeffimonitor departures' instead")
	}

	client, err := createClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := output.SetupSignalHandler()
	go func() {
		<-sigChan
		cancel()
	}()

	req := api.MonitorRequest{
		StopIDs:     cfg.StopIDs,
		TrafficInfo: cfg.TrafficInfo,
	}

	log := newLogger()
	log.Debug().Ints("stops", cfg.StopIDs).Int("subframes", cfg.Subframes).
		Dur("interval", cfg.Interval()).Msg("starting board")

	loop := &board.Loop{
		Fetch: func(ctx context.Context) ([]models.Departure, []models.TrafficNote, error) {
			return client.GetMonitors(ctx, req)
		},
		Size: func() (int, int, error) {
			return output.TerminalSize(os.Stdout)
		},
		Out:       os.Stdout,
		Interval:  cfg.Interval(),
		Subframes: cfg.Subframes,
		Log:       log,
	}

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Debug().Msg("board stopped")

	output.ClearScreen(os.Stdout)
	fmt.Println("Board ended.")
	return nil
}

func runDepartures(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client, err := createClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	req := api.MonitorRequest{
		StopIDs:     cfg.StopIDs,
		TrafficInfo: cfg.TrafficInfo,
	}

	// Raw JSON output
	if flagRawJSON {
		raw, err := client.GetMonitorsRaw(ctx, req)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	departures, _, err := client.GetMonitors(ctx, req)
	if err != nil {
		return err
	}

	// JSON output
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(departures)
	}

	// Text output with colors
	colors := output.NewColors(getColorMode())
	output.RenderDepartures(os.Stdout, departures, output.TableOptions{
		Colors: colors,
		Limit:  flagLimit,
	})

	return nil
}

func runTraffic(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client, err := createClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	req := api.MonitorRequest{
		StopIDs:     cfg.StopIDs,
		TrafficInfo: cfg.TrafficInfo,
	}

	// Raw JSON output
	if flagRawJSON {
		raw, err := client.GetMonitorsRaw(ctx, req)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	_, notes, err := client.GetMonitors(ctx, req)
	if err != nil {
		return err
	}

	// JSON output
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	}

	// Text output with colors
	colors := output.NewColors(getColorMode())
	output.RenderTrafficNotes(os.Stdout, notes, output.TableOptions{
		Colors: colors,
	})

	return nil
}

func runStops(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client, err := createClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	req := api.MonitorRequest{
		StopIDs:     cfg.StopIDs,
		TrafficInfo: cfg.TrafficInfo,
	}

	// Raw JSON output
	if flagRawJSON {
		raw, err := client.GetMonitorsRaw(ctx, req)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	departures, _, err := client.GetMonitors(ctx, req)
	if err != nil {
		return err
	}

	// JSON output
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(departures)
	}

	// Text output with colors
	colors := output.NewColors(getColorMode())
	output.RenderStations(os.Stdout, departures, output.TableOptions{
		Colors: colors,
	})

	return nil
}

func printPrettyJSON(data []byte) error {
	var prettyJSON interface{}
	if err := json.Unmarshal(data, &prettyJSON); err != nil {
		// If we can't parse it, just print raw
		fmt.Println(string(data))
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(prettyJSON)
}
