package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/speclog/packages/core/config"
	"github.com/abdul-hamid-achik/speclog/packages/render"
	"github.com/abdul-hamid-achik/speclog/packages/session"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var replayCmd = &cobra.Command{
	Use:   "replay <events-file>...",
	Short: "Run recorded ingestion events through the log pipeline",
	Long: `Replay reads one or more recorded event files (JSON or YAML), feeds
every event through a fresh session exactly as the host runner would,
and flushes the configured sinks at the end.

An event file holds a list of ingestion events:

  [{"spec": "a.spec", "test": "t1", "state": "failed",
    "messages": [{"category": "cy:command", "message": "get .sel",
                  "severity": "error"}]}]

Examples:
  speclog replay run.json
  speclog replay run.yaml --config speclog.config.json
  speclog replay run.json --always --stats`,
	Args: cobra.MinimumNArgs(1),
	RunE: replayCommand,
}

var (
	configFlag     string
	noColorFlag    bool
	asciiFlag      bool
	alwaysFlag     bool
	outputRootFlag string
	statsFlag      bool
)

func init() {
	replayCmd.Flags().StringVar(&configFlag, "config", getEnvString("SPECLOG_CONFIG", ""), "Path to options file (env: SPECLOG_CONFIG)")
	replayCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("SPECLOG_NO_COLOR", false), "Disable colored output (env: SPECLOG_NO_COLOR)")
	replayCmd.Flags().BoolVar(&asciiFlag, "ascii", false, "Force the ASCII glyph set")
	replayCmd.Flags().BoolVar(&alwaysFlag, "always", false, "Render and write regardless of test outcomes")
	replayCmd.Flags().StringVar(&outputRootFlag, "output-root", "", "Override the configured output root directory")
	replayCmd.Flags().BoolVar(&statsFlag, "stats", false, "Print sink write statistics after the flush")
}

func replayCommand(cmd *cobra.Command, args []string) error {
	if noColorFlag {
		color.NoColor = true
	}

	opts := config.DefaultOptions()
	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(ExitConfigError)
		}
		opts = loaded
	}
	if outputRootFlag != "" {
		opts.OutputRoot = outputRootFlag
	}
	if alwaysFlag {
		opts.PrintLogsToConsole = "always"
		opts.PrintLogsToFile = "always"
	}

	glyphs := render.GlyphsFor(render.DetectEnvironment())
	if asciiFlag {
		glyphs = render.ASCII
	}
	renderer := render.NewRenderer(
		render.WithGlyphs(glyphs),
		render.WithTrimLengths(render.TrimLengths{
			Default: opts.DefaultTrimLength,
			Command: opts.CommandTrimLength,
			Route:   opts.RouteTrimLength,
		}),
	)

	sess, err := session.New(opts, session.WithRenderer(renderer))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	total := 0
	for _, path := range args {
		events, err := loadEvents(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(ExitEventError)
		}
		for _, ev := range events {
			sess.Ingest(ev)
			total++
		}
	}

	if err := sess.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitWriteError)
	}

	fmt.Printf("Replayed %d events (run %s)\n", total, sess.ID())

	if statsFlag {
		summary := sess.Stats().Summary()
		fmt.Printf("Writes: %d  p50: %dms  p95: %dms  max: %dms\n",
			summary.Count,
			summary.P50.Milliseconds(),
			summary.P95.Milliseconds(),
			summary.Max.Milliseconds())
	}

	return nil
}

func loadEvents(path string) ([]session.IngestEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var events []session.IngestEvent
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &events); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &events); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return events, nil
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return defaultVal
}
