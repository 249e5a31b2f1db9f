package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/sadopc/moodwheel/internal/cli"
	"github.com/sadopc/moodwheel/internal/config"
	"github.com/sadopc/moodwheel/internal/logger"
	"github.com/sadopc/moodwheel/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	DB      string `name:"db" help:"Database path. Overrides the config file." type:"path"`
	Debug   bool   `help:"Enable debug logging."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive wheel." default:"1"`
	Log      cli.LogCmd      `cmd:"" help:"Log a mood by name."`
	Spin     cli.SpinCmd     `cmd:"" help:"Spin the wheel once."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show streaks, badges and challenges."`
	Forecast cli.ForecastCmd `cmd:"" help:"Forecast tomorrow's mood."`
	Report   cli.ReportCmd   `cmd:"" help:"Weekly or monthly mood report."`
	History  cli.HistoryCmd  `cmd:"" help:"List logged moods, newest first."`
	Export   cli.ExportCmd   `cmd:"" help:"Export history as CSV or JSON."`
	Remind   cli.RemindCmd   `cmd:"" help:"Run the daily reminder until interrupted."`
	Moods    struct {
		List   cli.MoodListCmd   `cmd:"" help:"List catalog moods." default:"1"`
		Add    cli.MoodAddCmd    `cmd:"" help:"Add a custom mood."`
		Delete cli.MoodDeleteCmd `cmd:"" help:"Delete a catalog mood."`
	} `cmd:"" help:"Manage the mood catalog."`
	Telegram struct {
		Set   cli.TokenSetCmd   `cmd:"" help:"Store the bot token in the OS keyring."`
		Check cli.TokenCheckCmd `cmd:"" help:"Check that a bot token is available."`
	} `cmd:"" help:"Manage the Telegram reminder sender."`
}

func main() {
	defaultConfig, err := config.DefaultPath()
	if err != nil {
		defaultConfig = "config.yaml"
	}

	ctx := kong.Parse(&CLI,
		kong.Name("moodwheel"),
		kong.Description("Spin the wheel, track your mood."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     "v0.1.0",
			"config_path": defaultConfig,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fatal(err)
	}
	if CLI.DB != "" {
		cfg.DatabasePath = CLI.DB
	}
	if CLI.Debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	interactive := ctx.Command() == "tui"
	if err := logger.Init(logger.Config{
		Debug:       cfg.Debug,
		ConfigDir:   filepath.Dir(CLI.Config),
		Interactive: interactive,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	s, err := store.New(cfg.DatabasePath)
	if err != nil {
		fatal(fmt.Errorf("open database: %w", err))
	}
	defer s.Close()

	logger.Debug("Starting", "command", ctx.Command(), "db", cfg.DatabasePath)
	if err := ctx.Run(cli.NewContext(cfg, s)); err != nil {
		logger.Error("Command failed", "command", ctx.Command(), "error", err)
		s.Close()
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
