package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/leafyapp/leafy/internal/cli"
	"github.com/leafyapp/leafy/internal/cli/care"
	"github.com/leafyapp/leafy/internal/cli/journals"
	"github.com/leafyapp/leafy/internal/cli/system"
	"github.com/leafyapp/leafy/internal/config"
	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/errors"
	"github.com/leafyapp/leafy/internal/journal"
	"github.com/leafyapp/leafy/internal/logger"
	"github.com/leafyapp/leafy/internal/reminders"
	"github.com/leafyapp/leafy/internal/storage"
	"github.com/leafyapp/leafy/internal/storage/sqlite"
)

var CLI struct {
	Version    kong.VersionFlag
	Config     string `help:"Storage path. A .json suffix selects the JSON backend, anything else SQLite." type:"string" default:"${config_path}"`
	ConfigFile string `help:"Config file path (YAML)." type:"string" default:"~/.config/leafy/leafy.yaml"`
	Debug      bool   `help:"Enable debug logging."`

	Init     system.InitCmd  `cmd:"" help:"Initialize leafy storage."`
	Tui      system.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Identify cli.IdentifyCmd `cmd:"" help:"Identify a plant from a photo and save it to the journal."`
	Chat     cli.ChatCmd     `cmd:"" help:"Ask the botanist assistant a question."`
	Pending  cli.PendingCmd  `cmd:"" help:"Show how many reminders are overdue."`
	Care     struct {
		List     care.ListCmd     `cmd:"" help:"List care reminders." default:"1"`
		Done     care.DoneCmd     `cmd:"" help:"Mark a reminder completed."`
		Interval care.IntervalCmd `cmd:"" help:"Change a reminder's interval."`
		Remove   care.RemoveCmd   `cmd:"" help:"Delete a reminder."`
		Add      care.AddCmd      `cmd:"" help:"Add a care reminder."`
	} `cmd:"" help:"Manage care reminders."`
	Journal struct {
		List   journals.ListCmd   `cmd:"" help:"List identified plants." default:"1"`
		Remove journals.RemoveCmd `cmd:"" help:"Remove a journal entry."`
		Clear  journals.ClearCmd  `cmd:"" help:"Clear the whole journal."`
		Share  journals.ShareCmd  `cmd:"" help:"Print a shareable summary of a plant."`
	} `cmd:"" help:"Manage the plant journal."`
	Key struct {
		Set    system.KeySetCmd    `cmd:"" help:"Store the assistant API key in the OS keyring."`
		Status system.KeyStatusCmd `cmd:"" help:"Show where the API key comes from." default:"1"`
		Clear  system.KeyClearCmd  `cmd:"" help:"Remove the API key from the OS keyring."`
	} `cmd:"" help:"Manage the assistant API key."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Plant identification and care reminder companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	storagePath := expandPath(CLI.Config)
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(storagePath),
	}); err != nil {
		// The app works without file logging; the logger package no-ops
		// while uninitialized.
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}

	cfg, err := config.Load(CLI.ConfigFile)
	if err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	if strings.HasSuffix(storagePath, ".json") {
		store = storage.NewJSONStore(storagePath)
	} else {
		store = sqlite.NewStore(storagePath)
	}

	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
	}

	// Init manages its own lifecycle; everything else needs a loaded store.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
		appCtx.Repo = reminders.NewRepository(store)
		appCtx.Journal = journal.New(store)
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
