// Package cli implements the cheatnote CLI commands.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cheatnote/cheatnote/internal/config"
	"github.com/cheatnote/cheatnote/internal/display"
	"github.com/cheatnote/cheatnote/internal/store"
)

var (
	dbPath  string
	noColor bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:           "cheatnote",
	Short:         "Blazing fast snippet and note manager",
	Long:          "A fast local manager for short notes and snippets. Binary snapshot storage, regex search, CSV import/export.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Snapshot path (default: $CHEATNOTE_DB or ~/.local/share/cheatnote/cheatnote.db)")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func logger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}).
		With().Timestamp().Logger()
}

func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log := logger()
		log.Warn().Err(err).Msg("ignoring unreadable config")
	}
	return cfg
}

// openStore resolves the snapshot path and loads the store. Corruption is
// recovered inside Load with a warning; only write failures are fatal later.
func openStore() (*store.Store, string) {
	path := config.DBPath(dbPath, loadConfig())
	return store.Load(path, logger()), path
}

func renderer() *display.Renderer {
	mode := loadConfig().Color
	if noColor {
		mode = "never"
	}
	return display.New(os.Stdout, mode)
}

func parseID(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid note id %q", s)
	}
	return uint32(v), nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
