// Package cli defines Cobra command definitions for the votecaster CLI.
// This file contains the root command, version flag, and shared wiring.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/auth"
	"github.com/vocdoni/votecaster-tui/internal/config"
	"github.com/vocdoni/votecaster-tui/internal/log"
	"github.com/vocdoni/votecaster-tui/internal/tui"
	"github.com/vocdoni/votecaster-tui/internal/tui/app"
)

var (
	verbose bool
	version = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "votecaster",
	Short: "Create and browse Farcaster polls and communities",
	Long: `Votecaster is a terminal client for farcaster.vote. Without a
subcommand it opens an interactive interface for creating polls and
communities; the subcommands cover the same operations for scripts
and non-interactive use.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch the TUI if TTY.
		if !tui.IsTTY() {
			return cmd.Help()
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.Close()

		return tui.Run(app.New(rt.Cfg, rt.Session, rt.Client, rt.Logger))
	},
}

// runtime bundles the collaborators every command needs.
type runtime struct {
	Cfg     *config.Config
	Store   *auth.Store
	Session *auth.Session
	Client  *api.Client
	Logger  *log.Logger
}

// bootstrap loads the config, opens the credential store and builds the
// API client. A missing config file falls back to defaults; a broken store
// does not.
func bootstrap() (*runtime, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.ReadConfig(dir)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	store, err := auth.OpenStore(filepath.Join(dir, "session.db"))
	if err != nil {
		return nil, fmt.Errorf("opening credential store: %w", err)
	}

	session, err := auth.NewSession(store)
	if err != nil {
		store.Close()
		return nil, err
	}

	logger, err := log.NewLogger(dir)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &runtime{
		Cfg:     cfg,
		Store:   store,
		Session: session,
		Client:  api.New(cfg.API.BaseURL, cfg.API.AuthToken),
		Logger:  logger,
	}, nil
}

// Close releases the runtime's resources.
func (rt *runtime) Close() {
	rt.Store.Close()
}

// authedClient returns the API client carrying the session's token. It
// fails when no one is signed in.
func (rt *runtime) authedClient() (*api.Client, error) {
	if !rt.Session.IsAuthenticated() {
		return nil, fmt.Errorf("not signed in; run: votecaster login")
	}
	return rt.Client.WithToken(rt.Session.Token()), nil
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print request details")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(pollCmd)
	rootCmd.AddCommand(communityCmd)
	rootCmd.AddCommand(versionCmd)
}
