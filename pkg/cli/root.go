package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ASTRELLECT/SynVotra/pkg/backend"
	"github.com/ASTRELLECT/SynVotra/pkg/config"
	"github.com/ASTRELLECT/SynVotra/pkg/logger"
	"github.com/ASTRELLECT/SynVotra/pkg/session"
)

// app holds the wired client. Built on first use so that flag and env
// overrides are applied before anything touches the store.
type app struct {
	cfg     *config.Config
	store   *session.Repo
	client  *backend.Client
	manager *session.Manager
}

var (
	flagAPIAddress string
	flagStateDir   string
	flagLogLevel   string

	current *app
)

var rootCmd = &cobra.Command{
	Use:   "synvotra",
	Short: "Client for the SynVotra HR portal",
	Long: `synvotra is the command-line client for the SynVotra HR portal.

It keeps a single authenticated session in a local store shared by
every synvotra process, enforces an inactivity timeout while a console
is open, and talks to the portal's REST API with the stored bearer
token.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIAddress, "api", "", "portal API address (overrides SYNVOTRA_API_ADDRESS)")
	rootCmd.PersistentFlags().StringVar(&flagStateDir, "state-dir", "", "directory for the session store")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// replaceNavigator is the CLI's stand-in for a browser redirect: it
// announces the route the user ends up on.
type replaceNavigator struct{}

func (replaceNavigator) Replace(path string) {
	fmt.Printf("→ %s\n", path)
}

func getApp() (*app, error) {
	if current != nil {
		return current, nil
	}

	cfg := config.Parse()
	if flagAPIAddress != `` {
		cfg.APIAddress = flagAPIAddress
	}
	if flagStateDir != `` {
		cfg.StateDir = flagStateDir
	}
	if flagLogLevel != `` {
		cfg.LogLevel = flagLogLevel
	}
	logger.Run(cfg.LogLevel)

	db, err := session.OpenStore(cfg.StorePath())
	if err != nil {
		return nil, err
	}
	store, err := session.NewSessionRepo(db)
	if err != nil {
		return nil, err
	}

	client, err := backend.NewClient(cfg.APIAddress, store)
	if err != nil {
		return nil, err
	}

	manager := session.NewManager(store, client, replaceNavigator{}, cfg.EntryPath, cfg.TokenTTL)
	client.SetOnUnauthorized(manager.HandleUnauthorized)

	// Re-mirror the cookie for a session persisted by an earlier run.
	if token := store.Token(); token != `` {
		client.SyncCookie(token)
	}

	current = &app{
		cfg:     cfg,
		store:   store,
		client:  client,
		manager: manager,
	}
	return current, nil
}

func formatExpiry(t time.Time) string {
	if t.IsZero() {
		return "none"
	}
	return t.Format(time.RFC3339)
}
