package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arunvs830/lls-app-sub000/internal/api"
	"github.com/arunvs830/lls-app-sub000/internal/config"
	"github.com/arunvs830/lls-app-sub000/internal/logging"
	"github.com/arunvs830/lls-app-sub000/internal/session"
)

var (
	flagAPI     string
	flagTheme   string
	flagVerbose bool

	cfg      config.Config
	logger   *zap.Logger
	store    *session.Store
	client   *api.Client
	stateDir string
)

var rootCmd = &cobra.Command{
	Use:   "lls",
	Short: "Terminal client for the language learning school",
	Long: `lls is the terminal client for the language learning school backend.

Run it without arguments to open the interactive interface. The login,
logout and whoami subcommands manage the session from scripts.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if flagAPI != "" {
			cfg.APIBaseURL = flagAPI
		}
		if flagTheme != "" {
			cfg.Theme = flagTheme
		}

		stateDir, err = config.StateDir()
		if err != nil {
			return fmt.Errorf("resolve state dir: %w", err)
		}

		logger, err = logging.New(stateDir, flagVerbose)
		if err != nil {
			// Diagnostics are optional; the client still works without them.
			logger = logging.Discard()
		}

		store, err = session.NewStore(stateDir)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}

		client = api.NewClient(cfg.APIBaseURL, cfg.Timeout, store.Token, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPI, "api", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "color theme: light or dark")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}
