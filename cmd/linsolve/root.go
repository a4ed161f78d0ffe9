// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/internal/history"
	"github.com/katalvlaran/linsolve/internal/i18n"
	"github.com/katalvlaran/linsolve/internal/logging"
	"github.com/katalvlaran/linsolve/internal/presentation"
	"github.com/katalvlaran/linsolve/internal/session"
)

// errReported marks a failure already printed for the user.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "linsolve",
	Short: "linsolve solves small linear systems",
	Long: `linsolve solves square linear systems of 2 to 5 equations by Gaussian
elimination with partial pivoting or by LU decomposition, and keeps a history
of the solutions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default $"+config.EnvConfigPath+" or the user config dir)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("lang", "", "Message language: "+fmt.Sprint(i18n.Languages()))
}

// configPath returns the --config flag value ("" means the default location).
func configPath(cmd *cobra.Command) string {
	p, _ := cmd.Flags().GetString("config")
	return p
}

// loadSettings reads the config and applies persistent flag overrides.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.Load(configPath(cmd))
	if err != nil {
		return config.Settings{}, err
	}
	if cmd.Flags().Changed("lang") {
		lang, _ := cmd.Flags().GetString("lang")
		if err = s.Set(config.KeyLanguage, lang); err != nil {
			return config.Settings{}, err
		}
	}

	return s, nil
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}

	return logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}

// openHistory opens the store when history is enabled; the closer is never nil.
func openHistory(ctx context.Context, s config.Settings, log *slog.Logger) (*history.Store, func(), error) {
	if !s.History.Enabled {
		return nil, func() {}, nil
	}
	store, err := history.Open(ctx, s.History.Path)
	if err != nil {
		return nil, func() {}, err
	}
	log.Debug("history opened", "path", s.History.Path)

	return store, func() {
		if cerr := store.Close(); cerr != nil {
			log.Warn("closing history", "error", cerr)
		}
	}, nil
}

// stdout returns a Printer for the command's output stream.
func stdout(cmd *cobra.Command, sess *session.Session) *presentation.Printer {
	return presentation.New(cmd.OutOrStdout(), sess.Catalog())
}

// stderr returns a Printer for the command's error stream.
func stderr(cmd *cobra.Command, sess *session.Session) *presentation.Printer {
	return presentation.New(cmd.ErrOrStderr(), sess.Catalog())
}
