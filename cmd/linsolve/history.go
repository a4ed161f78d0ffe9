// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/internal/history"
	"github.com/katalvlaran/linsolve/internal/i18n"
	"github.com/katalvlaran/linsolve/internal/session"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the solution history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded solutions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withHistory(cmd, func(store *history.Store, sess *session.Session) error {
			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return stdout(cmd, sess).History(entries)
		})
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded solution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(cmd, func(store *history.Store, sess *session.Session) error {
			if _, err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			return stdout(cmd, sess).Notice(i18n.KeyHistoryCleared)
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyClearCmd)

	historyListCmd.Flags().IntP("limit", "n", 20, "Maximum entries to show (0 = all)")
}

// withHistory opens the configured store for fn.
func withHistory(cmd *cobra.Command, fn func(*history.Store, *session.Session) error) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if !settings.History.Enabled {
		return fmt.Errorf("history is disabled (history.enabled=false)")
	}
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	sess, err := session.New(settings, session.WithLogger(log))
	if err != nil {
		return err
	}
	store, closeStore, err := openHistory(cmd.Context(), settings, log)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(store, sess)
}
