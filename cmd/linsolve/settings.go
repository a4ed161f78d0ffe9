// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/internal/i18n"
	"github.com/katalvlaran/linsolve/internal/session"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change persistent settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		sess, err := session.New(settings)
		if err != nil {
			return err
		}

		return stdout(cmd, sess).Settings(settings)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting and save it",
	Long:  "Change one setting and save it. Keys: " + joinKeys(),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(configPath(cmd))
		if err != nil {
			return err
		}
		if err = settings.Set(args[0], args[1]); err != nil {
			return err
		}
		if err = config.Save(configPath(cmd), settings); err != nil {
			return err
		}
		sess, err := session.New(settings)
		if err != nil {
			return err
		}

		return stdout(cmd, sess).Notice(i18n.KeySettingsSaved)
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
}

func joinKeys() string { return strings.Join(config.Keys(), ", ") }
