// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/internal/input"
	"github.com/katalvlaran/linsolve/internal/session"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a linear system",
	Long: `Solve a linear system given as augmented rows or as a YAML file.

Each row holds the coefficients followed by the constant:

  linsolve solve --row "2 3 1 | 1" --row "4 1 -3 | 2" --row "3 -1 2 | 3"

Without --row or --file the rows are read from standard input, one per line.
With --size the number of equations is checked before solving.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if err = applySolveFlags(cmd, &settings); err != nil {
			return err
		}
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		store, closeStore, err := openHistory(ctx, settings, log)
		if err != nil {
			log.Warn("history unavailable, solving without it", "error", err)
			store, closeStore = nil, func() {}
		}
		defer closeStore()

		opts := []session.Option{session.WithLogger(log)}
		if store != nil {
			opts = append(opts, session.WithHistory(store))
		}
		sess, err := session.New(settings, opts...)
		if err != nil {
			return err
		}

		sys, err := readSystem(cmd)
		if err != nil {
			_ = stderr(cmd, sess).Failure(sess.Explain(err))
			return errReported
		}
		if show, _ := cmd.Flags().GetBool("show-input"); show {
			if err = stdout(cmd, sess).System(sys); err != nil {
				return err
			}
		}

		out, err := sess.Solve(ctx, sys)
		if err != nil {
			_ = stderr(cmd, sess).Failure(err)
			return errReported
		}

		return stdout(cmd, sess).Solution(out)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringArrayP("row", "r", nil, `Augmented row, e.g. "2 3 1 | 1" (repeat per equation)`)
	solveCmd.Flags().StringP("file", "f", "", "YAML file with matrix and vector")
	solveCmd.Flags().StringP("method", "m", "", "Solution method: gauss or lu")
	solveCmd.Flags().StringP("size", "s", "", "Expected number of equations (2..5)")
	solveCmd.Flags().Int("round", config.DefaultRounding, "Decimal places in the answer")
	solveCmd.Flags().Bool("show-input", false, "Echo the parsed system before solving")
	solveCmd.Flags().Bool("no-history", false, "Do not record this solution")
}

// applySolveFlags layers explicit solve flags over the loaded settings.
func applySolveFlags(cmd *cobra.Command, s *config.Settings) error {
	if cmd.Flags().Changed("method") {
		m, _ := cmd.Flags().GetString("method")
		if err := s.Set(config.KeyMethod, m); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("round") {
		n, _ := cmd.Flags().GetInt("round")
		if err := s.Set(config.KeyRounding, strconv.Itoa(n)); err != nil {
			return err
		}
	}
	if off, _ := cmd.Flags().GetBool("no-history"); off {
		s.History.Enabled = false
	}

	return nil
}

// readSystem picks the input source: --file, --row, or stdin. A --size value
// is validated first and then matched against the parsed system.
func readSystem(cmd *cobra.Command) (input.System, error) {
	want := 0
	if cmd.Flags().Changed("size") {
		raw, _ := cmd.Flags().GetString("size")
		n, err := input.ParseSize(raw)
		if err != nil {
			return input.System{}, err
		}
		want = n
	}

	sys, err := parseSystem(cmd)
	if err != nil {
		return input.System{}, err
	}
	if want != 0 && sys.Size() != want {
		return input.System{}, fmt.Errorf("%d equations given, --size is %d: %w",
			sys.Size(), want, input.ErrInvalidInput)
	}

	return sys, nil
}

func parseSystem(cmd *cobra.Command) (input.System, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		return input.ReadFile(path)
	}
	rows, _ := cmd.Flags().GetStringArray("row")
	if len(rows) == 0 {
		var err error
		if rows, err = readLines(cmd.InOrStdin()); err != nil {
			return input.System{}, err
		}
	}

	return input.ParseRows(rows)
}

// readLines returns the non-blank lines of r. Lines starting with '#' are skipped.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	return lines, sc.Err()
}
