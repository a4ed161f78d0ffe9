// SPDX-License-Identifier: MIT
package session

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/internal/history"
	"github.com/katalvlaran/linsolve/internal/i18n"
	"github.com/katalvlaran/linsolve/internal/input"
	"github.com/katalvlaran/linsolve/internal/logging"
	"github.com/katalvlaran/linsolve/solver"
)

type fakeRecorder struct {
	entries []history.Entry
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, e history.Entry) (history.Entry, error) {
	if f.err != nil {
		return history.Entry{}, f.err
	}
	e.ID = uuid.New()
	f.entries = append(f.entries, e)

	return e, nil
}

func settingsWith(t *testing.T, kv ...string) config.Settings {
	t.Helper()
	s := config.Defaults()
	for i := 0; i+1 < len(kv); i += 2 {
		require.NoError(t, s.Set(kv[i], kv[i+1]))
	}

	return s
}

var scenario = input.System{
	A: [][]float64{{2, 3, 1}, {4, 1, -3}, {3, -1, 2}},
	B: []float64{1, 2, 3},
}

func TestNew_RejectsInvalidSettings(t *testing.T) {
	s := config.Defaults()
	s.Display.Language = "xx"
	_, err := New(s)
	require.ErrorIs(t, err, config.ErrInvalidSetting)
}

func TestSolve_BothMethods(t *testing.T) {
	for _, m := range []string{"gauss", "lu"} {
		rec := &fakeRecorder{}
		sess, err := New(settingsWith(t, config.KeyMethod, m, config.KeyRounding, "2"), WithHistory(rec))
		require.NoError(t, err)

		out, err := sess.Solve(context.Background(), scenario)
		require.NoError(t, err, m)
		require.Equal(t, []float64{0.75, -0.25, 0.25}, out.Solution, m)
		require.Equal(t, 2, out.Rounding)
		require.True(t, out.Finite())
		require.Empty(t, out.Warning)
		require.Less(t, out.Residual, 1e-9)

		require.Len(t, rec.entries, 1)
		require.NotNil(t, out.Entry)
		require.Equal(t, out.Solution, rec.entries[0].Solution)
		require.Equal(t, 3, rec.entries[0].Size)
		require.Equal(t, out.Method, rec.entries[0].Method)
	}
}

func TestSolve_DegenerateGauss(t *testing.T) {
	rec := &fakeRecorder{}
	sess, err := New(settingsWith(t, config.KeyLanguage, "ru"), WithHistory(rec))
	require.NoError(t, err)

	_, err = sess.Solve(context.Background(), input.System{A: [][]float64{{1, 2}, {2, 4}}, B: []float64{1, 2}})
	var ue *UserError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, solver.FailureNonSquare, ue.Kind)
	require.Equal(t, i18n.KeyNonSquareGauss, ue.Key)
	require.Equal(t, sess.Catalog().Message(i18n.KeyNonSquareGauss), ue.Error())
	require.NotEmpty(t, ue.Hint)
	require.ErrorIs(t, err, solver.ErrNonSquareMatrix)
	require.Empty(t, rec.entries, "failures are not recorded")
}

func TestSolve_NonSquareFromFile(t *testing.T) {
	sess, err := New(config.Defaults())
	require.NoError(t, err)

	_, err = sess.Solve(context.Background(), input.System{A: [][]float64{{1, 2, 3}, {4, 5, 6}}, B: []float64{1, 2}})
	var ue *UserError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, i18n.KeyNonSquareGauss, ue.Key)
}

func TestSolve_LUZeroPivotWarns(t *testing.T) {
	var buf bytes.Buffer
	rec := &fakeRecorder{}
	sess, err := New(settingsWith(t, config.KeyMethod, "lu"),
		WithHistory(rec), WithLogger(logging.NewWithWriter(&buf, slog.LevelDebug)))
	require.NoError(t, err)

	out, err := sess.Solve(context.Background(), input.System{A: [][]float64{{0, 1}, {1, 0}}, B: []float64{1, 1}})
	require.NoError(t, err)
	require.False(t, out.Finite())
	require.Equal(t, sess.Catalog().Message(i18n.KeyNumericDegeneracy), out.Warning)
	require.True(t, math.IsNaN(out.Residual))
	require.Contains(t, buf.String(), "solution is not finite")
	require.Len(t, rec.entries, 1)
}

func TestSolve_HistoryFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	sess, err := New(config.Defaults(),
		WithHistory(&fakeRecorder{err: errors.New("disk full")}),
		WithLogger(logging.NewWithWriter(&buf, slog.LevelInfo)))
	require.NoError(t, err)

	out, err := sess.Solve(context.Background(), scenario)
	require.NoError(t, err)
	require.Nil(t, out.Entry)
	require.Contains(t, buf.String(), "err=\"disk full\"")
}

func TestSolve_CanceledContext(t *testing.T) {
	sess, err := New(config.Defaults())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sess.Solve(ctx, scenario)
	require.ErrorIs(t, err, context.Canceled)
}

func TestExplain(t *testing.T) {
	sess, err := New(config.Defaults())
	require.NoError(t, err)

	require.NoError(t, sess.Explain(nil))

	cases := []struct {
		err  error
		key  string
		kind solver.FailureKind
	}{
		{input.ErrMatrixSize, i18n.KeyMatrixSize, solver.FailureInvalidInput},
		{input.ErrInvalidInput, i18n.KeyInvalidInput, solver.FailureInvalidInput},
		{solver.ErrNonSquareMatrix, i18n.KeyNonSquareGauss, solver.FailureNonSquare},
		{solver.ErrUnknownMethod, i18n.KeyInvalidInput, solver.FailureInvalidInput},
		{errors.New("boom"), i18n.KeyInvalidInput, solver.FailureInvalidInput},
	}
	for _, tc := range cases {
		var ue *UserError
		require.ErrorAs(t, sess.Explain(tc.err), &ue)
		require.Equal(t, tc.key, ue.Key, tc.err.Error())
		require.Equal(t, tc.kind, ue.Kind, tc.err.Error())
		require.Equal(t, sess.Catalog().Message(tc.key), ue.Message, tc.err.Error())
		require.Same(t, ue, sess.Explain(ue))
	}
}

func TestRound(t *testing.T) {
	got := Round([]float64{0.12345, -0.0004, 2.5, math.NaN(), math.Inf(-1)}, 3)
	require.Equal(t, 0.123, got[0])
	require.Equal(t, 0.0, got[1])
	require.False(t, math.Signbit(got[1]))
	require.Equal(t, 2.5, got[2])
	require.True(t, math.IsNaN(got[3]))
	require.True(t, math.IsInf(got[4], -1))

	require.Equal(t, []float64{3}, Round([]float64{2.5}, 0))

	// Large finite values must stay finite and unchanged.
	big := []float64{1e300, -1.5e306, 1e16, math.MaxFloat64}
	require.Equal(t, big, Round(big, 10))
	require.Equal(t, []float64{1.5e306}, Round([]float64{1.5e306}, 3))
}

func TestSolve_LargeSolutionStaysFinite(t *testing.T) {
	sess, err := New(settingsWith(t, config.KeyRounding, "10"))
	require.NoError(t, err)

	out, err := sess.Solve(context.Background(), input.System{
		A: [][]float64{{1, 0}, {0, 1}},
		B: []float64{1e300, 1},
	})
	require.NoError(t, err)
	require.Equal(t, []float64{1e300, 1}, out.Solution)
	require.True(t, solver.IsFinite(out.Solution))
	require.Empty(t, out.Warning)
}
