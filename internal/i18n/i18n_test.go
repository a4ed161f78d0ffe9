// SPDX-License-Identifier: MIT
package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/solver"
)

func TestLanguages(t *testing.T) {
	require.Equal(t, []string{"en", "ru"}, Languages())
	require.True(t, Supported(" RU "))
	require.False(t, Supported("de"))
}

func TestCatalog_EveryKeyTranslated(t *testing.T) {
	p, err := loadCatalog()
	require.NoError(t, err)

	for _, tbl := range []table{p.doc.Messages, p.doc.Labels} {
		for key, byLang := range tbl {
			for _, lang := range Languages() {
				require.NotEmptyf(t, byLang[lang], "%s missing %s", key, lang)
			}
		}
	}
	for _, key := range []string{KeyError, KeyInvalidInput, KeyMatrixSize, KeyNonSquareGauss, KeyNumericDegeneracy} {
		require.Contains(t, p.doc.Messages, key)
	}
}

func TestNew(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	require.Equal(t, DefaultLanguage, c.Language())

	_, err = New("klingon")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestCatalog_Failure(t *testing.T) {
	en, err := New("en")
	require.NoError(t, err)
	ru, err := New("ru")
	require.NoError(t, err)

	require.Empty(t, en.Failure(solver.FailureNone))
	require.Empty(t, FailureKey(solver.FailureNone))
	require.Equal(t, KeyNonSquareGauss, FailureKey(solver.FailureNonSquare))
	require.Equal(t, KeyInvalidInput, FailureKey(solver.FailureInvalidInput))
	require.Equal(t, en.Message(KeyNonSquareGauss), en.Failure(solver.FailureNonSquare))
	require.Equal(t, en.Message(KeyInvalidInput), en.Failure(solver.FailureInvalidInput))
	require.NotEqual(t, en.Failure(solver.FailureNonSquare), ru.Failure(solver.FailureNonSquare))
}

func TestCatalog_Fallbacks(t *testing.T) {
	c, err := New("ru")
	require.NoError(t, err)

	require.Equal(t, "no_such_key", c.Message("no_such_key"))
	require.Equal(t, "Гаусс", c.MethodName(solver.MethodGauss))
	require.Equal(t, "Решение", c.Label(LabelSolution))
}
