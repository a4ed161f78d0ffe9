// SPDX-License-Identifier: MIT

// Package i18n serves the localized user-facing strings of the CLI from an
// embedded YAML catalog. Unknown keys fall back to English, then to the key.
package i18n

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsolve/solver"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// Message keys.
const (
	KeyError             = "error"
	KeyInvalidInput      = "invalid_input"
	KeyMatrixSize        = "matrix_size"
	KeyNonSquareGauss    = "non_square_matrix_gauss"
	KeyNumericDegeneracy = "numeric_degeneracy"
	KeyRetryHint         = "retry_hint"
	KeyHistoryCleared    = "history_cleared"
	KeySettingsSaved     = "settings_saved"
)

// Label keys.
const (
	LabelSolution     = "final_solve"
	LabelCoefficients = "coefficients_matrix"
	LabelConstants    = "constants_vector"
	LabelMethod       = "method"
	LabelRounding     = "rounding"
	LabelLanguage     = "language"
	LabelHistory      = "history"
	LabelHistoryEmpty = "history_empty"
	LabelCreatedAt    = "created_at"
)

// ErrUnsupportedLanguage reports a language missing from the catalog.
var ErrUnsupportedLanguage = errors.New("i18n: unsupported language")

//go:embed messages.yaml
var rawCatalog []byte

// table maps key -> language -> text.
type table map[string]map[string]string

type document struct {
	Messages table `yaml:"messages"`
	Labels   table `yaml:"labels"`
}

type parsed struct {
	doc   document
	langs []string
}

var loadCatalog = sync.OnceValues(func() (parsed, error) {
	var p parsed
	if err := yaml.Unmarshal(rawCatalog, &p.doc); err != nil {
		return parsed{}, fmt.Errorf("i18n: decode catalog: %w", err)
	}
	seen := make(map[string]bool)
	for _, t := range []table{p.doc.Messages, p.doc.Labels} {
		for _, byLang := range t {
			for lang := range byLang {
				seen[lang] = true
			}
		}
	}
	for lang := range seen {
		p.langs = append(p.langs, lang)
	}
	sort.Strings(p.langs)

	return p, nil
})

// Languages lists the catalog's languages, sorted.
func Languages() []string {
	p, err := loadCatalog()
	if err != nil {
		return []string{DefaultLanguage}
	}

	return append([]string(nil), p.langs...)
}

// Supported reports whether lang has translations.
func Supported(lang string) bool {
	lang = strings.ToLower(strings.TrimSpace(lang))
	for _, l := range Languages() {
		if l == lang {
			return true
		}
	}

	return false
}

// Catalog resolves keys for one language.
type Catalog struct {
	lang string
	doc  document
}

// New returns the catalog for lang.
func New(lang string) (*Catalog, error) {
	p, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = DefaultLanguage
	}
	if !Supported(lang) {
		return nil, fmt.Errorf("%q: %w", lang, ErrUnsupportedLanguage)
	}

	return &Catalog{lang: lang, doc: p.doc}, nil
}

// Language returns the catalog's language code.
func (c *Catalog) Language() string { return c.lang }

// Message returns the text of a message key.
func (c *Catalog) Message(key string) string { return c.lookup(c.doc.Messages, key) }

// Label returns the text of a label key.
func (c *Catalog) Label(key string) string { return c.lookup(c.doc.Labels, key) }

// FailureKey returns the message key for a solver failure kind, "" for
// FailureNone.
func FailureKey(kind solver.FailureKind) string {
	switch kind {
	case solver.FailureNone:
		return ""
	case solver.FailureNonSquare:
		return KeyNonSquareGauss
	default:
		return KeyInvalidInput
	}
}

// Failure returns the message for a solver failure kind, "" for FailureNone.
func (c *Catalog) Failure(kind solver.FailureKind) string {
	key := FailureKey(kind)
	if key == "" {
		return ""
	}

	return c.Message(key)
}

// MethodName returns the localized name of m.
func (c *Catalog) MethodName(m solver.Method) string { return c.Label(m.String()) }

func (c *Catalog) lookup(t table, key string) string {
	byLang, ok := t[key]
	if !ok {
		return key
	}
	if s, ok := byLang[c.lang]; ok && s != "" {
		return s
	}
	if s, ok := byLang[DefaultLanguage]; ok && s != "" {
		return s
	}

	return key
}
