// Package i18n holds the fixed uk/ru string tables and the process-wide
// selected language.
package i18n

import (
	"fmt"
	"sync"
)

type Language string

const (
	LanguageUK Language = "uk"
	LanguageRU Language = "ru"
)

func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageUK, LanguageRU:
		return Language(s), nil
	}
	return "", fmt.Errorf("unsupported language: %q", s)
}

type Translator struct {
	mu   sync.RWMutex
	lang Language
}

func New(defaultLang string) (*Translator, error) {
	lang, err := ParseLanguage(defaultLang)
	if err != nil {
		return nil, err
	}
	return &Translator{lang: lang}, nil
}

func (t *Translator) Language() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

func (t *Translator) SetLanguage(s string) error {
	lang, err := ParseLanguage(s)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.lang = lang
	t.mu.Unlock()
	return nil
}

// T looks up key in the current language's table. A key absent from the
// table comes back unchanged; missing translations degrade to the key, not
// to an error.
func (t *Translator) T(key string) string {
	if s, ok := translations[t.Language()][key]; ok {
		return s
	}
	return key
}

// Table returns a copy of the current language's full string table.
func (t *Translator) Table() map[string]string {
	table := translations[t.Language()]
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
