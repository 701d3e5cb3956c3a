package i18n

import (
	"fmt"
	"sync"
)

// Language represents supported languages
type Language string

const (
	Korean  Language = "한국어"
	English Language = "English"
)

// Translator provides translation functionality
type Translator struct {
	language     Language
	translations map[Language]map[string]string
	mu           sync.RWMutex
}

var (
	defaultTranslator *Translator
	once              sync.Once
)

// GetTranslator returns the singleton translator instance
func GetTranslator() *Translator {
	once.Do(func() {
		defaultTranslator = &Translator{
			language:     Korean,
			translations: make(map[Language]map[string]string),
		}
		defaultTranslator.loadTranslations()
	})
	return defaultTranslator
}

// SetLanguage sets the current language
func (t *Translator) SetLanguage(lang Language) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.language = lang
}

// GetLanguage returns the current language
func (t *Translator) GetLanguage() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.language
}

// T translates a key with optional parameters
func (t *Translator) T(key string, params ...interface{}) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[t.language]
	if !ok {
		return key
	}
	text, ok := langMap[key]
	if !ok {
		return key
	}
	if len(params) > 0 {
		return fmt.Sprintf(text, params...)
	}
	return text
}

// T is a convenience function for translation
func T(key string, params ...interface{}) string {
	return GetTranslator().T(key, params...)
}

// SetLanguage is a convenience function to set language
func SetLanguage(lang Language) {
	GetTranslator().SetLanguage(lang)
}

// GetLanguage is a convenience function to get current language
func GetLanguage() Language {
	return GetTranslator().GetLanguage()
}

// ParseLanguage converts a config string to a Language, defaulting to
// Korean.
func ParseLanguage(s string) Language {
	switch s {
	case string(English), "en", "english":
		return English
	}
	return Korean
}

func (t *Translator) loadTranslations() {
	t.translations[Korean] = koreanTranslations
	t.translations[English] = englishTranslations
}
