package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

const (
	LangPT = "pt"
	LangEN = "en"
)

var requiredLanguages = []string{LangPT, LangEN}

// Manager serves message catalogs keyed by base language code. Catalogs are merged
// over the default language at load time, so a missing key resolves to the default
// translation before falling back to the key itself.
type Manager struct {
	defaultLanguage string
	supported       []string
	catalogs        map[string]map[string]string
	matcher         language.Matcher
	matcherCodes    []string
}

// NewManager loads every *.json file at the root of locales. Both pt and en must be
// present; an unsupported defaultLanguage falls back to pt.
func NewManager(defaultLanguage string, locales fs.FS) (*Manager, error) {
	raw, err := readCatalogs(locales)
	if err != nil {
		return nil, err
	}
	for _, required := range requiredLanguages {
		if _, ok := raw[required]; !ok {
			return nil, fmt.Errorf("required locale %q missing", required)
		}
	}

	manager := &Manager{catalogs: map[string]map[string]string{}}
	for code := range raw {
		manager.supported = append(manager.supported, code)
	}
	sort.Strings(manager.supported)

	manager.defaultLanguage = LangPT
	if code := baseLanguage(defaultLanguage); code != "" {
		if _, ok := raw[code]; ok {
			manager.defaultLanguage = code
		}
	}

	for code, messages := range raw {
		merged := make(map[string]string, len(raw[manager.defaultLanguage])+len(messages))
		for key, value := range raw[manager.defaultLanguage] {
			merged[key] = value
		}
		for key, value := range messages {
			merged[key] = value
		}
		manager.catalogs[code] = merged
	}

	// The matcher treats its first tag as the fallback, so the default leads.
	manager.matcherCodes = append([]string{manager.defaultLanguage}, without(manager.supported, manager.defaultLanguage)...)
	tags := make([]language.Tag, 0, len(manager.matcherCodes))
	for _, code := range manager.matcherCodes {
		tags = append(tags, language.Make(code))
	}
	manager.matcher = language.NewMatcher(tags)

	return manager, nil
}

func readCatalogs(locales fs.FS) (map[string]map[string]string, error) {
	entries, err := fs.ReadDir(locales, ".")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	catalogs := map[string]map[string]string{}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}

		code := strings.ToLower(strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
		content, err := fs.ReadFile(locales, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", code, err)
		}

		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", code, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", code)
		}
		catalogs[code] = messages
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("no locales found")
	}
	return catalogs, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	return append([]string(nil), manager.supported...)
}

// NormalizeLanguage maps a tag such as "en_US" or "pt-BR" to a supported base
// language, or to the default when it is not supported.
func (manager *Manager) NormalizeLanguage(raw string) string {
	code := baseLanguage(raw)
	if _, ok := manager.catalogs[code]; ok {
		return code
	}
	return manager.defaultLanguage
}

// DetectFromAcceptLanguage honors q-weights of an Accept-Language header.
func (manager *Manager) DetectFromAcceptLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return manager.defaultLanguage
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return manager.defaultLanguage
	}

	_, index, confidence := manager.matcher.Match(desired...)
	if confidence <= language.Low {
		return manager.defaultLanguage
	}
	return manager.matcherCodes[index]
}

// Messages returns the catalog for language. The map is shared and must not be
// modified.
func (manager *Manager) Messages(language string) map[string]string {
	return manager.catalogs[manager.NormalizeLanguage(language)]
}

func (manager *Manager) Translate(language string, key string) string {
	if value, ok := manager.Messages(language)[key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return key
}

func (manager *Manager) Translatef(language string, key string, args ...any) string {
	return fmt.Sprintf(manager.Translate(language, key), args...)
}

func baseLanguage(raw string) string {
	value := strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
	if value == "" {
		return ""
	}
	tag, err := language.Parse(value)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

func without(values []string, excluded string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value != excluded {
			result = append(result, value)
		}
	}
	return result
}
