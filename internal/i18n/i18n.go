// Package i18n serves translated strings from YAML locale files, one file
// per language, grouped by namespace.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/example/brandslanding/internal/brandslanding"
)

// Locales holds the bundled locale files.
//
//go:embed locales/*.yaml
var Locales embed.FS

// Bundle holds messages for every supported language.
type Bundle struct {
	defaultLang string
	langs       []string
	matcher     language.Matcher
	// messages[lang][namespace][key]
	messages map[string]map[string]map[string]string
}

// Load reads locales/<lang>.yaml for every supported language. The default
// language must have a file; other languages without one fall back to it.
func Load(fsys fs.FS, defaultLang string, supported []string) (*Bundle, error) {
	langs := []string{defaultLang}
	for _, l := range supported {
		if l != defaultLang {
			langs = append(langs, l)
		}
	}

	b := &Bundle{
		defaultLang: defaultLang,
		langs:       langs,
		messages:    make(map[string]map[string]map[string]string, len(langs)),
	}

	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", l, err)
		}
		tags = append(tags, tag)

		raw, err := fs.ReadFile(fsys, path.Join("locales", l+".yaml"))
		if err != nil {
			if l == defaultLang {
				return nil, fmt.Errorf("read default locale: %w", err)
			}
			continue
		}

		var msgs map[string]map[string]string
		if err := yaml.Unmarshal(raw, &msgs); err != nil {
			return nil, fmt.Errorf("decode locale %q: %w", l, err)
		}
		b.messages[l] = msgs
	}
	b.matcher = language.NewMatcher(tags)

	return b, nil
}

// DefaultLang returns the fallback language.
func (b *Bundle) DefaultLang() string {
	return b.defaultLang
}

// Match picks the best supported language for an Accept-Language header.
func (b *Bundle) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return b.defaultLang
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.defaultLang
	}
	return b.langs[idx]
}

// T looks up ns:key in lang, then in the default language, then uses
// fallback, and interpolates {{var}} placeholders.
func (b *Bundle) T(lang, ns, key, fallback string, vars map[string]string) string {
	text, ok := b.lookup(lang, ns, key)
	if !ok {
		text, ok = b.lookup(b.defaultLang, ns, key)
	}
	if !ok {
		text = fallback
	}
	return brandslanding.Interpolate(text, vars)
}

// Translator binds T to one language and namespace.
func (b *Bundle) Translator(lang, ns string) brandslanding.Translator {
	return func(key, fallback string, vars map[string]string) string {
		return b.T(lang, ns, key, fallback, vars)
	}
}

func (b *Bundle) lookup(lang, ns, key string) (string, bool) {
	text, ok := b.messages[lang][ns][key]
	if !ok || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
