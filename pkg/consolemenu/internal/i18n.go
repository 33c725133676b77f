package internal

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// NewBundle creates an English-default message bundle and loads the given
// message files. Files are named by language, e.g. active.fr.toml.
func NewBundle(files ...string) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("load messages %s: %w", file, err)
		}
	}
	return bundle, nil
}

// NewLocalizer prefers locale and falls back to English. An unparsable
// locale is logged and ignored.
func NewLocalizer(bundle *i18n.Bundle, locale string) *i18n.Localizer {
	langs := []string{}
	if locale != "" {
		if tag, err := language.Parse(locale); err != nil {
			GetInternalLogger().Warn("Ignoring invalid locale", "locale", locale, "error", err)
		} else {
			langs = append(langs, tag.String())
		}
	}
	langs = append(langs, language.English.String())
	return i18n.NewLocalizer(bundle, langs...)
}

// Localize resolves id, using fallback when the id is empty or missing.
func Localize(localizer *i18n.Localizer, id, fallback string) string {
	if localizer == nil || id == "" {
		return fallback
	}

	text, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: id,
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: fallback,
		},
	})
	if err != nil {
		GetInternalLogger().Debug("Missing translation", "id", id, "error", err)
	}
	if text == "" {
		return fallback
	}
	return text
}
