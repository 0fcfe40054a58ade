// Package prefs loads and saves the two persisted display preferences.
// Stored values are validated against their enumerations on load; anything
// else, including an absent key, falls back to the documented default.
package prefs

import (
	"admitly/pkg/model"
	"admitly/pkg/store"
)

func LoadTheme(p store.Persistence) model.Theme {
	raw, _ := p.Read(store.KeyTheme)
	theme, err := model.ParseTheme(string(raw))
	if err != nil {
		return model.DefaultTheme
	}
	return theme
}

// SaveTheme writes through immediately; preferences are never batched.
func SaveTheme(p store.Persistence, theme model.Theme) error {
	return p.Write(store.KeyTheme, []byte(theme))
}

func LoadLang(p store.Persistence) model.Lang {
	raw, _ := p.Read(store.KeyLang)
	lang, err := model.ParseLang(string(raw))
	if err != nil {
		return model.DefaultLang
	}
	return lang
}

func SaveLang(p store.Persistence, lang model.Lang) error {
	return p.Write(store.KeyLang, []byte(lang))
}
