package prefs

import (
	"context"
	"errors"
	"fmt"

	"admitly/pkg/model"
	"admitly/pkg/prefs"
	"admitly/pkg/store"
)

// Theme gets or sets the persisted theme. An empty Value prints the current
// one.
type Theme struct {
	Value string

	Persistence store.Persistence
}

func (n *Theme) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not access preferences, no persistence")
	}
	if n.Value == "" {
		fmt.Println(prefs.LoadTheme(n.Persistence))
		return nil
	}
	theme, err := model.ParseTheme(n.Value)
	if err != nil {
		return err
	}
	return prefs.SaveTheme(n.Persistence, theme)
}

// Lang gets or sets the persisted language.
type Lang struct {
	Value string

	Persistence store.Persistence
}

func (n *Lang) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not access preferences, no persistence")
	}
	if n.Value == "" {
		fmt.Println(prefs.LoadLang(n.Persistence))
		return nil
	}
	lang, err := model.ParseLang(n.Value)
	if err != nil {
		return err
	}
	return prefs.SaveLang(n.Persistence, lang)
}
