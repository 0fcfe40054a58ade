package commands

import (
	"context"

	"github.com/spf13/cobra"

	runner "admitly/pkg/runner/prefs"
	"admitly/pkg/store"
)

func addPrefs(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Get or set display preferences.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	theme := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Get or set the theme.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := runner.Theme{Persistence: p}
			if len(args) == 1 {
				s.Value = args[0]
			}
			return s.Do(context.Background())
		},
	}

	lang := &cobra.Command{
		Use:   "lang [en|bn]",
		Short: "Get or set the language.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := runner.Lang{Persistence: p}
			if len(args) == 1 {
				s.Value = args[0]
			}
			return s.Do(context.Background())
		},
	}

	cmd.AddCommand(theme, lang)
	topLevel.AddCommand(cmd)
}
