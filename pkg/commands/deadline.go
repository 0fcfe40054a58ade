package commands

import (
	"context"

	"github.com/spf13/cobra"

	"admitly/pkg/commands/options"
	"admitly/pkg/i18n"
	"admitly/pkg/model"
	"admitly/pkg/repo"
	"admitly/pkg/runner/deadline"
	"admitly/pkg/store"
)

func addDeadline(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "deadline",
		Short: "Track deadlines.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDeadlineList(cmd)
	addDeadlineAdd(cmd)
	addDeadlineDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addDeadlineList(parent *cobra.Command) {
	lo := &options.LangOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deadlines sorted by date.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := deadline.List{
				Lang:      resolveLang(p, lo),
				ShowID:    io.ShowID,
				Deadlines: repo.NewDeadlines(p),
			}
			return s.Do(context.Background())
		},
	}

	options.AddLangArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addDeadlineAdd(parent *cobra.Command) {
	lo := &options.LangOptions{}
	title := ""
	date := ""
	priority := "medium"

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a deadline.",
		Example: `
admitly deadline add -t "DU form submission" -d 2026-04-10 -p high
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := model.ParsePriority(priority)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := deadline.Add{
				Title:     title,
				Date:      model.Date(date),
				Priority:  parsed,
				Lang:      resolveLang(p, lo),
				Deadlines: repo.NewDeadlines(p),
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Deadline title (required).")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Deadline date, YYYY-MM-DD (required).")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority: low, medium, high.")
	options.AddLangArgs(cmd, lo)
	parent.AddCommand(cmd)
}

func addDeadlineDelete(parent *cobra.Command) {
	lo := &options.LangOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a deadline.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			lang := resolveLang(p, lo)
			if !co.Yes && !confirm(i18n.T(lang, "confirmDeleteDeadline")) {
				return nil
			}
			s := deadline.Delete{
				ID:        args[0],
				Deadlines: repo.NewDeadlines(p),
			}
			return s.Do(context.Background())
		},
	}

	options.AddLangArgs(cmd, lo)
	options.AddConfirmArgs(cmd, co)
	parent.AddCommand(cmd)
}
