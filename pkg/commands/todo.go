package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"admitly/pkg/commands/options"
	"admitly/pkg/model"
	"admitly/pkg/repo"
	"admitly/pkg/runner/todo"
	"admitly/pkg/store"
)

func addTodo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Work with dated todos.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTodoList(cmd)
	addTodoAdd(cmd)
	addTodoToggle(cmd)
	addTodoDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addTodoList(parent *cobra.Command) {
	lo := &options.LangOptions{}
	io := &options.IDOptions{}
	date := ""

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos for a date, defaulting to today.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := todo.List{
				Date:   model.Date(date),
				Lang:   resolveLang(p, lo),
				ShowID: io.ShowID,
				Todos:  repo.NewTodos(p),
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date, YYYY-MM-DD. Defaults to today.")
	options.AddLangArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addTodoAdd(parent *cobra.Command) {
	lo := &options.LangOptions{}
	date := ""

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a todo for a date, defaulting to today.",
		Example: `
admitly todo add "collect admit card"
admitly todo add -d 2026-03-01 "revise chemistry"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := todo.Add{
				Date:  model.Date(date),
				Text:  strings.Join(args, " "),
				Lang:  resolveLang(p, lo),
				Todos: repo.NewTodos(p),
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date, YYYY-MM-DD. Defaults to today.")
	options.AddLangArgs(cmd, lo)
	parent.AddCommand(cmd)
}

func addTodoToggle(parent *cobra.Command) {
	lo := &options.LangOptions{}

	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a todo's completion.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := todo.Toggle{
				ID:    args[0],
				Lang:  resolveLang(p, lo),
				Todos: repo.NewTodos(p),
			}
			return s.Do(context.Background())
		},
	}

	options.AddLangArgs(cmd, lo)
	parent.AddCommand(cmd)
}

func addTodoDelete(parent *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !co.Yes && !confirm("Delete this todo?") {
				return nil
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := todo.Delete{
				ID:    args[0],
				Todos: repo.NewTodos(p),
			}
			return s.Do(context.Background())
		},
	}

	options.AddConfirmArgs(cmd, co)
	parent.AddCommand(cmd)
}
