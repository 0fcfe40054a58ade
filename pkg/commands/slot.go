package commands

import (
	"context"

	"github.com/spf13/cobra"

	"admitly/pkg/commands/options"
	"admitly/pkg/model"
	"admitly/pkg/repo"
	"admitly/pkg/runner/slot"
	"admitly/pkg/store"
)

func addSlot(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Work with event time slots.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSlotSet(cmd)
	addSlotShow(cmd)
	addSlotClear(cmd)

	topLevel.AddCommand(cmd)
}

func addSlotSet(parent *cobra.Command) {
	so := &options.SlotOptions{}
	lo := &options.LangOptions{}

	cmd := &cobra.Command{
		Use:   "set <event-id>",
		Short: "Set an event's time slot. An empty start removes it.",
		Example: `
admitly slot set 4f1c... --start 09:30 --end 12:00
admitly slot set 4f1c... --start ""
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := slot.Set{
				EventID: args[0],
				Slot:    model.TimeSlot{Start: so.Start, End: so.End, Note: so.Note},
				Lang:    resolveLang(p, lo),
				Events:  repo.NewEvents(p),
			}
			return s.Do(context.Background())
		},
	}

	options.AddSlotArgs(cmd, so)
	options.AddLangArgs(cmd, lo)
	parent.AddCommand(cmd)
}

func addSlotShow(parent *cobra.Command) {
	lo := &options.LangOptions{}

	cmd := &cobra.Command{
		Use:   "show <event-id>",
		Short: "Show an event's time slot.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := slot.Show{
				EventID: args[0],
				Lang:    resolveLang(p, lo),
				Events:  repo.NewEvents(p),
			}
			return s.Do(context.Background())
		},
	}

	options.AddLangArgs(cmd, lo)
	parent.AddCommand(cmd)
}

func addSlotClear(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear <event-id>",
		Short: "Remove an event's time slot.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := slot.Clear{
				EventID: args[0],
				Events:  repo.NewEvents(p),
			}
			return s.Do(context.Background())
		},
	}

	parent.AddCommand(cmd)
}
