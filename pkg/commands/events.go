package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"admitly/pkg/commands/options"
	"admitly/pkg/i18n"
	"admitly/pkg/model"
	"admitly/pkg/repo"
	"admitly/pkg/runner/events"
	"admitly/pkg/store"
)

func addEvents(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Work with admission events.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventsList(cmd)
	addEventsShow(cmd)
	addEventsSave(cmd)
	addEventsDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addEventsList(parent *cobra.Command) {
	fo := &options.FilterOptions{}
	lo := &options.LangOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events filtered by category and search query, sorted by date.",
		Example: `
admitly events list
admitly events list -c Exam -q midterm
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := events.List{
				Category: fo.Category,
				Query:    fo.Query,
				Lang:     resolveLang(p, lo),
				ShowID:   io.ShowID,
				Events:   repo.NewEvents(p),
			}
			return s.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddLangArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addEventsShow(parent *cobra.Command) {
	lo := &options.LangOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one event in detail.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := events.Show{
				ID:     args[0],
				Lang:   resolveLang(p, lo),
				Events: repo.NewEvents(p),
			}
			return s.Do(context.Background())
		},
	}

	options.AddLangArgs(cmd, lo)
	parent.AddCommand(cmd)
}

func addEventsSave(parent *cobra.Command) {
	eo := &options.EventOptions{}
	so := &options.SlotOptions{}
	lo := &options.LangOptions{}
	id := ""

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Insert a new event, or update one by id.",
		Example: `
admitly events save -t "Midterm Exam Notice" -d 2026-03-01 -c Exam
admitly events save --id 4f1c... -t "Midterm Exam Notice" -d 2026-03-08 -c Exam
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := model.ParseCategory(eo.Category)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := events.Save{
				ID: id,
				Event: model.AdmissionEvent{
					Title:         strings.TrimSpace(eo.Title),
					Date:          model.Date(strings.TrimSpace(eo.Date)),
					Category:      category,
					Eligibility:   strings.TrimSpace(eo.Eligibility),
					WebsiteLink:   strings.TrimSpace(eo.WebsiteLink),
					AdmitCardLink: strings.TrimSpace(eo.AdmitCardLink),
					Notes:         strings.TrimSpace(eo.Notes),
				},
				Slot: model.TimeSlot{
					Start: so.Start,
					End:   so.End,
					Note:  so.Note,
				},
				Lang:   resolveLang(p, lo),
				Events: repo.NewEvents(p),
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Update the event with this id instead of inserting.")
	options.AddEventArgs(cmd, eo)
	options.AddSlotArgs(cmd, so)
	options.AddLangArgs(cmd, lo)
	parent.AddCommand(cmd)
}

func addEventsDelete(parent *cobra.Command) {
	lo := &options.LangOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event and its time slot.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			lang := resolveLang(p, lo)
			if !co.Yes && !confirm(i18n.T(lang, "confirmDeleteEvent")) {
				return nil
			}
			s := events.Delete{
				ID:     args[0],
				Lang:   lang,
				Events: repo.NewEvents(p),
			}
			return s.Do(context.Background())
		},
	}

	options.AddLangArgs(cmd, lo)
	options.AddConfirmArgs(cmd, co)
	parent.AddCommand(cmd)
}
