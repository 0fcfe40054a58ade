package commands

import (
	"context"

	"github.com/spf13/cobra"

	"admitly/pkg/commands/options"
	"admitly/pkg/model"
	"admitly/pkg/repo"
	"admitly/pkg/runner/study"
	"admitly/pkg/store"
)

func addStudy(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Track study hours.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addStudyAdd(cmd)
	addStudyReport(cmd)

	topLevel.AddCommand(cmd)
}

func addStudyAdd(parent *cobra.Command) {
	lo := &options.LangOptions{}
	subjectID := ""
	date := ""
	minutes := 0
	notes := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a study session.",
		Example: `
admitly study add -m 45
admitly study add -m 90 -d 2026-02-01 --subject 1 --notes "physics revision"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := study.Add{
				SubjectID: subjectID,
				Date:      model.Date(date),
				Minutes:   minutes,
				Notes:     notes,
				Lang:      resolveLang(p, lo),
				Study:     repo.NewStudy(p),
				Subjects:  repo.NewSubjects(p),
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&subjectID, "subject", "", "Subject id. Defaults to the first subject.")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Session date, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Minutes studied.")
	cmd.Flags().StringVar(&notes, "notes", "", "Session notes.")
	options.AddLangArgs(cmd, lo)
	parent.AddCommand(cmd)
}

func addStudyReport(parent *cobra.Command) {
	lo := &options.LangOptions{}
	sessions := false

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show today's total and the last-7-days chart.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := study.Report{
				Lang:     resolveLang(p, lo),
				Sessions: sessions,
				Study:    repo.NewStudy(p),
				Subjects: repo.NewSubjects(p),
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&sessions, "sessions", false, "Also list the raw sessions.")
	options.AddLangArgs(cmd, lo)
	parent.AddCommand(cmd)
}
