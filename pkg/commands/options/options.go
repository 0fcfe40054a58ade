package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions narrows the events table.
type FilterOptions struct {
	Category string
	Query    string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "All",
		"Category filter: All, Admission, Exam, Result, Admit Card, Other.")
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Case-insensitive search over titles and notes.")
}

// LangOptions overrides the stored language preference for one invocation.
type LangOptions struct {
	Lang string
}

func AddLangArgs(cmd *cobra.Command, o *LangOptions) {
	cmd.Flags().StringVar(&o.Lang, "lang", "", "Output language (en or bn). Defaults to the stored preference.")
}

// IDOptions toggles id display in listings.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "id", "i", false, "Show record ids.")
}

// ConfirmOptions bypasses destructive-action prompts.
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false, "Skip the confirmation prompt.")
}

// SlotOptions carries a time slot from flags.
type SlotOptions struct {
	Start string
	End   string
	Note  string
}

func AddSlotArgs(cmd *cobra.Command, o *SlotOptions) {
	cmd.Flags().StringVar(&o.Start, "start", "", "Start time, 24-hour HH:MM. Empty removes the slot.")
	cmd.Flags().StringVar(&o.End, "end", "", "End time, 24-hour HH:MM.")
	cmd.Flags().StringVar(&o.Note, "note", "", "Free-form note for the slot.")
}

// EventOptions carries admission-event fields from flags.
type EventOptions struct {
	Title         string
	Date          string
	Category      string
	Eligibility   string
	WebsiteLink   string
	AdmitCardLink string
	Notes         string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "", "Event title (required).")
	cmd.Flags().StringVarP(&o.Date, "date", "d", "", "Event date, YYYY-MM-DD (required).")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "Other",
		"Category: Admission, Exam, Result, Admit Card, Other.")
	cmd.Flags().StringVar(&o.Eligibility, "eligibility", "", "Eligibility text.")
	cmd.Flags().StringVar(&o.WebsiteLink, "website", "", "Website link.")
	cmd.Flags().StringVar(&o.AdmitCardLink, "admit-card", "", "Admit card link; empty means not yet available.")
	cmd.Flags().StringVar(&o.Notes, "notes", "", "Free-form notes.")
}
