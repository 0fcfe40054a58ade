package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"admitly/pkg/i18n"
	"admitly/pkg/model"
	"admitly/pkg/view"
)

type PrettyPrint struct {
	Lang   model.Lang
	ShowID bool
}

func (pp *PrettyPrint) t(key string) string {
	return i18n.T(pp.Lang, key)
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" ", pp.t("noData"), "\n\n")
}

// Events renders the dashboard table: one row per event with its countdown
// and optional time slot.
func (pp *PrettyPrint) Events(events []model.AdmissionEvent, slots map[string]model.TimeSlot, now time.Time) {
	if len(events) == 0 {
		pp.none()
		return
	}

	b := color.New(color.Bold).SprintFunc()
	tbl := uitable.New()
	tbl.Separator = "  "
	row := []interface{}{b(pp.t("title")), b(pp.t("date")), b(pp.t("category")), b(pp.t("time")), b(pp.t("timeLeft"))}
	if pp.ShowID {
		row = append([]interface{}{b("ID")}, row...)
	}
	tbl.AddRow(row...)

	for _, e := range events {
		slot := view.FormatSlot(slots[e.ID])
		if slot == "" {
			slot = "-"
		}
		cells := []interface{}{e.Title, string(e.Date), string(e.Category), slot, view.CountdownLabel(e.Date, now, pp.Lang)}
		if pp.ShowID {
			cells = append([]interface{}{e.ID}, cells...)
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Event renders a single event in detail.
func (pp *PrettyPrint) Event(e model.AdmissionEvent, slot model.TimeSlot, now time.Time) {
	b := color.New(color.Bold).SprintFunc()
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b(pp.t("title")), e.Title)
	tbl.AddRow(b(pp.t("date")), string(e.Date))
	tbl.AddRow(b(pp.t("category")), string(e.Category))
	tbl.AddRow(b(pp.t("timeLeft")), view.CountdownLabel(e.Date, now, pp.Lang))
	if s := view.FormatSlot(slot); s != "" {
		tbl.AddRow(b(pp.t("time")), s)
		if slot.Note != "" {
			tbl.AddRow("", slot.Note)
		}
	} else {
		tbl.AddRow(b(pp.t("time")), pp.t("timeNotSet"))
	}
	if e.Eligibility != "" {
		tbl.AddRow(b(pp.t("eligibility")), e.Eligibility)
	}
	if e.WebsiteLink != "" {
		tbl.AddRow(b(pp.t("website")), e.WebsiteLink)
	}
	if e.AdmitCardLink != "" {
		tbl.AddRow(b(pp.t("admitCard")), e.AdmitCardLink)
	} else {
		tbl.AddRow(b(pp.t("admitCard")), pp.t("comingSoon"))
	}
	if e.Notes != "" {
		tbl.AddRow(b(pp.t("notes")), e.Notes)
	}
	if pp.ShowID {
		tbl.AddRow(b("ID"), e.ID)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// News renders marquee lines with their category tag.
func (pp *PrettyPrint) News(items []view.NewsItem) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" ", pp.t("noAnnouncements"), "\n\n")
		return
	}
	tag := color.New(color.FgHiMagenta, color.Faint)
	for _, item := range items {
		fmt.Printf("%s ", item.Text)
		_, _ = tag.Printf("[%s]\n", item.Event.Category)
	}
	fmt.Println("")
}

// Study renders the summary counters and the 7-day bar chart scaled to the
// week's ceiling.
func (pp *PrettyPrint) Study(days []view.DayTotal, todayTotal, allTotal int) {
	c := color.New(color.Faint)
	fmt.Printf("%d ", todayTotal)
	_, _ = c.Printf("%s (%s)   ", pp.t("todayStudy"), pp.t("mins"))
	fmt.Printf("%d ", allTotal)
	_, _ = c.Printf("total (%s)\n\n", pp.t("mins"))

	ceiling := view.Ceiling(days)
	const width = 30
	bar := color.New(color.FgHiBlue)
	for _, d := range days {
		filled := d.Minutes * width / ceiling
		fmt.Printf("%2d  ", d.Label)
		_, _ = bar.Print(strings.Repeat("█", filled))
		_, _ = c.Printf("%s %4d\n", strings.Repeat("░", width-filled), d.Minutes)
	}
	fmt.Println("")
}

// Sessions lists study sessions with their subject names, substituting a
// placeholder for dangling subject ids.
func (pp *PrettyPrint) Sessions(sessions []model.StudySession, subjects []model.Subject) {
	if len(sessions) == 0 {
		pp.none()
		return
	}
	b := color.New(color.Bold).SprintFunc()
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b(pp.t("date")), b(pp.t("subject")), b(pp.t("mins")), b(pp.t("notes")))
	for _, s := range sessions {
		tbl.AddRow(string(s.Date), view.SubjectName(subjects, s.SubjectID), s.Minutes, s.Notes)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Todos lists todos with completion glyphs.
func (pp *PrettyPrint) Todos(todos []model.Todo) {
	if len(todos) == 0 {
		pp.none()
		return
	}
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, todo := range todos {
		if pp.ShowID {
			_, _ = y.Printf("%s  ", todo.ID)
		}
		if todo.Completed {
			fmt.Print("✘ ")
			_, _ = done.Println(todo.Text)
		} else {
			fmt.Printf("○ %s\n", todo.Text)
		}
	}
	fmt.Println("")
}

// Deadlines lists deadlines with priority coloring; entries within the
// urgency window are highlighted.
func (pp *PrettyPrint) Deadlines(deadlines []model.Deadline, now time.Time) {
	if len(deadlines) == 0 {
		pp.none()
		return
	}
	b := color.New(color.Bold).SprintFunc()
	tbl := uitable.New()
	tbl.Separator = "  "
	row := []interface{}{b(pp.t("title")), b(pp.t("date")), b(pp.t("priority")), b(pp.t("timeLeft"))}
	if pp.ShowID {
		row = append([]interface{}{b("ID")}, row...)
	}
	tbl.AddRow(row...)

	for _, d := range deadlines {
		days := view.DaysUntil(d.Date, now)
		left := view.CountdownLabel(d.Date, now, pp.Lang)
		if view.Urgent(days) {
			left = color.New(color.FgHiRed, color.Bold).Sprint(left)
		}
		cells := []interface{}{d.Title, string(d.Date), pp.priority(d.Priority), left}
		if pp.ShowID {
			cells = append([]interface{}{d.ID}, cells...)
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) priority(p model.Priority) string {
	label := pp.t(string(p))
	switch p {
	case model.PriorityHigh:
		return color.New(color.FgHiRed).Sprint(label)
	case model.PriorityMedium:
		return color.New(color.FgHiYellow).Sprint(label)
	default:
		return color.New(color.FgHiBlue).Sprint(label)
	}
}
