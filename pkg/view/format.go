package view

import (
	"fmt"
	"strconv"
	"strings"

	"admitly/pkg/model"
)

// To12Hour converts a 24-hour "HH:MM" string to 12-hour form with an AM/PM
// suffix; hour 0 maps to 12 AM and hour 12 to 12 PM. An empty string or one
// without a colon yields ""; a colon-separated value whose hour is not a
// number comes back verbatim. Never fails.
func To12Hour(hhmm string) string {
	if hhmm == "" || !strings.Contains(hhmm, ":") {
		return ""
	}
	parts := strings.SplitN(hhmm, ":", 2)
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}

	suffix := "AM"
	if hh >= 12 {
		suffix = "PM"
	}
	h12 := ((hh+11)%12 + 1)
	return fmt.Sprintf("%d:%s %s", h12, parts[1], suffix)
}

// FormatSlot renders a time slot for display: the start alone, or
// "start – end" when an end is set. A slot without a start renders empty.
func FormatSlot(slot model.TimeSlot) string {
	if slot.Empty() {
		return ""
	}
	start := To12Hour(slot.Start)
	end := To12Hour(slot.End)
	if end == "" {
		return start
	}
	return fmt.Sprintf("%s – %s", start, end)
}
