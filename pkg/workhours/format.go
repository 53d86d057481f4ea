package workhours

import "strings"

const (
	dayOff        = "выходной"
	dayOffPreview = "Выходной"
)

type hoursRun struct {
	days      []Day
	timeRange string
}

// hoursRuns merges consecutive week days that share a time range.
func (w WorkHours) hoursRuns() []hoursRun {
	var out []hoursRun
	for _, d := range w.sorted() {
		if n := len(out); n > 0 {
			last := &out[n-1]
			prev := last.days[len(last.days)-1]
			if last.timeRange == d.TimeRange && prev.Index() >= 0 && prev.Index()+1 == d.Day.Index() {
				last.days = append(last.days, d.Day)
				continue
			}
		}
		out = append(out, hoursRun{days: []Day{d.Day}, timeRange: d.TimeRange})
	}
	return out
}

// String serializes the schedule for the API, e.g.
// "Пн-Пт: 09:00-18:00; Сб: 10:00-16:00; Вс: выходной". Parse reads it back.
func (w WorkHours) String() string {
	if w.IsEmpty() {
		return ""
	}

	var parts []string
	for _, r := range w.hoursRuns() {
		parts = append(parts, runLabel(r.days)+": "+r.timeRange)
	}
	for _, off := range runs(w.daysOff()) {
		parts = append(parts, runLabel(off)+": "+dayOff)
	}
	return strings.Join(parts, "; ")
}

// Preview renders the schedule on one line for the card header, e.g.
// "Пн-Пт 09:00-18:00, Сб-Вс Выходной".
func (w WorkHours) Preview() string {
	if w.IsEmpty() {
		return ""
	}

	var parts []string
	for _, r := range w.hoursRuns() {
		parts = append(parts, runLabel(r.days)+" "+r.timeRange)
	}
	for _, off := range runs(w.daysOff()) {
		parts = append(parts, runLabel(off)+" "+dayOffPreview)
	}
	return strings.Join(parts, ", ")
}
