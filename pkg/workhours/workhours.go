// Package workhours models the weekly opening hours shown on the organization
// card and converts them to and from the single-line form the API stores,
// e.g. "Пн-Пт: 09:00-18:00; Сб-Вс: выходной".
package workhours

import (
	"slices"
)

type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Week lists the days in display order, Monday first.
var Week = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var (
	shortLabels = map[Day]string{
		Monday:    "Пн",
		Tuesday:   "Вт",
		Wednesday: "Ср",
		Thursday:  "Чт",
		Friday:    "Пт",
		Saturday:  "Сб",
		Sunday:    "Вс",
	}

	fullLabels = map[Day]string{
		Monday:    "Понедельник",
		Tuesday:   "Вторник",
		Wednesday: "Среда",
		Thursday:  "Четверг",
		Friday:    "Пятница",
		Saturday:  "Суббота",
		Sunday:    "Воскресенье",
	}
)

func (d Day) Label(short bool) string {
	if short {
		return shortLabels[d]
	}
	return fullLabels[d]
}

// Index is the position of d in Week, or -1 for unknown days.
func (d Day) Index() int {
	return slices.Index(Week, d)
}

func (d Day) Valid() bool {
	return d.Index() >= 0
}

type DayHours struct {
	Day       Day    `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	TimeRange string `json:"timeRange" validate:"required,time_range,time_order"`
}

type WorkHours struct {
	Days []DayHours `json:"days" validate:"omitempty,unique=Day,dive"`
}

func (w WorkHours) IsEmpty() bool {
	return len(w.Days) == 0
}

// sorted returns a copy of the days in week order. Unknown days sort last.
func (w WorkHours) sorted() []DayHours {
	days := slices.Clone(w.Days)
	slices.SortStableFunc(days, func(a, b DayHours) int {
		return weekIndex(a.Day) - weekIndex(b.Day)
	})
	return days
}

func weekIndex(d Day) int {
	if i := d.Index(); i >= 0 {
		return i
	}
	return len(Week)
}

// daysOff returns the week days that have no hours, in week order.
func (w WorkHours) daysOff() []Day {
	working := make(map[Day]bool, len(w.Days))
	for _, d := range w.Days {
		working[d.Day] = true
	}

	var off []Day
	for _, d := range Week {
		if !working[d] {
			off = append(off, d)
		}
	}
	return off
}

// runs splits days into runs of consecutive week days.
func runs(days []Day) [][]Day {
	var out [][]Day
	for _, d := range days {
		if n := len(out); n > 0 {
			last := out[n-1]
			if last[len(last)-1].Index()+1 == d.Index() {
				out[n-1] = append(last, d)
				continue
			}
		}
		out = append(out, []Day{d})
	}
	return out
}

func runLabel(days []Day) string {
	first, last := days[0], days[len(days)-1]
	if first == last {
		return first.Label(true)
	}
	return first.Label(true) + "-" + last.Label(true)
}
