package workhours

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const minScheduleLength = 10

var (
	reSchedulePart = regexp.MustCompile(`^([А-Яа-я]+(?:-[А-Яа-я]+)?):\s*(\d{2}:\d{2}-\d{2}:\d{2})$`)
	reBareRange    = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)
)

// Parse reads the string produced by WorkHours.String. Legacy values that are
// a bare time range or too short to name a day yield an empty schedule, and so
// do parts that cannot be read.
func Parse(s string) WorkHours {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || reBareRange.MatchString(trimmed) || utf8.RuneCountInString(trimmed) < minScheduleLength {
		return WorkHours{Days: []DayHours{}}
	}

	days := []DayHours{}
	for _, part := range strings.Split(trimmed, ";") {
		part = strings.TrimSpace(part)
		if strings.Contains(strings.ToLower(part), dayOff) {
			continue
		}

		m := reSchedulePart.FindStringSubmatch(part)
		if m == nil {
			continue
		}

		startLabel, endLabel, isRange := strings.Cut(m[1], "-")
		start, ok := dayByLabel(startLabel)
		if !ok {
			continue
		}
		end := start
		if isRange {
			if d, ok := dayByLabel(endLabel); ok {
				end = d
			}
		}

		for i := start.Index(); i <= end.Index(); i++ {
			days = append(days, DayHours{Day: Week[i], TimeRange: m[2]})
		}
	}

	return WorkHours{Days: days}
}

// dayByLabel accepts the short label, any prefix of the full name, or a longer
// word that starts with the short label ("Пнд").
func dayByLabel(label string) (Day, bool) {
	label = strings.TrimSpace(label)
	for _, d := range Week {
		short := d.Label(true)
		if short == label || strings.HasPrefix(d.Label(false), label) || strings.HasPrefix(label, short) {
			return d, true
		}
	}
	return "", false
}
