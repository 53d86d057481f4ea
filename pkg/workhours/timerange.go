package workhours

import (
	"errors"
	"regexp"
	"strconv"
)

var (
	ErrInvalidTimeRange = errors.New("time range must be HH:MM-HH:MM")
	ErrTimeRangeOrder   = errors.New("end time must be after start time")

	reTimeRange = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])-([01][0-9]|2[0-3]):([0-5][0-9])$`)
)

// TimeRange holds minutes since midnight.
type TimeRange struct {
	Start int
	End   int
}

// ParseTimeRange reads "HH:MM-HH:MM" in 24-hour format. It does not check the
// order of the two times, see TimeRange.Ordered.
func ParseTimeRange(s string) (TimeRange, error) {
	m := reTimeRange.FindStringSubmatch(s)
	if m == nil {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{
		Start: minutes(m[1], m[2]),
		End:   minutes(m[3], m[4]),
	}, nil
}

func minutes(hh, mm string) int {
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return h*60 + m
}

func (r TimeRange) Ordered() bool {
	return r.End > r.Start
}

// ValidateTimeRange combines format and order checks.
func ValidateTimeRange(s string) error {
	r, err := ParseTimeRange(s)
	if err != nil {
		return err
	}
	if !r.Ordered() {
		return ErrTimeRangeOrder
	}
	return nil
}

// Validate reports the first day whose range is malformed or not ordered.
func (w WorkHours) Validate() error {
	for _, d := range w.Days {
		if err := ValidateTimeRange(d.TimeRange); err != nil {
			return err
		}
	}
	return nil
}
