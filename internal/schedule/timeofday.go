package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time within one day.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// 14:00, 09:30, 9:30
var timeHHMM = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTimeOfDay parses a 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeHHMM.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("unrecognized time format %q", s)
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return TimeOfDay{}, err
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return TimeOfDay{}, err
	}
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String returns the TimeOfDay in "HH:MM" format.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// minutes is the offset from midnight, used for ordering.
func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}
