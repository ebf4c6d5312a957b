package services

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the DD-MM-YYYY format the frontend expects for course dates.
const DateLayout = "02-01-2006"

// defaultWeeks is used whenever a duration string cannot be interpreted.
const defaultWeeks = 4

// CourseDates converts a free-text course duration ("4 weeks", "22 hours",
// "3 months") into a start/end date pair anchored at ref. Units are matched
// case-insensitively with week taking precedence over month over hour, so
// "1 week, 20 hours" counts as one week. Months are approximated as 30 days.
// Hours assume 2 study hours a day, 5 days a week. Anything unrecognized,
// including a unit with no number in front of it, defaults to 4 weeks.
func CourseDates(duration string, ref time.Time) (string, string) {
	lower := strings.ToLower(duration)
	n, ok := firstInt(duration)

	var end time.Time
	switch {
	case ok && strings.Contains(lower, "week"):
		end = ref.AddDate(0, 0, 7*n)
	case ok && strings.Contains(lower, "month"):
		end = ref.AddDate(0, 0, 30*n)
	case ok && strings.Contains(lower, "hour"):
		days := int(float64(n) / 2 * 7 / 5)
		end = ref.AddDate(0, 0, days)
	default:
		end = ref.AddDate(0, 0, 7*defaultWeeks)
	}

	return ref.Format(DateLayout), end.Format(DateLayout)
}

// firstInt returns the first run of digits in s as an integer.
func firstInt(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.Atoi(s[start:])
		return n, err == nil
	}
	return 0, false
}
