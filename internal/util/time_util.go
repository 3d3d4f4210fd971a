package util

import (
	"time"
)

const dateLayout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// DaysSince floors the elapsed wall-clock time to whole days.
func DaysSince(t time.Time, now time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}
