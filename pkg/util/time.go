package util

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
	// DisplayDateFormat is the day-first layout used on printed reports.
	DisplayDateFormat = "02/01/2006"
)

// acceptedDateLayouts are tried in order by ParseDate.
var acceptedDateLayouts = []string{
	DateFormat,
	DisplayDateFormat,
	DateTimeFormat,
	time.RFC3339Nano,
	time.RFC3339,
}

// ParseDate parses s with any accepted layout. Layouts without an offset are read as UTC
// so that the calendar day never shifts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// StrToDate parses a canonical YYYY-MM-DD date.
func StrToDate(str string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, str, time.UTC)
}

func DateToStr(dt time.Time) string {
	return dt.Format(DateFormat)
}

func DateTimeToStr(dt time.Time) string {
	return dt.Format(DateTimeFormat)
}

// DateToDisplay formats dt as DD/MM/YYYY.
func DateToDisplay(dt time.Time) string {
	return dt.Format(DisplayDateFormat)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
