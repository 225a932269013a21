package poll

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// CodeLength is the length of a MMDDHHmm candidate code.
const CodeLength = 8

var ErrInvalidCode = errors.New("invalid datetime code")

// CodeError reports which code failed to parse. It matches ErrInvalidCode.
type CodeError struct {
	Code   string
	Reason string
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidCode, e.Code, e.Reason)
}

func (e *CodeError) Unwrap() error { return ErrInvalidCode }

var weekdays = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// ParseCode turns a MMDDHHmm code into a time in the given year and location.
// Out of range fields are rejected rather than normalized by time.Date.
func ParseCode(code string, year int, loc *time.Location) (time.Time, error) {
	if len(code) != CodeLength {
		return time.Time{}, &CodeError{Code: code, Reason: fmt.Sprintf("expected %d digits", CodeLength)}
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return time.Time{}, &CodeError{Code: code, Reason: "non-digit character"}
		}
	}

	month, _ := strconv.Atoi(code[0:2])
	day, _ := strconv.Atoi(code[2:4])
	hour, _ := strconv.Atoi(code[4:6])
	minute, _ := strconv.Atoi(code[6:8])

	if month < 1 || month > 12 {
		return time.Time{}, &CodeError{Code: code, Reason: fmt.Sprintf("month %d out of range", month)}
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, &CodeError{Code: code, Reason: fmt.Sprintf("time %02d:%02d out of range", hour, minute)}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	if day < 1 || t.Day() != day {
		return time.Time{}, &CodeError{Code: code, Reason: fmt.Sprintf("%d/%d is not a date in %d", month, day, year)}
	}
	if t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, &CodeError{Code: code, Reason: fmt.Sprintf("%02d:%02d does not exist on %d/%d in %s", hour, minute, month, day, loc)}
	}

	return t, nil
}

// Label renders t as "6月20日(土) 12:00".
func Label(t time.Time) string {
	return fmt.Sprintf("%d月%d日(%s) %02d:%02d", int(t.Month()), t.Day(), weekdays[t.Weekday()], t.Hour(), t.Minute())
}

// FormatDatetime parses code in the year of now and returns its label.
func FormatDatetime(code string, now time.Time) (string, error) {
	t, err := ParseCode(code, now.Year(), now.Location())
	if err != nil {
		return "", err
	}
	return Label(t), nil
}
