package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"timeslime/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	datePattern = regexp.MustCompile(`^(\d{4})([/-])(\d{1,2})([/-])(\d{1,2})$`)
	timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// parseDateArg parses YYYY/MM/DD, YYYY-MM-DD or "today"
func parseDateArg(arg string) (domain.Date, error) {
	if strings.EqualFold(arg, "today") {
		return domain.Today(), nil
	}

	matches := datePattern.FindStringSubmatch(arg)
	if matches == nil || matches[2] != matches[4] {
		return domain.Date{}, fmt.Errorf("invalid date %q: use YYYY/MM/DD, YYYY-MM-DD or today", arg)
	}

	year, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[3])
	day, _ := strconv.Atoi(matches[5])

	if year < 1000 {
		return domain.Date{}, fmt.Errorf("invalid date %q: year must be at least 1000", arg)
	}
	if month < 1 || month > 12 {
		return domain.Date{}, fmt.Errorf("invalid date %q: month must be between 1 and 12", arg)
	}
	if day < 1 || day > 31 {
		return domain.Date{}, fmt.Errorf("invalid date %q: day must be between 1 and 31", arg)
	}

	return domain.NewDate(year, month, day), nil
}

// parseTimeArg parses HH:MM on a 24 hour clock
func parseTimeArg(arg string) (hour, minute int, err error) {
	matches := timePattern.FindStringSubmatch(arg)
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid time %q: use HH:MM", arg)
	}

	hour, _ = strconv.Atoi(matches[1])
	minute, _ = strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q: out of range", arg)
	}
	return hour, minute, nil
}

func isTimeArg(arg string) bool {
	return strings.EqualFold(arg, "now") || strings.Contains(arg, ":")
}

// parseTimestampArgs turns "[date] [HH:MM]" into a timestamp. With neither
// given the database's current time is used; a missing part is taken from
// the local clock.
func parseTimestampArgs(args []string) (domain.Timestamp, error) {
	var dateArg, timeArg string
	switch len(args) {
	case 0:
		return domain.Now(), nil
	case 1:
		if isTimeArg(args[0]) {
			timeArg = args[0]
		} else {
			dateArg = args[0]
		}
	case 2:
		dateArg, timeArg = args[0], args[1]
	default:
		return domain.Timestamp{}, fmt.Errorf("expected at most a date and a time, got %d arguments", len(args))
	}

	if strings.EqualFold(dateArg, "today") || dateArg == "" {
		if timeArg == "" || strings.EqualFold(timeArg, "now") {
			return domain.Now(), nil
		}
	}

	now := timeNow()
	date := domain.DateOf(now)
	if dateArg != "" {
		parsed, err := parseDateArg(dateArg)
		if err != nil {
			return domain.Timestamp{}, err
		}
		date = resolveDate(parsed)
	}

	hour, minute := now.Hour(), now.Minute()
	if timeArg != "" && !strings.EqualFold(timeArg, "now") {
		var err error
		if hour, minute, err = parseTimeArg(timeArg); err != nil {
			return domain.Timestamp{}, err
		}
	}

	return domain.NewTimestamp(date.Year, date.Month, date.Day, hour, minute), nil
}

// parseHoursArg parses a nonzero decimal amount of hours
func parseHoursArg(arg string) (decimal.Decimal, error) {
	hours, err := decimal.NewFromString(arg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number of hours %q", arg)
	}
	if hours.IsZero() {
		return decimal.Zero, fmt.Errorf("number of hours must be > 0 or < 0")
	}
	return hours, nil
}

// resolveDate replaces "today" with the local calendar date
func resolveDate(d domain.Date) domain.Date {
	if d.IsNow() {
		return domain.DateOf(timeNow())
	}
	return d
}

// formatHours renders hours with two decimals
func formatHours(hours decimal.Decimal) string {
	return hours.StringFixed(2)
}
