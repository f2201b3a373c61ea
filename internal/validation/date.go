package validation

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// maxEpochMillis is the largest instant representable by an ECMAScript Date.
const maxEpochMillis = 8.64e15

var errInvalidDate = errors.New("invalid date")

var (
	datePrefix = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}`)
	dateConfig = &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: time.UTC,
		TimeFormats:  now.TimeFormats,
	}
)

// ParseEventDate accepts a positive integer epoch timestamp in milliseconds or a
// string starting with a calendar date, and returns the instant in UTC.
func ParseEventDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case float64:
		return fromEpochMillis(d)
	case int64:
		return fromEpochMillis(float64(d))
	case int:
		return fromEpochMillis(float64(d))
	case json.Number:
		f, err := d.Float64()
		if err != nil {
			return time.Time{}, errInvalidDate
		}
		return fromEpochMillis(f)
	case string:
		return fromDateString(d)
	case time.Time:
		if d.IsZero() {
			return time.Time{}, errInvalidDate
		}
		return d.UTC(), nil
	default:
		return time.Time{}, errInvalidDate
	}
}

func fromEpochMillis(ms float64) (time.Time, error) {
	if ms <= 0 || ms > maxEpochMillis || ms != math.Trunc(ms) {
		return time.Time{}, errInvalidDate
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

func fromDateString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	// now.Parse also accepts bare clock times; require the date part up front.
	if !datePrefix.MatchString(s) {
		return time.Time{}, errInvalidDate
	}
	t, err := dateConfig.Parse(s)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t.UTC(), nil
}
