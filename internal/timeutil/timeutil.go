// Package timeutil provides utility functions for working with session dates
// and the timestamps reported by attendance devices.
package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/hako/durafmt"
	dps "github.com/markusmobius/go-dateparser"
)

var errEmptyTimestamp = errors.New("empty timestamp")

// Layouts tried, in order, before falling back to free-form parsing.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z07:00",
}

var localLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

var clockLayouts = []string{
	"15:04:05",
	"15:04",
}

// Languages given to the natural-language parser.
var parserLanguages = []string{"fr", "en"}

// DateIn returns midnight of t's calendar date in loc. The date is read
// in t's own location, so a date column decoded as UTC keeps its day.
func DateIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// OnDate anchors a time of day ("HH:MM" or "HH:MM:SS") on the calendar date
// of day, in day's location.
func OnDate(day time.Time, clock string) (time.Time, error) {
	clock = strings.TrimSpace(clock)

	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, clock)
		if err == nil {
			return combine(day, t), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time of day: %q", clock)
}

func combine(day, clock time.Time) time.Time {
	return time.Date(
		day.Year(),
		day.Month(),
		day.Day(),
		clock.Hour(),
		clock.Minute(),
		clock.Second(),
		clock.Nanosecond(),
		day.Location(),
	)
}

// ParseTimestamp parses a device timestamp. Timestamps without a zone are
// interpreted in day's location, and bare times of day are anchored on day's
// calendar date. Unknown encodings go through dateparse and then a French or
// English natural-language parser.
func ParseTimestamp(raw string, day time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errEmptyTimestamp
	}

	loc := day.Location()

	for _, layout := range zonedLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
	}

	for _, layout := range localLayouts {
		t, err := time.ParseInLocation(layout, raw, loc)
		if err == nil {
			return t, nil
		}
	}

	if t, err := OnDate(day, raw); err == nil {
		return t, nil
	}

	// devices write dates day first
	t, err := dateparse.ParseIn(raw, loc, dateparse.PreferMonthFirst(false))
	if err == nil {
		return t, nil
	}

	d, perr := dps.Parse(&dps.Configuration{
		Languages:       parserLanguages,
		DefaultTimezone: loc,
		CurrentTime:     day,
	}, raw)
	if perr == nil && !d.Time.IsZero() {
		return d.Time, nil
	}

	return time.Time{}, fmt.Errorf("unrecognised timestamp %q: %w", raw, err)
}

// ClockFormat returns the layout used to print times of day.
func ClockFormat(twentyFourHour bool) string {
	if twentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

// Ago describes how long before now t was, to the nearest second.
func Ago(now, t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	d := now.Sub(t).Truncate(time.Second)
	if d < time.Second {
		return "just now"
	}

	return durafmt.Parse(d).LimitFirstN(2).String() + " ago"
}
