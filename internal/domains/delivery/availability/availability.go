// Package availability computes which delivery dates can be booked.
//
// A Calendar works on civil dates in a single operating timezone: every
// instant handed to it is first converted to that location and truncated to
// the start of its day, so two values denoting the same calendar day always
// compare equal regardless of the zone they arrived in.
//
// The rules are:
//   - the booking window spans HorizonDays+1 days starting today, or starting
//     tomorrow once the local hour has reached CutoffHour;
//   - Sundays are never deliverable;
//   - a date holds at most Capacity bookings.
//
// The window is recomputed from "now" on every call, so bookings on dates
// that slipped out of the window stop counting toward anything.
package availability

import (
	"errors"
	"sort"
	"time"
)

const (
	DateLayout = "2006-01-02"

	DefaultCutoffHour  = 19
	DefaultCapacity    = 8
	DefaultHorizonDays = 3
)

var (
	ErrOutsideWindow = errors.New("date is outside the booking window")
	ErrSunday        = errors.New("deliveries are not made on Sundays")
	ErrFullyBooked   = errors.New("date is fully booked")
)

// Window is an inclusive range of civil dates.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date falls on or between the window bounds.
func (w Window) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}

// Days lists every date of the window in ascending order.
func (w Window) Days() []time.Time {
	days := []time.Time{}

	for day := w.Start; !day.After(w.End); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days
}

// Counts maps a YYYY-MM-DD key to the number of bookings on that date.
type Counts map[string]int

// Of returns the count recorded for date.
func (c Counts) Of(date time.Time) int {
	return c[date.Format(DateLayout)]
}

type Calendar struct {
	Location    *time.Location
	CutoffHour  int
	Capacity    int
	HorizonDays int
}

// New returns a calendar for loc. Non-positive values fall back to the
// defaults, except for the cutoff hour where 0 is meaningful.
func New(loc *time.Location, cutoffHour, capacity, horizonDays int) Calendar {
	if loc == nil {
		loc = time.UTC
	}

	if cutoffHour < 0 || cutoffHour > 24 {
		cutoffHour = DefaultCutoffHour
	}

	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	return Calendar{
		Location:    loc,
		CutoffHour:  cutoffHour,
		Capacity:    capacity,
		HorizonDays: horizonDays,
	}
}

// StartOfDay truncates t to midnight of its civil date in the calendar location.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	local := t.In(c.Location)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.Location)
}

// ParseDate reads a YYYY-MM-DD value as a civil date in the calendar location.
func (c Calendar) ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, c.Location)
}

// FormatDate renders the civil date of t as YYYY-MM-DD.
func (c Calendar) FormatDate(t time.Time) string {
	return t.In(c.Location).Format(DateLayout)
}

func (c Calendar) AllowedWindow(now time.Time) Window {
	today := c.StartOfDay(now)

	if now.In(c.Location).Hour() >= c.CutoffHour {
		today = today.AddDate(0, 0, 1)
	}

	return Window{
		Start: today,
		End:   today.AddDate(0, 0, c.HorizonDays),
	}
}

func (c Calendar) IsSunday(date time.Time) bool {
	return date.In(c.Location).Weekday() == time.Sunday
}

// Check returns nil when date can take one more booking, otherwise the
// first rule it breaks.
func (c Calendar) Check(date time.Time, counts Counts, window Window) error {
	day := c.StartOfDay(date)

	switch {
	case !window.Contains(day):
		return ErrOutsideWindow
	case c.IsSunday(day):
		return ErrSunday
	case counts.Of(day) >= c.Capacity:
		return ErrFullyBooked
	}

	return nil
}

func (c Calendar) IsDateAvailable(date time.Time, counts Counts, window Window) bool {
	return c.Check(date, counts, window) == nil
}

// CountByDate tallies booking dates per civil day.
func (c Calendar) CountByDate(dates []time.Time) Counts {
	counts := Counts{}

	for _, date := range dates {
		counts[c.FormatDate(date)]++
	}

	return counts
}

// UnavailableDates reports the in-window, non-Sunday dates whose bookings
// have reached capacity, in ascending order. Dates outside the window and
// Sundays are unselectable for other reasons and are left out.
func (c Calendar) UnavailableDates(dates []time.Time, now time.Time) []time.Time {
	return c.FullDates(c.CountByDate(dates), now)
}

// FullDates is UnavailableDates over pre-aggregated counts.
func (c Calendar) FullDates(counts Counts, now time.Time) []time.Time {
	window := c.AllowedWindow(now)
	full := []time.Time{}

	for key, count := range counts {
		day, err := c.ParseDate(key)
		if err != nil {
			continue
		}

		if !window.Contains(day) || c.IsSunday(day) {
			continue
		}

		if count >= c.Capacity {
			full = append(full, day)
		}
	}

	sort.Slice(full, func(i, j int) bool { return full[i].Before(full[j]) })

	return full
}

// SelectableDates lists the window dates that can still be booked.
func (c Calendar) SelectableDates(counts Counts, now time.Time) []time.Time {
	window := c.AllowedWindow(now)
	selectable := []time.Time{}

	for _, day := range window.Days() {
		if c.IsDateAvailable(day, counts, window) {
			selectable = append(selectable, day)
		}
	}

	return selectable
}
