package form

import (
	"fmt"
	"math"

	"hikerhunger/internal/trip"
)

// sumTolerance absorbs float noise from decimal text such as 0.1 + 0.2
const sumTolerance = 1e-6

// Breakdown is the per-day distance/elevation sub-model. Its entries
// survive disabling the toggle, so re-enabling restores them.
type Breakdown struct {
	enabled bool
	days    []trip.DayEntry
	limit   int // tripDurationDays
}

// NewBreakdown creates a disabled breakdown with one blank day
func NewBreakdown(limit int) *Breakdown {
	if limit < 1 {
		limit = 1
	}
	return &Breakdown{
		days:  []trip.DayEntry{{}},
		limit: limit,
	}
}

// SetEnabled flips the "breakdown by day" toggle without touching entries
func (b *Breakdown) SetEnabled(on bool) {
	b.enabled = on
}

// Enabled returns the toggle state
func (b *Breakdown) Enabled() bool {
	return b.enabled
}

// Len returns the number of entries
func (b *Breakdown) Len() int {
	return len(b.days)
}

// Limit returns the maximum number of entries
func (b *Breakdown) Limit() int {
	return b.limit
}

// Days returns a copy of the entries
func (b *Breakdown) Days() []trip.DayEntry {
	out := make([]trip.DayEntry, len(b.days))
	copy(out, b.days)
	return out
}

// Entries returns the entries to submit, or nil when the toggle is off
func (b *Breakdown) Entries() []trip.DayEntry {
	if !b.enabled {
		return nil
	}
	return b.Days()
}

// AddDay appends a blank entry. It is a no-op (returning false) once the
// breakdown already has one entry per trip day.
func (b *Breakdown) AddDay() bool {
	if len(b.days) >= b.limit {
		return false
	}
	b.days = append(b.days, trip.DayEntry{})
	return true
}

// RemoveDay deletes the entry at index. Removing the last entry leaves a
// single blank one behind.
func (b *Breakdown) RemoveDay(index int) error {
	if index < 0 || index >= len(b.days) {
		return fmt.Errorf("day index %d out of range [0,%d)", index, len(b.days))
	}
	b.days = append(b.days[:index], b.days[index+1:]...)
	if len(b.days) == 0 {
		b.days = []trip.DayEntry{{}}
	}
	return nil
}

// SetLimit updates the trip duration bound, truncating extra entries
func (b *Breakdown) SetLimit(days int) {
	if days < 1 {
		days = 1
	}
	b.limit = days
	if len(b.days) > days {
		b.days = b.days[:days]
	}
}

// SetDistance replaces the distance text of one entry
func (b *Breakdown) SetDistance(index int, distance trip.Decimal) error {
	if index < 0 || index >= len(b.days) {
		return fmt.Errorf("day index %d out of range [0,%d)", index, len(b.days))
	}
	b.days[index].Distance = distance
	return nil
}

// SetElevation replaces the elevation of one entry
func (b *Breakdown) SetElevation(index int, feet float64) error {
	if index < 0 || index >= len(b.days) {
		return fmt.Errorf("day index %d out of range [0,%d)", index, len(b.days))
	}
	b.days[index].Elevation = feet
	return nil
}

// SumDistances totals the daily distances; unparsable text counts as zero
func (b *Breakdown) SumDistances() float64 {
	var total float64
	for _, d := range b.days {
		total += d.Distance.FloatOrZero()
	}
	return total
}

// SumElevations totals the daily elevation gain
func (b *Breakdown) SumElevations() float64 {
	var total float64
	for _, d := range b.days {
		total += d.Elevation
	}
	return total
}

// Warnings compares the daily sums with the trip totals. A mismatch never
// blocks submission; it is only shown to the user. Totals that are not
// known yet (nil) are skipped.
func (b *Breakdown) Warnings(totalDistance, totalElevation *float64) []string {
	if !b.enabled {
		return nil
	}

	var warnings []string
	if totalDistance != nil {
		if sum := b.SumDistances(); !nearlyEqual(sum, *totalDistance) {
			warnings = append(warnings, fmt.Sprintf(
				"Daily distances add up to %s mi but the trail distance is %s mi",
				trip.FormatFloat(round2(sum)), trip.FormatFloat(*totalDistance)))
		}
	}
	if totalElevation != nil {
		if sum := b.SumElevations(); !nearlyEqual(sum, *totalElevation) {
			warnings = append(warnings, fmt.Sprintf(
				"Daily elevation adds up to %s ft but the total elevation is %s ft",
				trip.FormatFloat(round2(sum)), trip.FormatFloat(*totalElevation)))
		}
	}
	return warnings
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= sumTolerance
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
