package form

import (
	"fmt"

	"hikerhunger/internal/trip"
)

// TripType is the quick form's preset toggle
type TripType string

const (
	TripDay   TripType = "day"
	TripMulti TripType = "multi"
)

// Label returns the tab title for the trip type
func (t TripType) Label() string {
	if t == TripMulti {
		return "Multi-Day Trip"
	}
	return "Day Hike"
}

var quickPresets = map[string]trip.Values{
	string(TripDay):   {trip.FieldTripDuration: "1"},
	string(TripMulti): {trip.FieldTripDuration: "2"},
}

// QuickForm is the single-step form with day/multi-day presets
type QuickForm struct {
	store    *Store
	tripType TripType
}

// NewQuickForm creates a quick form on the day hike preset
func NewQuickForm() *QuickForm {
	store, _ := NewStore(quickPresets, string(TripDay))
	return &QuickForm{
		store:    store,
		tripType: TripDay,
	}
}

// TripType returns the active preset
func (q *QuickForm) TripType() TripType {
	return q.tripType
}

// SetTripType switches presets. Only the trip duration is rewritten;
// everything else the user typed is kept.
func (q *QuickForm) SetTripType(t TripType) error {
	preset, ok := quickPresets[string(t)]
	if !ok {
		return fmt.Errorf("unknown trip type %q", t)
	}
	q.tripType = t
	q.store.Set(trip.FieldTripDuration, preset[trip.FieldTripDuration])
	return nil
}

// ToggleTripType flips between day hike and multi-day
func (q *QuickForm) ToggleTripType() {
	if q.tripType == TripDay {
		_ = q.SetTripType(TripMulti)
	} else {
		_ = q.SetTripType(TripDay)
	}
}

// Reset restores the active preset's defaults, discarding all edits
func (q *QuickForm) Reset() {
	_ = q.store.Reset(string(q.tripType))
}

// Set stores a field value. The trip duration belongs to the preset and
// is ignored here.
func (q *QuickForm) Set(f trip.Field, value string) {
	if f == trip.FieldTripDuration {
		return
	}
	q.store.Set(f, value)
}

// Value returns the raw text of a field
func (q *QuickForm) Value(f trip.Field) string {
	return q.store.Value(f)
}

// Submit normalizes the form. The quick form never sends a breakdown.
func (q *QuickForm) Submit() (*trip.TripInputs, error) {
	return trip.Normalize(q.store.Values(), nil)
}

var (
	_ Form = (*QuickForm)(nil)
	_ Form = (*Wizard)(nil)
)
