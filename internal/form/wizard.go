package form

import (
	"errors"
	"strconv"
	"strings"

	"hikerhunger/internal/trip"
)

// Step identifies where the advanced wizard is
type Step int

const (
	StepRequired Step = iota
	StepOptional
)

func (s Step) String() string {
	switch s {
	case StepRequired:
		return "required"
	case StepOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// ErrWrongStep is returned when an action is not available on the current step
var ErrWrongStep = errors.New("action not available on this step")

const blankSnapshot = "blank"

// Form is what the quick form and the wizard have in common
type Form interface {
	Set(f trip.Field, value string)
	Value(f trip.Field) string
	Submit() (*trip.TripInputs, error)
}

// Wizard is the two-step advanced form: required fields, then optional
// fields with the per-day breakdown.
type Wizard struct {
	step      Step
	store     *Store
	breakdown *Breakdown
}

// NewWizard creates a wizard on the required step with every field empty
func NewWizard() *Wizard {
	store, _ := NewStore(map[string]trip.Values{blankSnapshot: {}}, blankSnapshot)
	return &Wizard{
		step:      StepRequired,
		store:     store,
		breakdown: NewBreakdown(1),
	}
}

// Step returns the current step
func (w *Wizard) Step() Step {
	return w.step
}

// Set stores a field value. The trip duration only re-bounds the
// breakdown once the required step is left, so partial edits like "1"
// on the way to "15" never drop days.
func (w *Wizard) Set(f trip.Field, value string) {
	w.store.Set(f, value)
}

// Value returns the raw text of a field
func (w *Wizard) Value(f trip.Field) string {
	return w.store.Value(f)
}

// Breakdown returns the per-day sub-model owned by the optional step
func (w *Wizard) Breakdown() *Breakdown {
	return w.breakdown
}

// Next moves from the required step to the optional step. The only gate
// is that every required field has something in it.
func (w *Wizard) Next() error {
	if w.step != StepRequired {
		return ErrWrongStep
	}
	if missing := trip.MissingRequired(w.store.Values()); len(missing) > 0 {
		return &trip.MissingFieldError{Field: missing[0]}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(w.store.Value(trip.FieldTripDuration))); err == nil {
		w.breakdown.SetLimit(n)
	}
	w.step = StepOptional
	return nil
}

// Back returns to the required step without losing any data
func (w *Wizard) Back() error {
	if w.step != StepOptional {
		return ErrWrongStep
	}
	w.step = StepRequired
	return nil
}

// Warnings reports per-day sums that disagree with the trip totals
func (w *Wizard) Warnings() []string {
	return w.breakdown.Warnings(
		decimalPtr(w.store.Value(trip.FieldTrailDistance)),
		decimalPtr(w.store.Value(trip.FieldTotalElevation)),
	)
}

// Submit normalizes the collected values. It is only available on the
// optional step and does not reset the wizard afterwards.
func (w *Wizard) Submit() (*trip.TripInputs, error) {
	if w.step != StepOptional {
		return nil, ErrWrongStep
	}
	return trip.Normalize(w.store.Values(), w.breakdown.Entries())
}

// Restart begins a fresh lifecycle: empty fields, required step, new breakdown
func (w *Wizard) Restart() {
	_ = w.store.Reset(blankSnapshot)
	w.breakdown = NewBreakdown(1)
	w.step = StepRequired
}

func decimalPtr(text string) *float64 {
	v, ok := trip.Decimal(text).Float()
	if !ok {
		return nil
	}
	return &v
}
