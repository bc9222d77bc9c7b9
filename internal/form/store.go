package form

import (
	"fmt"
	"sort"

	"hikerhunger/internal/trip"
)

// Store holds the current text of every field. It performs no validation.
// Optional fields stay absent until the user sets them.
type Store struct {
	values    trip.Values
	snapshots map[string]trip.Values
}

// NewStore creates a store with named default snapshots. The store starts
// from the snapshot named initial, or empty if initial is "".
func NewStore(snapshots map[string]trip.Values, initial string) (*Store, error) {
	s := &Store{
		values:    trip.Values{},
		snapshots: make(map[string]trip.Values, len(snapshots)),
	}
	for name, v := range snapshots {
		s.snapshots[name] = v.Clone()
	}
	if initial != "" {
		if err := s.Reset(initial); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Set replaces the current value of one field
func (s *Store) Set(f trip.Field, value string) {
	s.values[f] = value
}

// Unset removes a field so it reads as never set
func (s *Store) Unset(f trip.Field) {
	delete(s.values, f)
}

// Get returns the raw text of a field
func (s *Store) Get(f trip.Field) (string, bool) {
	v, ok := s.values[f]
	return v, ok
}

// Value returns the raw text of a field, "" when unset
func (s *Store) Value(f trip.Field) string {
	return s.values[f]
}

// Reset restores the named default snapshot, discarding all edits
func (s *Store) Reset(name string) error {
	snap, ok := s.snapshots[name]
	if !ok {
		return fmt.Errorf("unknown snapshot %q (have %v)", name, s.snapshotNames())
	}
	s.values = snap.Clone()
	return nil
}

// Clear removes every value
func (s *Store) Clear() {
	s.values = trip.Values{}
}

// Values returns a copy of the current values
func (s *Store) Values() trip.Values {
	return s.values.Clone()
}

func (s *Store) snapshotNames() []string {
	names := make([]string, 0, len(s.snapshots))
	for n := range s.snapshots {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
