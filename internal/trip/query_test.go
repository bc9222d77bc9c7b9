package trip

import (
	"testing"
)

func TestBuildRequestRequiredOnly(t *testing.T) {
	in, err := Normalize(validValues(), nil)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	q := BuildRequest(in)

	want := map[string]string{
		ParamWeight:         "160",
		ParamHeight:         "70",
		ParamAge:            "33",
		ParamGender:         "male",
		ParamActivityLevel:  "moderately_active",
		ParamTripDuration:   "3",
		ParamTrailDistance:  "34",
		ParamTotalElevation: "5000",
		ParamSeason:         "summer",
	}
	for _, key := range RequiredParams {
		if !q.Has(key) {
			t.Errorf("required param %q missing", key)
			continue
		}
		if got := q.Get(key); got != want[key] {
			t.Errorf("%s = %q, want %q", key, got, want[key])
		}
	}

	if len(q) != len(RequiredParams) {
		t.Errorf("len(query) = %d, want %d (no optional keys): %v", len(q), len(RequiredParams), q)
	}
}

func TestBuildRequestOptional(t *testing.T) {
	day := 2
	temp := -3.5
	precip := 0
	base := 11.25

	in := &TripInputs{
		Weight: 150.5, Height: 66, Age: 40, Gender: GenderFemale, ActivityLevel: ActivityVeryActive,
		TripDurationDays: 2, TrailDistanceMiles: 20.5, TotalElevationFeet: 3000, Season: SeasonFall,
		DayNumber:           &day,
		TrailDistanceByDay:  []float64{10, 10.5},
		ElevationByDay:      []float64{1000, 2000},
		AverageTemperature:  &temp,
		PrecipitationChance: &precip,
		BaseWeight:          &base,
		HikerExperience:     ExperienceExpert,
	}

	q := BuildRequest(in)

	tests := []struct {
		key  string
		want string
	}{
		{ParamWeight, "150.5"},
		{ParamTrailDistance, "20.5"},
		{ParamDay, "2"},
		{ParamTrailDistanceByDay, "10,10.5"},
		{ParamTotalElevationByDay, "1000,2000"},
		{ParamAverageTemperature, "-3.5"},
		{ParamPrecipitationChance, "0"},
		{ParamBaseWeight, "11.25"},
		{ParamHikerExperience, "expert"},
	}
	for _, tt := range tests {
		if got := q.Get(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}

	for _, absent := range []string{ParamMinTemperature, ParamMaxTemperature, ParamPeakAltitude, ParamWaterWeight} {
		if q.Has(absent) {
			t.Errorf("unset optional %q should be omitted, got %q", absent, q.Get(absent))
		}
	}
}

func TestBuildRequestWithoutBreakdown(t *testing.T) {
	in, err := Normalize(validValues(), nil)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	q := BuildRequest(in)
	if q.Has(ParamTrailDistanceByDay) || q.Has(ParamTotalElevationByDay) {
		t.Errorf("per-day params sent without a breakdown: %v", q)
	}
}
