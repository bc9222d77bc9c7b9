package trip

import (
	"errors"
	"testing"
)

func validValues() Values {
	return Values{
		FieldWeight:         "160",
		FieldHeightFeet:     "5",
		FieldHeightInches:   "10",
		FieldAge:            "33",
		FieldGender:         "male",
		FieldActivityLevel:  "moderately_active",
		FieldTripDuration:   "3",
		FieldTrailDistance:  "34",
		FieldTotalElevation: "5000",
		FieldSeason:         "summer",
	}
}

func TestNormalizeValid(t *testing.T) {
	in, err := Normalize(validValues(), nil)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if in.Weight != 160 {
		t.Errorf("Weight = %v, want 160", in.Weight)
	}
	if in.Height != 70 {
		t.Errorf("Height = %v, want 70", in.Height)
	}
	if in.Age != 33 {
		t.Errorf("Age = %v, want 33", in.Age)
	}
	if in.Gender != GenderMale {
		t.Errorf("Gender = %q, want %q", in.Gender, GenderMale)
	}
	if in.ActivityLevel != ActivityModeratelyActive {
		t.Errorf("ActivityLevel = %q, want %q", in.ActivityLevel, ActivityModeratelyActive)
	}
	if in.TripDurationDays != 3 {
		t.Errorf("TripDurationDays = %v, want 3", in.TripDurationDays)
	}
	if in.TrailDistanceMiles != 34 {
		t.Errorf("TrailDistanceMiles = %v, want 34", in.TrailDistanceMiles)
	}
	if in.TotalElevationFeet != 5000 {
		t.Errorf("TotalElevationFeet = %v, want 5000", in.TotalElevationFeet)
	}
	if in.Season != SeasonSummer {
		t.Errorf("Season = %q, want %q", in.Season, SeasonSummer)
	}

	// Nothing optional was set
	if in.DayNumber != nil || in.AverageTemperature != nil || in.BaseWeight != nil {
		t.Error("optional fields should be nil when unset")
	}
	if in.HasBreakdown() {
		t.Error("HasBreakdown() = true, want false")
	}
}

func TestNormalizeMissingRequired(t *testing.T) {
	for _, spec := range RequiredFields {
		// Height is only missing when both halves are blank
		if spec.Field == FieldHeightFeet || spec.Field == FieldHeightInches {
			continue
		}
		t.Run(string(spec.Field), func(t *testing.T) {
			v := validValues()
			delete(v, spec.Field)

			_, err := Normalize(v, nil)
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("Normalize() error = %v, want ErrMissingField", err)
			}
			var mf *MissingFieldError
			if !errors.As(err, &mf) {
				t.Fatalf("error %T is not *MissingFieldError", err)
			}
			if mf.Field != spec.Field {
				t.Errorf("MissingFieldError.Field = %q, want %q", mf.Field, spec.Field)
			}
		})
	}
}

func TestNormalizeInvalidRequired(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
	}{
		{"blank weight", FieldWeight, "   "},
		{"incomplete weight", FieldWeight, "."},
		{"text age", FieldAge, "thirty"},
		{"unknown gender", FieldGender, "robot"},
		{"unknown activity", FieldActivityLevel, "couch"},
		{"unknown season", FieldSeason, "monsoon"},
		{"decimal duration", FieldTripDuration, "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validValues()
			v[tt.field] = tt.value

			_, err := Normalize(v, nil)
			var mf *MissingFieldError
			if !errors.As(err, &mf) {
				t.Fatalf("Normalize() error = %v, want *MissingFieldError", err)
			}
			if mf.Field != tt.field {
				t.Errorf("Field = %q, want %q", mf.Field, tt.field)
			}
		})
	}
}

func TestDeriveHeight(t *testing.T) {
	tests := []struct {
		name      string
		feet      string
		inches    string
		want      int
		wantErr   error
		wantField Field
	}{
		{name: "5ft 10in", feet: "5", inches: "10", want: 70},
		{name: "6ft 0in", feet: "6", inches: "0", want: 72},
		{name: "blank inches counts as zero", feet: "6", inches: "", want: 72},
		{name: "inches only", feet: "", inches: "11", want: 11},
		{name: "zero height", feet: "0", inches: "0", wantErr: ErrOutOfRange, wantField: FieldHeight},
		{name: "both blank", feet: "", inches: "", wantErr: ErrMissingField, wantField: FieldHeight},
		{name: "garbage feet", feet: "five", inches: "10", wantErr: ErrMissingField, wantField: FieldHeightFeet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validValues()
			v[FieldHeightFeet] = tt.feet
			v[FieldHeightInches] = tt.inches

			in, err := Normalize(v, nil)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Normalize() error = %v, want %v", err, tt.wantErr)
				}
				var mf *MissingFieldError
				var re *RangeError
				switch {
				case errors.As(err, &mf):
					if mf.Field != tt.wantField {
						t.Errorf("Field = %q, want %q", mf.Field, tt.wantField)
					}
				case errors.As(err, &re):
					if re.Field != tt.wantField {
						t.Errorf("Field = %q, want %q", re.Field, tt.wantField)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if in.Height != tt.want {
				t.Errorf("Height = %d, want %d", in.Height, tt.want)
			}
		})
	}
}

func TestNormalizeRanges(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
	}{
		{"zero weight", FieldWeight, "0"},
		{"zero age", FieldAge, "0"},
		{"zero duration", FieldTripDuration, "0"},
		{"negative distance", FieldTrailDistance, "-1"},
		{"negative elevation", FieldTotalElevation, "-100"},
		{"precipitation over 100", FieldPrecipitationChance, "101"},
		{"negative base weight", FieldBaseWeight, "-2"},
		{"text temperature", FieldAverageTemperature, "warm"},
		{"unknown experience", FieldHikerExperience, "legend"},
		{"day zero", FieldDay, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validValues()
			v[tt.field] = tt.value

			_, err := Normalize(v, nil)
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("Normalize() error = %v, want *RangeError", err)
			}
			if re.Field != tt.field {
				t.Errorf("Field = %q, want %q", re.Field, tt.field)
			}
		})
	}
}

func TestNormalizeOptional(t *testing.T) {
	v := validValues()
	v[FieldDay] = "2"
	v[FieldAverageTemperature] = "-4.5"
	v[FieldPeakAltitude] = "12000"
	v[FieldPrecipitationChance] = "40"
	v[FieldBaseWeight] = "12.75"
	v[FieldWaterWeight] = ""
	v[FieldHikerExperience] = "advanced"

	in, err := Normalize(v, nil)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if in.DayNumber == nil || *in.DayNumber != 2 {
		t.Errorf("DayNumber = %v, want 2", in.DayNumber)
	}
	if in.AverageTemperature == nil || *in.AverageTemperature != -4.5 {
		t.Errorf("AverageTemperature = %v, want -4.5", in.AverageTemperature)
	}
	if in.PeakAltitude == nil || *in.PeakAltitude != 12000 {
		t.Errorf("PeakAltitude = %v, want 12000", in.PeakAltitude)
	}
	if in.PrecipitationChance == nil || *in.PrecipitationChance != 40 {
		t.Errorf("PrecipitationChance = %v, want 40", in.PrecipitationChance)
	}
	if in.BaseWeight == nil || *in.BaseWeight != 12.75 {
		t.Errorf("BaseWeight = %v, want 12.75", in.BaseWeight)
	}
	if in.WaterWeight != nil {
		t.Errorf("WaterWeight = %v, want nil for blank input", *in.WaterWeight)
	}
	if in.HikerExperience != ExperienceAdvanced {
		t.Errorf("HikerExperience = %q, want %q", in.HikerExperience, ExperienceAdvanced)
	}
	if in.MinTemperature != nil || in.MaxTemperature != nil {
		t.Error("unset temperatures should be nil")
	}
}

func TestNormalizeBreakdown(t *testing.T) {
	t.Run("one entry per day", func(t *testing.T) {
		days := []DayEntry{
			{Distance: "10", Elevation: 1000},
			{Distance: "12.5", Elevation: 2500},
			{Distance: "abc", Elevation: 1500},
		}
		in, err := Normalize(validValues(), days)
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		want := []float64{10, 12.5, 0}
		for i, d := range want {
			if in.TrailDistanceByDay[i] != d {
				t.Errorf("TrailDistanceByDay[%d] = %v, want %v", i, in.TrailDistanceByDay[i], d)
			}
		}
		if in.ElevationByDay[1] != 2500 {
			t.Errorf("ElevationByDay[1] = %v, want 2500", in.ElevationByDay[1])
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		days := []DayEntry{{Distance: "10", Elevation: 1000}}
		_, err := Normalize(validValues(), days)
		var re *RangeError
		if !errors.As(err, &re) {
			t.Fatalf("Normalize() error = %v, want *RangeError", err)
		}
		if re.Field != FieldTrailDistanceByDay {
			t.Errorf("Field = %q, want %q", re.Field, FieldTrailDistanceByDay)
		}
	})

	t.Run("sum mismatch does not block", func(t *testing.T) {
		days := []DayEntry{
			{Distance: "20", Elevation: 1000},
			{Distance: "20", Elevation: 1000},
			{Distance: "20", Elevation: 1000},
		}
		if _, err := Normalize(validValues(), days); err != nil {
			t.Errorf("Normalize() error = %v, want nil", err)
		}
	})
}

func TestMissingRequired(t *testing.T) {
	if got := MissingRequired(validValues()); len(got) != 0 {
		t.Errorf("MissingRequired() = %v, want none", got)
	}

	v := validValues()
	delete(v, FieldAge)
	v[FieldSeason] = "  "
	got := MissingRequired(v)
	if len(got) != 2 || got[0] != FieldAge || got[1] != FieldSeason {
		t.Errorf("MissingRequired() = %v, want [age season]", got)
	}
}
