package trip

import (
	"fmt"
	"strconv"
	"strings"
)

// Values holds raw field text keyed by field. A missing key means the
// user never set the field.
type Values map[Field]string

// Get returns the trimmed text for f, or "" if unset
func (v Values) Get(f Field) string {
	return strings.TrimSpace(v[f])
}

// Clone returns an independent copy
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// DayEntry is one row of the per-day breakdown
type DayEntry struct {
	Distance  Decimal // miles
	Elevation float64 // feet
}

// MissingRequired lists required inputs that are blank, in display order
func MissingRequired(v Values) []Field {
	var out []Field
	for _, s := range RequiredFields {
		if v.Get(s.Field) == "" {
			out = append(out, s.Field)
		}
	}
	return out
}

// Normalize converts raw field text into TripInputs. days is the per-day
// breakdown and must be nil when the breakdown is disabled.
// Required fields that are blank or unparsable fail with
// *MissingFieldError; values outside their domain fail with *RangeError.
func Normalize(v Values, days []DayEntry) (*TripInputs, error) {
	var in TripInputs
	var err error

	if in.Weight, err = requiredDecimal(v, FieldWeight); err != nil {
		return nil, err
	}
	if in.Weight <= 0 {
		return nil, outOfRange(FieldWeight, v.Get(FieldWeight), "must be positive")
	}

	if in.Height, err = deriveHeight(v); err != nil {
		return nil, err
	}

	if in.Age, err = requiredInt(v, FieldAge); err != nil {
		return nil, err
	}
	if in.Age <= 0 {
		return nil, outOfRange(FieldAge, v.Get(FieldAge), "must be positive")
	}

	gender, err := requiredEnum(v, FieldGender)
	if err != nil {
		return nil, err
	}
	in.Gender = Gender(gender)

	activity, err := requiredEnum(v, FieldActivityLevel)
	if err != nil {
		return nil, err
	}
	in.ActivityLevel = ActivityLevel(activity)

	if in.TripDurationDays, err = requiredInt(v, FieldTripDuration); err != nil {
		return nil, err
	}
	if in.TripDurationDays < 1 {
		return nil, outOfRange(FieldTripDuration, v.Get(FieldTripDuration), "must be at least 1 day")
	}

	if in.TrailDistanceMiles, err = requiredDecimal(v, FieldTrailDistance); err != nil {
		return nil, err
	}
	if in.TrailDistanceMiles < 0 {
		return nil, outOfRange(FieldTrailDistance, v.Get(FieldTrailDistance), "must not be negative")
	}

	if in.TotalElevationFeet, err = requiredDecimal(v, FieldTotalElevation); err != nil {
		return nil, err
	}
	if in.TotalElevationFeet < 0 {
		return nil, outOfRange(FieldTotalElevation, v.Get(FieldTotalElevation), "must not be negative")
	}

	season, err := requiredEnum(v, FieldSeason)
	if err != nil {
		return nil, err
	}
	in.Season = Season(season)

	if err := normalizeOptional(v, &in); err != nil {
		return nil, err
	}

	if days != nil {
		if err := normalizeBreakdown(days, &in); err != nil {
			return nil, err
		}
	}

	return &in, nil
}

func normalizeOptional(v Values, in *TripInputs) error {
	var err error

	if in.DayNumber, err = optionalInt(v, FieldDay); err != nil {
		return err
	}
	if in.DayNumber != nil && *in.DayNumber < 1 {
		return outOfRange(FieldDay, v.Get(FieldDay), "must be at least 1")
	}

	// Temperatures may be negative
	if in.AverageTemperature, err = optionalDecimal(v, FieldAverageTemperature); err != nil {
		return err
	}
	if in.MinTemperature, err = optionalDecimal(v, FieldMinTemperature); err != nil {
		return err
	}
	if in.MaxTemperature, err = optionalDecimal(v, FieldMaxTemperature); err != nil {
		return err
	}

	for _, p := range []struct {
		field Field
		dst   **float64
	}{
		{FieldPeakAltitude, &in.PeakAltitude},
		{FieldBaseWeight, &in.BaseWeight},
		{FieldWaterWeight, &in.WaterWeight},
	} {
		if *p.dst, err = optionalDecimal(v, p.field); err != nil {
			return err
		}
		if *p.dst != nil && **p.dst < 0 {
			return outOfRange(p.field, v.Get(p.field), "must not be negative")
		}
	}

	if in.PrecipitationChance, err = optionalInt(v, FieldPrecipitationChance); err != nil {
		return err
	}
	if p := in.PrecipitationChance; p != nil && (*p < 0 || *p > 100) {
		return outOfRange(FieldPrecipitationChance, v.Get(FieldPrecipitationChance), "must be between 0 and 100")
	}

	if text := v.Get(FieldHikerExperience); text != "" {
		spec, _ := Spec(FieldHikerExperience)
		if !spec.HasOption(text) {
			return outOfRange(FieldHikerExperience, text, "is not a known experience level")
		}
		in.HikerExperience = HikerExperience(text)
	}

	return nil
}

func normalizeBreakdown(days []DayEntry, in *TripInputs) error {
	if len(days) != in.TripDurationDays {
		return outOfRange(FieldTrailDistanceByDay, strconv.Itoa(len(days)),
			fmt.Sprintf("needs one entry per trip day (%d)", in.TripDurationDays))
	}

	in.TrailDistanceByDay = make([]float64, len(days))
	in.ElevationByDay = make([]float64, len(days))
	for i, d := range days {
		in.TrailDistanceByDay[i] = d.Distance.FloatOrZero()
		if in.TrailDistanceByDay[i] < 0 {
			return outOfRange(FieldTrailDistanceByDay, string(d.Distance), fmt.Sprintf("for day %d must not be negative", i+1))
		}
		if d.Elevation < 0 {
			return outOfRange(FieldElevationByDay, FormatFloat(d.Elevation), fmt.Sprintf("for day %d must not be negative", i+1))
		}
		in.ElevationByDay[i] = d.Elevation
	}
	return nil
}

// deriveHeight computes total inches from feet and inches. Height counts as
// missing only when both parts are blank; a blank part is zero otherwise.
func deriveHeight(v Values) (int, error) {
	feetText, inchText := v.Get(FieldHeightFeet), v.Get(FieldHeightInches)
	if feetText == "" && inchText == "" {
		return 0, missing(FieldHeight, "")
	}

	parts := [2]int{}
	for i, p := range []struct {
		field Field
		text  string
	}{{FieldHeightFeet, feetText}, {FieldHeightInches, inchText}} {
		if p.text == "" {
			continue
		}
		n, err := strconv.Atoi(p.text)
		if err != nil {
			return 0, missing(p.field, p.text)
		}
		parts[i] = n
	}

	total := parts[0]*12 + parts[1]
	if total <= 0 {
		return 0, outOfRange(FieldHeight, strconv.Itoa(total), "must be a positive number of inches")
	}
	return total, nil
}

func requiredDecimal(v Values, f Field) (float64, error) {
	text := v.Get(f)
	n, ok := Decimal(text).Float()
	if !ok {
		return 0, missing(f, text)
	}
	return n, nil
}

func requiredInt(v Values, f Field) (int, error) {
	text := v.Get(f)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, missing(f, text)
	}
	return n, nil
}

func requiredEnum(v Values, f Field) (string, error) {
	text := v.Get(f)
	spec, _ := Spec(f)
	if !spec.HasOption(text) {
		return "", missing(f, text)
	}
	return text, nil
}

func optionalDecimal(v Values, f Field) (*float64, error) {
	text := v.Get(f)
	if text == "" {
		return nil, nil
	}
	n, ok := Decimal(text).Float()
	if !ok {
		return nil, outOfRange(f, text, "is not a number")
	}
	return &n, nil
}

func optionalInt(v Values, f Field) (*int, error) {
	text := v.Get(f)
	if text == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, outOfRange(f, text, "is not a whole number")
	}
	return &n, nil
}
