package trip

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names a form input. Values double as query parameter names
// wherever the input maps 1:1 onto the request.
type Field string

const (
	FieldWeight         Field = "weight"
	FieldHeightFeet     Field = "heightFeet"
	FieldHeightInches   Field = "heightInches"
	FieldAge            Field = "age"
	FieldGender         Field = "gender"
	FieldActivityLevel  Field = "activityLevel"
	FieldTripDuration   Field = "tripDuration"
	FieldTrailDistance  Field = "trailDistance"
	FieldTotalElevation Field = "totalElevation"
	FieldSeason         Field = "season"

	FieldDay                 Field = "day"
	FieldAverageTemperature  Field = "averageTemperature"
	FieldMinTemperature      Field = "minTemperature"
	FieldMaxTemperature      Field = "maxTemperature"
	FieldPeakAltitude        Field = "peakAltitude"
	FieldPrecipitationChance Field = "precipitationChance"
	FieldBaseWeight          Field = "baseWeight"
	FieldWaterWeight         Field = "waterWeight"
	FieldHikerExperience     Field = "hikerExperience"

	// Derived or sub-model values, never typed directly
	FieldHeight             Field = "height"
	FieldTrailDistanceByDay Field = "trailDistanceByDay"
	FieldElevationByDay     Field = "totalElevationByDay"
)

// Kind determines how a field's text is parsed
type Kind int

const (
	KindDecimal Kind = iota
	KindInteger
	KindEnum
)

// FieldSpec describes one input: how it is labelled, parsed and bounded
type FieldSpec struct {
	Field    Field
	Label    string
	Unit     string
	Help     string
	Kind     Kind
	Required bool
	Options  []string // KindEnum only

	// Input-time bounds. Signed fields accept negatives and ignore Min.
	Signed bool
	Min    float64
	Max    float64
	HasMax bool
}

// RequiredFields are the inputs every form must collect, in display order
var RequiredFields = []FieldSpec{
	{Field: FieldWeight, Label: "Weight", Unit: "lbs", Kind: KindDecimal, Required: true,
		Help: "Your current body weight in pounds"},
	{Field: FieldHeightFeet, Label: "Height (ft)", Unit: "ft", Kind: KindInteger, Required: true,
		Max: 8, HasMax: true, Help: "Your height in feet and inches"},
	{Field: FieldHeightInches, Label: "Height (in)", Unit: "in", Kind: KindInteger, Required: true,
		Max: 11, HasMax: true, Help: "Your height in feet and inches"},
	{Field: FieldAge, Label: "Age", Unit: "years", Kind: KindInteger, Required: true},
	{Field: FieldGender, Label: "Gender", Kind: KindEnum, Required: true,
		Options: []string{string(GenderMale), string(GenderFemale), string(GenderOther)},
		Help:    "Your gender affects basal metabolic rate calculations"},
	{Field: FieldActivityLevel, Label: "Activity Level", Kind: KindEnum, Required: true,
		Options: []string{
			string(ActivitySedentary), string(ActivityLightlyActive), string(ActivityModeratelyActive),
			string(ActivityVeryActive), string(ActivityExtraActive),
		},
		Help: "Sedentary: little or no exercise. Lightly: 1-3 days/week. Moderately: 3-5 days/week. Very: 6-7 days/week. Extra: hard exercise and physical job"},
	{Field: FieldTripDuration, Label: "Trip Duration", Unit: "days", Kind: KindInteger, Required: true, Min: 1},
	{Field: FieldTrailDistance, Label: "Trail Distance", Unit: "mi", Kind: KindDecimal, Required: true,
		Help: "Total distance of your hiking trail in miles"},
	{Field: FieldTotalElevation, Label: "Total Elevation", Unit: "ft", Kind: KindDecimal, Required: true,
		Help: "Total elevation gain during your hike in feet"},
	{Field: FieldSeason, Label: "Season", Kind: KindEnum, Required: true,
		Options: []string{string(SeasonSpring), string(SeasonSummer), string(SeasonFall), string(SeasonWinter)},
		Help:    "The season affects temperature and weather conditions"},
}

// OptionalFields are collected on the advanced wizard's second step
var OptionalFields = []FieldSpec{
	{Field: FieldDay, Label: "Day Number", Kind: KindInteger, Min: 1},
	{Field: FieldAverageTemperature, Label: "Average Temperature", Unit: "°F", Kind: KindDecimal, Signed: true,
		Help: "Expected average temperature during your hike"},
	{Field: FieldMinTemperature, Label: "Min Temperature", Unit: "°F", Kind: KindDecimal, Signed: true},
	{Field: FieldMaxTemperature, Label: "Max Temperature", Unit: "°F", Kind: KindDecimal, Signed: true},
	{Field: FieldPeakAltitude, Label: "Peak Altitude", Unit: "ft", Kind: KindDecimal,
		Help: "Highest elevation you'll reach during the hike"},
	{Field: FieldPrecipitationChance, Label: "Precipitation Chance", Unit: "%", Kind: KindInteger,
		Max: 100, HasMax: true, Help: "Probability of rain or snow during your hike"},
	{Field: FieldBaseWeight, Label: "Base Weight", Unit: "lbs", Kind: KindDecimal,
		Help: "Pack weight without food and water: backpack, shelter, sleeping bag and pad, cooking gear"},
	{Field: FieldWaterWeight, Label: "Water Weight", Unit: "lbs", Kind: KindDecimal,
		Help: "1 liter of water = 2.2 lbs. Plan for 2-4 liters per day"},
	{Field: FieldHikerExperience, Label: "Hiker Experience", Kind: KindEnum,
		Options: []string{
			string(ExperienceBeginner), string(ExperienceIntermediate),
			string(ExperienceAdvanced), string(ExperienceExpert),
		},
		Help: "Beginner: first few hikes. Intermediate: regular hiker. Advanced: experienced. Expert: professional or guide"},
}

var specsByField = func() map[Field]FieldSpec {
	m := make(map[Field]FieldSpec, len(RequiredFields)+len(OptionalFields))
	for _, s := range RequiredFields {
		m[s.Field] = s
	}
	for _, s := range OptionalFields {
		m[s.Field] = s
	}
	return m
}()

var derivedLabels = map[Field]string{
	FieldHeight:             "Height",
	FieldTrailDistanceByDay: "Daily Trail Distance",
	FieldElevationByDay:     "Daily Elevation Gain",
}

// Spec returns the catalog entry for a field
func Spec(f Field) (FieldSpec, bool) {
	s, ok := specsByField[f]
	return s, ok
}

// Label returns a human readable name for the field
func (f Field) Label() string {
	if s, ok := specsByField[f]; ok {
		return s.Label
	}
	if l, ok := derivedLabels[f]; ok {
		return l
	}
	return string(f)
}

// ValidateInput checks text as it is being typed. It accepts partial
// numbers and blanks; bounds are enforced once the text parses.
func (s FieldSpec) ValidateInput(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var v float64
	switch s.Kind {
	case KindEnum:
		return nil
	case KindInteger:
		if text == "-" && s.Signed {
			return nil
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("%s must be a whole number", s.Label)
		}
		v = float64(n)
	case KindDecimal:
		d, err := ParseDecimal(text)
		if err != nil {
			return fmt.Errorf("%s must be a number", s.Label)
		}
		f, ok := d.Float()
		if !ok {
			return nil // still typing
		}
		v = f
	}

	if !s.Signed && v < s.Min {
		return fmt.Errorf("%s must be at least %s", s.Label, FormatFloat(s.Min))
	}
	if s.HasMax && v > s.Max {
		return fmt.Errorf("%s must be at most %s", s.Label, FormatFloat(s.Max))
	}
	return nil
}

// HasOption returns true if value is one of the enum options
func (s FieldSpec) HasOption(value string) bool {
	for _, o := range s.Options {
		if o == value {
			return true
		}
	}
	return false
}
