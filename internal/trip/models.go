package trip

// Gender is the biological sex used for basal metabolic rate
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel is the hiker's baseline activity outside of the trip
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtraActive      ActivityLevel = "extra_active"
)

// Season of the trip
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// HikerExperience is the self-reported experience level
type HikerExperience string

const (
	ExperienceBeginner     HikerExperience = "beginner"
	ExperienceIntermediate HikerExperience = "intermediate"
	ExperienceAdvanced     HikerExperience = "advanced"
	ExperienceExpert       HikerExperience = "expert"
)

// TripInputs is the normalized record sent to the calorie service.
// Optional values are nil (or empty) when the user never set them.
type TripInputs struct {
	// Required
	Weight             float64 // pounds
	Height             int     // total inches
	Age                int     // years
	Gender             Gender
	ActivityLevel      ActivityLevel
	TripDurationDays   int
	TrailDistanceMiles float64
	TotalElevationFeet float64
	Season             Season

	// Optional
	DayNumber           *int
	TrailDistanceByDay  []float64 // len == TripDurationDays when present
	ElevationByDay      []float64 // len == TripDurationDays when present
	AverageTemperature  *float64
	MinTemperature      *float64
	MaxTemperature      *float64
	PeakAltitude        *float64
	PrecipitationChance *int // 0-100
	BaseWeight          *float64
	WaterWeight         *float64
	HikerExperience     HikerExperience // empty when unset
}

// HasBreakdown returns true if a per-day breakdown is attached
func (t *TripInputs) HasBreakdown() bool {
	return t.TrailDistanceByDay != nil || t.ElevationByDay != nil
}

// Macros holds macronutrient targets in grams
type Macros struct {
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Protein float64 `json:"protein"`
}

// DailyResult is one trip day of the calculated plan
type DailyResult struct {
	Day         int     `json:"day"`
	Calories    float64 `json:"calories"`
	Macros      Macros  `json:"macros"`
	HikingHours float64 `json:"hiking_hours"`
}

// PlanResult is the calorie service response
type PlanResult struct {
	DailyBreakdown []DailyResult `json:"daily_breakdown"`
	TotalCalories  float64       `json:"total_calories"`
	TotalMacros    Macros        `json:"total_macros"`
}
