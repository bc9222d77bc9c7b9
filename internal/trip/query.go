package trip

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names expected by the calorie service
const (
	ParamWeight              = "weight"
	ParamHeight              = "height"
	ParamAge                 = "age"
	ParamGender              = "gender"
	ParamActivityLevel       = "activityLevel"
	ParamTripDuration        = "tripDuration"
	ParamTrailDistance       = "trailDistance"
	ParamTotalElevation      = "totalElevation"
	ParamSeason              = "season"
	ParamDay                 = "day"
	ParamTrailDistanceByDay  = "trailDistanceByDay"
	ParamTotalElevationByDay = "totalElevationByDay"
	ParamAverageTemperature  = "averageTemperature"
	ParamMinTemperature      = "minTemperature"
	ParamMaxTemperature      = "maxTemperature"
	ParamPeakAltitude        = "peakAltitude"
	ParamPrecipitationChance = "precipitationChance"
	ParamBaseWeight          = "baseWeight"
	ParamWaterWeight         = "waterWeight"
	ParamHikerExperience     = "hikerExperience"
)

// RequiredParams are always present in a built request
var RequiredParams = []string{
	ParamWeight, ParamHeight, ParamAge, ParamGender, ParamActivityLevel,
	ParamTripDuration, ParamTrailDistance, ParamTotalElevation, ParamSeason,
}

// BuildRequest maps normalized inputs onto query parameters. Optional
// parameters are omitted entirely when unset; per-day sequences are sent
// as comma-joined lists only when a breakdown is attached.
func BuildRequest(in *TripInputs) url.Values {
	q := url.Values{}

	q.Set(ParamWeight, FormatFloat(in.Weight))
	q.Set(ParamHeight, strconv.Itoa(in.Height))
	q.Set(ParamAge, strconv.Itoa(in.Age))
	q.Set(ParamGender, string(in.Gender))
	q.Set(ParamActivityLevel, string(in.ActivityLevel))
	q.Set(ParamTripDuration, strconv.Itoa(in.TripDurationDays))
	q.Set(ParamTrailDistance, FormatFloat(in.TrailDistanceMiles))
	q.Set(ParamTotalElevation, FormatFloat(in.TotalElevationFeet))
	q.Set(ParamSeason, string(in.Season))

	if in.DayNumber != nil {
		q.Set(ParamDay, strconv.Itoa(*in.DayNumber))
	}
	if in.HasBreakdown() {
		q.Set(ParamTrailDistanceByDay, joinFloats(in.TrailDistanceByDay))
		q.Set(ParamTotalElevationByDay, joinFloats(in.ElevationByDay))
	}

	setFloat(q, ParamAverageTemperature, in.AverageTemperature)
	setFloat(q, ParamMinTemperature, in.MinTemperature)
	setFloat(q, ParamMaxTemperature, in.MaxTemperature)
	setFloat(q, ParamPeakAltitude, in.PeakAltitude)
	if in.PrecipitationChance != nil {
		q.Set(ParamPrecipitationChance, strconv.Itoa(*in.PrecipitationChance))
	}
	setFloat(q, ParamBaseWeight, in.BaseWeight)
	setFloat(q, ParamWaterWeight, in.WaterWeight)
	if in.HikerExperience != "" {
		q.Set(ParamHikerExperience, string(in.HikerExperience))
	}

	return q
}

func setFloat(q url.Values, key string, v *float64) {
	if v != nil {
		q.Set(key, FormatFloat(*v))
	}
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = FormatFloat(v)
	}
	return strings.Join(parts, ",")
}
