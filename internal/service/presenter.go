package service

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"hikerhunger/internal/trip"
)

// PlanView contains everything the results screen shows
type PlanView struct {
	TotalDays            int
	TotalCalories        string // "9,870"
	DailyAverageCalories int    // rounded, display only
	DailyAverage         string
	TotalMacros          MacroDisplay
	Days                 []DayDisplay

	// For charts
	CalorieSeries []float64
	HasChart      bool
}

// MacroDisplay is a formatted macro triple
type MacroDisplay struct {
	Carbs   string // "1,230g"
	Fat     string
	Protein string
}

// DayDisplay is one row of the per-day table
type DayDisplay struct {
	Day         int
	Calories    string
	Macros      MacroDisplay
	HikingHours string // "6.5 h"
}

// Present maps a plan onto display data. A nil plan yields the zero view.
func Present(p *trip.PlanResult) PlanView {
	if p == nil {
		return PlanView{}
	}

	view := PlanView{
		TotalDays:     len(p.DailyBreakdown),
		TotalCalories: formatCalories(p.TotalCalories),
		TotalMacros:   formatMacros(p.TotalMacros),
		Days:          make([]DayDisplay, len(p.DailyBreakdown)),
		CalorieSeries: make([]float64, len(p.DailyBreakdown)),
	}

	if view.TotalDays > 0 {
		view.DailyAverageCalories = int(roundHalfUp(p.TotalCalories / float64(view.TotalDays)))
	}
	view.DailyAverage = humanize.Comma(int64(view.DailyAverageCalories))

	for i, d := range p.DailyBreakdown {
		view.Days[i] = DayDisplay{
			Day:         d.Day,
			Calories:    formatCalories(d.Calories),
			Macros:      formatMacros(d.Macros),
			HikingHours: fmt.Sprintf("%.1f h", d.HikingHours),
		}
		view.CalorieSeries[i] = d.Calories
	}
	view.HasChart = view.TotalDays >= MinChartDays

	return view
}

// roundHalfUp rounds halves toward +Inf, so -2.5 becomes -2
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func formatCalories(kcal float64) string {
	return humanize.Comma(int64(roundHalfUp(kcal)))
}

func formatMacros(m trip.Macros) MacroDisplay {
	return MacroDisplay{
		Carbs:   formatGrams(m.Carbs),
		Fat:     formatGrams(m.Fat),
		Protein: formatGrams(m.Protein),
	}
}

func formatGrams(g float64) string {
	return humanize.Comma(int64(roundHalfUp(g))) + "g"
}
