package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"hikerhunger/internal/calorieapi"
	"hikerhunger/internal/form"
	"hikerhunger/internal/trip"
)

// fakeCalorieService answers with one day per requested trip day, or a
// 500 once failing is set. seen, when non-nil, gets every query.
func fakeCalorieService(t *testing.T, failing *atomic.Bool, seen func(url.Values)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			seen(r.URL.Query())
		}
		if r.URL.Path != calorieapi.CalculatePath {
			http.NotFound(w, r)
			return
		}
		if failing.Load() {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		for _, key := range trip.RequiredParams {
			if r.URL.Query().Get(key) == "" {
				http.Error(w, "missing "+key, http.StatusUnprocessableEntity)
				return
			}
		}

		days, _ := strconv.Atoi(r.URL.Query().Get(trip.ParamTripDuration))
		plan := trip.PlanResult{}
		for d := 1; d <= days; d++ {
			cal := 3000 + float64(d)*100
			plan.DailyBreakdown = append(plan.DailyBreakdown, trip.DailyResult{
				Day:         d,
				Calories:    cal,
				Macros:      trip.Macros{Carbs: 400, Fat: 110, Protein: 130},
				HikingHours: 6,
			})
			plan.TotalCalories += cal
			plan.TotalMacros.Carbs += 400
			plan.TotalMacros.Fat += 110
			plan.TotalMacros.Protein += 130
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(plan)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestQuickFormEndToEnd(t *testing.T) {
	var failing atomic.Bool
	srv := fakeCalorieService(t, &failing, nil)

	client := calorieapi.NewClient(calorieapi.Options{BaseURL: srv.URL, Logger: quietLogger()})
	svc := NewPlanService(client, quietLogger())

	q := form.NewQuickForm()
	if err := q.SetTripType(form.TripMulti); err != nil {
		t.Fatalf("SetTripType() error = %v", err)
	}
	q.Set(trip.FieldWeight, "160")
	q.Set(trip.FieldHeightFeet, "5")
	q.Set(trip.FieldHeightInches, "10")
	q.Set(trip.FieldAge, "33")
	q.Set(trip.FieldGender, "male")
	q.Set(trip.FieldActivityLevel, "moderately_active")
	q.Set(trip.FieldTrailDistance, "34")
	q.Set(trip.FieldTotalElevation, "5000")
	q.Set(trip.FieldSeason, "summer")

	in, err := q.Submit()
	if err != nil {
		t.Fatalf("QuickForm.Submit() error = %v", err)
	}

	plan, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("PlanService.Submit() error = %v", err)
	}

	view := Present(plan)
	if view.TotalDays != 2 {
		t.Errorf("TotalDays = %d, want 2", view.TotalDays)
	}
	// (3100 + 3200) / 2
	if view.DailyAverageCalories != 3150 {
		t.Errorf("DailyAverageCalories = %d, want 3150", view.DailyAverageCalories)
	}
	if view.TotalCalories != "6,300" {
		t.Errorf("TotalCalories = %q, want %q", view.TotalCalories, "6,300")
	}

	// A failing service leaves the plan alone and reports the generic error
	failing.Store(true)
	_, err = svc.Submit(context.Background(), in)
	if !errors.Is(err, ErrCalculationFailed) {
		t.Fatalf("Submit() error = %v, want ErrCalculationFailed", err)
	}
	if svc.Result() != plan {
		t.Error("failed submission replaced the stored plan")
	}
}

func TestWizardEndToEndWithBreakdown(t *testing.T) {
	var failing atomic.Bool
	var (
		mu   sync.Mutex
		last url.Values
	)
	srv := fakeCalorieService(t, &failing, func(q url.Values) {
		mu.Lock()
		last = q
		mu.Unlock()
	})

	client := calorieapi.NewClient(calorieapi.Options{BaseURL: srv.URL, Logger: quietLogger()})
	svc := NewPlanService(client, quietLogger())

	w := form.NewWizard()
	w.Set(trip.FieldWeight, "180.5")
	w.Set(trip.FieldHeightFeet, "6")
	w.Set(trip.FieldHeightInches, "1")
	w.Set(trip.FieldAge, "45")
	w.Set(trip.FieldGender, "female")
	w.Set(trip.FieldActivityLevel, "very_active")
	w.Set(trip.FieldTripDuration, "2")
	w.Set(trip.FieldTrailDistance, "34")
	w.Set(trip.FieldTotalElevation, "5000")
	w.Set(trip.FieldSeason, "fall")
	if err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	w.Set(trip.FieldHikerExperience, "beginner")
	b := w.Breakdown()
	b.SetEnabled(true)
	b.AddDay()
	_ = b.SetDistance(0, "11")
	_ = b.SetElevation(0, 1000)
	_ = b.SetDistance(1, "24")
	_ = b.SetElevation(1, 4000)

	if warnings := w.Warnings(); len(warnings) != 1 {
		t.Errorf("Warnings() = %v, want one distance mismatch", warnings)
	}

	in, err := w.Submit()
	if err != nil {
		t.Fatalf("Wizard.Submit() error = %v", err)
	}
	plan, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("PlanService.Submit() error = %v", err)
	}

	mu.Lock()
	gotDistances := last.Get(trip.ParamTrailDistanceByDay)
	gotElevations := last.Get(trip.ParamTotalElevationByDay)
	mu.Unlock()

	if gotDistances != "11,24" {
		t.Errorf("trailDistanceByDay = %q, want %q", gotDistances, "11,24")
	}
	if gotElevations != "1000,4000" {
		t.Errorf("totalElevationByDay = %q, want %q", gotElevations, "1000,4000")
	}
	if len(plan.DailyBreakdown) != 2 {
		t.Errorf("len(DailyBreakdown) = %d, want 2", len(plan.DailyBreakdown))
	}
}
