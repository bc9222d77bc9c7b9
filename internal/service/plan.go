package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"hikerhunger/internal/trip"
)

var (
	// ErrCalculationFailed hides transport and decode failures from the user
	ErrCalculationFailed = errors.New("calculation failed")

	// ErrStaleResponse marks a response that a newer submission superseded
	ErrStaleResponse = errors.New("response superseded by a newer submission")
)

// Calculator is the transport to the calorie service
type Calculator interface {
	Calculate(ctx context.Context, query url.Values) (*trip.PlanResult, error)
}

// PlanService is the submission boundary. It owns the current PlanResult
// and only lets the latest submission replace it.
type PlanService struct {
	calc   Calculator
	logger *slog.Logger

	mu         sync.Mutex
	generation uint64
	inFlight   int
	result     *trip.PlanResult
}

// NewPlanService creates a new plan service
func NewPlanService(calc Calculator, logger *slog.Logger) *PlanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanService{calc: calc, logger: logger}
}

// Submit sends the inputs and, if this is still the newest submission,
// stores the returned plan. Any failure leaves the stored plan untouched
// and comes back as ErrCalculationFailed; a superseded response comes back
// as ErrStaleResponse whether it succeeded or not.
func (s *PlanService) Submit(ctx context.Context, in *trip.TripInputs) (*trip.PlanResult, error) {
	gen := s.begin()
	start := time.Now()

	plan, err := s.calc.Calculate(ctx, trip.BuildRequest(in))
	if err == nil && plan == nil {
		err = errors.New("empty plan")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--

	if gen != s.generation {
		s.logger.Info("dropping stale calorie response",
			"generation", gen,
			"latest", s.generation,
			"failed", err != nil,
		)
		return nil, ErrStaleResponse
	}

	if err != nil {
		s.logger.Error("calorie calculation failed",
			"generation", gen,
			"duration", time.Since(start),
			"error", err,
		)
		return nil, ErrCalculationFailed
	}

	s.result = plan
	s.logger.Info("calorie plan updated",
		"generation", gen,
		"duration", time.Since(start),
		"days", len(plan.DailyBreakdown),
		"total_calories", plan.TotalCalories,
	)
	return plan, nil
}

// Result returns the current plan, or nil before the first success
func (s *PlanService) Result() *trip.PlanResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Pending reports how many submissions are still waiting on the service
func (s *PlanService) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Reset discards the current plan. Responses still in flight are ignored.
func (s *PlanService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = nil
	s.generation++
}

func (s *PlanService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.inFlight++
	return s.generation
}
