package calorieapi

import (
	"bytes"
	"encoding/json"
	"errors"

	"hikerhunger/internal/trip"
)

// envelope is read first to tell the flat PlanResult apart from the
// older shape that nested it under total_calories next to input_parameters.
type envelope struct {
	TotalCalories json.RawMessage `json:"total_calories"`
}

// decodePlan parses a response body. legacy reports the deprecated nested envelope.
func decodePlan(body []byte) (plan *trip.PlanResult, legacy bool, err error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false, err
	}

	raw := bytes.TrimSpace(env.TotalCalories)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false, errors.New("response has no total_calories")
	}

	var p trip.PlanResult
	if raw[0] == '{' {
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, true, err
		}
		return &p, true, nil
	}

	if err := json.Unmarshal(body, &p); err != nil {
		return nil, false, err
	}
	return &p, false, nil
}
