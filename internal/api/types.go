package api

import "fmt"

// Health is the service health report.
type Health struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// Stats describes the dataset behind the prediction model. Prices are in the
// service's native unit (lakhs); conversion for display is the UI's concern.
type Stats struct {
	TotalPlayers int     `json:"total_players"`
	AvgPrice     float64 `json:"avg_price"`
	MaxPrice     float64 `json:"max_price"`
	MinPrice     float64 `json:"min_price"`
	AvgAge       float64 `json:"avg_age"`
}

// PriceRange bounds a prediction, in the service's native unit.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Prediction is the service's valuation of a player.
type Prediction struct {
	PredictedPrice float64    `json:"predicted_price"`
	Confidence     float64    `json:"confidence"`
	PriceRange     PriceRange `json:"price_range"`
}

// ServiceError is a structured error payload returned by the service with a
// non-2xx status. Its message is surfaced to the user verbatim, unlike
// transport failures which get a generic message.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("service returned status %d", e.StatusCode)
}

// Response envelopes. The service wraps every payload in {success, ...}.

type healthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

type statsResponse struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}

type predictResponse struct {
	Success    bool       `json:"success"`
	Prediction Prediction `json:"prediction"`
}

type recordResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}

type uploadResponse struct {
	Success   bool           `json:"success"`
	Data      map[string]any `json:"data"`
	TotalRows int            `json:"total_rows"`
}

type errorResponse struct {
	Error string `json:"error"`
}
