package model

// ScreeningResponse wraps a bundle with per-call metadata.
type ScreeningResponse struct {
	ScreeningMetadata ScreeningMetadata `json:"screening_metadata"`
	Bundle            Bundle            `json:"bundle"`
}

// ScreeningMetadata describes one resolution call.
type ScreeningMetadata struct {
	ScreeningID          string `json:"screening_id"`
	ScreeningStartedAt   string `json:"screening_started_at"`
	ScreeningCompletedAt string `json:"screening_completed_at"`
	ScreeningDurationMs  int64  `json:"screening_duration_ms"`
	SchemesConsidered    int    `json:"schemes_considered"`
	SchemesEligible      int    `json:"schemes_eligible"`
}

// ErrorResponse is the error envelope for malformed requests.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
