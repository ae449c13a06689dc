package model

// ValueRange is an estimated annual value in whole pounds, Low <= High.
type ValueRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Claiming difficulty tiers.
const (
	DifficultyEasy     = "easy"
	DifficultyModerate = "moderate"
	DifficultyInvolved = "involved"
)

// SchemeDefinition is a static catalogue entry. Loaded once at start-up and
// never mutated.
type SchemeDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	IsGateway   bool   `json:"is_gateway"`

	ApplyMethod string `json:"apply_method"`
	ApplyURL    string `json:"apply_url,omitempty"`

	// FallbackValue is used when no heuristic formula and no external figure
	// exists for the scheme.
	FallbackValue ValueRange `json:"fallback_value"`

	// Nations lists where the scheme exists; empty means UK-wide.
	Nations []string `json:"nations,omitempty"`

	Documents []string `json:"documents,omitempty"`
	Timeline  string   `json:"timeline,omitempty"`
}

// AvailableIn reports whether the scheme exists in the given nation. An
// unreported nation never filters: partial data yields more candidates, not
// fewer.
func (d *SchemeDefinition) AvailableIn(nation string) bool {
	if nation == "" || len(d.Nations) == 0 {
		return true
	}
	for _, n := range d.Nations {
		if n == nation {
			return true
		}
	}
	return false
}

// DependencyEdge says that being awarded From is a practical precondition,
// or a strong enabler, for To. Only edges whose From is a gateway take part
// in cascading.
type DependencyEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
	// Auto marks dependents that are awarded automatically once the gateway
	// is in payment.
	Auto     bool `json:"auto,omitempty"`
	Critical bool `json:"critical,omitempty"`
}

// ConflictEdge marks two schemes as mutually exclusive in practice. The
// pair is unordered; Resolution is the generic guidance used when no
// pair-specific tie-break exists.
type ConflictEdge struct {
	Between    [2]string `json:"between"`
	Type       string    `json:"type"`
	Resolution string    `json:"resolution"`
}

// SituationDefinition maps a reported situation to the schemes worth
// screening for it. TimeCritical situations make the first action-plan
// phase urgent.
type SituationDefinition struct {
	ID           string   `json:"id"`
	Primary      []string `json:"primary"`
	Secondary    []string `json:"secondary,omitempty"`
	TimeCritical bool     `json:"time_critical,omitempty"`
}
