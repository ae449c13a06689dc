package model

// Confidence tiers, strongest first.
const (
	ConfidenceLikely        = "likely"
	ConfidencePossible      = "possible"
	ConfidenceWorthChecking = "worth_checking"
)

// EligibilityResult is the evaluator's verdict for one scheme. Only
// eligible schemes are returned, so Eligible is true in practice; it is
// kept explicit so a rule can be read in isolation.
type EligibilityResult struct {
	ID         string `json:"id"`
	Eligible   bool   `json:"eligible"`
	Confidence string `json:"confidence"`
	Reason     string `json:"reason,omitempty"`
}

// Entitlement is the per-scheme output presented to the user.
type Entitlement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Value       ValueRange `json:"value"`
	Confidence  string     `json:"confidence"`
	Difficulty  string     `json:"difficulty"`
	ApplyMethod string     `json:"apply_method"`
	ApplyURL    string     `json:"apply_url,omitempty"`
	Documents   []string   `json:"documents,omitempty"`
	Timeline    string     `json:"timeline,omitempty"`
	// WhyThisMatters is set only on gateway schemes that unlock at least one
	// other eligible scheme.
	WhyThisMatters string `json:"why_this_matters,omitempty"`
}

// CascadedGroup holds the entitlements unlocked by one realized gateway.
// A dependent appears in at most one group system-wide.
type CascadedGroup struct {
	GatewayID    string        `json:"gateway_id"`
	GatewayName  string        `json:"gateway_name"`
	Entitlements []Entitlement `json:"entitlements"`
}

// ConflictResolution is guidance for a pair of mutually exclusive schemes
// where both members are independently eligible.
type ConflictResolution struct {
	OptionA        string `json:"option_a"`
	OptionB        string `json:"option_b"`
	Recommendation string `json:"recommendation"`
	Reasoning      string `json:"reasoning"`
}

// Action priorities.
const (
	PriorityCritical  = "critical"
	PriorityImportant = "important"
	PriorityWhenReady = "when_ready"
)

// ActionItem is one claim instruction in the action plan.
type ActionItem struct {
	EntitlementID   string `json:"entitlement_id"`
	EntitlementName string `json:"entitlement_name"`
	ActionText      string `json:"action_text"`
	Priority        string `json:"priority"`
}

// ActionPlanStep is a time phase of the action plan.
type ActionPlanStep struct {
	WeekLabel string       `json:"week_label"`
	Actions   []ActionItem `json:"actions"`
}

// Bundle is the root aggregate returned by the engine: the three
// entitlement partitions, conflict guidance, totals and the action plan.
// Built once per resolution and never mutated afterwards.
type Bundle struct {
	TotalValue              ValueRange           `json:"total_value"`
	GatewayEntitlements     []Entitlement        `json:"gateway_entitlements"`
	CascadedGroups          []CascadedGroup      `json:"cascaded_groups"`
	IndependentEntitlements []Entitlement        `json:"independent_entitlements"`
	Conflicts               []ConflictResolution `json:"conflicts"`
	ActionPlan              []ActionPlanStep     `json:"action_plan"`
}

// ExternalValuation is the sparse result of the optional valuation service:
// precise annual figures by scheme id, plus a sub-breakdown for the main
// means-tested credit when the service provides one. Zero and negative
// figures mean "not provided".
type ExternalValuation struct {
	Annual    map[string]float64 `json:"annual"`
	Breakdown *CreditBreakdown   `json:"breakdown,omitempty"`
}

// CreditBreakdown itemises a universal-credit award.
type CreditBreakdown struct {
	StandardAllowance float64 `json:"standard_allowance"`
	ChildElement      float64 `json:"child_element"`
	HousingElement    float64 `json:"housing_element"`
	CarerElement      float64 `json:"carer_element"`
	DisabilityElement float64 `json:"disability_element"`
	ChildcareElement  float64 `json:"childcare_element"`
}

// FigureFor returns the precise annual figure for a scheme, if the external
// service supplied a positive one.
func (v *ExternalValuation) FigureFor(schemeID string) (float64, bool) {
	if v == nil || v.Annual == nil {
		return 0, false
	}
	f, ok := v.Annual[schemeID]
	if !ok || f <= 0 {
		return 0, false
	}
	return f, true
}
