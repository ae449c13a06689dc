// Package plan turns the cascade partition into a time-phased claim plan:
// gateways first, independents next, each cascaded group once its gateway
// is awarded. Phases are emitted only when non-empty.
package plan

import (
	"fmt"

	"benefits-engine/internal/model"
)

// Build synthesizes the action plan. timeCritical marks situations such as
// a sudden income loss, which pull the gateway phase forward and raise its
// priority to critical.
func Build(gateways []model.Entitlement, groups []model.CascadedGroup, independent []model.Entitlement, timeCritical bool) []model.ActionPlanStep {
	var steps []model.ActionPlanStep

	if len(gateways) > 0 {
		label, priority := "Week 1", model.PriorityImportant
		if timeCritical {
			label, priority = "This week", model.PriorityCritical
		}
		steps = append(steps, model.ActionPlanStep{
			WeekLabel: label,
			Actions:   actions(gateways, priority),
		})
	}

	if len(independent) > 0 {
		steps = append(steps, model.ActionPlanStep{
			WeekLabel: "Week 1-2",
			Actions:   actions(independent, model.PriorityImportant),
		})
	}

	for _, g := range groups {
		if len(g.Entitlements) == 0 {
			continue
		}
		steps = append(steps, model.ActionPlanStep{
			WeekLabel: fmt.Sprintf("After %s is awarded", g.GatewayName),
			Actions:   actions(g.Entitlements, model.PriorityWhenReady),
		})
	}

	return steps
}

func actions(entitlements []model.Entitlement, priority string) []model.ActionItem {
	out := make([]model.ActionItem, 0, len(entitlements))
	for _, e := range entitlements {
		out = append(out, model.ActionItem{
			EntitlementID:   e.ID,
			EntitlementName: e.Name,
			ActionText:      actionText(e),
			Priority:        priority,
		})
	}
	return out
}

func actionText(e model.Entitlement) string {
	switch e.ApplyMethod {
	case "online":
		if e.ApplyURL != "" {
			return fmt.Sprintf("Start your %s claim online at %s", e.Name, e.ApplyURL)
		}
		return fmt.Sprintf("Start your %s claim online", e.Name)
	case "phone":
		return fmt.Sprintf("Call to start your %s claim", e.Name)
	case "council":
		return fmt.Sprintf("Apply for %s through your local council", e.Name)
	case "automatic":
		return fmt.Sprintf("Check that %s will be paid automatically once your qualifying benefit is in place", e.Name)
	default:
		return fmt.Sprintf("Apply for %s", e.Name)
	}
}
