// Package rules is the eligibility evaluator: one deterministic rule per
// scheme id, dispatched through a registry. A scheme with no registered
// rule defaults to eligible at worth_checking — the policy bias is to
// over-include and let a person check, never to silently drop a scheme.
package rules

import (
	"benefits-engine/internal/catalogue"
	"benefits-engine/internal/model"
)

// Context carries everything a rule may consult. Rules never mutate it.
type Context struct {
	Person     *model.PersonData
	Situations map[string]bool
	Rates      *catalogue.RateTable
}

// AgeOr returns the reported age, or def when age was not reported.
// Working-age rules default to 30; pension-age rules must not use this —
// an unreported age never puts someone over State Pension age.
func (c *Context) AgeOr(def int) int {
	if c.Person.Age != nil {
		return *c.Person.Age
	}
	return def
}

// OverPensionAge reports a known age at or above State Pension age.
// Unreported age is treated as below.
func (c *Context) OverPensionAge() bool {
	return c.Person.Age != nil && *c.Person.Age >= c.Rates.StatePensionAge()
}

// Verdict is a rule's decision for one scheme.
type Verdict struct {
	Eligible   bool
	Confidence string
	Reason     string
}

// Func is a pure eligibility rule.
type Func func(ctx *Context) Verdict

func include(confidence, reason string) Verdict {
	return Verdict{Eligible: true, Confidence: confidence, Reason: reason}
}

func exclude() Verdict {
	return Verdict{}
}

// Evaluate applies each candidate's rule and returns results for the
// eligible schemes only. Input order is preserved so downstream tie-breaks
// on catalogue order stay deterministic.
func Evaluate(candidates []*model.SchemeDefinition, person *model.PersonData, situationIDs []string, rates *catalogue.RateTable) []model.EligibilityResult {
	ctx := &Context{
		Person:     person,
		Situations: make(map[string]bool, len(situationIDs)),
		Rates:      rates,
	}
	for _, id := range situationIDs {
		ctx.Situations[id] = true
	}

	var out []model.EligibilityResult
	for _, def := range candidates {
		rule, ok := registry[def.ID]
		if !ok {
			out = append(out, model.EligibilityResult{
				ID:         def.ID,
				Eligible:   true,
				Confidence: model.ConfidenceWorthChecking,
				Reason:     "no screening rule for this scheme; included for manual checking",
			})
			continue
		}
		v := rule(ctx)
		if !v.Eligible {
			continue
		}
		out = append(out, model.EligibilityResult{
			ID:         def.ID,
			Eligible:   true,
			Confidence: v.Confidence,
			Reason:     v.Reason,
		})
	}
	return out
}
