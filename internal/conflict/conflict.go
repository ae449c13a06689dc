// Package conflict emits guidance for pairs of mutually exclusive schemes
// where both members are eligible. Most pairs return the generic resolution
// text carried on the conflict edge; a small fixed set of pairs has bespoke
// tie-break logic registered by normalized id pair, mirroring how the rule
// registry dispatches by scheme id.
package conflict

import (
	"fmt"

	"benefits-engine/internal/catalogue"
	"benefits-engine/internal/model"
)

// Resolver resolves conflicts against the loaded catalogue.
type Resolver struct {
	Rates      *catalogue.RateTable
	Definition func(id string) *model.SchemeDefinition
}

type tieBreak func(r *Resolver, person *model.PersonData, ext *model.ExternalValuation) model.ConflictResolution

// tieBreaks is keyed by "a|b" with a < b lexicographically, so resolution
// is insensitive to the order the edge lists the pair in.
var tieBreaks = map[string]tieBreak{
	pairKey(model.SchemeTaxFreeChildcare, model.SchemeUniversalCredit): childcareVsCredit,
	pairKey(model.SchemePensionCredit, model.SchemeUniversalCredit):    pensionVsWorkingAgeCredit,
	pairKey(model.SchemePIP, model.SchemeAttendanceAllowance):          disabilityByAge,
	pairKey(model.SchemeCarersAllowance, model.SchemeStatePension):     carerVsStatePension,
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// Resolve returns one resolution per conflict edge whose both members are
// eligible. Output order follows the edge list, so it is deterministic.
func (r *Resolver) Resolve(eligibleIDs []string, edges []model.ConflictEdge, person *model.PersonData, ext *model.ExternalValuation) []model.ConflictResolution {
	eligible := make(map[string]bool, len(eligibleIDs))
	for _, id := range eligibleIDs {
		eligible[id] = true
	}

	var out []model.ConflictResolution
	for _, e := range edges {
		a, b := e.Between[0], e.Between[1]
		if !eligible[a] || !eligible[b] {
			continue
		}
		if b < a {
			a, b = b, a
		}
		if tb, ok := tieBreaks[pairKey(a, b)]; ok {
			out = append(out, tb(r, person, ext))
			continue
		}
		out = append(out, model.ConflictResolution{
			OptionA:   a,
			OptionB:   b,
			Reasoning: e.Resolution,
		})
	}
	return out
}

func (r *Resolver) name(id string) string {
	if d := r.Definition(id); d != nil {
		return d.Name
	}
	return id
}

// childcareVsCredit: Tax-Free Childcare against the Universal Credit
// childcare element. With a precise childcare-element figure from the
// external valuation, compare it numerically against the Tax-Free
// Childcare cap scaled by children under 12 and recommend whichever nets
// more, stating both figures. Without one, recommend by income band
// relative to the break-even point: at or below under_16190 the 85%
// childcare element almost always beats the 25% top-up.
func childcareVsCredit(r *Resolver, person *model.PersonData, ext *model.ExternalValuation) model.ConflictResolution {
	res := model.ConflictResolution{
		OptionA: model.SchemeTaxFreeChildcare,
		OptionB: model.SchemeUniversalCredit,
	}
	ucName := r.name(model.SchemeUniversalCredit)
	tfcName := r.name(model.SchemeTaxFreeChildcare)

	if ext != nil && ext.Breakdown != nil && ext.Breakdown.ChildcareElement > 0 {
		element := ext.Breakdown.ChildcareElement
		tfcCap := r.Rates.Get(catalogue.RateTFCCapPerChildAnnual) * float64(person.ChildrenUnder(12))
		if element >= tfcCap {
			res.Recommendation = model.SchemeUniversalCredit
			res.Reasoning = fmt.Sprintf(
				"The %s childcare element is worth about £%.0f a year for you, against a maximum £%.0f from %s — claim the childcare element.",
				ucName, element, tfcCap, tfcName)
		} else {
			res.Recommendation = model.SchemeTaxFreeChildcare
			res.Reasoning = fmt.Sprintf(
				"%s can top up to £%.0f a year for you, against about £%.0f from the %s childcare element — use %s.",
				tfcName, tfcCap, element, ucName, tfcName)
		}
		return res
	}

	if model.BandAtMost(person.IncomeBand, model.BandUnder16190) || person.IncomeBand == "" {
		res.Recommendation = model.SchemeUniversalCredit
		res.Reasoning = fmt.Sprintf(
			"At your income level the %s childcare element, which covers 85%% of childcare costs, almost always pays more than the 25%% %s top-up.",
			ucName, tfcName)
	} else {
		res.Recommendation = model.SchemeTaxFreeChildcare
		res.Reasoning = fmt.Sprintf(
			"Above the %s taper your award shrinks quickly, so the %s top-up usually nets more.",
			ucName, tfcName)
	}
	return res
}

// pensionVsWorkingAgeCredit: decided purely by age against State Pension
// age.
func pensionVsWorkingAgeCredit(r *Resolver, person *model.PersonData, ext *model.ExternalValuation) model.ConflictResolution {
	res := model.ConflictResolution{
		OptionA: model.SchemePensionCredit,
		OptionB: model.SchemeUniversalCredit,
	}
	spa := r.Rates.StatePensionAge()
	if person.Age != nil && *person.Age >= spa {
		res.Recommendation = model.SchemePensionCredit
		res.Reasoning = fmt.Sprintf("You are over State Pension age (%d), so %s is the right claim; %s is for working-age households.",
			spa, r.name(model.SchemePensionCredit), r.name(model.SchemeUniversalCredit))
	} else {
		res.Recommendation = model.SchemeUniversalCredit
		res.Reasoning = fmt.Sprintf("Under State Pension age (%d) the claim is %s; %s starts once you reach it.",
			spa, r.name(model.SchemeUniversalCredit), r.name(model.SchemePensionCredit))
	}
	return res
}

// disabilityByAge: PIP before State Pension age, Attendance Allowance from
// it.
func disabilityByAge(r *Resolver, person *model.PersonData, ext *model.ExternalValuation) model.ConflictResolution {
	res := model.ConflictResolution{
		OptionA: model.SchemeAttendanceAllowance,
		OptionB: model.SchemePIP,
	}
	spa := r.Rates.StatePensionAge()
	if person.Age != nil && *person.Age >= spa {
		res.Recommendation = model.SchemeAttendanceAllowance
		res.Reasoning = fmt.Sprintf("New disability claims from State Pension age (%d) go through %s rather than %s.",
			spa, r.name(model.SchemeAttendanceAllowance), r.name(model.SchemePIP))
	} else {
		res.Recommendation = model.SchemePIP
		res.Reasoning = fmt.Sprintf("Under State Pension age (%d) the claim is %s; it can continue past pension age once awarded.",
			spa, r.name(model.SchemePIP))
	}
	return res
}

// carerVsStatePension: always recommend claiming Carer's Allowance even
// though the overlapping-benefit rules may stop the cash payment — the
// underlying entitlement unlocks passported support (the carer addition
// and carer premiums) that is often worth more than the payment itself.
// This is a deliberate exception to recommending the larger amount.
func carerVsStatePension(r *Resolver, person *model.PersonData, ext *model.ExternalValuation) model.ConflictResolution {
	return model.ConflictResolution{
		OptionA:        model.SchemeCarersAllowance,
		OptionB:        model.SchemeStatePension,
		Recommendation: model.SchemeCarersAllowance,
		Reasoning: fmt.Sprintf(
			"Claim %s even though it may not be paid on top of your %s: an 'underlying entitlement' unlocks carer additions in Pension Credit and Housing Benefit that are usually worth more than the payment itself.",
			r.name(model.SchemeCarersAllowance), r.name(model.SchemeStatePension)),
	}
}
