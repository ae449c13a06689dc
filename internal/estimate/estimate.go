// Package estimate computes annual value ranges for eligible schemes. A
// precise external figure wins outright; otherwise a scheme-specific
// heuristic over the rate table applies; otherwise the catalogue's
// fallback range; otherwise zero. Rounding to whole pounds happens once,
// at the end of each formula, never on intermediate values.
package estimate

import (
	"math"

	"benefits-engine/internal/catalogue"
	"benefits-engine/internal/model"
)

type formula func(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool)

var formulas = map[string]formula{
	model.SchemeUniversalCredit:         universalCredit,
	model.SchemePensionCredit:           pensionCredit,
	model.SchemeStatePension:            statePension,
	model.SchemeCarersAllowance:         carersAllowance,
	model.SchemeChildBenefit:            childBenefit,
	model.SchemePIP:                     personalIndependencePayment,
	model.SchemeAttendanceAllowance:     attendanceAllowance,
	model.SchemeFreeSchoolMeals:         freeSchoolMeals,
	model.SchemeHealthyStart:            healthyStart,
	model.SchemeSureStartMaternityGrant: sureStartGrant,
	model.SchemeWarmHomeDiscount:        warmHomeDiscount,
	model.SchemeColdWeatherPayment:      coldWeatherPayment,
	model.SchemeWinterFuelPayment:       winterFuelPayment,
	model.SchemeFreeTVLicence:           freeTVLicence,
	model.SchemeSocialBroadbandTariff:   socialBroadbandTariff,
	model.SchemeTaxFreeChildcare:        taxFreeChildcare,
	model.SchemeBereavementSupport:      bereavementSupport,
}

// Estimate resolves the annual value range for one scheme.
func Estimate(def *model.SchemeDefinition, person *model.PersonData, rates *catalogue.RateTable, ext *model.ExternalValuation) model.ValueRange {
	if f, ok := ext.FigureFor(def.ID); ok {
		v := round(f)
		return model.ValueRange{Low: v, High: v}
	}
	if formula, ok := formulas[def.ID]; ok {
		if v, ok := formula(person, rates); ok {
			return v
		}
	}
	if def.FallbackValue.High > 0 || def.FallbackValue.Low > 0 {
		return def.FallbackValue
	}
	return model.ValueRange{}
}

func round(x float64) int {
	return int(math.Round(x))
}

func flat(annual float64) (model.ValueRange, bool) {
	v := round(annual)
	return model.ValueRange{Low: v, High: v}, true
}

// universalCredit: maximum award from the standard allowance plus child
// elements, tapered by earnings when a weekly income figure exists. The
// low multiplier reflects the common case of a partial award once housing
// and deduction details land.
func universalCredit(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	monthly := r.Get(catalogue.RateUCStandardSingleMonthly)
	if model.Flag(p.HasPartner) {
		monthly = r.Get(catalogue.RateUCStandardCoupleMonthly)
	} else if p.Age != nil && *p.Age < 25 {
		monthly = r.Get(catalogue.RateUCStandardSingleU25Monthly)
	}

	if n := p.ChildCount(); n > 0 {
		monthly += r.Get(catalogue.RateUCChildFirstMonthly)
		monthly += float64(n-1) * r.Get(catalogue.RateUCChildMonthly)
	}

	maxAnnual := monthly * 12
	if maxAnnual <= 0 {
		return model.ValueRange{}, false
	}

	if p.WeeklyIncome != nil {
		reduced := math.Max(0, maxAnnual-r.Get(catalogue.RateUCTaper)**p.WeeklyIncome*52)
		return model.ValueRange{Low: round(reduced * 0.5), High: round(reduced)}, true
	}
	return model.ValueRange{Low: round(maxAnnual * 0.35), High: round(maxAnnual)}, true
}

// pensionCredit: the gap between weekly income and the guarantee level,
// annualised, with an asymmetric low multiplier for partial awards. With
// no weekly figure the formula abstains and the catalogue fallback range
// applies.
func pensionCredit(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	if p.WeeklyIncome == nil {
		return model.ValueRange{}, false
	}
	guarantee := r.Get(catalogue.RatePCGuaranteeSingleWeekly)
	if model.Flag(p.HasPartner) {
		guarantee = r.Get(catalogue.RatePCGuaranteeCoupleWeekly)
	}
	gap := math.Max(0, guarantee-*p.WeeklyIncome)
	return model.ValueRange{Low: round(gap * 52 * 0.6), High: round(gap * 52)}, true
}

// statePension: the full new rate annualised; the low end allows for a
// partial National Insurance record.
func statePension(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	full := r.Get(catalogue.RateStatePensionWeekly) * 52
	return model.ValueRange{Low: round(full * 0.75), High: round(full)}, true
}

func carersAllowance(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	return flat(r.Get(catalogue.RateCarersAllowanceWeekly) * 52)
}

// childBenefit: first child at the higher rate, each further child at the
// lower rate.
func childBenefit(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	n := p.ChildCount()
	if n == 0 {
		return model.ValueRange{}, false
	}
	weekly := r.Get(catalogue.RateChildBenefitFirstWeekly) +
		float64(n-1)*r.Get(catalogue.RateChildBenefitAdditionalWeekly)
	return flat(weekly * 52)
}

func personalIndependencePayment(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	return model.ValueRange{
		Low:  round(r.Get(catalogue.RatePIPStandardWeekly) * 52),
		High: round(r.Get(catalogue.RatePIPEnhancedWeekly) * 52),
	}, true
}

func attendanceAllowance(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	return model.ValueRange{
		Low:  round(r.Get(catalogue.RateAALowerWeekly) * 52),
		High: round(r.Get(catalogue.RateAAHigherWeekly) * 52),
	}, true
}

func freeSchoolMeals(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	n := 0
	if len(p.ChildrenAges) > 0 {
		for _, a := range p.ChildrenAges {
			if a >= 4 && a <= 18 {
				n++
			}
		}
	} else {
		n = p.ChildCount()
	}
	if n == 0 {
		return model.ValueRange{}, false
	}
	return flat(r.Get(catalogue.RateFSMAnnualPerChild) * float64(n))
}

// healthyStart: the standard weekly rate up to the doubled under-1 rate.
func healthyStart(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	return model.ValueRange{
		Low:  round(r.Get(catalogue.RateHealthyStartWeekly) * 52),
		High: round(r.Get(catalogue.RateHealthyStartUnder1Weekly) * 52),
	}, true
}

func sureStartGrant(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	return flat(r.Get(catalogue.RateSureStartGrant))
}

func warmHomeDiscount(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	return flat(r.Get(catalogue.RateWarmHomeDiscount))
}

// coldWeatherPayment: zero spells in a mild winter up to five in a hard
// one.
func coldWeatherPayment(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	return model.ValueRange{Low: 0, High: round(r.Get(catalogue.RateColdWeatherPerSpell) * 5)}, true
}

func winterFuelPayment(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	return model.ValueRange{
		Low:  round(r.Get(catalogue.RateWinterFuelLow)),
		High: round(r.Get(catalogue.RateWinterFuelHigh)),
	}, true
}

func freeTVLicence(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	return flat(r.Get(catalogue.RateTVLicenceAnnual))
}

func socialBroadbandTariff(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	return flat(r.Get(catalogue.RateBroadbandSavingMonthly) * 12)
}

// taxFreeChildcare: the per-child top-up cap scales with children under
// 12; most families use only part of it.
func taxFreeChildcare(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	n := p.ChildrenUnder(12)
	if n == 0 {
		return model.ValueRange{}, false
	}
	cap := r.Get(catalogue.RateTFCCapPerChildAnnual) * float64(n)
	return model.ValueRange{Low: round(cap * 0.25), High: round(cap)}, true
}

// bereavementSupport: lump sum plus the monthly run at the standard rate;
// the higher rate applies to claimants with children.
func bereavementSupport(p *model.PersonData, r *catalogue.RateTable) (model.ValueRange, bool) {
	months := r.Get(catalogue.RateBSPMonths)
	standard := r.Get(catalogue.RateBSPLumpSum) + months*r.Get(catalogue.RateBSPMonthly)
	high := standard
	if p.ChildCount() > 0 {
		high = r.Get(catalogue.RateBSPLumpSumHigher) + months*r.Get(catalogue.RateBSPMonthlyHigher)
	}
	return model.ValueRange{Low: round(standard), High: round(high)}, true
}
