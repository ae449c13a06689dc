package rules

import (
	"benefits-engine/internal/catalogue"
	"benefits-engine/internal/model"
)

// universalCredit: working age (18 inclusive to State Pension age
// exclusive; unreported age defaults to 30), capital at or below the UC
// limit, income band at most under_25000. Bands at or below under_12570 map
// directly onto real UC entitlement, so those are likely; the under_16190
// and under_25000 bands sit inside the taper where entitlement depends on
// housing costs and children we may not know, so confidence degrades.
func universalCredit(ctx *Context) Verdict {
	age := ctx.AgeOr(30)
	if age < 18 || age >= ctx.Rates.StatePensionAge() {
		return exclude()
	}
	if ctx.Person.Capital != nil && *ctx.Person.Capital > ctx.Rates.Get(catalogue.RateUCCapitalLimit) {
		return exclude()
	}

	band := ctx.Person.IncomeBand
	outOfWork := ctx.Person.EmploymentStatus == model.EmploymentUnemployed ||
		ctx.Person.EmploymentStatus == model.EmploymentUnableToWork

	switch {
	case model.BandAtMost(band, model.BandUnder12570):
		return include(model.ConfidenceLikely, "income is low enough for a full or near-full award")
	case band == model.BandUnder16190 && outOfWork:
		return include(model.ConfidenceLikely, "out of work with a low income")
	case band == model.BandUnder16190:
		return include(model.ConfidencePossible, "income sits inside the taper; award depends on housing costs and children")
	case band == model.BandUnder25000:
		return include(model.ConfidencePossible, "income is near the upper end of the taper")
	case band == "":
		return include(model.ConfidenceWorthChecking, "income not yet known")
	default:
		return exclude()
	}
}

// pensionCredit: State Pension age or over (inclusive; an unreported age is
// treated as under). The guarantee level tracks the under_12570 band; the
// under_16190 band can still qualify with housing costs, disability or
// caring.
func pensionCredit(ctx *Context) Verdict {
	if !ctx.OverPensionAge() {
		return exclude()
	}
	band := ctx.Person.IncomeBand
	switch {
	case model.BandAtMost(band, model.BandUnder12570):
		return include(model.ConfidenceLikely, "income is below the guarantee level")
	case band == model.BandUnder16190:
		return include(model.ConfidencePossible, "income is just above the guarantee level; extra amounts may still apply")
	case band == "":
		return include(model.ConfidencePossible, "income not yet known")
	case model.Flag(ctx.Person.Disabled) || model.Flag(ctx.Person.Carer):
		return include(model.ConfidenceWorthChecking, "disability or caring additions raise the qualifying level")
	default:
		return exclude()
	}
}

// councilTaxReduction: purely income-band driven; every council runs its
// own scheme so anything above the lowest bands is a possible, not a
// likely.
func councilTaxReduction(ctx *Context) Verdict {
	band := ctx.Person.IncomeBand
	switch {
	case model.BandAtMost(band, model.BandUnder12570):
		return include(model.ConfidenceLikely, "low income; most councils reduce the bill substantially")
	case model.BandAtMost(band, model.BandUnder25000):
		return include(model.ConfidencePossible, "depends on your council's scheme")
	case band == "":
		return include(model.ConfidenceWorthChecking, "income not yet known")
	default:
		return exclude()
	}
}

// nhsLowIncome: band at most under_12570 for full help (likely), the
// under_16190 band for partial help (possible). Capital above the scheme
// limit excludes.
func nhsLowIncome(ctx *Context) Verdict {
	if ctx.Person.Capital != nil && *ctx.Person.Capital > ctx.Rates.Get(catalogue.RateUCCapitalLimit) {
		return exclude()
	}
	band := ctx.Person.IncomeBand
	switch {
	case model.BandAtMost(band, model.BandUnder12570):
		return include(model.ConfidenceLikely, "low income qualifies for full help with health costs")
	case band == model.BandUnder16190:
		return include(model.ConfidencePossible, "may qualify for partial help")
	case band == "":
		return include(model.ConfidenceWorthChecking, "income not yet known")
	default:
		return exclude()
	}
}

// socialBroadbandTariff: providers require a qualifying means-tested
// benefit, which we cannot verify here, so nothing stronger than likely at
// the lowest band.
func socialBroadbandTariff(ctx *Context) Verdict {
	band := ctx.Person.IncomeBand
	switch {
	case model.BandAtMost(band, model.BandUnder7400):
		return include(model.ConfidenceLikely, "income low enough for the usual qualifying benefits")
	case model.BandAtMost(band, model.BandUnder16190):
		return include(model.ConfidencePossible, "qualifies if a means-tested benefit is in payment")
	case band == "" && (ctx.Situations[model.SituationJobLoss] || ctx.Situations[model.SituationLowIncome]):
		return include(model.ConfidenceWorthChecking, "may qualify once a means-tested benefit is in place")
	default:
		return exclude()
	}
}

// warmHomeDiscount: low income band; stronger for pension-age households
// who receive it automatically with Pension Credit.
func warmHomeDiscount(ctx *Context) Verdict {
	if !model.BandAtMost(ctx.Person.IncomeBand, model.BandUnder12570) {
		return exclude()
	}
	if ctx.OverPensionAge() {
		return include(model.ConfidenceLikely, "paid automatically alongside Pension Credit")
	}
	return include(model.ConfidencePossible, "depends on your energy supplier's scheme")
}

// coldWeatherPayment: requires a qualifying benefit and cold weather, so
// never more than possible.
func coldWeatherPayment(ctx *Context) Verdict {
	if !model.BandAtMost(ctx.Person.IncomeBand, model.BandUnder12570) {
		return exclude()
	}
	return include(model.ConfidencePossible, "paid automatically during cold spells while on a qualifying benefit")
}
