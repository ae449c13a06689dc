package rules

import "benefits-engine/internal/model"

// statePension: a known age at or above State Pension age (inclusive).
// Never included on a defaulted age.
func statePension(ctx *Context) Verdict {
	if !ctx.OverPensionAge() {
		return exclude()
	}
	return include(model.ConfidenceLikely, "at or over State Pension age")
}

// winterFuelPayment: State Pension age or over; withdrawn from the
// over_35000 band, paid otherwise.
func winterFuelPayment(ctx *Context) Verdict {
	if !ctx.OverPensionAge() {
		return exclude()
	}
	if ctx.Person.IncomeBand == model.BandOver35000 {
		return exclude()
	}
	return include(model.ConfidenceLikely, "paid to pension-age households below the income cap")
}

// freeTVLicence: 75 or over (inclusive); in practice it requires Pension
// Credit, so confidence follows the income band.
func freeTVLicence(ctx *Context) Verdict {
	if ctx.Person.Age == nil || *ctx.Person.Age < 75 {
		return exclude()
	}
	switch {
	case model.BandAtMost(ctx.Person.IncomeBand, model.BandUnder12570):
		return include(model.ConfidenceLikely, "Pension Credit at this income level carries the free licence")
	case ctx.Person.IncomeBand == "":
		return include(model.ConfidencePossible, "income not yet known; requires Pension Credit")
	default:
		return include(model.ConfidenceWorthChecking, "requires Pension Credit to be in payment")
	}
}
