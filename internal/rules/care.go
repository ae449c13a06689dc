package rules

import "benefits-engine/internal/model"

// carersAllowance: fires on any caring signal — the carer flag, a named
// cared-for person (the arrangement can attach to the subject or to a
// dependent such as an elderly parent), or the caring situation. 35 or
// more weekly hours (inclusive) is the real threshold; reported hours
// under it still include at worth_checking rather than excluding, and
// unknown hours land in between. Earnings above the limit degrade to
// possible.
func carersAllowance(ctx *Context) Verdict {
	caring := model.Flag(ctx.Person.Carer) ||
		ctx.Person.CaredFor != "" ||
		ctx.Situations[model.SituationCaring]
	if !caring {
		return exclude()
	}

	overEarningsLimit := ctx.Person.IncomeBand != "" &&
		!model.BandAtMost(ctx.Person.IncomeBand, model.BandUnder16190)

	switch {
	case ctx.Person.WeeklyCareHours != nil && *ctx.Person.WeeklyCareHours >= 35:
		if overEarningsLimit {
			return include(model.ConfidencePossible, "caring 35+ hours, but earnings may be over the limit")
		}
		return include(model.ConfidenceLikely, "caring 35 or more hours a week")
	case ctx.Person.WeeklyCareHours != nil:
		return include(model.ConfidenceWorthChecking, "reported hours are under the 35-hour threshold")
	default:
		if overEarningsLimit {
			return include(model.ConfidenceWorthChecking, "earnings may be over the limit")
		}
		return include(model.ConfidencePossible, "caring hours not yet known")
	}
}

// personalIndependencePayment: ages 16 (inclusive) to State Pension age
// (exclusive); unreported age defaults to 30. The points-based assessment
// cannot be screened from a flag, so a reported condition is a possible,
// not a likely.
func personalIndependencePayment(ctx *Context) Verdict {
	age := ctx.AgeOr(30)
	if age < 16 || age >= ctx.Rates.StatePensionAge() {
		return exclude()
	}
	switch {
	case model.Flag(ctx.Person.Disabled):
		return include(model.ConfidencePossible, "depends on the daily living and mobility assessment")
	case ctx.Situations[model.SituationDisability]:
		return include(model.ConfidenceWorthChecking, "a health condition was mentioned; worth an assessment check")
	default:
		return exclude()
	}
}

// attendanceAllowance: State Pension age or over (inclusive). Care needs
// at that age cannot be ruled out from the data we hold, so the rule
// includes at worth_checking even without a reported condition.
func attendanceAllowance(ctx *Context) Verdict {
	if !ctx.OverPensionAge() {
		return exclude()
	}
	if model.Flag(ctx.Person.Disabled) {
		return include(model.ConfidencePossible, "depends on the help needed with personal care")
	}
	return include(model.ConfidenceWorthChecking, "not means-tested; worth checking if any help with personal care is needed")
}

// bereavementSupport: under State Pension age only (exclusive; unreported
// age defaults to 30). Entitlement turns on the late partner's National
// Insurance record, which we cannot see.
func bereavementSupport(ctx *Context) Verdict {
	bereaved := model.Flag(ctx.Person.Bereaved) || ctx.Situations[model.SituationBereavement]
	if !bereaved {
		return exclude()
	}
	if ctx.AgeOr(30) >= ctx.Rates.StatePensionAge() {
		return exclude()
	}
	if model.Flag(ctx.Person.Bereaved) {
		return include(model.ConfidencePossible, "depends on your partner's National Insurance record")
	}
	return include(model.ConfidenceWorthChecking, "a bereavement was mentioned; check the 3-month full-rate window")
}
