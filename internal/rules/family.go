package rules

import "benefits-engine/internal/model"

// childBenefit: any child qualifies; the high income charge starts inside
// the over_35000 band, so that band degrades rather than excludes.
func childBenefit(ctx *Context) Verdict {
	if ctx.Person.ChildCount() == 0 {
		return exclude()
	}
	if ctx.Person.IncomeBand == model.BandOver35000 {
		return include(model.ConfidenceWorthChecking, "the high income charge may claw some or all of it back")
	}
	return include(model.ConfidenceLikely, "paid for every child under 16, or under 20 in education")
}

// freeSchoolMeals: a school-age child (4 to 18 inclusive when ages are
// known) and income at or below the £7,400 threshold band. The next band up
// is kept at worth_checking because of transitional protection and infant
// universal meals. Unknown child ages degrade likely to possible.
func freeSchoolMeals(ctx *Context) Verdict {
	if !ctx.Person.HasChildBetween(4, 18) {
		return exclude()
	}
	agesKnown := len(ctx.Person.ChildrenAges) > 0

	band := ctx.Person.IncomeBand
	switch {
	case band == model.BandUnder7400:
		if !agesKnown {
			return include(model.ConfidencePossible, "qualifies if a child is school age")
		}
		return include(model.ConfidenceLikely, "income is below the qualifying threshold")
	case band == model.BandUnder12570:
		return include(model.ConfidenceWorthChecking, "slightly above the threshold; transitional protection may apply")
	case band == "" && (ctx.Situations[model.SituationJobLoss] || ctx.Situations[model.SituationLowIncome]):
		return include(model.ConfidenceWorthChecking, "income not yet known")
	default:
		return exclude()
	}
}

// healthyStart: pregnancy or a child under 4 (exclusive), plus a low income
// band. Unknown child ages degrade likely to possible.
func healthyStart(ctx *Context) Verdict {
	qualifies := model.Flag(ctx.Person.Pregnant) || ctx.Person.HasChildUnder(4)
	if !qualifies {
		return exclude()
	}
	agesKnown := model.Flag(ctx.Person.Pregnant) || len(ctx.Person.ChildrenAges) > 0

	band := ctx.Person.IncomeBand
	switch {
	case band == model.BandUnder7400:
		if !agesKnown {
			return include(model.ConfidencePossible, "qualifies if a child is under 4")
		}
		return include(model.ConfidenceLikely, "low income with a young child or a pregnancy")
	case band == model.BandUnder12570:
		return include(model.ConfidencePossible, "close to the qualifying income level")
	case band == "":
		return include(model.ConfidenceWorthChecking, "income not yet known")
	default:
		return exclude()
	}
}

// sureStartMaternityGrant: pregnancy, normally for a first child only; a
// further pregnancy with existing children is kept at worth_checking for
// the multiple-birth exception.
func sureStartMaternityGrant(ctx *Context) Verdict {
	if !model.Flag(ctx.Person.Pregnant) {
		return exclude()
	}
	if !model.BandAtMost(ctx.Person.IncomeBand, model.BandUnder12570) && ctx.Person.IncomeBand != "" {
		return exclude()
	}
	if ctx.Person.ChildCount() > 0 {
		return include(model.ConfidenceWorthChecking, "normally first children only, but multiple births can still qualify")
	}
	if ctx.Person.IncomeBand == "" {
		return include(model.ConfidenceWorthChecking, "income not yet known; needs a qualifying benefit")
	}
	return include(model.ConfidencePossible, "needs a qualifying benefit to be in payment")
}

// taxFreeChildcare: a child under 12 (exclusive) and someone in the
// household meeting the work condition. Deliberately not excluded for low
// bands even though Universal Credit usually pays more there — the choice
// between the two is the conflict resolver's job, so the user sees the
// reasoning instead of a silent drop.
func taxFreeChildcare(ctx *Context) Verdict {
	if !ctx.Person.HasChildUnder(12) {
		return exclude()
	}
	switch {
	case ctx.Person.EmploymentStatus == model.EmploymentEmployed ||
		ctx.Person.EmploymentStatus == model.EmploymentSelfEmployed:
		return include(model.ConfidenceLikely, "in work with a child under 12")
	case model.Flag(ctx.Person.HasPartner):
		return include(model.ConfidencePossible, "a working partner can meet the work condition")
	default:
		return include(model.ConfidenceWorthChecking, "needs someone in the household meeting the work condition")
	}
}
