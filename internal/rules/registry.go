package rules

import "benefits-engine/internal/model"

// registry maps scheme id to its eligibility rule. Unregistered ids fall
// back to eligible at worth_checking in Evaluate.
var registry = map[string]Func{
	model.SchemeUniversalCredit:         universalCredit,
	model.SchemePensionCredit:           pensionCredit,
	model.SchemeStatePension:            statePension,
	model.SchemeCouncilTaxReduction:     councilTaxReduction,
	model.SchemeNHSLowIncome:            nhsLowIncome,
	model.SchemeSocialBroadbandTariff:   socialBroadbandTariff,
	model.SchemeWarmHomeDiscount:        warmHomeDiscount,
	model.SchemeColdWeatherPayment:      coldWeatherPayment,
	model.SchemeChildBenefit:            childBenefit,
	model.SchemeFreeSchoolMeals:         freeSchoolMeals,
	model.SchemeHealthyStart:            healthyStart,
	model.SchemeSureStartMaternityGrant: sureStartMaternityGrant,
	model.SchemeTaxFreeChildcare:        taxFreeChildcare,
	model.SchemeCarersAllowance:         carersAllowance,
	model.SchemePIP:                     personalIndependencePayment,
	model.SchemeAttendanceAllowance:     attendanceAllowance,
	model.SchemeBereavementSupport:      bereavementSupport,
	model.SchemeWinterFuelPayment:       winterFuelPayment,
	model.SchemeFreeTVLicence:           freeTVLicence,
}
