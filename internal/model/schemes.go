package model

// Scheme ids as they appear in the catalogue. Rules, estimator formulas and
// conflict tie-breaks dispatch on these.
const (
	SchemeUniversalCredit         = "universal_credit"
	SchemePensionCredit           = "pension_credit"
	SchemeStatePension            = "state_pension"
	SchemeCouncilTaxReduction     = "council_tax_reduction"
	SchemeFreeSchoolMeals         = "free_school_meals"
	SchemeHealthyStart            = "healthy_start"
	SchemeSureStartMaternityGrant = "sure_start_maternity_grant"
	SchemeNHSLowIncome            = "nhs_low_income_scheme"
	SchemeSocialBroadbandTariff   = "social_broadband_tariff"
	SchemeWarmHomeDiscount        = "warm_home_discount"
	SchemeColdWeatherPayment      = "cold_weather_payment"
	SchemeFreeTVLicence           = "free_tv_licence"
	SchemeChildBenefit            = "child_benefit"
	SchemeCarersAllowance         = "carers_allowance"
	SchemePIP                     = "personal_independence_payment"
	SchemeAttendanceAllowance     = "attendance_allowance"
	SchemeBereavementSupport      = "bereavement_support_payment"
	SchemeWinterFuelPayment       = "winter_fuel_payment"
	SchemeTaxFreeChildcare        = "tax_free_childcare"
)

// Situation ids recognised by the catalogue.
const (
	SituationJobLoss      = "job_loss"
	SituationLowIncome    = "low_income"
	SituationRetirement   = "retirement"
	SituationDisability   = "disability"
	SituationCaring       = "caring"
	SituationNewBaby      = "new_baby"
	SituationChildcare    = "childcare"
	SituationBereavement  = "bereavement"
	SituationHousingCosts = "housing_costs"
)
