package catalogue

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/rates.yaml
var ratesYAML []byte

// RateTable holds every numeric constant the estimator and the rules use,
// versioned by tax year. No rate is hard-coded outside this table.
type RateTable struct {
	TaxYear string             `yaml:"tax_year"`
	Rates   map[string]float64 `yaml:"rates"`
}

// Rate table keys.
const (
	RateStatePensionAge = "state_pension_age"

	RateUCStandardSingleU25Monthly = "uc_standard_allowance_single_u25_monthly"
	RateUCStandardSingleMonthly    = "uc_standard_allowance_single_monthly"
	RateUCStandardCoupleMonthly    = "uc_standard_allowance_couple_monthly"
	RateUCChildFirstMonthly        = "uc_child_element_first_monthly"
	RateUCChildMonthly             = "uc_child_element_monthly"
	RateUCTaper                    = "uc_taper_rate"
	RateUCCapitalLimit             = "uc_capital_limit"

	RatePCGuaranteeSingleWeekly = "pension_credit_guarantee_single_weekly"
	RatePCGuaranteeCoupleWeekly = "pension_credit_guarantee_couple_weekly"

	RateStatePensionWeekly = "state_pension_new_full_weekly"

	RateCarersAllowanceWeekly = "carers_allowance_weekly"

	RatePIPStandardWeekly = "pip_daily_living_standard_weekly"
	RatePIPEnhancedWeekly = "pip_daily_living_enhanced_weekly"

	RateAALowerWeekly  = "attendance_allowance_lower_weekly"
	RateAAHigherWeekly = "attendance_allowance_higher_weekly"

	RateChildBenefitFirstWeekly      = "child_benefit_first_weekly"
	RateChildBenefitAdditionalWeekly = "child_benefit_additional_weekly"

	RateFSMAnnualPerChild        = "free_school_meals_annual_per_child"
	RateHealthyStartWeekly       = "healthy_start_weekly"
	RateHealthyStartUnder1Weekly = "healthy_start_under_1_weekly"
	RateSureStartGrant           = "sure_start_maternity_grant"

	RateWarmHomeDiscount       = "warm_home_discount"
	RateColdWeatherPerSpell    = "cold_weather_payment_per_spell"
	RateWinterFuelLow          = "winter_fuel_payment_low"
	RateWinterFuelHigh         = "winter_fuel_payment_high"
	RateTVLicenceAnnual        = "tv_licence_annual"
	RateBroadbandSavingMonthly = "broadband_tariff_saving_monthly"

	RateTFCCapPerChildAnnual = "tfc_cap_per_child_annual"

	RateBSPLumpSum       = "bereavement_support_lump_sum"
	RateBSPMonthly       = "bereavement_support_monthly"
	RateBSPLumpSumHigher = "bereavement_support_lump_sum_higher"
	RateBSPMonthlyHigher = "bereavement_support_monthly_higher"
	RateBSPMonths        = "bereavement_support_months"
)

func loadRates() (*RateTable, error) {
	var t RateTable
	if err := yaml.Unmarshal(ratesYAML, &t); err != nil {
		return nil, fmt.Errorf("parse rate table: %w", err)
	}
	if t.TaxYear == "" {
		return nil, fmt.Errorf("rate table missing tax_year tag")
	}
	return &t, nil
}

// Get returns the named rate. A missing key returns zero; estimator
// formulas treat a zero rate as "no figure" and fall through to the
// catalogue fallback range.
func (t *RateTable) Get(key string) float64 {
	return t.Rates[key]
}

// StatePensionAge returns the state pension age as whole years.
func (t *RateTable) StatePensionAge() int {
	return int(t.Rates[RateStatePensionAge])
}
