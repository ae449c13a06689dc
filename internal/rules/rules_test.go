package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefits-engine/internal/catalogue"
	"benefits-engine/internal/model"
)

func intp(v int) *int { return &v }

func f64p(v float64) *float64 { return &v }

func boolp(v bool) *bool { return &v }

func loadRates(t *testing.T) *catalogue.RateTable {
	t.Helper()
	cat, err := catalogue.Load(nil)
	require.NoError(t, err)
	return cat.Rates
}

// evalOne runs a single scheme through Evaluate and returns its result, or
// nil when the scheme was excluded.
func evalOne(t *testing.T, id string, person model.PersonData, situations ...string) *model.EligibilityResult {
	t.Helper()
	candidates := []*model.SchemeDefinition{{ID: id}}
	out := Evaluate(candidates, &person, situations, loadRates(t))
	if len(out) == 0 {
		return nil
	}
	require.Len(t, out, 1)
	return &out[0]
}

func TestDefaultRule(t *testing.T) {
	// Unregistered schemes are included for manual checking, never dropped.
	res := evalOne(t, "experimental_local_grant", model.PersonData{})
	require.NotNil(t, res)
	assert.True(t, res.Eligible)
	assert.Equal(t, model.ConfidenceWorthChecking, res.Confidence)
}

func TestUniversalCredit(t *testing.T) {
	cases := []struct {
		name       string
		person     model.PersonData
		situations []string
		want       string // "" means excluded
	}{
		{"lowest band likely", model.PersonData{Age: intp(35), IncomeBand: model.BandUnder7400}, nil, model.ConfidenceLikely},
		{"age 18 boundary included", model.PersonData{Age: intp(18), IncomeBand: model.BandUnder7400}, nil, model.ConfidenceLikely},
		{"age 17 excluded", model.PersonData{Age: intp(17), IncomeBand: model.BandUnder7400}, nil, ""},
		{"pension age excluded", model.PersonData{Age: intp(66), IncomeBand: model.BandUnder7400}, nil, ""},
		{"age 65 boundary included", model.PersonData{Age: intp(65), IncomeBand: model.BandUnder7400}, nil, model.ConfidenceLikely},
		{"unknown age defaults to working age", model.PersonData{IncomeBand: model.BandUnder7400}, nil, model.ConfidenceLikely},
		{"capital over limit excluded", model.PersonData{Age: intp(35), IncomeBand: model.BandUnder7400, Capital: f64p(16001)}, nil, ""},
		{"capital at limit included", model.PersonData{Age: intp(35), IncomeBand: model.BandUnder7400, Capital: f64p(16000)}, nil, model.ConfidenceLikely},
		{"taper band out of work likely", model.PersonData{Age: intp(35), IncomeBand: model.BandUnder16190, EmploymentStatus: model.EmploymentUnemployed}, nil, model.ConfidenceLikely},
		{"taper band in work possible", model.PersonData{Age: intp(35), IncomeBand: model.BandUnder16190, EmploymentStatus: model.EmploymentEmployed}, nil, model.ConfidencePossible},
		{"upper taper possible", model.PersonData{Age: intp(35), IncomeBand: model.BandUnder25000}, nil, model.ConfidencePossible},
		{"high income excluded", model.PersonData{Age: intp(35), IncomeBand: model.BandOver35000}, nil, ""},
		{"unknown income worth checking", model.PersonData{Age: intp(35)}, nil, model.ConfidenceWorthChecking},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := evalOne(t, model.SchemeUniversalCredit, tc.person, tc.situations...)
			if tc.want == "" {
				assert.Nil(t, res)
				return
			}
			require.NotNil(t, res)
			assert.Equal(t, tc.want, res.Confidence)
		})
	}
}

func TestPensionCredit(t *testing.T) {
	t.Run("pension age low income likely", func(t *testing.T) {
		res := evalOne(t, model.SchemePensionCredit, model.PersonData{Age: intp(66), IncomeBand: model.BandUnder12570})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidenceLikely, res.Confidence)
	})
	t.Run("age 65 excluded", func(t *testing.T) {
		assert.Nil(t, evalOne(t, model.SchemePensionCredit, model.PersonData{Age: intp(65), IncomeBand: model.BandUnder12570}))
	})
	t.Run("unknown age never pension age", func(t *testing.T) {
		assert.Nil(t, evalOne(t, model.SchemePensionCredit, model.PersonData{IncomeBand: model.BandUnder12570}))
	})
	t.Run("just above guarantee possible", func(t *testing.T) {
		res := evalOne(t, model.SchemePensionCredit, model.PersonData{Age: intp(70), IncomeBand: model.BandUnder16190})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidencePossible, res.Confidence)
	})
	t.Run("higher income with caring worth checking", func(t *testing.T) {
		res := evalOne(t, model.SchemePensionCredit, model.PersonData{Age: intp(70), IncomeBand: model.BandUnder25000, Carer: boolp(true)})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidenceWorthChecking, res.Confidence)
	})
}

func TestCarersAllowance(t *testing.T) {
	t.Run("35 hours inclusive threshold", func(t *testing.T) {
		res := evalOne(t, model.SchemeCarersAllowance, model.PersonData{Carer: boolp(true), WeeklyCareHours: f64p(35), IncomeBand: model.BandUnder12570})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidenceLikely, res.Confidence)
	})
	t.Run("under hours threshold still included", func(t *testing.T) {
		res := evalOne(t, model.SchemeCarersAllowance, model.PersonData{Carer: boolp(true), WeeklyCareHours: f64p(34.5)})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidenceWorthChecking, res.Confidence)
	})
	t.Run("unknown hours possible", func(t *testing.T) {
		res := evalOne(t, model.SchemeCarersAllowance, model.PersonData{Carer: boolp(true), IncomeBand: model.BandUnder12570})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidencePossible, res.Confidence)
	})
	t.Run("cared-for dependent without carer flag", func(t *testing.T) {
		// The caring arrangement can attach to a named dependent such as an
		// elderly parent.
		res := evalOne(t, model.SchemeCarersAllowance, model.PersonData{CaredFor: "parent", WeeklyCareHours: f64p(40), IncomeBand: model.BandUnder12570})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidenceLikely, res.Confidence)
	})
	t.Run("earnings over limit degrade", func(t *testing.T) {
		res := evalOne(t, model.SchemeCarersAllowance, model.PersonData{Carer: boolp(true), WeeklyCareHours: f64p(40), IncomeBand: model.BandUnder25000})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidencePossible, res.Confidence)
	})
	t.Run("no caring signal excluded", func(t *testing.T) {
		assert.Nil(t, evalOne(t, model.SchemeCarersAllowance, model.PersonData{IncomeBand: model.BandUnder7400}))
	})
	t.Run("situation alone includes", func(t *testing.T) {
		res := evalOne(t, model.SchemeCarersAllowance, model.PersonData{IncomeBand: model.BandUnder12570}, model.SituationCaring)
		require.NotNil(t, res)
	})
}

func TestDisabilityPair(t *testing.T) {
	t.Run("pip working age with condition", func(t *testing.T) {
		res := evalOne(t, model.SchemePIP, model.PersonData{Age: intp(30), Disabled: boolp(true)})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidencePossible, res.Confidence)
	})
	t.Run("pip excluded at pension age", func(t *testing.T) {
		assert.Nil(t, evalOne(t, model.SchemePIP, model.PersonData{Age: intp(66), Disabled: boolp(true)}))
	})
	t.Run("pip situation only worth checking", func(t *testing.T) {
		res := evalOne(t, model.SchemePIP, model.PersonData{Age: intp(30)}, model.SituationDisability)
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidenceWorthChecking, res.Confidence)
	})
	t.Run("attendance allowance needs pension age", func(t *testing.T) {
		assert.Nil(t, evalOne(t, model.SchemeAttendanceAllowance, model.PersonData{Age: intp(60), Disabled: boolp(true)}))
	})
	t.Run("attendance allowance without reported condition", func(t *testing.T) {
		res := evalOne(t, model.SchemeAttendanceAllowance, model.PersonData{Age: intp(70)})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidenceWorthChecking, res.Confidence)
	})
}

func TestBereavementSupport(t *testing.T) {
	t.Run("working age possible", func(t *testing.T) {
		res := evalOne(t, model.SchemeBereavementSupport, model.PersonData{Age: intp(40), Bereaved: boolp(true)})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidencePossible, res.Confidence)
	})
	t.Run("pension age excluded", func(t *testing.T) {
		assert.Nil(t, evalOne(t, model.SchemeBereavementSupport, model.PersonData{Age: intp(67), Bereaved: boolp(true)}))
	})
	t.Run("situation only worth checking", func(t *testing.T) {
		res := evalOne(t, model.SchemeBereavementSupport, model.PersonData{Age: intp(40)}, model.SituationBereavement)
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidenceWorthChecking, res.Confidence)
	})
}

func TestFreeSchoolMeals(t *testing.T) {
	t.Run("school age child below threshold", func(t *testing.T) {
		res := evalOne(t, model.SchemeFreeSchoolMeals, model.PersonData{IncomeBand: model.BandUnder7400, ChildrenAges: []int{8}})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidenceLikely, res.Confidence)
	})
	t.Run("just above threshold degrades", func(t *testing.T) {
		res := evalOne(t, model.SchemeFreeSchoolMeals, model.PersonData{IncomeBand: model.BandUnder12570, ChildrenAges: []int{8}})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidenceWorthChecking, res.Confidence)
	})
	t.Run("toddler only excluded", func(t *testing.T) {
		assert.Nil(t, evalOne(t, model.SchemeFreeSchoolMeals, model.PersonData{IncomeBand: model.BandUnder7400, ChildrenAges: []int{2}}))
	})
	t.Run("unknown ages degrade to possible", func(t *testing.T) {
		res := evalOne(t, model.SchemeFreeSchoolMeals, model.PersonData{IncomeBand: model.BandUnder7400, Children: intp(1)})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidencePossible, res.Confidence)
	})
	t.Run("no children excluded", func(t *testing.T) {
		assert.Nil(t, evalOne(t, model.SchemeFreeSchoolMeals, model.PersonData{IncomeBand: model.BandUnder7400}))
	})
}

func TestChildBenefit(t *testing.T) {
	res := evalOne(t, model.SchemeChildBenefit, model.PersonData{Children: intp(2), IncomeBand: model.BandUnder25000})
	require.NotNil(t, res)
	assert.Equal(t, model.ConfidenceLikely, res.Confidence)

	res = evalOne(t, model.SchemeChildBenefit, model.PersonData{Children: intp(2), IncomeBand: model.BandOver35000})
	require.NotNil(t, res)
	assert.Equal(t, model.ConfidenceWorthChecking, res.Confidence)

	assert.Nil(t, evalOne(t, model.SchemeChildBenefit, model.PersonData{IncomeBand: model.BandUnder7400}))
}

func TestTaxFreeChildcareNotExcludedAtLowIncome(t *testing.T) {
	// Both childcare schemes may evaluate eligible; the conflict resolver
	// owns the choice between them.
	res := evalOne(t, model.SchemeTaxFreeChildcare, model.PersonData{
		IncomeBand:       model.BandUnder7400,
		ChildrenAges:     []int{3},
		EmploymentStatus: model.EmploymentEmployed,
	})
	require.NotNil(t, res)
	assert.Equal(t, model.ConfidenceLikely, res.Confidence)
}

func TestPensionAgeExtras(t *testing.T) {
	t.Run("winter fuel below cap", func(t *testing.T) {
		res := evalOne(t, model.SchemeWinterFuelPayment, model.PersonData{Age: intp(70), IncomeBand: model.BandUnder12570})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidenceLikely, res.Confidence)
	})
	t.Run("winter fuel withdrawn at top band", func(t *testing.T) {
		assert.Nil(t, evalOne(t, model.SchemeWinterFuelPayment, model.PersonData{Age: intp(70), IncomeBand: model.BandOver35000}))
	})
	t.Run("tv licence needs 75", func(t *testing.T) {
		assert.Nil(t, evalOne(t, model.SchemeFreeTVLicence, model.PersonData{Age: intp(74), IncomeBand: model.BandUnder12570}))
		res := evalOne(t, model.SchemeFreeTVLicence, model.PersonData{Age: intp(75), IncomeBand: model.BandUnder12570})
		require.NotNil(t, res)
		assert.Equal(t, model.ConfidenceLikely, res.Confidence)
	})
}
