package model

// Nation identifiers as used by the scheme catalogue. An empty Nation on
// PersonData means "not reported" and never filters a scheme out.
const (
	NationEngland         = "england"
	NationScotland        = "scotland"
	NationWales           = "wales"
	NationNorthernIreland = "northern-ireland"
)

// Income bands, coarsest-first. Eligibility rules compare band order, never
// the raw income figure, even when one is present.
const (
	BandUnder7400  = "under_7400"
	BandUnder12570 = "under_12570"
	BandUnder16190 = "under_16190"
	BandUnder25000 = "under_25000"
	BandUnder35000 = "under_35000"
	BandOver35000  = "over_35000"
)

var bandOrder = map[string]int{
	BandUnder7400:  0,
	BandUnder12570: 1,
	BandUnder16190: 2,
	BandUnder25000: 3,
	BandUnder35000: 4,
	BandOver35000:  5,
}

// BandAtMost reports whether band is known and sits at or below limit in the
// band ordering. An unreported or unrecognised band is never "at most"
// anything; callers that want to include unknown-income people must handle
// the empty band themselves.
func BandAtMost(band, limit string) bool {
	b, ok := bandOrder[band]
	if !ok {
		return false
	}
	l, ok := bandOrder[limit]
	if !ok {
		return false
	}
	return b <= l
}

// Housing tenure values.
const (
	TenurePrivateRent = "private_rent"
	TenureSocialRent  = "social_rent"
	TenureOwnOutright = "own_outright"
	TenureMortgage    = "mortgage"
	TenureOther       = "other"
)

// Employment status values.
const (
	EmploymentEmployed     = "employed"
	EmploymentSelfEmployed = "self_employed"
	EmploymentUnemployed   = "unemployed"
	EmploymentRetired      = "retired"
	EmploymentUnableToWork = "unable_to_work"
	EmploymentStudent      = "student"
)

// PersonData is the subject's self-reported circumstances. Every field may be
// absent: pointer fields carry nil for "not reported", string fields carry
// the empty string and slices nil. The engine never mutates a PersonData.
type PersonData struct {
	Age    *int   `json:"age,omitempty"`
	Nation string `json:"nation,omitempty"`

	IncomeBand   string   `json:"income_band,omitempty"`
	WeeklyIncome *float64 `json:"weekly_income,omitempty"`
	Capital      *float64 `json:"capital,omitempty"`

	HasPartner   *bool `json:"has_partner,omitempty"`
	Children     *int  `json:"children,omitempty"`
	ChildrenAges []int `json:"children_ages,omitempty"`

	HousingTenure     string   `json:"housing_tenure,omitempty"`
	WeeklyHousingCost *float64 `json:"weekly_housing_cost,omitempty"`

	EmploymentStatus string `json:"employment_status,omitempty"`

	Disabled *bool `json:"disabled,omitempty"`
	// Carer and CaredFor describe a caring arrangement: CaredFor names the
	// person cared for ("partner", "parent", "child", ...). Either signal on
	// its own is enough for the caring rules to fire.
	Carer           *bool    `json:"carer,omitempty"`
	CaredFor        string   `json:"cared_for,omitempty"`
	WeeklyCareHours *float64 `json:"weekly_care_hours,omitempty"`
	Pregnant        *bool    `json:"pregnant,omitempty"`
	Bereaved        *bool    `json:"bereaved,omitempty"`
}

// ChildCount returns the best available child count: the explicit count if
// reported, otherwise the length of the ages list, otherwise zero.
func (p *PersonData) ChildCount() int {
	if p.Children != nil {
		return *p.Children
	}
	return len(p.ChildrenAges)
}

// HasChildUnder reports whether any reported child is under the given age.
// When a child count is reported without ages, the ages are unknown and this
// returns true so that rules degrade confidence instead of excluding.
func (p *PersonData) HasChildUnder(age int) bool {
	if len(p.ChildrenAges) > 0 {
		for _, a := range p.ChildrenAges {
			if a < age {
				return true
			}
		}
		return false
	}
	return p.ChildCount() > 0
}

// HasChildBetween reports whether any reported child age a satisfies
// lo <= a <= hi, with the same unknown-ages behaviour as HasChildUnder.
func (p *PersonData) HasChildBetween(lo, hi int) bool {
	if len(p.ChildrenAges) > 0 {
		for _, a := range p.ChildrenAges {
			if a >= lo && a <= hi {
				return true
			}
		}
		return false
	}
	return p.ChildCount() > 0
}

// ChildrenUnder counts reported children under the given age. When a count
// is reported without ages, it returns one qualifying child so estimates
// stay conservative rather than zero.
func (p *PersonData) ChildrenUnder(age int) int {
	if len(p.ChildrenAges) > 0 {
		n := 0
		for _, a := range p.ChildrenAges {
			if a < age {
				n++
			}
		}
		return n
	}
	if p.ChildCount() > 0 {
		return 1
	}
	return 0
}

// Flag reads a *bool field treating nil as false.
func Flag(b *bool) bool {
	return b != nil && *b
}
