package family

import "github.com/shopspring/decimal"

var (
	// BenefitPerChild is paid monthly for each eligible child
	BenefitPerChild = num(1200)

	// IncomeThreshold is the maximum monthly income per family member
	IncomeThreshold = num(1000)
)

// MaxEligibleAge is the last age at which a child qualifies
const MaxEligibleAge = 15

// Refusal reasons, as i18n keys
const (
	ReasonIncomeExceeds = "family_income_exceeds_threshold"
	ReasonNoChildren    = "family_no_children_eligible"
)

// BenefitInput describes the household
type BenefitInput struct {
	Income     decimal.Decimal `json:"income"`
	FamilySize int             `json:"family_size"`
	ChildAges  []int           `json:"child_ages"`
}

// BenefitResult is the eligibility decision
type BenefitResult struct {
	Income           decimal.Decimal `json:"income"`
	FamilySize       int             `json:"family_size"`
	EligibleChildren int             `json:"eligible_children"`
	IncomePerPerson  decimal.Decimal `json:"income_per_person"`
	Eligible         bool            `json:"eligible"`
	Amount           decimal.Decimal `json:"amount"`
	Reasons          []string        `json:"reasons,omitempty"`
}

// FamilyBenefit decides eligibility for the monthly benefit "Үй-бүлөгө көмөк"
func FamilyBenefit(in BenefitInput) BenefitResult {
	res := BenefitResult{Income: in.Income, FamilySize: in.FamilySize}
	if in.FamilySize > 0 {
		res.IncomePerPerson = in.Income.Div(decimal.NewFromInt(int64(in.FamilySize)))
	}

	for _, age := range in.ChildAges {
		if age >= 0 && age <= MaxEligibleAge {
			res.EligibleChildren++
		}
	}

	incomeOK := res.IncomePerPerson.LessThanOrEqual(IncomeThreshold)
	if !incomeOK {
		res.Reasons = append(res.Reasons, ReasonIncomeExceeds)
	}
	if res.EligibleChildren == 0 {
		res.Reasons = append(res.Reasons, ReasonNoChildren)
	}

	res.Eligible = incomeOK && res.EligibleChildren > 0
	if res.Eligible {
		res.Amount = BenefitPerChild.Mul(decimal.NewFromInt(int64(res.EligibleChildren)))
	}
	return res
}
