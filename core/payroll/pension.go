package payroll

import (
	"math"
	"time"
)

// Gender selects the statutory retirement age
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

const (
	// BasePart is paid once MinExperienceMonths is reached
	BasePart = 3000.0

	MinExperienceMonths = 180

	// ContributionRate is the share of salary credited to the pension account
	ContributionRate = 0.10

	// SurvivalMonths is the expected payout period used to annuitise savings
	SurvivalMonths = 180

	// maxPre1996Years caps the Soviet-era service credited to part one
	maxPre1996Years = 25
)

// RetirementAge returns the statutory age for g
func RetirementAge(g Gender) int {
	if g == Male {
		return 63
	}
	return 58
}

// WorkPeriod is a job held between two months, both inclusive
type WorkPeriod struct {
	StartYear  int     `json:"start_year"`
	StartMonth int     `json:"start_month"`
	EndYear    int     `json:"end_year"`
	EndMonth   int     `json:"end_month"`
	Salary     float64 `json:"salary"`
}

func monthIndex(year, month int) int {
	return year*12 + month - 1
}

func (p WorkPeriod) start() int { return monthIndex(p.StartYear, p.StartMonth) }
func (p WorkPeriod) end() int   { return monthIndex(p.EndYear, p.EndMonth) }

// Months counts the period inclusively
func (p WorkPeriod) Months() int {
	return p.end() - p.start() + 1
}

var cutoff1996 = monthIndex(1996, 1)

// PensionInput is everything the estimate needs
type PensionInput struct {
	BirthDate     time.Time    `json:"birth_date"`
	Gender        Gender       `json:"gender"`
	RetirementAge int          `json:"retirement_age,omitempty"`
	CurrentSalary float64      `json:"current_salary"`
	WorkPeriods   []WorkPeriod `json:"work_periods"`
}

// PensionResult is the monthly pension broken into its parts
type PensionResult struct {
	BasePart           float64 `json:"base_part"`
	InsurancePart1     float64 `json:"insurance_part1"`
	InsurancePart2     float64 `json:"insurance_part2"`
	Total              float64 `json:"total"`
	CurrentAge         int     `json:"current_age"`
	YearsToRetirement  int     `json:"years_to_retirement"`
	ExperienceMonths   int     `json:"experience_months"`
	TotalContributions float64 `json:"total_contributions"`
}

// AgeAt returns full years between birth and now
func AgeAt(birth, now time.Time) int {
	if birth.IsZero() {
		return 0
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// ExperienceMonths sums all periods
func ExperienceMonths(periods []WorkPeriod) int {
	total := 0
	for _, p := range periods {
		total += p.Months()
	}
	return total
}

// pre1996 returns the months worked up to and including January 1996 and
// the plain average salary of the periods that started before it.
func pre1996(periods []WorkPeriod) (months int, avgSalary float64) {
	var salaries float64
	n := 0
	for _, p := range periods {
		if p.start() >= cutoff1996 {
			continue
		}
		end := p.end()
		if end > cutoff1996 {
			end = cutoff1996
		}
		months += end - p.start() + 1
		salaries += p.Salary
		n++
	}
	if n > 0 {
		avgSalary = salaries / float64(n)
	}
	return months, avgSalary
}

// post1996Contributions credits ContributionRate of salary for every month
// from January 1996 onwards.
func post1996Contributions(periods []WorkPeriod) float64 {
	var total float64
	for _, p := range periods {
		if p.end() < cutoff1996 {
			continue
		}
		start := p.start()
		if start < cutoff1996 {
			start = cutoff1996
		}
		total += p.Salary * ContributionRate * float64(p.end()-start+1)
	}
	return total
}

// Pension estimates the monthly pension as of now
func Pension(in PensionInput, now time.Time) PensionResult {
	retirement := in.RetirementAge
	if retirement <= 0 {
		retirement = RetirementAge(in.Gender)
	}

	res := PensionResult{
		CurrentAge:       AgeAt(in.BirthDate, now),
		ExperienceMonths: ExperienceMonths(in.WorkPeriods),
	}
	res.YearsToRetirement = max(0, retirement-res.CurrentAge)

	if res.ExperienceMonths >= MinExperienceMonths {
		res.BasePart = BasePart
	}

	if months, avg := pre1996(in.WorkPeriods); months > 0 {
		years := math.Min(float64(months)/12, maxPre1996Years)
		res.InsurancePart1 = avg * 0.01 * years
	}

	salary := math.Max(in.CurrentSalary, 0)
	future := salary * ContributionRate * 12 * float64(res.YearsToRetirement)
	res.TotalContributions = post1996Contributions(in.WorkPeriods) + future
	res.InsurancePart2 = res.TotalContributions / SurvivalMonths

	res.Total = res.BasePart + res.InsurancePart1 + res.InsurancePart2
	return res
}
