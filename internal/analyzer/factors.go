package analyzer

import (
	"math"

	"github.com/sells-group/finhealth/internal/model"
)

// FactorScores holds the eight normalized risk factors, each in [0, 1].
// DebtBurden is the only factor where higher means worse; the aggregator
// inverts it before weighting.
type FactorScores struct {
	AgeFactor          float64
	IncomeStability    float64
	NetWorthRatio      float64
	DebtBurden         float64
	LiquidityScore     float64
	CreditHealth       float64
	InvestmentMaturity float64
	BehavioralScore    float64
}

func computeFactors(p model.FinancialProfile) FactorScores {
	return FactorScores{
		AgeFactor:          ageFactor(p.Age),
		IncomeStability:    incomeStability(p.Salary, p.CityIndex),
		NetWorthRatio:      netWorthRatio(p.Assets, p.Liabilities, p.Salary),
		DebtBurden:         debtBurden(p.EMI, p.Liabilities, p.Salary),
		LiquidityScore:     liquidityScore(p.Savings, p.MonthlyExpenses),
		CreditHealth:       creditHealth(p.CreditScore, p.Defaulted),
		InvestmentMaturity: investmentMaturity(p.Investments, p.Assets),
		BehavioralScore:    behavioralScore(p),
	}
}

// ageFactor maps age to risk capacity as a decreasing staircase:
// younger investors can absorb more risk.
func ageFactor(age int) float64 {
	switch {
	case age < 25:
		return 0.9
	case age < 35:
		return 0.8
	case age < 45:
		return 0.6
	case age < 55:
		return 0.4
	default:
		return 0.2
	}
}

// incomeStability scores salary relative to the local cost of living.
func incomeStability(salary, cityIndex float64) float64 {
	if cityIndex == 0 {
		return 0
	}
	adjusted := salary / (cityIndex * 100_000)
	return math.Min(1.0, adjusted/10)
}

// netWorthRatio scores net worth as a multiple of annual salary,
// capped at 5x.
func netWorthRatio(assets, liabilities, salary float64) float64 {
	if salary == 0 {
		return 0
	}
	multiple := (assets - liabilities) / salary
	return math.Min(1.0, math.Max(0, multiple/5))
}

// debtBurden scores annualized debt service against salary. Outstanding
// liabilities are approximated at 10% annual service. No income means
// maximum burden.
func debtBurden(emi, liabilities, salary float64) float64 {
	if salary == 0 {
		return 1.0
	}
	ratio := (emi + liabilities*0.1) / salary
	return math.Min(1.0, ratio)
}

// liquidityScore scores emergency fund adequacy in months of expenses.
// No expenses is scored neutral.
func liquidityScore(savings, monthlyExpenses float64) float64 {
	if monthlyExpenses == 0 {
		return 0.5
	}
	months := savings / monthlyExpenses
	switch {
	case months >= 12:
		return 1.0
	case months >= 6:
		return 0.8
	case months >= 3:
		return 0.6
	default:
		return math.Min(1.0, months/6)
	}
}

// creditHealth combines the credit score tier with default history.
func creditHealth(creditScore int, defaulted bool) float64 {
	base := 1.0
	if defaulted {
		base = 0.3
	}

	var tier float64
	switch {
	case creditScore >= 750:
		tier = 1.0
	case creditScore >= 650:
		tier = 0.7
	case creditScore >= 550:
		tier = 0.4
	default:
		tier = 0.1
	}

	return base * tier
}

// investmentMaturity scores what share of assets is actually invested.
func investmentMaturity(investments, assets float64) float64 {
	if assets == 0 {
		return 0
	}
	return math.Min(1.0, investments/assets)
}

// behavioralScore counts satisfied discipline habits out of eight.
func behavioralScore(p model.FinancialProfile) float64 {
	const totalHabits = 8

	var hits int
	if p.Budget {
		hits++
	}
	if p.ExpenseTracking.IsRegular() {
		hits++
	}
	if p.Insurance.Covers() {
		hits++
	}
	if p.Retirement {
		hits++
	}
	if p.Automate {
		hits++
	}
	if !p.Defaulted {
		hits++
	}
	if p.Confidence >= 7 {
		hits++
	}
	if p.ReviewGoals {
		hits++
	}

	return float64(hits) / totalHabits
}
