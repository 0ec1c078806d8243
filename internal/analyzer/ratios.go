package analyzer

import "github.com/sells-group/finhealth/internal/model"

// Ratios holds the derived financial metrics, computed directly from raw
// profile fields and independent of the risk score. Zero denominators
// produce zero, not errors; net worth is always defined.
type Ratios struct {
	DebtToIncome        float64
	SavingsRate         float64
	EmergencyFundMonths float64
	InvestmentRate      float64
	NetWorth            float64
	AssetUtilization    float64
	ExpenseRatio        float64
}

func computeRatios(p model.FinancialProfile) Ratios {
	r := Ratios{
		NetWorth: p.Assets - p.Liabilities,
	}

	if p.Salary > 0 {
		r.DebtToIncome = (p.EMI + p.Liabilities*0.1) / p.Salary
		r.SavingsRate = p.Savings / p.Salary
		r.InvestmentRate = p.Investments / p.Salary
		r.ExpenseRatio = (p.MonthlyExpenses * 12) / p.Salary
	}
	if p.MonthlyExpenses > 0 {
		r.EmergencyFundMonths = p.Savings / p.MonthlyExpenses
	}
	if p.Assets > 0 {
		r.AssetUtilization = p.Investments / p.Assets
	}

	return r
}
