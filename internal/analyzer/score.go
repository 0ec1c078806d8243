package analyzer

import (
	"math"

	"github.com/sells-group/finhealth/internal/model"
)

// Breakdown reports each factor's own score on a 0-100 scale, before
// weighting. Debt burden is reported inverted ("Debt Management") so that
// a higher number is better for every entry.
type Breakdown struct {
	AgeFactor          float64
	IncomeStability    float64
	NetWorthRatio      float64
	DebtManagement     float64
	LiquidityPosition  float64
	CreditHealth       float64
	InvestmentMaturity float64
	FinancialBehavior  float64
	RiskTolerance      float64
}

// riskScore aggregates the normalized factors plus the raw risk tolerance
// into one weighted score, clamped to [0, 100], and returns the
// per-factor breakdown for transparency.
func riskScore(p model.FinancialProfile, f FactorScores, w Weights) (float64, Breakdown) {
	score := (f.AgeFactor*w.AgeFactor +
		f.IncomeStability*w.IncomeStability +
		f.NetWorthRatio*w.NetWorthRatio +
		(1-f.DebtBurden)*w.DebtBurden +
		f.LiquidityScore*w.LiquidityScore +
		f.CreditHealth*w.CreditHealth +
		f.InvestmentMaturity*w.InvestmentMaturity +
		f.BehavioralScore*w.BehavioralScore +
		p.RiskTolerance*w.RiskTolerance) * 100

	breakdown := Breakdown{
		AgeFactor:          f.AgeFactor * 100,
		IncomeStability:    f.IncomeStability * 100,
		NetWorthRatio:      f.NetWorthRatio * 100,
		DebtManagement:     (1 - f.DebtBurden) * 100,
		LiquidityPosition:  f.LiquidityScore * 100,
		CreditHealth:       f.CreditHealth * 100,
		InvestmentMaturity: f.InvestmentMaturity * 100,
		FinancialBehavior:  f.BehavioralScore * 100,
		RiskTolerance:      p.RiskTolerance * 100,
	}

	return math.Max(0, math.Min(100, score)), breakdown
}
