// Package analyzer implements the financial health scoring pipeline:
// factor normalization, weighted risk aggregation, investor profile
// classification, ratio derivation, rule evaluation, and report assembly.
package analyzer

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// Weights holds the fixed aggregation coefficients. These are policy
// constants, not tunable parameters; Validate exists so the table stays
// auditable, not so it can vary at runtime.
type Weights struct {
	AgeFactor          float64
	IncomeStability    float64
	NetWorthRatio      float64
	DebtBurden         float64
	LiquidityScore     float64
	CreditHealth       float64
	InvestmentMaturity float64
	BehavioralScore    float64
	RiskTolerance      float64
}

// DefaultWeights returns the policy weight table. The eight factor
// weights sum to 0.90; risk tolerance contributes the remaining 0.10.
func DefaultWeights() Weights {
	return Weights{
		AgeFactor:          0.15,
		IncomeStability:    0.20,
		NetWorthRatio:      0.15,
		DebtBurden:         0.20,
		LiquidityScore:     0.10,
		CreditHealth:       0.10,
		InvestmentMaturity: 0.05,
		BehavioralScore:    0.05,
		RiskTolerance:      0.10,
	}
}

// Sum returns the total coefficient mass, including risk tolerance.
func (w Weights) Sum() float64 {
	return w.AgeFactor + w.IncomeStability + w.NetWorthRatio + w.DebtBurden +
		w.LiquidityScore + w.CreditHealth + w.InvestmentMaturity +
		w.BehavioralScore + w.RiskTolerance
}

// Validate checks that the weight table is internally consistent: every
// coefficient non-negative and the total equal to 1.0 within tolerance.
func (w Weights) Validate() error {
	var errs []string

	named := map[string]float64{
		"age_factor":          w.AgeFactor,
		"income_stability":    w.IncomeStability,
		"net_worth_ratio":     w.NetWorthRatio,
		"debt_burden":         w.DebtBurden,
		"liquidity_score":     w.LiquidityScore,
		"credit_health":       w.CreditHealth,
		"investment_maturity": w.InvestmentMaturity,
		"behavioral_score":    w.BehavioralScore,
		"risk_tolerance":      w.RiskTolerance,
	}
	for name, v := range named {
		if v < 0 {
			errs = append(errs, fmt.Sprintf("%s weight must be >= 0", name))
		}
	}

	if sum := w.Sum(); math.Abs(sum-1.0) > 1e-9 {
		errs = append(errs, fmt.Sprintf("weights must sum to 1.0, got %.4f", sum))
	}

	if len(errs) > 0 {
		return eris.Errorf("analyzer: weight validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
