// Package model defines the financial profile input record and the
// analysis report returned to callers.
package model

import (
	"encoding/json"

	"github.com/rotisserie/eris"
)

// ExpenseTracking describes how regularly a person tracks expenses.
// Values outside the recognized set are treated as not tracking regularly.
type ExpenseTracking string

const (
	TrackingMonthly ExpenseTracking = "Monthly"
	TrackingDaily   ExpenseTracking = "Daily"
)

// IsRegular reports whether expenses are tracked on a regular cadence.
func (t ExpenseTracking) IsRegular() bool {
	return t == TrackingMonthly || t == TrackingDaily
}

// InsuranceCoverage describes the insurance held by a person.
// Unrecognized values count as no meaningful coverage.
type InsuranceCoverage string

const (
	InsuranceNone   InsuranceCoverage = "None"
	InsuranceHealth InsuranceCoverage = "Health"
	InsuranceLife   InsuranceCoverage = "Life"
	InsuranceBoth   InsuranceCoverage = "Both"
)

// Covers reports whether the coverage counts as real insurance.
func (c InsuranceCoverage) Covers() bool {
	return c == InsuranceHealth || c == InsuranceLife || c == InsuranceBoth
}

// FinancialProfile is the complete input record for one analysis.
// It is immutable for the duration of the analysis; the analyzer never
// writes to it.
type FinancialProfile struct {
	Age              int               `json:"age"`
	Salary           float64           `json:"salary"`
	CityIndex        float64           `json:"city_index"`
	Assets           float64           `json:"assets"`
	Liabilities      float64           `json:"liabilities"`
	Loans            int               `json:"loans"`
	EMI              float64           `json:"emi"`
	Responsibilities int               `json:"responsibilities"`
	Savings          float64           `json:"savings"`
	CreditScore      int               `json:"credit_score"`
	Investments      float64           `json:"investments"`
	MonthlyExpenses  float64           `json:"monthly_expenses"`
	RiskTolerance    float64           `json:"risk_tolerance"`
	HighRiskPercent  int               `json:"high_risk_percent"`
	Confidence       int               `json:"confidence"`
	Budget           bool              `json:"budget"`
	Insurance        InsuranceCoverage `json:"insurance"`
	ExpenseTracking  ExpenseTracking   `json:"expense_tracking"`
	Retirement       bool              `json:"retirement"`
	Automate         bool              `json:"automate"`
	Defaulted        bool              `json:"defaulted"`
	Advisor          bool              `json:"advisor"`
	ReviewGoals      bool              `json:"review_goals"`
}

// RequiredFields lists every field a profile document must carry.
// Presence is validated at the boundary; the analyzer itself assumes a
// complete record.
var RequiredFields = []string{
	"age", "salary", "city_index", "assets", "liabilities", "loans", "emi",
	"responsibilities", "savings", "credit_score", "investments",
	"monthly_expenses", "risk_tolerance", "budget", "insurance",
	"expense_tracking", "retirement", "high_risk_percent", "automate",
	"defaulted", "advisor", "confidence", "review_goals",
}

// DecodeProfile parses a JSON profile document, verifying that all
// required fields are present before unmarshaling into the typed record.
func DecodeProfile(data []byte) (FinancialProfile, error) {
	var p FinancialProfile

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return p, eris.Wrap(err, "model: decode profile")
	}
	for _, field := range RequiredFields {
		if _, ok := raw[field]; !ok {
			return p, eris.Errorf("model: missing field: %s", field)
		}
	}

	if err := json.Unmarshal(data, &p); err != nil {
		return p, eris.Wrap(err, "model: decode profile")
	}
	return p, nil
}
