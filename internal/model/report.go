package model

// RiskAssessment summarizes the aggregate score and the investor profile
// band it falls into. All values are display strings.
type RiskAssessment struct {
	OverallRiskScore    string `json:"overall_risk_score"`
	RiskProfile         string `json:"risk_profile"`
	Capacity            string `json:"capacity"`
	Description         string `json:"description"`
	InvestmentHorizon   string `json:"investment_horizon"`
	SuggestedAllocation string `json:"suggested_allocation"`
}

// ScoreBreakdown reports each factor's own 0-100 score, pre-weighting,
// formatted as "NN.N/100". Field order is the fixed display order.
type ScoreBreakdown struct {
	AgeFactor          string `json:"Age Factor"`
	IncomeStability    string `json:"Income Stability"`
	NetWorthRatio      string `json:"Net Worth Ratio"`
	DebtManagement     string `json:"Debt Management"`
	LiquidityPosition  string `json:"Liquidity Position"`
	CreditHealth       string `json:"Credit Health"`
	InvestmentMaturity string `json:"Investment Maturity"`
	FinancialBehavior  string `json:"Financial Behavior"`
	RiskTolerance      string `json:"Risk Tolerance"`
}

// FinancialSnapshot echoes the headline money figures as formatted
// currency strings.
type FinancialSnapshot struct {
	AnnualIncome     string `json:"annual_income"`
	TotalAssets      string `json:"total_assets"`
	TotalLiabilities string `json:"total_liabilities"`
	NetWorth         string `json:"net_worth"`
	LiquidSavings    string `json:"liquid_savings"`
	Investments      string `json:"investments"`
}

// KeyRatios holds the derived financial ratios, display-formatted.
// Asset utilization is the one ratio that passes through as a raw number.
type KeyRatios struct {
	DebtToIncome        string  `json:"debt_to_income"`
	SavingsRate         string  `json:"savings_rate"`
	EmergencyFundMonths string  `json:"emergency_fund_months"`
	InvestmentRate      string  `json:"investment_rate"`
	NetWorth            string  `json:"net_worth"`
	AssetUtilization    float64 `json:"asset_utilization"`
	ExpenseRatio        string  `json:"expense_ratio"`
}

// BehaviorAnalysis echoes the behavioral inputs in human-readable form.
type BehaviorAnalysis struct {
	MonthlyBudgeting     string `json:"monthly_budgeting"`
	ExpenseTracking      string `json:"expense_tracking"`
	InsuranceCoverage    string `json:"insurance_coverage"`
	RetirementPlanning   string `json:"retirement_planning"`
	InvestmentAutomation string `json:"investment_automation"`
	CreditScore          string `json:"credit_score"`
	FinancialConfidence  string `json:"financial_confidence"`
	GoalReviewHabit      string `json:"goal_review_habit"`
	FinancialAdvisor     string `json:"financial_advisor"`
}

// Report is the complete analysis result for one profile. It is built,
// returned, and discarded; nothing persists between analyses.
type Report struct {
	ReportID                    string            `json:"report_id"`
	GeneratedOn                 string            `json:"generated_on"`
	Age                         int               `json:"age"`
	RiskAssessment              RiskAssessment    `json:"risk_assessment"`
	ScoreBreakdown              ScoreBreakdown    `json:"score_breakdown"`
	FinancialSnapshot           FinancialSnapshot `json:"financial_snapshot"`
	KeyFinancialRatios          KeyRatios         `json:"key_financial_ratios"`
	FinancialBehaviorAnalysis   BehaviorAnalysis  `json:"financial_behavior_analysis"`
	UrgentAttentionRequired     []string          `json:"urgent_attention_required"`
	PersonalizedRecommendations []string          `json:"personalized_recommendations"`
	ThirtyDayActionPlan         []string          `json:"thirty_day_action_plan"`
}
