package analyzer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/finhealth/internal/model"
)

// generatedOnLayout is the human-readable report timestamp format.
const generatedOnLayout = "January 02, 2006 at 03:04 PM"

// Analyzer runs the full analysis pipeline. It holds only the policy
// weight table and injectable clock/ID sources; there is no per-call
// state, so one Analyzer is safe for concurrent use across requests.
type Analyzer struct {
	weights Weights
	now     func() time.Time
	newID   func() string
}

// Option customizes an Analyzer, mainly for tests.
type Option func(*Analyzer)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// WithIDSource overrides the report ID generator.
func WithIDSource(newID func() string) Option {
	return func(a *Analyzer) { a.newID = newID }
}

// New returns an Analyzer with the policy weights, the system clock, and
// random UUID report IDs.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		weights: DefaultWeights(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze computes the complete report for one profile. Every formula is
// total over its input domain; given a complete record, Analyze cannot
// fail.
func (a *Analyzer) Analyze(p model.FinancialProfile) model.Report {
	factors := computeFactors(p)
	score, breakdown := riskScore(p, factors, a.weights)
	profile := classifyProfile(score)
	ratios := computeRatios(p)

	in := ruleInput{Profile: p, Ratios: ratios, Score: score}
	warnings := evalWarnings(in)
	recommendations := evalRecommendations(in)
	actions := evalActionPlan(in)

	report := model.Report{
		ReportID:    a.newID(),
		GeneratedOn: a.now().Format(generatedOnLayout),
		Age:         p.Age,
		RiskAssessment: model.RiskAssessment{
			OverallRiskScore:    formatScore(score),
			RiskProfile:         profile.Profile,
			Capacity:            profile.Capacity,
			Description:         profile.Description,
			InvestmentHorizon:   profile.InvestmentHorizon,
			SuggestedAllocation: profile.Allocation,
		},
		ScoreBreakdown: model.ScoreBreakdown{
			AgeFactor:          formatScore(breakdown.AgeFactor),
			IncomeStability:    formatScore(breakdown.IncomeStability),
			NetWorthRatio:      formatScore(breakdown.NetWorthRatio),
			DebtManagement:     formatScore(breakdown.DebtManagement),
			LiquidityPosition:  formatScore(breakdown.LiquidityPosition),
			CreditHealth:       formatScore(breakdown.CreditHealth),
			InvestmentMaturity: formatScore(breakdown.InvestmentMaturity),
			FinancialBehavior:  formatScore(breakdown.FinancialBehavior),
			RiskTolerance:      formatScore(breakdown.RiskTolerance),
		},
		FinancialSnapshot: model.FinancialSnapshot{
			AnnualIncome:     formatCurrency(p.Salary),
			TotalAssets:      formatCurrency(p.Assets),
			TotalLiabilities: formatCurrency(p.Liabilities),
			NetWorth:         formatCurrency(ratios.NetWorth),
			LiquidSavings:    formatCurrency(p.Savings),
			Investments:      formatCurrency(p.Investments),
		},
		KeyFinancialRatios: model.KeyRatios{
			DebtToIncome:        formatPercent(ratios.DebtToIncome),
			SavingsRate:         formatPercent(ratios.SavingsRate),
			EmergencyFundMonths: formatMonths(ratios.EmergencyFundMonths),
			InvestmentRate:      formatPercent(ratios.InvestmentRate),
			NetWorth:            formatCurrency(ratios.NetWorth),
			AssetUtilization:    ratios.AssetUtilization,
			ExpenseRatio:        formatPercent(ratios.ExpenseRatio),
		},
		FinancialBehaviorAnalysis: model.BehaviorAnalysis{
			MonthlyBudgeting:     yesNo(p.Budget),
			ExpenseTracking:      string(p.ExpenseTracking),
			InsuranceCoverage:    string(p.Insurance),
			RetirementPlanning:   yesNo(p.Retirement),
			InvestmentAutomation: yesNo(p.Automate),
			CreditScore:          fmt.Sprintf("%d/850", p.CreditScore),
			FinancialConfidence:  fmt.Sprintf("%d/10", p.Confidence),
			GoalReviewHabit:      yesNo(p.ReviewGoals),
			FinancialAdvisor:     yesNo(p.Advisor),
		},
		UrgentAttentionRequired:     warnings,
		PersonalizedRecommendations: recommendations,
		ThirtyDayActionPlan:         actions,
	}

	zap.L().Info("analyzer: report generated",
		zap.String("report_id", report.ReportID),
		zap.Float64("risk_score", score),
		zap.String("risk_profile", profile.Profile),
		zap.Int("warnings", len(warnings)),
		zap.Int("recommendations", len(recommendations)),
	)

	return report
}
