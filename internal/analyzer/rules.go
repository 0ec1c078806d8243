package analyzer

import (
	"fmt"

	"github.com/sells-group/finhealth/internal/model"
)

// maxActionItems caps the action plan. Truncation is positional: items
// are generated in fixed priority order and anything past the cap is
// dropped, including the unconditional tail items.
const maxActionItems = 6

// ruleInput bundles everything a rule predicate may inspect.
type ruleInput struct {
	Profile model.FinancialProfile
	Ratios  Ratios
	Score   float64
}

// warningRules fire on urgent conditions. Order is fixed for display.
var warningRules = []struct {
	Applies func(in ruleInput) bool
	Text    string
}{
	{
		Applies: func(in ruleInput) bool { return in.Ratios.DebtToIncome > 0.5 },
		Text:    "CRITICAL: Debt-to-income ratio exceeds 50% - immediate debt restructuring needed",
	},
	{
		Applies: func(in ruleInput) bool { return in.Ratios.EmergencyFundMonths < 1 },
		Text:    "HIGH RISK: No emergency fund - vulnerable to financial shocks",
	},
	{
		Applies: func(in ruleInput) bool { return in.Profile.CreditScore < 500 },
		Text:    "URGENT: Very poor credit score - will severely limit financial options",
	},
	{
		Applies: func(in ruleInput) bool { return in.Ratios.ExpenseRatio > 0.9 },
		Text:    "CRITICAL: Expenses consume 90%+ of income - unsustainable lifestyle",
	},
	{
		Applies: func(in ruleInput) bool { return in.Profile.Defaulted && in.Profile.Loans > 0 },
		Text:    "HIGH RISK: Previous defaults with current loans - monitor closely",
	},
}

// recommendationRules produce general guidance. Text is a function so a
// recommendation can cite the actual ratio value that triggered it.
var recommendationRules = []struct {
	Applies func(in ruleInput) bool
	Text    func(in ruleInput) string
}{
	{
		Applies: func(in ruleInput) bool { return in.Ratios.EmergencyFundMonths < 6 },
		Text: func(in ruleInput) string {
			return fmt.Sprintf("Build emergency fund: You have %.1f months of expenses. Aim for 6-12 months.",
				in.Ratios.EmergencyFundMonths)
		},
	},
	{
		Applies: func(in ruleInput) bool { return in.Ratios.DebtToIncome > 0.4 },
		Text: func(in ruleInput) string {
			return fmt.Sprintf("Reduce debt burden: %s debt-to-income is high. Target below 30%%.",
				formatPercent(in.Ratios.DebtToIncome))
		},
	},
	{
		Applies: func(in ruleInput) bool { return in.Ratios.SavingsRate < 0.2 },
		Text: func(in ruleInput) string {
			return fmt.Sprintf("Increase savings: %s savings rate is low. Aim for 20%%+ of income.",
				formatPercent(in.Ratios.SavingsRate))
		},
	},
	{
		Applies: func(in ruleInput) bool { return in.Ratios.InvestmentRate < 0.15 && in.Score > 40 },
		Text: func(ruleInput) string {
			return "Increase investments: Consider systematic investment plans (SIPs) for wealth building."
		},
	},
	{
		Applies: func(in ruleInput) bool { return in.Profile.Insurance == model.InsuranceNone },
		Text: func(ruleInput) string {
			return "Get insurance: Health and term life insurance are essential for financial security."
		},
	},
	{
		Applies: func(in ruleInput) bool { return in.Profile.CreditScore < 650 },
		Text: func(ruleInput) string {
			return "Improve credit score: Pay bills on time, reduce credit utilization, check credit report."
		},
	},
	{
		Applies: func(in ruleInput) bool { return !in.Profile.Budget },
		Text: func(ruleInput) string {
			return "Create a budget: Track income and expenses to improve financial control."
		},
	},
	{
		Applies: func(in ruleInput) bool { return !in.Profile.Automate },
		Text: func(ruleInput) string {
			return "Automate finances: Set up automatic savings and bill payments."
		},
	},
	{
		Applies: func(in ruleInput) bool { return in.Profile.Age < 30 && !in.Profile.Retirement },
		Text: func(ruleInput) string {
			return "Start retirement planning: Time is your biggest advantage for long-term wealth."
		},
	},
}

// actionRules build the 30-day plan. A nil predicate always fires; the
// two unconditional items sit last and may be dropped by the cap.
var actionRules = []struct {
	Applies func(in ruleInput) bool
	Text    string
}{
	{
		Applies: func(in ruleInput) bool { return in.Ratios.EmergencyFundMonths < 3 },
		Text:    "Open a high-yield savings account and set up automatic transfer for emergency fund",
	},
	{
		Applies: func(in ruleInput) bool { return !in.Profile.Budget },
		Text:    "Download a budgeting app and track all expenses for 30 days",
	},
	{
		Applies: func(in ruleInput) bool { return in.Profile.Insurance == model.InsuranceNone },
		Text:    "Research and compare health insurance plans, get quotes for term life insurance",
	},
	{
		Applies: func(in ruleInput) bool { return in.Profile.CreditScore < 650 },
		Text:    "Obtain free credit report, dispute any errors, and set up payment reminders",
	},
	{
		Applies: func(in ruleInput) bool { return !in.Profile.Automate },
		Text:    "Set up automatic bill payments and SIP investments",
	},
	{
		Applies: func(in ruleInput) bool { return in.Ratios.DebtToIncome > 0.4 },
		Text:    "List all debts, consider debt consolidation options, create repayment plan",
	},
	{
		Applies: nil,
		Text:    "Review and optimize current investment portfolio based on risk profile",
	},
	{
		Applies: nil,
		Text:    "Schedule financial goal review and create/update investment strategy",
	},
}

func evalWarnings(in ruleInput) []string {
	warnings := []string{}
	for _, rule := range warningRules {
		if rule.Applies(in) {
			warnings = append(warnings, rule.Text)
		}
	}
	return warnings
}

func evalRecommendations(in ruleInput) []string {
	recs := []string{}
	for _, rule := range recommendationRules {
		if rule.Applies(in) {
			recs = append(recs, rule.Text(in))
		}
	}
	return recs
}

func evalActionPlan(in ruleInput) []string {
	actions := []string{}
	for _, rule := range actionRules {
		if rule.Applies == nil || rule.Applies(in) {
			actions = append(actions, rule.Text)
		}
	}
	if len(actions) > maxActionItems {
		actions = actions[:maxActionItems]
	}
	return actions
}
