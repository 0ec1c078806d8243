package analyzer

// InvestorProfile is one of five static bands describing recommended
// investment posture. Profiles are selected, never constructed.
type InvestorProfile struct {
	Profile           string
	Capacity          string
	Description       string
	Allocation        string
	InvestmentHorizon string
}

// profileBands maps aggregate score thresholds to investor profiles,
// ordered descending. Classification picks the first band whose minimum
// the score meets, so the final band catches everything below 25.
var profileBands = []struct {
	MinScore float64
	Profile  InvestorProfile
}{
	{80, InvestorProfile{
		Profile:           "Aggressive Investor",
		Capacity:          "Very High",
		Description:       "Strong financial foundation with high risk-taking ability",
		Allocation:        "Equity: 70-80%, Bonds: 10-15%, Alternatives: 10-15%",
		InvestmentHorizon: "15+ years",
	}},
	{65, InvestorProfile{
		Profile:           "Growth Investor",
		Capacity:          "High",
		Description:       "Good financial position suitable for growth-oriented investments",
		Allocation:        "Equity: 60-70%, Bonds: 20-25%, Alternatives: 10-15%",
		InvestmentHorizon: "10-15 years",
	}},
	{45, InvestorProfile{
		Profile:           "Balanced Investor",
		Capacity:          "Moderate",
		Description:       "Stable finances with moderate risk appetite",
		Allocation:        "Equity: 40-50%, Bonds: 30-40%, Alternatives: 10-20%",
		InvestmentHorizon: "7-10 years",
	}},
	{25, InvestorProfile{
		Profile:           "Conservative Investor",
		Capacity:          "Low",
		Description:       "Limited risk capacity, focus on stability",
		Allocation:        "Equity: 20-30%, Bonds: 50-60%, Cash: 20-30%",
		InvestmentHorizon: "3-7 years",
	}},
	{0, InvestorProfile{
		Profile:           "Capital Preservation",
		Capacity:          "Very Low",
		Description:       "Priority should be financial stability and emergency planning",
		Allocation:        "Bonds: 40-50%, Cash/FD: 40-50%, Equity: 0-10%",
		InvestmentHorizon: "1-3 years",
	}},
}

// classifyProfile maps an aggregate risk score to its investor profile band.
func classifyProfile(score float64) InvestorProfile {
	for _, band := range profileBands {
		if score >= band.MinScore {
			return band.Profile
		}
	}
	// Scores are clamped to [0, 100], so the 0 band always matches;
	// this is unreachable for valid input.
	return profileBands[len(profileBands)-1].Profile
}
