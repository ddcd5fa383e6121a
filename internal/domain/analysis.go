package domain

// AnalysisResult is the Analyzer's comparison of all scenarios in a run.
// BestScenario always references a scenario id present in the input set.
type AnalysisResult struct {
	BestScenario        string             `json:"best_scenario"`
	RiskAnalysis        string             `json:"risk_analysis"`
	OpportunityAnalysis string             `json:"opportunity_analysis"`
	AlignmentScore      map[string]float64 `json:"alignment_score"`
	TradeOffs           string             `json:"trade_offs"`
}

// Clone returns a deep copy of the analysis.
func (a *AnalysisResult) Clone() *AnalysisResult {
	if a == nil {
		return nil
	}
	cp := *a
	if a.AlignmentScore != nil {
		cp.AlignmentScore = make(map[string]float64, len(a.AlignmentScore))
		for k, v := range a.AlignmentScore {
			cp.AlignmentScore[k] = v
		}
	}
	return &cp
}

// SimulationResult bundles everything one successful pipeline run produced.
type SimulationResult struct {
	SessionID SessionID        `json:"session_id"`
	DNA       *DecisionDNA     `json:"decision_dna"`
	Scenarios []FutureScenario `json:"scenarios"`
	Analysis  *AnalysisResult  `json:"analysis"`
	Advice    string           `json:"advice"`
}
