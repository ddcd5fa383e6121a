package domain

// DecisionRecord is one entry in the append-only log of decisions the user
// ultimately chose. Independent of the simulation pipeline.
type DecisionRecord struct {
	Timestamp  Timestamp `json:"timestamp"`
	Decision   string    `json:"decision"`
	ChosenPath string    `json:"chosen_path"`
	Reasoning  string    `json:"reasoning"`
}
