package agents

// Prompt templates for the four agents. Each embeds the validated input as
// indented JSON and demands a bare JSON value of a documented shape, with
// one worked example, so the response survives strict parsing.

const profilerPromptTemplate = `Analyze this user profile and extract their Decision DNA:

User Data: %s

Extract:
1. Risk tolerance (0-1 scale, float)
2. Time horizon preference (short/medium/long)
3. Top 3 value priorities from: career, family, health, wealth, freedom, creativity, impact
4. Decision patterns (how they typically decide)
5. Emotional drivers (what motivates them)

Return ONLY valid JSON with keys: risk_tolerance, time_horizon_preference, value_priorities, decision_patterns, emotional_drivers

Example format:
{
  "risk_tolerance": 0.7,
  "time_horizon_preference": "medium",
  "value_priorities": ["career", "wealth", "freedom"],
  "decision_patterns": {"style": "analytical", "speed": "deliberate"},
  "emotional_drivers": ["achievement", "security"]
}`

const simulatorPromptTemplate = `Simulate 3 different future scenarios for this decision:

Decision: %s
Timeline: %s
Decision DNA: %s

For each scenario (optimistic, realistic, pessimistic), provide:
- decision_path: specific actions taken (string)
- outcomes: concrete results in career, finance, relationships, health, happiness (object)
- probability: likelihood 0-1 (float)
- key_events: major milestones (array of strings)
- risks: potential problems (array of strings)
- opportunities: potential gains (array of strings)

Return ONLY valid JSON array with exactly 3 scenarios.

Example format:
[
  {
    "decision_path": "Take the startup role",
    "outcomes": {"career": "Senior role", "finance": "Equity growth"},
    "probability": 0.7,
    "key_events": ["Join startup", "Product launch"],
    "risks": ["Startup failure"],
    "opportunities": ["Equity upside"]
  }
]`

const analyzerPromptTemplate = `Analyze these future scenarios based on the user's Decision DNA:

Scenarios: %s
Decision DNA: %s

Provide:
1. best_scenario: which scenario aligns best with user's values (string, must be one of the scenario_id values above)
2. risk_analysis: comprehensive risk assessment (string)
3. opportunity_analysis: key opportunities across scenarios (string)
4. alignment_score: how well each scenario matches user's DNA 0-1 (object with scenario_id as keys)
5. trade_offs: what user gains vs loses in each path (string)

Return ONLY valid JSON with these exact keys.

Example format:
{
  "best_scenario": "1yr_0",
  "risk_analysis": "Main risks include...",
  "opportunity_analysis": "Key opportunities are...",
  "alignment_score": {"1yr_0": 0.8, "1yr_1": 0.6},
  "trade_offs": "Higher risk vs higher reward..."
}`

const advisorPromptTemplate = `Based on this analysis and Decision DNA, provide personalized advice:

Analysis: %s
Decision DNA: %s

Provide:
1. Clear recommendation with reasoning
2. Action steps for next 30/60/90 days
3. Warning signs to watch for
4. Success indicators
5. Contingency plans

Be direct, actionable, and personalized to their DNA. Format as clear, readable text.`
