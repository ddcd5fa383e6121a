package report

import (
	"fmt"
	"html/template"

	"futureyou/internal/domain"
)

var templateFuncs = template.FuncMap{
	"percent": func(p float64) string { return fmt.Sprintf("%.0f%%", p*100) },
}

type reportData struct {
	Profile     *domain.UserProfile
	Decision    string
	Result      *domain.SimulationResult
	GeneratedAt string
	AdviceParas []string
}

type indexData struct {
	GeneratedAt string
	Reports     []string
}

var reportTemplate = template.Must(template.New("report").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>FutureYou Results - {{.Profile.UserID}}</title>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 20px; background: #f5f7fa; }
        .container { max-width: 1200px; margin: 0 auto; background: white; border-radius: 10px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; border-radius: 10px 10px 0 0; }
        .section { padding: 25px; border-bottom: 1px solid #eee; }
        .dna-card { background: #f8f9ff; border-left: 4px solid #667eea; padding: 20px; margin: 15px 0; border-radius: 5px; }
        .scenario { background: #fff; border: 1px solid #e1e5e9; border-radius: 8px; padding: 20px; margin: 15px 0; }
        .scenario-header { font-weight: bold; color: #2c3e50; margin-bottom: 10px; }
        .probability { background: #27ae60; color: white; padding: 4px 12px; border-radius: 20px; font-size: 0.9em; }
        .risk { color: #e74c3c; }
        .opportunity { color: #27ae60; }
        .advice { background: #fff3cd; border: 1px solid #ffeaa7; padding: 20px; border-radius: 8px; margin: 15px 0; }
        h1, h2, h3 { margin-top: 0; }
        .timestamp { color: #666; font-size: 0.9em; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>FutureYou Simulation Results</h1>
            <p><strong>User:</strong> {{.Profile.UserID}} | <strong>Age:</strong> {{.Profile.Age}} | <strong>Role:</strong> {{.Profile.CurrentRole}}</p>
            <p class="timestamp">Generated: {{.GeneratedAt}}</p>
        </div>

        <div class="section">
            <h2>Decision</h2>
            <p>{{.Decision}}</p>
        </div>

        <div class="section">
            <h2>Decision DNA</h2>
            <div class="dna-card">
                <p><strong>Risk Tolerance:</strong> {{printf "%.2f" .Result.DNA.RiskTolerance}}</p>
                <p><strong>Time Preference:</strong> {{.Result.DNA.TimeHorizonPreference}}</p>
                <p><strong>Value Priorities:</strong> {{range $i, $v := .Result.DNA.ValuePriorities}}{{if $i}}, {{end}}{{$v}}{{end}}</p>
                <p><strong>Emotional Drivers:</strong> {{range $i, $v := .Result.DNA.EmotionalDrivers}}{{if $i}}, {{end}}{{$v}}{{end}}</p>
            </div>
        </div>

        <div class="section">
            <h2>Future Scenarios ({{len .Result.Scenarios}})</h2>
            {{range .Result.Scenarios}}
            <div class="scenario">
                <div class="scenario-header">[{{.Timeline}}] {{.DecisionPath}} <span class="probability">{{percent .Probability}}</span></div>
                {{range $dim, $text := .Outcomes}}<p><strong>{{$dim}}:</strong> {{$text}}</p>{{end}}
                {{if .Risks}}<p class="risk"><strong>Risks:</strong> {{range $i, $v := .Risks}}{{if $i}}, {{end}}{{$v}}{{end}}</p>{{end}}
                {{if .Opportunities}}<p class="opportunity"><strong>Opportunities:</strong> {{range $i, $v := .Opportunities}}{{if $i}}, {{end}}{{$v}}{{end}}</p>{{end}}
            </div>
            {{end}}
        </div>

        <div class="section">
            <h2>Analysis Insights</h2>
            <p><strong>Best Scenario:</strong> {{.Result.Analysis.BestScenario}}</p>
            <p><strong>Risk Assessment:</strong> {{.Result.Analysis.RiskAnalysis}}</p>
            <p><strong>Opportunities:</strong> {{.Result.Analysis.OpportunityAnalysis}}</p>
            <p><strong>Trade-offs:</strong> {{.Result.Analysis.TradeOffs}}</p>
        </div>

        <div class="section">
            <h2>Personalized Advice</h2>
            <div class="advice">
                {{range .AdviceParas}}<p>{{.}}</p>{{end}}
            </div>
        </div>

        <div class="section">
            <h2>Session Information</h2>
            <p><strong>Session ID:</strong> {{.Result.SessionID}}</p>
            <p><strong>Scenarios Generated:</strong> {{len .Result.Scenarios}}</p>
            <p><strong>Advice Length:</strong> {{len .Result.Advice}} characters</p>
        </div>
    </div>
</body>
</html>
`))

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>FutureYou Results Index</title>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 40px; background: #f5f7fa; }
        .container { max-width: 1000px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
        .result-item { background: #f8f9fa; padding: 15px; margin: 10px 0; border-radius: 5px; border-left: 4px solid #667eea; }
        h1 { color: #2c3e50; }
        a { color: #667eea; text-decoration: none; font-weight: 500; }
        a:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <div class="container">
        <h1>FutureYou Results Index</h1>
        <p>Generated: {{.GeneratedAt}}</p>
        <h2>Simulation Results ({{len .Reports}} reports)</h2>
        {{range .Reports}}
        <div class="result-item"><a href="{{.}}" target="_blank">{{.}}</a></div>
        {{end}}
    </div>
</body>
</html>
`))
