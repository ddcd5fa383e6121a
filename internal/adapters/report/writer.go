// Package report renders a finished simulation into files a person can
// read: an HTML report, the full result as JSON, a short JSON summary, and
// an index page over past reports. It consumes the result read-only; a
// rendering failure never invalidates the computed simulation.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"futureyou/internal/domain"
)

// Files names everything one WriteAll call produced.
type Files struct {
	HTMLReport  string `json:"html_report"`
	JSONResult  string `json:"json_result"`
	JSONSummary string `json:"json_summary"`
}

type Writer struct {
	outDir string
	now    func() time.Time
}

func NewWriter(outDir string) *Writer {
	return &Writer{outDir: outDir, now: time.Now}
}

// WriteAll renders every output format and refreshes the index page.
func (w *Writer) WriteAll(result *domain.SimulationResult, profile *domain.UserProfile, decision string) (*Files, error) {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("report: create output dir: %w", err)
	}

	ts := w.now().Unix()

	htmlFile, err := w.writeHTML(result, profile, decision, ts)
	if err != nil {
		return nil, err
	}
	resultFile, err := w.writeResult(result, profile, decision, ts)
	if err != nil {
		return nil, err
	}
	summaryFile, err := w.writeSummary(result, profile, decision, ts)
	if err != nil {
		return nil, err
	}
	if err := w.writeIndex(); err != nil {
		return nil, err
	}

	return &Files{
		HTMLReport:  htmlFile,
		JSONResult:  resultFile,
		JSONSummary: summaryFile,
	}, nil
}

func (w *Writer) writeHTML(result *domain.SimulationResult, profile *domain.UserProfile, decision string, ts int64) (string, error) {
	data := reportData{
		Profile:     profile,
		Decision:    decision,
		Result:      result,
		GeneratedAt: w.now().Format("2006-01-02 15:04:05"),
		AdviceParas: splitParagraphs(result.Advice),
	}

	path := filepath.Join(w.outDir, fmt.Sprintf("futureyou_report_%s_%d.html", profile.UserID, ts))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: create html file: %w", err)
	}
	defer f.Close()

	if err := reportTemplate.Execute(f, data); err != nil {
		return "", fmt.Errorf("report: render html: %w", err)
	}
	return path, nil
}

func (w *Writer) writeResult(result *domain.SimulationResult, profile *domain.UserProfile, decision string, ts int64) (string, error) {
	structured := map[string]any{
		"metadata": map[string]any{
			"user_id":   profile.UserID,
			"timestamp": ts,
			"datetime":  w.now().Format(time.RFC3339),
			"decision":  decision,
		},
		"user_profile": profile,
		"decision_dna": result.DNA,
		"scenarios":    result.Scenarios,
		"analysis":     result.Analysis,
		"advice":       result.Advice,
		"session_id":   result.SessionID,
	}

	path := filepath.Join(w.outDir, fmt.Sprintf("result_%s_%d.json", profile.UserID, ts))
	return path, writeJSONFile(path, structured)
}

func (w *Writer) writeSummary(result *domain.SimulationResult, profile *domain.UserProfile, decision string, ts int64) (string, error) {
	summary := map[string]any{
		"user":            profile.UserID,
		"decision":        truncate(decision, 100),
		"risk_tolerance":  result.DNA.RiskTolerance,
		"top_values":      firstN(result.DNA.ValuePriorities, 3),
		"scenarios_count": len(result.Scenarios),
		"best_scenario":   result.Analysis.BestScenario,
		"timestamp":       w.now().Format(time.RFC3339),
	}

	path := filepath.Join(w.outDir, fmt.Sprintf("summary_%s_%d.json", profile.UserID, ts))
	return path, writeJSONFile(path, summary)
}

// writeIndex regenerates index.html listing every report, newest first.
func (w *Writer) writeIndex() error {
	entries, err := os.ReadDir(w.outDir)
	if err != nil {
		return fmt.Errorf("report: list output dir: %w", err)
	}

	var reports []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".html") && name != "index.html" {
			reports = append(reports, name)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(reports)))

	path := filepath.Join(w.outDir, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create index: %w", err)
	}
	defer f.Close()

	data := indexData{
		GeneratedAt: w.now().Format("2006-01-02 15:04:05"),
		Reports:     reports,
	}
	if err := indexTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("report: render index: %w", err)
	}
	return nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("report: encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func splitParagraphs(text string) []string {
	var out []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para != "" {
			out = append(out, para)
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
