package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"futureyou/internal/domain"
)

// WriteDNAChart renders a small SVG bar chart of the run: the user's risk
// tolerance plus the alignment score of every scenario. Best-effort output
// for the --visuals flag; callers tolerate its failure.
func WriteDNAChart(result *domain.SimulationResult, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("chart: create dir: %w", err)
	}

	type bar struct {
		label string
		value float64
	}
	bars := []bar{{label: "risk tolerance", value: result.DNA.RiskTolerance}}

	ids := make([]string, 0, len(result.Analysis.AlignmentScore))
	for id := range result.Analysis.AlignmentScore {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		bars = append(bars, bar{label: id, value: result.Analysis.AlignmentScore[id]})
	}

	const (
		width     = 640
		rowHeight = 34
		barLeft   = 180
		barWidth  = 400
	)
	height := 50 + rowHeight*len(bars)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", width, height)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#f5f7fa"/>`+"\n", width, height)
	fmt.Fprintf(&b, `<text x="20" y="30" font-family="sans-serif" font-size="16" fill="#2c3e50">Decision DNA for %s</text>`+"\n", result.SessionID)

	for i, bar := range bars {
		y := 50 + i*rowHeight
		w := int(bar.value * barWidth)
		fmt.Fprintf(&b, `<text x="20" y="%d" font-family="sans-serif" font-size="12" fill="#2c3e50">%s</text>`+"\n", y+16, bar.label)
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="20" rx="4" fill="#667eea"/>`+"\n", barLeft, y, w)
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="12" fill="#666">%.2f</text>`+"\n", barLeft+w+8, y+15, bar.value)
	}
	b.WriteString("</svg>\n")

	path := filepath.Join(dir, fmt.Sprintf("dna_%s.svg", result.SessionID))
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("chart: write svg: %w", err)
	}
	return path, nil
}
