package report_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clubgraph/analysis"
	"github.com/katalvlaran/clubgraph/bfs"
	"github.com/katalvlaran/clubgraph/report"
	"github.com/katalvlaran/clubgraph/roster"
)

func TestPrintComparison(t *testing.T) {
	var buf bytes.Buffer
	p := report.NewPrinter(&buf, false)
	p.PrintComparison(roster.Comparison{
		Left: roster.Player{Name: "Ann", Age: 30, Club: "Reds", Overall: 80, BestOverallRating: 81.5,
			Stats: map[string]float64{"Height": 170}},
		Right: roster.Player{Name: "Bob", Age: 22, Club: "Blues", Overall: 75},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 8+1+len(roster.StatNames))
	assert.Equal(t, "Comparison between Ann and Bob:", lines[0])
	assert.Equal(t, "Age: 30 vs 22", lines[1])
	assert.Equal(t, "Club: Reds vs Blues", lines[3])
	assert.Equal(t, "Best Overall Rating: 81.5 vs 0", lines[7])
	assert.Equal(t, "Stats Comparison:", lines[8])
	assert.Equal(t, "Height: 170 vs 0", lines[9])
	assert.Equal(t, "Vision: 0 vs 0", lines[len(lines)-1])
}

func TestPrintPath(t *testing.T) {
	var buf bytes.Buffer
	p := report.NewPrinter(&buf, false)

	p.PrintPath("Ann", "Cat", []string{"Ann", "Bob", "Cat"}, nil)
	assert.Equal(t, "Connection path found:\n1. Ann\n2. Bob\n3. Cat\n", buf.String())

	buf.Reset()
	p.PrintPath("Ann", "Dan", nil, fmt.Errorf("%w from a to d", bfs.ErrNoPath))
	assert.Equal(t, "No connection found between Ann and Dan\n", buf.String())

	buf.Reset()
	p.PrintPath("Ann", "Zed", nil, fmt.Errorf("%w: %q", roster.ErrPlayerNotFound, "Zed"))
	assert.Contains(t, buf.String(), "player not found")
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	p := report.NewPrinter(&buf, false)
	p.PrintStats(report.StatsReport{
		Summary:        analysis.Summary{Vertices: 3, Edges: 3, MinDegree: 2, MaxDegree: 2, AverageDegree: 2, EdgeDensity: 1},
		Distribution:   map[int]int{2: 3},
		Densest:        analysis.Subgraph{Vertices: []string{"A", "B", "C"}, Density: 1},
		Global:         1,
		Average:        1,
		Top:            []analysis.Ranked{{ID: "A", Score: 1.0 / 3}},
		TopBetweenness: []analysis.Ranked{{ID: "B", Score: 2}},
	})

	out := buf.String()
	assert.Contains(t, out, "Vertices: 3\n")
	assert.Contains(t, out, "  degree 2: 3\n")
	assert.Contains(t, out, "Members: A, B, C\n")
	assert.Contains(t, out, "Global: 1.0000\n")
	assert.Contains(t, out, "1. A 0.333333\n")
	assert.Contains(t, out, "Top betweenness:\n1. B 2.00\n")
}

func TestPrintStats_NoTop(t *testing.T) {
	var buf bytes.Buffer
	report.NewPrinter(&buf, false).PrintStats(report.StatsReport{})
	assert.NotContains(t, buf.String(), "Top PageRank")
	assert.NotContains(t, buf.String(), "Top betweenness")
}
