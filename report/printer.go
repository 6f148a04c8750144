package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/clubgraph/analysis"
	"github.com/katalvlaran/clubgraph/bfs"
	"github.com/katalvlaran/clubgraph/roster"
)

// Printer writes reports to w. When styled is false no escape sequences are
// emitted, which keeps output stable for pipes and tests.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, styled bool) *Printer {
	return &Printer{w: w, styled: styled}
}

// StatsReport gathers the numbers printed by PrintStats.
type StatsReport struct {
	Summary      analysis.Summary
	Distribution map[int]int
	Densest      analysis.Subgraph
	Global       float64
	Average      float64
	// Top holds the leading PageRank entries, already display-named.
	Top []analysis.Ranked
	// TopBetweenness is optional; nothing is printed when empty.
	TopBetweenness []analysis.Ranked
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p *Printer) title(text string) {
	fmt.Fprintln(p.w, p.render(styles.Title, text))
}

func (p *Printer) line(label, format string, args ...any) {
	fmt.Fprintf(p.w, "%s: %s\n", p.render(styles.Label, label), fmt.Sprintf(format, args...))
}

// PrintComparison lists the two players' attributes side by side, then each
// stat in roster.StatNames order.
func (p *Printer) PrintComparison(c roster.Comparison) {
	l, r := c.Left, c.Right
	p.title(fmt.Sprintf("Comparison between %s and %s:", l.Name, r.Name))
	p.line("Age", "%d vs %d", l.Age, r.Age)
	p.line("Nationality", "%s vs %s", l.Nationality, r.Nationality)
	p.line("Club", "%s vs %s", l.Club, r.Club)
	p.line("Overall", "%d vs %d", l.Overall, r.Overall)
	p.line("Potential", "%d vs %d", l.Potential, r.Potential)
	p.line("Best Position", "%s vs %s", l.BestPosition, r.BestPosition)
	p.line("Best Overall Rating", "%s vs %s", num(l.BestOverallRating), num(r.BestOverallRating))
	p.title("Stats Comparison:")
	for _, stat := range roster.StatNames {
		p.line(stat, "%s vs %s", num(l.Stat(stat)), num(r.Stat(stat)))
	}
}

// PrintPath prints a numbered connection path between from and to, or a
// one-line explanation when err is set.
func (p *Printer) PrintPath(from, to string, path []string, err error) {
	switch {
	case errors.Is(err, roster.ErrPlayerNotFound):
		fmt.Fprintln(p.w, p.render(styles.Warning, err.Error()))
		return
	case errors.Is(err, bfs.ErrNotFound) || (err == nil && len(path) == 0):
		fmt.Fprintln(p.w, p.render(styles.Warning,
			fmt.Sprintf("No connection found between %s and %s", from, to)))
		return
	case err != nil:
		fmt.Fprintln(p.w, p.render(styles.Warning, err.Error()))
		return
	}
	p.title("Connection path found:")
	for i, name := range path {
		fmt.Fprintf(p.w, "%s %s\n", p.render(styles.Muted, strconv.Itoa(i+1)+"."), name)
	}
}

// PrintStats prints the structural summary of a graph.
func (p *Printer) PrintStats(s StatsReport) {
	p.title("Graph summary:")
	p.line("Vertices", "%d", s.Summary.Vertices)
	p.line("Edges", "%d", s.Summary.Edges)
	p.line("Isolated", "%d", s.Summary.Isolated)
	p.line("Components", "%d (largest %d)", s.Summary.Components, s.Summary.LargestComponent)
	p.line("Degree range", "%d..%d", s.Summary.MinDegree, s.Summary.MaxDegree)
	p.line("Average degree", "%.3f", s.Summary.AverageDegree)
	p.line("Edge density", "%.4f", s.Summary.EdgeDensity)

	p.title("Degree distribution:")
	for _, d := range analysis.SortedDegrees(s.Distribution) {
		p.line(fmt.Sprintf("  degree %d", d), "%d", s.Distribution[d])
	}

	p.title("Densest ego-network:")
	p.line("Density", "%.3f", s.Densest.Density)
	p.line("Members", "%s", strings.Join(s.Densest.Vertices, ", "))

	p.title("Clustering:")
	p.line("Global", "%.4f", s.Global)
	p.line("Average", "%.4f", s.Average)

	p.ranking("Top PageRank:", s.Top, "%.6f")
	p.ranking("Top betweenness:", s.TopBetweenness, "%.2f")
}

func (p *Printer) ranking(heading string, rs []analysis.Ranked, scoreFormat string) {
	if len(rs) == 0 {
		return
	}
	p.title(heading)
	for i, r := range rs {
		fmt.Fprintf(p.w, "%s %s "+scoreFormat+"\n", p.render(styles.Muted, strconv.Itoa(i+1)+"."), r.ID, r.Score)
	}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
