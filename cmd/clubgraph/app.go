package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/clubgraph/analysis"
	"github.com/katalvlaran/clubgraph/bfs"
	"github.com/katalvlaran/clubgraph/clustering"
	"github.com/katalvlaran/clubgraph/internal/config"
	"github.com/katalvlaran/clubgraph/report"
	"github.com/katalvlaran/clubgraph/roster"
)

// app carries the per-invocation state shared by every subcommand.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	session string
	roster  *roster.Roster
	printer *report.Printer
}

// newApp tags log with a fresh session id and binds the printer to out.
func newApp(cfg *config.Config, log *zap.Logger, out io.Writer) *app {
	session := uuid.NewString()
	return &app{
		cfg:     cfg,
		log:     log.With(zap.String("session", session)),
		session: session,
		printer: report.NewPrinter(out, cfg.Styled),
	}
}

// load reads the roster once; later calls reuse it.
func (a *app) load() error {
	if a.roster != nil {
		return nil
	}
	r, stats, err := roster.LoadFile(a.cfg.DataPath, a.log)
	if err != nil {
		a.log.Error("failed to load roster", zap.String("path", a.cfg.DataPath), zap.Error(err))
		return err
	}
	a.log.Debug("roster ready", zap.Int("rows", stats.Rows), zap.Int("skipped", stats.Skipped))
	a.roster = r

	return nil
}

func (a *app) compare(p1, p2 string) {
	a.log.Info("compare", zap.String("a", p1), zap.String("b", p2))
	c, err := a.roster.Compare(p1, p2)
	if err != nil {
		a.log.Warn("compare failed", zap.Error(err))
		a.printer.PrintPath(p1, p2, nil, err)
		return
	}
	a.printer.PrintComparison(c)
}

// connect searches the club partition directly.
func (a *app) connect(p1, p2 string) {
	a.log.Info("connect", zap.String("a", p1), zap.String("b", p2))
	path, err := a.roster.FindConnection(p1, p2)
	if err != nil {
		a.log.Warn("no connection", zap.Error(err))
	}
	a.printer.PrintPath(p1, p2, a.roster.DisplayNames(path), err)
}

// path runs BFS over the materialized teammate graph.
func (a *app) path(p1, p2 string) {
	a.log.Info("path", zap.String("a", p1), zap.String("b", p2))
	path, err := bfs.ShortestPath(a.roster.Graph(), roster.Key(p1), roster.Key(p2))
	switch {
	case errors.Is(err, bfs.ErrStartVertexNotFound):
		err = fmt.Errorf("%w: %q", roster.ErrPlayerNotFound, p1)
	case errors.Is(err, bfs.ErrEndVertexNotFound):
		err = fmt.Errorf("%w: %q", roster.ErrPlayerNotFound, p2)
	}
	if err != nil {
		a.log.Warn("no path", zap.Error(err))
	}
	a.printer.PrintPath(p1, p2, a.roster.DisplayNames(path), err)
}

// stats analyzes the teammate graph. top <= 0 falls back to cfg.TopK.
// Betweenness costs O(V·E), so it only runs when withBetweenness is set.
func (a *app) stats(top int, withBetweenness bool) error {
	if top <= 0 {
		top = a.cfg.TopK
	}
	g := a.roster.Graph()
	a.log.Info("stats", zap.Int("vertices", g.VertexCount()), zap.Int("edges", g.EdgeCount()))

	rep := report.StatsReport{
		Summary:      analysis.Summarize(g),
		Distribution: analysis.DegreeDistribution(g),
		Densest:      analysis.DensestSubgraph(g),
		Global:       clustering.Global(g),
		Average:      clustering.Average(g),
	}
	rep.Densest.Vertices = a.roster.DisplayNames(rep.Densest.Vertices)

	if top > 0 {
		scores, err := analysis.PageRank(g, a.cfg.PageRankDamping, a.cfg.PageRankTolerance)
		if err != nil {
			return err
		}
		rep.Top = a.displayRanked(analysis.TopK(scores, top))
		if withBetweenness {
			rep.TopBetweenness = a.displayRanked(analysis.TopK(analysis.Betweenness(g), top))
		}
	}
	a.printer.PrintStats(rep)

	return nil
}

// displayRanked swaps roster keys for display names in place.
func (a *app) displayRanked(rs []analysis.Ranked) []analysis.Ranked {
	for i := range rs {
		rs[i].ID = a.roster.DisplayNames([]string{rs[i].ID})[0]
	}
	return rs
}
