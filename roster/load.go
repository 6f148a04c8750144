package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Column layout of the FIFA player export.
const (
	colName              = 1
	colAge               = 2
	colNationality       = 4
	colOverall           = 6
	colPotential         = 7
	colClub              = 8
	colStatsFirst        = 25
	colBestPosition      = 61
	colBestOverallRating = 62
)

// LoadStats counts what happened to each data row during Load.
type LoadStats struct {
	Rows    int // data rows read, header excluded
	Skipped int // rows the CSV reader could not parse
	Kept    int // rows that became the stored record for their key
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, log *zap.Logger) (*Roster, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("roster: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, log)
}

// Load reads a CSV player export with a header row.
//
// Missing or unparsable numeric fields become 0 and missing text fields
// become "". Rows the CSV reader rejects are skipped, counted and logged at
// warn level. Only I/O failures abort the load.
func Load(r io.Reader, log *zap.Logger) (*Roster, LoadStats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var stats LoadStats
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, ErrBadHeader
		}
		return nil, stats, fmt.Errorf("roster: read header: %w", err)
	}

	ros := New()
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, stats, fmt.Errorf("roster: read row %d: %w", stats.Rows+1, err)
			}
			stats.Rows++
			stats.Skipped++
			log.Warn("skipping unreadable row", zap.Int("line", perr.Line), zap.Error(err))
			continue
		}
		stats.Rows++
		if ros.AddPlayer(parsePlayer(rec)) {
			stats.Kept++
		}
	}
	log.Info("roster loaded",
		zap.Int("rows", stats.Rows),
		zap.Int("skipped", stats.Skipped),
		zap.Int("players", ros.Len()),
		zap.Int("clubs", ros.ClubCount()),
	)

	return ros, stats, nil
}

// parsePlayer maps one record onto a Player by column index.
func parsePlayer(rec []string) Player {
	p := Player{
		Name:              text(rec, colName),
		Age:               integer(rec, colAge),
		Nationality:       text(rec, colNationality),
		Club:              text(rec, colClub),
		Overall:           integer(rec, colOverall),
		Potential:         integer(rec, colPotential),
		BestPosition:      text(rec, colBestPosition),
		BestOverallRating: float(rec, colBestOverallRating),
		Stats:             make(map[string]float64, len(StatNames)),
	}
	for i, name := range StatNames {
		p.Stats[name] = float(rec, colStatsFirst+i)
	}

	return p
}

func text(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func integer(rec []string, i int) int {
	n, err := strconv.Atoi(text(rec, i))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func float(rec []string, i int) float64 {
	f, err := strconv.ParseFloat(text(rec, i), 64)
	if err != nil {
		return 0
	}
	return f
}
