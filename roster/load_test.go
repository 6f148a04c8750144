package roster_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/clubgraph/roster"
)

func TestLoad_MapsColumns(t *testing.T) {
	data := strings.Join([]string{
		csvHeader(),
		csvRow("L. Messi", 29, "Argentina", 93, 93, "FC Barcelona", 10, "RW", 93.5),
		csvRow("Neymar", 24, "Brazil", 92, 94, "FC Barcelona", 40, "LW", 92),
	}, "\n")

	r, stats, err := roster.Load(strings.NewReader(data), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, roster.LoadStats{Rows: 2, Kept: 2}, stats)
	assert.Equal(t, 2, r.Len())

	p, ok := r.Player("l. messi")
	require.True(t, ok)
	assert.Equal(t, "L. Messi", p.Name)
	assert.Equal(t, 29, p.Age)
	assert.Equal(t, "Argentina", p.Nationality)
	assert.Equal(t, 93, p.Overall)
	assert.Equal(t, 93, p.Potential)
	assert.Equal(t, "FC Barcelona", p.Club)
	assert.Equal(t, "RW", p.BestPosition)
	assert.Equal(t, 93.5, p.BestOverallRating)
	assert.Equal(t, 10.0, p.Stat("Height"))
	assert.Equal(t, 33.0, p.Stat("Vision"))
	assert.Len(t, p.Stats, len(roster.StatNames))

	path, err := r.FindConnection("Neymar", "L. Messi")
	require.NoError(t, err)
	assert.Equal(t, []string{"neymar", "l. messi"}, path)
}

func TestLoad_DefaultsAndShortRows(t *testing.T) {
	data := csvHeader() + "\n" +
		"0,Short Row,abc,,Nowhere\n" +
		strings.Replace(csvRow("Odd", 20, "X", 70, 71, "Club", 0, "ST", 70), ",70,71,", ",seventy,71,", 1)

	r, stats, err := roster.Load(strings.NewReader(data), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Rows)

	p, ok := r.Player("short row")
	require.True(t, ok)
	assert.Equal(t, 0, p.Age)
	assert.Equal(t, "Nowhere", p.Nationality)
	assert.Equal(t, "", p.Club)
	assert.Equal(t, 0.0, p.Stat("Vision"))

	odd, ok := r.Player("odd")
	require.True(t, ok)
	assert.Equal(t, 0, odd.Overall)
	assert.Equal(t, 71, odd.Potential)
}

func TestLoad_SkipsUnreadableRows(t *testing.T) {
	data := csvHeader() + "\n" +
		csvRow("Good", 20, "X", 70, 70, "A", 0, "ST", 70) + "\n" +
		"1,Bad\"Row,2\n" +
		csvRow("Also Good", 21, "Y", 71, 71, "A", 0, "CB", 71)

	r, stats, err := roster.Load(strings.NewReader(data), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 1, stats.Skipped)
}

func TestLoad_Empty(t *testing.T) {
	_, _, err := roster.Load(strings.NewReader(""), nil)
	assert.ErrorIs(t, err, roster.ErrBadHeader)

	r, stats, err := roster.Load(strings.NewReader(csvHeader()+"\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, roster.LoadStats{}, stats)
}

func TestLoad_Dedupe(t *testing.T) {
	data := strings.Join([]string{
		csvHeader(),
		csvRow("Same Name", 30, "X", 70, 70, "Old Club", 0, "ST", 70),
		csvRow("same name", 25, "X", 85, 88, "New Club", 0, "ST", 85),
		csvRow("Same Name ", 22, "X", 60, 90, "Third Club", 0, "ST", 60),
	}, "\n")

	r, stats, err := roster.Load(strings.NewReader(data), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 2, stats.Kept)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 3, r.ClubCount())

	p, _ := r.Player("SAME NAME")
	assert.Equal(t, 85, p.Overall)
	assert.Equal(t, "New Club", p.Club)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte(csvHeader()+"\n"+csvRow("Solo", 19, "Z", 60, 80, "Club", 0, "GK", 60)+"\n"), 0o600))

	r, _, err := roster.LoadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	_, _, err = roster.LoadFile(filepath.Join(t.TempDir(), "missing.csv"), nil)
	assert.Error(t, err)
}
