package roster_test

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/clubgraph/roster"
)

// csvRow renders one FIFA-export row with the given fields at their column
// positions; every stat column holds statBase+i.
func csvRow(name string, age int, nationality string, overall, potential int, club string, statBase float64, pos string, rating float64) string {
	cols := make([]string, 63)
	cols[0] = "0"
	cols[1] = name
	cols[2] = strconv.Itoa(age)
	cols[4] = nationality
	cols[6] = strconv.Itoa(overall)
	cols[7] = strconv.Itoa(potential)
	cols[8] = club
	for i := range roster.StatNames {
		cols[25+i] = strconv.FormatFloat(statBase+float64(i), 'f', -1, 64)
	}
	cols[61] = pos
	cols[62] = strconv.FormatFloat(rating, 'f', -1, 64)

	return strings.Join(cols, ",")
}

func csvHeader() string {
	cols := make([]string, 63)
	for i := range cols {
		cols[i] = "c" + strconv.Itoa(i)
	}
	return strings.Join(cols, ",")
}

func player(name, club string, overall int) roster.Player {
	return roster.Player{Name: name, Club: club, Overall: overall}
}
