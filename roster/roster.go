package roster

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/clubgraph/bfs"
	"github.com/katalvlaran/clubgraph/core"
)

// Roster holds deduplicated players and the club partition over their keys.
// A Roster is not safe for concurrent mutation.
type Roster struct {
	players map[string]Player
	// clubs[clubKey] = ordered set of player keys
	clubs map[string]*treeset.Set
}

// Comparison pairs two players for side-by-side display.
type Comparison struct {
	Left, Right Player
}

// New returns an empty Roster.
func New() *Roster {
	return &Roster{
		players: make(map[string]Player),
		clubs:   make(map[string]*treeset.Set),
	}
}

// AddPlayer inserts p, replacing an existing record with the same key only
// when p.Overall is strictly higher. p's club always gains the key.
// It reports whether p became the stored record.
//
// A blank club joins no club. Keying clubs by the raw export column would
// put every clubless player into one shared "" club and make all free
// agents teammates; here they have no teammates at all.
func (r *Roster) AddPlayer(p Player) bool {
	key := p.Key()
	stored := false
	if old, ok := r.players[key]; !ok || p.Overall > old.Overall {
		r.players[key] = p
		stored = true
	}
	club := Key(p.Club)
	if club == "" {
		return stored
	}
	members, ok := r.clubs[club]
	if !ok {
		members = treeset.NewWithStringComparator()
		r.clubs[club] = members
	}
	members.Add(key)

	return stored
}

// Len returns the number of distinct players.
func (r *Roster) Len() int { return len(r.players) }

// ClubCount returns the number of distinct non-empty clubs.
func (r *Roster) ClubCount() int { return len(r.clubs) }

// Player looks up a player by display name or key.
func (r *Roster) Player(name string) (Player, bool) {
	p, ok := r.players[Key(name)]
	return p, ok
}

// Names returns the display names of all players, sorted.
func (r *Roster) Names() []string {
	out := make([]string, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p.Name)
	}
	sort.Strings(out)

	return out
}

// DisplayNames maps roster keys back to display names.
// Unknown keys are returned unchanged.
func (r *Roster) DisplayNames(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if p, ok := r.players[k]; ok {
			out[i] = p.Name
		} else {
			out[i] = k
		}
	}

	return out
}

// Teammates returns the keys of the other members of the club recorded on
// id's stored player, in ascending order. It satisfies bfs.NeighborFunc.
func (r *Roster) Teammates(id string) ([]string, error) {
	p, ok := r.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, id)
	}
	members, ok := r.clubs[Key(p.Club)]
	if !ok {
		return []string{}, nil
	}
	out := make([]string, 0, members.Size())
	for _, v := range members.Values() {
		if mate := v.(string); mate != id {
			out = append(out, mate)
		}
	}

	return out, nil
}

var _ bfs.NeighborFunc = (*Roster)(nil).Teammates

// FindConnection returns the shortest teammate chain between the players
// named a and b, as roster keys. Both players must exist.
// An unreachable pair yields an error matching bfs.ErrNoPath.
func (r *Roster) FindConnection(a, b string, opts ...bfs.Option) ([]string, error) {
	start, end := Key(a), Key(b)
	if err := r.requirePlayers(a, b); err != nil {
		return nil, err
	}

	return bfs.Search(start, end, r.Teammates, opts...)
}

// Compare returns both players, or ErrPlayerNotFound naming the missing ones.
func (r *Roster) Compare(a, b string) (Comparison, error) {
	if err := r.requirePlayers(a, b); err != nil {
		return Comparison{}, err
	}

	return Comparison{Left: r.players[Key(a)], Right: r.players[Key(b)]}, nil
}

func (r *Roster) requirePlayers(names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := r.players[Key(n)]; !ok {
			missing = append(missing, fmt.Sprintf("%q", strings.TrimSpace(n)))
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrPlayerNotFound, strings.Join(missing, ", "))
}

// Graph materializes the club partition as a teammate graph: every player is
// a vertex and every pair sharing a club is an edge. Players without a club
// stay isolated.
func (r *Roster) Graph() *core.Graph {
	g := core.NewGraph()
	for key := range r.players {
		g.AddVertex(key)
	}
	for _, members := range r.clubs {
		keys := members.Values()
		for i := 0; i < len(keys); i++ {
			for j := i + 1; j < len(keys); j++ {
				g.AddEdge(keys[i].(string), keys[j].(string))
			}
		}
	}

	return g
}
