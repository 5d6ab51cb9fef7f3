// Package roster provides a read-only snapshot of the league's players and
// teams, populated once at startup and injected into the service.
package roster

import (
	"sort"

	"github.com/okian/boxscore/internal/domain/model"
)

// Roster holds the seeded players and teams. It is immutable after
// construction, so concurrent reads need no locking.
type Roster struct {
	players map[string]model.Player
	teams   map[string]model.Team
}

// New builds a roster snapshot from the given players and teams. Later
// entries win on duplicate ids.
func New(players []model.Player, teams []model.Team) *Roster {
	r := &Roster{
		players: make(map[string]model.Player, len(players)),
		teams:   make(map[string]model.Team, len(teams)),
	}
	for _, p := range players {
		r.players[p.ID] = p
	}
	for _, t := range teams {
		r.teams[t.ID] = t
	}
	return r
}

// Player returns the player with the given id.
func (r *Roster) Player(id string) (model.Player, bool) {
	p, ok := r.players[id]
	return p, ok
}

// Team returns the team with the given id.
func (r *Roster) Team(id string) (model.Team, bool) {
	t, ok := r.teams[id]
	return t, ok
}

// Players returns all players ordered by id.
func (r *Roster) Players() []model.Player {
	out := make([]model.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Teams returns all teams ordered by id.
func (r *Roster) Teams() []model.Team {
	out := make([]model.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PlayerCount returns the number of seeded players.
func (r *Roster) PlayerCount() int { return len(r.players) }

// TeamCount returns the number of seeded teams.
func (r *Roster) TeamCount() int { return len(r.teams) }
