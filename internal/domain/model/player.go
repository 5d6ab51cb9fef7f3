// Package model contains the immutable domain values for players, teams and
// their game and season statistics.
package model

// Player identifies a league player. Players come from the seed roster and
// are never mutated or deleted.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Team identifies a league team. Teams come from the seed roster and are
// never mutated or deleted.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
