package roster

import "github.com/okian/boxscore/internal/domain/model"

// Seed returns the fixed roster the service starts with. There is no player
// or team lifecycle; this list is the whole league.
func Seed() *Roster {
	players := []model.Player{
		{ID: "1", Name: "LeBron James"},
		{ID: "2", Name: "Stephen Curry"},
		{ID: "3", Name: "Kevin Durant"},
		{ID: "4", Name: "Giannis Antetokounmpo"},
		{ID: "5", Name: "Nikola Jokic"},
		{ID: "6", Name: "Joel Embiid"},
		{ID: "7", Name: "Luka Doncic"},
		{ID: "8", Name: "Jayson Tatum"},
		{ID: "9", Name: "Ja Morant"},
		{ID: "10", Name: "Devin Booker"},
		{ID: "11", Name: "Michael Jordan"},
		{ID: "12", Name: "Bugs Bunny"},
		{ID: "13", Name: "Lola Bunny"},
		{ID: "14", Name: "Bill Murray"},
	}
	teams := []model.Team{
		{ID: "1", Name: "Los Angeles Lakers"},
		{ID: "2", Name: "Golden State Warriors"},
		{ID: "3", Name: "Phoenix Suns"},
		{ID: "4", Name: "Milwaukee Bucks"},
		{ID: "5", Name: "Denver Nuggets"},
		{ID: "6", Name: "Philadelphia 76ers"},
		{ID: "7", Name: "Dallas Mavericks"},
		{ID: "8", Name: "Boston Celtics"},
		{ID: "9", Name: "Memphis Grizzlies"},
		{ID: "10", Name: "Brooklyn Nets"},
	}
	return New(players, teams)
}
