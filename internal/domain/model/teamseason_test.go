package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/okian/boxscore/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTeamSeasonFromFirstGame(t *testing.T) {
	Convey("Given the first game attributed to a team", t, func() {
		game := validGame()
		team := model.Team{ID: "1", Name: "Los Angeles Lakers"}

		Convey("When seeding the team aggregate", func() {
			season := model.TeamSeasonFromFirstGame(game, team)

			Convey("Then averages should start at the game's raw values", func() {
				So(season.Team, ShouldResemble, team)
				So(season.Season, ShouldEqual, game.Season)
				So(season.TotalGamesPlayed, ShouldEqual, 1)
				So(season.AverageTeamPoints, ShouldAlmostEqual, float64(game.Points), floatTolerance)
				So(season.AverageTeamRebounds, ShouldAlmostEqual, float64(game.Rebounds), floatTolerance)
				So(season.AverageTeamAssists, ShouldAlmostEqual, float64(game.Assists), floatTolerance)
				So(season.AverageTeamSteals, ShouldAlmostEqual, float64(game.Steals), floatTolerance)
				So(season.AverageTeamBlocks, ShouldAlmostEqual, float64(game.Blocks), floatTolerance)
				So(season.AverageTeamFouls, ShouldAlmostEqual, float64(game.Fouls), floatTolerance)
				So(season.AverageTeamTurnovers, ShouldAlmostEqual, float64(game.Turnovers), floatTolerance)
			})
		})
	})
}

func TestTeamSeasonWithNewGame(t *testing.T) {
	Convey("Given an existing team aggregate", t, func() {
		team := model.Team{ID: "1", Name: "Los Angeles Lakers"}
		first := validGame()
		season := model.TeamSeasonFromFirstGame(first, team)

		Convey("When folding in another roster game", func() {
			second := first
			second.PlayerID = "2"
			second.GameID = "game-2"
			second.Points = 31
			second.Assists = 5

			updated, err := season.WithNewGame(second)

			Convey("Then the running mean should follow (oldAvg*(n-1)+v)/n", func() {
				So(err, ShouldBeNil)
				So(updated.TotalGamesPlayed, ShouldEqual, 2)
				So(updated.AverageTeamPoints, ShouldAlmostEqual, (float64(first.Points)+float64(second.Points))/2, floatTolerance)
				So(updated.AverageTeamAssists, ShouldAlmostEqual, (float64(first.Assists)+float64(second.Assists))/2, floatTolerance)
			})

			Convey("And the original aggregate should be unchanged", func() {
				So(season.TotalGamesPlayed, ShouldEqual, 1)
			})
		})

		Convey("When folding a long sequence", func() {
			const n = 40
			sum := float64(first.Points)
			updated := season
			var err error
			for i := 2; i <= n; i++ {
				g := first
				g.PlayerID = fmt.Sprintf("%d", i%5+1)
				g.GameID = fmt.Sprintf("game-%d", i)
				g.Points = (i * 7) % 40
				sum += float64(g.Points)
				updated, err = updated.WithNewGame(g)
				So(err, ShouldBeNil)
			}

			Convey("Then the running mean should match the direct mean", func() {
				So(updated.TotalGamesPlayed, ShouldEqual, n)
				So(updated.AverageTeamPoints, ShouldAlmostEqual, sum/n, 1e-6)
			})
		})

		Convey("When the game belongs to another team", func() {
			wrong := first
			wrong.TeamID = "9"

			_, err := season.WithNewGame(wrong)
			So(errors.Is(err, model.ErrTeamMismatch), ShouldBeTrue)
		})

		Convey("When the game belongs to another season", func() {
			wrong := first
			wrong.Season = "2024-2025"

			_, err := season.WithNewGame(wrong)
			So(errors.Is(err, model.ErrSeasonMismatch), ShouldBeTrue)
		})
	})
}
