package model_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/okian/boxscore/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const floatTolerance = 1e-9

func TestPlayerSeasonFromFirstGame(t *testing.T) {
	Convey("Given a player's first game of the season", t, func() {
		game := validGame()

		Convey("When seeding the season aggregate", func() {
			season := model.PlayerSeasonFromFirstGame(game)

			Convey("Then totals should equal the game's raw values", func() {
				So(season.PlayerID, ShouldEqual, game.PlayerID)
				So(season.Season, ShouldEqual, game.Season)
				So(season.GamesPlayed, ShouldEqual, 1)
				So(season.TotalPoints, ShouldEqual, game.Points)
				So(season.TotalRebounds, ShouldEqual, game.Rebounds)
				So(season.TotalAssists, ShouldEqual, game.Assists)
				So(season.TotalSteals, ShouldEqual, game.Steals)
				So(season.TotalBlocks, ShouldEqual, game.Blocks)
				So(season.TotalFouls, ShouldEqual, game.Fouls)
				So(season.TotalTurnovers, ShouldEqual, game.Turnovers)
				So(season.TotalMinutesPlayed, ShouldAlmostEqual, game.MinutesPlayed, floatTolerance)
			})

			Convey("And averages should equal those same values", func() {
				So(season.AvgPoints, ShouldAlmostEqual, float64(game.Points), floatTolerance)
				So(season.AvgRebounds, ShouldAlmostEqual, float64(game.Rebounds), floatTolerance)
				So(season.AvgAssists, ShouldAlmostEqual, float64(game.Assists), floatTolerance)
				So(season.AvgSteals, ShouldAlmostEqual, float64(game.Steals), floatTolerance)
				So(season.AvgBlocks, ShouldAlmostEqual, float64(game.Blocks), floatTolerance)
				So(season.AvgFouls, ShouldAlmostEqual, float64(game.Fouls), floatTolerance)
				So(season.AvgTurnovers, ShouldAlmostEqual, float64(game.Turnovers), floatTolerance)
				So(season.AvgMinutesPlayed, ShouldAlmostEqual, game.MinutesPlayed, floatTolerance)
			})
		})
	})
}

func TestPlayerSeasonWithNewGame(t *testing.T) {
	Convey("Given an existing season aggregate", t, func() {
		first := validGame()
		season := model.PlayerSeasonFromFirstGame(first)

		Convey("When folding in a second game", func() {
			second := first
			second.StatID = "stat-2"
			second.GameID = "game-2"
			second.Points = 13
			second.Rebounds = 4
			second.MinutesPlayed = 28.3

			updated, err := season.WithNewGame(second)

			Convey("Then totals and averages should be recomputed", func() {
				So(err, ShouldBeNil)
				So(updated.GamesPlayed, ShouldEqual, 2)
				So(updated.TotalPoints, ShouldEqual, first.Points+second.Points)
				So(updated.AvgPoints, ShouldAlmostEqual, float64(first.Points+second.Points)/2, floatTolerance)
				So(updated.TotalRebounds, ShouldEqual, first.Rebounds+second.Rebounds)
				So(updated.AvgRebounds, ShouldAlmostEqual, float64(first.Rebounds+second.Rebounds)/2, floatTolerance)
				So(updated.TotalMinutesPlayed, ShouldAlmostEqual, first.MinutesPlayed+second.MinutesPlayed, floatTolerance)
			})

			Convey("And average minutes should round half-up to one decimal", func() {
				// (36.5 + 28.3) / 2 = 32.4 exactly.
				So(updated.AvgMinutesPlayed, ShouldAlmostEqual, 32.4, floatTolerance)
			})

			Convey("And the original aggregate should be unchanged", func() {
				So(season.GamesPlayed, ShouldEqual, 1)
				So(season.TotalPoints, ShouldEqual, first.Points)
			})
		})

		Convey("When the half-up tie case occurs", func() {
			// 36.5 + 28.4 = 64.9, halved is 32.45, which rounds up to 32.5.
			second := first
			second.GameID = "game-2"
			second.MinutesPlayed = 28.4

			updated, err := season.WithNewGame(second)
			So(err, ShouldBeNil)
			So(updated.AvgMinutesPlayed, ShouldAlmostEqual, 32.5, floatTolerance)
		})

		Convey("When the game belongs to another player", func() {
			wrong := first
			wrong.PlayerID = "99"

			_, err := season.WithNewGame(wrong)

			Convey("Then the fold should fail and leave the aggregate intact", func() {
				So(errors.Is(err, model.ErrPlayerMismatch), ShouldBeTrue)
				So(season.GamesPlayed, ShouldEqual, 1)
			})
		})

		Convey("When the game belongs to another season", func() {
			wrong := first
			wrong.Season = "2024-2025"

			_, err := season.WithNewGame(wrong)
			So(errors.Is(err, model.ErrSeasonMismatch), ShouldBeTrue)
		})
	})
}

func TestPlayerSeasonSequence(t *testing.T) {
	Convey("Given a sequence of N games for one player and season", t, func() {
		const n = 12
		games := make([]model.PlayerGameStats, n)
		for i := range games {
			g := validGame()
			g.StatID = fmt.Sprintf("stat-%d", i)
			g.GameID = fmt.Sprintf("game-%d", i)
			g.Points = 10 + i
			g.Rebounds = i % 5
			g.Assists = i % 7
			g.Fouls = i % 6
			g.MinutesPlayed = 24.0 + float64(i%10)*0.1
			g.Timestamp = g.Timestamp.Add(time.Duration(i) * 48 * time.Hour)
			games[i] = g
		}

		Convey("When folding them in sequentially", func() {
			season := model.PlayerSeasonFromFirstGame(games[0])
			var err error
			for _, g := range games[1:] {
				season, err = season.WithNewGame(g)
				So(err, ShouldBeNil)
			}

			Convey("Then gamesPlayed equals N and every average equals total/N", func() {
				So(season.GamesPlayed, ShouldEqual, n)
				So(season.AvgPoints, ShouldAlmostEqual, float64(season.TotalPoints)/n, floatTolerance)
				So(season.AvgRebounds, ShouldAlmostEqual, float64(season.TotalRebounds)/n, floatTolerance)
				So(season.AvgAssists, ShouldAlmostEqual, float64(season.TotalAssists)/n, floatTolerance)
				So(season.AvgSteals, ShouldAlmostEqual, float64(season.TotalSteals)/n, floatTolerance)
				So(season.AvgBlocks, ShouldAlmostEqual, float64(season.TotalBlocks)/n, floatTolerance)
				So(season.AvgFouls, ShouldAlmostEqual, float64(season.TotalFouls)/n, floatTolerance)
				So(season.AvgTurnovers, ShouldAlmostEqual, float64(season.TotalTurnovers)/n, floatTolerance)
			})
		})
	})
}
