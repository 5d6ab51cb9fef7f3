package model_test

import (
	"testing"
	"time"

	"github.com/okian/boxscore/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func validGame() model.PlayerGameStats {
	return model.PlayerGameStats{
		StatID:        "stat-1",
		PlayerID:      "1",
		GameID:        "game-1",
		TeamID:        "1",
		Timestamp:     time.Date(2024, 3, 14, 19, 30, 0, 0, time.UTC),
		Season:        "2023-2024",
		Points:        27,
		Rebounds:      8,
		Assists:       9,
		Steals:        1,
		Blocks:        1,
		Fouls:         2,
		Turnovers:     3,
		MinutesPlayed: 36.5,
	}
}

func TestPlayerGameStatsValidation(t *testing.T) {
	Convey("Given a fully populated game stats value", t, func() {
		game := validGame()

		Convey("When validating it", func() {
			_, err := model.NewPlayerGameStats(game)

			Convey("Then it should pass", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When minutes played is 32.5", func() {
			game.MinutesPlayed = 32.5
			_, err := model.NewPlayerGameStats(game)

			Convey("Then it should pass the increment check", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When minutes played is 32.55", func() {
			game.MinutesPlayed = 32.55
			_, err := model.NewPlayerGameStats(game)

			Convey("Then construction should fail on the 0.1 increment rule", func() {
				So(err, ShouldNotBeNil)
				ve, ok := model.AsValidationError(err)
				So(ok, ShouldBeTrue)
				So(ve.Fields["minutesPlayed"], ShouldEqual, "Minutes played must be in increments of 0.1")
			})
		})

		Convey("When minutes played exceeds 48", func() {
			game.MinutesPlayed = 48.1
			err := game.Validate()

			Convey("Then the range rule should fire", func() {
				ve, ok := model.AsValidationError(err)
				So(ok, ShouldBeTrue)
				So(ve.Fields["minutesPlayed"], ShouldEqual, "Minutes played must be between 0 and 48")
			})
		})

		Convey("When fouls are out of range", func() {
			game.Fouls = 7
			err := game.Validate()

			Convey("Then the fouls rule should fire", func() {
				ve, ok := model.AsValidationError(err)
				So(ok, ShouldBeTrue)
				So(ve.Fields["fouls"], ShouldEqual, "Fouls must be between 0 and 6")
			})
		})

		Convey("When counting stats are negative", func() {
			game.Points = -1
			game.Turnovers = -2
			err := game.Validate()

			Convey("Then every violated field should be reported", func() {
				ve, ok := model.AsValidationError(err)
				So(ok, ShouldBeTrue)
				So(ve.Fields["points"], ShouldEqual, "Points must be zero or positive")
				So(ve.Fields["turnovers"], ShouldEqual, "Turnovers must be zero or positive")
				So(len(ve.Fields), ShouldEqual, 2)
			})
		})

		Convey("When identifiers are missing", func() {
			game.StatID = ""
			game.PlayerID = ""
			game.Season = ""
			game.Timestamp = time.Time{}
			err := game.Validate()

			Convey("Then the required-field rules should fire", func() {
				ve, ok := model.AsValidationError(err)
				So(ok, ShouldBeTrue)
				So(ve.Fields["statId"], ShouldEqual, "Statistics ID is required")
				So(ve.Fields["playerId"], ShouldEqual, "Player ID is required")
				So(ve.Fields["season"], ShouldEqual, "Season identifier is required")
				So(ve.Fields["timestamp"], ShouldEqual, "Timestamp is required")
			})
		})

		Convey("When zero minutes are played", func() {
			game.MinutesPlayed = 0
			So(game.Validate(), ShouldBeNil)
		})
	})
}
