package stats_test

import (
	"testing"

	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlayerStats(t *testing.T) {
	Convey("Given a team with two shooters, one made three each", t, func() {
		events := []model.ShotEvent{
			row("g1", "Kentucky", "Duke", 3, 0, "Kentucky", "Player1", model.OutcomeMade, true, false, "Three Point Shot"),
			row("g1", "Kentucky", "Duke", 6, 0, "Kentucky", "Player2", model.OutcomeMade, true, false, "Three Point Shot"),
		}

		Convey("When aggregating players", func() {
			players := stats.PlayerStats(events, "Kentucky")

			Convey("Then each gets a 3-point, one-game line", func() {
				So(len(players), ShouldEqual, 2)
				for _, p := range players {
					So(p.TotalPoints, ShouldEqual, 3)
					So(p.GamesPlayed, ShouldEqual, 1)
					So(p.PPG, ShouldAlmostEqual, 3.0)
					So(p.FGPercentage, ShouldAlmostEqual, 100.0)
					So(p.ThreePercentage, ShouldAlmostEqual, 100.0)
				}
			})

			Convey("Then players appear in first-appearance order", func() {
				So(players[0].Player, ShouldEqual, "Player1")
				So(players[1].Player, ShouldEqual, "Player2")
			})
		})
	})

	Convey("Given rows without a shooter", t, func() {
		events := []model.ShotEvent{
			row("g1", "Kentucky", "Duke", 2, 0, "Kentucky", "Player1", model.OutcomeMade, false, false, "Jump Shot"),
			row("g1", "Kentucky", "Duke", 2, 0, "Kentucky", "", model.OutcomeNone, false, false, "Timeout"),
		}

		Convey("Then they are excluded, not grouped as unknown", func() {
			players := stats.PlayerStats(events, "Kentucky")
			So(len(players), ShouldEqual, 1)
			So(players[0].Player, ShouldEqual, "Player1")
		})
	})

	Convey("Given a shooter with missed shots across two games", t, func() {
		events := []model.ShotEvent{
			row("g1", "Kentucky", "Duke", 2, 0, "Kentucky", "Player1", model.OutcomeMade, false, false, "Jump Shot"),
			row("g2", "Kentucky", "LSU", 0, 0, "Kentucky", "Player1", model.OutcomeMissed, false, false, "Jump Shot"),
			row("g2", "Kentucky", "LSU", 1, 0, "Kentucky", "Player1", model.OutcomeMade, false, true, "Free Throw 1 of 2"),
		}

		Convey("When aggregating", func() {
			players := stats.PlayerStats(events, "Kentucky")

			Convey("Then games count all appearances and points only made shots", func() {
				So(len(players), ShouldEqual, 1)
				p := players[0]
				So(p.GamesPlayed, ShouldEqual, 2)
				So(p.TotalPoints, ShouldEqual, 3) // 2 + free throw
				So(p.PPG, ShouldAlmostEqual, 1.5)
			})
		})
	})
}

func TestTopScorers(t *testing.T) {
	Convey("Given three shooters with distinct scoring rates", t, func() {
		events := []model.ShotEvent{
			row("g1", "Duke", "Kentucky", 2, 0, "Duke", "Low", model.OutcomeMade, false, true, "Free Throw 1 of 1"),
			row("g1", "Duke", "Kentucky", 4, 0, "Duke", "Mid", model.OutcomeMade, false, false, "Jump Shot"),
			row("g1", "Duke", "Kentucky", 7, 0, "Duke", "High", model.OutcomeMade, true, false, "Three Point Shot"),
		}

		Convey("When asking for the top two", func() {
			top := stats.TopScorers(events, "Duke", 2)

			Convey("Then they come back by points per game, capped", func() {
				So(len(top), ShouldEqual, 2)
				So(top[0].Player, ShouldEqual, "High")
				So(top[1].Player, ShouldEqual, "Mid")
			})
		})

		Convey("When the cap exceeds the roster", func() {
			top := stats.TopScorers(events, "Duke", 10)
			So(len(top), ShouldEqual, 3)
		})
	})
}
