package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/okian/courtside/internal/adapters/http/api"
	service "github.com/okian/courtside/internal/app"
	"github.com/okian/courtside/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// stubService provides canned answers so handler behavior can be tested
// in isolation from the aggregation layer.
type stubService struct{}

func (stubService) Conferences(_ context.Context) []string {
	return []string{"ACC", "SEC"}
}

func (stubService) ConferenceTeams(_ context.Context, conf string) ([]string, error) {
	if conf != "SEC" {
		return nil, service.ErrUnknownConference
	}
	return []string{"Kentucky", "Tennessee"}, nil
}

func (stubService) Teams(_ context.Context) []string {
	return []string{"Duke", "Kentucky"}
}

func (stubService) TeamStats(_ context.Context, team string) types.TeamStats {
	if team == "Kentucky" {
		return types.TeamStats{GamesPlayed: 2, Wins: 2, FGPercentage: 50}
	}
	return types.TeamStats{}
}

func (stubService) PlayerStats(_ context.Context, _ string) []types.PlayerStats {
	return []types.PlayerStats{{Player: "Player1", TotalPoints: 10, PPG: 5}}
}

func (stubService) TopScorers(_ context.Context, _ string) []types.PlayerStats {
	return []types.PlayerStats{{Player: "Player1", PPG: 5}}
}

func (stubService) Standings(_ context.Context, conf string) ([]types.StandingRow, error) {
	if conf != "SEC" {
		return nil, service.ErrUnknownConference
	}
	return []types.StandingRow{{Team: "Kentucky", WinPercentage: 100}}, nil
}

func (stubService) Compare(_ context.Context, left, right string) types.Comparison {
	return types.Comparison{
		Left:  types.ComparisonSide{Team: left},
		Right: types.ComparisonSide{Team: right},
	}
}

func (stubService) TeamShotChart(_ context.Context, _ string) service.ShotChart {
	return service.ShotChart{
		Shots:   []types.LabeledShot{{GameID: "g1", ShotType: "Layup"}},
		Zones:   []types.ZoneSummary{{Zone: "Layup"}, {Zone: "Mid-Range"}, {Zone: "Three Point"}},
		Summary: types.ShotSummary{TotalShots: 1, MadeShots: 1, Percentage: 100},
	}
}

func (stubService) PlayerShotChart(_ context.Context, _, player string) service.ShotChart {
	return service.ShotChart{
		Shots: []types.LabeledShot{{GameID: "g1", Shooter: player, ShotType: "2-Point"}},
	}
}

func (stubService) ShotBreakdown(_ context.Context, _ string) []types.BreakdownSlice {
	return []types.BreakdownSlice{{ShotType: "2-Point", Count: 3}}
}

func (stubService) GetStats(_ context.Context) map[string]interface{} {
	return map[string]interface{}{"rows": 5}
}

func newTestRouter() *mux.Router {
	router := mux.NewRouter()
	srv := api.NewServer(stubService{}, stubService{})
	srv.Register(context.Background(), router)
	return router
}

func doGet(router *mux.Router, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestConferenceRoutes(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		router := newTestRouter()

		Convey("When listing conferences", func() {
			w := doGet(router, "/api/v1/conferences")

			Convey("Then the names come back as JSON", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var names []string
				So(json.Unmarshal(w.Body.Bytes(), &names), ShouldBeNil)
				So(names, ShouldResemble, []string{"ACC", "SEC"})
			})
		})

		Convey("When listing teams of a known conference", func() {
			w := doGet(router, "/api/v1/conferences/SEC/teams")

			Convey("Then members come back", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "Kentucky")
			})
		})

		Convey("When listing teams of an unknown conference", func() {
			w := doGet(router, "/api/v1/conferences/Ivy/teams")

			Convey("Then the API answers 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(w.Body.String(), ShouldContainSubstring, "unknown_conference")
			})
		})

		Convey("When asking for standings of an unknown conference", func() {
			w := doGet(router, "/api/v1/conferences/Ivy/standings")

			Convey("Then the API answers 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestTeamRoutes(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		router := newTestRouter()

		Convey("When asking for a team's season line", func() {
			w := doGet(router, "/api/v1/teams/Kentucky/stats")

			Convey("Then the line comes back as JSON", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var ts types.TeamStats
				So(json.Unmarshal(w.Body.Bytes(), &ts), ShouldBeNil)
				So(ts.Wins, ShouldEqual, 2)
			})
		})

		Convey("When asking for a team missing from the dataset", func() {
			w := doGet(router, "/api/v1/teams/Nowhere/stats")

			Convey("Then a zeroed line is a 200, not an error", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var ts types.TeamStats
				So(json.Unmarshal(w.Body.Bytes(), &ts), ShouldBeNil)
				So(ts.GamesPlayed, ShouldEqual, 0)
			})
		})

		Convey("When listing players and top scorers", func() {
			players := doGet(router, "/api/v1/teams/Kentucky/players")
			top := doGet(router, "/api/v1/teams/Kentucky/players/top")

			Convey("Then both answer 200 with player lines", func() {
				So(players.Code, ShouldEqual, http.StatusOK)
				So(players.Body.String(), ShouldContainSubstring, "Player1")
				So(top.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestShotRoutes(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		router := newTestRouter()

		Convey("When asking for a team shot chart", func() {
			w := doGet(router, "/api/v1/teams/Kentucky/shots")

			Convey("Then shots, zones, and summary come back together", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var chart service.ShotChart
				So(json.Unmarshal(w.Body.Bytes(), &chart), ShouldBeNil)
				So(len(chart.Zones), ShouldEqual, 3)
				So(chart.Summary.Percentage, ShouldEqual, 100)
			})
		})

		Convey("When asking for a player shot chart", func() {
			w := doGet(router, "/api/v1/teams/Kentucky/players/Player1/shots")

			Convey("Then the shooter flows through the path", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "Player1")
			})
		})

		Convey("When asking for the shot breakdown", func() {
			w := doGet(router, "/api/v1/teams/Kentucky/shots/breakdown")

			Convey("Then slices come back as JSON", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "2-Point")
			})
		})
	})
}

func TestCompareRoute(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		router := newTestRouter()

		Convey("When comparing two teams", func() {
			w := doGet(router, "/api/v1/compare?team1=Kentucky&team2=Duke")

			Convey("Then both sides are present", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var cmp types.Comparison
				So(json.Unmarshal(w.Body.Bytes(), &cmp), ShouldBeNil)
				So(cmp.Left.Team, ShouldEqual, "Kentucky")
				So(cmp.Right.Team, ShouldEqual, "Duke")
			})
		})

		Convey("When a side is missing", func() {
			w := doGet(router, "/api/v1/compare?team1=Kentucky")

			Convey("Then the API answers 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(w.Body.String(), ShouldContainSubstring, "bad_request")
			})
		})
	})
}

func TestOperationalRoutes(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		router := newTestRouter()

		Convey("When asking for service stats", func() {
			w := doGet(router, "/stats")

			Convey("Then snapshot counters come back", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "rows")
			})
		})

		Convey("When asking for the metrics endpoint", func() {
			w := doGet(router, "/healthz")

			Convey("Then the exposition payload is served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When asking for the dashboard", func() {
			w := doGet(router, "/dashboard")

			Convey("Then the embedded page is served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "Courtside Analytics")
			})
		})
	})
}
