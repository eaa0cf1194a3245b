package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Anthonyushie/lightning-rps/internal/stats"
)

const INVALID_REQUEST = "invalid request"

var StatsService *stats.StatsService

func RegisterStatsRoutes(g *echo.Group) {
	g.GET("/leaderboard", GetLeaderboardHandler)
	g.POST("/user/stats", UpdateUserStatsHandler)
	g.GET("/user/:userId/stats", GetUserStatsHandler)
	g.GET("/stats/global", GetGlobalStatsHandler)
}

func GetLeaderboardHandler(c echo.Context) error {
	entries, err := StatsService.GetLeaderboard(limitParam(c, 10))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func UpdateUserStatsHandler(c echo.Context) error {
	var update stats.StatsUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	row, err := StatsService.UpsertStats(&update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, row)
}

func GetUserStatsHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	row, errStats := StatsService.GetUserStats(id)
	if errStats != nil {
		return errStats
	}
	return c.JSON(http.StatusOK, row)
}

func GetGlobalStatsHandler(c echo.Context) error {
	global, err := StatsService.GetGlobalStats()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, global)
}

// limitParam reads the limit query parameter, falling back to the
// endpoint's default when missing or unusable.
func limitParam(c echo.Context, def int) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
