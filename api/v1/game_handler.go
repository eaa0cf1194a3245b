package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Anthonyushie/lightning-rps/internal/game"
)

var GameService *game.GameService

func RegisterGameRoutes(g *echo.Group) {
	g.POST("/game/record", RecordGameHandler)
	g.GET("/user/:userId/history", GetGameHistoryHandler)
}

func RecordGameHandler(c echo.Context) error {
	var record game.GameRecord
	if err := c.Bind(&record); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	stored, err := GameService.RecordGame(&record)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stored)
}

func GetGameHistoryHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	history, errHist := GameService.GetGameHistory(id, limitParam(c, 20))
	if errHist != nil {
		return errHist
	}
	return c.JSON(http.StatusOK, history)
}
