package v1

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/Anthonyushie/lightning-rps/internal/user"
)

// Authenticated convenience routes: same data as the public per-user
// endpoints, with the user id taken from the JWT instead of the path.
func RegisterMeRoutes(g *echo.Group) {
	g.GET("/stats", GetMyStatsHandler)
	g.GET("/history", GetMyHistoryHandler)
}

func currentUserID(c echo.Context) (int, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(*user.JwtCustomClaims)
	if !ok {
		return 0, false
	}
	return int(claims.Id), true
}

func GetMyStatsHandler(c echo.Context) error {
	id, ok := currentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	row, err := StatsService.GetUserStats(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, row)
}

func GetMyHistoryHandler(c echo.Context) error {
	id, ok := currentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	history, err := GameService.GetGameHistory(id, limitParam(c, 20))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, history)
}
