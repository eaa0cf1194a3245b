package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	api_middleware "github.com/Anthonyushie/lightning-rps/api/middleware"
	v1 "github.com/Anthonyushie/lightning-rps/api/v1"
	"github.com/Anthonyushie/lightning-rps/internal/apperrors"
	"github.com/Anthonyushie/lightning-rps/internal/game"
	"github.com/Anthonyushie/lightning-rps/internal/stats"
	"github.com/Anthonyushie/lightning-rps/internal/user"
	"github.com/Anthonyushie/lightning-rps/pkg/db"
	"github.com/Anthonyushie/lightning-rps/pkg/logger"
)

func main() {
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system values")
	}

	db.Init()
	if err := db.DB.AutoMigrate(&user.User{}, &game.GameRecord{}, &stats.UserStats{}); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	v1.UserService = user.NewUserService(user.NewDBUserRepository())
	v1.StatsService = stats.NewStatsService(stats.NewDBStatsRepository())
	v1.GameService = game.NewGameService(game.NewDBGameRepository())

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = appErrorHandler(e, log)

	api := e.Group("/api")
	v1.RegisterStatsRoutes(api)
	v1.RegisterGameRoutes(api)
	v1.RegisterUserRoutes(api.Group("/users"))

	me := api.Group("/me")
	me.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterMeRoutes(me)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

// appErrorHandler maps AppErrors to their status code. Causes of server
// faults are logged, never sent to the caller.
func appErrorHandler(e *echo.Echo, log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= 500 {
				log.Error().Err(appErr.Err).Str("path", c.Path()).Msg(appErr.Message)
			}
			if err := c.JSON(appErr.Code, echo.Map{"error": appErr.Message}); err != nil {
				log.Error().Err(err).Msg("error writing error response")
			}
			return
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
