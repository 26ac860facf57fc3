package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Morgpo/Grub-N-Go/internal/middleware"
	"github.com/Morgpo/Grub-N-Go/internal/services"
)

func registerAccountRoutes(g *echo.Group, accounts *services.AccountService, sessions *services.SessionService) {
	p := g.Group("/account")
	p.Use(middleware.RequireSession(sessions))

	p.GET("", func(c echo.Context) error {
		sess := middleware.GetSession(c)
		profile, err := accounts.Profile(c.Request().Context(), sess.AccountID)
		if err != nil {
			return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, profile)
	})

	p.PUT("", func(c echo.Context) error {
		sess := middleware.GetSession(c)
		upd := new(services.ProfileUpdate)
		if err := c.Bind(upd); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := accounts.UpdateProfile(c.Request().Context(), sess.AccountID, *upd); err != nil {
			return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "profile updated"})
	})
}
