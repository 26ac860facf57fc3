package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Morgpo/Grub-N-Go/external/grubngo"
	"github.com/Morgpo/Grub-N-Go/internal/middleware"
	"github.com/Morgpo/Grub-N-Go/internal/services"
)

func registerOrderRoutes(g *echo.Group, api *grubngo.Client, sessions *services.SessionService) {
	p := g.Group("/orders")
	p.Use(middleware.RequireSession(sessions))

	// order history for the signed-in customer
	p.GET("", func(c echo.Context) error {
		sess := middleware.GetSession(c)
		orders, err := api.CustomerOrders(c.Request().Context(), sess.AccountID)
		if err != nil {
			return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, orders)
	})

	p.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid order id"})
		}
		order, err := api.Order(c.Request().Context(), id)
		if err != nil {
			return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, order)
	})
}
