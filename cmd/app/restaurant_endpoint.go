package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Morgpo/Grub-N-Go/external/grubngo"
)

func registerRestaurantRoutes(g *echo.Group, api *grubngo.Client) {
	p := g.Group("/restaurants")

	// landing page: restaurants currently accepting orders
	p.GET("", func(c echo.Context) error {
		restaurants, err := api.OpenRestaurants(c.Request().Context())
		if err != nil {
			return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, restaurants)
	})

	p.GET("/:id/menu", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid restaurant id"})
		}
		items, err := api.MenuItems(c.Request().Context(), id)
		if err != nil {
			return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, items)
	})
}
