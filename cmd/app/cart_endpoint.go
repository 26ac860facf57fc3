package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Morgpo/Grub-N-Go/internal/middleware"
	"github.com/Morgpo/Grub-N-Go/internal/model"
	"github.com/Morgpo/Grub-N-Go/internal/services"
)

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cart *services.CartService, checkout *services.CheckoutService, sessions *services.SessionService) {
	p := g.Group("/cart")

	// GET cart with derived totals
	p.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, cart.View())
	})

	// ADD one of a menu item
	p.POST("", func(c echo.Context) error {
		item := new(model.MenuItem)
		if err := c.Bind(item); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cart.Add(*item); err != nil {
			return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cart.View())
	})

	// UPDATE quantity
	p.PUT("/:menuItemID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("menuItemID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid menu item id"})
		}
		req := new(setQuantityRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		cart.SetQuantity(id, req.Quantity)
		return c.JSON(http.StatusOK, cart.View())
	})

	// REMOVE line
	p.DELETE("/:menuItemID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("menuItemID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid menu item id"})
		}
		cart.Remove(id)
		return c.JSON(http.StatusOK, cart.View())
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		cart.Clear()
		return c.JSON(http.StatusOK, cart.View())
	})

	// CHECKOUT: order first, then items, then clear
	p.POST("/checkout", func(c echo.Context) error {
		sess := middleware.GetSession(c)
		result, err := checkout.Checkout(c.Request().Context(), sess.AccountID)
		if err != nil {
			return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]any{
			"order_id": result.OrderID,
			"items":    result.ItemsCreated,
			"message":  fmt.Sprintf("Order #%d placed successfully!", result.OrderID),
		})
	}, middleware.RequireSession(sessions))
}
