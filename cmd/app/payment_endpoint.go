package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Morgpo/Grub-N-Go/internal/middleware"
	"github.com/Morgpo/Grub-N-Go/internal/services"
)

type payRequest struct {
	CardNumber  string `json:"card_number"`
	CardName    string `json:"card_name"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVC         string `json:"cvc"`
}

func registerPaymentRoutes(g *echo.Group, payments *services.PaymentService, sessions *services.SessionService) {
	p := g.Group("")
	p.Use(middleware.RequireSession(sessions))

	// mock payment for an order
	p.POST("/orders/:id/pay", func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid order id"})
		}
		req := new(payRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		result, err := payments.Pay(c.Request().Context(), services.PaymentForm{
			OrderID:     orderID,
			CardNumber:  req.CardNumber,
			CardName:    req.CardName,
			ExpiryMonth: req.ExpiryMonth,
			ExpiryYear:  req.ExpiryYear,
			CVC:         req.CVC,
		})
		if err != nil {
			return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, result)
	})

	p.GET("/payment-methods", func(c echo.Context) error {
		sess := middleware.GetSession(c)
		methods, err := payments.Methods(c.Request().Context(), sess.AccountID)
		if err != nil {
			return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, methods)
	})
}
