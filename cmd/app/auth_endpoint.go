package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Morgpo/Grub-N-Go/external/grubngo"
	"github.com/Morgpo/Grub-N-Go/internal/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
}

func registerAuthRoutes(g *echo.Group, sessions *services.SessionService) {
	p := g.Group("/auth")

	p.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		sess, err := sessions.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, sess)
	})

	p.POST("/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		sess, err := sessions.Register(c.Request().Context(), services.RegisterForm{
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			Name:            req.Name,
			Phone:           req.Phone,
		})
		if err != nil {
			return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, sess)
	})

	p.POST("/logout", func(c echo.Context) error {
		sessions.Logout(c.Request().Context())
		return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
	})

	// the UI polls this on startup to decide which screen to show
	p.GET("/session", func(c echo.Context) error {
		sess, ok := sessions.Current()
		if !ok {
			return c.JSON(http.StatusOK, map[string]any{
				"authenticated": false,
				"loading":       sessions.Loading(),
			})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"authenticated": true,
			"loading":       false,
			"session":       sess,
		})
	})
}

// errStatus maps service errors onto HTTP codes for the inline-message UI.
func errStatus(err error) int {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var ae *grubngo.APIError
	if errors.As(err, &ae) {
		return ae.Status
	}
	if errors.Is(err, services.ErrEmptyCart) || errors.Is(err, services.ErrRestaurantMismatch) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
