package patient

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/me", h.Me)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
}

func (h *Handler) Me(c echo.Context) error {
	u, err := h.svc.Current()
	if errors.Is(err, ErrNotLoggedIn) {
		return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Login())
}

func (h *Handler) Logout(c echo.Context) error {
	h.svc.Logout()
	return c.NoContent(http.StatusNoContent)
}
