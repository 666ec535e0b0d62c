package waitingqueue

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jannashin6/docease/internal/domain/doctor"
	"github.com/jannashin6/docease/internal/domain/patient"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/waiting-queue", h.ListQueue)
	api.POST("/waiting-queue", h.JoinQueue)
	api.DELETE("/waiting-queue/:id", h.LeaveQueue)
}

func (h *Handler) ListQueue(c echo.Context) error {
	items, err := h.svc.ListForCurrentUser(c.Request().Context())
	if errors.Is(err, patient.ErrNotLoggedIn) {
		return echo.NewHTTPError(http.StatusUnauthorized, "please log in to view the waiting queue")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) JoinQueue(c echo.Context) error {
	var req JoinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.svc.Join(c.Request().Context(), req)
	switch {
	case errors.Is(err, patient.ErrNotLoggedIn):
		// The client is expected to redirect to the login flow.
		return echo.NewHTTPError(http.StatusUnauthorized, "please log in to join the waiting queue")
	case errors.Is(err, doctor.ErrDoctorNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidWindow):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) LeaveQueue(c echo.Context) error {
	err := h.svc.Leave(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrItemNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "waiting queue item not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
