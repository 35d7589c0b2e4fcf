package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/observability"
	"github.com/PatriickRM/loan-banking-system/services/notification-service/internal/application/usecase"
)

// Handler exposes the notification REST API.
type Handler struct {
	query *usecase.QueryNotificationsUseCase
}

// NewHandler wires the REST handler.
func NewHandler(query *usecase.QueryNotificationsUseCase) *Handler {
	return &Handler{query: query}
}

// Register mounts the routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", health)
	e.GET("/metrics", echo.WrapHandler(observability.MetricsHandler()))

	api := e.Group("/api")
	api.GET("/notifications", h.list)
	api.GET("/customers/:customerId/notifications", h.listByCustomer)
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

func (h *Handler) list(c echo.Context) error {
	resp, err := h.query.All(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) listByCustomer(c echo.Context) error {
	resp, err := h.query.ByCustomer(c.Request().Context(), c.Param("customerId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func errorJSON(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
}
