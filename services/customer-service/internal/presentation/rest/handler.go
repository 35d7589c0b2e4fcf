package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/observability"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/application/usecase"
)

// Handler exposes the customer REST API.
type Handler struct {
	register *usecase.RegisterCustomerUseCase
	update   *usecase.UpdateCustomerUseCase
	query    *usecase.QueryCustomersUseCase
}

// NewHandler wires the REST handler.
func NewHandler(
	register *usecase.RegisterCustomerUseCase,
	update *usecase.UpdateCustomerUseCase,
	query *usecase.QueryCustomersUseCase,
) *Handler {
	return &Handler{register: register, update: update, query: query}
}

// Register mounts the routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", health)
	e.GET("/metrics", echo.WrapHandler(observability.MetricsHandler()))

	api := e.Group("/api")
	api.POST("/customers", h.create)
	api.GET("/customers", h.list)
	api.GET("/customers/:id", h.get)
	api.PUT("/customers/:id", h.put)
	api.GET("/customers/dni/:dni", h.getByDNI)
	api.GET("/customers/:id/credit-history", h.creditHistory)
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

func (h *Handler) create(c echo.Context) error {
	var req dto.RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperr.Validation("invalid request body"))
	}
	resp, err := h.register.Execute(c.Request().Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) list(c echo.Context) error {
	resp, err := h.query.All(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) get(c echo.Context) error {
	resp, err := h.query.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) getByDNI(c echo.Context) error {
	resp, err := h.query.ByDNI(c.Request().Context(), c.Param("dni"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) put(c echo.Context) error {
	var req dto.UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperr.Validation("invalid request body"))
	}
	resp, err := h.update.Execute(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) creditHistory(c echo.Context) error {
	resp, err := h.query.CreditHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func errorJSON(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
}
