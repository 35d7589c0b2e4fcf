package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/observability"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/application/usecase"
)

const defaultUpcomingDays = 7

// Handler exposes the payment and schedule REST API.
type Handler struct {
	processPayment *usecase.ProcessPaymentUseCase
	queryPayments  *usecase.QueryPaymentsUseCase
	querySchedule  *usecase.QueryScheduleUseCase
}

// NewHandler wires the REST handler.
func NewHandler(
	processPayment *usecase.ProcessPaymentUseCase,
	queryPayments *usecase.QueryPaymentsUseCase,
	querySchedule *usecase.QueryScheduleUseCase,
) *Handler {
	return &Handler{
		processPayment: processPayment,
		queryPayments:  queryPayments,
		querySchedule:  querySchedule,
	}
}

// Register mounts the routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", health)
	e.GET("/metrics", echo.WrapHandler(observability.MetricsHandler()))

	api := e.Group("/api")
	api.POST("/payments", h.process)
	api.GET("/payments/:id", h.get)
	api.GET("/loans/:loanId/payments", h.listByLoan)
	api.GET("/loans/:loanId/schedule", h.schedule)
	api.GET("/schedules/upcoming", h.upcoming)
	api.GET("/schedules/overdue", h.overdue)
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

func (h *Handler) process(c echo.Context) error {
	var req dto.ProcessPaymentRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperr.Validation("invalid request body"))
	}
	if req.LoanID == "" {
		return errorJSON(c, apperr.Validation("loanId is required"))
	}
	resp, err := h.processPayment.Execute(c.Request().Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) get(c echo.Context) error {
	resp, err := h.queryPayments.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) listByLoan(c echo.Context) error {
	resp, err := h.queryPayments.ByLoan(c.Request().Context(), c.Param("loanId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) schedule(c echo.Context) error {
	resp, err := h.querySchedule.ByLoan(c.Request().Context(), c.Param("loanId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// upcoming defaults to the next 7 days, overridable with ?days=.
func (h *Handler) upcoming(c echo.Context) error {
	days := defaultUpcomingDays
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return errorJSON(c, apperr.Validation("days must be a positive integer"))
		}
		days = parsed
	}
	resp, err := h.querySchedule.Upcoming(c.Request().Context(), days)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) overdue(c echo.Context) error {
	resp, err := h.querySchedule.Overdue(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func errorJSON(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
}
