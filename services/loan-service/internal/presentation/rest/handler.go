package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/observability"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/usecase"
)

// Handler exposes the loan REST API.
type Handler struct {
	createLoan   *usecase.CreateLoanUseCase
	getLoan      *usecase.GetLoanUseCase
	listLoans    *usecase.ListLoansUseCase
	decideLoan   *usecase.DecideLoanUseCase
	listProducts *usecase.ListProductsUseCase
}

// NewHandler wires the REST handler.
func NewHandler(
	createLoan *usecase.CreateLoanUseCase,
	getLoan *usecase.GetLoanUseCase,
	listLoans *usecase.ListLoansUseCase,
	decideLoan *usecase.DecideLoanUseCase,
	listProducts *usecase.ListProductsUseCase,
) *Handler {
	return &Handler{
		createLoan:   createLoan,
		getLoan:      getLoan,
		listLoans:    listLoans,
		decideLoan:   decideLoan,
		listProducts: listProducts,
	}
}

// Register mounts the routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", health)
	e.GET("/metrics", echo.WrapHandler(observability.MetricsHandler()))

	api := e.Group("/api")
	api.POST("/loans", h.create)
	api.GET("/loans/:id", h.get)
	api.GET("/loans", h.list)
	api.PUT("/loans/:id/approve", h.approve)
	api.PUT("/loans/:id/reject", h.reject)
	api.PUT("/loans/:id/disburse", h.disburse)
	api.PUT("/loans/:id/cancel", h.cancel)
	api.GET("/customers/:customerId/loans", h.listByCustomer)
	api.GET("/loan-products", h.products)
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

func (h *Handler) create(c echo.Context) error {
	var req dto.CreateLoanRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperr.Validation("invalid request body"))
	}
	resp, err := h.createLoan.Execute(c.Request().Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) get(c echo.Context) error {
	resp, err := h.getLoan.Execute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// list filters by status when the query parameter is present.
func (h *Handler) list(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		return errorJSON(c, apperr.Validation("status query parameter is required"))
	}
	resp, err := h.listLoans.ByStatus(c.Request().Context(), status)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) listByCustomer(c echo.Context) error {
	resp, err := h.listLoans.ByCustomer(c.Request().Context(), c.Param("customerId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) approve(c echo.Context) error {
	var req dto.ApproveLoanRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperr.Validation("invalid request body"))
	}
	resp, err := h.decideLoan.Approve(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) reject(c echo.Context) error {
	var req dto.RejectLoanRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperr.Validation("invalid request body"))
	}
	resp, err := h.decideLoan.Reject(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) disburse(c echo.Context) error {
	resp, err := h.decideLoan.Disburse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) cancel(c echo.Context) error {
	resp, err := h.decideLoan.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) products(c echo.Context) error {
	resp, err := h.listProducts.Execute(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func errorJSON(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
}
