package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/observability"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/application/dto"
	"github.com/PatriickRM/loan-banking-system/services/credit-evaluation-service/internal/application/usecase"
)

// Handler exposes the evaluation REST API: the review queue, manual
// completion, audit details and the criteria admin surface.
type Handler struct {
	queries        *usecase.QueryEvaluationsUseCase
	completeManual *usecase.CompleteManualUseCase
	criteria       *usecase.ManageCriteriaUseCase
}

// NewHandler wires the REST handler.
func NewHandler(
	queries *usecase.QueryEvaluationsUseCase,
	completeManual *usecase.CompleteManualUseCase,
	criteria *usecase.ManageCriteriaUseCase,
) *Handler {
	return &Handler{queries: queries, completeManual: completeManual, criteria: criteria}
}

// Register mounts the routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", health)
	e.GET("/metrics", echo.WrapHandler(observability.MetricsHandler()))

	api := e.Group("/api")
	api.GET("/evaluations/:id", h.get)
	api.GET("/evaluations/:id/details", h.details)
	api.GET("/evaluations", h.list)
	api.GET("/loans/:loanId/evaluation", h.byLoan)
	api.PUT("/evaluations/:id/manual", h.manual)
	api.GET("/criteria", h.listCriteria)
	api.PUT("/criteria/:id", h.updateCriterion)
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

func (h *Handler) get(c echo.Context) error {
	resp, err := h.queries.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) details(c echo.Context) error {
	resp, err := h.queries.Details(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) list(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = "IN_REVIEW"
	}
	resp, err := h.queries.ByStatus(c.Request().Context(), status)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) byLoan(c echo.Context) error {
	resp, err := h.queries.ByLoan(c.Request().Context(), c.Param("loanId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) manual(c echo.Context) error {
	var req dto.ManualEvaluationRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperr.Validation("invalid request body"))
	}
	resp, err := h.completeManual.Execute(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) listCriteria(c echo.Context) error {
	resp, err := h.criteria.List(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) updateCriterion(c echo.Context) error {
	var req dto.UpdateCriterionRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperr.Validation("invalid request body"))
	}
	resp, err := h.criteria.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func errorJSON(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
}
