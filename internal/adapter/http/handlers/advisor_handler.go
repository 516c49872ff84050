package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "obra_gris/internal/adapter/http/dto/request"
	response "obra_gris/internal/adapter/http/dto/response"
	"obra_gris/internal/usecase"
	"obra_gris/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAdvisorPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// AdvisorHandler serves the AI-backed helpers. They never change the bill of
// materials; price suggestions are returned for the client to send back as
// overrides.

type AdvisorHandler struct {
	usecase usecase.IAdvisorUseCase
}

func NewAdvisorHandler(uc usecase.IAdvisorUseCase) *AdvisorHandler {
	return &AdvisorHandler{usecase: uc}
}

// SuggestPrices godoc
// @Summary      Suggest unit prices for a location
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SuggestPricesRequest  true  "System, geometry and location"
// @Success      200      {object}  response.SuggestedPricesResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /advisor/prices [post]
func (h *AdvisorHandler) SuggestPrices(c *gin.Context) {
	var payload request.SuggestPricesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdvisorPayload.HTTPStatus, errInvalidAdvisorPayload.ToHTTPError())
		return
	}

	prices, err := h.usecase.SuggestPrices(c.Request.Context(), payload.ResolveSystem(), payload.Inputs.ToInputs(), payload.Location)
	if err != nil {
		log.Printf("[advisor][handler] suggest-prices failed err=%v", err)
		appErr := mapAdvisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuggestedPricesResponse{Location: strings.TrimSpace(payload.Location), Prices: prices})
}

// FindSuppliers godoc
// @Summary      Find material suppliers near a location
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SupplierSearchRequest  true  "System and location"
// @Success      200      {object}  response.SupplierReportResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /advisor/suppliers [post]
func (h *AdvisorHandler) FindSuppliers(c *gin.Context) {
	var payload request.SupplierSearchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdvisorPayload.HTTPStatus, errInvalidAdvisorPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.FindSuppliers(c.Request.Context(), payload.ResolveSystem(), payload.Location)
	if err != nil {
		log.Printf("[advisor][handler] find-suppliers failed err=%v", err)
		appErr := mapAdvisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSupplierReport(report))
}

// Chat godoc
// @Summary      Ask the assistant about the current estimate
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ChatRequest  true  "Message, history and estimate"
// @Success      200      {object}  response.ChatResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /advisor/chat [post]
func (h *AdvisorHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdvisorPayload.HTTPStatus, errInvalidAdvisorPayload.ToHTTPError())
		return
	}

	answer, err := h.usecase.Chat(
		c.Request.Context(),
		payload.Message,
		payload.ResolveHistory(),
		payload.ResolveSystem(),
		payload.Inputs.ToInputs(),
		payload.ResolveOverrides(),
	)
	if err != nil {
		log.Printf("[advisor][handler] chat failed err=%v", err)
		appErr := mapAdvisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ChatResponse{Answer: answer})
}

func mapAdvisorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSystem), errors.Is(err, usecase.ErrInvalidInputs):
		return mapEstimateError(err)
	case errors.Is(err, usecase.ErrInvalidLocation):
		return pkg.NewDomainErrorSimple("INVALID_LOCATION", "Location is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyMessage):
		return pkg.NewDomainErrorSimple("EMPTY_MESSAGE", "Message is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAdvisorNotConfigured):
		return pkg.NewDomainErrorSimple("ADVISOR_UNAVAILABLE", "Advisor is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("ADVISOR_ERROR", "The advisor could not answer", err, http.StatusBadGateway)
	}
}
