package handlers

import (
	"errors"
	"log"
	"net/http"

	request "obra_gris/internal/adapter/http/dto/request"
	response "obra_gris/internal/adapter/http/dto/response"
	"obra_gris/internal/domain/entities"
	"obra_gris/internal/usecase"
	"obra_gris/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler serves the material takeoff: systems, calculation and
// text export.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ListSystems godoc
// @Summary      List construction systems
// @Tags         estimates
// @Produce      json
// @Success      200  {array}  response.SystemResponse
// @Router       /systems [get]
func (h *EstimateHandler) ListSystems(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSystems(entities.AllSystems))
}

// Calculate godoc
// @Summary      Calculate the bill of materials
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EstimateRequest  true  "System, geometry and price overrides"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) Calculate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	system := payload.ResolveSystem()
	res, err := h.usecase.Calculate(c.Request.Context(), system, payload.Inputs.ToInputs(), payload.ResolveOverrides())
	if err != nil {
		log.Printf("[estimate][handler] calculate failed system=%s err=%v", system, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalculation(res))
}

// Export godoc
// @Summary      Export the bill of materials as shareable text
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EstimateRequest  true  "System, geometry and price overrides"
// @Success      200      {object}  response.EstimateExportResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /estimates/export [post]
func (h *EstimateHandler) Export(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	system := payload.ResolveSystem()
	export, err := h.usecase.Export(c.Request.Context(), system, payload.Inputs.ToInputs(), payload.ResolveOverrides())
	if err != nil {
		log.Printf("[estimate][handler] export failed system=%s err=%v", system, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExport(export))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSystem):
		return pkg.NewDomainErrorSimple("UNKNOWN_SYSTEM", "Unknown construction system", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInputs):
		return pkg.NewDomainErrorSimple("INVALID_INPUTS", "Inputs must be finite and non-negative", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
