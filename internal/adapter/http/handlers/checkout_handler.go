package handlers

import (
	"errors"
	"log"
	"net/http"

	request "obra_gris/internal/adapter/http/dto/request"
	response "obra_gris/internal/adapter/http/dto/response"
	"obra_gris/internal/usecase"
	"obra_gris/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler turns a bill of materials into a Mercado Pago checkout.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckout godoc
// @Summary      Create a checkout for the bill of materials
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CheckoutRequest  true  "Estimate and optional payer email"
// @Success      201      {object}  response.CheckoutResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	system := payload.ResolveSystem()
	log.Printf("[checkout][handler] create start system=%s", system)
	checkout, err := h.usecase.CreateCheckout(c.Request.Context(), system, payload.Inputs.ToInputs(), payload.ResolveOverrides(), payload.PayerEmail)
	if err != nil {
		log.Printf("[checkout][handler] create failed system=%s err=%v", system, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success reference=%s preference_id=%s", checkout.Reference, checkout.PreferenceID)

	c.JSON(http.StatusCreated, response.FromCheckout(checkout))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSystem), errors.Is(err, usecase.ErrInvalidInputs):
		return mapEstimateError(err)
	case errors.Is(err, usecase.ErrInvalidPayerEmail):
		return pkg.NewDomainErrorSimple("INVALID_PAYER_EMAIL", "Invalid payer email", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyCheckout):
		return pkg.NewDomainErrorSimple("EMPTY_CHECKOUT", "The bill of materials has no billable items", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCheckoutGatewayBadRequest):
		return pkg.NewDomainError("CHECKOUT_REJECTED", "Checkout rejected by the payment gateway", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutUnauthorized):
		return pkg.NewDomainErrorSimple("CHECKOUT_UNAUTHORIZED", "Payment gateway credentials rejected", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrCheckoutNotConfigured):
		return pkg.NewDomainErrorSimple("CHECKOUT_UNAVAILABLE", "Payment gateway is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
