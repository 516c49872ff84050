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

// PriceCatalogHandler exposes the reference price catalog.

type PriceCatalogHandler struct {
	usecase usecase.IPriceCatalogUseCase
}

func NewPriceCatalogHandler(uc usecase.IPriceCatalogUseCase) *PriceCatalogHandler {
	return &PriceCatalogHandler{usecase: uc}
}

// ListPrices godoc
// @Summary      List effective unit prices
// @Tags         prices
// @Produce      json
// @Success      200  {array}   response.EffectivePriceResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /prices [get]
func (h *PriceCatalogHandler) ListPrices(c *gin.Context) {
	prices, err := h.usecase.ListEffectivePrices(c.Request.Context())
	if err != nil {
		log.Printf("[price][handler] list failed err=%v", err)
		appErr := mapPriceCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEffectivePrices(prices))
}

// GetPrice godoc
// @Summary      Get the effective unit price of a material
// @Tags         prices
// @Produce      json
// @Param        material_id  path      string  true  "Material id"
// @Success      200          {object}  response.EffectivePriceResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      503          {object}  pkg.HTTPError
// @Router       /prices/{material_id} [get]
func (h *PriceCatalogHandler) GetPrice(c *gin.Context) {
	materialID := c.Param("material_id")

	price, err := h.usecase.GetEffectivePrice(c.Request.Context(), materialID)
	if err != nil {
		log.Printf("[price][handler] get failed material_id=%s err=%v", materialID, err)
		appErr := mapPriceCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEffectivePrice(price))
}

// SetPrice godoc
// @Summary      Set the catalog price of a material
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        material_id  path      string                      true  "Material id"
// @Param        payload      body      request.PriceUpdateRequest  true  "New unit price"
// @Success      200          {object}  response.CatalogPriceResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /prices/{material_id} [put]
func (h *PriceCatalogHandler) SetPrice(c *gin.Context) {
	materialID := c.Param("material_id")

	var payload request.PriceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.usecase.SetPrice(c.Request.Context(), materialID, *payload.Price, payload.Source)
	if err != nil {
		log.Printf("[price][handler] set failed material_id=%s err=%v", materialID, err)
		appErr := mapPriceCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[price][handler] set success material_id=%s price=%v", saved.MaterialID, saved.Price)

	c.JSON(http.StatusOK, response.FromCatalogPrice(saved))
}

func mapPriceCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownMaterial):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "Price must be finite and non-negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPriceCatalogUnavailable):
		return pkg.NewDomainErrorSimple("PRICE_CATALOG_UNAVAILABLE", "Price catalog is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
