package routes

import (
	"obra_gris/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSystems   = "/systems"
	PathEstimates = "/estimates"
	PathPrices    = "/prices"
	PathAdvisor   = "/advisor"
	PathCheckout  = "/checkout"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	rg.GET(PathSystems, estimateHandler.ListSystems)

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.Calculate)
		estimates.POST("/export", estimateHandler.Export)
	}
}

func addPriceRoutes(rg *gin.RouterGroup, priceHandler *handlers.PriceCatalogHandler) {
	prices := rg.Group(PathPrices)
	{
		prices.GET("", priceHandler.ListPrices)
		prices.GET("/:material_id", priceHandler.GetPrice)
		prices.PUT("/:material_id", priceHandler.SetPrice)
	}
}

func addAdvisorRoutes(rg *gin.RouterGroup, advisorHandler *handlers.AdvisorHandler) {
	advisor := rg.Group(PathAdvisor)
	{
		advisor.POST("/prices", advisorHandler.SuggestPrices)
		advisor.POST("/suppliers", advisorHandler.FindSuppliers)
		advisor.POST("/chat", advisorHandler.Chat)
	}
}

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	rg.POST(PathCheckout, checkoutHandler.CreateCheckout)
}
