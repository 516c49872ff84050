package routes

import (
	"context"
	"log"
	"os"

	_ "obra_gris/docs"
	"obra_gris/internal/adapter/http/handlers"
	"obra_gris/internal/adapter/persistence/repository"
	"obra_gris/internal/infrastructure/advisor"
	"obra_gris/internal/infrastructure/database"
	"obra_gris/internal/infrastructure/payments"
	"obra_gris/internal/usecase"
	"obra_gris/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(context.Background())

	err := router.Run(":" + getenvDefault("PORT", defaultPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context) {
	// The estimator works without the catalog; a nil repository falls back
	// to the built-in default prices.
	var catalogRepo interfaces.IPriceCatalogRepository
	if priceCatalogEnabled() {
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			log.Printf("DynamoDB price catalog not configured: %v", err)
		} else {
			catalogRepo = repository.NewPriceCatalogDynamoRepository(ddb)
		}
	} else {
		log.Printf("DynamoDB price catalog disabled: set PRICE_CATALOG_TABLE or DYNAMODB_ENDPOINT to enable it")
	}

	estimateUseCase := usecase.NewEstimateUseCase(catalogRepo)
	priceCatalogUseCase := usecase.NewPriceCatalogUseCase(catalogRepo)

	var (
		oracle    interfaces.IPriceOracle
		finder    interfaces.ISupplierFinder
		assistant interfaces.IAssistant
	)
	gemini, err := advisor.NewGeminiAdvisor(ctx, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Printf("Gemini advisor not configured: %v", err)
	} else {
		oracle, finder, assistant = gemini, gemini, gemini
	}
	advisorUseCase := usecase.NewAdvisorUseCase(estimateUseCase, oracle, finder, assistant)

	var checkoutGateway interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		checkoutGateway = mpGateway
	}
	checkoutUseCase := usecase.NewCheckoutUseCase(estimateUseCase, checkoutGateway)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	priceCatalogHandler := handlers.NewPriceCatalogHandler(priceCatalogUseCase)
	advisorHandler := handlers.NewAdvisorHandler(advisorUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler)
	addPriceRoutes(v1, priceCatalogHandler)
	addAdvisorRoutes(v1, advisorHandler)
	addCheckoutRoutes(v1, checkoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// priceCatalogEnabled reports whether a DynamoDB catalog was configured.
// ConnectDynamoDB succeeds with the default AWS chain even when no table
// exists, so the catalog is opt-in.
func priceCatalogEnabled() bool {
	return os.Getenv("PRICE_CATALOG_TABLE") != "" || os.Getenv("DYNAMODB_ENDPOINT") != ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
