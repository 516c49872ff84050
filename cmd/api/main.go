package main

import (
	_ "obra_gris/docs"
	"obra_gris/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Obra Gris Estimator API
// @version         1.0
// @description     Material takeoff and cost estimation for gray-structure works in Argentina.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
