package main

import (
	"os"

	"github.com/CPU-commits/Intranet_BCatalog/catalog/cmd"
)

// @title          Catalog API
// @version        1.0
// @description    API Server Catalog service
// @termsOfService http://swagger.io/terms/

// @contact.name  API Support
// @contact.url   http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url  http://www.apache.org/licenses/LICENSE-2.0.html

// @tag.name        catalog
// @tag.description Service of course catalog

// @host     localhost:8080
// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
// @description                BearerJWTToken in Authorization Header

// @accept  json
// @produce json

// @schemes http https
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
