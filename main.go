package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/membora/membora-api/cmd/app"
)

// @contact.name   Membora Support
// @contact.email  support@membora.app
//
// @license.name  MIT
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
