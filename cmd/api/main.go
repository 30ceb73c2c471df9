package main

import (
	"os"

	"github.com/mathspoint/mathspoint/internal/pkg/logger"
	"github.com/mathspoint/mathspoint/internal/server"
)

// @title Maths Point API
// @version 1.0
// @description Backend for the Maths Point Excellence Academy site and portal
// @termsOfService http://swagger.io/terms/

// @contact.name Maths Point
// @contact.email mathspointrkl@gmail.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Portal token issued by the login endpoints

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
