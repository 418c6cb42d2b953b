package routes

import (
	"app/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Post("/projecao", handlers.HandleGerarProjecao)
	app.Post("/projecao/consolidado", handlers.HandleProjecaoConsolidada)
	app.Post("/projecao/download", handlers.HandleDownloadProjecao)

	app.Get("/clientes", handlers.HandleListarClientes)
	app.Get("/health", handlers.HandleHealth)
}
