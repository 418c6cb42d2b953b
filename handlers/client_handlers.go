package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleListarClientes returns the sorted distinct clients with any sale
// in the trailing 60 days. No forecasting involved.
func HandleListarClientes(c *fiber.Ctx) error {
	clientes, err := store.ListRecentClients(c.Context())
	if err != nil {
		log.Printf("[CLIENTES] erro ao listar clientes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to list clients"})
	}

	if clientes == nil {
		clientes = []string{}
	}
	return c.JSON(clientes)
}
