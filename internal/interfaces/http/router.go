package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OAGIS     DocumentProcessor
	Messages  MessageFinder
	Inventory InventoryQuerier
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Documentos OAGIS (la autenticación del emisor queda fuera del servicio)
	oagisGroup := api.Group("/oagis", UserLoginMiddleware())
	oagisHandler := NewOagisHandler(deps.OAGIS, deps.Messages)
	oagisGroup.Post("/sync-inventory", oagisHandler.SyncInventory)
	oagisGroup.Post("/po-acknowledge", oagisHandler.ReceivePoAcknowledge)
	oagisGroup.Post("/rma-acknowledge", oagisHandler.ReceiveRmaAcknowledge)
	oagisGroup.Get("/messages", oagisHandler.GetMessage)

	// Consultas de inventario
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Inventory)
	invGroup.Get("/products/:id/stock", inventoryHandler.GetStock)
	invGroup.Get("/products/:id/movements", inventoryHandler.ListMovements)
}
