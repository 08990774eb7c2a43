package routes

import (
	"github.com/gofiber/fiber/v2"

	"wecare/controllers"
	"wecare/middleware"
)

type Deps struct {
	Products  *controllers.ProductController
	Invoices  *controllers.InvoiceController
	Auth      *controllers.AuthController
	JWTSecret string
}

func RegisterRoutes(app *fiber.App, d Deps) {

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Login
	app.Post("/login", d.Auth.Login)

	// catalog
	app.Get("/products", d.Products.List)
	app.Get("/products/:id", d.Products.Get)

	// mutating routes need a token
	auth := middleware.JWT(d.JWTSecret)
	app.Post("/products", auth, d.Products.Create)
	app.Post("/invoices/sale", auth, d.Invoices.CreateSale)
	app.Post("/invoices/restock", auth, d.Invoices.CreateRestock)
}
