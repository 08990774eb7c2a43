package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"wecare/models"
	"wecare/pricing"
	"wecare/store"
)

type ProductController struct {
	Store *store.Store
}

// List returns the whole catalog with computed selling prices.
func (pc *ProductController) List(c *fiber.Ctx) error {
	products := pc.Store.All()
	views := make([]models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, models.ProductView{
			Product:   p,
			SellPrice: pricing.SellingPrice(p.CostPrice),
		})
	}
	return c.JSON(fiber.Map{"products": views})
}

func (pc *ProductController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	p, err := pc.Store.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	return c.JSON(models.ProductView{
		Product:   *p,
		SellPrice: pricing.SellingPrice(p.CostPrice),
	})
}

// Create appends a record to the catalog and saves it.
func (pc *ProductController) Create(c *fiber.Ctx) error {
	var in models.Product
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Brand) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and brand are required"})
	}
	if in.Quantity < 0 || in.CostPrice.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "quantity and cost_price must not be negative"})
	}
	// The catalog file has no escaping, so a comma inside a field would
	// corrupt the record on the next load. Refuse it up front.
	if strings.Contains(in.Name+in.Brand+in.Origin, ",") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fields must not contain commas"})
	}

	p := pc.Store.Add(in)
	if err := pc.Store.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product added successfully",
		"product": models.ProductView{
			Product:   p,
			SellPrice: pricing.SellingPrice(p.CostPrice),
		},
	})
}
