package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wecare/invoice"
	"wecare/models"
)

type InvoiceController struct {
	Svc *invoice.Service
}

func (ic *InvoiceController) CreateSale(c *fiber.Ctx) error {
	var req models.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	res, err := ic.Svc.Sale(req)
	if err != nil {
		return ic.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Sale invoice generated",
		"invoice": res,
	})
}

func (ic *InvoiceController) CreateRestock(c *fiber.Ctx) error {
	var req models.RestockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	res, err := ic.Svc.Restock(req)
	if err != nil {
		return ic.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Restock invoice generated",
		"invoice": res,
	})
}

// fail maps transaction errors to status codes so callers can tell a
// resolution miss from a stock rejection from an I/O failure.
func (ic *InvoiceController) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrInsufficientStock):
		status = fiber.StatusConflict
	case errors.Is(err, invoice.ErrInvoiceWrite), errors.Is(err, invoice.ErrCatalogSave):
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
