package controllers

import (
	"github.com/gofiber/fiber/v2"

	"wecare/config"
	"wecare/models"
	"wecare/utils"
)

type AuthController struct {
	Cfg config.Config
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var in models.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input: " + err.Error(),
		})
	}

	if in.Username != ac.Cfg.AdminUser || in.Password != ac.Cfg.AdminPass {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Incorrect username or password",
		})
	}

	token, err := utils.GenerateJWTToken(ac.Cfg.JWTSecret, in.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
		})
	}

	utils.SetJWTCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}
