package feecomponents

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/config"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/database"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/models"
)

var validate = validator.New()

// GetFeeComponentsAPI returns the whole fee catalog.
func GetFeeComponentsAPI(c *fiber.Ctx) error {
	components, err := database.GetFeeComponents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee components"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    components,
		"count":   len(components),
	})
}

// CreateFeeComponentAPI creates a fee component. Names are unique within a
// class.
func CreateFeeComponentAPI(c *fiber.Ctx) error {
	var component models.FeeComponent
	if err := c.BodyParser(&component); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(component); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateFeeComponent(config.GetDB(), &component); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee component"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    component,
		"message": "Fee component created successfully",
	})
}

// UpdateFeeComponentAPI updates a fee component.
func UpdateFeeComponentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fee component id"})
	}

	var component models.FeeComponent
	if err := c.BodyParser(&component); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(component); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateFeeComponent(config.GetDB(), int64(id), &component); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Fee component not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee component"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee component updated successfully",
	})
}

// DeleteFeeComponentAPI removes a fee component.
func DeleteFeeComponentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fee component id"})
	}

	if err := database.DeleteFeeComponent(config.GetDB(), int64(id)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Fee component not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete fee component"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee component deleted successfully",
	})
}
