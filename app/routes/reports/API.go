package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/config"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/database"
)

// GetClasswiseCollectionAPI returns total collection per class.
func GetClasswiseCollectionAPI(c *fiber.Ctx) error {
	data, err := database.GetClasswiseCollection(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classwise collection"})
	}
	return c.JSON(fiber.Map{"success": true, "data": data})
}

// GetComponentCollectionAPI returns total collection per fee component.
func GetComponentCollectionAPI(c *fiber.Ctx) error {
	data, err := database.GetComponentCollection(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch component collection"})
	}
	return c.JSON(fiber.Map{"success": true, "data": data})
}

// GetMonthlyTrendAPI returns collection per payment month.
func GetMonthlyTrendAPI(c *fiber.Ctx) error {
	data, err := database.GetMonthlyTrend(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch monthly trend"})
	}
	return c.JSON(fiber.Map{"success": true, "data": data})
}
