package server

import (
	"gullyconnect/internal/listings"
	"gullyconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SplitListingFeatures handles POST /api/listings/features
// It turns a free-text amenity description into a cleaned list of feature
// bullets, splitting on commas, semicolons and newlines.
func (s *Server) SplitListingFeatures(c *fiber.Ctx) error {
	var req struct {
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	features := listings.SplitFeatures(req.Description)
	if features == nil {
		features = []string{}
	}
	return c.JSON(fiber.Map{"features": features})
}
