package server

import (
	"gullyconnect/internal/forum"

	"github.com/gofiber/fiber/v2"
)

// GetTopContributors handles GET /api/areas/:area/contributors?n=3
func (s *Server) GetTopContributors(c *fiber.Ctx) error {
	area := c.Params("area")
	n := c.QueryInt("n", 0)

	stats, err := s.contributorService.TopContributors(c.Context(), area, n)
	if err != nil {
		return respondServiceError(c, err)
	}

	if stats == nil {
		stats = []forum.ContributorStat{}
	}
	return c.JSON(stats)
}
