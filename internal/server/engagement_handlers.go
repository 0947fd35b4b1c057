package server

import (
	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/posts/:id/like
// Liking is idempotent: repeats and concurrent duplicates leave exactly one
// like per user per post, and the call succeeds either way.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.engagementService.LikePost(c.Context(), sessionFromLocals(c), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}
