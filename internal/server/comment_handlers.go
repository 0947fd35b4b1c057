package server

import (
	"gullyconnect/internal/models"
	"gullyconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/posts/:id/comments
// The response buckets comments by parent: top-level comments under "root",
// replies under their parent comment's ID.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	thread, err := s.commentService.GetThread(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(thread)
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Body            string `json:"body"`
		ParentCommentID *uint  `json:"parent_comment_id,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		Session:         sessionFromLocals(c),
		PostID:          postID,
		Body:            req.Body,
		ParentCommentID: req.ParentCommentID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
