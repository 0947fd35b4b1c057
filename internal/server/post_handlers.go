package server

import (
	"gullyconnect/internal/models"
	"gullyconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts?q=...&area=...&topic=...
// All facets are optional and compose with AND; an absent facet matches everything.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	authorID := currentAuthorID(c)

	posts, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		Query:           c.Query("q"),
		Area:            c.Query("area"),
		Topic:           c.Query("topic"),
		Limit:           page.Limit,
		Offset:          page.Offset,
		CurrentAuthorID: authorID,
		SkipCache:       s.flags.Enabled("disable_post_cache", authorID),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	if posts == nil {
		posts = []*models.Post{}
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id, currentAuthorID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title     string   `json:"title"`
		Body      string   `json:"body"`
		Area      string   `json:"area"`
		Category  string   `json:"category,omitempty"`
		ImageURLs []string `json:"image_urls,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		Session:   sessionFromLocals(c),
		Title:     req.Title,
		Body:      req.Body,
		Area:      req.Area,
		Category:  req.Category,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}
