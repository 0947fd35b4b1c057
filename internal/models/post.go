// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"
)

// CategoryRoot is the namespace every category path is anchored under.
// A post in area "mumbai" about food carries the category "gc/mumbai/food".
const CategoryRoot = "gc"

// Post is a single discussion post in an area's community feed.
// Posts are immutable once created; there are no edit or delete operations.
type Post struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Title       string      `gorm:"not null" json:"title"`
	Body        string      `gorm:"type:text;not null" json:"body"`
	AuthorID    string      `gorm:"size:19;not null;index" json:"author_id"`
	AuthorAlias string      `gorm:"size:32;not null" json:"author_alias"`
	Area        string      `gorm:"size:64;not null;index" json:"area"`
	Category    string      `gorm:"size:128;not null;index" json:"category"`
	Images      []PostImage `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"images"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the requesting user liked this post (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
}

// PostImage is one entry of a post's ordered image URL list. The URLs point
// at public objects served by the media store; the backend never decodes them.
type PostImage struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PostID   uint   `gorm:"not null;index" json:"-"`
	Position int    `gorm:"not null" json:"position"`
	URL      string `gorm:"size:512;not null" json:"url"`
}

// CategoryArea returns the area segment of a category path, or "" when the
// path is not anchored under CategoryRoot.
func CategoryArea(category string) string {
	parts := strings.Split(category, "/")
	if len(parts) < 2 || parts[0] != CategoryRoot {
		return ""
	}
	return parts[1]
}

// ValidCategory reports whether category is a well-formed path namespaced
// under the given area, i.e. "gc/<area>/...".
func ValidCategory(area, category string) bool {
	return area != "" && CategoryArea(category) == area
}
