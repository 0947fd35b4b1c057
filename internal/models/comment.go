package models

import "time"

// Comment is a reply on a post. A nil ParentCommentID marks a root-level
// comment; otherwise the parent must be a comment on the same post.
// Comments are immutable once created.
type Comment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PostID          uint      `gorm:"not null;index" json:"post_id"`
	Body            string    `gorm:"type:text;not null" json:"body"`
	AuthorID        string    `gorm:"size:19;not null;index" json:"author_id"`
	AuthorAlias     string    `gorm:"size:32;not null" json:"author_alias"`
	ParentCommentID *uint     `gorm:"index" json:"parent_comment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
