package models

import "time"

// Like records a single user's engagement with a post. The composite primary
// key keeps the row unique per (post, user); existence of the row is the
// engagement. There is no unlike.
type Like struct {
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	UserID    string    `gorm:"primaryKey;size:19" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName matches the logical table name consumed by the API contract.
func (Like) TableName() string {
	return "post_likes"
}
