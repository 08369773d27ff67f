package domain

import "time"

// Comment a reader comment attached to a news article.
// Table: comments
type Comment struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	NewsID    string    `gorm:"column:news_id;index" json:"news"`
	UserID    string    `gorm:"column:user_id;index" json:"user"`
	Text      string    `gorm:"column:text;type:text" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for Comment model
func (Comment) TableName() string { return "comments" }

// CreateCommentRequest is the request body for adding a comment
type CreateCommentRequest struct {
	NewsID string `json:"newsId" binding:"required"`
	Text   string `json:"text" binding:"required"`
}
