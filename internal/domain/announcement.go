package domain

import "time"

// Announcement a site-wide notice. Plain CRUD: no moderation state and
// no version history.
// Table: announcements
type Announcement struct {
	ID          string     `gorm:"column:id;primaryKey" json:"id"`
	Title       string     `gorm:"column:title" json:"title"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time  `gorm:"column:created_time;autoCreateTime" json:"created_time"`
	LastUpdated *time.Time `gorm:"column:last_updated" json:"last_updated,omitempty"`
}

// TableName specifies the table name for Announcement model
func (Announcement) TableName() string { return "announcements" }

// CreateAnnouncementRequest is the request body for creating an announcement
type CreateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateAnnouncementRequest is the partial-update request body for an announcement
type UpdateAnnouncementRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Apply merges the present fields into the entity
func (r *UpdateAnnouncementRequest) Apply(a *Announcement) {
	if r.Title != nil {
		a.Title = *r.Title
	}
	if r.Description != nil {
		a.Description = *r.Description
	}
}
