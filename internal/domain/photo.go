package domain

// Photo a standalone gallery image. Moderated like article content but
// carries no version ledger; edits are not tracked.
// Table: photos
type Photo struct {
	ID         string `gorm:"column:id;primaryKey" json:"id"`
	Title      string `gorm:"column:title" json:"title"`
	PhotoImage string `gorm:"column:photo_image" json:"photoImage"`
	Moderated  `gorm:"embedded"`
}

// TableName specifies the table name for Photo model
func (Photo) TableName() string { return "photos" }

// GetID returns the entity id
func (p *Photo) GetID() string { return p.ID }

// SetID sets the entity id
func (p *Photo) SetID(id string) { p.ID = id }

// CreatePhotoRequest is the request body for uploading a photo
type CreatePhotoRequest struct {
	Title      string `json:"title" binding:"required"`
	PhotoImage string `json:"photoImage" binding:"required"`
}

// ToEntity builds a Photo entity from the request
func (r *CreatePhotoRequest) ToEntity() *Photo {
	return &Photo{
		Title:      r.Title,
		PhotoImage: r.PhotoImage,
	}
}
