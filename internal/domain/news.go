package domain

import (
	"gorm.io/datatypes"
)

// News a published or draft news article.
// Table: news
type News struct {
	ID           string                      `gorm:"column:id;primaryKey" json:"id"`
	Title        string                      `gorm:"column:title" json:"title"`
	Description  string                      `gorm:"column:description;type:text" json:"description"`
	Author       string                      `gorm:"column:author" json:"author,omitempty"`
	Thumbnail    string                      `gorm:"column:thumbnail" json:"thumbnail,omitempty"`
	CategoryID   string                      `gorm:"column:category_id;index" json:"category"`
	Tags         datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags,omitempty"`
	MagazineType string                      `gorm:"column:magazine_type;type:varchar(20)" json:"magazineType,omitempty"`
	NewsType     string                      `gorm:"column:news_type;type:varchar(20);index" json:"newsType,omitempty"`
	IsLive       bool                        `gorm:"column:is_live;default:true" json:"isLive"`
	Moderated    `gorm:"embedded"`
}

// TableName specifies the table name for News model
func (News) TableName() string { return "news" }

// GetID returns the entity id
func (n *News) GetID() string { return n.ID }

// SetID sets the entity id
func (n *News) SetID(id string) { n.ID = id }

// Kind returns the content kind
func (News) Kind() Kind { return KindNews }

// CreateNewsRequest is the request body for creating a news article
type CreateNewsRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Author       string   `json:"author"`
	Thumbnail    string   `json:"thumbnail"`
	Category     string   `json:"category" binding:"required"`
	Tags         []string `json:"tags"`
	MagazineType string   `json:"magazineType"`
	NewsType     string   `json:"newsType"`
}

// Normalize canonicalizes the classification tags in place.
// Must be called (and succeed) before any persistence side effect.
func (r *CreateNewsRequest) Normalize() error {
	mt, err := NormalizeMagazineType(r.MagazineType)
	if err != nil {
		return err
	}
	r.MagazineType = mt

	nt, err := NormalizeNewsType(r.NewsType)
	if err != nil {
		return err
	}
	r.NewsType = nt
	return nil
}

// ToEntity builds a News entity from the request.
// Moderation bookkeeping (status, createdBy) is filled by the service.
func (r *CreateNewsRequest) ToEntity() *News {
	return &News{
		Title:        r.Title,
		Description:  r.Description,
		Author:       r.Author,
		Thumbnail:    r.Thumbnail,
		CategoryID:   r.Category,
		Tags:         datatypes.NewJSONSlice(r.Tags),
		MagazineType: r.MagazineType,
		NewsType:     r.NewsType,
		IsLive:       true,
	}
}

// CategoryRef returns the category the new article points to
func (r *CreateNewsRequest) CategoryRef() *string { return &r.Category }

// UpdateNewsRequest is the partial-update request body for a news article.
// Pointer fields: absent keys are left untouched. The classification tags
// use Optional so an explicit JSON null clears the tag while an absent key
// leaves it untouched.
type UpdateNewsRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Author       *string          `json:"author"`
	Thumbnail    *string          `json:"thumbnail"`
	Category     *string          `json:"category"`
	Tags         *[]string        `json:"tags"`
	MagazineType Optional[string] `json:"magazineType"`
	NewsType     Optional[string] `json:"newsType"`
	IsLive       *bool            `json:"isLive"`
}

// Normalize canonicalizes the classification tags in place
func (r *UpdateNewsRequest) Normalize() error {
	if r.MagazineType.Set && r.MagazineType.Valid {
		mt, err := NormalizeMagazineType(r.MagazineType.Value)
		if err != nil {
			return err
		}
		if mt == "" {
			r.MagazineType.Valid = false
		}
		r.MagazineType.Value = mt
	}
	if r.NewsType.Set && r.NewsType.Valid {
		nt, err := NormalizeNewsType(r.NewsType.Value)
		if err != nil {
			return err
		}
		if nt == "" {
			r.NewsType.Valid = false
		}
		r.NewsType.Value = nt
	}
	return nil
}

// Apply merges the present fields into the entity
func (r *UpdateNewsRequest) Apply(n *News) {
	if r.Title != nil {
		n.Title = *r.Title
	}
	if r.Description != nil {
		n.Description = *r.Description
	}
	if r.Author != nil {
		n.Author = *r.Author
	}
	if r.Thumbnail != nil {
		n.Thumbnail = *r.Thumbnail
	}
	if r.Category != nil {
		n.CategoryID = *r.Category
	}
	if r.Tags != nil {
		n.Tags = datatypes.NewJSONSlice(*r.Tags)
	}
	if r.MagazineType.Set {
		if r.MagazineType.Valid {
			n.MagazineType = r.MagazineType.Value
		} else {
			n.MagazineType = ""
		}
	}
	if r.NewsType.Set {
		if r.NewsType.Valid {
			n.NewsType = r.NewsType.Value
		} else {
			n.NewsType = ""
		}
	}
	if r.IsLive != nil {
		n.IsLive = *r.IsLive
	}
}

// CategoryRef returns the category the patch points to, if present
func (r *UpdateNewsRequest) CategoryRef() *string { return r.Category }
