package domain

// LongVideo a long-form video. Shares the Video shape but lives in its
// own table with its own version ledger and moderation lifecycle.
// Table: long_videos
type LongVideo struct {
	ID           string `gorm:"column:id;primaryKey" json:"id"`
	Title        string `gorm:"column:title" json:"title"`
	Description  string `gorm:"column:description;type:text" json:"description"`
	Thumbnail    string `gorm:"column:thumbnail" json:"thumbnail"`
	VideoURL     string `gorm:"column:video_url" json:"video_url"`
	CategoryID   string `gorm:"column:category_id;index" json:"category"`
	MagazineType string `gorm:"column:magazine_type;type:varchar(20)" json:"magazineType,omitempty"`
	NewsType     string `gorm:"column:news_type;type:varchar(20)" json:"newsType,omitempty"`
	Moderated    `gorm:"embedded"`
}

// TableName specifies the table name for LongVideo model
func (LongVideo) TableName() string { return "long_videos" }

// GetID returns the entity id
func (v *LongVideo) GetID() string { return v.ID }

// SetID sets the entity id
func (v *LongVideo) SetID(id string) { v.ID = id }

// Kind returns the content kind
func (LongVideo) Kind() Kind { return KindLongVideo }

// CreateLongVideoRequest is the request body for creating a long video
type CreateLongVideoRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Thumbnail    string `json:"thumbnail" binding:"required"`
	VideoURL     string `json:"video_url" binding:"required"`
	Category     string `json:"category" binding:"required"`
	MagazineType string `json:"magazineType"`
	NewsType     string `json:"newsType"`
}

// Normalize canonicalizes the classification tags in place
func (r *CreateLongVideoRequest) Normalize() error {
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

// ToEntity builds a LongVideo entity from the request
func (r *CreateLongVideoRequest) ToEntity() *LongVideo {
	return &LongVideo{
		Title:        r.Title,
		Description:  r.Description,
		Thumbnail:    r.Thumbnail,
		VideoURL:     r.VideoURL,
		CategoryID:   r.Category,
		MagazineType: r.MagazineType,
		NewsType:     r.NewsType,
	}
}

// CategoryRef returns the category the new video points to
func (r *CreateLongVideoRequest) CategoryRef() *string { return &r.Category }

// UpdateLongVideoRequest is the partial-update request body for a long video
type UpdateLongVideoRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Thumbnail    *string          `json:"thumbnail"`
	VideoURL     *string          `json:"video_url"`
	Category     *string          `json:"category"`
	MagazineType Optional[string] `json:"magazineType"`
	NewsType     Optional[string] `json:"newsType"`
}

// Normalize canonicalizes the classification tags in place
func (r *UpdateLongVideoRequest) Normalize() error {
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
func (r *UpdateLongVideoRequest) Apply(v *LongVideo) {
	if r.Title != nil {
		v.Title = *r.Title
	}
	if r.Description != nil {
		v.Description = *r.Description
	}
	if r.Thumbnail != nil {
		v.Thumbnail = *r.Thumbnail
	}
	if r.VideoURL != nil {
		v.VideoURL = *r.VideoURL
	}
	if r.Category != nil {
		v.CategoryID = *r.Category
	}
	if r.MagazineType.Set {
		if r.MagazineType.Valid {
			v.MagazineType = r.MagazineType.Value
		} else {
			v.MagazineType = ""
		}
	}
	if r.NewsType.Set {
		if r.NewsType.Valid {
			v.NewsType = r.NewsType.Value
		} else {
			v.NewsType = ""
		}
	}
}

// CategoryRef returns the category the patch points to, if present
func (r *UpdateLongVideoRequest) CategoryRef() *string { return r.Category }
