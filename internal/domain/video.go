package domain

// Video a short-form video.
// Table: videos
type Video struct {
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

// TableName specifies the table name for Video model
func (Video) TableName() string { return "videos" }

// GetID returns the entity id
func (v *Video) GetID() string { return v.ID }

// SetID sets the entity id
func (v *Video) SetID(id string) { v.ID = id }

// Kind returns the content kind
func (Video) Kind() Kind { return KindVideo }

// CreateVideoRequest is the request body for creating a video
type CreateVideoRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Thumbnail    string `json:"thumbnail" binding:"required"`
	VideoURL     string `json:"video_url" binding:"required"`
	Category     string `json:"category" binding:"required"`
	MagazineType string `json:"magazineType"`
	NewsType     string `json:"newsType"`
}

// Normalize canonicalizes the classification tags in place
func (r *CreateVideoRequest) Normalize() error {
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

// ToEntity builds a Video entity from the request
func (r *CreateVideoRequest) ToEntity() *Video {
	return &Video{
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
func (r *CreateVideoRequest) CategoryRef() *string { return &r.Category }

// UpdateVideoRequest is the partial-update request body for a video
type UpdateVideoRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Thumbnail    *string          `json:"thumbnail"`
	VideoURL     *string          `json:"video_url"`
	Category     *string          `json:"category"`
	MagazineType Optional[string] `json:"magazineType"`
	NewsType     Optional[string] `json:"newsType"`
}

// Normalize canonicalizes the classification tags in place
func (r *UpdateVideoRequest) Normalize() error {
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
func (r *UpdateVideoRequest) Apply(v *Video) {
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
func (r *UpdateVideoRequest) CategoryRef() *string { return r.Category }
