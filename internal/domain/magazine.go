package domain

// Magazine an issue of the first magazine edition.
// Table: magazines
type Magazine struct {
	ID                string `gorm:"column:id;primaryKey" json:"id"`
	Title             string `gorm:"column:title" json:"title"`
	Description       string `gorm:"column:description;type:text" json:"description"`
	MagazineThumbnail string `gorm:"column:magazine_thumbnail" json:"magazineThumbnail,omitempty"`
	MagazinePdf       string `gorm:"column:magazine_pdf" json:"magazinePdf,omitempty"`
	EditionNumber     string `gorm:"column:edition_number" json:"editionNumber,omitempty"`
	PublishedMonth    string `gorm:"column:published_month;type:varchar(20)" json:"publishedMonth,omitempty"`
	PublishedYear     string `gorm:"column:published_year;type:varchar(4);index" json:"publishedYear,omitempty"`
	Moderated         `gorm:"embedded"`
}

// TableName specifies the table name for Magazine model
func (Magazine) TableName() string { return "magazines" }

// GetID returns the entity id
func (m *Magazine) GetID() string { return m.ID }

// SetID sets the entity id
func (m *Magazine) SetID(id string) { m.ID = id }

// Kind returns the content kind
func (Magazine) Kind() Kind { return KindMagazine }

// CreateMagazineRequest is the request body for creating a magazine issue
type CreateMagazineRequest struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	MagazineThumbnail string `json:"magazineThumbnail"`
	MagazinePdf       string `json:"magazinePdf" binding:"required"`
	EditionNumber     string `json:"editionNumber"`
	PublishedMonth    string `json:"publishedMonth"`
	PublishedYear     string `json:"publishedYear"`
}

// Normalize is a no-op; magazine issues carry no classification tags
func (r *CreateMagazineRequest) Normalize() error { return nil }

// ToEntity builds a Magazine entity from the request
func (r *CreateMagazineRequest) ToEntity() *Magazine {
	return &Magazine{
		Title:             r.Title,
		Description:       r.Description,
		MagazineThumbnail: r.MagazineThumbnail,
		MagazinePdf:       r.MagazinePdf,
		EditionNumber:     r.EditionNumber,
		PublishedMonth:    r.PublishedMonth,
		PublishedYear:     r.PublishedYear,
	}
}

// CategoryRef magazines have no category reference
func (r *CreateMagazineRequest) CategoryRef() *string { return nil }

// UpdateMagazineRequest is the partial-update request body for a magazine issue
type UpdateMagazineRequest struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	MagazineThumbnail *string `json:"magazineThumbnail"`
	MagazinePdf       *string `json:"magazinePdf"`
	EditionNumber     *string `json:"editionNumber"`
	PublishedMonth    *string `json:"publishedMonth"`
	PublishedYear     *string `json:"publishedYear"`
}

// Normalize is a no-op; magazine issues carry no classification tags
func (r *UpdateMagazineRequest) Normalize() error { return nil }

// Apply merges the present fields into the entity
func (r *UpdateMagazineRequest) Apply(m *Magazine) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.MagazineThumbnail != nil {
		m.MagazineThumbnail = *r.MagazineThumbnail
	}
	if r.MagazinePdf != nil {
		m.MagazinePdf = *r.MagazinePdf
	}
	if r.EditionNumber != nil {
		m.EditionNumber = *r.EditionNumber
	}
	if r.PublishedMonth != nil {
		m.PublishedMonth = *r.PublishedMonth
	}
	if r.PublishedYear != nil {
		m.PublishedYear = *r.PublishedYear
	}
}

// CategoryRef magazines have no category reference
func (r *UpdateMagazineRequest) CategoryRef() *string { return nil }
