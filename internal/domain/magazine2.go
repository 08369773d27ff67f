package domain

// Magazine2 an issue of the second, independent magazine edition.
// Identical shape to Magazine but a separate table, ledger and lifecycle.
// Table: magazines2
type Magazine2 struct {
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

// TableName specifies the table name for Magazine2 model
func (Magazine2) TableName() string { return "magazines2" }

// GetID returns the entity id
func (m *Magazine2) GetID() string { return m.ID }

// SetID sets the entity id
func (m *Magazine2) SetID(id string) { m.ID = id }

// Kind returns the content kind
func (Magazine2) Kind() Kind { return KindMagazine2 }

// CreateMagazine2Request is the request body for creating a second-edition issue
type CreateMagazine2Request struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	MagazineThumbnail string `json:"magazineThumbnail"`
	MagazinePdf       string `json:"magazinePdf" binding:"required"`
	EditionNumber     string `json:"editionNumber"`
	PublishedMonth    string `json:"publishedMonth"`
	PublishedYear     string `json:"publishedYear"`
}

// Normalize is a no-op; magazine issues carry no classification tags
func (r *CreateMagazine2Request) Normalize() error { return nil }

// ToEntity builds a Magazine2 entity from the request
func (r *CreateMagazine2Request) ToEntity() *Magazine2 {
	return &Magazine2{
		Title:             r.Title,
		Description:       r.Description,
		MagazineThumbnail: r.MagazineThumbnail,
		MagazinePdf:       r.MagazinePdf,
		EditionNumber:     r.EditionNumber,
		PublishedMonth:    r.PublishedMonth,
		PublishedYear:     r.PublishedYear,
	}
}

// CategoryRef magazine issues have no category reference
func (r *CreateMagazine2Request) CategoryRef() *string { return nil }

// UpdateMagazine2Request is the partial-update request body for a second-edition issue
type UpdateMagazine2Request struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	MagazineThumbnail *string `json:"magazineThumbnail"`
	MagazinePdf       *string `json:"magazinePdf"`
	EditionNumber     *string `json:"editionNumber"`
	PublishedMonth    *string `json:"publishedMonth"`
	PublishedYear     *string `json:"publishedYear"`
}

// Normalize is a no-op; magazine issues carry no classification tags
func (r *UpdateMagazine2Request) Normalize() error { return nil }

// Apply merges the present fields into the entity
func (r *UpdateMagazine2Request) Apply(m *Magazine2) {
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

// CategoryRef magazine issues have no category reference
func (r *UpdateMagazine2Request) CategoryRef() *string { return nil }
