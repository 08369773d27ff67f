package domain

import "time"

// Kind identifies one of the versionable content types.
// Each kind owns its entity table and its version ledger table.
type Kind string

const (
	KindNews      Kind = "news"
	KindVideo     Kind = "video"
	KindLongVideo Kind = "longvideo"
	KindMagazine  Kind = "magazine"
	KindMagazine2 Kind = "magazine2"
)

// VersionTable returns the ledger table name for this kind
func (k Kind) VersionTable() string {
	switch k {
	case KindNews:
		return "news_versions"
	case KindVideo:
		return "video_versions"
	case KindLongVideo:
		return "long_video_versions"
	case KindMagazine:
		return "magazine_versions"
	case KindMagazine2:
		return "magazine2_versions"
	}
	return string(k) + "_versions"
}

// Status moderation state of a content entity
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	// StatusRejected is declared for schema compatibility but no
	// moderation transition currently produces it.
	StatusRejected Status = "rejected"
)

// StatusFor computes the moderation status resulting from a create or
// an accepted edit by the given actor. Admin edits approve, everything
// else demotes to pending. Approval is not sticky.
func StatusFor(actor Actor) Status {
	if actor.Role == RoleAdmin {
		return StatusApproved
	}
	return StatusPending
}

// Content is implemented by every versionable entity kind
type Content interface {
	GetID() string
	SetID(id string)
	GetCreatedBy() string
	SetCreatedBy(id string)
	GetStatus() Status
	SetStatus(Status)
	Touch(t time.Time)
	MarkApproved(by string, at time.Time)
}

// Moderated embeds the moderation bookkeeping shared by all content kinds
type Moderated struct {
	Status      Status     `gorm:"column:status;type:varchar(20);default:pending" json:"status"`
	CreatedBy   string     `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time  `gorm:"column:created_time;autoCreateTime" json:"created_time"`
	LastUpdated *time.Time `gorm:"column:last_updated" json:"last_updated,omitempty"`
	ApprovedBy  string     `gorm:"column:approved_by" json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
}

// GetStatus returns the moderation status
func (m *Moderated) GetStatus() Status { return m.Status }

// SetStatus sets the moderation status
func (m *Moderated) SetStatus(s Status) { m.Status = s }

// GetCreatedBy returns the owning actor id
func (m *Moderated) GetCreatedBy() string { return m.CreatedBy }

// SetCreatedBy sets the owning actor id, immutable after creation
func (m *Moderated) SetCreatedBy(id string) { m.CreatedBy = id }

// Touch records the mutation timestamp
func (m *Moderated) Touch(t time.Time) { m.LastUpdated = &t }

// MarkApproved records an explicit approval
func (m *Moderated) MarkApproved(by string, at time.Time) {
	m.Status = StatusApproved
	m.ApprovedBy = by
	m.ApprovedAt = &at
}
