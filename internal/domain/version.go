package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ContentVersion an immutable snapshot of an entity's state as it
// existed immediately before the mutation that produced this record.
// Each content kind stores its versions in its own table (Kind.VersionTable);
// the row shape is identical across kinds.
//
// Invariant: for an entity with N recorded versions, version numbers are
// exactly 1..N with no duplicates or gaps. The unique index enforces
// no-duplicates; renumbering on deletion restores density.
type ContentVersion struct {
	ID            uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EntityID      string         `gorm:"column:entity_id;uniqueIndex:idx_entity_version" json:"entity_id"`
	VersionNumber uint           `gorm:"column:version_number;uniqueIndex:idx_entity_version" json:"version_number"`
	Snapshot      datatypes.JSON `gorm:"column:snapshot" json:"snapshot"`
	UpdatedBy     string         `gorm:"column:updated_by" json:"updated_by"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoCreateTime" json:"updated_at"`
}
