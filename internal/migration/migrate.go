package migration

import (
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/pkg/logger"
	"gorm.io/gorm"
)

// Run creates or updates the database schema. Each content kind gets
// its own version ledger table sharing the ContentVersion shape; the
// unique (entity_id, version_number) index backs the version numbering.
func Run(db *gorm.DB) error {
	log := logger.Get()
	log.Info().Msg("running database migrations")

	if err := db.AutoMigrate(
		&domain.News{},
		&domain.Video{},
		&domain.LongVideo{},
		&domain.Magazine{},
		&domain.Magazine2{},
		&domain.Category{},
		&domain.Comment{},
		&domain.Photo{},
		&domain.Announcement{},
	); err != nil {
		return err
	}

	for _, kind := range []domain.Kind{
		domain.KindNews,
		domain.KindVideo,
		domain.KindLongVideo,
		domain.KindMagazine,
		domain.KindMagazine2,
	} {
		if err := db.Table(kind.VersionTable()).AutoMigrate(&domain.ContentVersion{}); err != nil {
			return err
		}
	}

	log.Info().Msg("database migrations complete")
	return nil
}
