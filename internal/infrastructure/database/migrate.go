package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/database/entities"
)

// AutoMigrate applies the relational poster schema.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(&entities.Poster{}); err != nil {
		return err
	}
	log.Info().Msg("applied poster migrations")
	return nil
}
