package posterrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/oshaneheath-star/Poster-collection-app/internal/domain/poster"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/database/entities"
	"github.com/oshaneheath-star/Poster-collection-app/internal/utils/platformerrors"
	"github.com/oshaneheath-star/Poster-collection-app/utils/posterid"
)

const backendPostgres = "postgresql"

// columnByField maps persisted field names onto relational columns.
var columnByField = map[string]string{
	domain.FieldTitle:    "title",
	domain.FieldDate:     "date",
	domain.FieldLocation: "location",
	domain.FieldImage:    "image",
}

// GormRepository persists posters in PostgreSQL.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Insert(ctx context.Context, p *domain.Poster) (id string, err error) {
	ctx, done := observeStore(ctx, backendPostgres, "insert")
	defer func() { done(err) }()

	entity := entities.Poster{
		ID:        posterid.New(),
		Title:     p.Title,
		Date:      p.Date,
		Location:  p.Location,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
	}
	if createErr := r.db.WithContext(ctx).Create(&entity).Error; createErr != nil {
		return "", platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to insert poster",
			createErr,
			"e2b7d4a9-5c18-4f63-8d0e-9a1c3b6f2d47",
		)
	}
	return entity.ID, nil
}

func (r *GormRepository) FindAll(ctx context.Context) (posters []*domain.Poster, err error) {
	ctx, done := observeStore(ctx, backendPostgres, "find_all")
	defer func() { done(err) }()

	var rows []entities.Poster
	findErr := r.db.WithContext(ctx).
		Order("date ASC").
		Order("id ASC").
		Limit(domain.ListLimit).
		Find(&rows).Error
	if findErr != nil {
		return nil, listError(ctx, findErr)
	}

	posters = make([]*domain.Poster, 0, len(rows))
	for i := range rows {
		posters = append(posters, mapEntity(rows[i]))
	}
	return posters, nil
}

func (r *GormRepository) FindByID(ctx context.Context, id string) (_ *domain.Poster, err error) {
	ctx, done := observeStore(ctx, backendPostgres, "find_by_id")
	defer func() { done(err) }()

	key, err := parseKey(ctx, id)
	if err != nil {
		return nil, err
	}

	var entity entities.Poster
	if findErr := r.db.WithContext(ctx).Where("id = ?", key).First(&entity).Error; findErr != nil {
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return nil, notFoundError(ctx, id)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to get poster by id",
			findErr,
			"4a9f1c6e-2b83-4d57-a0e9-7c5d3b8f1a26",
		)
	}
	return mapEntity(entity), nil
}

func (r *GormRepository) UpdateByID(ctx context.Context, id string, update domain.Update) (_ *domain.Poster, err error) {
	ctx, done := observeStore(ctx, backendPostgres, "update_by_id")
	defer func() { done(err) }()

	key, err := parseKey(ctx, id)
	if err != nil {
		return nil, err
	}

	values := make(map[string]any, len(columnByField))
	for field, value := range update.Fields() {
		values[columnByField[field]] = value
	}

	var rows []entities.Poster
	res := r.db.WithContext(ctx).
		Model(&rows).
		Clauses(clause.Returning{}).
		Where("id = ?", key).
		Updates(values)
	if res.Error != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update poster",
			res.Error,
			"9d3c7e1b-6a25-4f80-b4d2-1e8a5c0f7b39",
		)
	}
	if res.RowsAffected == 0 || len(rows) == 0 {
		return nil, notFoundError(ctx, id)
	}
	return mapEntity(rows[0]), nil
}

func (r *GormRepository) DeleteByID(ctx context.Context, id string) (err error) {
	ctx, done := observeStore(ctx, backendPostgres, "delete_by_id")
	defer func() { done(err) }()

	key, err := parseKey(ctx, id)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Where("id = ?", key).Delete(&entities.Poster{})
	if res.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete poster",
			res.Error,
			"6b1e8f3a-0d42-4c97-9e5b-2a7f4d1c8e03",
		)
	}
	if res.RowsAffected == 0 {
		return notFoundError(ctx, id)
	}
	return nil
}

// Ping checks the database is reachable.
func (r *GormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (r *GormRepository) Close(context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// parseKey validates the id the same way the document store does and
// returns its canonical lowercase hex form.
func parseKey(ctx context.Context, id string) (string, error) {
	oid, err := parseID(ctx, id)
	if err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

func mapEntity(entity entities.Poster) *domain.Poster {
	return &domain.Poster{
		ID:        entity.ID,
		Title:     entity.Title,
		Date:      entity.Date,
		Location:  entity.Location,
		Image:     entity.Image,
		CreatedAt: entity.CreatedAt,
	}
}
