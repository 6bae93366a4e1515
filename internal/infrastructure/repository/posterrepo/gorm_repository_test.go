package posterrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domain "github.com/oshaneheath-star/Poster-collection-app/internal/domain/poster"
	"github.com/oshaneheath-star/Poster-collection-app/internal/utils/platformerrors"
)

var posterColumns = []string{"id", "title", "date", "location", "image", "created_at"}

func newSQLMockRepository(t *testing.T) (*GormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	return NewGormRepository(db), mock
}

func sqlFragment(s string) string {
	return regexp.QuoteMeta(s)
}

func TestGormRepository_Insert(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	mock.ExpectExec(sqlFragment(`INSERT INTO "posters" ("id","title","date","location","image","created_at")`)).
		WithArgs(sqlmock.AnyArg(), "Jazz Night", "", "Town Hall", "", "2025-07-01T07:30:00.000000Z").
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Insert(context.Background(), &domain.Poster{
		Title:     "Jazz Night",
		Location:  "Town Hall",
		CreatedAt: "2025-07-01T07:30:00.000000Z",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{24}$`, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_InsertFailure(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	mock.ExpectExec(sqlFragment(`INSERT INTO "posters"`)).WillReturnError(errors.New("connection reset"))

	_, err := repo.Insert(context.Background(), &domain.Poster{Title: "Jazz Night"})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeDatabaseError))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_FindAll(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	rows := sqlmock.NewRows(posterColumns).
		AddRow("65a1f0c2e4b0a1b2c3d4e5f6", "Early", "2025-01-01", "Town Hall", "AAAA", "2025-07-01T07:30:00.000000Z").
		AddRow("65a1f0c2e4b0a1b2c3d4e5f7", "Late", "2025-12-31", "Pier", "BBBB", "2025-07-02T07:30:00.000000Z")
	mock.ExpectQuery(sqlFragment(`SELECT * FROM "posters" ORDER BY date ASC,id ASC LIMIT $1`)).
		WithArgs(domain.ListLimit).
		WillReturnRows(rows)

	posters, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posters, 2)
	assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5f6", posters[0].ID)
	assert.Equal(t, "Late", posters[1].Title)
	assert.Equal(t, "2025-07-02T07:30:00.000000Z", posters[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_FindAllEmpty(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	mock.ExpectQuery(sqlFragment(`SELECT * FROM "posters"`)).WillReturnRows(sqlmock.NewRows(posterColumns))

	posters, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posters)
	assert.Empty(t, posters)
}

func TestGormRepository_FindByID(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	mock.ExpectQuery(sqlFragment(`SELECT * FROM "posters" WHERE id = $1`)).
		WithArgs("65a1f0c2e4b0a1b2c3d4e5f6", 1).
		WillReturnRows(sqlmock.NewRows(posterColumns).
			AddRow("65a1f0c2e4b0a1b2c3d4e5f6", "Jazz Night", "2025-08-01", "Town Hall", "AAAA", "2025-07-01T07:30:00.000000Z"))

	p, err := repo.FindByID(context.Background(), "65A1F0C2E4B0A1B2C3D4E5F6")
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night", p.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_FindByIDMissing(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	mock.ExpectQuery(sqlFragment(`SELECT * FROM "posters" WHERE id = $1`)).WillReturnRows(sqlmock.NewRows(posterColumns))

	_, err := repo.FindByID(context.Background(), "65a1f0c2e4b0a1b2c3d4e5f6")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestGormRepository_UpdateByID(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	mock.ExpectQuery(sqlFragment(`UPDATE "posters" SET "date"=$1,"title"=$2 WHERE id = $3 RETURNING *`)).
		WithArgs("", "Renamed", "65a1f0c2e4b0a1b2c3d4e5f6").
		WillReturnRows(sqlmock.NewRows(posterColumns).
			AddRow("65a1f0c2e4b0a1b2c3d4e5f6", "Renamed", "", "Town Hall", "AAAA", "2025-07-01T07:30:00.000000Z"))

	title, date := "Renamed", ""
	p, err := repo.UpdateByID(context.Background(), "65a1f0c2e4b0a1b2c3d4e5f6", domain.Update{Title: &title, Date: &date})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", p.Title)
	assert.Equal(t, "", p.Date)
	assert.Equal(t, "2025-07-01T07:30:00.000000Z", p.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_UpdateByIDMissing(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	mock.ExpectQuery(sqlFragment(`UPDATE "posters" SET "title"=$1 WHERE id = $2 RETURNING *`)).
		WillReturnRows(sqlmock.NewRows(posterColumns))

	title := "Renamed"
	_, err := repo.UpdateByID(context.Background(), "65a1f0c2e4b0a1b2c3d4e5f6", domain.Update{Title: &title})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_DeleteByID(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	mock.ExpectExec(sqlFragment(`DELETE FROM "posters" WHERE id = $1`)).
		WithArgs("65a1f0c2e4b0a1b2c3d4e5f6").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteByID(context.Background(), "65a1f0c2e4b0a1b2c3d4e5f6"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_DeleteByIDMissing(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	mock.ExpectExec(sqlFragment(`DELETE FROM "posters" WHERE id = $1`)).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByID(context.Background(), "65a1f0c2e4b0a1b2c3d4e5f6")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestGormRepository_DeleteFailure(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	mock.ExpectExec(sqlFragment(`DELETE FROM "posters"`)).WillReturnError(errors.New("connection reset"))

	err := repo.DeleteByID(context.Background(), "65a1f0c2e4b0a1b2c3d4e5f6")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeDatabaseError))
}

func TestGormRepository_RejectsMalformedIDs(t *testing.T) {
	repo, mock := newSQLMockRepository(t)

	_, err := repo.FindByID(context.Background(), "nope")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeInvalidIdentifier))

	title := "x"
	_, err = repo.UpdateByID(context.Background(), "nope", domain.Update{Title: &title})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeInvalidIdentifier))

	err = repo.DeleteByID(context.Background(), " 65a1f0c2e4b0a1b2c3d4e5f6")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeInvalidIdentifier))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseKey_Canonicalizes(t *testing.T) {
	key, err := parseKey(context.Background(), "64A1B2C3D4E5F60718293A4B")
	require.NoError(t, err)
	assert.Equal(t, "64a1b2c3d4e5f60718293a4b", key)
}
