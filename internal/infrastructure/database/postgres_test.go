package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminTarget(t *testing.T) {
	admin, name, ok := adminTarget("postgres://app:secret@db:5432/posters?sslmode=disable")
	assert.True(t, ok)
	assert.Equal(t, "posters", name)
	assert.Equal(t, "postgres://app:secret@db:5432/postgres?sslmode=disable", admin)

	_, _, ok = adminTarget("postgres://app:secret@db:5432/postgres")
	assert.False(t, ok)

	_, _, ok = adminTarget("host=db user=app dbname=posters")
	assert.False(t, ok)
}

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, `"posters"`, quoteIdentifier("posters"))
	assert.Equal(t, `"we""ird"`, quoteIdentifier(`we"ird`))
}

func TestConnectPostgres_EmptyDSN(t *testing.T) {
	_, err := ConnectPostgres(context.Background(), PostgresConfig{})
	assert.ErrorIs(t, err, errEmptyDSN)
}
