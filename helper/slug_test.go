package helper

import (
	"testing"

	"prephub_backend/database"
	"prephub_backend/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupSlugDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	database.Migrate(db)
	return db
}

func TestGenerateUniqueListingSlug(t *testing.T) {
	db := setupSlugDB(t)

	first := GenerateUniqueListingSlug(db, "Central Library Study Hall")
	require.Equal(t, "central-library-study-hall", first)

	require.NoError(t, db.Create(&model.Listing{
		OwnerId: 1, Type: "library", Name: "Central Library Study Hall", Slug: first, Price: 100,
	}).Error)

	second := GenerateUniqueListingSlug(db, "Central Library Study Hall")
	require.Equal(t, "central-library-study-hall-1", second)

	require.NoError(t, db.Create(&model.Listing{
		OwnerId: 1, Type: "library", Name: "Central Library Study Hall", Slug: second, Price: 100,
	}).Error)

	third := GenerateUniqueListingSlug(db, "Central Library Study Hall")
	require.Equal(t, "central-library-study-hall-2", third)
}
