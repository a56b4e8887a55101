package certificate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lms/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Certificate{}))
	return db
}

func TestEnsureIssuedCreatesOnce(t *testing.T) {
	db := openTestDB(t)

	first, err := EnsureIssued(db, 1, 7)
	require.NoError(t, err)
	require.NotEmpty(t, first.CertificateNumber)
	require.False(t, first.IssuedAt.IsZero())

	second, err := EnsureIssued(db, 1, 7)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, first.CertificateNumber, second.CertificateNumber)

	var count int64
	require.NoError(t, db.Model(&models.Certificate{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestEnsureIssuedDistinctPerCourse(t *testing.T) {
	db := openTestDB(t)

	a, err := EnsureIssued(db, 1, 7)
	require.NoError(t, err)
	b, err := EnsureIssued(db, 1, 8)
	require.NoError(t, err)
	require.NotEqual(t, a.CertificateNumber, b.CertificateNumber)
}
