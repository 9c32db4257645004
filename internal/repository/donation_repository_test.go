package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

// TestClaim_WinnerTakesRow verifies the claim is a single conditional UPDATE
// whose predicate admits available rows and the claimant's own rows only.
func TestClaim_WinnerTakesRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDonationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `donations` SET .+ WHERE id = \\? AND \\(status = \\? OR ngo_id = \\?\\)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	claimed, err := repo.Claim(42, 7)
	require.NoError(t, err)
	assert.True(t, claimed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestClaim_LoserGetsNothing verifies a zero-row UPDATE surfaces as not claimed
// rather than as an error.
func TestClaim_LoserGetsNothing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDonationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `donations` SET .+ WHERE id = \\? AND \\(status = \\? OR ngo_id = \\?\\)").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	claimed, err := repo.Claim(42, 7)
	require.NoError(t, err)
	assert.False(t, claimed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
