package implementation

import (
	"context"
	"testing"
	"time"

	"travel-backoffice-be/internal/repository/contract"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestPaymentBulkTransition(t *testing.T) {
	t.Run("guards on current status", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPaymentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "payments" SET .* WHERE \(?id IN \(.+\) AND status = .+`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		n, err := repo.BulkTransition(context.Background(), contract.BulkTransition{
			IDs:         []uuid.UUID{uuid.New(), uuid.New(), uuid.New()},
			From:        "inprocess",
			To:          "completed",
			ProcessedBy: uuid.New(),
			ProcessedAt: time.Now(),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no ids issues no query", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPaymentRepository(db)

		n, err := repo.BulkTransition(context.Background(), contract.BulkTransition{From: "inprocess", To: "rejected"})
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentGroupByRejectsUnknownColumn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	_, err := repo.GroupBy(context.Background(), "payment_amount; DROP TABLE payments")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
