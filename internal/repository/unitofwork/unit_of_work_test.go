package unitofwork

import (
	"context"
	"os"
	"testing"

	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/model"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/pkg/access"
	"travel-backoffice-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser() *entity.User {
	id := uuid.New()
	return &entity.User{
		Id:           id,
		Username:     "uow_" + id.String()[:8],
		Email:        id.String()[:8] + "@example.com",
		PasswordHash: "x",
		Role:         access.RoleAgencyAdmin,
		IsActive:     true,
	}
}

func TestUnitOfWorkCommitAndRollback(t *testing.T) {
	db, err := database.NewSQLiteMemory()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	ctx := context.Background()
	factory := NewRepositoryFactory(db)

	t.Run("rollback discards writes", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		require.NoError(t, uow.Begin(ctx))
		u := newUser()
		require.NoError(t, uow.UserRepository().Create(ctx, u))
		require.NoError(t, uow.Rollback())

		found, err := factory.NewUnitOfWork(ctx).UserRepository().FindOne(ctx, specification.ByID{ID: u.Id})
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("commit persists writes", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		require.NoError(t, uow.Begin(ctx))
		u := newUser()
		require.NoError(t, uow.UserRepository().Create(ctx, u))
		require.NoError(t, uow.Commit())

		found, err := factory.NewUnitOfWork(ctx).UserRepository().FindOne(ctx, specification.ByID{ID: u.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.Email, found.Email)
	})
}

func TestPostgresWiring(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.Open(database.Options{Driver: database.DriverPostgres, DSN: dsn})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())

	ctx := context.Background()
	uow := NewRepositoryFactory(db).NewUnitOfWork(ctx)

	counts := map[string]func() (int64, error){
		"users":    func() (int64, error) { return uow.UserRepository().Count(ctx) },
		"bookings": func() (int64, error) { return uow.BookingRepository().Count(ctx) },
		"payments": func() (int64, error) { return uow.PaymentRepository().Count(ctx) },
	}
	for name, count := range counts {
		t.Run(name, func(t *testing.T) {
			n, err := count()
			assert.NoError(t, err)
			t.Logf("%s: %d", name, n)
		})
	}
}
